package view

import (
	"strings"
	"time"

	"github.com/iliyamo/showtime-booking/internal/model"
)

// FieldErrors maps a form field to its validation message. An empty map
// means the form is valid.
type FieldErrors map[string]string

func (f FieldErrors) OK() bool { return len(f) == 0 }

// ShowtimeForm is what the admin submits to schedule a showtime.
type ShowtimeForm struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Time     string `json:"time"` // HH:MM, 24h
	Capacity int    `json:"capacity"`
}

// Validate checks the form and combines date and time in loc.
func (f ShowtimeForm) Validate(movieID uint64, loc *time.Location) (model.ShowtimeInput, FieldErrors) {
	if loc == nil {
		loc = time.UTC
	}
	errs := FieldErrors{}
	date := strings.TrimSpace(f.Date)
	clock := strings.TrimSpace(f.Time)

	var day, tod time.Time
	var err error
	if date == "" {
		errs["date"] = "Date is required"
	} else if day, err = time.ParseInLocation("2006-01-02", date, loc); err != nil {
		errs["date"] = "Date must look like 2006-01-02"
	}
	if clock == "" {
		errs["time"] = "Time is required"
	} else if tod, err = time.Parse("15:04", clock); err != nil {
		errs["time"] = "Time must look like 15:04"
	}
	if f.Capacity <= 0 {
		errs["capacity"] = "Capacity must be at least 1"
	}
	if !errs.OK() {
		return model.ShowtimeInput{}, errs
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), tod.Hour(), tod.Minute(), 0, 0, loc)
	return model.ShowtimeInput{MovieID: movieID, StartTime: start.UTC(), Capacity: uint32(f.Capacity)}, errs
}

// NormalizeMovie trims every field and requires a title.
func NormalizeMovie(in model.MovieInput) (model.MovieInput, FieldErrors) {
	out := model.MovieInput{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Genre:       strings.TrimSpace(in.Genre),
		PosterImage: strings.TrimSpace(in.PosterImage),
	}
	errs := FieldErrors{}
	if out.Title == "" {
		errs["title"] = "Title is required"
	}
	return out, errs
}

// RegistrationForm is the sign-up form.
type RegistrationForm struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (f RegistrationForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Username) == "" {
		errs["username"] = "Username is required"
	}
	if f.Password == "" {
		errs["password"] = "Password is required"
	} else if f.Password != f.ConfirmPassword {
		errs["confirm_password"] = "Passwords don't match"
	}
	return errs
}

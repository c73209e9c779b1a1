package model

// Movie is a catalog entry as returned by the booking API.
//
// Fields:
//  ID          – catalog identifier.
//  Title       – display title.
//  Description – synopsis shown on the movie card.
//  Genre       – free-form genre label.
//  PosterImage – poster URL; empty when the movie has no poster.
type Movie struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	PosterImage string `json:"poster_image"`
}

// MovieInput is the body accepted by the add and update movie endpoints.
type MovieInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	PosterImage string `json:"poster_image"`
}

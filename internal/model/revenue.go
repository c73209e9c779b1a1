package model

// Revenue is the aggregate returned by the revenue endpoint. Revenue maps a
// movie title to the amount earned for it.
type Revenue struct {
	Revenue            map[string]int `json:"revenue"`
	TotalRevenue       int            `json:"total_revenue"`
	TotalSeatsReserved int            `json:"total_seats_reserved"`
}

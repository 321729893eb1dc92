// Package wire holds the JSON shapes exchanged with the calendar backend.
package wire

type CalendarResponse struct {
	Listings     []Listing     `json:"listings"`
	Reservations []Reservation `json:"reservations"`
	CalendarDays []CalendarDay `json:"calendarDays"`
}

type Listing struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Channels []Channel `json:"channels,omitempty"`
}

type Channel struct {
	ChannelKey  string `json:"channelKey"`
	ChannelName string `json:"channelName"`
}

type Reservation struct {
	ID          string   `json:"id"`
	ListingID   string   `json:"listingId"`
	GuestName   string   `json:"guestName"`
	CheckIn     string   `json:"checkIn"`
	CheckOut    string   `json:"checkOut"`
	Status      string   `json:"status"`
	TotalAmount *float64 `json:"totalAmount,omitempty"`
	Currency    *string  `json:"currency,omitempty"`
	ChannelKey  *string  `json:"channelKey,omitempty"`
}

type CalendarDay struct {
	ListingID string `json:"listingId"`
	Date      string `json:"date"`
	Status    string `json:"status"`
}

type BlockRequest struct {
	ListingID string `json:"listingId"`
	Date      string `json:"date"`
	Block     bool   `json:"block"`
}

type BlockResponse struct {
	ChannelResults []ChannelResult `json:"channelResults,omitempty"`
}

type ChannelResult struct {
	ChannelKey  string  `json:"channelKey"`
	ChannelName string  `json:"channelName"`
	Success     bool    `json:"success"`
	Error       *string `json:"error,omitempty"`
}

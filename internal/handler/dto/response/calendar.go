package response

import (
	"hoster-calendar/internal/domain/calendar"
	"hoster-calendar/internal/pkg/ptr"
	"hoster-calendar/internal/usecase/commands"
	"hoster-calendar/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type WindowResponse struct {
	Today                 string `json:"today"`
	CurrentMonth          string `json:"current_month"`
	MaximumNavigableMonth string `json:"maximum_navigable_month"`
	BookableUntil         string `json:"bookable_until"`
	BookableUntilLabel    string `json:"bookable_until_label"`
	HorizonMonths         int    `json:"horizon_months"`
}

func FromWindowView(v queries.WindowView) WindowResponse {
	return WindowResponse{
		Today:                 v.Today.String(),
		CurrentMonth:          v.CurrentMonth.String(),
		MaximumNavigableMonth: v.MaximumNavigableMonth.String(),
		BookableUntil:         v.BookableUntil.String(),
		BookableUntilLabel:    v.BookableUntilLabel,
		HorizonMonths:         v.HorizonMonths,
	}
}

type ChannelResponse struct {
	Key  string `json:"channel_key"`
	Name string `json:"channel_name"`
}

type ListingResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Channels []ChannelResponse `json:"channels"`
}

func FromListings(listings []calendar.Listing) ([]ListingResponse, error) {
	out := make([]ListingResponse, 0, len(listings))
	if err := copier.Copy(&out, &listings); err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].Channels == nil {
			out[i].Channels = []ChannelResponse{}
		}
	}
	return out, nil
}

type ReservationResponse struct {
	ID          string  `json:"id"`
	ListingID   string  `json:"listing_id"`
	GuestName   string  `json:"guest_name"`
	CheckIn     string  `json:"check_in"`
	CheckOut    string  `json:"check_out"`
	Status      string  `json:"status"`
	Nights      int     `json:"nights"`
	TotalCents  *int64  `json:"total_cents,omitempty"`
	Currency    *string `json:"currency,omitempty"`
	ChannelKey  *string `json:"channel_key,omitempty"`
	ChannelName *string `json:"channel_name,omitempty"`
}

func FromReservationDetail(d queries.ReservationDetail) *ReservationResponse {
	resp := FromReservation(d.Reservation)
	resp.ChannelName = ptr.NonZero(d.ChannelName)
	return resp
}

func FromReservation(r calendar.Reservation) *ReservationResponse {
	resp := &ReservationResponse{
		ID:        r.ID,
		ListingID: r.ListingID,
		GuestName: r.GuestName,
		CheckIn:   r.Stay.CheckIn.String(),
		CheckOut:  r.Stay.CheckOut.String(),
		Status:    r.Status.String(),
		Nights:    r.Nights(),
	}
	if r.Total != nil {
		resp.TotalCents = ptr.Of(r.Total.Cents)
		resp.Currency = ptr.NonZero(r.Total.Currency)
	}
	if r.OriginatingChannel != nil {
		resp.ChannelKey = ptr.Of(string(*r.OriginatingChannel))
	}
	return resp
}

type DayResponse struct {
	Date          string                 `json:"date"`
	Status        string                 `json:"status"`
	Past          bool                   `json:"past"`
	InWindow      bool                   `json:"in_window"`
	Toggleable    bool                   `json:"toggleable"`
	ReservationID *string                `json:"reservation_id,omitempty"`
	GuestName     *string                `json:"guest_name,omitempty"`
	DoubleBooked  bool                   `json:"double_booked,omitempty"`
	Reservation   *ReservationResponse   `json:"reservation,omitempty"`
	Conflicts     []*ReservationResponse `json:"conflicts,omitempty"`
	Pending       bool                   `json:"pending"`
}

func FromDayCell(cell calendar.DayCell) DayResponse {
	resp := DayResponse{
		Date:         cell.Date.String(),
		Status:       cell.Status.String(),
		Past:         cell.Past,
		InWindow:     cell.InWindow,
		Toggleable:   cell.Toggleable(),
		DoubleBooked: cell.DoubleBooked(),
	}
	if cell.Reservation != nil {
		resp.ReservationID = ptr.Of(cell.Reservation.ID)
		resp.GuestName = ptr.Of(cell.Reservation.GuestName)
	}
	return resp
}

func FromDayView(v *queries.DayView) DayResponse {
	resp := FromDayCell(v.Cell)
	resp.Pending = v.Pending
	if v.Reservation != nil {
		resp.Reservation = FromReservationDetail(*v.Reservation)
	}
	for _, c := range v.Conflicts {
		resp.Conflicts = append(resp.Conflicts, FromReservationDetail(c))
	}
	return resp
}

type MonthCounts struct {
	Available int `json:"available"`
	Blocked   int `json:"blocked"`
	Reserved  int `json:"reserved"`
}

type MonthResponse struct {
	ListingID     string         `json:"listing_id"`
	ListingName   string         `json:"listing_name"`
	Month         string         `json:"month"`
	Label         string         `json:"label"`
	CanAdvance    bool           `json:"can_advance"`
	CanRetreat    bool           `json:"can_retreat"`
	PreviousMonth *string        `json:"previous_month,omitempty"`
	NextMonth     *string        `json:"next_month,omitempty"`
	Pending       bool           `json:"pending"`
	Counts        MonthCounts    `json:"counts"`
	Days          []DayResponse  `json:"days"`
	Window        WindowResponse `json:"window"`
}

func FromMonthView(v *queries.MonthView) MonthResponse {
	resp := MonthResponse{
		ListingID:   v.Listing.ID,
		ListingName: v.Listing.Name,
		Month:       v.Grid.Month.String(),
		Label:       v.Grid.Month.Label(),
		CanAdvance:  v.CanAdvance,
		CanRetreat:  v.CanRetreat,
		Pending:     v.Pending,
		Counts: MonthCounts{
			Available: v.Grid.Count(calendar.StatusAvailable),
			Blocked:   v.Grid.Count(calendar.StatusBlocked),
			Reserved:  v.Grid.Count(calendar.StatusReserved),
		},
		Days:   make([]DayResponse, 0, len(v.Grid.Days)),
		Window: FromWindowView(v.Window),
	}
	if v.CanRetreat {
		resp.PreviousMonth = ptr.Of(v.Grid.Month.AddMonths(-1).String())
	}
	if v.CanAdvance {
		resp.NextMonth = ptr.Of(v.Grid.Month.AddMonths(1).String())
	}
	for _, cell := range v.Grid.Days {
		day := FromDayCell(cell)
		day.Pending = v.Pending
		resp.Days = append(resp.Days, day)
	}
	return resp
}

type ChannelFailureResponse struct {
	Channel string `json:"channel"`
	Error   string `json:"error,omitempty"`
}

type SyncReportResponse struct {
	Outcome        string                   `json:"outcome"`
	Message        string                   `json:"message"`
	Applied        bool                     `json:"applied"`
	SyncedChannels []string                 `json:"synced_channels"`
	FailedChannels []ChannelFailureResponse `json:"failed_channels"`
}

func FromSyncReport(r calendar.SyncReport) *SyncReportResponse {
	resp := &SyncReportResponse{
		Outcome:        string(r.Outcome),
		Message:        r.Message,
		Applied:        r.Applied(),
		SyncedChannels: []string{},
		FailedChannels: []ChannelFailureResponse{},
	}
	resp.SyncedChannels = append(resp.SyncedChannels, r.SyncedChannels...)
	for _, f := range r.FailedChannels {
		resp.FailedChannels = append(resp.FailedChannels, ChannelFailureResponse{Channel: f.Channel, Error: f.Error})
	}
	return resp
}

type ToggleResponse struct {
	Action      string               `json:"action"`
	Day         *DayResponse         `json:"day,omitempty"`
	Reservation *ReservationResponse `json:"reservation,omitempty"`
	Sync        *SyncReportResponse  `json:"sync,omitempty"`
}

func FromToggleResult(r *commands.ToggleResult) ToggleResponse {
	resp := ToggleResponse{Action: string(r.Plan.Action)}
	if r.Cell != nil {
		day := FromDayCell(*r.Cell)
		resp.Day = &day
	}
	if r.Plan.Reservation != nil {
		resp.Reservation = FromReservation(*r.Plan.Reservation)
	}
	if r.Report != nil {
		resp.Sync = FromSyncReport(*r.Report)
	}
	return resp
}

type NextCheckInResponse struct {
	Reservation *ReservationResponse `json:"reservation"`
}

type RefreshResponse struct {
	FetchedAt    int64 `json:"fetched_at"`
	Listings     int   `json:"listings"`
	Reservations int   `json:"reservations"`
	Blocks       int   `json:"blocks"`
}

func FromRefreshResult(r *commands.RefreshResult) RefreshResponse {
	return RefreshResponse{
		FetchedAt:    r.FetchedAt.Unix(),
		Listings:     r.Listings,
		Reservations: r.Reservations,
		Blocks:       r.Blocks,
	}
}

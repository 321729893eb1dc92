package calendar

type DayStatus string

const (
	StatusAvailable DayStatus = "AVAILABLE"
	StatusBlocked   DayStatus = "BLOCKED"
	StatusReserved  DayStatus = "RESERVED"
)

func (s DayStatus) String() string {
	return string(s)
}

type Resolution struct {
	ListingID   string
	Date        Date
	Status      DayStatus
	Reservation *Reservation
	// other confirmed reservations occupying the same day; non-empty means a double booking upstream
	Conflicts []Reservation
}

func (r Resolution) DoubleBooked() bool {
	return len(r.Conflicts) > 0
}

// ResolveDay classifies one day of one listing. A confirmed reservation wins over
// a manual block, which wins over the default AVAILABLE.
func ResolveDay(listingID string, d Date, reservations []Reservation, blocks []DayBlock) Resolution {
	res := Resolution{ListingID: listingID, Date: d, Status: StatusAvailable}

	for i := range reservations {
		if !reservations[i].Occupies(listingID, d) {
			continue
		}
		if res.Reservation == nil {
			match := reservations[i]
			res.Reservation = &match
			res.Status = StatusReserved
			continue
		}
		res.Conflicts = append(res.Conflicts, reservations[i])
	}
	if res.Status == StatusReserved {
		return res
	}

	for _, b := range blocks {
		if b.Blocks(listingID, d) {
			res.Status = StatusBlocked
			return res
		}
	}
	return res
}

// DoubleBooking is a pair of confirmed stays on one listing that share at least one night.
type DoubleBooking struct {
	ListingID string
	First     Reservation
	Second    Reservation
}

func DoubleBookings(reservations []Reservation) []DoubleBooking {
	var out []DoubleBooking
	for i := range reservations {
		a := reservations[i]
		if !a.IsConfirmed() {
			continue
		}
		for _, b := range reservations[i+1:] {
			if b.ListingID != a.ListingID || !b.IsConfirmed() {
				continue
			}
			if a.Stay.Overlaps(b.Stay) {
				out = append(out, DoubleBooking{ListingID: a.ListingID, First: a, Second: b})
			}
		}
	}
	return out
}

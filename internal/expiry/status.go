package expiry

// Status is how an expiry date relates to the reference date.
type Status int

const (
	Pending Status = iota
	ExpiryDay
	Expired
)

// StatusOf derives a Status from a signed business-day count and the
// same-day flag. The same-day flag wins; any negative count means expired.
func StatusOf(days int, sameDay bool) Status {
	switch {
	case sameDay:
		return ExpiryDay
	case days < 0:
		return Expired
	default:
		return Pending
	}
}

func (s Status) String() string {
	switch s {
	case ExpiryDay:
		return "expiry_day"
	case Expired:
		return "expired"
	default:
		return "pending"
	}
}

package tour

import "time"

type Status string

const (
	StatusUpcoming   Status = "Upcoming"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUpcoming, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// DeriveStatus is the single source of truth for a booked tour's
// lifecycle state. It is a pure function of the date range and the
// observation instant; the stored status field is only ever a cached
// projection of this result.
func DeriveStatus(r DateRange, now time.Time) Status {
	now = now.UTC()
	switch {
	case now.Before(r.Start()):
		return StatusUpcoming
	case !now.Before(r.EndExclusive()):
		return StatusCompleted
	default:
		return StatusInProgress
	}
}

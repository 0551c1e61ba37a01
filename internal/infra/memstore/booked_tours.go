package memstore

import (
	"time"

	"sync"

	"tourmate/internal/domain/tour"
	"tourmate/internal/infra"
)

// BookedTourStore holds the process-wide booked-tour sequence. The
// original design had a single cooperative UI thread; served over
// HTTP there are concurrent callers, so an RWMutex restores the
// at-most-one-writer guarantee. Every mutation replaces the backing
// slice rather than editing it in place, so slices handed out by List
// are never invalidated behind a caller's back.
type BookedTourStore struct {
	mu     sync.RWMutex
	tours  []*tour.BookedTour
	nextID int64
}

// NewBookedTourStore seeds the store and primes the id counter past
// the highest seed id. Monotonic assignment replaces the original's
// timestamp-as-id scheme, which could collide under rapid successive
// bookings within one millisecond.
func NewBookedTourStore(seedTours []*tour.BookedTour) (*BookedTourStore, error) {
	seen := make(map[int64]struct{}, len(seedTours))
	var maxID int64
	for _, t := range seedTours {
		if _, dup := seen[t.ID()]; dup {
			return nil, infra.WrapRepoErr("duplicate id in seed booked tours", nil, infra.KindDuplicateKey)
		}
		seen[t.ID()] = struct{}{}
		if t.ID() > maxID {
			maxID = t.ID()
		}
	}

	tours := make([]*tour.BookedTour, len(seedTours))
	copy(tours, seedTours)

	return &BookedTourStore{
		tours:  tours,
		nextID: maxID + 1,
	}, nil
}

// List returns the sequence in insertion order, which is booking order.
func (s *BookedTourStore) List() []*tour.BookedTour {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*tour.BookedTour, len(s.tours))
	copy(out, s.tours)
	return out
}

func (s *BookedTourStore) Get(id int64) (*tour.BookedTour, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tours {
		if t.ID() == id {
			return t, nil
		}
	}
	return nil, infra.WrapRepoErr("booked tour not found", nil, infra.KindNotFound)
}

// Add appends to the end of the sequence. A zero id receives the next
// monotonic value; a caller-supplied id that already exists is
// rejected rather than silently shadowing the prior record.
func (s *BookedTourStore) Add(t *tour.BookedTour) (*tour.BookedTour, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID() == 0 {
		t = t.WithID(s.nextID)
		s.nextID++
	} else {
		for _, existing := range s.tours {
			if existing.ID() == t.ID() {
				return nil, infra.WrapRepoErr("booked tour id already exists", nil, infra.KindDuplicateKey)
			}
		}
		if t.ID() >= s.nextID {
			s.nextID = t.ID() + 1
		}
	}

	next := make([]*tour.BookedTour, len(s.tours), len(s.tours)+1)
	copy(next, s.tours)
	s.tours = append(next, t)
	return t, nil
}

// UpdateReview replaces the matching record's review wholesale and
// leaves every other field untouched. An unknown id fails without any
// partial mutation of the sequence.
func (s *BookedTourStore) UpdateReview(id int64, review tour.Review) (*tour.BookedTour, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, t := range s.tours {
		if t.ID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, infra.WrapRepoErr("booked tour not found", nil, infra.KindNotFound)
	}

	next := make([]*tour.BookedTour, len(s.tours))
	copy(next, s.tours)
	next[idx] = next[idx].WithReview(review)
	s.tours = next
	return next[idx], nil
}

// RefreshStatuses re-derives every record's status projection against
// now and reports how many records changed. Idempotent for a fixed now.
func (s *BookedTourStore) RefreshStatuses(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := 0
	next := make([]*tour.BookedTour, len(s.tours))
	for i, t := range s.tours {
		next[i] = t.WithStatus(now)
		if next[i].Status() != t.Status() {
			changed++
		}
	}
	s.tours = next
	return changed
}

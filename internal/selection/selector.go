// Package selection turns successive calendar clicks into a date range.
package selection

import (
	"sync"
	"time"

	"github.com/m04kA/sommerhus-booking/internal/domain"
)

// State is the state of the selector
type State string

const (
	StateEmpty     State = "empty"
	StateStarted   State = "started"
	StateCompleted State = "completed"
)

// Occupancy tells the selector which booking, if any, occupies a date
type Occupancy interface {
	Occupant(date time.Time) (*domain.Booking, bool)
}

// Result is the outcome of a single click
type Result struct {
	State    State
	Start    *time.Time
	End      *time.Time
	Viewing  *domain.Booking // booking on the clicked date, if it was occupied
	OpenForm bool            // set when the click completed a range
}

// Selector is the date range selection of a single session.
// Clicks are applied one at a time.
type Selector struct {
	mu        sync.Mutex
	occupancy Occupancy
	start     *time.Time
	end       *time.Time
}

// NewSelector creates an empty selector
func NewSelector(occupancy Occupancy) *Selector {
	return &Selector{occupancy: occupancy}
}

// Click applies a click on the given date
func (s *Selector) Click(date time.Time) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	date = domain.NormalizeDate(date)
	occupant, occupied := s.occupancy.Occupant(date)

	switch s.state() {
	case StateCompleted:
		// Любой клик по завершённому выбору начинает всё заново
		s.reset()
		return s.clickEmpty(date, occupant, occupied)
	case StateStarted:
		if occupied {
			return s.result(occupant, false)
		}
		if date.Before(*s.start) {
			prev := *s.start
			s.start, s.end = &date, &prev
		} else {
			s.end = &date
		}
		return s.result(nil, true)
	default:
		return s.clickEmpty(date, occupant, occupied)
	}
}

// Cancel discards the selection and closes the form
func (s *Selector) Cancel() Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	return s.result(nil, false)
}

// Current returns the selection without changing it
func (s *Selector) Current() Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.result(nil, false)
}

// Range returns the selected range once both dates are set
func (s *Selector) Range() (domain.DateRange, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state() != StateCompleted {
		return domain.DateRange{}, false
	}
	return domain.DateRange{Start: *s.start, End: *s.end}, true
}

// State returns the current state
func (s *Selector) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state()
}

func (s *Selector) clickEmpty(date time.Time, occupant *domain.Booking, occupied bool) Result {
	if occupied {
		return s.result(occupant, false)
	}
	s.start = &date
	return s.result(nil, false)
}

func (s *Selector) state() State {
	switch {
	case s.start == nil:
		return StateEmpty
	case s.end == nil:
		return StateStarted
	default:
		return StateCompleted
	}
}

func (s *Selector) reset() {
	s.start, s.end = nil, nil
}

func (s *Selector) result(viewing *domain.Booking, openForm bool) Result {
	r := Result{
		State:    s.state(),
		Viewing:  viewing,
		OpenForm: openForm,
	}
	if s.start != nil {
		start := *s.start
		r.Start = &start
	}
	if s.end != nil {
		end := *s.end
		r.End = &end
	}
	return r
}

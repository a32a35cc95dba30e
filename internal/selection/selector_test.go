package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/sommerhus-booking/internal/calendar"
	"github.com/m04kA/sommerhus-booking/internal/domain"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newSelector(t *testing.T, bookings ...*domain.Booking) *Selector {
	t.Helper()
	return NewSelector(calendar.NewIndex(bookings))
}

func occupied(t *testing.T) *domain.Booking {
	return &domain.Booking{
		ID:        "anna",
		StartDate: mustDate(t, "2025-07-20"),
		EndDate:   mustDate(t, "2025-07-22"),
		Status:    domain.StatusConfirmed,
	}
}

func TestSelector_SwapsEarlierSecondClick(t *testing.T) {
	s := newSelector(t)

	res := s.Click(mustDate(t, "2025-07-10"))
	assert.Equal(t, StateStarted, res.State)
	require.NotNil(t, res.Start)
	assert.Equal(t, "2025-07-10", domain.FormatDate(*res.Start))
	assert.Nil(t, res.End)
	assert.False(t, res.OpenForm)

	res = s.Click(mustDate(t, "2025-07-05"))
	assert.Equal(t, StateCompleted, res.State)
	assert.True(t, res.OpenForm)
	assert.Equal(t, "2025-07-05", domain.FormatDate(*res.Start))
	assert.Equal(t, "2025-07-10", domain.FormatDate(*res.End))

	r, ok := s.Range()
	require.True(t, ok)
	assert.Equal(t, 6, r.Days())
}

func TestSelector_LaterSecondClick(t *testing.T) {
	s := newSelector(t)

	s.Click(mustDate(t, "2025-07-05"))
	res := s.Click(mustDate(t, "2025-07-10"))

	assert.Equal(t, StateCompleted, res.State)
	assert.Equal(t, "2025-07-05", domain.FormatDate(*res.Start))
	assert.Equal(t, "2025-07-10", domain.FormatDate(*res.End))
}

func TestSelector_SameDayTwice(t *testing.T) {
	s := newSelector(t)

	s.Click(mustDate(t, "2025-07-05"))
	res := s.Click(mustDate(t, "2025-07-05"))

	assert.Equal(t, StateCompleted, res.State)
	r, ok := s.Range()
	require.True(t, ok)
	assert.Equal(t, 1, r.Days())
}

func TestSelector_OccupiedClickInEmptyShowsBooking(t *testing.T) {
	s := newSelector(t, occupied(t))

	res := s.Click(mustDate(t, "2025-07-21"))

	assert.Equal(t, StateEmpty, res.State)
	require.NotNil(t, res.Viewing)
	assert.Equal(t, "anna", res.Viewing.ID)
	assert.Nil(t, res.Start)
}

func TestSelector_OccupiedClickInStartedKeepsSelection(t *testing.T) {
	s := newSelector(t, occupied(t))

	s.Click(mustDate(t, "2025-07-10"))
	res := s.Click(mustDate(t, "2025-07-20"))

	assert.Equal(t, StateStarted, res.State)
	require.NotNil(t, res.Viewing)
	assert.Equal(t, "anna", res.Viewing.ID)
	assert.Equal(t, "2025-07-10", domain.FormatDate(*res.Start))
	assert.False(t, res.OpenForm)
}

func TestSelector_ClickAfterCompletedStartsOver(t *testing.T) {
	s := newSelector(t)

	s.Click(mustDate(t, "2025-07-05"))
	s.Click(mustDate(t, "2025-07-10"))
	res := s.Click(mustDate(t, "2025-08-01"))

	assert.Equal(t, StateStarted, res.State)
	assert.Equal(t, "2025-08-01", domain.FormatDate(*res.Start))
	assert.Nil(t, res.End)

	_, ok := s.Range()
	assert.False(t, ok)
}

func TestSelector_OccupiedClickAfterCompletedResets(t *testing.T) {
	s := newSelector(t, occupied(t))

	s.Click(mustDate(t, "2025-07-05"))
	s.Click(mustDate(t, "2025-07-10"))
	res := s.Click(mustDate(t, "2025-07-21"))

	assert.Equal(t, StateEmpty, res.State)
	require.NotNil(t, res.Viewing)
	assert.Nil(t, res.Start)
	assert.Nil(t, res.End)
}

func TestSelector_Cancel(t *testing.T) {
	s := newSelector(t)

	s.Click(mustDate(t, "2025-07-05"))
	res := s.Cancel()

	assert.Equal(t, StateEmpty, res.State)
	assert.Equal(t, StateEmpty, s.State())
	assert.False(t, res.OpenForm)

	s.Click(mustDate(t, "2025-07-05"))
	s.Click(mustDate(t, "2025-07-06"))
	s.Cancel()
	assert.Equal(t, StateEmpty, s.Current().State)
}

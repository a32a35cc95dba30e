package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/sommerhus-booking/internal/domain"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func booking(t *testing.T, id, start, end string, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		ID:        id,
		Name:      id,
		Guests:    1,
		StartDate: mustDate(t, start),
		EndDate:   mustDate(t, end),
		Status:    status,
	}
}

func TestIndex_Occupant(t *testing.T) {
	anna := booking(t, "anna", "2025-06-01", "2025-06-03", domain.StatusConfirmed)
	bo := booking(t, "bo", "2025-06-10", "2025-06-12", domain.StatusPending)
	idx := NewIndex([]*domain.Booking{anna, bo})

	tests := []struct {
		name   string
		date   string
		wantID string
	}{
		{name: "start boundary", date: "2025-06-01", wantID: "anna"},
		{name: "end boundary", date: "2025-06-03", wantID: "anna"},
		{name: "between ranges", date: "2025-06-06", wantID: ""},
		{name: "pending start boundary", date: "2025-06-10", wantID: "bo"},
		{name: "pending end boundary", date: "2025-06-12", wantID: "bo"},
		{name: "before all", date: "2025-05-31", wantID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := idx.Occupant(mustDate(t, tt.date))
			if tt.wantID == "" {
				assert.False(t, ok)
				assert.Nil(t, b)
				assert.False(t, idx.IsOccupied(mustDate(t, tt.date)))
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantID, b.ID)
		})
	}
}

func TestIndex_Occupant_FirstMatchWins(t *testing.T) {
	first := booking(t, "first", "2025-06-01", "2025-06-05", domain.StatusConfirmed)
	second := booking(t, "second", "2025-06-03", "2025-06-08", domain.StatusConfirmed)

	b, ok := NewIndex([]*domain.Booking{first, second}).Occupant(mustDate(t, "2025-06-04"))

	require.True(t, ok)
	assert.Equal(t, "first", b.ID)
}

func TestIndex_Occupant_IgnoresTimeOfDay(t *testing.T) {
	idx := NewIndex([]*domain.Booking{booking(t, "anna", "2025-06-01", "2025-06-03", domain.StatusConfirmed)})

	assert.True(t, idx.IsOccupied(time.Date(2025, 6, 3, 22, 59, 0, 0, time.UTC)))
}

func TestIndex_Conflicts(t *testing.T) {
	anna := booking(t, "anna", "2025-06-01", "2025-06-03", domain.StatusConfirmed)
	bo := booking(t, "bo", "2025-06-10", "2025-06-12", domain.StatusPending)
	idx := NewIndex([]*domain.Booking{anna, bo})

	conflicts := idx.Conflicts(domain.NewDateRange(mustDate(t, "2025-06-03"), mustDate(t, "2025-06-10")))
	assert.Len(t, conflicts, 2)

	assert.Empty(t, idx.Conflicts(domain.NewDateRange(mustDate(t, "2025-06-04"), mustDate(t, "2025-06-09"))))
}

func TestIndex_Month(t *testing.T) {
	pending := booking(t, "pending", "2025-06-01", "2025-06-02", domain.StatusPending)
	awaiting := booking(t, "awaiting", "2025-06-10", "2025-06-10", domain.StatusConfirmed)
	complete := booking(t, "complete", "2025-06-29", "2025-07-02", domain.StatusConfirmed)
	complete.FlightTicketUploaded = true

	days := NewIndex([]*domain.Booking{pending, awaiting, complete}).Month(2025, time.June)

	require.Len(t, days, 30)
	assert.Equal(t, DayPending, days[0].State)
	assert.Equal(t, "pending", days[0].BookingID)
	assert.Equal(t, DayFree, days[2].State)
	assert.Empty(t, days[2].BookingID)
	assert.Equal(t, DayAwaitingTicket, days[9].State)
	assert.Equal(t, DayComplete, days[29].State)
	assert.Equal(t, "2025-06-30", domain.FormatDate(days[29].Date))
}

func TestIndex_Month_LeapFebruary(t *testing.T) {
	assert.Len(t, NewIndex(nil).Month(2024, time.February), 29)
	assert.Len(t, NewIndex(nil).Month(2025, time.February), 28)
}

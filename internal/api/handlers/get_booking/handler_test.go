package get_booking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/sommerhus-booking/internal/api/handlers"
	"github.com/m04kA/sommerhus-booking/internal/domain"
	"github.com/m04kA/sommerhus-booking/internal/service/bookings"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct{}

func (fakeService) Get(id string) (*domain.Booking, error) {
	if id != "b1" {
		return nil, bookings.ErrBookingNotFound
	}
	return &domain.Booking{
		ID:        id,
		Name:      "Anna",
		StartDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
		Status:    domain.StatusConfirmed,
	}, nil
}

func (fakeService) Now() time.Time { return time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC) }

func request(id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+id, nil)
	return mux.SetURLVars(req, map[string]string{"bookingId": id})
}

func TestHandle(t *testing.T) {
	h := NewHandler(fakeService{}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, request("b1"))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Anna", resp.Name)
	assert.Equal(t, 3, resp.StayLength)
	assert.Equal(t, "3.7.2025", resp.DisplayEnd)

	rec = httptest.NewRecorder()
	h.Handle(rec, request("missing"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

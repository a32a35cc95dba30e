package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/sommerhus-booking/internal/domain"
)

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Anna"}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "Anna", v.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"unknown":1}`))
	assert.Error(t, DecodeJSON(req, &v))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.Error(t, DecodeJSON(req, &v))
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"nope"}`, rec.Body.String())
}

func TestFromDomainBooking(t *testing.T) {
	created := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	b := &domain.Booking{
		ID:                   "b1",
		Name:                 "Anna",
		Guests:               2,
		StartDate:            time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:              time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC),
		Status:               domain.StatusConfirmed,
		FlightTicketDeadline: created.Add(domain.TicketDeadline),
		CreatedAt:            created,
	}

	resp := FromDomainBooking(b, created.Add(20*24*time.Hour))

	assert.Equal(t, "2025-07-01", resp.StartDate)
	assert.Equal(t, "1.7.2025", resp.DisplayStart)
	assert.Equal(t, "20.7.2025", resp.DisplayEnd)
	assert.Equal(t, 20, resp.StayLength)
	assert.True(t, resp.TicketOverdue)
	assert.Nil(t, resp.FlightTicketImage)
}

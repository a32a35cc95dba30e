package bookingset

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/sommerhus-booking/internal/domain"
)

func TestStatementBuilder_Placeholders(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	pg, err := NewRepository(nil, DriverPostgres)
	require.NoError(t, err)
	query, args, err := pg.saveQuery("sommerhusBookings", "[]", now)
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO booking_sets (session_key,payload,updated_at) VALUES ($1,$2,$3) "+
			"ON CONFLICT (session_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at",
		query)
	assert.Equal(t, []interface{}{"sommerhusBookings", "[]", now}, args)

	lite, err := NewRepository(nil, DriverSQLite)
	require.NoError(t, err)
	query, args, err = lite.loadQuery("sommerhusBookings")
	require.NoError(t, err)
	assert.Equal(t, "SELECT payload FROM booking_sets WHERE session_key = ?", query)
	assert.Equal(t, []interface{}{"sommerhusBookings"}, args)
}

func TestNewRepository_UnsupportedDriver(t *testing.T) {
	_, err := NewRepository(nil, "mysql")
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestRepository_EmptySessionKey(t *testing.T) {
	repo, err := NewRepository(nil, DriverPostgres)
	require.NoError(t, err)

	_, err = repo.Load(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptySessionKey)
	assert.ErrorIs(t, repo.Save(context.Background(), "", nil), ErrEmptySessionKey)
}

func TestDecode(t *testing.T) {
	bookings, err := decode("")
	require.NoError(t, err)
	assert.Empty(t, bookings)

	_, err = decode("{not json")
	assert.ErrorIs(t, err, ErrDecode)

	bookings, err = decode(`[{"id":"1","name":"Anna","guests":2,"comment":"","startDate":"2025-06-01T00:00:00Z",` +
		`"endDate":"2025-06-03T00:00:00Z","status":"confirmed","flightTicketUploaded":false,` +
		`"flightTicketDeadline":"2025-05-15T10:00:00Z","createdAt":"2025-05-01T10:00:00Z"}]`)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "Anna", bookings[0].Name)
	assert.Equal(t, 3, bookings[0].StayLength())
	assert.Nil(t, bookings[0].FlightTicketImage)
}

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open(DriverSQLite, filepath.Join(t.TempDir(), "bookings.db"))
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRepository_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	repo, err := NewRepository(db, DriverSQLite)
	require.NoError(t, err)
	require.NoError(t, repo.EnsureSchema(ctx))

	store := repo.Session("sommerhusBookings")

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)

	img := "data:image/jpeg;base64,AAAA"
	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	first := []*domain.Booking{{
		ID:                   "1",
		Name:                 "Anna",
		Guests:               2,
		StartDate:            time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:              time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		Status:               domain.StatusConfirmed,
		FlightTicketUploaded: true,
		FlightTicketImage:    &img,
		FlightTicketDeadline: created.Add(domain.TicketDeadline),
		CreatedAt:            created,
	}}
	require.NoError(t, store.Save(ctx, first))

	// повторное сохранение перезаписывает набор
	second := append(first, &domain.Booking{
		ID:        "2",
		Name:      "Bo",
		Guests:    4,
		StartDate: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC),
		Status:    domain.StatusPending,
		CreatedAt: created,
	})
	require.NoError(t, store.Save(ctx, second))

	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Anna", loaded[0].Name)
	require.NotNil(t, loaded[0].FlightTicketImage)
	assert.Equal(t, img, *loaded[0].FlightTicketImage)
	assert.True(t, loaded[0].FlightTicketDeadline.Equal(created.Add(domain.TicketDeadline)))
	assert.Equal(t, domain.StatusPending, loaded[1].Status)

	other, err := repo.Load(ctx, "another-session")
	require.NoError(t, err)
	assert.Empty(t, other)
}

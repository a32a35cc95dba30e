package bookingset

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/sommerhus-booking/internal/domain"
)

const table = "booking_sets"

const schema = `CREATE TABLE IF NOT EXISTS booking_sets (
	session_key TEXT PRIMARY KEY,
	payload     TEXT NOT NULL,
	updated_at  TIMESTAMP NOT NULL
)`

// Repository хранилище наборов бронирований по ключу сессии.
// Весь набор хранится одной строкой в виде JSON.
type Repository struct {
	db      DBExecutor
	builder squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория для указанного драйвера
func NewRepository(db DBExecutor, driver string) (*Repository, error) {
	builder, err := statementBuilder(driver)
	if err != nil {
		return nil, err
	}
	return &Repository{db: db, builder: builder}, nil
}

// EnsureSchema создает таблицу, если её ещё нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: EnsureSchema - create table: %v", ErrExecQuery, err)
	}
	return nil
}

// Load загружает набор бронирований.
// Если для ключа ничего не сохранено, возвращает пустой набор.
func (r *Repository) Load(ctx context.Context, sessionKey string) ([]*domain.Booking, error) {
	query, args, err := r.loadQuery(sessionKey)
	if err != nil {
		return nil, err
	}

	var payload string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return []*domain.Booking{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - scan payload: %v", ErrScanRow, err)
	}

	return decode(payload)
}

// Save сохраняет набор бронирований целиком (insert или update)
func (r *Repository) Save(ctx context.Context, sessionKey string, bookings []*domain.Booking) error {
	payload, err := encode(bookings)
	if err != nil {
		return err
	}

	query, args, err := r.saveQuery(sessionKey, payload, time.Now().UTC())
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// Session возвращает хранилище, привязанное к одному ключу сессии
func (r *Repository) Session(sessionKey string) *SessionStore {
	return &SessionStore{repo: r, key: sessionKey}
}

func (r *Repository) loadQuery(sessionKey string) (string, []interface{}, error) {
	if sessionKey == "" {
		return "", nil, ErrEmptySessionKey
	}

	query, args, err := r.builder.
		Select("payload").
		From(table).
		Where(squirrel.Eq{"session_key": sessionKey}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}
	return query, args, nil
}

func (r *Repository) saveQuery(sessionKey, payload string, now time.Time) (string, []interface{}, error) {
	if sessionKey == "" {
		return "", nil, ErrEmptySessionKey
	}

	// ON CONFLICT поддерживается и PostgreSQL, и SQLite (3.24+)
	query, args, err := r.builder.
		Insert(table).
		Columns("session_key", "payload", "updated_at").
		Values(sessionKey, payload, now).
		Suffix("ON CONFLICT (session_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}
	return query, args, nil
}

// SessionStore хранилище одного набора бронирований
type SessionStore struct {
	repo *Repository
	key  string
}

// Load загружает набор бронирований сессии
func (s *SessionStore) Load(ctx context.Context) ([]*domain.Booking, error) {
	return s.repo.Load(ctx, s.key)
}

// Save сохраняет набор бронирований сессии
func (s *SessionStore) Save(ctx context.Context, bookings []*domain.Booking) error {
	return s.repo.Save(ctx, s.key, bookings)
}

func statementBuilder(driver string) (squirrel.StatementBuilderType, error) {
	switch driver {
	case DriverPostgres:
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar), nil
	case DriverSQLite:
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question), nil
	default:
		return squirrel.StatementBuilderType{}, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

func encode(bookings []*domain.Booking) (string, error) {
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	data, err := json.Marshal(bookings)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return string(data), nil
}

func decode(payload string) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)
	if payload == "" {
		return bookings, nil
	}
	if err := json.Unmarshal([]byte(payload), &bookings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return bookings, nil
}

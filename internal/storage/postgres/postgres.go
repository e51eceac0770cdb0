package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"eventRegistrar/internal/config"
	"eventRegistrar/internal/ledger"
	"eventRegistrar/internal/models"
	"eventRegistrar/internal/storage"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) CreateEvent(ctx context.Context, name string, date time.Time, slots int, observations string) (string, error) {
	query := `
		INSERT INTO events (id, eventname, eventdata, observations, slots, participants)
		VALUES ($1, $2, $3, $4, $5, '[]'::jsonb)`

	id := uuid.New().String()

	_, err := s.DB.ExecContext(ctx, query, id, name, date, slots, observations)
	if err != nil {
		return "", fmt.Errorf("failed to create event: %w", err)
	}

	return id, nil
}

func (s *Storage) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	query := `
		SELECT id, COALESCE(eventname, ''), COALESCE(eventdata, 'epoch'::timestamptz),
		       COALESCE(observations, ''), COALESCE(slots, 0), COALESCE(participants, '[]'::jsonb)
		FROM events
		WHERE id = $1`

	event, err := scanEvent(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

func (s *Storage) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT id, COALESCE(eventname, ''), COALESCE(eventdata, 'epoch'::timestamptz),
		       COALESCE(observations, ''), COALESCE(slots, 0), COALESCE(participants, '[]'::jsonb)
		FROM events
		ORDER BY created_at ASC, id ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// UpdateParticipants is a compare-and-swap on the participants column: the
// write lands only if the stored document still equals the raw bytes the
// caller read. The token is the scanned jsonb itself, never a re-encoding of
// the decoded structs, so entries of legacy records that omit optional keys
// still compare equal. jsonb equality ignores formatting.
func (s *Storage) UpdateParticipants(ctx context.Context, id string, observed []byte, next []models.Participant) error {
	nextJSON, err := marshalParticipants(next)
	if err != nil {
		return fmt.Errorf("failed to encode participants: %w", err)
	}

	query := `
		UPDATE events
		SET participants = $2::jsonb
		WHERE id = $1 AND participants = $3::jsonb`

	result, err := s.DB.ExecContext(ctx, query, id, nextJSON, observed)
	if err != nil {
		return fmt.Errorf("failed to update participants: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected > 0 {
		return nil
	}

	var exists bool
	err = s.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check event existence: %w", err)
	}
	if !exists {
		return storage.ErrEventNotFound
	}

	return storage.ErrSnapshotConflict
}

func (s *Storage) DeleteEvent(ctx context.Context, id string) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

type row interface {
	Scan(dest ...any) error
}

func scanEvent(r row) (*models.Event, error) {
	var (
		event            models.Event
		participantsJSON []byte
	)

	err := r.Scan(
		&event.ID,
		&event.EventName,
		&event.EventDate,
		&event.Observations,
		&event.Slots,
		&participantsJSON,
	)
	if err != nil {
		return nil, err
	}

	if err = json.Unmarshal(participantsJSON, &event.Participants); err != nil {
		return nil, fmt.Errorf("failed to decode participants: %w", err)
	}
	if event.Participants == nil {
		event.Participants = []models.Participant{}
	}
	event.ParticipantsRaw = participantsJSON

	event.AvailableSlots = ledger.AvailableSlots(event.Slots, len(event.Participants))

	return &event, nil
}

func marshalParticipants(participants []models.Participant) ([]byte, error) {
	if participants == nil {
		participants = []models.Participant{}
	}
	return json.Marshal(participants)
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/parcelworks/labelextract/internal/common"
)

// Extraction is one stored pipeline result.
type Extraction struct {
	ID               uuid.UUID
	SourceText       string
	RecipientName    string
	RecipientAddress string
	ModelRaw         string
	CreatedAt        time.Time
}

type ExtractionRepository interface {
	Save(ctx context.Context, e *Extraction) error
	GetByID(ctx context.Context, id uuid.UUID) (*Extraction, error)
	List(ctx context.Context) ([]*Extraction, error)
}

type extractionRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewExtractionRepository(db *sql.DB, logger *slog.Logger) ExtractionRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &extractionRepository{db: db, logger: logger}
}

func (r *extractionRepository) Save(ctx context.Context, e *Extraction) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO extractions (id, source_text, recipient_name, recipient_address, model_raw, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID.String(), e.SourceText, e.RecipientName, e.RecipientAddress, e.ModelRaw, e.CreatedAt,
	)
	if err != nil {
		r.logger.Error("store.save_failed", "id", e.ID, "error", err)
		return common.WrapError(err, "save extraction")
	}
	r.logger.Info("store.save_ok", "id", e.ID, "name_found", e.RecipientName != "", "address_found", e.RecipientAddress != "")
	return nil
}

func (r *extractionRepository) GetByID(ctx context.Context, id uuid.UUID) (*Extraction, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, source_text, recipient_name, recipient_address, model_raw, created_at
		 FROM extractions WHERE id = ?`, id.String())
	e, err := scanExtraction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, common.WrapError(err, "get extraction")
	}
	return e, nil
}

func (r *extractionRepository) List(ctx context.Context) ([]*Extraction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, source_text, recipient_name, recipient_address, model_raw, created_at
		 FROM extractions ORDER BY created_at, id`)
	if err != nil {
		return nil, common.WrapError(err, "list extractions")
	}
	defer rows.Close()

	var out []*Extraction
	for rows.Next() {
		e, err := scanExtraction(rows)
		if err != nil {
			return nil, common.WrapError(err, "scan extraction")
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExtraction(row rowScanner) (*Extraction, error) {
	var e Extraction
	var id string
	if err := row.Scan(&id, &e.SourceText, &e.RecipientName, &e.RecipientAddress, &e.ModelRaw, &e.CreatedAt); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	e.ID = parsed
	return &e, nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"tourmate/internal/domain/application"
	"tourmate/internal/infra"
	"tourmate/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

const insertApplicationSQL = `
INSERT INTO guide_applications (id, full_name, email, phone, city, experience, submitted_at, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

const getApplicationSQL = `
SELECT id, full_name, email, phone, city, experience, submitted_at, status
FROM guide_applications
WHERE id = $1
`

// ApplicationRecord is the persisted row shape of a guide application.
type ApplicationRecord struct {
	ID          uuid.UUID
	FullName    string
	Email       string
	Phone       string
	City        string
	Experience  string
	SubmittedAt time.Time
	Status      string
}

// GuideApplicationRepository is the single external write path of the
// service: an append-only table in the managed database. Applications
// are never updated or deleted here.
type GuideApplicationRepository struct {
	db db.DBTX
}

func NewGuideApplicationRepository(dbtx db.DBTX) *GuideApplicationRepository {
	return &GuideApplicationRepository{db: dbtx}
}

func (r *GuideApplicationRepository) Create(ctx context.Context, app *application.GuideApplication) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx, insertApplicationSQL,
		app.ID(),
		app.FullName(),
		app.Email(),
		app.Phone(),
		app.City(),
		app.Experience(),
		app.SubmittedAt(),
		string(app.Status()),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return uuid.Nil, infra.WrapRepoErr("guide application id already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert guide application", err)
	}
	return app.ID(), nil
}

func (r *GuideApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*ApplicationRecord, error) {
	var rec ApplicationRecord
	err := r.db.QueryRow(ctx, getApplicationSQL, id).Scan(
		&rec.ID,
		&rec.FullName,
		&rec.Email,
		&rec.Phone,
		&rec.City,
		&rec.Experience,
		&rec.SubmittedAt,
		&rec.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("guide application not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get guide application", err)
	}
	return &rec, nil
}

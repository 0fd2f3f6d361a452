package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
	"github.com/Kipkoech854/Real-estate-management/internal/domain/repository"
)

type pgAgencyRepository struct {
	db *sqlx.DB
}

func NewPgAgencyRepository(db *sqlx.DB) repository.AgencyRepository {
	return &pgAgencyRepository{db: db}
}

func (r *pgAgencyRepository) Create(ctx context.Context, agency *entity.Agency) error {
	if agency.ID == "" {
		agency.ID = uuid.New().String()
	}
	agency.CreatedAt = time.Now().UTC()

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO agencies (id, user_id, name, license_number, bio, profile_image_url, verified, created_at)
		VALUES (:id, :user_id, :name, :license_number, :bio, :profile_image_url, :verified, :created_at)
	`, agency)
	return classify("Agency", "create agency", err)
}

func (r *pgAgencyRepository) GetByUserID(ctx context.Context, userID string) (*entity.Agency, error) {
	var agency entity.Agency
	err := r.db.GetContext(ctx, &agency, `
		SELECT id::text AS id, user_id::text AS user_id, name, license_number, bio, profile_image_url, verified, created_at
		FROM agencies
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, classify("Agency", "get agency", err)
	}
	return &agency, nil
}

func (r *pgAgencyRepository) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, "SELECT EXISTS (SELECT 1 FROM agencies WHERE user_id = $1)", userID)
	if err != nil {
		return false, classify("Agency", "check agency", err)
	}
	return exists, nil
}

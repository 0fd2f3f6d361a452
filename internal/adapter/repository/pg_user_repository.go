package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
	"github.com/Kipkoech854/Real-estate-management/internal/domain/repository"
	"github.com/Kipkoech854/Real-estate-management/pkg/errors"
)

const userColumns = `id::text AS id, username, email, phone, password_hash, is_agent, created_at, last_active`

type pgUserRepository struct {
	db *sqlx.DB
}

func NewPgUserRepository(db *sqlx.DB) repository.UserRepository {
	return &pgUserRepository{db: db}
}

func (r *pgUserRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.LastActive = &now

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO users (id, username, email, phone, password_hash, is_agent, created_at, last_active)
		VALUES (:id, :username, :email, :phone, :password_hash, :is_agent, :created_at, :last_active)
	`, user)
	return classify("User", "create user", err)
}

func (r *pgUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	if err := r.db.GetContext(ctx, &user, "SELECT "+userColumns+" FROM users WHERE id = $1", id); err != nil {
		return nil, classify("User", "get user", err)
	}
	return &user, nil
}

func (r *pgUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	if err := r.db.GetContext(ctx, &user, "SELECT "+userColumns+" FROM users WHERE username = $1", username); err != nil {
		return nil, classify("User", "get user by username", err)
	}
	return &user, nil
}

func (r *pgUserRepository) TouchLastActive(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, "UPDATE users SET last_active = $1 WHERE id = $2", at, id)
	if err != nil {
		return classify("User", "update last active", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.NotFound("User", nil)
	}
	return nil
}

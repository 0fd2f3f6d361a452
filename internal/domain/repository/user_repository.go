package repository

import (
	"context"
	"time"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	TouchLastActive(ctx context.Context, id string, at time.Time) error
}

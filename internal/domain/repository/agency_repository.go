package repository

import (
	"context"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
)

type AgencyRepository interface {
	Create(ctx context.Context, agency *entity.Agency) error
	GetByUserID(ctx context.Context, userID string) (*entity.Agency, error)
	ExistsByUserID(ctx context.Context, userID string) (bool, error)
}

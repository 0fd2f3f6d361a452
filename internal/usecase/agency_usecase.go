package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
	"github.com/Kipkoech854/Real-estate-management/internal/domain/repository"
	"github.com/Kipkoech854/Real-estate-management/pkg/errors"
	"github.com/Kipkoech854/Real-estate-management/pkg/logger"
	"github.com/Kipkoech854/Real-estate-management/pkg/validation"
)

const licenseAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type AgencyUseCase struct {
	agencyRepo repository.AgencyRepository
	stateCode  string
	now        func() time.Time
}

func NewAgencyUseCase(agencyRepo repository.AgencyRepository, stateCode string) *AgencyUseCase {
	if stateCode == "" {
		stateCode = "CA"
	}
	return &AgencyUseCase{
		agencyRepo: agencyRepo,
		stateCode:  strings.ToUpper(stateCode),
		now:        time.Now,
	}
}

type RegisterAgencyInput struct {
	Name            string `label:"agency name" validate:"required,min=2,max=100"`
	Bio             string `label:"bio" validate:"max=1000"`
	ProfileImageURL string `label:"profile image URL" validate:"omitempty,url"`
}

func (uc *AgencyUseCase) Register(ctx context.Context, userID string, input RegisterAgencyInput) (*entity.Agency, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Bio = strings.TrimSpace(input.Bio)
	input.ProfileImageURL = strings.TrimSpace(input.ProfileImageURL)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	has, err := uc.agencyRepo.ExistsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if has {
		return nil, errors.Conflict("You already have a registered agency", nil)
	}

	agency := &entity.Agency{
		UserID:          userID,
		Name:            input.Name,
		LicenseNumber:   uc.licenseNumber(),
		Bio:             input.Bio,
		ProfileImageURL: input.ProfileImageURL,
	}
	if err := uc.agencyRepo.Create(ctx, agency); err != nil {
		logger.Error("RegisterAgency Error: user %s: %v", userID, err)
		return nil, err
	}

	logger.Info("agency %s registered for user %s with license %s", agency.ID, userID, agency.LicenseNumber)
	return agency, nil
}

func (uc *AgencyUseCase) HasAgency(ctx context.Context, userID string) (bool, error) {
	return uc.agencyRepo.ExistsByUserID(ctx, userID)
}

func (uc *AgencyUseCase) Details(ctx context.Context, userID string) (*entity.Agency, error) {
	return uc.agencyRepo.GetByUserID(ctx, userID)
}

// licenseNumber formats <STATE>RE-<year>-<6 uppercase alphanumerics>.
func (uc *AgencyUseCase) licenseNumber() string {
	var suffix strings.Builder
	for i := 0; i < 6; i++ {
		suffix.WriteByte(licenseAlphabet[rand.IntN(len(licenseAlphabet))])
	}
	return fmt.Sprintf("%sRE-%d-%s", uc.stateCode, uc.now().Year(), suffix.String())
}

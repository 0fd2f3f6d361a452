package usecase

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kipkoech854/Real-estate-management/pkg/errors"
)

func TestRegisterAgency(t *testing.T) {
	store := newMemoryStore()
	uc := NewAgencyUseCase(memoryAgencyRepo{store}, "ca")
	uc.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	agency, err := uc.Register(ctx, "u-agent", RegisterAgencyInput{Name: "Golden State Homes", Bio: "Central valley specialists"})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^CARE-2025-[A-Z0-9]{6}$`), agency.LicenseNumber)
	assert.False(t, agency.Verified)

	has, err := uc.HasAgency(ctx, "u-agent")
	require.NoError(t, err)
	assert.True(t, has)

	details, err := uc.Details(ctx, "u-agent")
	require.NoError(t, err)
	assert.Equal(t, "Golden State Homes", details.Name)

	_, err = uc.Register(ctx, "u-agent", RegisterAgencyInput{Name: "Second Agency"})
	assert.True(t, errors.Is(err, errors.CodeConflict))

	_, err = uc.Register(ctx, "u-other", RegisterAgencyInput{Name: "Golden State Homes"})
	assert.True(t, errors.Is(err, errors.CodeConflict))
}

func TestRegisterAgency_Validation(t *testing.T) {
	uc := NewAgencyUseCase(memoryAgencyRepo{newMemoryStore()}, "")

	_, err := uc.Register(context.Background(), "u-agent", RegisterAgencyInput{Name: " "})
	assert.True(t, errors.Is(err, errors.CodeValidation))

	_, err = uc.Register(context.Background(), "u-agent", RegisterAgencyInput{Name: "Acme", ProfileImageURL: "not-a-url"})
	assert.Equal(t, "profile image URL must be a valid URL", errors.Message(err))

	has, err := uc.HasAgency(context.Background(), "u-agent")
	require.NoError(t, err)
	assert.False(t, has)
}

package unit

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-tracker/internal/lib/jwt"
)

func TestGenerator_ParseAccess_AcceptsAccessToken(t *testing.T) {
	// Arrange
	gen := jwt.NewGenerator("secret", time.Minute, 24*time.Hour)
	userID := uuid.New().String()

	access, _, err := gen.GeneratePair(userID)
	require.NoError(t, err)

	// Act
	parsedID, err := gen.ParseAccess(access)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestGenerator_ParseAccess_RejectsRefreshToken(t *testing.T) {
	// Arrange
	gen := jwt.NewGenerator("secret", time.Minute, 24*time.Hour)

	_, refresh, err := gen.GeneratePair(uuid.New().String())
	require.NoError(t, err)

	// Act
	parsedID, err := gen.ParseAccess(refresh)

	// Assert
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	assert.Empty(t, parsedID)
}

func TestGenerator_ParseAccess_RejectsForeignSecret(t *testing.T) {
	// Arrange
	gen := jwt.NewGenerator("secret", time.Minute, 24*time.Hour)
	other := jwt.NewGenerator("other-secret", time.Minute, 24*time.Hour)

	access, _, err := other.GeneratePair(uuid.New().String())
	require.NoError(t, err)

	// Act
	parsedID, err := gen.ParseAccess(access)

	// Assert
	assert.Error(t, err)
	assert.Empty(t, parsedID)
}

package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60, // 60 minutes
			Issuer:     "truckcheck-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name   string
		userID uuid.UUID
		email  string
		plan   string
	}{
		{
			name:   "pro plan token",
			userID: uuid.New(),
			email:  "driver@example.com",
			plan:   "pro",
		},
		{
			name:   "free plan token",
			userID: uuid.New(),
			email:  "driver@example.com",
			plan:   "free",
		},
		{
			name:   "empty email still generates",
			userID: uuid.New(),
			email:  "",
			plan:   "free",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := getTestConfig()
			token, expiresAt, err := GenerateToken(tt.userID, tt.email, tt.plan, cfg)

			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Greater(t, expiresAt, int64(0))
		})
	}
}

func TestValidateToken(t *testing.T) {
	cfg := getTestConfig()
	userID := uuid.New()

	token, _, err := GenerateToken(userID, "driver@example.com", "pro", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	require.NoError(t, err)

	gotID, err := UserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.True(t, IsEntitled(claims))
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := getTestConfig()

	token, _, err := GenerateToken(uuid.New(), "driver@example.com", "pro", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "some-other-secret")
	assert.Error(t, err)
}

func TestIsEntitled_FreePlan(t *testing.T) {
	cfg := getTestConfig()

	token, _, err := GenerateToken(uuid.New(), "driver@example.com", "free", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.False(t, IsEntitled(claims))
}

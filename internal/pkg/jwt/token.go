package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/constants"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
)

// GenerateToken generates a JWT token for the given user. The plan claim
// carries the subscription tier that gates multi-stop trips.
func GenerateToken(userID uuid.UUID, email, plan string, cfg *models.Config) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"email":   email,
		"plan":    plan,
		"exp":     expiresAt,
		"iss":     cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string, secret string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// UserIDFromClaims extracts the user id claim, if present and well formed
func UserIDFromClaims(claims *jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := (*claims)["user_id"].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("user_id claim missing")
	}
	return uuid.Parse(raw)
}

// IsEntitled reports whether the plan claim grants multi-stop trips
func IsEntitled(claims *jwt.MapClaims) bool {
	plan, ok := (*claims)["plan"].(string)
	return ok && plan == constants.PlanPro
}

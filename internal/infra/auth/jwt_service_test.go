package auth

import (
	"testing"
	"time"

	"million/config"
	"million/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL: 30 * time.Minute,
			Issuer:         "million-api",
			Audience:       "million-clients",
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	token, expiresAt, err := jwtService.GenerateToken("u1", "Ana García", entity.RoleOwner, "ana@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "Ana García", claims.Name)
	assert.Equal(t, entity.RoleOwner, claims.Role)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "million-api", claims.Issuer)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	_, err = jwtService.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.SecretKey.Access = "a_completely_different_secret_key_value"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, _, err := issuer.GenerateToken("u1", "Ana", entity.RoleOwner, "ana@example.com")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	// Rewind the clock so the issued token is already expired.
	svc.(*jwtService).now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	svc.(*jwtService).ttl = time.Hour

	token, _, err := svc.GenerateToken("u1", "Ana", entity.RoleOwner, "ana@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

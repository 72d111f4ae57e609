//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"storefront/internal/domain/identity"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the upstream identity provider would.
type JWTHelper struct {
	cfg config.AuthConfig
}

func NewJWTHelper(cfg config.AuthConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, subject string, role identity.Role) string {
	t.Helper()
	return h.sign(t, jwt.NewService(h.cfg.Secret, h.cfg.Issuer, h.cfg.Audience, nil), subject, role)
}

func (h *JWTHelper) AdminToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, "admin-1", identity.RoleAdmin)
}

func (h *JWTHelper) CustomerToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, "customer-1", identity.RoleCustomer)
}

// CreateExpiredToken is signed with a clock an hour in the past.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, subject string, role identity.Role) string {
	t.Helper()
	past := func() time.Time { return time.Now().Add(-2 * time.Hour) }
	return h.sign(t, jwt.NewService(h.cfg.Secret, h.cfg.Issuer, h.cfg.Audience, past), subject, role)
}

func (h *JWTHelper) sign(t *testing.T, service *jwt.Service, subject string, role identity.Role) string {
	t.Helper()
	id, err := identity.New(subject, subject+"@example.com", string(role))
	require.NoError(t, err)
	token, err := service.GenerateToken(id, time.Hour)
	require.NoError(t, err)
	return token
}

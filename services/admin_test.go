package services

import (
	"errors"
	"testing"

	"github.com/pmtrec/portofolio/database"
	"github.com/pmtrec/portofolio/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate(secret string) (*AdminGate, *database.AdminFlagRepo) {
	flagRepo := database.NewAdminFlagRepo(database.NewMemorySlotStore())
	cfg := map[string]string{
		"ADMIN_ID":           secret,
		"ADMIN_TOKEN_SECRET": "test-signing-key",
	}
	return NewAdminGate(cfg, flagRepo), flagRepo
}

func TestLoginWithCorrectSecret(t *testing.T) {
	gate, flagRepo := newTestGate("s3cret")

	token, err := gate.Login("s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NoError(t, gate.Verify(token))

	authenticated, err := flagRepo.IsAuthenticated()
	require.NoError(t, err)
	assert.True(t, authenticated)
}

func TestLoginWithWrongSecret(t *testing.T) {
	gate, flagRepo := newTestGate("s3cret")

	_, err := gate.Login("guess")
	require.Error(t, err)
	assert.True(t, errs.IsUnauthorized(err))

	var apiErr *errs.ApiErr
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "adminId", apiErr.Field)

	authenticated, err := flagRepo.IsAuthenticated()
	require.NoError(t, err)
	assert.False(t, authenticated)
}

func TestLoginWithoutConfiguredSecret(t *testing.T) {
	gate, _ := newTestGate("")

	_, err := gate.Login("anything")
	require.Error(t, err)
	assert.True(t, errs.IsConfigError(err))
}

func TestVerifyRejectsForeignToken(t *testing.T) {
	gate, _ := newTestGate("s3cret")

	other, _ := newTestGate("s3cret")
	other.tokenSecret = []byte("different-signing-key")
	token, err := other.Login("s3cret")
	require.NoError(t, err)

	assert.Error(t, gate.Verify(token))
	assert.Error(t, gate.Verify("not-a-token"))
}

func TestLogoutClearsStatus(t *testing.T) {
	gate, _ := newTestGate("s3cret")

	_, err := gate.Login("s3cret")
	require.NoError(t, err)

	require.NoError(t, gate.Logout())

	authenticated, err := gate.Status()
	require.NoError(t, err)
	assert.False(t, authenticated)
}

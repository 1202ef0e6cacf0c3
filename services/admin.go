package services

import (
	"crypto/subtle"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pmtrec/portofolio/config"
	"github.com/pmtrec/portofolio/database"
	"github.com/pmtrec/portofolio/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// AdminGate compares a candidate passphrase against the single configured
// secret and tracks the persisted authenticated flag. This is a
// placeholder-grade gate for a site that protects no sensitive data: one
// shared secret, compared as-is, no lockout, no expiry. It must not be
// mistaken for a security boundary.
type AdminGate struct {
	secret      string
	tokenSecret []byte
	flagRepo    *database.AdminFlagRepo
	logger      zerolog.Logger
}

// NewAdminGate reads ADMIN_ID (the passphrase) and ADMIN_TOKEN_SECRET (the
// session token signing key) from config.
func NewAdminGate(cfg map[string]string, flagRepo *database.AdminFlagRepo) *AdminGate {
	return &AdminGate{
		secret:      config.GetString(cfg, "ADMIN_ID", ""),
		tokenSecret: []byte(config.GetString(cfg, "ADMIN_TOKEN_SECRET", "portofolio-admin")),
		flagRepo:    flagRepo,
		logger:      log.With().Str("serviceName", "adminGate").Logger(),
	}
}

// Login checks the candidate against the configured secret. On match it
// persists the authenticated flag and returns a session token; on mismatch
// it returns a field-level error and leaves the flag untouched.
func (g *AdminGate) Login(candidate string) (string, error) {
	if g.secret == "" {
		return "", errs.NewConfigError("ADMIN_ID")
	}
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(g.secret)) != 1 {
		g.logger.Warn().Msg("rejected admin login attempt")
		apiErr := errs.NewUnauthorizedError("identifiant incorrect")
		apiErr.Field = "adminId"
		return "", apiErr
	}

	if err := g.flagRepo.Set(true); err != nil {
		return "", err
	}

	// The session has no expiry; it lasts until logout or storage clear.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "admin"})
	signed, err := token.SignedString(g.tokenSecret)
	if err != nil {
		return "", errs.NewInternalError("failed to sign admin token")
	}
	return signed, nil
}

// Verify checks a session token previously minted by Login.
func (g *AdminGate) Verify(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrUnauthorized
		}
		return g.tokenSecret, nil
	})
	if err != nil || !token.Valid {
		return errs.Unauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["role"] != "admin" {
		return errs.Unauthorized
	}
	return nil
}

// Logout clears the persisted flag.
func (g *AdminGate) Logout() error {
	return g.flagRepo.Clear()
}

// Status reports the persisted flag.
func (g *AdminGate) Status() (bool, error) {
	return g.flagRepo.IsAuthenticated()
}

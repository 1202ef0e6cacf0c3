package database

import (
	"encoding/json"

	"github.com/pmtrec/portofolio/errs"
	"github.com/rs/zerolog/log"
)

// AdminFlagRepo persists the single authenticated flag under the
// adminAuthenticated slot. No expiry, no per-action re-authentication.
type AdminFlagRepo struct {
	store SlotStore
}

func NewAdminFlagRepo(store SlotStore) *AdminFlagRepo {
	return &AdminFlagRepo{store}
}

// IsAuthenticated reads the persisted flag. Absent or unreadable values count
// as not authenticated.
func (r *AdminFlagRepo) IsAuthenticated() (bool, error) {
	raw, err := r.store.Load(KeyAdminAuthenticated)
	if err != nil {
		return false, errs.NewStorageError("load", KeyAdminAuthenticated, err)
	}
	if raw == nil {
		return false, nil
	}

	var flag bool
	if err := json.Unmarshal(raw, &flag); err != nil {
		log.Warn().Err(err).Str("key", KeyAdminAuthenticated).Msg("discarding corrupt slot, treating as unauthenticated")
		return false, nil
	}
	return flag, nil
}

// Set persists the flag.
func (r *AdminFlagRepo) Set(authenticated bool) error {
	raw, err := json.Marshal(authenticated)
	if err != nil {
		return errs.NewStorageError("encode", KeyAdminAuthenticated, err)
	}
	if err := r.store.Save(KeyAdminAuthenticated, raw); err != nil {
		return errs.NewStorageError("save", KeyAdminAuthenticated, err)
	}
	return nil
}

// Clear removes the flag, logging the admin out.
func (r *AdminFlagRepo) Clear() error {
	if err := r.store.Delete(KeyAdminAuthenticated); err != nil {
		return errs.NewStorageError("delete", KeyAdminAuthenticated, err)
	}
	return nil
}

package database

import (
	"encoding/json"
	"time"

	"github.com/pmtrec/portofolio/errs"
	"github.com/pmtrec/portofolio/models"
	"github.com/rs/zerolog/log"
)

// CertificationRepo manages the custom certification list stored under the
// customCertifications slot, mirroring ProjectRepo's contract.
type CertificationRepo struct {
	store SlotStore
}

func NewCertificationRepo(store SlotStore) *CertificationRepo {
	return &CertificationRepo{store}
}

// FindAllCustom returns the stored custom certifications in storage order,
// with the same corrupt-slot-means-empty policy as projects.
func (r *CertificationRepo) FindAllCustom() ([]models.Certification, error) {
	raw, err := r.store.Load(KeyCustomCertifications)
	if err != nil {
		return nil, errs.NewStorageError("load", KeyCustomCertifications, err)
	}
	if raw == nil {
		return []models.Certification{}, nil
	}

	var certifications []models.Certification
	if err := json.Unmarshal(raw, &certifications); err != nil {
		log.Warn().Err(err).Str("key", KeyCustomCertifications).Msg("discarding corrupt slot, treating as empty")
		return []models.Certification{}, nil
	}
	return certifications, nil
}

// FindByID returns the custom certification with the given id.
func (r *CertificationRepo) FindByID(id int64) (models.Certification, error) {
	certifications, err := r.FindAllCustom()
	if err != nil {
		return models.Certification{}, err
	}
	for _, c := range certifications {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Certification{}, errs.NewNotFound("certification")
}

// Add appends a new custom certification and persists the full list.
func (r *CertificationRepo) Add(certification models.Certification) (models.Certification, error) {
	certifications, err := r.FindAllCustom()
	if err != nil {
		return models.Certification{}, err
	}

	if certification.ID == 0 {
		certification.ID = time.Now().UnixMilli()
	}
	for containsCertificationID(certifications, certification.ID) {
		certification.ID++
	}

	certifications = append(certifications, certification)
	if err := r.saveAll(certifications); err != nil {
		return models.Certification{}, err
	}
	return certification, nil
}

// Update replaces the custom certification with the given id wholesale.
func (r *CertificationRepo) Update(id int64, certification models.Certification) (models.Certification, error) {
	certifications, err := r.FindAllCustom()
	if err != nil {
		return models.Certification{}, err
	}

	for i := range certifications {
		if certifications[i].ID == id {
			certification.ID = id
			certifications[i] = certification
			if err := r.saveAll(certifications); err != nil {
				return models.Certification{}, err
			}
			return certification, nil
		}
	}
	return models.Certification{}, errs.NewNotFound("certification")
}

// Delete removes the custom certification with the given id.
func (r *CertificationRepo) Delete(id int64) error {
	certifications, err := r.FindAllCustom()
	if err != nil {
		return err
	}

	remaining := make([]models.Certification, 0, len(certifications))
	for _, c := range certifications {
		if c.ID != id {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == len(certifications) {
		return errs.NewNotFound("certification")
	}
	return r.saveAll(remaining)
}

func (r *CertificationRepo) saveAll(certifications []models.Certification) error {
	raw, err := json.Marshal(certifications)
	if err != nil {
		return errs.NewStorageError("encode", KeyCustomCertifications, err)
	}
	if err := r.store.Save(KeyCustomCertifications, raw); err != nil {
		return errs.NewStorageError("save", KeyCustomCertifications, err)
	}
	return nil
}

func containsCertificationID(certifications []models.Certification, id int64) bool {
	for _, c := range certifications {
		if c.ID == id {
			return true
		}
	}
	return false
}

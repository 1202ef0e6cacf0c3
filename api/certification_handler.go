package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pmtrec/portofolio/content"
	"github.com/pmtrec/portofolio/database"
	"github.com/pmtrec/portofolio/errs"
	"github.com/pmtrec/portofolio/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type certificationHandler struct {
	responder         Responder
	logger            zerolog.Logger
	aggregator        *content.Aggregator
	certificationRepo *database.CertificationRepo
}

func newCertificationHandler(aggregator *content.Aggregator, certificationRepo *database.CertificationRepo) certificationHandler {
	logger := log.With().Str("handlerName", "certificationHandler").Logger()

	return certificationHandler{
		responder:         NewResponder(logger),
		logger:            logger,
		aggregator:        aggregator,
		certificationRepo: certificationRepo,
	}
}

// CertificationCollection represents the aggregated certification list.
type CertificationCollection struct {
	Certifications []models.Certification `json:"certifications"`
	Total          int                    `json:"total"`
}

func (h certificationHandler) getAllCertifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certifications, err := h.aggregator.ListCertifications()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, CertificationCollection{
			Certifications: certifications,
			Total:          len(certifications),
		})
	}
}

func (h certificationHandler) createCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certification, ok := h.decodeCertification(w, r)
		if !ok {
			return
		}

		certification.ID = 0

		created, err := h.certificationRepo.Add(certification)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

func (h certificationHandler) updateCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificationID, ok := h.parseCertificationID(w, r)
		if !ok {
			return
		}

		certification, ok := h.decodeCertification(w, r)
		if !ok {
			return
		}

		updated, err := h.certificationRepo.Update(certificationID, certification)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h certificationHandler) deleteCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificationID, ok := h.parseCertificationID(w, r)
		if !ok {
			return
		}

		if err := h.certificationRepo.Delete(certificationID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "certification deleted successfully",
		})
	}
}

func (h certificationHandler) decodeCertification(w http.ResponseWriter, r *http.Request) (models.Certification, bool) {
	var certification models.Certification
	if err := json.NewDecoder(r.Body).Decode(&certification); err != nil {
		h.logger.Error().Err(err).Msg("Failed to decode certification request body")
		h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
		return models.Certification{}, false
	}

	if certification.Title == "" {
		h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
		return models.Certification{}, false
	}
	if certification.FileType != "" && !models.ValidFileType(certification.FileType) {
		h.responder.WriteError(w, errs.NewInvalidFieldError("fileType", "must be one of image, pdf, document"))
		return models.Certification{}, false
	}
	return certification, true
}

func (h certificationHandler) parseCertificationID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	certificationIDStr := chi.URLParam(r, "certificationID")
	if certificationIDStr == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("missing certificationID"))
		return 0, false
	}

	certificationID, err := strconv.ParseInt(certificationIDStr, 10, 64)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid certificationID"))
		return 0, false
	}
	return certificationID, true
}

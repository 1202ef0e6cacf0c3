package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pmtrec/portofolio/errs"
	"github.com/pmtrec/portofolio/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const maxUploadFormMemory = 32 << 20

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploads   *services.UploadService
}

func newUploadHandler(uploads *services.UploadService) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		uploads:   uploads,
	}
}

// upload accepts multipart files under the "files" field and returns the
// stored entries, data-URL previews included for images.
func (h uploadHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadFormMemory); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart body"))
			return
		}

		fileHeaders := r.MultipartForm.File["files"]
		if len(fileHeaders) == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("files"))
			return
		}

		uploaded := make([]services.UploadedFile, 0, len(fileHeaders))
		for _, fileHeader := range fileHeaders {
			saved, err := h.uploads.Save(fileHeader)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			uploaded = append(uploaded, saved)
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"files": uploaded,
			"total": len(uploaded),
		})
	}
}

func (h uploadHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		files := h.uploads.List()
		h.responder.WriteJSON(w, map[string]any{
			"files": files,
			"total": len(files),
		})
	}
}

func (h uploadHandler) remove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uploadID := chi.URLParam(r, "uploadID")
		if uploadID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing uploadID"))
			return
		}

		if err := h.uploads.Remove(uploadID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "upload removed successfully",
		})
	}
}

package services

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pmtrec/portofolio/config"
	"github.com/pmtrec/portofolio/errs"
)

const (
	maxUploadSize = 10 * 1024 * 1024
)

var allowedUploadExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}

var imagePreviewMIMEs = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// UploadedFile describes one stored file. Preview is a data URL for images
// and empty otherwise.
type UploadedFile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Type       string    `json:"type"`
	Preview    string    `json:"preview,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`

	path string
}

// UploadService stores uploads on local disk and keeps an in-memory registry.
// The registry is ephemeral: files from earlier runs are not re-listed,
// matching the per-session lifetime of the upload preview page.
type UploadService struct {
	dir string

	mu    sync.Mutex
	files map[string]UploadedFile
}

func NewUploadService(cfg map[string]string) *UploadService {
	return &UploadService{
		dir:   config.GetString(cfg, "UPLOAD_DIR", "uploads"),
		files: make(map[string]UploadedFile),
	}
}

// Save validates and stores one multipart file, returning its registry entry.
func (s *UploadService) Save(fileHeader *multipart.FileHeader) (UploadedFile, error) {
	if fileHeader.Size > maxUploadSize {
		return UploadedFile{}, errs.NewInvalidFieldError("file", fmt.Sprintf("%s dépasse la taille maximale de 10MB", fileHeader.Filename))
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedUploadExtensions[ext] {
		return UploadedFile{}, errs.NewInvalidFieldError("file", fmt.Sprintf("%s a un format non supporté", fileHeader.Filename))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return UploadedFile{}, err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadSize+1))
	if err != nil {
		return UploadedFile{}, err
	}
	if int64(len(data)) > maxUploadSize {
		return UploadedFile{}, errs.NewInvalidFieldError("file", fmt.Sprintf("%s dépasse la taille maximale de 10MB", fileHeader.Filename))
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return UploadedFile{}, err
	}

	id := uuid.NewString()
	path := filepath.Join(s.dir, id+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return UploadedFile{}, err
	}

	uploaded := UploadedFile{
		ID:         id,
		Name:       fileHeader.Filename,
		Size:       int64(len(data)),
		Type:       fileHeader.Header.Get("Content-Type"),
		UploadedAt: time.Now(),
		path:       path,
	}
	if mimeType, ok := imagePreviewMIMEs[ext]; ok {
		uploaded.Preview = fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
	}

	s.mu.Lock()
	s.files[id] = uploaded
	s.mu.Unlock()

	return uploaded, nil
}

// List returns the registered uploads in upload order.
func (s *UploadService) List() []UploadedFile {
	s.mu.Lock()
	defer s.mu.Unlock()

	listed := make([]UploadedFile, 0, len(s.files))
	for _, f := range s.files {
		listed = append(listed, f)
	}
	sort.Slice(listed, func(i, j int) bool {
		return listed[i].UploadedAt.Before(listed[j].UploadedAt)
	})
	return listed
}

// Remove deletes one upload from disk and from the registry.
func (s *UploadService) Remove(id string) error {
	s.mu.Lock()
	uploaded, ok := s.files[id]
	if ok {
		delete(s.files, id)
	}
	s.mu.Unlock()

	if !ok {
		return errs.NewNotFound("upload")
	}
	if err := os.Remove(uploaded.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

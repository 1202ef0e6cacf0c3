package models

// File types a certification document can point at.
const (
	FileTypeImage    = "image"
	FileTypePDF      = "pdf"
	FileTypeDocument = "document"
)

// ValidFileType reports whether ft is a known certification file type.
func ValidFileType(ft string) bool {
	switch ft {
	case FileTypeImage, FileTypePDF, FileTypeDocument:
		return true
	}
	return false
}

// Certification represents a certification entry. Same id scheme and lifecycle
// as Project: built-ins are fixed and immutable, custom entries are managed by
// the dashboard.
type Certification struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Issuer      string `json:"issuer"`
	IssueDate   string `json:"issueDate"` // ISO 8601 date
	FileType    string `json:"fileType"`
	FileURL     string `json:"fileUrl"`
	Image       string `json:"image,omitempty"`
}

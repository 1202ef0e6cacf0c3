package models

// Project categories shown by the portfolio filter bar.
const (
	CategoryFrontend  = "frontend"
	CategoryBackend   = "backend"
	CategoryFullstack = "fullstack"
	CategoryMobile    = "mobile"
)

// Categories lists the valid project categories in display order.
func Categories() []string {
	return []string{CategoryFrontend, CategoryBackend, CategoryFullstack, CategoryMobile}
}

// ValidCategory reports whether cat is one of the known project categories.
func ValidCategory(cat string) bool {
	switch cat {
	case CategoryFrontend, CategoryBackend, CategoryFullstack, CategoryMobile:
		return true
	}
	return false
}

// Project represents a portfolio project. Built-in projects carry small fixed
// ids; custom projects get a creation-timestamp id assigned by the repository.
type Project struct {
	ID              int64             `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	LongDescription string            `json:"longDescription"`
	Image           string            `json:"image"`
	Technologies    []string          `json:"technologies"`
	Category        string            `json:"category"`
	Github          string            `json:"github"`
	Demo            string            `json:"demo"`
	Featured        bool              `json:"featured"`
	Stats           map[string]string `json:"stats"`
}

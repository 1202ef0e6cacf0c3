package models

// ContactRequest carries a contact form submission. Budget and timeline are
// optional; the email service substitutes a placeholder when they are empty.
type ContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Budget   string `json:"budget"`
	Timeline string `json:"timeline"`
}

// Package forms holds the request shapes for the public lead-capture forms.
package forms

import "strings"

// LeadRequest represents a lead-magnet signup. Email is the only field the
// landing pages collect.
type LeadRequest struct {
	Email string `form:"email" validate:"required,email"`
}

// Normalize trims surrounding whitespace before validation.
func (r *LeadRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

// Fields returns the submission payload forwarded to the spreadsheet webhook.
func (r *LeadRequest) Fields() map[string]string {
	return map[string]string{"email": r.Email}
}

// ContactRequest represents a contact form submission. Name, email, and the
// improvements question are required; the other qualifying fields are
// optional.
type ContactRequest struct {
	Name           string `form:"name" validate:"required"`
	Email          string `form:"email" validate:"required,email"`
	Company        string `form:"company"`
	Role           string `form:"role"`
	CurrentProcess string `form:"current_process"`
	Improvements   string `form:"improvements" validate:"required"`
	Budget         string `form:"budget"`
}

// Normalize trims surrounding whitespace from every field before validation.
func (r *ContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Company = strings.TrimSpace(r.Company)
	r.Role = strings.TrimSpace(r.Role)
	r.CurrentProcess = strings.TrimSpace(r.CurrentProcess)
	r.Improvements = strings.TrimSpace(r.Improvements)
	r.Budget = strings.TrimSpace(r.Budget)
}

// Fields returns the submission payload forwarded to the spreadsheet webhook.
func (r *ContactRequest) Fields() map[string]string {
	return map[string]string{
		"name":            r.Name,
		"email":           r.Email,
		"company":         r.Company,
		"role":            r.Role,
		"current_process": r.CurrentProcess,
		"improvements":    r.Improvements,
		"budget":          r.Budget,
	}
}

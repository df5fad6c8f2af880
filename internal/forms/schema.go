// Package forms implements the shared validation + notification pipeline
// behind every submission endpoint. Each endpoint contributes a Schema (its
// field list, validation rules and email templates); the pipeline itself is
// endpoint-agnostic.
package forms

import "strings"

// Field describes one submitted field within a Schema.
type Field struct {
	Name     string
	Required bool
	// Default, when non-empty, replaces an absent optional value after
	// validation passes.
	Default string
	// Valid is the format check applied when the field is present. Nil means
	// any content is accepted.
	Valid func(string) bool
	// Message is returned to the caller when Valid fails.
	Message string
}

// Attachment is an uploaded file buffered in memory, named by its original
// filename.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Submission is one form post: field values keyed by field name, plus any
// uploaded files. It lives for a single request and is never persisted.
type Submission struct {
	Values      map[string]string
	Attachments []Attachment
}

// Get returns the trimmed value of a field, or "" when absent.
func (s *Submission) Get(name string) string {
	return strings.TrimSpace(s.Values[name])
}

// Schema configures the pipeline for one endpoint.
type Schema struct {
	// Kind names the submission type in logs and owner-notice subjects.
	Kind string
	// Fields in validation order. The first present-but-invalid field
	// determines the rejection message.
	Fields []Field
	// AllowFiles permits multipart attachments on this endpoint.
	AllowFiles bool

	OwnerSubject string
	OwnerBody    func(sub *Submission) (plain, html string)

	AckSubject string
	AckBody    func(sub *Submission) (plain, html string)
}

// Validate checks a submission against the schema. All required fields are
// checked for presence first; only then are formats validated, field by
// field in schema order, stopping at the first failure. Errors are not
// accumulated.
func (sch *Schema) Validate(sub *Submission) *RejectionError {
	for _, f := range sch.Fields {
		if f.Required && sub.Get(f.Name) == "" {
			return &RejectionError{Kind: MissingFields, Message: "Missing required fields"}
		}
	}

	for _, f := range sch.Fields {
		v := sub.Get(f.Name)
		if v == "" {
			// Absence is always acceptable for optional fields.
			continue
		}
		if f.Valid != nil && !f.Valid(v) {
			return &RejectionError{Kind: InvalidField, Field: f.Name, Message: f.Message}
		}
	}
	return nil
}

// ApplyDefaults fills in placeholder values for absent optional fields.
// Called after validation so a default never masks an invalid value.
func (sch *Schema) ApplyDefaults(sub *Submission) {
	if sub.Values == nil {
		sub.Values = make(map[string]string)
	}
	for _, f := range sch.Fields {
		if f.Default != "" && sub.Get(f.Name) == "" {
			sub.Values[f.Name] = f.Default
		}
	}
}

// Package types provides type definitions for structured data used throughout the autofill extraction core.
//
//nolint:revive // types is a standard Go package name pattern
package types

// FieldKind identifies the kind of form control a descriptor was built from.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindEmail    FieldKind = "email"
	KindTel      FieldKind = "tel"
	KindURL      FieldKind = "url"
	KindTextarea FieldKind = "textarea"
	KindSelect   FieldKind = "select"
	KindFile     FieldKind = "file"
)

// FieldDescriptor is an immutable snapshot of a form element's classifiable
// attributes. It is produced fresh per scan by the scanner and carries no
// reference back to the live page.
type FieldDescriptor struct {
	Kind            FieldKind `json:"kind"`
	Name            string    `json:"name,omitempty"`
	ID              string    `json:"id,omitempty"`
	Placeholder     string    `json:"placeholder,omitempty"`
	LabelText       string    `json:"label_text,omitempty"`
	SurroundingText string    `json:"surrounding_text,omitempty"`
	Rows            int       `json:"rows,omitempty"` // textarea row count, 0 if not set

	// File input constraints. AcceptedTypes is empty when the input
	// declares no accept attribute, meaning any type is allowed.
	AcceptedTypes []string `json:"accepted_types,omitempty"`
	MaxSizeBytes  int64    `json:"max_size_bytes,omitempty"` // 0 means unspecified
}

// Accepts reports whether the descriptor's accept constraint allows the
// given MIME type. An empty constraint allows everything.
func (d FieldDescriptor) Accepts(mimeType string) bool {
	if len(d.AcceptedTypes) == 0 {
		return true
	}
	for _, t := range d.AcceptedTypes {
		if t == mimeType {
			return true
		}
	}
	return false
}

// DocumentMetadata describes a stored candidate document (resume, cover
// letter) as supplied by the storage collaborator.
type DocumentMetadata struct {
	FileName    string `json:"file_name,omitempty"`
	MimeType    string `json:"mime_type"`
	SizeBytes   int64  `json:"size_bytes"`
	Fingerprint string `json:"fingerprint,omitempty"` // SHA-256 hex of content
}

package types

// FieldType is the closed enumeration of semantic profile field types a
// form field can map to. Declaration order is significant: it is the
// deterministic tie-break order used by the classifier.
type FieldType int

const (
	FieldTypeFirstName FieldType = iota
	FieldTypeLastName
	FieldTypeEmail
	FieldTypePhone
	FieldTypeAddressLine
	FieldTypeCity
	FieldTypeState
	FieldTypePostalCode
	FieldTypeCountry
	FieldTypeLinkedInURL
	FieldTypePortfolioURL
	FieldTypeCoverLetter
	FieldTypeResumeText
	FieldTypeUnmapped
)

var fieldTypeNames = map[FieldType]string{
	FieldTypeFirstName:    "first_name",
	FieldTypeLastName:     "last_name",
	FieldTypeEmail:        "email",
	FieldTypePhone:        "phone",
	FieldTypeAddressLine:  "address_line",
	FieldTypeCity:         "city",
	FieldTypeState:        "state",
	FieldTypePostalCode:   "postal_code",
	FieldTypeCountry:      "country",
	FieldTypeLinkedInURL:  "linkedin_url",
	FieldTypePortfolioURL: "portfolio_url",
	FieldTypeCoverLetter:  "cover_letter",
	FieldTypeResumeText:   "resume_text",
	FieldTypeUnmapped:     "unmapped",
}

// String returns the snake_case name of the field type.
func (ft FieldType) String() string {
	if name, ok := fieldTypeNames[ft]; ok {
		return name
	}
	return "unmapped"
}

// MarshalText implements encoding.TextMarshaler so mappings serialize with
// readable field type names.
func (ft FieldType) MarshalText() ([]byte, error) {
	return []byte(ft.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ft *FieldType) UnmarshalText(text []byte) error {
	s := string(text)
	for t, name := range fieldTypeNames {
		if name == s {
			*ft = t
			return nil
		}
	}
	*ft = FieldTypeUnmapped
	return nil
}

// AllFieldTypes lists every mappable field type in tie-break order,
// excluding FieldTypeUnmapped.
func AllFieldTypes() []FieldType {
	out := make([]FieldType, 0, int(FieldTypeUnmapped))
	for ft := FieldTypeFirstName; ft < FieldTypeUnmapped; ft++ {
		out = append(out, ft)
	}
	return out
}

// FieldMapping is the classification result for a single descriptor.
// Exactly one mapping is produced per descriptor; FieldType is
// FieldTypeUnmapped when no candidate cleared the acceptance threshold.
type FieldMapping struct {
	Descriptor    FieldDescriptor `json:"descriptor"`
	FieldType     FieldType       `json:"field_type"`
	Confidence    float64         `json:"confidence"`
	ResolvedValue string          `json:"resolved_value,omitempty"`
}

// UploadKind identifies the purpose of a file upload field.
type UploadKind string

const (
	UploadKindResume      UploadKind = "resume"
	UploadKindCoverLetter UploadKind = "cover_letter"
	UploadKindPortfolio   UploadKind = "portfolio"
	UploadKindOther       UploadKind = "other"
)

// FileUploadMapping is the match result for a file input against a stored
// candidate document. A mapping with CompatibilityOK=false is still
// reported so callers can explain why the field was skipped, but must
// never be acted upon for an actual upload.
type FileUploadMapping struct {
	Descriptor      FieldDescriptor `json:"descriptor"`
	UploadKind      UploadKind      `json:"upload_kind"`
	Confidence      float64         `json:"confidence"`
	CompatibilityOK bool            `json:"compatibility_ok"`
}

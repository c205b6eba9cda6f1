package cvparse

import "fmt"

// ExtractionError represents an operational failure while running the
// extraction pipeline. Heuristic shortfalls are not errors; they surface
// as result states on ExtractedProfileData instead.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// StaleExtractionError is returned when a cached or in-flight extraction
// is requested for a fingerprint that has been invalidated.
type StaleExtractionError struct {
	Fingerprint string
}

func (e *StaleExtractionError) Error() string {
	return fmt.Sprintf("extraction for fingerprint %s is stale", e.Fingerprint)
}

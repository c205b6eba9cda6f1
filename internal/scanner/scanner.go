// Package scanner builds immutable field descriptors from raw HTML form
// markup. It is the only place HTML structure is inspected; downstream
// classifiers operate purely on descriptor values.
package scanner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

// ScanError represents a failure to parse the page HTML.
type ScanError struct {
	Message string
	Cause   error
}

func (e *ScanError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scan error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("scan error: %s", e.Message)
}

func (e *ScanError) Unwrap() error {
	return e.Cause
}

// maxContextChars bounds how much surrounding text is captured per field.
const maxContextChars = 200

// ScanHTML parses an HTML document or fragment and returns one descriptor
// per classifiable form control (input, textarea, select), in document
// order. Hidden, submit, and button inputs are skipped.
func ScanHTML(htmlContent string) ([]types.FieldDescriptor, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, &ScanError{Message: "failed to parse HTML", Cause: err}
	}

	var descriptors []types.FieldDescriptor
	doc.Find("input, textarea, select").Each(func(_ int, s *goquery.Selection) {
		d, ok := buildDescriptor(doc, s)
		if !ok {
			return
		}
		descriptors = append(descriptors, d)
	})

	return descriptors, nil
}

// buildDescriptor converts a single form element selection into a
// descriptor value. Returns ok=false for element kinds that cannot hold
// profile data.
func buildDescriptor(doc *goquery.Document, s *goquery.Selection) (types.FieldDescriptor, bool) {
	kind, ok := elementKind(s)
	if !ok {
		return types.FieldDescriptor{}, false
	}

	d := types.FieldDescriptor{
		Kind:            kind,
		Name:            s.AttrOr("name", ""),
		ID:              s.AttrOr("id", ""),
		Placeholder:     s.AttrOr("placeholder", ""),
		LabelText:       labelText(doc, s),
		SurroundingText: surroundingText(s),
	}

	if kind == types.KindTextarea {
		if rows, err := strconv.Atoi(s.AttrOr("rows", "")); err == nil {
			d.Rows = rows
		}
	}

	if kind == types.KindFile {
		d.AcceptedTypes = parseAccept(s.AttrOr("accept", ""))
		if size, err := strconv.ParseInt(s.AttrOr("data-max-size", ""), 10, 64); err == nil && size > 0 {
			d.MaxSizeBytes = size
		}
	}

	return d, true
}

// elementKind maps a form element to its descriptor kind.
func elementKind(s *goquery.Selection) (types.FieldKind, bool) {
	switch goquery.NodeName(s) {
	case "textarea":
		return types.KindTextarea, true
	case "select":
		return types.KindSelect, true
	case "input":
		switch strings.ToLower(s.AttrOr("type", "text")) {
		case "text", "search":
			return types.KindText, true
		case "email":
			return types.KindEmail, true
		case "tel":
			return types.KindTel, true
		case "url":
			return types.KindURL, true
		case "file":
			return types.KindFile, true
		default:
			// hidden, submit, checkbox, radio, password etc. carry no
			// profile text
			return "", false
		}
	}
	return "", false
}

// labelText resolves the label associated with a form element: a
// <label for=...> reference, a wrapping <label>, or an aria-label
// attribute, in that priority order.
func labelText(doc *goquery.Document, s *goquery.Selection) string {
	if id := s.AttrOr("id", ""); id != "" {
		if label := doc.Find(fmt.Sprintf("label[for=%q]", id)); label.Length() > 0 {
			return normalizeSpace(label.First().Text())
		}
	}
	if wrapping := s.ParentsFiltered("label"); wrapping.Length() > 0 {
		return normalizeSpace(wrapping.First().Text())
	}
	if aria := s.AttrOr("aria-label", ""); aria != "" {
		return normalizeSpace(aria)
	}
	return ""
}

// surroundingText captures nearby text for the context strategy: the text
// of the closest container element, truncated to a fixed budget.
func surroundingText(s *goquery.Selection) string {
	parent := s.Parent()
	for i := 0; i < 3 && parent.Length() > 0; i++ {
		text := normalizeSpace(parent.Text())
		if text != "" {
			if len(text) > maxContextChars {
				text = text[:maxContextChars]
			}
			return text
		}
		parent = parent.Parent()
	}
	return ""
}

// parseAccept splits an accept attribute into MIME type entries.
// Extension entries (".pdf") are translated to their MIME types when
// known; unknown extensions are kept as-is so compatibility checks can
// still compare them.
func parseAccept(accept string) []string {
	if strings.TrimSpace(accept) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(accept, ",") {
		entry := strings.ToLower(strings.TrimSpace(part))
		if entry == "" {
			continue
		}
		if mime, ok := extensionMimeTypes[entry]; ok {
			entry = mime
		}
		out = append(out, entry)
	}
	return out
}

var extensionMimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
	".rtf":  "application/rtf",
	".odt":  "application/vnd.oasis.opendocument.text",
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

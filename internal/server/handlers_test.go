package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/config"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/cvparse"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/fetch"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/patterns"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

// newTestServer builds a server with the in-process pipeline wired up but
// no database. Handlers exercised here must not touch persistence.
func newTestServer() *Server {
	library := patterns.NewLibrary()
	return &Server{
		library:   library,
		cache:     cvparse.NewCache(cvparse.NewExtractor(library)),
		fetcher:   fetch.NewCachedFetcher(nil),
		threshold: 0.5,
		jwtService: NewJWTService(&config.JWTConfig{
			Secret:          "test-secret-key",
			ExpirationHours: 1,
		}),
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

const testCV = "Jane Doe\njane@x.com\n555-1234\n\nEXPERIENCE\nSoftware Engineer, Acme Corp, 2020-2022"

func TestHandleExtract(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s.handleExtract, "/extract", ExtractRequest{
		Text:     testCV,
		FileName: "resume.txt",
		MimeType: "text/plain",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result types.ExtractedProfileData
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	assert.Equal(t, types.StatusOK, result.Status)
	assert.Equal(t, "jane@x.com", result.PersonalInfo.Email)
	assert.Equal(t, cvparse.Fingerprint([]byte(testCV)), result.Fingerprint)
}

func TestHandleExtract_UnsupportedFormat(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s.handleExtract, "/extract", ExtractRequest{
		Text:     testCV,
		MimeType: "image/png",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result types.ExtractedProfileData
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	assert.Equal(t, types.StatusFormatNotSupported, result.Status)
	assert.Empty(t, result.PersonalInfo.Email)
}

func TestHandleExtract_MissingText(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s.handleExtract, "/extract", ExtractRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleScan_InlineHTML(t *testing.T) {
	s := newTestServer()

	html := `<form>
		<label for="fn">First Name</label><input type="text" id="fn" name="first_name">
		<label for="em">Email</label><input type="email" id="em" name="email">
	</form>`

	w := postJSON(t, s.handleScan, "/scan", ScanRequest{HTML: html})
	require.Equal(t, http.StatusOK, w.Code)

	var resp ScanResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Descriptors, 2)
	require.Len(t, resp.Mappings, 2)

	mapped := make(map[string]string)
	for _, m := range resp.Mappings {
		mapped[m.Descriptor.Name] = m.FieldType.String()
	}
	assert.Equal(t, "first_name", mapped["first_name"])
	assert.Equal(t, "email", mapped["email"])
}

func TestHandleScan_RequiresExactlyOneSource(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s.handleScan, "/scan", ScanRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, s.handleScan, "/scan", ScanRequest{
		HTML: "<form></form>",
		URL:  "https://example.com/apply",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleScan_FetchesURL(t *testing.T) {
	s := newTestServer()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><body><form id="application-form">
			<label for="em">Email Address</label><input type="email" id="em" name="email">
		</form></body></html>`))
	}))
	defer backend.Close()

	w := postJSON(t, s.handleScan, "/scan", ScanRequest{URL: backend.URL + "/apply"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp ScanResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Mappings, 1)
	assert.Equal(t, "email", resp.Mappings[0].FieldType.String())
}

func TestHandleMatchUploads(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s.handleMatchUploads, "/match-uploads", MatchUploadsRequest{
		Descriptors: []types.FieldDescriptor{
			{
				Kind:          types.KindFile,
				Name:          "resume",
				LabelText:     "Upload your resume",
				AcceptedTypes: []string{"application/pdf"},
			},
		},
		Document: types.DocumentMetadata{
			FileName:  "resume.pdf",
			MimeType:  "application/pdf",
			SizeBytes: 102400,
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var mappings []types.FileUploadMapping
	require.NoError(t, json.NewDecoder(w.Body).Decode(&mappings))
	require.Len(t, mappings, 1)
	assert.True(t, mappings[0].CompatibilityOK)
}

func TestHandleMatchUploads_NoDescriptors(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s.handleMatchUploads, "/match-uploads", MatchUploadsRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWithAuth_MissingToken(t *testing.T) {
	s := newTestServer()

	handler := s.withAuth(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/profiles", nil)
	w := httptest.NewRecorder()
	handler(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWithAuth_ValidToken(t *testing.T) {
	s := newTestServer()
	userID := uuid.New()

	token, err := s.jwtService.GenerateToken(userID)
	require.NoError(t, err)

	var gotID uuid.UUID
	handler := s.withAuth(func(w http.ResponseWriter, r *http.Request) {
		id, err := userIDFrom(r.Context())
		require.NoError(t, err)
		gotID = id
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/profiles", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, gotID)
}

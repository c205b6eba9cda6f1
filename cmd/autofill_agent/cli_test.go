package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// getBinaryPath returns the path to the autofill_agent binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "autofill_agent"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/autofill_agent ./cmd/autofill_agent'", binaryPath)
	}

	return binaryPath
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const cliCV = "Jane Doe\njane@x.com\n555-1234\n\nEXPERIENCE\nSoftware Engineer, Acme Corp, 2020-2022"

func TestExtractCommand_Success(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cvPath := writeTempFile(t, "resume.txt", cliCV)
	outPath := filepath.Join(t.TempDir(), "result.json")

	cmd := exec.Command(binaryPath, "extract", "--in", cvPath, "--out", outPath)
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err, "command should succeed: %s", string(output))
	assert.Contains(t, string(output), "jane@x.com")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status": "ok"`)
}

func TestExtractCommand_MissingInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "extract")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err, "command should fail without --in")
	assert.Contains(t, string(output), "--in is required")
}

func TestScanCommand_FormFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	formPath := writeTempFile(t, "form.html", `<form>
		<label for="em">Email</label><input type="email" id="em" name="email">
	</form>`)

	cmd := exec.Command(binaryPath, "scan", "--form", formPath)
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err, "command should succeed: %s", string(output))
	assert.Contains(t, string(output), "email")
}

func TestScanCommand_RejectsFormAndURL(t *testing.T) {
	binaryPath := getBinaryPath(t)

	formPath := writeTempFile(t, "form.html", "<form></form>")

	cmd := exec.Command(binaryPath, "scan", "--form", formPath, "--url", "https://example.com/apply")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err, "command should fail with both sources")
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestMergeCommand_Success(t *testing.T) {
	binaryPath := getBinaryPath(t)

	extractionPath := writeTempFile(t, "extraction.json", `{
		"personal_info": {"full_name": "Jane Doe", "email": "jane@x.com"},
		"work_experience": [],
		"education": [],
		"skills": [],
		"confidence": {"personal_info": 0.9, "work_experience": 0, "education": 0, "skills": 0},
		"status": "ok"
	}`)
	outPath := filepath.Join(t.TempDir(), "merged.json")

	cmd := exec.Command(binaryPath, "merge", "--extraction", extractionPath, "--out", outPath)
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err, "command should succeed: %s", string(output))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "jane@x.com")
}

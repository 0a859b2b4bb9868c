package extractor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempUploads(t *testing.T) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(os.TempDir(), "cv-upload-*.pdf"))
	require.NoError(t, err)
	return matches
}

func TestExtractTextHelloWorld(t *testing.T) {
	data, err := os.ReadFile("testdata/hello.pdf")
	require.NoError(t, err)

	text, err := ExtractText(data)

	require.NoError(t, err)
	assert.Contains(t, text, "Hello World")
}

func TestExtractTextCleansUpTempFile(t *testing.T) {
	before := tempUploads(t)

	data, err := os.ReadFile("testdata/hello.pdf")
	require.NoError(t, err)

	_, err = ExtractText(data)
	require.NoError(t, err)

	assert.Len(t, tempUploads(t), len(before))
}

func TestExtractTextCorruptedPDF(t *testing.T) {
	before := tempUploads(t)

	_, err := ExtractText([]byte("this is definitely not a pdf"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "PDF text extraction failed")

	// the temporary file must be gone even on the failure path
	assert.Len(t, tempUploads(t), len(before))
}

func TestExtractTextZeroPagePDF(t *testing.T) {
	data, err := os.ReadFile("testdata/empty.pdf")
	require.NoError(t, err)

	before := tempUploads(t)

	_, err = ExtractText(data)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no pages")
	assert.Len(t, tempUploads(t), len(before))
}

func TestExtractTextEmptyInput(t *testing.T) {
	_, err := ExtractText(nil)

	assert.Error(t, err)
}

func TestExtractTextTruncatedPDF(t *testing.T) {
	data, err := os.ReadFile("testdata/hello.pdf")
	require.NoError(t, err)

	_, err = ExtractText(data[:len(data)/2])

	assert.Error(t, err)
}

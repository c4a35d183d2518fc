package rendering

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextToPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cover_letter.pdf")

	letter := "Dear Hiring Manager,\n\nI am excited to apply for the Staff Engineer role.\n\nSincerely,\nJane Doe"
	require.NoError(t, TextToPDF(letter, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestTextToPDF_NonASCII(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "letter.pdf")

	require.NoError(t, TextToPDF("Résumé for Zoë — naïve café", path))
	assert.FileExists(t, path)
}

package rendering

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDoc = `\documentclass{article}
\begin{document}
Hello.
\end{document}
`

func requirePdflatex(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("pdflatex"); err != nil {
		t.Skip("pdflatex not installed")
	}
}

func TestCompileLaTeX(t *testing.T) {
	requirePdflatex(t)

	dir := t.TempDir()
	texPath := filepath.Join(dir, "resume.tex")
	require.NoError(t, os.WriteFile(texPath, []byte(minimalDoc), 0644))

	// The structured resume JSON lives next to the .tex in a real run.
	jsonPath := filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"name": "Jane Doe"}`), 0644))

	doc, err := CompileLaTeX(context.Background(), texPath, "")
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.FileExists(t, doc.PDFPath)
	assert.NotEmpty(t, doc.PDFBytes)
	assert.Equal(t, "%PDF", string(doc.PDFBytes[:4]))

	// Auxiliary artifacts are gone; the source and its siblings survive.
	assert.NoFileExists(t, filepath.Join(dir, "resume.aux"))
	assert.NoFileExists(t, filepath.Join(dir, "resume.log"))
	assert.FileExists(t, texPath)
	assert.FileExists(t, jsonPath)
}

func TestCleanupArtifacts_KeepsNonToolchainFiles(t *testing.T) {
	dir := t.TempDir()
	base := "AcmeCorp_StaffSoftwareEn_resume"

	keep := []string{base + ".tex", base + ".json", base + ".pdf", "other.aux"}
	remove := []string{base + ".aux", base + ".log", base + ".out", base + ".synctex.gz"}
	for _, name := range append(append([]string{}, keep...), remove...) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	cleanupArtifacts(dir, base)

	for _, name := range keep {
		assert.FileExists(t, filepath.Join(dir, name), "%s must survive cleanup", name)
	}
	for _, name := range remove {
		assert.NoFileExists(t, filepath.Join(dir, name), "%s must be removed", name)
	}
}

func TestCompileLaTeX_MovesToDestination(t *testing.T) {
	requirePdflatex(t)

	srcDir := t.TempDir()
	dstDir := t.TempDir()
	texPath := filepath.Join(srcDir, "resume.tex")
	pdfDst := filepath.Join(dstDir, "final.pdf")
	require.NoError(t, os.WriteFile(texPath, []byte(minimalDoc), 0644))

	doc, err := CompileLaTeX(context.Background(), texPath, pdfDst)
	require.NoError(t, err)
	assert.Equal(t, pdfDst, doc.PDFPath)
	assert.FileExists(t, pdfDst)
	assert.NoFileExists(t, filepath.Join(srcDir, "resume.pdf"))
}

func TestCompileLaTeX_RestoresWorkingDirectory(t *testing.T) {
	requirePdflatex(t)

	before, err := os.Getwd()
	require.NoError(t, err)

	dir := t.TempDir()
	texPath := filepath.Join(dir, "broken.tex")
	require.NoError(t, os.WriteFile(texPath, []byte(`\garbage`), 0644))

	_, _ = CompileLaTeX(context.Background(), texPath, "")

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCompileLaTeX_InvalidSource(t *testing.T) {
	requirePdflatex(t)

	dir := t.TempDir()
	texPath := filepath.Join(dir, "broken.tex")
	require.NoError(t, os.WriteFile(texPath, []byte(`\garbage without a document`), 0644))

	_, err := CompileLaTeX(context.Background(), texPath, "")
	require.Error(t, err)

	var cerr *CompilationError
	require.ErrorAs(t, err, &cerr)
	assert.NotEmpty(t, cerr.LogOutput)
}

package rendering

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// CompilationTimeout is the maximum time to wait for LaTeX compilation.
const CompilationTimeout = 30 * time.Second

// RenderedDocument is the result of a successful compilation.
type RenderedDocument struct {
	SourcePath string
	PDFPath    string
	PDFBytes   []byte
}

// CompileLaTeX compiles a LaTeX file with pdflatex and moves the PDF to
// pdfDst. pdflatex resolves inputs relative to the working directory, so
// the process chdirs into the source directory for the duration of the
// run; the previous working directory is restored on every path out.
// Toolchain-generated auxiliary files are removed afterwards; the .tex
// source, the final PDF, and unrelated sibling files are kept.
//
// pdflatex can emit a usable PDF while exiting non-zero. In that case
// the document is returned together with a *CompilationError.
func CompileLaTeX(ctx context.Context, texPath, pdfDst string) (*RenderedDocument, error) {
	if _, err := exec.LookPath("pdflatex"); err != nil {
		return nil, &CompilationError{
			Message: "pdflatex not found in PATH, install a LaTeX distribution (e.g. TeX Live)",
			Cause:   err,
		}
	}

	absTexPath, err := filepath.Abs(texPath)
	if err != nil {
		return nil, &CompilationError{
			Message: fmt.Sprintf("failed to resolve LaTeX source path: %s", texPath),
			Cause:   err,
		}
	}
	workDir := filepath.Dir(absTexPath)
	texBase := filepath.Base(absTexPath)

	prevDir, err := os.Getwd()
	if err != nil {
		return nil, &CompilationError{
			Message: "failed to determine working directory",
			Cause:   err,
		}
	}
	if err := os.Chdir(workDir); err != nil {
		return nil, &CompilationError{
			Message: fmt.Sprintf("failed to enter working directory: %s", workDir),
			Cause:   err,
		}
	}
	defer func() { _ = os.Chdir(prevDir) }()

	ctx, cancel := context.WithTimeout(ctx, CompilationTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "pdflatex", "-interaction=nonstopmode", texBase)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()
	logOutput := stdout.String() + stderr.String()

	baseName := strings.TrimSuffix(texBase, ".tex")
	producedPDF := filepath.Join(workDir, baseName+".pdf")

	if _, statErr := os.Stat(producedPDF); os.IsNotExist(statErr) {
		cleanupArtifacts(workDir, baseName)
		return nil, &CompilationError{
			Message:   "LaTeX compilation failed: PDF was not generated",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	if pdfDst == "" {
		pdfDst = producedPDF
	}
	absDst, err := filepath.Abs(pdfDst)
	if err == nil && absDst != producedPDF {
		if renameErr := os.Rename(producedPDF, absDst); renameErr != nil {
			cleanupArtifacts(workDir, baseName)
			return nil, &CompilationError{
				Message:   fmt.Sprintf("failed to move PDF to %s", pdfDst),
				LogOutput: logOutput,
				Cause:     renameErr,
			}
		}
		producedPDF = absDst
	}

	cleanupArtifacts(workDir, baseName)

	pdfBytes, readErr := os.ReadFile(producedPDF)
	if readErr != nil {
		return nil, &CompilationError{
			Message:   "failed to read generated PDF",
			LogOutput: logOutput,
			Cause:     readErr,
		}
	}

	doc := &RenderedDocument{
		SourcePath: absTexPath,
		PDFPath:    producedPDF,
		PDFBytes:   pdfBytes,
	}

	if runErr != nil {
		return doc, &CompilationError{
			Message:   "LaTeX compilation completed with errors (PDF may be incomplete)",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}
	return doc, nil
}

// texAuxExts are the side files pdflatex leaves next to the source.
// Cleanup removes only these: anything else sharing the basename, like
// the structured resume JSON written by the pipeline, is not ours to
// delete.
var texAuxExts = map[string]bool{
	".aux":         true,
	".log":         true,
	".out":         true,
	".toc":         true,
	".lof":         true,
	".lot":         true,
	".fls":         true,
	".fdb_latexmk": true,
	".bbl":         true,
	".blg":         true,
	".nav":         true,
	".snm":         true,
	".vrb":         true,
	".synctex.gz":  true,
}

// cleanupArtifacts removes toolchain-generated auxiliary files sharing
// the source basename, keeping the .tex source, the PDF, and every
// unrelated sibling file.
func cleanupArtifacts(workDir, baseName string) {
	entries, err := os.ReadDir(workDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, baseName+".") {
			continue
		}
		if texAuxExts[name[len(baseName):]] {
			_ = os.Remove(filepath.Join(workDir, name))
		}
	}
}

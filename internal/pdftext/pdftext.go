// Package pdftext acquires the raw text of a source document. It is the only
// I/O boundary ahead of the extraction core: a failure here aborts an import
// with the underlying diagnostic instead of feeding empty or garbage text
// into extraction.
package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Extractor produces the decoded text content of one document.
type Extractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// CommandExtractor reads .txt files directly and decodes .pdf files by
// validating them with pdfcpu and delegating text extraction to the
// pdftotext utility.
type CommandExtractor struct {
	// PdftotextPath is the pdftotext binary to invoke. Empty means "pdftotext"
	// resolved from PATH.
	PdftotextPath string
}

// NewCommandExtractor creates a CommandExtractor using the given pdftotext
// binary path, or the PATH default when empty.
func NewCommandExtractor(pdftotextPath string) *CommandExtractor {
	return &CommandExtractor{PdftotextPath: pdftotextPath}
}

func (e *CommandExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading text file: %w", err)
		}
		return string(data), nil
	case ".pdf":
		return e.extractPDF(ctx, path)
	default:
		return "", fmt.Errorf("unsupported document type %q (want .pdf or .txt)", filepath.Ext(path))
	}
}

func (e *CommandExtractor) extractPDF(ctx context.Context, path string) (string, error) {
	// Reject corrupt files before spending time on text extraction.
	if err := api.ValidateFile(path, nil); err != nil {
		return "", fmt.Errorf("validating PDF: %w", err)
	}
	pages, err := api.PageCountFile(path)
	if err != nil {
		return "", fmt.Errorf("counting PDF pages: %w", err)
	}
	if pages == 0 {
		return "", fmt.Errorf("PDF %q has no pages", filepath.Base(path))
	}

	bin := e.PdftotextPath
	if bin == "" {
		bin = "pdftotext"
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "-enc", "UTF-8", path, "-")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("extracting PDF text: %s", msg)
	}
	return stdout.String(), nil
}

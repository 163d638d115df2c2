package pdftext

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brief.txt")
	require.NoError(t, os.WriteFile(path, []byte("โครงการ ทดสอบ ปีงบประมาณ 2569"), 0644))

	e := NewCommandExtractor("")
	text, err := e.ExtractText(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "โครงการ ทดสอบ ปีงบประมาณ 2569", text)
}

func TestExtractText_MissingFile(t *testing.T) {
	e := NewCommandExtractor("")
	_, err := e.ExtractText(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestExtractText_UnsupportedExtension(t *testing.T) {
	e := NewCommandExtractor("")
	_, err := e.ExtractText(context.Background(), "brief.docx")
	assert.ErrorContains(t, err, "unsupported document type")
}

func TestExtractText_CorruptPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0644))

	e := NewCommandExtractor("")
	_, err := e.ExtractText(context.Background(), path)

	assert.Error(t, err)
}

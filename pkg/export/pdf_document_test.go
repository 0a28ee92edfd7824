package export

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJPEG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		img.Set(x, x, color.Black)
	}
	buf := &bytes.Buffer{}
	require.NoError(t, jpeg.Encode(buf, img, nil))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestPDFDocumentRendersPages(t *testing.T) {
	doc := NewPDFDocument(LegalPortrait, Metadata{Title: "Registro de Matrícula", Author: "Institución", Creator: "test"})

	ops := []Op{
		Text(8, 8, 100, 4, "Código: 100 – Peña", AlignLeft, true, 7),
		Multiline(8, 20, 60, 2.5, "línea uno\nlínea dos", AlignCenter, 5.5),
		Rect(8, 8, 199.9, 36),
		Line(8, 38, 207.9, 38),
	}
	require.NoError(t, doc.AddPage(ops))
	require.NoError(t, doc.AddPage(ops))
	assert.Equal(t, 2, doc.PageCount())

	out, err := doc.Bytes()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestPDFDocumentEmpty(t *testing.T) {
	doc := NewPDFDocument(PageSetup{}, Metadata{})
	_, err := doc.Bytes()
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestPDFDocumentLineCount(t *testing.T) {
	doc := NewPDFDocument(LegalPortrait, Metadata{})

	assert.Equal(t, 1, doc.LineCount("", 100, 6))
	assert.Equal(t, 1, doc.LineCount("corto", 100, 6))
	assert.Equal(t, 2, doc.LineCount("uno\ndos\n", 100, 6))

	long := strings.Repeat("palabra ", 200)
	assert.Greater(t, doc.LineCount(long, 100, 6), 5)
	assert.Greater(t, doc.LineCount(long, 50, 6), doc.LineCount(long, 100, 6))
}

func TestPDFDocumentImages(t *testing.T) {
	dir := t.TempDir()
	good := writeJPEG(t, dir, "escudo.jpg")

	doc := NewPDFDocument(LegalPortrait, Metadata{})
	require.NoError(t, doc.RegisterImages(good))
	require.NoError(t, doc.AddPage([]Op{Image(good, 11, 10, 22, 26)}))
	_, err := doc.Bytes()
	require.NoError(t, err)

	bad := filepath.Join(dir, "rector.jpg")
	require.NoError(t, os.WriteFile(bad, []byte("not a jpeg"), 0o644))
	doc = NewPDFDocument(LegalPortrait, Metadata{})
	err = doc.RegisterImages(bad)
	assert.ErrorIs(t, err, ErrImage)
}

func TestOpKindString(t *testing.T) {
	assert.Equal(t, "text", OpText.String())
	assert.Equal(t, "image", OpImage.String())
	assert.Equal(t, "unknown", OpKind(0).String())
}

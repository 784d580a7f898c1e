package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

const testDocumentXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t xml:space="preserve">   </w:t></w:r></w:p>
    <w:p><w:r><w:t xml:space="preserve">Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`

func slideXML(text string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"
       xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <p:cSld><a:t>` + text + `</a:t></p:cSld>
</p:sld>`
}

func TestExtractor_Text_Plain(t *testing.T) {
	t.Parallel()

	e := NewExtractor(100)

	got, err := e.Text([]byte("plain text content"), MediaTypePlain)
	require.NoError(t, err)
	assert.Equal(t, "plain text content", got)
}

func TestExtractor_Text_Unsupported(t *testing.T) {
	t.Parallel()

	e := NewExtractor(100)

	_, err := e.Text([]byte("bytes"), "image/png")

	var exErr *Error
	require.True(t, errors.As(err, &exErr))
	assert.Equal(t, KindUnsupportedType, exErr.Kind)
}

func TestExtractor_Text_DOCX(t *testing.T) {
	t.Parallel()

	e := NewExtractor(100)
	content := buildZip(t, map[string]string{
		"[Content_Types].xml": "<Types/>",
		"word/document.xml":   testDocumentXML,
	})

	got, err := e.Text(content, MediaTypeDOCX)
	require.NoError(t, err)
	assert.Equal(t, "First paragraph.\nSecond paragraph.", got)
}

func TestExtractor_Text_DOCX_MissingDocument(t *testing.T) {
	t.Parallel()

	e := NewExtractor(100)
	content := buildZip(t, map[string]string{"[Content_Types].xml": "<Types/>"})

	_, err := e.Text(content, MediaTypeDOCX)

	var exErr *Error
	require.True(t, errors.As(err, &exErr))
	assert.Equal(t, KindDOCXFailed, exErr.Kind)
}

func TestExtractor_Text_DOCX_NotAZip(t *testing.T) {
	t.Parallel()

	e := NewExtractor(100)

	_, err := e.Text([]byte("definitely not a zip archive"), MediaTypeDOCX)

	var exErr *Error
	require.True(t, errors.As(err, &exErr))
	assert.Equal(t, KindDOCXFailed, exErr.Kind)
}

func TestExtractor_Text_PPTX(t *testing.T) {
	t.Parallel()

	e := NewExtractor(100)
	// slide10 must sort after slide2, not between slide1 and slide2.
	content := buildZip(t, map[string]string{
		"ppt/slides/slide10.xml": slideXML("Ten"),
		"ppt/slides/slide1.xml":  slideXML("One"),
		"ppt/slides/slide2.xml":  slideXML("Two"),
	})

	got, err := e.Text(content, MediaTypePPTX)
	require.NoError(t, err)
	assert.Equal(t, "One\nTwo\nTen", got)
}

func TestExtractor_Text_PPTX_NoSlides(t *testing.T) {
	t.Parallel()

	e := NewExtractor(100)
	content := buildZip(t, map[string]string{"[Content_Types].xml": "<Types/>"})

	got, err := e.Text(content, MediaTypePPTX)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
)

// writeTestDOCX creates a minimal valid DOCX file on disk.
func writeTestDOCX(t *testing.T, documentXML string) string {
	t.Helper()

	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	// Add [Content_Types].xml (required for valid DOCX)
	contentTypes, err := w.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = contentTypes.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="xml" ContentType="application/xml"/>
</Types>`))
	require.NoError(t, err)

	if documentXML != "" {
		doc, err := w.Create("word/document.xml")
		require.NoError(t, err)
		_, err = doc.Write([]byte(documentXML))
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "test.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0600))
	return path
}

func TestNew(t *testing.T) {
	extractor := New()
	require.NotNil(t, extractor)
	assert.Equal(t, domain.FormatDOCX, extractor.Format())
	assert.Equal(t, []string{".docx"}, extractor.Extensions())
}

func TestExtract_Paragraphs(t *testing.T) {
	docXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Annual Leave Policy</w:t></w:r></w:p>
<w:p><w:r><w:t>Employees accrue </w:t></w:r><w:r><w:t>leave monthly.</w:t></w:r></w:p>
</w:body>
</w:document>`

	path := writeTestDOCX(t, docXML)

	result, err := New().Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Annual Leave Policy\nEmployees accrue leave monthly.", result.Content)
	assert.Equal(t, 2, result.Metadata["paragraphs"])
	assert.Equal(t, 0, result.Metadata["table_rows"])
}

func TestExtract_SkipsBlankParagraphs(t *testing.T) {
	docXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>First</w:t></w:r></w:p>
<w:p><w:r><w:t>   </w:t></w:r></w:p>
<w:p></w:p>
<w:p><w:r><w:t>Second</w:t></w:r></w:p>
</w:body>
</w:document>`

	path := writeTestDOCX(t, docXML)

	result, err := New().Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "First\nSecond", result.Content)
}

func TestExtract_TableRowsAfterParagraphs(t *testing.T) {
	docXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:tbl>
<w:tr>
<w:tc><w:p><w:r><w:t>Grade</w:t></w:r></w:p></w:tc>
<w:tc><w:p><w:r><w:t>Days</w:t></w:r></w:p></w:tc>
</w:tr>
<w:tr>
<w:tc><w:p><w:r><w:t>Senior</w:t></w:r></w:p></w:tc>
<w:tc><w:p></w:p></w:tc>
</w:tr>
</w:tbl>
<w:p><w:r><w:t>Closing note.</w:t></w:r></w:p>
</w:body>
</w:document>`

	path := writeTestDOCX(t, docXML)

	result, err := New().Extract(context.Background(), path)
	require.NoError(t, err)

	// Tables come after paragraphs regardless of body order, and the
	// empty cell still contributes its tab separator.
	assert.Equal(t, "Closing note.\nGrade\tDays\nSenior\t", result.Content)
	assert.Equal(t, 2, result.Metadata["table_rows"])
}

func TestExtract_NotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0600))

	_, err := New().Extract(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrExtractionFailed))
}

func TestExtract_MissingDocumentXML(t *testing.T) {
	path := writeTestDOCX(t, "")

	_, err := New().Extract(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrExtractionFailed))
}

func TestExtract_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Extract(ctx, "ignored.docx")
	assert.ErrorIs(t, err, context.Canceled)
}

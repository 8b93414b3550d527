// Package docx extracts text from Word documents: body paragraphs in
// order, followed by table content row by row.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles DOCX files.
type Extractor struct{}

// New creates a new DOCX extractor.
func New() *Extractor {
	return &Extractor{}
}

// Format returns the document format this extractor produces.
func (e *Extractor) Format() domain.DocumentFormat {
	return domain.FormatDOCX
}

// Extensions returns the file extensions this extractor handles.
func (e *Extractor) Extensions() []string {
	return []string{".docx"}
}

// Extract opens the file as a ZIP archive and parses word/document.xml.
// Body paragraphs come first, blank ones skipped, the rest untrimmed.
// Table rows follow, each row's cells joined with a tab, empty cells
// included so column alignment survives. Everything is joined with a
// newline.
func (e *Extractor) Extract(ctx context.Context, path string) (*domain.ExtractedText, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrExtractionFailed, path, err)
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a valid docx archive: %v", domain.ErrExtractionFailed, path, err)
	}

	raw, err := readDocumentXML(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrExtractionFailed, path, err)
	}

	var doc documentXML
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse document.xml in %s: %v", domain.ErrExtractionFailed, path, err)
	}

	var lines []string
	for _, para := range doc.Body.Paragraphs {
		text := para.text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, text)
	}

	tableRows := 0
	for _, table := range doc.Body.Tables {
		for _, row := range table.Rows {
			cells := make([]string, 0, len(row.Cells))
			for _, cell := range row.Cells {
				cells = append(cells, cell.text())
			}
			lines = append(lines, strings.Join(cells, "\t"))
			tableRows++
		}
	}

	return &domain.ExtractedText{
		Content: strings.Join(lines, "\n"),
		Metadata: map[string]any{
			"paragraphs": len(doc.Body.Paragraphs),
			"table_rows": tableRows,
		},
	}, nil
}

// readDocumentXML pulls word/document.xml out of the archive.
func readDocumentXML(reader *zip.Reader) ([]byte, error) {
	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open document.xml: %w", err)
		}
		defer rc.Close()

		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("no word/document.xml in archive")
}

// documentXML mirrors the parts of word/document.xml we read. Element
// names match by local name, so the w: namespace prefix is irrelevant.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
		Tables     []table     `xml:"tbl"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

type table struct {
	Rows []tableRow `xml:"tr"`
}

type tableRow struct {
	Cells []tableCell `xml:"tc"`
}

type tableCell struct {
	Paragraphs []paragraph `xml:"p"`
}

// text concatenates the paragraph's run texts.
func (p paragraph) text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		for _, t := range r.Text {
			b.WriteString(t.Content)
		}
	}
	return b.String()
}

// text joins the cell's paragraphs with newlines, the way the cell
// reads top to bottom.
func (c tableCell) text() string {
	parts := make([]string, 0, len(c.Paragraphs))
	for _, p := range c.Paragraphs {
		parts = append(parts, p.text())
	}
	return strings.Join(parts, "\n")
}

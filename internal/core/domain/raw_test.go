package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestRawFile_Fields tests RawFile structure fields
func TestRawFile_Fields(t *testing.T) {
	modified := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	raw := RawFile{
		Path:       "/corpus/Leave Policy.pdf",
		URI:        "file:///corpus/Leave Policy.pdf",
		Name:       "Leave Policy.pdf",
		Ext:        ".pdf",
		SizeBytes:  2048,
		ModifiedAt: modified,
	}

	assert.Equal(t, "/corpus/Leave Policy.pdf", raw.Path)
	assert.Equal(t, "file:///corpus/Leave Policy.pdf", raw.URI)
	assert.Equal(t, "Leave Policy.pdf", raw.Name)
	assert.Equal(t, ".pdf", raw.Ext)
	assert.Equal(t, int64(2048), raw.SizeBytes)
	assert.Equal(t, modified, raw.ModifiedAt)
}

// TestChangeType_Distinct tests that change types do not collide
func TestChangeType_Distinct(t *testing.T) {
	assert.NotEqual(t, ChangeCreated, ChangeUpdated)
	assert.NotEqual(t, ChangeUpdated, ChangeDeleted)
	assert.NotEqual(t, ChangeCreated, ChangeDeleted)
}

// TestFileEvent_Fields tests FileEvent structure fields
func TestFileEvent_Fields(t *testing.T) {
	event := FileEvent{
		Type: ChangeUpdated,
		File: RawFile{Path: "/corpus/handbook.txt", Ext: ".txt"},
	}

	assert.Equal(t, ChangeUpdated, event.Type)
	assert.Equal(t, "/corpus/handbook.txt", event.File.Path)
}

// TestExtractedText_Fields tests ExtractedText structure fields
func TestExtractedText_Fields(t *testing.T) {
	extracted := ExtractedText{
		Content:  "Employees accrue leave monthly.",
		Metadata: map[string]any{"page_count": 3, "ocr_pages": 1},
	}

	assert.Equal(t, "Employees accrue leave monthly.", extracted.Content)
	assert.Equal(t, 3, extracted.Metadata["page_count"])
	assert.Equal(t, 1, extracted.Metadata["ocr_pages"])
}

// TestExtractedText_Empty tests the empty-extraction shape
func TestExtractedText_Empty(t *testing.T) {
	extracted := ExtractedText{}

	assert.Empty(t, extracted.Content)
	assert.Nil(t, extracted.Metadata)
}

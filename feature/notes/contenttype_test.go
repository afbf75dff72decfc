package notes_test

import (
	"testing"

	"file-gateway/feature/notes"

	"github.com/stretchr/testify/assert"
)

func TestResolveContentType(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		provided string
		want     string
	}{
		{"ProvidedWins", "report.pdf", "text/html", "text/html"},
		{"ProvidedOctetStreamIgnored", "report.pdf", "application/octet-stream", "application/pdf"},
		{"ProvidedOctetStreamCaseInsensitive", "report.pdf", "Application/Octet-Stream", "application/pdf"},
		{"ProvidedBlankIgnored", "report.pdf", "   ", "application/pdf"},
		{"ExtensionCaseInsensitive", "report.PDF", "", "application/pdf"},
		{"Image", "photo.JPEG", "", "image/jpeg"},
		{"Spreadsheet", "sheet.xlsx", "", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{"Audio", "song.mp3", "", "audio/mpeg"},
		{"Archive", "bundle.zip", "", "application/zip"},
		{"UnknownExtension", "binary.xyz", "", "application/octet-stream"},
		{"NoExtension", "x", "", "application/octet-stream"},
		{"UnknownWithOctetStreamProvided", "x", "application/octet-stream", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, notes.ResolveContentType(tt.filename, tt.provided))
		})
	}
}

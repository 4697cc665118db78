package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skillsfirst/briefapi/internal/domain/commonModels"
)

func TestDocTypeOf(t *testing.T) {
	tests := []struct {
		path     string
		expected commonModels.DocType
	}{
		{"flyer.pdf", commonModels.PDF},
		{"FLYER.PDF", commonModels.PDF},
		{"notes.docx", commonModels.DOCX},
		{"notes.rtf", commonModels.DOCX},
		{"notes.odt", commonModels.DOCX},
		{"plain.txt", commonModels.TXT},
		{"image.png", commonModels.ERR},
		{"noextension", commonModels.ERR},
	}

	for _, tt := range tests {
		if got := DocTypeOf(tt.path); got != tt.expected {
			t.Errorf("DocTypeOf(%s) = %v; want %v", tt.path, got, tt.expected)
		}
	}
}

func TestText_UnsupportedType(t *testing.T) {
	if _, err := Text("evil.exe"); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
}

func TestText_PlainTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	content := "Submit the form by Friday."
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	got, err := Text(path)
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if !strings.Contains(got, "Submit the form by Friday") {
		t.Errorf("Text = %q; want it to contain the file content", got)
	}
}

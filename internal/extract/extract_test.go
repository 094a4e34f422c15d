package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestTextPlainFile(t *testing.T) {
	got, err := Text([]byte("Предмет договора\r\n\r\nШтраф  за   просрочку\n"), "договор.txt")
	if err != nil {
		t.Fatalf("extract txt: %v", err)
	}
	want := "Предмет договора\nШтраф за просрочку"
	if got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
}

func TestTextInvalidUTF8Replaced(t *testing.T) {
	got, err := Text([]byte{'o', 'k', 0xff, 0xfe, '!'}, "notes.txt")
	if err != nil {
		t.Fatalf("extract txt: %v", err)
	}
	if !strings.Contains(got, "�") {
		t.Fatalf("invalid bytes should be replaced, got %q", got)
	}
}

func TestTextUnsupportedExtension(t *testing.T) {
	for _, name := range []string{"sheet.xlsx", "archive.zip", "README", "image.png"} {
		_, err := Text([]byte("data"), name)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("%s: expected ErrUnsupportedFormat, got %v", name, err)
		}
	}
}

func TestTextExtensionCaseInsensitive(t *testing.T) {
	if _, err := Text([]byte("plain"), "UPPER.TXT"); err != nil {
		t.Fatalf("uppercase extension should be accepted: %v", err)
	}
}

func TestTextCorruptPDF(t *testing.T) {
	_, err := Text([]byte("%PDF-1.4 truncated garbage"), "broken.pdf")
	if !errors.Is(err, ErrCorruptDocument) {
		t.Fatalf("expected ErrCorruptDocument, got %v", err)
	}
}

func TestTextCorruptDOCX(t *testing.T) {
	_, err := Text([]byte("not a zip archive"), "broken.docx")
	if !errors.Is(err, ErrCorruptDocument) {
		t.Fatalf("expected ErrCorruptDocument, got %v", err)
	}
}

func TestTextDOCXMissingDocumentXML(t *testing.T) {
	// A valid zip that is not a word archive.
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = Text(buf.Bytes(), "fake.docx")
	if !errors.Is(err, ErrCorruptDocument) {
		t.Fatalf("expected ErrCorruptDocument, got %v", err)
	}
}

func TestFlattenDocumentXML(t *testing.T) {
	raw := `<w:document><w:body>` +
		`<w:p><w:r><w:t>Предмет договора</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Ответственность</w:t><w:t xml:space="preserve"> сторон</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	got := flattenDocumentXML(raw)
	if !strings.Contains(got, "Предмет договора\n") {
		t.Fatalf("paragraph boundary missing: %q", got)
	}
	if !strings.Contains(got, "Ответственность сторон") {
		t.Fatalf("runs within a paragraph should join without breaks: %q", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: " \n\t \r\n ", want: ""},
		{name: "collapses runs", in: "a   b\t\tc", want: "a b c"},
		{name: "drops blank lines", in: "a\n\n\nb", want: "a\nb"},
		{name: "crlf", in: "a\r\nb\rc", want: "a\nb\nc"},
		{name: "preserves case", in: "  ШТРАФ  Penalty  ", want: "ШТРАФ Penalty"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

package extract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var (
	// ErrUnsupportedFormat is returned for file extensions outside the accepted set.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrCorruptDocument is returned when a supported format cannot be parsed.
	ErrCorruptDocument = errors.New("corrupt document")
)

// maxPDFPages bounds extraction work on pathological inputs.
const maxPDFPages = 500

// AllowedExtensions lists the accepted file extensions, in display order.
func AllowedExtensions() []string {
	return []string{".txt", ".docx", ".pdf"}
}

// Text extracts normalized text from raw file bytes, dispatching on the
// declared file extension. Unknown extensions fail before any parsing.
func Text(data []byte, fileName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	var (
		text string
		err  error
	)
	switch ext {
	case ".txt":
		text = decodePlain(data)
	case ".docx":
		text, err = extractDOCX(data)
	case ".pdf":
		text, err = extractPDF(data)
	default:
		return "", fmt.Errorf("%w: %q (allowed: %s)", ErrUnsupportedFormat, ext, strings.Join(AllowedExtensions(), ", "))
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrCorruptDocument, ext, err)
	}
	return Normalize(text), nil
}

// decodePlain decodes bytes as UTF-8, replacing invalid sequences instead of failing.
func decodePlain(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}

func extractPDF(data []byte) (text string, err error) {
	// The pdf library panics on some malformed xref tables.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("pdf parse: %v", rec)
		}
	}()

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}

	pages := pdfReader.NumPage()
	if pages > maxPDFPages {
		pages = maxPDFPages
	}

	var buf strings.Builder
	for i := 1; i <= pages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			// A page without extractable text (scanned image, odd fonts)
			// contributes nothing rather than failing the document.
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(content)
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	readerAt := bytes.NewReader(data)
	doc, err := docx.ReadDocxFromMemory(readerAt, int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	// GetContent returns word/document.xml, so headers, footers and
	// footnotes are already excluded.
	return flattenDocumentXML(doc.Editable().GetContent()), nil
}

func flattenDocumentXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if last := buf.Len(); last > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return buf.String()
}

// Normalize collapses whitespace runs within lines, keeps paragraph boundaries
// as single newlines, and trims leading/trailing whitespace. Casing is preserved.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var paragraphs []string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		paragraphs = append(paragraphs, strings.Join(fields, " "))
	}
	return strings.Join(paragraphs, "\n")
}

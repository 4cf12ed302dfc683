package ingestion

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Supported document formats.
const (
	FormatText = "txt"
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
	FormatHTML = "html"
)

// Document is one decoded resume: clean UTF-8 text plus provenance metadata.
type Document struct {
	Path      string    `json:"path"`
	Format    string    `json:"format"`
	Text      string    `json:"-"`
	ByteSize  int       `json:"byte_size"`
	Hash      string    `json:"hash"` // SHA256 hex digest of the raw bytes
	DecodedAt time.Time `json:"decoded_at"`
}

// DetectFormat maps a file extension to a supported format.
func DetectFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text", ".md":
		return FormatText, nil
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	case ".html", ".htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// DecodeFile reads and decodes one resume document. Any failure returns an
// error the caller records as a per-file warning; decode problems never
// abort a batch.
func DecodeFile(path string) (*Document, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Format: format, Cause: err}
	}

	text, err := DecodeBytes(data, format)
	if err != nil {
		return nil, &DecodeError{Path: path, Format: format, Cause: err}
	}

	return &Document{
		Path:      path,
		Format:    format,
		Text:      CleanText(text),
		ByteSize:  len(data),
		Hash:      computeHash(data),
		DecodedAt: time.Now().UTC(),
	}, nil
}

// DecodeBytes decodes raw document bytes of a known format into text.
// The result is forced to valid UTF-8 before cleaning.
func DecodeBytes(data []byte, format string) (string, error) {
	var (
		text string
		err  error
	)
	switch format {
	case FormatText:
		text = string(data)
	case FormatPDF:
		text, err = decodePDF(data)
	case FormatDOCX:
		text, err = decodeDocx(data)
	case FormatHTML:
		text, err = ExtractHTMLText(string(data))
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(text, ""), nil
}

// decodePDF extracts plain text from every non-null page.
func decodePDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue // a bad page should not lose the rest of the document
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

// decodeDocx extracts document text. The library returns the raw
// document.xml body, so paragraph closes become newlines and the remaining
// tags are stripped before entity decoding.
func decodeDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = xmlTagRe.ReplaceAllString(content, "")
	return html.UnescapeString(content), nil
}

// computeHash returns the SHA256 hex digest of the raw document bytes.
func computeHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

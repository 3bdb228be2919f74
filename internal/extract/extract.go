package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeText = "text/plain"
	mimeJPEG = "image/jpeg"
	mimePNG  = "image/png"
)

var (
	// ErrExtractionFailed means no readable text could be produced from
	// the upload (corrupt PDF, unreadable scan, undecodable bytes).
	ErrExtractionFailed = errors.New("extraction failed")
	// ErrNoText is the ErrExtractionFailed case where the source decoded
	// but carried no text at all.
	ErrNoText = fmt.Errorf("%w: no readable text", ErrExtractionFailed)
	// ErrUnsupportedType means the declared or sniffed content type is not
	// one the service accepts.
	ErrUnsupportedType = errors.New("unsupported content type")
)

// Extractor normalizes uploads into UTF-8 text. PDF goes through
// github.com/ledongthuc/pdf, DOCX is unpacked with archive/zip, images go
// through the external tesseract binary.
type Extractor struct {
	tesseractPath string
}

// New constructs an Extractor. An empty tesseractPath resolves the binary
// from PATH.
func New(tesseractPath string) *Extractor {
	return &Extractor{tesseractPath: strings.TrimSpace(tesseractPath)}
}

// FromBytes extracts text from an in-memory upload.
func (e *Extractor) FromBytes(ctx context.Context, data []byte, contentType, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var (
		text string
		err  error
	)
	switch normalizeContentType(contentType, fileName, data) {
	case mimePDF:
		text, err = extractPDF(data)
	case mimeDOCX:
		text, err = extractDOCX(data)
	case mimeJPEG, mimePNG:
		text, err = e.ocrImage(ctx, data)
	case mimeText:
		text, err = extractPlainText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	if err != nil {
		return "", fmt.Errorf("extract file=%s mime=%s: %w: %v", fileName, contentType, ErrExtractionFailed, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("extract file=%s mime=%s: %w", fileName, contentType, ErrNoText)
	}
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractPlainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errors.New("text is not valid utf-8")
	}
	return string(data), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	readerAt := bytes.NewReader(data)
	zr, err := zip.NewReader(readerAt, int64(len(data)))
	if err != nil {
		return "", err
	}

	var docFile *zip.File
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.New("document.xml file not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}

	return stripDocxXML(string(raw)), nil
}

func stripDocxXML(raw string) string {
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
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

// normalizeContentType maps the declared content type to one of the
// supported kinds, falling back to file extension and content sniffing for
// generic declarations.
func normalizeContentType(contentType, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	switch clean {
	case "image/jpg":
		return mimeJPEG
	case mimePDF, mimeDOCX, mimeText, mimeJPEG, mimePNG:
		return clean
	case "application/zip":
		if looksLikeDOCX(data) {
			return mimeDOCX
		}
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return mimePDF
	case ".docx":
		return mimeDOCX
	case ".txt":
		return mimeText
	case ".jpg", ".jpeg":
		return mimeJPEG
	case ".png":
		return mimePNG
	}
	return clean
}

func looksLikeDOCX(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			return true
		}
	}
	return false
}

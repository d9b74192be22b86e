package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoText indicates a document yielded no extractable text. Scanned or
// image-only PDFs typically trip this.
var ErrNoText = fmt.Errorf("no text content could be extracted")

// Reader extracts linear text from document files. PDF text comes from
// ledongthuc/pdf page by page; plain .txt files are read verbatim so the
// pipeline can be exercised without a PDF in front of it.
type Reader struct {
	maxFileSize int64
	maxTextSize int
}

// NewReader creates a reader with the specified file size constraint.
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize: maxFileSize,
		maxTextSize: 10 * 1024 * 1024, // 10MB text limit
	}
}

// ReadFile extracts the text content of the file at req.Path.
func (r *Reader) ReadFile(req ReadRequest) (*ReadResult, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(req.Path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", req.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", req.Path)
	}
	if fileInfo.Size() > r.maxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), r.maxFileSize)
	}

	switch strings.ToLower(filepath.Ext(req.Path)) {
	case ".pdf":
		return r.readPDF(req.Path, fileInfo.Size())
	case ".txt":
		return r.readPlain(req.Path, fileInfo.Size())
	default:
		return nil, fmt.Errorf("unsupported file type: %s", req.Path)
	}
}

func (r *Reader) readPDF(path string, size int64) (*ReadResult, error) {
	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	text, err := r.extractTextContent(pdfReader)
	if err != nil {
		return nil, err
	}

	return &ReadResult{
		Text:  text,
		Path:  path,
		Pages: pdfReader.NumPage(),
		Size:  size,
	}, nil
}

func (r *Reader) readPlain(path string, size int64) (*ReadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoText
	}
	if len(data) > r.maxTextSize {
		data = data[:r.maxTextSize]
	}

	return &ReadResult{
		Text:  string(data),
		Path:  path,
		Pages: 1,
		Size:  size,
	}, nil
}

// extractTextContent walks every page, skipping pages that fail to decode so
// one broken page does not sink the document.
func (r *Reader) extractTextContent(pdfReader *pdf.Reader) (string, error) {
	var builder strings.Builder
	totalLength := 0

	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		if totalLength+len(content) > r.maxTextSize {
			remaining := r.maxTextSize - totalLength
			if remaining > 0 {
				builder.WriteString(content[:remaining])
			}
			break
		}

		builder.WriteString(content)
		totalLength += len(content)

		if pageNum < pdfReader.NumPage() {
			builder.WriteString("\n")
		}
	}

	text := builder.String()
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return text, nil
}

package document

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Validator checks that a file is a readable document before the pipeline
// touches it. PDFs additionally get a structural read through pdfcpu in
// relaxed mode.
type Validator struct {
	maxFileSize int64
}

// NewValidator creates a validator with the specified size constraint.
func NewValidator(maxFileSize int64) *Validator {
	return &Validator{maxFileSize: maxFileSize}
}

// ValidateFile performs validation on a document file. An invalid file is
// reported through the result's Valid flag and Message, not as an error.
func (v *Validator) ValidateFile(req ValidateRequest) (*ValidateResult, error) {
	result := &ValidateResult{
		Path:  req.Path,
		Valid: false,
	}

	if err := v.validateFile(req.Path); err != nil {
		result.Message = err.Error()
		return result, nil //nolint:nilerr // validation verdict, not a processing error
	}

	result.Valid = true
	return result, nil
}

// IsValid performs a quick validation check on a file.
func (v *Validator) IsValid(path string) bool {
	return v.validateFile(path) == nil
}

func (v *Validator) validateFile(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if fileInfo.Size() == 0 {
		return fmt.Errorf("file is empty: %s", path)
	}
	if fileInfo.Size() > v.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), v.maxFileSize)
	}

	switch {
	case strings.HasSuffix(strings.ToLower(path), ".pdf"):
		return v.validatePDFStructure(path)
	case strings.HasSuffix(strings.ToLower(path), ".txt"):
		return nil
	default:
		return fmt.Errorf("unsupported file type: %s", path)
	}
}

// validatePDFStructure reads the PDF through pdfcpu with relaxed validation
// to weed out corrupt or encrypted files before text extraction.
func (v *Validator) validatePDFStructure(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(file, conf)
	if err != nil {
		return fmt.Errorf("invalid PDF file: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return fmt.Errorf("invalid PDF file: %w", err)
	}
	return nil
}

package document

import (
	"strings"
	"testing"
)

func TestValidateFilePlainText(t *testing.T) {
	path := writeTempFile(t, "doc.txt", "content")
	validator := NewValidator(1024)

	result, err := validator.ValidateFile(ValidateRequest{Path: path})
	if err != nil {
		t.Fatalf("ValidateFile failed: %v", err)
	}
	if !result.Valid {
		t.Errorf("Expected valid, got message %q", result.Message)
	}
}

func TestValidateFileInvalidIsResultNotError(t *testing.T) {
	validator := NewValidator(1024)

	cases := []struct {
		name string
		path string
		want string
	}{
		{"missing", "/nonexistent/file.pdf", "does not exist"},
		{"empty path", "", "cannot be empty"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := validator.ValidateFile(ValidateRequest{Path: tc.path})
			if err != nil {
				t.Fatalf("ValidateFile returned processing error: %v", err)
			}
			if result.Valid {
				t.Fatal("Expected invalid verdict")
			}
			if !strings.Contains(result.Message, tc.want) {
				t.Errorf("Message = %q, want it to contain %q", result.Message, tc.want)
			}
		})
	}
}

func TestValidateFileEmptyFile(t *testing.T) {
	path := writeTempFile(t, "doc.txt", "")
	validator := NewValidator(1024)

	result, err := validator.ValidateFile(ValidateRequest{Path: path})
	if err != nil {
		t.Fatalf("ValidateFile failed: %v", err)
	}
	if result.Valid {
		t.Error("Expected empty file to be invalid")
	}
}

func TestValidateFileCorruptPDF(t *testing.T) {
	path := writeTempFile(t, "doc.pdf", "not a pdf at all")
	validator := NewValidator(1024)

	result, err := validator.ValidateFile(ValidateRequest{Path: path})
	if err != nil {
		t.Fatalf("ValidateFile failed: %v", err)
	}
	if result.Valid {
		t.Error("Expected corrupt PDF to be invalid")
	}
}

func TestIsValid(t *testing.T) {
	validator := NewValidator(1024)

	if validator.IsValid("/nonexistent/file.pdf") {
		t.Error("Expected missing file to be invalid")
	}
	path := writeTempFile(t, "doc.txt", "content")
	if !validator.IsValid(path) {
		t.Error("Expected text file to be valid")
	}
}

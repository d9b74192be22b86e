package document

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewPathGuardRequiresRoot(t *testing.T) {
	if _, err := NewPathGuard(""); err == nil {
		t.Error("Expected error for empty root")
	}
}

func TestPathGuardAllowsInsideRoot(t *testing.T) {
	root := t.TempDir()
	inside := filepath.Join(root, "doc.pdf")
	if err := os.WriteFile(inside, []byte("x"), 0o600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	guard, err := NewPathGuard(root)
	if err != nil {
		t.Fatalf("NewPathGuard failed: %v", err)
	}
	if err := guard.Validate(inside); err != nil {
		t.Errorf("Expected path inside root to validate, got %v", err)
	}
}

func TestPathGuardRejectsOutsideRoot(t *testing.T) {
	root := t.TempDir()
	outside := filepath.Join(t.TempDir(), "doc.pdf")

	guard, err := NewPathGuard(root)
	if err != nil {
		t.Fatalf("NewPathGuard failed: %v", err)
	}
	if err := guard.Validate(outside); err == nil {
		t.Error("Expected path outside root to be rejected")
	}
}

func TestPathGuardRejectsTraversal(t *testing.T) {
	root := t.TempDir()
	guard, err := NewPathGuard(root)
	if err != nil {
		t.Fatalf("NewPathGuard failed: %v", err)
	}

	if err := guard.Validate(filepath.Join(root, "..", "escape.pdf")); err == nil {
		t.Error("Expected traversal outside root to be rejected")
	}
}

func TestPathGuardSkipsMissingRoot(t *testing.T) {
	guard, err := NewPathGuard(filepath.Join(t.TempDir(), "not-created-yet"))
	if err != nil {
		t.Fatalf("NewPathGuard failed: %v", err)
	}
	if err := guard.Validate("/anywhere/doc.pdf"); err != nil {
		t.Errorf("Expected validation to be skipped for missing root, got %v", err)
	}
}

package ctdiff

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ericlagergren/ctdiff/engine"
	"github.com/ericlagergren/ctdiff/security"
)

func TestNewDefault(t *testing.T) {
	d, err := New()
	if err != nil {
		t.Fatalf("New(): %v", err)
	}
	if d.Config().TimingProtection != security.Moderate {
		t.Fatalf("default level should be Balanced/Moderate, got %v", d.Config().TimingProtection)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(WithLevel(security.Maximum, 4096), WithTimingProtection(security.Strict), WithPadding(0))
	if err == nil {
		t.Fatalf("expected a SecurityError for Strict timing protection with no pinned padding size")
	}
	var secErr *SecurityError
	if !asSecurityError(err, &secErr) {
		t.Fatalf("expected *SecurityError, got %T: %v", err, err)
	}
}

func asSecurityError(err error, target **SecurityError) bool {
	se, ok := err.(*SecurityError)
	if ok {
		*target = se
	}
	return ok
}

func TestCompareBytes(t *testing.T) {
	d, err := New(WithLevel(security.Fast, 0))
	if err != nil {
		t.Fatalf("New(): %v", err)
	}
	res, err := d.CompareBytes([]byte("kitten"), []byte("sitting"))
	if err != nil {
		t.Fatalf("CompareBytes: %v", err)
	}
	if res.EditDistance() != 3 {
		t.Fatalf("EditDistance() = %d, want 3", res.EditDistance())
	}
}

func TestCompareText(t *testing.T) {
	d, err := New(WithLevel(security.Fast, 0))
	if err != nil {
		t.Fatalf("New(): %v", err)
	}
	a := "one\ntwo\nthree\n"
	b := "one\nTWO\nthree\n"
	res, err := d.CompareText(a, b)
	if err != nil {
		t.Fatalf("CompareText: %v", err)
	}
	if res.IsIdentical() {
		t.Fatalf("changing one line should not be identical")
	}
}

func TestCompareTokens(t *testing.T) {
	d, err := New(WithLevel(security.Fast, 0))
	if err != nil {
		t.Fatalf("New(): %v", err)
	}
	a := []engine.Token{[]byte("alpha"), []byte("beta"), []byte("gamma")}
	b := []engine.Token{[]byte("alpha"), []byte("BETA"), []byte("gamma")}
	res, err := d.CompareTokens(a, b)
	if err != nil {
		t.Fatalf("CompareTokens: %v", err)
	}
	stats := res.Statistics()
	if stats.Kept != 2 || stats.Substituted != 1 {
		t.Fatalf("stats = %+v, want 2 kept / 1 substituted", stats)
	}
}

func TestCompareFiles(t *testing.T) {
	dir := t.TempDir()
	leftPath := filepath.Join(dir, "left.txt")
	rightPath := filepath.Join(dir, "right.txt")
	if err := os.WriteFile(leftPath, []byte("hello world"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(rightPath, []byte("hello rust"), 0o600); err != nil {
		t.Fatal(err)
	}

	d, err := New(WithLevel(security.Fast, 0))
	if err != nil {
		t.Fatalf("New(): %v", err)
	}
	res, err := d.CompareFiles(leftPath, rightPath)
	if err != nil {
		t.Fatalf("CompareFiles: %v", err)
	}
	if res.IsIdentical() {
		t.Fatalf("distinct file contents should not be identical")
	}
}

func TestCompareFilesMissing(t *testing.T) {
	d, err := New(WithLevel(security.Fast, 0))
	if err != nil {
		t.Fatalf("New(): %v", err)
	}
	_, err = d.CompareFiles("/nonexistent/left", "/nonexistent/right")
	if err == nil {
		t.Fatalf("expected an IOError for a missing file")
	}
	var ioErr *IOError
	if e, ok := err.(*IOError); ok {
		ioErr = e
	}
	if ioErr == nil {
		t.Fatalf("expected *IOError, got %T: %v", err, err)
	}
}

func TestCompareFilesContextDeadlineExceeded(t *testing.T) {
	dir := t.TempDir()
	leftPath := filepath.Join(dir, "left.txt")
	rightPath := filepath.Join(dir, "right.txt")
	if err := os.WriteFile(leftPath, []byte("a"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(rightPath, []byte("b"), 0o600); err != nil {
		t.Fatal(err)
	}

	d, err := New(WithLevel(security.Fast, 0))
	if err != nil {
		t.Fatalf("New(): %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err = d.CompareFilesContext(ctx, leftPath, rightPath)
	if err == nil {
		t.Fatalf("expected a context deadline error")
	}
}

func TestEditDistanceCapExceeded(t *testing.T) {
	d, err := New(WithLevel(security.Fast, 0), WithMaxEditDistance(1))
	if err != nil {
		t.Fatalf("New(): %v", err)
	}
	_, err = d.CompareBytes([]byte("abcdef"), []byte("xyzxyz"))
	if err == nil {
		t.Fatalf("expected a SecurityError")
	}
	secErr, ok := err.(*SecurityError)
	if !ok {
		t.Fatalf("expected *SecurityError, got %T: %v", err, err)
	}
	// The edit distance (6, here) must never appear in the message:
	// it is a content-similarity measure, and the cap exists to keep
	// it from being observable.
	if got := secErr.Error(); strings.Contains(got, "6") {
		t.Fatalf("SecurityError message leaks the computed edit distance: %q", got)
	}
}

package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func TestTimestampedName(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	testCases := []struct {
		original string
		want     string
	}{
		{"report.pdf", "1700000000123_report.pdf"},
		{"my photo (1).JPG", "1700000000123_myphoto1.JPG"},
		{"../../etc/passwd", "1700000000123_passwd"},
		{"صورة.png", "1700000000123_.png"},
	}
	for _, tc := range testCases {
		if got := TimestampedName(tc.original, now); got != tc.want {
			t.Errorf("TimestampedName(%q) = %q, want %q", tc.original, got, tc.want)
		}
	}
}

func TestSaveAndDelete(t *testing.T) {
	root := t.TempDir()
	ls, err := NewLocalStorage(root, "")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	fh := newFileHeader(t, "notes.pdf", "application/pdf", []byte("%PDF-1.4 test"))
	stored, err := ls.SaveFileWithPath(fh, "lectures", "lecture-")
	if err != nil {
		t.Fatalf("SaveFileWithPath: %v", err)
	}

	if !strings.HasPrefix(stored.Name, "lecture-") || !strings.HasSuffix(stored.Name, ".pdf") {
		t.Errorf("unexpected stored name %q", stored.Name)
	}
	if stored.URL != "/uploads/lectures/"+stored.Name {
		t.Errorf("unexpected URL %q", stored.URL)
	}
	if stored.Size != int64(len("%PDF-1.4 test")) || stored.MimeType != "application/pdf" {
		t.Errorf("unexpected metadata %+v", stored)
	}

	full := filepath.Join(root, "lectures", stored.Name)
	if _, err := os.Stat(full); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if got := ls.GetFullPath(stored.URL); got != full {
		t.Errorf("GetFullPath(url) = %q, want %q", got, full)
	}
	if got := ls.GetFullPath(stored.RelativePath); got != full {
		t.Errorf("GetFullPath(rel) = %q, want %q", got, full)
	}

	if err := ls.DeleteFile(stored.URL); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if _, err := os.Stat(full); !os.IsNotExist(err) {
		t.Fatalf("file should be gone, stat err = %v", err)
	}
	if err := ls.DeleteFile(stored.URL); err != nil {
		t.Errorf("deleting a missing file should succeed, got %v", err)
	}
}

func TestGetFullPathStaysInRoot(t *testing.T) {
	root := t.TempDir()
	ls, err := NewLocalStorage(root, "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	got := ls.GetFullPath("/uploads/../../secret.txt")
	if !strings.HasPrefix(got, root) {
		t.Errorf("path escaped root: %q", got)
	}
	if ls.GetFullPath("/uploads/") != "" {
		t.Error("empty path should map to nothing")
	}
}

func TestSaveFileAsRejectsNestedName(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	fh := newFileHeader(t, "a.txt", "text/plain", []byte("x"))
	if _, err := ls.SaveFileAs(fh, "", "../a.txt"); err == nil {
		t.Fatal("expected error for nested name")
	}
}

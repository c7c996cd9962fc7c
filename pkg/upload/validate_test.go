package upload

import (
	"strings"
	"testing"
)

func TestValidateOrder(t *testing.T) {
	v := NewValidator(10*1024*1024, []string{"pdf", "docx", "jpg"})

	// oversize wins even with a bad extension
	err := v.Validate("huge.exe", 11*1024*1024)
	if err == nil || err.Error() != "File size must be less than 10MB" {
		t.Fatalf("oversize: got %v", err)
	}

	err = v.Validate("empty.pdf", 0)
	if err == nil || err.Error() != "File is empty" {
		t.Fatalf("empty: got %v", err)
	}

	err = v.Validate("malware.exe", 100)
	if err == nil || !strings.HasPrefix(err.Error(), "File type not supported") {
		t.Fatalf("extension: got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "pdf, docx, jpg") {
		t.Fatalf("extension error should list allowed types: %v", err)
	}

	longName := strings.Repeat("a", 300) + ".pdf"
	err = v.Validate(longName, 100)
	if err == nil || err.Error() != "Filename is too long" {
		t.Fatalf("long name: got %v", err)
	}

	if err := v.Validate("resume.pdf", 2*1024*1024); err != nil {
		t.Fatalf("valid file rejected: %v", err)
	}
	if err := v.Validate("photo.JPG", 100); err != nil {
		t.Fatalf("extension match should be case-insensitive: %v", err)
	}
	if err := v.Validate("noextension", 100); err == nil {
		t.Fatal("file without extension should be rejected")
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"resume.pdf", "resume.pdf"},
		{`a<b>c:d"e/f\g|h?i*j.pdf`, "a_b_c_d_e_f_g_h_i_j.pdf"},
		{"...hidden.pdf", "hidden.pdf"},
		{"CON", "_CON"},
		{"com3", "_com3"},
		{"with\x01control.pdf", "with_control.pdf"},
	}
	for _, c := range cases {
		if got := SanitizeFilename(c.in); got != c.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	long := strings.Repeat("x", 400)
	if got := SanitizeFilename(long); len(got) != MaxFilenameLength {
		t.Errorf("expected truncation to %d, got %d", MaxFilenameLength, len(got))
	}
}

func TestExtension(t *testing.T) {
	if Extension("a.PDF") != "pdf" {
		t.Error("extension should be lowercased")
	}
	if Extension("archive.tar.gz") != "gz" {
		t.Error("extension should be the last segment")
	}
	if Extension("noext") != "" {
		t.Error("no extension should yield empty string")
	}
}

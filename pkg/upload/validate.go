// Package upload enforces the file constraints checked before any bytes are
// persisted: size limits, extension whitelist and filename hygiene.
package upload

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Defaults mirror the original deployment configuration.
const (
	DefaultMaxFileSize = 10 * 1024 * 1024
	MaxFilenameLength  = 255
)

// DefaultAllowedTypes is the stock extension whitelist.
var DefaultAllowedTypes = []string{"pdf", "docx", "doc", "jpg", "jpeg", "png", "webp"}

// Validator holds the configured upload constraints.
type Validator struct {
	MaxFileSize  int64
	AllowedTypes []string
}

func NewValidator(maxFileSize int64, allowedTypes []string) *Validator {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	if len(allowedTypes) == 0 {
		allowedTypes = DefaultAllowedTypes
	}
	return &Validator{MaxFileSize: maxFileSize, AllowedTypes: allowedTypes}
}

// Validate checks name and size against the configured constraints.
// Checks run in a fixed order and the first failure wins; the returned error
// message is safe to show to the client.
func (v *Validator) Validate(name string, size int64) error {
	if size > v.MaxFileSize {
		return fmt.Errorf("File size must be less than %dMB", v.MaxFileSize/1024/1024)
	}
	if size == 0 {
		return fmt.Errorf("File is empty")
	}
	if !v.allowedExtension(name) {
		return fmt.Errorf("File type not supported. Allowed types: %s", strings.Join(v.AllowedTypes, ", "))
	}
	if len(name) > MaxFilenameLength {
		return fmt.Errorf("Filename is too long")
	}
	return nil
}

func (v *Validator) allowedExtension(name string) bool {
	ext := Extension(name)
	if ext == "" {
		return false
	}
	for _, t := range v.AllowedTypes {
		if ext == strings.ToLower(t) {
			return true
		}
	}
	return false
}

// Extension returns the lowercased extension of name without the dot.
func Extension(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}
	return strings.ToLower(ext[1:])
}

var (
	forbiddenChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	reservedNames  = regexp.MustCompile(`(?i)^(CON|PRN|AUX|NUL|COM[1-9]|LPT[1-9])$`)
	leadingDots    = regexp.MustCompile(`^\.+`)
)

// SanitizeFilename produces the name stored as document metadata: forbidden
// filesystem characters become underscores, reserved device names are
// neutralized, leading dots are stripped and the result is capped at 255
// characters. The user-supplied original is kept separately for display.
func SanitizeFilename(name string) string {
	name = forbiddenChars.ReplaceAllString(name, "_")
	name = reservedNames.ReplaceAllString(name, "_$1")
	name = leadingDots.ReplaceAllString(name, "")
	if len(name) > MaxFilenameLength {
		name = name[:MaxFilenameLength]
	}
	return name
}

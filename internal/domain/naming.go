package domain

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"
)

const (
	PurposeProcessed = "processed"

	thumbnailSuffix = "_thumbnail.jpg"
	maxExtLength    = 10
)

// NewStorageName builds <purpose>-<unix millis>-<random><ext>. The extension
// comes from originalName so the transcoder can sniff the container.
func NewStorageName(purpose, originalName string, now time.Time) string {
	return fmt.Sprintf("%s-%d-%d%s", purpose, now.UnixMilli(), rand.IntN(1e9), SafeExt(originalName))
}

// ThumbnailName returns <combinedBase>_thumbnail.jpg.
func ThumbnailName(combinedName string) string {
	return strings.TrimSuffix(combinedName, filepath.Ext(combinedName)) + thumbnailSuffix
}

// SafeExt returns the extension of name when it only holds ASCII letters and
// digits, and "" otherwise.
func SafeExt(name string) string {
	ext := filepath.Ext(name)
	if len(ext) < 2 || len(ext) > maxExtLength {
		return ""
	}
	for _, r := range ext[1:] {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return ""
		}
	}
	return ext
}

// IsFlatName reports whether name addresses a file directly inside the
// Storage Area.
func IsFlatName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && !strings.ContainsRune(name, 0)
}

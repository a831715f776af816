package classify

import (
	"net/url"
	"strings"
)

// ImageExtensions is the fixed set of path suffixes recognized as images.
var ImageExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg", ".bmp", ".tiff",
}

// IsAbsoluteURL reports whether s parses as an absolute URL (scheme present).
func IsAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

// IsImageURL reports whether candidate is a well-formed absolute URL whose
// path ends with a recognized image extension. Malformed input returns false;
// the function never panics and has no side effects.
func IsImageURL(candidate string) bool {
	u, err := url.Parse(candidate)
	if err != nil {
		return false
	}
	if !u.IsAbs() {
		return false
	}

	// The path alone excludes query and fragment.
	path := strings.ToLower(u.Path)
	for _, ext := range ImageExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// Package mime maps file paths to the content types the server advertises.
package mime

import "strings"

// Content types the server can produce.
const (
	TextHTML    = "text/html"
	TextPlain   = "text/plain"
	OctetStream = "application/octet-stream"
)

// ContentType returns the content type for path.
//
// It looks for ".html" and then ".txt" anywhere in the path, not only at the
// end, so "/htmlfoo.html.bak" is served as text/html. Anything else is
// application/octet-stream. The file is never opened.
func ContentType(path string) string {
	switch {
	case strings.Contains(path, ".html"):
		return TextHTML
	case strings.Contains(path, ".txt"):
		return TextPlain
	default:
		return OctetStream
	}
}

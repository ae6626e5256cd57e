package api

import (
	"net/url"
	"regexp"
	"strings"
)

// dispositionRe extracts the filename token from a Content-Disposition
// header, accepting both the plain form (filename="x.txt" / filename=x.txt)
// and the RFC 5987 extended form (filename*=UTF-8''x%20y.txt).
var dispositionRe = regexp.MustCompile(`(?i)filename(\*)?=(?:UTF-8'')?"?([^;"\n]+)`)

// filenameFromDisposition returns the filename advertised by the header, or
// "" when none is present. Percent-escapes are decoded for the extended
// form; a failed decode keeps the raw token rather than dropping the name.
func filenameFromDisposition(header string) string {
	m := dispositionRe.FindStringSubmatch(header)
	if m == nil {
		return ""
	}
	name := strings.Trim(strings.TrimSpace(m[2]), `"`)
	if m[1] == "*" {
		if decoded, err := url.PathUnescape(name); err == nil {
			name = decoded
		}
	}
	return name
}

package generator

import (
	"net/url"
	"regexp"
	"strings"
)

// ArchiveExtension is appended to the project name when the service suggests no filename
const ArchiveExtension = ".zip"

var (
	extendedFilenamePattern = regexp.MustCompile(`(?i)filename\*=UTF-8''([^;]+)`)
	plainFilenamePattern    = regexp.MustCompile(`(?i)filename="?([^;"]+)"?`)
)

// FilenameFromDisposition extracts the suggested filename of a
// Content-Disposition header. The RFC 5987 form wins over the plain one.
// Values are percent-decoded; undecodable values are returned as sent.
func FilenameFromDisposition(header string) (string, bool) {
	for _, pattern := range []*regexp.Regexp{extendedFilenamePattern, plainFilenamePattern} {
		match := pattern.FindStringSubmatch(header)
		if match == nil {
			continue
		}
		raw := strings.TrimSpace(match[1])
		if raw == "" {
			continue
		}
		decoded, err := url.PathUnescape(raw)
		if err != nil {
			return raw, true
		}
		return decoded, true
	}
	return "", false
}

// ResolveFilename returns the header's filename or "{projectName}.zip"
func ResolveFilename(header, projectName string) string {
	if name, ok := FilenameFromDisposition(header); ok {
		return name
	}
	return strings.TrimSpace(projectName) + ArchiveExtension
}

package generator

import "testing"

func TestFilenameFromDisposition(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
		found    bool
	}{
		{"quoted", `attachment; filename="x.zip"`, "x.zip", true},
		{"unquoted", `attachment; filename=x.zip`, "x.zip", true},
		{"extended", `attachment; filename*=UTF-8''My%20App.zip`, "My App.zip", true},
		{"extended wins", `attachment; filename="plain.zip"; filename*=UTF-8''ext.zip`, "ext.zip", true},
		{"case insensitive", `Attachment; FILENAME="Upper.zip"`, "Upper.zip", true},
		{"percent in plain", `attachment; filename="a%2Bb.zip"`, "a+b.zip", true},
		{"bad escape kept raw", `attachment; filename*=UTF-8''bad%zz.zip`, "bad%zz.zip", true},
		{"trailing params", `attachment; filename="x.zip"; size=10`, "x.zip", true},
		{"no filename", `attachment`, "", false},
		{"empty header", ``, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FilenameFromDisposition(tt.header)
			if found != tt.found || got != tt.expected {
				t.Errorf("FilenameFromDisposition(%q) = (%q, %v), expected (%q, %v)",
					tt.header, got, found, tt.expected, tt.found)
			}
		})
	}
}

func TestResolveFilename(t *testing.T) {
	if got := ResolveFilename("", "  MyApp "); got != "MyApp.zip" {
		t.Errorf("Expected fallback MyApp.zip, got %q", got)
	}
	if got := ResolveFilename(`attachment; filename="x.zip"`, "MyApp"); got != "x.zip" {
		t.Errorf("Expected header filename, got %q", got)
	}
}

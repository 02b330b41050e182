// Package browser hands web links to the desktop's default browser.
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// launch starts the opener without waiting for it. Tests replace it.
var launch = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Normalize turns a bare host such as "ecovative.com" into an https URL
// and rejects anything that is not http or https.
func Normalize(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", fmt.Errorf("empty URL")
	}
	if !strings.Contains(rawURL, "://") && !strings.Contains(rawURL, ":") {
		rawURL = "https://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("refusing to open URL with scheme %q (only http/https allowed)", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid URL %q: missing host", rawURL)
	}
	return u.String(), nil
}

// Open normalizes rawURL and opens it.
func Open(rawURL string) error {
	target, err := Normalize(rawURL)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case "darwin":
		return launch("open", target)
	case "windows":
		// rundll32 avoids cmd /c start and its shell parsing.
		return launch("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		return launch("xdg-open", target)
	}
}

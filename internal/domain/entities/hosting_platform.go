package entities

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

const releasesSuffix = "/releases/"

// HostingPlatform describes a code hosting service whose URLs can be turned
// into a releases page link.
type HostingPlatform struct {
	Name string // display name, e.g. "GitHub"
	Host string // e.g. "github.com"
}

// GitHub is the only hosting platform podreport links releases for.
var GitHub = HostingPlatform{ //nolint:gochecknoglobals // immutable platform definition
	Name: "GitHub",
	Host: "github.com",
}

// Matches returns true if the URL's host belongs to this platform.
// The comparison ignores case and port.
func (p HostingPlatform) Matches(u *url.URL) bool {
	return u != nil && strings.EqualFold(u.Hostname(), p.Host)
}

// Project extracts the normalized "org/repo" path from a source URL.
//
// Behaviour:
//   - If the host is not this platform, ok is false and err is nil.
//   - If the host matches, the extension of the last path element (usually
//     ".git") and exactly one leading slash are removed.
//   - If nothing usable is left, ErrMalformedHostURL is returned.
func (p HostingPlatform) Project(u *url.URL) (string, bool, error) {
	if !p.Matches(u) {
		return "", false, nil
	}

	trimmed := strings.TrimSuffix(u.Path, "/")
	trimmed = strings.TrimSuffix(trimmed, path.Ext(trimmed))
	project := strings.TrimPrefix(trimmed, "/")
	if project == "" {
		return "", false, fmt.Errorf("%w: %q has no project path", ErrMalformedHostURL, u.String())
	}

	return project, true, nil
}

// ReleasesURL builds the releases page URL for a project path,
// e.g. "https://github.com/org/repo/releases/".
func (p HostingPlatform) ReleasesURL(project string) *url.URL {
	return &url.URL{
		Scheme: "https",
		Host:   p.Host,
		Path:   "/" + project + releasesSuffix,
	}
}

// MissingLabel is the text printed for pods without a releases page.
func (p HostingPlatform) MissingLabel() string {
	return "Not on " + p.Name
}

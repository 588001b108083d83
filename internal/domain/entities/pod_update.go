package entities

import "net/url"

// PodUpdate is one line of the final report.
type PodUpdate struct {
	Name             string
	CurrentVersion   string
	AvailableVersion string
	ReleasesURL      *url.URL // nil when the pod is not hosted on a known platform
}

// HasReleasesURL reports whether a releases page could be linked for the pod.
func (u PodUpdate) HasReleasesURL() bool {
	return u.ReleasesURL != nil
}

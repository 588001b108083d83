//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"net/url"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/podreport/internal/domain/entities"
)

// PodUpdateBuilder helps create test pod updates with a fluent interface.
type PodUpdateBuilder struct {
	*testkit.BaseBuilder
	name             string
	currentVersion   string
	availableVersion string
	releasesURL      string
}

// NewPodUpdateBuilder creates a new pod update builder with sensible defaults.
func NewPodUpdateBuilder() *PodUpdateBuilder {
	return &PodUpdateBuilder{
		BaseBuilder:      testkit.NewBaseBuilder(),
		name:             "AFNetworking",
		currentVersion:   "2.6.3",
		availableVersion: "3.0.4",
		releasesURL:      "https://github.com/AFNetworking/AFNetworking/releases/",
	}
}

// WithName sets the pod name.
func (b *PodUpdateBuilder) WithName(name string) *PodUpdateBuilder {
	b.name = name
	return b
}

// WithCurrentVersion sets the current version.
func (b *PodUpdateBuilder) WithCurrentVersion(version string) *PodUpdateBuilder {
	b.currentVersion = version
	return b
}

// WithAvailableVersion sets the available version.
func (b *PodUpdateBuilder) WithAvailableVersion(version string) *PodUpdateBuilder {
	b.availableVersion = version
	return b
}

// WithReleasesURL sets the releases page URL.
func (b *PodUpdateBuilder) WithReleasesURL(rawURL string) *PodUpdateBuilder {
	b.releasesURL = rawURL
	return b
}

// WithoutReleasesURL marks the pod as not linked to any releases page.
func (b *PodUpdateBuilder) WithoutReleasesURL() *PodUpdateBuilder {
	b.releasesURL = ""
	return b
}

// Build creates the pod update (satisfies testkit.Builder interface).
func (b *PodUpdateBuilder) Build() interface{} {
	return b.BuildPodUpdate()
}

// BuildPodUpdate creates the pod update with a concrete return type.
func (b *PodUpdateBuilder) BuildPodUpdate() entities.PodUpdate {
	update := entities.PodUpdate{
		Name:             b.name,
		CurrentVersion:   b.currentVersion,
		AvailableVersion: b.availableVersion,
	}
	if b.releasesURL != "" {
		update.ReleasesURL, _ = url.Parse(b.releasesURL)
	}
	return update
}

// Reset clears the builder state, allowing it to be reused.
func (b *PodUpdateBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "AFNetworking"
	b.currentVersion = "2.6.3"
	b.availableVersion = "3.0.4"
	b.releasesURL = "https://github.com/AFNetworking/AFNetworking/releases/"
	return b
}

// Clone creates a deep copy of the PodUpdateBuilder.
func (b *PodUpdateBuilder) Clone() testkit.Builder {
	return &PodUpdateBuilder{
		BaseBuilder:      b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:             b.name,
		currentVersion:   b.currentVersion,
		availableVersion: b.availableVersion,
		releasesURL:      b.releasesURL,
	}
}

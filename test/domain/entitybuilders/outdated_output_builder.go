//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"strings"
)

// OutdatedOutputBuilder assembles `pod outdated` output for tests.
type OutdatedOutputBuilder struct {
	lines []string
}

// NewOutdatedOutputBuilder creates a builder starting with the usual header.
func NewOutdatedOutputBuilder() *OutdatedOutputBuilder {
	return &OutdatedOutputBuilder{
		lines: []string{
			"Analyzing dependencies",
			"The color indicates what happens when you run `pod update`",
			"The following pod updates are available:",
		},
	}
}

// WithoutHeader drops the header lines.
func (b *OutdatedOutputBuilder) WithoutHeader() *OutdatedOutputBuilder {
	b.lines = nil
	return b
}

// WithPod appends a well-formed update line.
func (b *OutdatedOutputBuilder) WithPod(name, current, available string) *OutdatedOutputBuilder {
	b.lines = append(b.lines, fmt.Sprintf("- %s %s -> %s (latest version %s)", name, current, current, available))
	return b
}

// WithLine appends an arbitrary line.
func (b *OutdatedOutputBuilder) WithLine(line string) *OutdatedOutputBuilder {
	b.lines = append(b.lines, line)
	return b
}

// Build returns the output, newline terminated.
func (b *OutdatedOutputBuilder) Build() string {
	if len(b.lines) == 0 {
		return ""
	}
	return strings.Join(b.lines, "\n") + "\n"
}

package entities

import (
	"fmt"
	"strings"
)

const (
	updateLinePrefix = "-"
	lineSeparators   = " ()"

	// Token positions in "- NAME CURRENT -> CURRENT (latest version AVAILABLE)".
	nameToken      = 1
	currentToken   = 2
	availableToken = 8
	minTokens      = availableToken + 1
)

// OutdatedPod is a single entry reported by `pod outdated`.
type OutdatedPod struct {
	Name             string
	CurrentVersion   string
	AvailableVersion string
}

// ParseOutdatedOutput extracts the outdated pods from the raw output of
// `pod outdated`. Only lines starting with "-" are considered; every other
// line (headers, blank lines, progress messages) is ignored.
//
// A candidate line that does not split into enough tokens aborts the whole
// parse with ErrInvalidFormat, since it means the tool's output format has
// changed.
func ParseOutdatedOutput(raw string) ([]OutdatedPod, error) {
	var pods []OutdatedPod
	for _, line := range splitLines(raw) {
		if !strings.HasPrefix(line, updateLinePrefix) {
			continue
		}

		pod, err := parseOutdatedLine(line)
		if err != nil {
			return nil, err
		}
		pods = append(pods, pod)
	}
	return pods, nil
}

func parseOutdatedLine(line string) (OutdatedPod, error) {
	tokens := tokenize(line)
	if len(tokens) < minTokens {
		return OutdatedPod{}, fmt.Errorf("%w: %q has %d tokens, want at least %d",
			ErrInvalidFormat, line, len(tokens), minTokens)
	}

	return OutdatedPod{
		Name:             tokens[nameToken],
		CurrentVersion:   tokens[currentToken],
		AvailableVersion: tokens[availableToken],
	}, nil
}

// tokenize splits on every separator character, so consecutive separators
// (like ") (") produce empty tokens and keep the positions stable.
func tokenize(line string) []string {
	var tokens []string
	start := 0
	for i := range len(line) {
		if strings.IndexByte(lineSeparators, line[i]) >= 0 {
			tokens = append(tokens, line[start:i])
			start = i + 1
		}
	}
	return append(tokens, line[start:])
}

func splitLines(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
}

package controllers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rios0rios0/podreport/internal/domain/entities"
)

// ReportPrinter renders a report in one of the supported output formats.
type ReportPrinter struct {
	out      io.Writer
	platform entities.HostingPlatform
}

// NewReportPrinter creates a printer writing to out.
func NewReportPrinter(out io.Writer, platform entities.HostingPlatform) *ReportPrinter {
	return &ReportPrinter{out: out, platform: platform}
}

// Print writes updates in the given format.
func (p *ReportPrinter) Print(updates []entities.PodUpdate, format entities.OutputFormat) error {
	switch format {
	case entities.OutputText:
		return p.printText(updates)
	case entities.OutputMarkdown:
		return p.printMarkdown(updates)
	case entities.OutputJSON:
		return p.printJSON(updates)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// printText writes one "NAME [CURRENT -> AVAILABLE] LINK" line per pod.
func (p *ReportPrinter) printText(updates []entities.PodUpdate) error {
	for _, u := range updates {
		if _, err := fmt.Fprintf(p.out, "%s [%s -> %s] %s\n",
			u.Name, u.CurrentVersion, u.AvailableVersion, p.releasesLabel(u)); err != nil {
			return err
		}
	}
	return nil
}

func (p *ReportPrinter) printMarkdown(updates []entities.PodUpdate) error {
	if _, err := fmt.Fprint(p.out,
		"| Pod | Current | Available | Releases |\n|-----|---------|-----------|----------|\n"); err != nil {
		return err
	}
	for _, u := range updates {
		releases := p.releasesLabel(u)
		if u.HasReleasesURL() {
			releases = fmt.Sprintf("[releases](%s)", u.ReleasesURL)
		}
		if _, err := fmt.Fprintf(p.out, "| %s | %s | %s | %s |\n",
			u.Name, u.CurrentVersion, u.AvailableVersion, releases); err != nil {
			return err
		}
	}
	return nil
}

func (p *ReportPrinter) printJSON(updates []entities.PodUpdate) error {
	records := make([]jsonRecord, 0, len(updates))
	for _, u := range updates {
		record := jsonRecord{
			Name:      u.Name,
			Current:   u.CurrentVersion,
			Available: u.AvailableVersion,
		}
		if u.HasReleasesURL() {
			record.ReleasesURL = u.ReleasesURL.String()
		}
		records = append(records, record)
	}

	encoder := json.NewEncoder(p.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

func (p *ReportPrinter) releasesLabel(u entities.PodUpdate) string {
	if u.HasReleasesURL() {
		return u.ReleasesURL.String()
	}
	return p.platform.MissingLabel()
}

type jsonRecord struct {
	Name        string `json:"name"`
	Current     string `json:"current"`
	Available   string `json:"available"`
	ReleasesURL string `json:"releases_url,omitempty"`
}

package models

import "strings"

type (
	// ReportSection is one fixed block of the PR description.
	ReportSection struct {
		Title string
		Lines []string
	}

	// Report is the ordered sequence of sections. Section set, names and order
	// are a compatibility contract with external review tools.
	Report struct {
		Sections []ReportSection
	}
)

// Markdown renders the report: every section is a "##" heading followed by
// "-"-prefixed lines and a trailing blank line.
func (r Report) Markdown() string {
	var b strings.Builder
	for _, section := range r.Sections {
		b.WriteString("## ")
		b.WriteString(section.Title)
		b.WriteString("\n")
		for _, line := range section.Lines {
			b.WriteString("- ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

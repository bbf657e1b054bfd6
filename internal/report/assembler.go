package report

import (
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MatePR/internal/domain/models"
)

// Source says which collection path produced the change set; it only affects
// the summary wording.
type Source int

const (
	SourceStaged Source = iota
	SourceBranch
)

// Options control the assembly of the fixed-section report.
type Options struct {
	Source       Source
	BaseBranch   string
	IncludeFiles bool
}

const emptyStateLine = "No file changes detected."

// Assemble renders the baseline PR description. The section set and order are
// a compatibility contract: Summary, Changes, Release Notes, Files changed
// (optional), Testing, Risk / Impact, Rollout / Backout.
func Assemble(set models.ChangeSet, stats models.DiffStats, prepared models.PreparedDiff, class models.ClassificationResult, opts Options) models.Report {
	sections := make([]models.ReportSection, 0, 7)

	sections = append(sections, models.ReportSection{
		Title: "Summary",
		Lines: summaryLines(set, stats, prepared, class.Risk, opts),
	})

	sections = append(sections, models.ReportSection{
		Title: "Changes",
		Lines: orEmptyState(class.ChangeBullets),
	})

	sections = append(sections, models.ReportSection{
		Title: "Release Notes",
		Lines: class.ReleaseNotesLines,
	})

	if opts.IncludeFiles {
		sections = append(sections, models.ReportSection{
			Title: "Files changed",
			Lines: fileLines(set),
		})
	}

	sections = append(sections, models.ReportSection{
		Title: "Testing",
		Lines: class.TestingLines,
	})

	sections = append(sections, models.ReportSection{
		Title: "Risk / Impact",
		Lines: riskLines(class.Risk),
	})

	sections = append(sections, models.ReportSection{
		Title: "Rollout / Backout",
		Lines: []string{
			"Rollout: standard deploy; no special steps identified.",
			"Backout: revert this merge commit.",
		},
	})

	return models.Report{Sections: sections}
}

func summaryLines(set models.ChangeSet, stats models.DiffStats, prepared models.PreparedDiff, risk models.RiskAssessment, opts Options) []string {
	lines := make([]string, 0, 4)

	count := set.Len()
	noun := "files"
	if count == 1 {
		noun = "file"
	}
	if opts.Source == SourceBranch {
		lines = append(lines, fmt.Sprintf("Changes against %s in %d %s.", opts.BaseBranch, count, noun))
	} else {
		lines = append(lines, fmt.Sprintf("Staged changes in %d %s.", count, noun))
	}

	lines = append(lines, fmt.Sprintf("+%d / -%d lines.", stats.AddedLines, stats.RemovedLines))

	if prepared.Truncated {
		lines = append(lines, fmt.Sprintf("Diff truncated: only the first %d lines were analyzed.", prepared.AnalyzedLines))
	}

	lines = append(lines, "Risk: "+riskSummary(risk))
	return lines
}

func riskSummary(risk models.RiskAssessment) string {
	if len(risk.Areas) == 0 {
		return string(risk.Level) + "."
	}
	return fmt.Sprintf("%s (%s).", risk.Level, joinAreas(risk.Areas))
}

func riskLines(risk models.RiskAssessment) []string {
	areas := "none detected"
	if len(risk.Areas) > 0 {
		areas = joinAreas(risk.Areas)
	}
	return []string{
		fmt.Sprintf("Level: %s.", risk.Level),
		fmt.Sprintf("Areas: %s.", areas),
	}
}

func joinAreas(areas []models.RiskArea) string {
	names := make([]string, 0, len(areas))
	for _, area := range areas {
		names = append(names, string(area))
	}
	return strings.Join(names, ", ")
}

func fileLines(set models.ChangeSet) []string {
	if set.IsEmpty() {
		return []string{emptyStateLine}
	}
	lines := make([]string, 0, set.Len())
	for _, record := range set.Records {
		lines = append(lines, fmt.Sprintf("%s: %s", record.Status, record.DisplayPath))
	}
	return lines
}

func orEmptyState(lines []string) []string {
	if len(lines) == 0 {
		return []string{emptyStateLine}
	}
	return lines
}

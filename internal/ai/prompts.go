package ai

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/Tomas-vilte/MatePR/internal/domain/models"
	errs "github.com/Tomas-vilte/MatePR/internal/errors"
)

// SystemPersona is the fixed system message sent with every generation call.
const SystemPersona = "You are an experienced software engineer who writes clear, " +
	"honest pull request descriptions. You never invent changes that are not in " +
	"the provided data, and you keep the section structure you are given."

// Placeholders are substituted by exact name. An unresolved placeholder stays
// verbatim in the prompt so a template/placeholder mismatch is visible instead
// of silently producing a malformed prompt.
const defaultPromptTemplate = `Rewrite the following PR description so it reads well for reviewers,
keeping every section heading and the factual content intact. Use a {{TONE}} tone.

Current description:
{{BASELINE_REPORT}}

Changed files:
{{FILE_CHANGES}}

Diff (truncated={{DIFF_TRUNCATED}}, analyzed lines={{ANALYZED_LINES}}, reason={{TRUNCATION_REASON}}):
{{DIFF}}

Reply with the improved Markdown description only, no commentary.`

// PromptLibrary resolves the prompt template once per process: the configured
// override file when set, the embedded default otherwise. The lazy load is
// idempotent, a raced initialization recomputes the same value.
type PromptLibrary struct {
	overridePath string

	once sync.Once
	tmpl string
	err  error
}

func NewPromptLibrary(overridePath string) *PromptLibrary {
	return &PromptLibrary{overridePath: overridePath}
}

func (l *PromptLibrary) Template() (string, error) {
	l.once.Do(func() {
		if l.overridePath == "" {
			l.tmpl = defaultPromptTemplate
			return
		}
		data, err := os.ReadFile(l.overridePath)
		if err != nil {
			l.err = errs.ErrPromptTemplate.WithError(err).WithContext("path", l.overridePath)
			return
		}
		l.tmpl = string(data)
	})
	return l.tmpl, l.err
}

// BuildPrompt substitutes the named placeholders into the template.
func BuildPrompt(template string, data models.PromptData) string {
	replacer := strings.NewReplacer(
		"{{BASELINE_REPORT}}", data.BaselineReport,
		"{{FILE_CHANGES}}", data.FileChanges,
		"{{DIFF}}", data.Diff,
		"{{DIFF_TRUNCATED}}", strconv.FormatBool(data.Truncated),
		"{{ANALYZED_LINES}}", strconv.Itoa(data.AnalyzedLines),
		"{{TRUNCATION_REASON}}", string(data.Reason),
		"{{TONE}}", data.Tone,
	)
	return replacer.Replace(template)
}

// FormatFileChanges renders the change set the way the prompt expects it.
func FormatFileChanges(set models.ChangeSet) string {
	if set.IsEmpty() {
		return "(none)"
	}
	var b strings.Builder
	for _, record := range set.Records {
		b.WriteString(fmt.Sprintf("- %s: %s\n", record.Status, record.DisplayPath))
	}
	return strings.TrimRight(b.String(), "\n")
}

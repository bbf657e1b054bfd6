package models

type (
	// GenerationRequest carries everything a text-generation provider needs for
	// one call. Cancellation travels in the context passed alongside it.
	GenerationRequest struct {
		Prompt      string
		Model       string
		EndpointURL string
		APIKey      string
		TimeoutMs   int
	}

	// PromptData is the set of named placeholders substituted into the
	// generation prompt template.
	PromptData struct {
		BaselineReport string
		FileChanges    string
		Diff           string
		Truncated      bool
		AnalyzedLines  int
		Reason         TruncationReason
		Tone           string
	}
)

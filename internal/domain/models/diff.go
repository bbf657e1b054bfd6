package models

// TruncationReason says which budget cut the diff that feeds the AI prompt.
type TruncationReason string

const (
	TruncationNone     TruncationReason = "none"
	TruncationMaxLines TruncationReason = "maxLines"
	TruncationMaxChars TruncationReason = "maxChars"
)

type (
	// DiffStats counts added and removed content lines in a diff.
	DiffStats struct {
		AddedLines   int
		RemovedLines int
	}

	// PreparedDiff is a diff bounded to a maximum line count. Text is always a
	// prefix of the original diff cut at a line boundary. AnalyzedLines equals
	// the line budget when the cut was line-driven, otherwise the true total.
	PreparedDiff struct {
		Text          string
		Truncated     bool
		AnalyzedLines int
	}

	// AIPreparedDiff additionally bounds the diff by a character budget for the
	// outbound generation payload. Truncated is the OR of both cuts.
	AIPreparedDiff struct {
		PreparedDiff
		TruncatedByChars bool
	}
)

// Reason reports the dominant truncation cause for prompt construction.
func (d AIPreparedDiff) Reason() TruncationReason {
	switch {
	case d.TruncatedByChars:
		return TruncationMaxChars
	case d.Truncated:
		return TruncationMaxLines
	default:
		return TruncationNone
	}
}

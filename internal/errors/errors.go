package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeAI            ErrorType = "AI"
	TypeVCS           ErrorType = "VCS"
	TypeGit           ErrorType = "GIT"
	TypeInternal      ErrorType = "INTERNAL"
	TypeCanceled      ErrorType = "CANCELED"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if detail, ok := e.Context["detail"].(string); ok && detail != "" {
			msg += fmt.Sprintf(" - %s", detail)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches AppErrors by category and message so that sentinel values keep
// working through WithError/WithContext copies.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Collection-phase errors. Any of these is terminal for the invocation:
// one message is surfaced and no report is produced.
var (
	ErrNoWorkspace = NewAppError(TypeGit, "No workspace folder detected", nil).
			WithSuggestion("Run mate-pr from inside your project directory")

	ErrNotARepository = NewAppError(TypeGit, "The current folder is not a git repository", nil).
				WithSuggestion("Initialize one first: git init")

	ErrToolUnavailable = NewAppError(TypeGit, "The git executable is not available", nil).
				WithSuggestion("Install git and make sure it is on your PATH")

	ErrBaseBranchNotFound = NewAppError(TypeGit, "Base branch not found", nil).
				WithSuggestion("Pass an existing branch with --base, or create main/master")

	ErrNoChanges = NewAppError(TypeGit, "No staged changes detected", nil).
			WithSuggestion("Stage your changes first with: git add <files>")

	ErrNoRangeChanges = NewAppError(TypeGit, "No changes detected against the base branch", nil).
				WithSuggestion("Commit something on this branch, or check the --base value")
)

// Generation-phase errors. Apart from the cancellations these downgrade to the
// locally assembled report instead of failing the invocation.
var (
	ErrUnsupportedProvider = NewAppError(TypeAI, "Unsupported AI provider", nil).
				WithSuggestion("Configure a known provider: mate-pr config set-provider openai")

	ErrProviderNotConfigured = NewAppError(TypeAI, "AI provider is not configured", nil).
					WithSuggestion("Set an API key first: mate-pr config set-api-key <key>")

	ErrPromptTemplate = NewAppError(TypeAI, "Prompt template unavailable", nil).
				WithSuggestion("Check the prompt_template_path entry of your config")

	ErrGenerationFailed = NewAppError(TypeAI, "AI generation request failed", nil)

	ErrInvalidResponse = NewAppError(TypeAI, "AI provider returned an invalid response", nil)

	ErrEmptyResponse = NewAppError(TypeAI, "AI provider returned no content", nil)

	ErrUserCanceled = NewAppError(TypeCanceled, "Operation canceled", nil)
)

var (
	ErrConfigInvalid = NewAppError(TypeConfiguration, "Configuration is not valid", nil)

	ErrPublishFailed = NewAppError(TypeVCS, "Could not publish the description to the pull request", nil).
				WithSuggestion("Check the configured GitHub token and the PR number")

	ErrRepoInfo = NewAppError(TypeVCS, "Could not extract owner/repository from the origin remote", nil).
			WithSuggestion("Add a remote first: git remote add origin <url>")
)

// NewCommandError wraps a failed git invocation, keeping the captured
// stderr detail for the user-facing message.
func NewCommandError(detail string, err error) *AppError {
	return NewAppError(TypeGit, "Git command failed", err).WithContext("detail", detail)
}

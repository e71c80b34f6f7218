package output

// Exit codes for the ghtoken CLI
const (
	ExitOK       = 0 // Success, token printed
	ExitNotFound = 1 // No enabled source held a token
	ExitUsage    = 2 // Invalid usage / bad arguments
	ExitGeneral  = 3 // Hard error, deliberately not translated to "not found"
)

// CLIError represents a structured error with exit code and optional hint
type CLIError struct {
	ExitCode int
	Message  string
	Hint     string
}

// Error implements the error interface
func (e *CLIError) Error() string {
	return e.Message
}

// NewCLIError creates a new CLIError
func NewCLIError(code int, msg string) *CLIError {
	return &CLIError{
		ExitCode: code,
		Message:  msg,
	}
}

// WithHint adds a user-facing hint to the error
func (e *CLIError) WithHint(hint string) *CLIError {
	e.Hint = hint
	return e
}

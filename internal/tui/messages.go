package tui

// InfoMsg is an informational message rendered in the footer.
type InfoMsg string

// ErrorMsg is an error to be both rendered in the footer and logged.
type ErrorMsg struct {
	Error   error
	Message string
	Args    []any
}

func NewErrorMsg(err error, msg string, args ...any) ErrorMsg {
	return ErrorMsg{
		Error:   err,
		Message: msg,
		Args:    args,
	}
}

package tui

import "github.com/charmbracelet/bubbles/key"

// ModelHelpBindings is implemented by models that surface further help
// bindings specific to the model.
type ModelHelpBindings interface {
	HelpBindings() []key.Binding
}

// ModelTextInput is implemented by models that embed a text input. While the
// input is focused, keys must reach the model rather than trigger global or
// navigation bindings.
type ModelTextInput interface {
	InputFocused() bool
}

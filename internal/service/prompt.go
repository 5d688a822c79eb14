package service

// PromptService defines the interface for interactive terminal prompts.

type PromptService interface {
	// Input shows the label with a default value and returns the entered
	// line, or the default when the user just presses enter.
	Input(label, defaultValue string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(label string, defaultYes bool) (bool, error)
}

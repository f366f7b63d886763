package domain

// Prompter is the line-based input provider used by interactive flows.
// Prompt displays label and returns one line of input without its line ending.
type Prompter interface {
	Prompt(label string) (string, error)
}

package entities

// CommandResult holds the outcome of an external command.
type CommandResult struct {
	ExitStatus int
	Stdout     string
	Stderr     string
}

// Succeeded returns true when the command exited with status zero.
func (r *CommandResult) Succeeded() bool {
	return r.ExitStatus == 0
}

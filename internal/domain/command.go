package domain

// ExecCommand is an external program invocation built from a command template.
type ExecCommand struct {
	Program string
	Args    []string
}

package domain

import "strings"

// Command is a single external process invocation.
type Command struct {
	Name string
	Args []string
}

// NewCommand creates a Command running name with args.
func NewCommand(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// String renders the command line the way it is echoed before running.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

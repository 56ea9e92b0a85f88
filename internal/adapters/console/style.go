package console

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris  = lipgloss.Color("#8B5CF6")
	Slate = lipgloss.Color("#667085")
	Green = lipgloss.Color("#22A06B")
)

// Icons.
const (
	Check  = "✓"
	Dot    = "●"
	Prompt = "=>"
)

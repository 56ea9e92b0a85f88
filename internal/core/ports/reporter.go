package ports

// Reporter prints user-facing progress to the console.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Step announces what is about to happen.
	Step(msg string)
	// Command echoes a command line before it runs.
	Command(cmdline string)
	// Line prints a plain line of output.
	Line(text string)
	// Done announces the end of a successful invocation.
	Done()
}

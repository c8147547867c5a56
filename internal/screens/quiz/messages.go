package quiz

// exportDoneMsg reports the outcome of an export command.
type exportDoneMsg struct {
	Path      string
	Questions int
	Err       error
}

package command

// NoIndex marks a Focus that selects a whole view rather than one entry.
const NoIndex = -1

// Focus tells the presentation layer which entity view should be shown
// after a command, and optionally which entry in it.
type Focus struct {
	View  EntityKind
	Index int
}

// Result is the immutable outcome of one command execution: the
// feedback message for the user and the view focus. A Result is
// constructed once per command and never shared or reassigned.
type Result struct {
	Feedback string
	Focus    Focus
}

// newResult builds a Result focusing a whole view.
func newResult(feedback string, view EntityKind) Result {
	return Result{Feedback: feedback, Focus: Focus{View: view, Index: NoIndex}}
}

// newIndexResult builds a Result focusing one entry of a view.
func newIndexResult(feedback string, view EntityKind, index int) Result {
	return Result{Feedback: feedback, Focus: Focus{View: view, Index: index}}
}

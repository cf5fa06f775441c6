package domain

// ShellState is the load state of the application shell.
type ShellState string

const (
	// StateUnloaded means the dataset has not been read yet.
	StateUnloaded ShellState = "unloaded"
	// StateLoaded means the dataset is available to every page.
	StateLoaded ShellState = "loaded"
	// StateFailed means loading failed and every page shows the failure view.
	StateFailed ShellState = "failed"
)

// Ready reports whether pages can render data.
func (s ShellState) Ready() bool {
	return s == StateLoaded
}

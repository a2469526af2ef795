package review

// Snapshot is a pull request as it was when fetched. It is never persisted.
type Snapshot struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Files       []string `json:"files"`
	Diff        string   `json:"diff"`
}

// Result is the outcome of one review run.
type Result struct {
	Summary  string   `json:"summary"`
	Snapshot Snapshot `json:"snapshot"`
}

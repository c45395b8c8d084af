package enum

// Interactive reports whether the tab shows the annotated walkthrough.
func (t Tab) Interactive() bool {
	return t == TabTell
}

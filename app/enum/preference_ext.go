package enum

// PreferenceFromBool maps a confirmed or pending flag to dark or light.
func PreferenceFromBool(dark bool) Preference {
	if dark {
		return PreferenceDark
	}
	return PreferenceLight
}

// Dark reports whether the preference is dark. Unset counts as not dark.
func (p Preference) Dark() bool {
	return p == PreferenceDark
}

// Toggle returns the flag to submit when the toggle is activated, the negation of the current
// preference with unset treated as light.
func (p Preference) Toggle() bool {
	return !p.Dark()
}

package enum

//go:generate go run github.com/go-pkgz/enum@latest -type preference -lower
type preference int

const (
	preferenceUnset preference = iota // enum:alias=
	preferenceDark
	preferenceLight
)

//go:generate go run github.com/go-pkgz/enum@latest -type phase -lower
type phase int

const (
	phaseIdle phase = iota
	phaseCallback
	phaseSetter
	phaseGetter
)

//go:generate go run github.com/go-pkgz/enum@latest -type tab -lower
type tab int

const (
	tabShow tab = iota
	tabTell
)

//go:generate go run github.com/go-pkgz/enum@latest -type action -lower
type action int

const (
	actionIncrement action = iota
	actionNext
	actionPrev
	actionShow
	actionTell
)

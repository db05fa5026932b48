package domain

// BarAction is the single action a status-bar invocation applies.
type BarAction string

const (
	BarStart BarAction = "start"
	BarStop  BarAction = "stop"
	BarPause BarAction = "pause"
	BarCheck BarAction = "check" // Default when no action flag is given
)

// IsValid returns true if the action is a known value.
func (a BarAction) IsValid() bool {
	switch a {
	case BarStart, BarStop, BarPause, BarCheck:
		return true
	default:
		return false
	}
}

// Flag returns the command-line flag that triggers the action.
// Check has no flag.
func (a BarAction) Flag() string {
	if a == BarCheck {
		return ""
	}
	return "--" + string(a)
}

// BarView selects which status-bar report is rendered.
type BarView string

const (
	ViewStarted BarView = "started"
	ViewPaused  BarView = "paused"
	ViewEnded   BarView = "ended"
)

// Package gauge defines the states the scan indicator can show.
package gauge

// Style classes carried by a State. An empty class is the neutral style.
const (
	ClassNone   = ""
	ClassDanger = "gauge-danger"
	ClassSafe   = "gauge-safe"
)

// Classification results with a dedicated state.
const (
	ResultPhishing   = "phishing"
	ResultLegitimate = "legitimate"
)

// State is what the gauge shows: a status label, a style class and a short
// symbol drawn inside the circle.
type State struct {
	Label  string
	Class  string
	Symbol string
}

var (
	Prompt   = State{Label: "Enter a URL", Class: ClassNone, Symbol: "--"}
	Scanning = State{Label: "Scanning...", Class: ClassNone, Symbol: "..."}
	Danger   = State{Label: "PHISHING ⚠️", Class: ClassDanger, Symbol: "⚠"}
	Safe     = State{Label: "SAFE ✓", Class: ClassSafe, Symbol: "✓"}
	Unknown  = State{Label: "Unknown", Class: ClassNone, Symbol: "?"}
	Error    = State{Label: "Backend Error", Class: ClassNone, Symbol: "X"}
)

// ForResult maps a classification result to the state that displays it.
func ForResult(result string) State {
	switch result {
	case ResultPhishing:
		return Danger
	case ResultLegitimate:
		return Safe
	default:
		return Unknown
	}
}

// StatusText is the label line as shown next to the gauge.
func (s State) StatusText() string {
	return "Status: " + s.Label
}

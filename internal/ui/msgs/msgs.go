package msgs

import "time"

// AppMode represents the current input mode.
type AppMode int

const (
	ModeInsert AppMode = iota
	ModeNormal
	ModeModal
)

func (m AppMode) String() string {
	switch m {
	case ModeInsert:
		return "INSERT"
	case ModeNormal:
		return "NORMAL"
	case ModeModal:
		return "MODAL"
	default:
		return "UNKNOWN"
	}
}

// ScanMsg triggers a scan of the URL currently in the input.
type ScanMsg struct{}

// ScanDoneMsg is emitted when the classification request returns.
type ScanDoneMsg struct {
	URL    string
	Result string
	Err    error
}

// ClearHistoryMsg asks for the recent-scan list to be emptied.
type ClearHistoryMsg struct{}

// CopyURLMsg copies the selected history URL to the clipboard.
type CopyURLMsg struct{}

// ShowHelpMsg toggles the help overlay.
type ShowHelpMsg struct{}

// SetModeMsg changes the app mode.
type SetModeMsg struct {
	Mode AppMode
}

// StatusMsg sets a temporary status bar message.
type StatusMsg struct {
	Text     string
	Duration time.Duration
}

// ToastMsg shows a toast notification.
type ToastMsg struct {
	Text     string
	IsError  bool
	Duration time.Duration
}

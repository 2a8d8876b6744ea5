package layout

// ScreenLayout holds calculated dimensions for the scanner screen.
type ScreenLayout struct {
	Width  int
	Height int

	ScanWidth      int
	DashboardWidth int

	ContentHeight int // height minus header and status bar

	DashboardVisible bool
	Compact          bool
}

const (
	headerHeight      = 1
	statusBarHeight   = 1
	dashboardMinWidth = 100
	compactMaxWidth   = 60
	minDashboardWidth = 30
	maxDashboardWidth = 50
)

// Calculate computes the screen layout from terminal dimensions. The
// dashboard mirror is only laid out when the terminal is wide enough and
// the user has not hidden it.
func Calculate(width, height int, dashboard bool) ScreenLayout {
	l := ScreenLayout{
		Width:         width,
		Height:        height,
		ContentHeight: height - headerHeight - statusBarHeight,
		ScanWidth:     width,
	}

	if l.ContentHeight < 1 {
		l.ContentHeight = 1
	}

	switch {
	case width < compactMaxWidth:
		l.Compact = true
	case width >= dashboardMinWidth && dashboard:
		l.DashboardVisible = true
		l.DashboardWidth = clamp(width/3, minDashboardWidth, maxDashboardWidth)
		l.ScanWidth = width - l.DashboardWidth
	}

	return l
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

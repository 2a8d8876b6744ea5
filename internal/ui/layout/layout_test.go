package layout

import "testing"

func TestCalculate_WideScreen(t *testing.T) {
	l := Calculate(160, 40, true)

	if l.Compact {
		t.Error("should not be compact at 160 cols")
	}
	if !l.DashboardVisible {
		t.Fatal("dashboard should be visible at 160 cols")
	}
	if l.DashboardWidth < minDashboardWidth || l.DashboardWidth > maxDashboardWidth {
		t.Errorf("dashboard width out of range: %d", l.DashboardWidth)
	}
	if l.ScanWidth+l.DashboardWidth != 160 {
		t.Errorf("widths should sum to 160, got %d", l.ScanWidth+l.DashboardWidth)
	}
	if l.ContentHeight != 38 {
		t.Errorf("ContentHeight = %d, want 38", l.ContentHeight)
	}
}

func TestCalculate_MediumScreen(t *testing.T) {
	l := Calculate(80, 30, true)

	if l.Compact {
		t.Error("should not be compact at 80 cols")
	}
	if l.DashboardVisible {
		t.Error("dashboard should be hidden below the breakpoint")
	}
	if l.ScanWidth != 80 {
		t.Errorf("ScanWidth = %d, want 80", l.ScanWidth)
	}
}

func TestCalculate_NarrowScreen(t *testing.T) {
	l := Calculate(50, 20, true)

	if !l.Compact {
		t.Error("should be compact at 50 cols")
	}
	if l.DashboardVisible {
		t.Error("dashboard should be hidden when compact")
	}
}

func TestCalculate_DashboardHidden(t *testing.T) {
	l := Calculate(160, 40, false)

	if l.DashboardVisible || l.DashboardWidth != 0 {
		t.Errorf("dashboard should be hidden, got %+v", l)
	}
	if l.ScanWidth != 160 {
		t.Errorf("ScanWidth = %d, want full width", l.ScanWidth)
	}
}

func TestCalculate_TinyHeight(t *testing.T) {
	l := Calculate(80, 1, true)
	if l.ContentHeight != 1 {
		t.Errorf("ContentHeight = %d, want clamped to 1", l.ContentHeight)
	}
}

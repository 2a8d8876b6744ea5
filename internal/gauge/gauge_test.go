package gauge

import "testing"

func TestForResult(t *testing.T) {
	tests := []struct {
		result string
		want   State
	}{
		{"phishing", Danger},
		{"legitimate", Safe},
		{"error", Unknown},
		{"", Unknown},
		{"Phishing", Unknown},
		{"suspicious", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.result, func(t *testing.T) {
			if got := ForResult(tt.result); got != tt.want {
				t.Errorf("ForResult(%q) = %+v, want %+v", tt.result, got, tt.want)
			}
		})
	}
}

func TestDangerState(t *testing.T) {
	if Danger.Symbol != "⚠" {
		t.Errorf("Danger.Symbol = %q", Danger.Symbol)
	}
	if Danger.Class != ClassDanger {
		t.Errorf("Danger.Class = %q", Danger.Class)
	}
	if Danger.StatusText() != "Status: PHISHING ⚠️" {
		t.Errorf("StatusText() = %q", Danger.StatusText())
	}
}

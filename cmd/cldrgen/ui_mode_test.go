package main

import "testing"

func TestReadUIMode(t *testing.T) {
	tests := []struct {
		in      string
		want    uiMode
		wantErr bool
	}{
		{"", uiModeAuto, false},
		{"auto", uiModeAuto, false},
		{"on", uiModeOn, false},
		{"off", uiModeOff, false},
		{"  On ", uiModeOn, false},
		{"tui", "", true},
	}
	for _, tt := range tests {
		got, err := readUIMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("readUIMode(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("readUIMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestShouldUseTUIExplicitModes(t *testing.T) {
	if !shouldUseTUI(uiModeOn) {
		t.Error("on should force the TUI")
	}
	if shouldUseTUI(uiModeOff) {
		t.Error("off should disable the TUI")
	}
}

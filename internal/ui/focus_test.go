package ui

import "testing"

func TestFocusManager_Rotation(t *testing.T) {
	var changes []string
	f := &FocusManager{
		Order:    []string{"identifier", "password"},
		OnChange: func(from, to string) { changes = append(changes, from+">"+to) },
	}

	tests := []struct {
		step func() string
		want string
	}{
		{f.Next, "identifier"},
		{f.Next, "password"},
		{f.Next, "identifier"},
		{f.Prev, "password"},
	}
	for i, tt := range tests {
		if got := tt.step(); got != tt.want {
			t.Errorf("step %d: got %q, want %q", i, got, tt.want)
		}
	}
	if len(changes) != 4 || changes[0] != ">identifier" {
		t.Errorf("unexpected changes %v", changes)
	}
}

func TestFocusManager_Blur(t *testing.T) {
	f := &FocusManager{Order: []string{"a", "b"}}
	if !f.SetFocus("b") || !f.Focused() {
		t.Fatal("expected b focused")
	}
	f.Blur()
	if f.Focused() {
		t.Error("expected no focus after Blur")
	}
	if f.Prev() != "b" {
		t.Error("Prev with nothing focused should wrap to the last input")
	}
	if f.SetFocus("missing") {
		t.Error("unknown ID must not take focus")
	}
}

func TestFocusManager_Empty(t *testing.T) {
	f := &FocusManager{}
	if f.Next() != "" || f.Prev() != "" {
		t.Error("empty order must not focus anything")
	}
}

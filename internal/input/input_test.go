package input

import "testing"

func TestKeyNamesRoundTrip(t *testing.T) {
	for k := KeyUnknown; k < keyCount; k++ {
		name := k.String()
		if name == "" {
			t.Fatalf("key %d has no name", int(k))
		}
		got, ok := KeyByName(name)
		if !ok || got != k {
			t.Fatalf("KeyByName(%q): expected %d, got %d %v", name, int(k), int(got), ok)
		}
	}
	if s := Key(-1).String(); s != "Key(-1)" {
		t.Fatalf("expected Key(-1), got %q", s)
	}
	if _, ok := KeyByName("NoSuchKey"); ok {
		t.Fatalf("expected unknown name to fail")
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		in   Input
		want string
	}{
		{PressOf(KeyEscape), "button Press Escape"},
		{ReleaseOf(MouseLeft), "button Release MouseLeft"},
		{Move{Motion: MouseRelative{DX: 1.5, DY: -2}}, "move relative 1.5,-2"},
		{Move{Motion: MouseCursor{X: 100, Y: 50}}, "move cursor 100,50"},
		{Text("é"), `text "é"`},
		{Resize{Width: 800, Height: 600}, "resize 800x600"},
		{Cursor{Entered: true}, "cursor entered"},
		{Cursor{}, "cursor left"},
		{Close{}, "close"},
		{nil, "<nil>"},
	}
	for _, tt := range tests {
		if got := Describe(tt.in); got != tt.want {
			t.Fatalf("Describe(%#v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestPressOfHasNoScancode(t *testing.T) {
	b := PressOf(MouseRight)
	if b.State != Press || b.Button != MouseRight || b.Scancode != nil {
		t.Fatalf("unexpected press %+v", b)
	}
}

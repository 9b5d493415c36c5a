package ui

import "testing"

func TestCards_Hover(t *testing.T) {
	c := NewCards([]string{"a", "b", "c"}, 0.1)
	if c.Hover() != -1 {
		t.Fatalf("initial hover = %d, want -1", c.Hover())
	}

	if !c.MoveHover(1) || c.Hover() != 0 {
		t.Errorf("first move should land on the first card, got %d", c.Hover())
	}
	c.MoveHover(5)
	if c.Hover() != 2 {
		t.Errorf("hover should clamp at the end, got %d", c.Hover())
	}
	if c.MoveHover(1) {
		t.Error("clamped move should report no change")
	}
	if c.SetHover(7) || c.Hover() != 2 {
		t.Error("out of range hover must be ignored")
	}
	if !c.SetHover(-1) || c.Hover() != -1 {
		t.Error("-1 should clear hover")
	}

	empty := NewCards[string](nil, 0.1)
	if empty.MoveHover(1) {
		t.Error("no cards, nothing to hover")
	}
}

func TestCards_HitTest(t *testing.T) {
	c := NewCards([]string{"a", "b"}, 0.1)
	c.SetRect(0, Rect{X: 0, Y: 0, W: 10, H: 3})
	c.SetRect(1, Rect{X: 12, Y: 0, W: 10, H: 3})

	tests := []struct {
		x, y, want int
	}{
		{0, 0, 0},
		{9, 2, 0},
		{10, 1, -1},
		{12, 1, 1},
		{5, 3, -1},
	}
	for _, tt := range tests {
		if got := c.HitTest(tt.x, tt.y); got != tt.want {
			t.Errorf("HitTest(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCards_RevealLatchesAndAnimates(t *testing.T) {
	c := NewCards([]string{"near", "far"}, 0.1)
	c.SetRect(0, Rect{Y: 0, W: 10, H: 5})
	c.SetRect(1, Rect{Y: 100, W: 10, H: 5})

	if !c.Observe(0, 0, 20) {
		t.Fatal("first card is in view and should fire")
	}
	if !c.Revealed(0) || c.Revealed(1) {
		t.Fatalf("revealed = %v %v, want true false", c.Revealed(0), c.Revealed(1))
	}
	if !c.Moving() {
		t.Error("entrance should be running")
	}

	for i := 0; i < 1000 && c.Step(); i++ {
	}
	if c.Progress(0) != 1 {
		t.Errorf("entrance should settle at 1, got %v", c.Progress(0))
	}
	if c.Progress(1) != 0 {
		t.Errorf("unseen card should stay hidden, got %v", c.Progress(1))
	}

	// Scrolled away: the latch holds.
	if c.Observe(0, 500, 20) {
		t.Error("nothing new should fire")
	}
	if !c.Revealed(0) {
		t.Error("latch must stay true")
	}
}

func TestCards_Loaded(t *testing.T) {
	c := NewCards([]string{"a"}, 0.1)
	c.SetLoaded(0, true)
	c.SetLoaded(4, true)
	if !c.Loaded(0) || c.Loaded(4) || c.Loaded(-1) {
		t.Error("unexpected loaded flags")
	}
}

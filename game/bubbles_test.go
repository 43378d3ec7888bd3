package game

import (
	"testing"
	"time"

	"pinball-lottery/physics"
)

func TestBubbleBoardAdd(t *testing.T) {
	board := NewBubbleBoard(1400*time.Millisecond, fixedRand(0))
	b := board.Add("Alice", physics.Vec{X: 100, Y: 100}, epoch)

	if b.Text != "Alice: "+BubbleMessages[0] {
		t.Errorf("text = %q", b.Text)
	}
	if b.Position != (physics.Vec{X: 70, Y: 72}) {
		t.Errorf("position = %v", b.Position)
	}
	if !b.Expires.Equal(epoch.Add(1400 * time.Millisecond)) {
		t.Errorf("expires = %v", b.Expires)
	}

	last := NewBubbleBoard(time.Second, fixedRand(0.999)).Add("Bob", physics.Vec{}, epoch)
	if last.Text != "Bob: "+BubbleMessages[len(BubbleMessages)-1] {
		t.Errorf("text = %q", last.Text)
	}
}

func TestBubbleBoardPrune(t *testing.T) {
	board := NewBubbleBoard(time.Second, fixedRand(0))
	board.Add("Alice", physics.Vec{}, epoch)
	board.Add("Bob", physics.Vec{}, epoch.Add(500*time.Millisecond))

	board.Prune(epoch.Add(999 * time.Millisecond))
	if board.Len() != 2 {
		t.Fatalf("len = %d before expiry", board.Len())
	}
	board.Prune(epoch.Add(time.Second))
	active := board.Active()
	if len(active) != 1 || active[0].Text[:3] != "Bob" {
		t.Errorf("active = %+v", active)
	}
	board.Reset()
	if board.Len() != 0 {
		t.Error("bubbles survived Reset")
	}
}

func TestBubbleBoardDropsOldest(t *testing.T) {
	board := NewBubbleBoard(time.Minute, fixedRand(0))
	for i := 0; i <= maxBubbles; i++ {
		board.Add(string(rune('A'+i%26)), physics.Vec{X: float64(i)}, epoch)
	}
	active := board.Active()
	if len(active) != maxBubbles {
		t.Fatalf("len = %d, want %d", len(active), maxBubbles)
	}
	if active[0].Position.X != 1+bubbleOffset.X {
		t.Errorf("oldest bubble not dropped, first at %v", active[0].Position)
	}
}

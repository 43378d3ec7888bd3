package game

import (
	"time"

	"pinball-lottery/physics"
)

// maxBubbles bounds the number of speech bubbles on screen
const maxBubbles = 64

// bubbleOffset places the bubble above and left of the mover
var bubbleOffset = physics.Vec{X: -30, Y: -28}

// BubbleMessages are the lines movers shout
var BubbleMessages = []string{
	"Wahaha!",
	"Oopsie-la-la",
	"Happy happy",
	"Long live the gallery",
	"Zzz...",
}

// Bubble is a short-lived speech bubble
type Bubble struct {
	Text     string
	Position physics.Vec
	Expires  time.Time
}

// BubbleBoard holds live speech bubbles
type BubbleBoard struct {
	bubbles  []Bubble
	duration time.Duration
	rng      Random
}

// NewBubbleBoard creates an empty board
func NewBubbleBoard(duration time.Duration, rng Random) *BubbleBoard {
	return &BubbleBoard{
		bubbles:  make([]Bubble, 0, maxBubbles),
		duration: duration,
		rng:      rng,
	}
}

// Add shows a random message for label near pos. The oldest bubble is
// dropped when the board is full.
func (b *BubbleBoard) Add(label string, pos physics.Vec, now time.Time) Bubble {
	msg := BubbleMessages[int(b.rng.Float64()*float64(len(BubbleMessages)))%len(BubbleMessages)]
	bubble := Bubble{
		Text:     label + ": " + msg,
		Position: pos.Add(bubbleOffset),
		Expires:  now.Add(b.duration),
	}
	if len(b.bubbles) == maxBubbles {
		copy(b.bubbles, b.bubbles[1:])
		b.bubbles = b.bubbles[:maxBubbles-1]
	}
	b.bubbles = append(b.bubbles, bubble)
	return bubble
}

// Prune removes bubbles that expired at or before now
func (b *BubbleBoard) Prune(now time.Time) {
	kept := b.bubbles[:0]
	for _, bubble := range b.bubbles {
		if now.Before(bubble.Expires) {
			kept = append(kept, bubble)
		}
	}
	for i := len(kept); i < len(b.bubbles); i++ {
		b.bubbles[i] = Bubble{}
	}
	b.bubbles = kept
}

// Active returns a copy of the live bubbles, oldest first
func (b *BubbleBoard) Active() []Bubble {
	out := make([]Bubble, len(b.bubbles))
	copy(out, b.bubbles)
	return out
}

// Len returns the number of live bubbles
func (b *BubbleBoard) Len() int {
	return len(b.bubbles)
}

// Reset drops every bubble
func (b *BubbleBoard) Reset() {
	for i := range b.bubbles {
		b.bubbles[i] = Bubble{}
	}
	b.bubbles = b.bubbles[:0]
}

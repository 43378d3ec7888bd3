package ui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxInputRunes bounds the entrant text box
const maxInputRunes = 4096

// TextInput is the entrant name box. Enter inserts a line break,
// Ctrl+Enter submits. While disabled it ignores typing.
type TextInput struct {
	runes   []rune
	enabled bool

	// scratch buffer for ebiten.AppendInputChars
	chars []rune
}

// NewTextInput creates an empty, enabled text box
func NewTextInput() *TextInput {
	return &TextInput{
		runes:   make([]rune, 0, 256),
		enabled: true,
		chars:   make([]rune, 0, 16),
	}
}

// Update polls the keyboard and returns true when the user asked to start
func (t *TextInput) Update() bool {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	enter := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
	if enter && ctrl {
		return true
	}
	if !t.enabled {
		return false
	}

	t.chars = ebiten.AppendInputChars(t.chars[:0])
	t.Insert(t.chars...)

	if enter {
		t.Insert('\n')
	}
	if repeating(ebiten.KeyBackspace) {
		t.Backspace()
	}
	return false
}

// repeating reports a key press with auto-repeat after a short hold
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= 30 && d%4 == 0)
}

// Insert appends runes, dropping control characters other than newline
func (t *TextInput) Insert(rs ...rune) {
	if !t.enabled {
		return
	}
	for _, r := range rs {
		if len(t.runes) >= maxInputRunes {
			return
		}
		if r < 0x20 && r != '\n' {
			continue
		}
		t.runes = append(t.runes, r)
	}
}

// Backspace removes the last rune
func (t *TextInput) Backspace() {
	if !t.enabled || len(t.runes) == 0 {
		return
	}
	t.runes = t.runes[:len(t.runes)-1]
}

// SetText replaces the contents
func (t *TextInput) SetText(s string) {
	t.runes = append(t.runes[:0], []rune(s)...)
	if len(t.runes) > maxInputRunes {
		t.runes = t.runes[:maxInputRunes]
	}
}

// Text returns the contents
func (t *TextInput) Text() string {
	return string(t.runes)
}

// Lines returns the contents split into display lines
func (t *TextInput) Lines() []string {
	return strings.Split(string(t.runes), "\n")
}

// SetEnabled toggles editing
func (t *TextInput) SetEnabled(enabled bool) {
	t.enabled = enabled
}

// Enabled reports whether editing is allowed
func (t *TextInput) Enabled() bool {
	return t.enabled
}

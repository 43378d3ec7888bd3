package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"pinball-lottery/physics"
)

const sampleRate = beep.SampleRate(44100)

// minToneGap keeps peg storms from flooding the mixer
const minToneGap = 40 * time.Millisecond

// tonePlayer beeps on pegs and wins. It implements game.Feedback.
type tonePlayer struct {
	enabled bool
	last    time.Time
}

func newTonePlayer(enabled bool) *tonePlayer {
	p := &tonePlayer{}
	if !enabled {
		return p
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		logger.Printf("audio disabled: %v", err)
		return p
	}
	p.enabled = true
	return p
}

func (p *tonePlayer) play(freq float64, d time.Duration, force bool) {
	if !p.enabled {
		return
	}
	now := time.Now()
	if !force && now.Sub(p.last) < minToneGap {
		return
	}
	p.last = now

	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (p *tonePlayer) Burst(physics.Vec)          { p.play(660, 30*time.Millisecond, false) }
func (p *tonePlayer) Spark(physics.Vec)          { p.play(440, 20*time.Millisecond, false) }
func (p *tonePlayer) Bubble(string, physics.Vec) {}

func (p *tonePlayer) Celebrate(physics.Vec) {
	p.play(880, 350*time.Millisecond, true)
}

func (p *tonePlayer) Close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}

package game

import (
	"io"
	"log"
	"testing"
	"time"

	"pinball-lottery/physics"
	"pinball-lottery/physics/physicstest"
)

// seqRand replays a fixed sequence of values, repeating the last one
type seqRand struct {
	values []float64
	next   int
}

func (r *seqRand) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[min(r.next, len(r.values)-1)]
	r.next++
	return v
}

func fixedRand(v float64) *seqRand {
	return &seqRand{values: []float64{v}}
}

// recorder counts decorative triggers
type recorder struct {
	bursts, sparks, celebrations int
	bubbles                      []string
	lastSpark                    physics.Vec
	lastBubble                   physics.Vec
}

func (r *recorder) Burst(physics.Vec) { r.bursts++ }

func (r *recorder) Spark(pos physics.Vec) {
	r.sparks++
	r.lastSpark = pos
}

func (r *recorder) Bubble(label string, pos physics.Vec) {
	r.bubbles = append(r.bubbles, label)
	r.lastBubble = pos
}

func (r *recorder) Celebrate(physics.Vec) { r.celebrations++ }

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func addMover(w *physicstest.World, label string, pos, vel physics.Vec) physics.BodyID {
	return w.Add(physics.BodyDef{Tag: label, Shape: physics.ShapeCircle, Radius: 7, Position: pos, Velocity: vel})[0]
}

func addZone(w *physicstest.World, kind ZoneKind, pos physics.Vec) physics.BodyID {
	cfg := GetZoneConfig(kind)
	return w.Add(physics.BodyDef{Tag: cfg.Tag, Static: true, Sensor: cfg.Sensor, Position: pos})[0]
}

func mustBody(t *testing.T, w physics.World, id physics.BodyID) physics.BodyState {
	t.Helper()
	s, ok := w.Body(id)
	if !ok {
		t.Fatalf("body %d not found", id)
	}
	return s
}

func closeTo(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

var epoch = time.Unix(1000, 0)

package physics

import (
	"testing"
	"time"
)

const testStep = time.Second / 120

func newTestWorld(t *testing.T) *ChipmunkWorld {
	t.Helper()
	w, err := NewChipmunkWorld(WorldOptions{Gravity: Vec{Y: 250}, Iterations: 12})
	if err != nil {
		t.Fatalf("NewChipmunkWorld: %v", err)
	}
	return w
}

func TestNewChipmunkWorldRejectsBadOptions(t *testing.T) {
	if _, err := NewChipmunkWorld(WorldOptions{Iterations: 0}); err == nil {
		t.Error("zero iterations accepted")
	}
	if _, err := NewChipmunkWorld(WorldOptions{Iterations: 4, Damping: 2}); err == nil {
		t.Error("damping above 1 accepted")
	}
}

func TestChipmunkGravityPullsDynamicBodies(t *testing.T) {
	w := newTestWorld(t)
	ids := w.Add(BodyDef{Tag: "ball", Shape: ShapeCircle, Position: Vec{X: 100, Y: 100}, Radius: 7})

	for i := 0; i < 60; i++ {
		w.Step(testStep)
	}

	s, ok := w.Body(ids[0])
	if !ok {
		t.Fatal("body missing")
	}
	if s.Position.Y <= 100 {
		t.Errorf("body did not fall: y = %.2f", s.Position.Y)
	}
	if s.Velocity.Y <= 0 {
		t.Errorf("velocity not downward: %.2f", s.Velocity.Y)
	}
}

func TestChipmunkReportsCollisionStartOnce(t *testing.T) {
	w := newTestWorld(t)
	ids := w.Add(
		BodyDef{Tag: "ball", Shape: ShapeCircle, Position: Vec{X: 100, Y: 50}, Radius: 7, Restitution: 0},
		BodyDef{Tag: "wall", Shape: ShapeRect, Position: Vec{X: 100, Y: 100}, Width: 200, Height: 20, Static: true},
	)
	ball, wall := ids[0], ids[1]

	var seen []CollisionPair
	w.OnCollisionStart(func(pairs []CollisionPair) {
		seen = append(seen, pairs...)
	})

	for i := 0; i < 240; i++ {
		w.Step(testStep)
	}

	if len(seen) == 0 {
		t.Fatal("no collision reported")
	}
	other, ok := seen[0].Other(ball)
	if !ok || other != wall {
		t.Errorf("first pair = %+v, want ball/wall", seen[0])
	}
	if len(seen[0].Contacts) == 0 {
		t.Error("solid contact reported without contact points")
	}
}

func TestChipmunkSensorsReportWithoutBlocking(t *testing.T) {
	w := newTestWorld(t)
	ids := w.Add(
		BodyDef{Tag: "ball", Shape: ShapeCircle, Position: Vec{X: 100, Y: 50}, Radius: 7},
		BodyDef{Tag: "accel", Shape: ShapeRect, Position: Vec{X: 100, Y: 100}, Width: 120, Height: 20, Static: true, Sensor: true},
	)

	hits := 0
	w.OnCollisionStart(func(pairs []CollisionPair) {
		for _, p := range pairs {
			if _, ok := p.Other(ids[1]); ok {
				hits++
			}
		}
	})

	for i := 0; i < 240; i++ {
		w.Step(testStep)
	}

	if hits != 1 {
		t.Errorf("sensor hits = %d, want 1", hits)
	}
	s, _ := w.Body(ids[0])
	if s.Position.Y < 150 {
		t.Errorf("ball blocked by sensor at y = %.2f", s.Position.Y)
	}
}

func TestChipmunkAfterUpdateFollowsCollisions(t *testing.T) {
	w := newTestWorld(t)
	w.Add(
		BodyDef{Tag: "ball", Shape: ShapeCircle, Position: Vec{X: 100, Y: 90}, Radius: 7},
		BodyDef{Tag: "wall", Shape: ShapeRect, Position: Vec{X: 100, Y: 100}, Width: 200, Height: 20, Static: true},
	)

	var events []string
	w.OnCollisionStart(func([]CollisionPair) { events = append(events, "collision") })
	w.OnAfterUpdate(func() { events = append(events, "after") })

	w.Step(testStep)

	if len(events) != 2 || events[0] != "collision" || events[1] != "after" {
		t.Errorf("events = %v, want [collision after]", events)
	}
}

func TestChipmunkSetters(t *testing.T) {
	w := newTestWorld(t)
	ids := w.Add(
		BodyDef{Tag: "ball", Shape: ShapeCircle, Position: Vec{X: 10, Y: 10}, Radius: 7},
		BodyDef{Tag: "circle", Shape: ShapeCircle, Position: Vec{X: 50, Y: 50}, Radius: 8, Static: true},
	)

	if !w.SetVelocity(ids[0], Vec{X: 3, Y: -4}) {
		t.Fatal("SetVelocity failed on dynamic body")
	}
	if !w.SetPosition(ids[0], Vec{X: 200, Y: 300}) {
		t.Fatal("SetPosition failed on dynamic body")
	}
	s, _ := w.Body(ids[0])
	if s.Velocity != (Vec{X: 3, Y: -4}) || s.Position != (Vec{X: 200, Y: 300}) {
		t.Errorf("state = %+v", s)
	}

	if w.SetVelocity(ids[1], Vec{X: 1}) {
		t.Error("SetVelocity succeeded on static body")
	}
	if w.SetVelocity(InvalidBodyID, Vec{}) {
		t.Error("SetVelocity succeeded on unknown body")
	}

	w.Remove(ids[1], InvalidBodyID)
	if w.BodyCount() != 1 {
		t.Errorf("BodyCount = %d, want 1", w.BodyCount())
	}
	if _, ok := w.Body(ids[1]); ok {
		t.Error("removed body still visible")
	}
}

func TestChipmunkCloseStopsCallbacks(t *testing.T) {
	w := newTestWorld(t)
	w.Add(BodyDef{Tag: "ball", Shape: ShapeCircle, Position: Vec{X: 10, Y: 10}, Radius: 7})

	calls := 0
	w.OnAfterUpdate(func() { calls++ })
	w.Step(testStep)

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	w.Step(testStep)
	if calls != 1 {
		t.Errorf("after-update calls = %d, want 1", calls)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

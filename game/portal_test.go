package game

import (
	"testing"
	"time"

	"pinball-lottery/physics"
	"pinball-lottery/physics/physicstest"
)

func newPortalFixture() (*physicstest.World, *PortalManager, physics.BodyID, physics.BodyID) {
	w := physicstest.NewWorld(physics.WorldOptions{})
	a := addZone(w, ZonePortalNode, physics.Vec{X: 10, Y: 10})
	b := addZone(w, ZonePortalNode, physics.Vec{X: 200, Y: 300})
	pm := NewPortalManager(w, 600*time.Millisecond, 0.6)
	pm.AddPair(a, b)
	return w, pm, a, b
}

func TestPortalTeleportRelocatesAndDamps(t *testing.T) {
	w, pm, a, b := newPortalFixture()
	m := addMover(w, "Alice", physics.Vec{X: 10, Y: 10}, physics.Vec{X: 100, Y: -50})

	if !pm.TryTeleport(m, a, epoch) {
		t.Fatal("first teleport declined")
	}
	s := mustBody(t, w, m)
	if s.Position != mustBody(t, w, b).Position {
		t.Errorf("mover at %v, want partner node", s.Position)
	}
	if !closeTo(s.Velocity.X, 60) || !closeTo(s.Velocity.Y, -30) {
		t.Errorf("velocity = %v, want (60, -30)", s.Velocity)
	}
	if last, ok := pm.LastTeleport(m); !ok || !last.Equal(epoch) {
		t.Errorf("last teleport = %v, %v", last, ok)
	}
}

func TestPortalCooldown(t *testing.T) {
	w, pm, a, b := newPortalFixture()
	m := addMover(w, "Alice", physics.Vec{X: 10, Y: 10}, physics.Vec{X: 10})

	if !pm.TryTeleport(m, a, epoch) {
		t.Fatal("first teleport declined")
	}
	// Arriving on the partner node inside the cooldown does nothing
	if pm.TryTeleport(m, b, epoch.Add(599*time.Millisecond)) {
		t.Fatal("teleport inside cooldown accepted")
	}
	if s := mustBody(t, w, m); s.Position != (physics.Vec{X: 200, Y: 300}) {
		t.Errorf("declined teleport moved mover to %v", s.Position)
	}
	if !pm.TryTeleport(m, b, epoch.Add(600*time.Millisecond)) {
		t.Fatal("teleport at cooldown boundary declined")
	}
	if s := mustBody(t, w, m); s.Position != (physics.Vec{X: 10, Y: 10}) {
		t.Errorf("mover at %v after return trip", s.Position)
	}
	if pm.Teleports() != 2 {
		t.Errorf("teleports = %d, want 2", pm.Teleports())
	}
}

func TestPortalCooldownIsPerMover(t *testing.T) {
	w, pm, a, _ := newPortalFixture()
	m1 := addMover(w, "Alice", physics.Vec{}, physics.Vec{})
	m2 := addMover(w, "Bob", physics.Vec{}, physics.Vec{})

	if !pm.TryTeleport(m1, a, epoch) || !pm.TryTeleport(m2, a, epoch) {
		t.Fatal("independent movers should both teleport")
	}
}

func TestPortalDeclinesUnpairedNode(t *testing.T) {
	w, pm, _, _ := newPortalFixture()
	lone := addZone(w, ZonePortalNode, physics.Vec{X: 50, Y: 50})
	m := addMover(w, "Alice", physics.Vec{}, physics.Vec{})

	if pm.IsNode(lone) {
		t.Fatal("unpaired node reported as paired")
	}
	if pm.TryTeleport(m, lone, epoch) {
		t.Error("teleport through unpaired node accepted")
	}
	if _, ok := pm.LastTeleport(m); ok {
		t.Error("declined teleport recorded a cooldown")
	}
}

func TestPortalReset(t *testing.T) {
	w, pm, a, b := newPortalFixture()
	m := addMover(w, "Alice", physics.Vec{}, physics.Vec{})

	pm.TryTeleport(m, a, epoch)
	pm.Reset()
	if !pm.TryTeleport(m, b, epoch) {
		t.Error("cooldown survived Reset")
	}
}

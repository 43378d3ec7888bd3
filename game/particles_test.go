package game

import (
	"testing"

	"pinball-lottery/physics"
)

func TestParticleSystemCap(t *testing.T) {
	cfg := DefaultConfig()
	ps := NewParticleSystem(cfg, fixedRand(0.5))

	if n := ps.Emit(physics.Vec{}, 400); n != cfg.MaxParticles {
		t.Fatalf("emitted %d, want %d", n, cfg.MaxParticles)
	}
	if n := ps.Emit(physics.Vec{}, 1); n != 0 {
		t.Errorf("emitted %d into a full system", n)
	}
	if ps.Len() != ps.Cap() {
		t.Errorf("len = %d, cap = %d", ps.Len(), ps.Cap())
	}
}

func TestParticleSystemExpiresOldestFirst(t *testing.T) {
	cfg := DefaultConfig()
	ps := NewParticleSystem(cfg, fixedRand(0.5))

	ps.Emit(physics.Vec{}, 10)
	ps.Update(20)
	ps.Emit(physics.Vec{}, 5)
	ps.Update(30)

	if ps.Len() != 5 {
		t.Fatalf("len = %d, want the 5 newer particles", ps.Len())
	}
	for _, p := range ps.AppendTo(nil) {
		if p.Life != float64(cfg.ParticleLife)-30 {
			t.Errorf("survivor life = %v", p.Life)
		}
	}

	// Freed slots are reusable
	if n := ps.Emit(physics.Vec{}, cfg.MaxParticles); n != cfg.MaxParticles-5 {
		t.Errorf("refill emitted %d", n)
	}
}

func TestParticleMotion(t *testing.T) {
	cfg := DefaultConfig()
	ps := NewParticleSystem(cfg, fixedRand(0.5))
	ps.Emit(physics.Vec{}, 1)

	p := ps.AppendTo(nil)[0]
	if p.Vel.X != 0 || p.Vel.Y != -cfg.ParticleSpeed/2 {
		t.Fatalf("initial velocity = %v", p.Vel)
	}

	ps.Update(1)
	p = ps.AppendTo(nil)[0]
	if p.Pos.Y != -cfg.ParticleSpeed/2 {
		t.Errorf("position = %v", p.Pos)
	}
	wantVY := (-cfg.ParticleSpeed/2 + cfg.ParticleGravity) * cfg.ParticleDrag
	if !closeTo(p.Vel.Y, wantVY) {
		t.Errorf("vy = %v, want %v", p.Vel.Y, wantVY)
	}
	if !closeTo(p.Fade(), (float64(cfg.ParticleLife)-1)/float64(cfg.ParticleLife)) {
		t.Errorf("fade = %v", p.Fade())
	}
}

func TestParticleSystemReset(t *testing.T) {
	ps := NewParticleSystem(DefaultConfig(), fixedRand(0.5))
	ps.Emit(physics.Vec{}, 10)
	ps.Reset()
	if ps.Len() != 0 || len(ps.AppendTo(nil)) != 0 {
		t.Error("particles survived Reset")
	}
}

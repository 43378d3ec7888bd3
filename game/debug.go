package game

// DebugInfo is the snapshot shown by the debug overlay
type DebugInfo struct {
	State       State
	Tick        uint64
	Movers      int
	Alive       []string
	Particles   int
	ParticleCap int
	Bubbles     int
	Resolver    ResolverStats
	Crowded     int
}

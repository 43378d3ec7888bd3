package ui

// DebugState holds global debug flags that persist across game resets
type DebugState struct {
	ShowOverlay bool // Show tick, alive entrants, particle and collision counters
	ShowBodies  bool // Outline every body, including sensors, in plain wireframe
}

// Global debug state instance (persists across game resets)
var globalDebugState = &DebugState{
	ShowOverlay: false, // Default to off
}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}

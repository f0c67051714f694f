package game

// DebugState holds global debug flags that persist across new games
type DebugState struct {
	ShowIDs bool // Print each cell's "row-col" id over the light
}

// Global debug state instance (persists across new games)
var globalDebugState = &DebugState{
	ShowIDs: false,
}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}

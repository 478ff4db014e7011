package systems

// Tick phase IDs, in execution order.
const (
	PhaseMove    = "move"
	PhaseSpawn   = "spawn"
	PhaseAdvance = "advance"
	PhaseResolve = "resolve"
	PhasePurge   = "purge"
)

// SystemInfo describes a tick phase for UI display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string
}

// SystemRegistry holds metadata about the tick phases.
// This centralizes naming so the perf panel and perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all tick phases.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.Register(SystemInfo{ID: PhaseMove, Name: "Move", Description: "Applies player steering and clamps to the playfield"})
	reg.Register(SystemInfo{ID: PhaseSpawn, Name: "Spawn", Description: "Spawns enemies and bubbles"})
	reg.Register(SystemInfo{ID: PhaseAdvance, Name: "Advance", Description: "Moves enemies and bubbles, flags off-screen fish"})
	reg.Register(SystemInfo{ID: PhaseResolve, Name: "Resolve", Description: "Detects contacts and applies eat or death"})
	reg.Register(SystemInfo{ID: PhasePurge, Name: "Purge", Description: "Removes flagged fish from the world"})
	return reg
}

// Register adds a phase to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns phase info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a phase ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// IDs returns all phase IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}

// Package systems contains the per-tick simulation systems.
package systems

import (
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/bigfish/components"
)

// Pond stores the player and enemy fish in an ark world.
// Ark iteration order is not insertion order, so every ordered view sorts by fish ID.
type Pond struct {
	world  *ecs.World
	fishes *ecs.Map4[components.Position, components.Size, components.Motion, components.Fish]
	filter *ecs.Filter4[components.Position, components.Size, components.Motion, components.Fish]

	player    ecs.Entity
	hasPlayer bool
	nextID    uint32
}

// NewPond creates an empty pond backed by a fresh world.
func NewPond() *Pond {
	world := ecs.NewWorld()
	return &Pond{
		world:  world,
		fishes: ecs.NewMap4[components.Position, components.Size, components.Motion, components.Fish](world),
		filter: ecs.NewFilter4[components.Position, components.Size, components.Motion, components.Fish](world),
		nextID: 1,
	}
}

// Add inserts a fish and assigns it the next ID.
func (p *Pond) Add(pos components.Position, size components.Size, mot components.Motion, fish components.Fish) ecs.Entity {
	fish.ID = p.nextID
	p.nextID++
	e := p.fishes.NewEntity(&pos, &size, &mot, &fish)
	if fish.Role == components.RolePlayer {
		p.player = e
		p.hasPlayer = true
	}
	return e
}

// Get returns the components of an entity.
func (p *Pond) Get(e ecs.Entity) (*components.Position, *components.Size, *components.Motion, *components.Fish) {
	return p.fishes.Get(e)
}

// Alive reports whether the entity still exists.
func (p *Pond) Alive(e ecs.Entity) bool {
	return p.world.Alive(e)
}

// Player returns the player's components. Panics if no player was added.
func (p *Pond) Player() (*components.Position, *components.Size, *components.Motion, *components.Fish) {
	if !p.hasPlayer {
		panic("systems: pond has no player")
	}
	return p.fishes.Get(p.player)
}

// PlayerWidth returns the player's current width.
func (p *Pond) PlayerWidth() float64 {
	_, size, _, _ := p.Player()
	return size.W
}

// Enemies returns all live enemy entities ordered by fish ID.
func (p *Pond) Enemies() []ecs.Entity {
	type entry struct {
		e  ecs.Entity
		id uint32
	}
	var entries []entry

	query := p.filter.Query()
	for query.Next() {
		_, _, _, fish := query.Get()
		if fish.Role != components.RoleEnemy || fish.Removed {
			continue
		}
		entries = append(entries, entry{e: query.Entity(), id: fish.ID})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].id < entries[j].id })

	out := make([]ecs.Entity, len(entries))
	for i, en := range entries {
		out[i] = en.e
	}
	return out
}

// Counts returns the live enemy count and how many of them are wider than playerWidth.
func (p *Pond) Counts(playerWidth float64) (total, dangerous int) {
	query := p.filter.Query()
	for query.Next() {
		_, size, _, fish := query.Get()
		if fish.Role != components.RoleEnemy || fish.Removed {
			continue
		}
		total++
		if size.W > playerWidth {
			dangerous++
		}
	}
	return total, dangerous
}

// Purge removes every fish flagged as Removed and returns their IDs.
// Structural changes are not allowed while a query is open, so removal happens in a second pass.
func (p *Pond) Purge() []uint32 {
	var doomed []ecs.Entity
	var ids []uint32

	query := p.filter.Query()
	for query.Next() {
		_, _, _, fish := query.Get()
		if fish.Removed && fish.Role != components.RolePlayer {
			doomed = append(doomed, query.Entity())
			ids = append(ids, fish.ID)
		}
	}

	for _, e := range doomed {
		p.world.RemoveEntity(e)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// EnemyViews returns a copy of every live enemy ordered by ID.
func (p *Pond) EnemyViews() []components.FishEntity {
	enemies := p.Enemies()
	out := make([]components.FishEntity, 0, len(enemies))
	for _, e := range enemies {
		pos, size, mot, fish := p.fishes.Get(e)
		out = append(out, components.View(*pos, *size, *mot, *fish))
	}
	return out
}

// PlayerView returns a copy of the player.
func (p *Pond) PlayerView() components.FishEntity {
	pos, size, mot, fish := p.Player()
	return components.View(*pos, *size, *mot, *fish)
}

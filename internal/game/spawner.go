package game

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	"github.com/stellar-explorer/stellar_explorer/internal/catalog"
)

// Spawner tracks the tick counters that pace star and hazard creation.
type Spawner struct {
	StarInterval   int
	HazardInterval int

	starTimer   int
	hazardTimer int
}

// NewSpawner creates a spawner with the given cadences (in ticks).
func NewSpawner(starInterval, hazardInterval int) Spawner {
	return Spawner{StarInterval: starInterval, HazardInterval: hazardInterval}
}

// Advance counts one tick and reports which spawns are due.
// A counter resets to zero once it passes its interval.
func (sp *Spawner) Advance() (star, hazard bool) {
	sp.starTimer++
	sp.hazardTimer++
	if sp.starTimer > sp.StarInterval {
		star = true
		sp.starTimer = 0
	}
	if sp.hazardTimer > sp.HazardInterval {
		hazard = true
		sp.hazardTimer = 0
	}
	return star, hazard
}

// tickSpawner runs the spawner for one tick.
func (s *Sim) tickSpawner() {
	star, hazard := s.Spawner.Advance()
	if star {
		s.SpawnStar()
	}
	if hazard {
		s.SpawnHazard()
	}
}

// SpawnStar creates a star of weighted-random kind at a random on-screen position.
func (s *Sim) SpawnStar() ecs.Entity {
	kind := catalog.StarKind(WeightedIndex(s.rng, s.starWeights))
	pos := s.randomPosition()
	vel := s.randomVelocity(s.Rules.StarSpeedMin, s.Rules.StarSpeedMax)
	return s.SpawnStarAt(kind, pos, vel)
}

// SpawnHazard creates a hazard of uniform-random kind at a random on-screen position.
func (s *Sim) SpawnHazard() ecs.Entity {
	kind := catalog.HazardKind(s.rng.IntN(int(catalog.HazardKindCount)))
	pos := s.randomPosition()
	vel := s.randomVelocity(s.Rules.HazardSpeedMin, s.Rules.HazardSpeedMax)
	return s.SpawnHazardAt(kind, pos, vel)
}

// SpawnStarAt creates a star with explicit parameters.
func (s *Sim) SpawnStarAt(kind catalog.StarKind, pos Position, vel Velocity) ecs.Entity {
	return s.starMapper.NewEntity(&pos, &vel, &Body{W: StarSize, H: StarSize}, &StarBody{Kind: kind})
}

// SpawnHazardAt creates a hazard with explicit parameters.
func (s *Sim) SpawnHazardAt(kind catalog.HazardKind, pos Position, vel Velocity) ecs.Entity {
	return s.hazardMapper.NewEntity(&pos, &vel, &Body{W: HazardSize, H: HazardSize}, &HazardBody{Kind: kind})
}

func (s *Sim) randomPosition() Position {
	return Position{
		X: s.rng.Float64() * s.Rules.ScreenW,
		Y: s.rng.Float64() * s.Rules.ScreenH,
	}
}

// randomVelocity picks a uniform direction and a speed in [lo, hi).
func (s *Sim) randomVelocity(lo, hi float64) Velocity {
	angle := s.rng.Float64() * 2 * math.Pi
	speed := lo + s.rng.Float64()*(hi-lo)
	return Velocity{VX: math.Cos(angle) * speed, VY: math.Sin(angle) * speed}
}

package game

import (
	"github.com/mlange-42/ark/ecs"
	"github.com/stellar-explorer/stellar_explorer/internal/catalog"
)

// Screen and sprite sizes in pixels.
const (
	ScreenWidth  = 1000
	ScreenHeight = 700

	PlayerSize = 50
	StarSize   = 20
	HazardSize = 25
)

// Tick intervals (at 60 TPS) and other gameplay defaults.
const (
	starSpawnInterval   = 60  // a star roughly every second
	hazardSpawnInterval = 300 // a hazard roughly every 5 seconds
	playerSpeed         = 5   // px per tick per pressed direction
	logSize             = 50
)

// Rules holds the tunable gameplay parameters.
type Rules struct {
	ScreenW, ScreenH float64
	PlayerSpeed      float64

	StarSpawnInterval   int
	HazardSpawnInterval int

	StarSpeedMin, StarSpeedMax     float64
	HazardSpeedMin, HazardSpeedMax float64

	// Per collected star, chance of unlocking a card from each deck.
	ConceptChance float64
	SpecialChance float64
}

// DefaultRules returns the rules the game ships with.
func DefaultRules() Rules {
	return Rules{
		ScreenW:             ScreenWidth,
		ScreenH:             ScreenHeight,
		PlayerSpeed:         playerSpeed,
		StarSpawnInterval:   starSpawnInterval,
		HazardSpawnInterval: hazardSpawnInterval,
		StarSpeedMin:        0.3,
		StarSpeedMax:        1.0,
		HazardSpeedMin:      0.2,
		HazardSpeedMax:      0.5,
		ConceptChance:       0.20,
		SpecialChance:       0.05,
	}
}

// Input is the set of direction keys held during a tick.
type Input struct {
	Left, Right, Up, Down bool
}

// Sim is the game simulation. It owns all gameplay state.
type Sim struct {
	ECS      *ecs.World
	Rules    Rules
	Cards    *catalog.Cards
	Progress *Progress
	HR       *HRDiagram
	Log      *MessageLog
	Popup    *Popup // nil when nothing is shown
	Spawner  Spawner
	Ticks    uint64

	rng         Rand
	starWeights []float64

	player       ecs.Entity
	posMap       *ecs.Map[Position]
	starMapper   *ecs.Map4[Position, Velocity, Body, StarBody]
	hazardMapper *ecs.Map4[Position, Velocity, Body, HazardBody]
	drifters     *ecs.Filter3[Position, Velocity, Body]
	stars        *ecs.Filter3[Position, Body, StarBody]
	hazards      *ecs.Filter3[Position, Body, HazardBody]
}

// NewSim creates a simulation with the player at the screen centre.
func NewSim(cards *catalog.Cards, rules Rules, rng Rand) *Sim {
	w := ecs.NewWorld(256)

	player := ecs.NewMap3[Position, Body, PlayerControlled](w).NewEntity(
		&Position{X: rules.ScreenW / 2, Y: rules.ScreenH / 2},
		&Body{W: PlayerSize, H: PlayerSize},
		&PlayerControlled{},
	)

	log := NewMessageLog(logSize)
	log.Add("Welcome, explorer. Collect stars, avoid hazards.", MsgInfo)

	return &Sim{
		ECS:          w,
		Rules:        rules,
		Cards:        cards,
		Progress:     NewProgress(),
		HR:           NewHRDiagram(),
		Log:          log,
		Spawner:      NewSpawner(rules.StarSpawnInterval, rules.HazardSpawnInterval),
		rng:          rng,
		starWeights:  catalog.StarWeights(),
		player:       player,
		posMap:       ecs.NewMap[Position](w),
		starMapper:   ecs.NewMap4[Position, Velocity, Body, StarBody](w),
		hazardMapper: ecs.NewMap4[Position, Velocity, Body, HazardBody](w),
		drifters:     ecs.NewFilter3[Position, Velocity, Body](w),
		stars:        ecs.NewFilter3[Position, Body, StarBody](w),
		hazards:      ecs.NewFilter3[Position, Body, HazardBody](w),
	}
}

// PlayerPos returns the player's centre.
func (s *Sim) PlayerPos() Position {
	return *s.posMap.Get(s.player)
}

// PlayerBounds returns the player's bounding box.
func (s *Sim) PlayerBounds() Rect {
	return BoundsOf(s.PlayerPos(), Body{W: PlayerSize, H: PlayerSize})
}

// PlacePlayer moves the player's centre to (x, y).
func (s *Sim) PlacePlayer(x, y float64) {
	pos := s.posMap.Get(s.player)
	pos.X = x
	pos.Y = y
}

// ResetPlayer returns the player to the screen centre.
func (s *Sim) ResetPlayer() {
	s.PlacePlayer(s.Rules.ScreenW/2, s.Rules.ScreenH/2)
}

// Tick advances the simulation by one step.
func (s *Sim) Tick(in Input) {
	s.Ticks++
	s.movePlayer(in)
	s.moveDrifters()
	s.tickSpawner()
	s.collectStars()
	s.checkHazards()
	if s.Popup != nil {
		s.Popup.Tick()
		if !s.Popup.Active() {
			s.Popup = nil
		}
	}
}

// movePlayer applies held keys. Diagonals are not normalised.
func (s *Sim) movePlayer(in Input) {
	pos := s.posMap.Get(s.player)
	if in.Left {
		pos.X -= s.Rules.PlayerSpeed
	}
	if in.Right {
		pos.X += s.Rules.PlayerSpeed
	}
	if in.Up {
		pos.Y -= s.Rules.PlayerSpeed
	}
	if in.Down {
		pos.Y += s.Rules.PlayerSpeed
	}

	// Keep the whole sprite on screen.
	half := float64(PlayerSize) / 2
	pos.X = clampFloat(pos.X, half, s.Rules.ScreenW-half)
	pos.Y = clampFloat(pos.Y, half, s.Rules.ScreenH-half)
}

// moveDrifters advances stars and hazards and removes any that left the screen.
func (s *Sim) moveDrifters() {
	var gone []ecs.Entity

	query := s.drifters.Query()
	for query.Next() {
		pos, vel, body := query.Get()
		pos.X += vel.VX
		pos.Y += vel.VY
		if BoundsOf(*pos, *body).OffScreen(s.Rules.ScreenW, s.Rules.ScreenH) {
			gone = append(gone, query.Entity())
		}
	}

	for _, e := range gone {
		s.ECS.RemoveEntity(e)
	}
}

// StarView is a read-only snapshot of a star for drawing.
type StarView struct {
	Pos  Position
	Body Body
	Kind catalog.StarKind
}

// HazardView is a read-only snapshot of a hazard for drawing.
type HazardView struct {
	Pos  Position
	Body Body
	Kind catalog.HazardKind
}

// Stars returns a snapshot of every live star.
func (s *Sim) Stars() []StarView {
	var out []StarView
	query := s.stars.Query()
	for query.Next() {
		pos, body, star := query.Get()
		out = append(out, StarView{Pos: *pos, Body: *body, Kind: star.Kind})
	}
	return out
}

// Hazards returns a snapshot of every live hazard.
func (s *Sim) Hazards() []HazardView {
	var out []HazardView
	query := s.hazards.Query()
	for query.Next() {
		pos, body, hz := query.Get()
		out = append(out, HazardView{Pos: *pos, Body: *body, Kind: hz.Kind})
	}
	return out
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

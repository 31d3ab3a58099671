package game

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"pacman/internal/config"
	"pacman/internal/entities"
	"pacman/internal/logging"
	tm "pacman/internal/tilemap"
)

type State int

const (
	Running State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Simulation owns every piece of mutable game state. It is driven one frame
// at a time through Step and is not safe for concurrent use.
type Simulation struct {
	cfg     config.Config
	log     *zap.Logger
	rng     *rand.Rand
	clock   Clock
	timers  *Scheduler
	tileMap *tm.TileMap
	walls   Resolver

	obstacles []entities.Obstacle
	player    *entities.Player
	ghosts    []*entities.Ghost
	pellets   []entities.Pellet
	powerUps  []entities.PowerUp

	score  int
	state  State
	frame  int
	events []Event
}

type Option func(*Simulation)

func WithLogger(l *zap.Logger) Option {
	return func(s *Simulation) { s.log = logging.OrNop(l) }
}

// WithClock replaces the default frame clock.
func WithClock(c Clock) Option {
	return func(s *Simulation) { s.clock = c }
}

// New builds a simulation from a validated configuration. The seed drives
// every random choice the ghosts make.
func New(cfg config.Config, seed int64, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m, err := cfg.TileMap()
	if err != nil {
		return nil, err
	}
	layout := m.Compile(cfg.PelletRadius, cfg.PowerUpRadius)

	s := &Simulation{
		cfg:       cfg,
		log:       logging.Nop(),
		rng:       rand.New(rand.NewSource(seed)),
		clock:     NewFrameClock(cfg.FrameDuration()),
		timers:    NewScheduler(),
		tileMap:   m,
		walls:     NewResolver(layout.Obstacles, 0),
		obstacles: layout.Obstacles,
		pellets:   layout.Pellets,
		powerUps:  layout.PowerUps,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.player = entities.NewPlayer(entities.Body{
		Position: m.Center(cfg.Player.Spawn),
		Radius:   cfg.Player.Radius,
	})
	for i, gc := range cfg.Ghosts {
		heading, err := config.ParseDirection(gc.Heading)
		if err != nil {
			return nil, err
		}
		g := &entities.Ghost{
			Body: entities.Body{
				Position: m.Center(gc.Spawn),
				Radius:   gc.Radius,
			},
			ID:    i,
			Color: gc.Color,
			Speed: gc.Speed,
		}
		g.Turn(heading)
		s.ghosts = append(s.ghosts, g)
	}

	s.log.Info("simulation ready",
		zap.Int64("seed", seed),
		zap.Int("obstacles", len(layout.Obstacles)),
		zap.Int("pellets", len(s.pellets)),
		zap.Int("powerUps", len(s.powerUps)),
		zap.Int("ghosts", len(s.ghosts)))
	return s, nil
}

// Step runs one frame. Once the game is over it does nothing and reports the
// final state again.
func (s *Simulation) Step(in Input) Frame {
	if s.state != Running {
		return s.frameResult()
	}
	s.frame++
	s.events = nil
	s.timers.RunDue(s.clock.Tick())

	s.steerPlayer(in)
	s.detect()
	if s.state == Running {
		s.playerWalls().HandleBoundaries(&s.player.Body)
		s.advance()
		for _, g := range s.ghosts {
			s.steerGhost(g)
		}
		s.player.Face()
		s.player.Chomp()
		s.checkWin()
	}
	return s.frameResult()
}

func (s *Simulation) frameResult() Frame {
	return Frame{Index: s.frame, Events: s.events, Score: s.score, State: s.state}
}

func (s *Simulation) State() State {
	return s.state
}

func (s *Simulation) Score() int {
	return s.score
}

func (s *Simulation) Config() config.Config {
	return s.cfg
}

func (s *Simulation) TileMap() *tm.TileMap {
	return s.tileMap
}

// finish moves the game into a terminal state. Only the first call has any
// effect.
func (s *Simulation) finish(state State, kind EventKind) {
	if s.state != Running {
		return
	}
	s.state = state
	s.emit(Event{Kind: kind, Position: s.player.Position})
	s.log.Info("game over",
		zap.Stringer("state", state),
		zap.Int("score", s.score),
		zap.Int("frame", s.frame))
}

func (s *Simulation) checkWin() {
	if len(s.pellets) == 0 {
		s.finish(Won, MazeCleared)
	}
}

func (s *Simulation) emit(e Event) {
	s.events = append(s.events, e)
}

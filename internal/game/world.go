// Package game implements the Flappy Bird rules: the bird, the pipes, the
// scrolling layers, the Inactive/Active state machine and frame
// composition. It knows nothing about the terminal; platforms feed it
// events once per tick and present the composed frame.
package game

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// State is the game state.
type State int

const (
	// Inactive is waiting for the first flap, or game over.
	Inactive State = iota
	// Active is playing.
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "inactive"
}

// Transition reports a state change made by a step.
type Transition int

const (
	NoTransition Transition = iota
	Started                 // Inactive to Active
	Ended                   // Active to Inactive
)

// StepResult is the outcome of one tick.
type StepResult struct {
	Quit       bool // quit requested; the world was not stepped
	Transition Transition
	Scored     int
}

// World is the whole game: the entities, the score and the high-score
// record. It is only touched from the tick loop.
type World struct {
	cfg     config.FlappyConfig
	sprites Sprites
	sounds  Sounds

	Bird       *Bird
	Pipes      *PipeManager
	Background *ScrollLayer
	Ground     *ScrollLayer
	timer      *SpawnTimer

	state  State
	score  int
	record storage.Record
}

// NewWorld creates an inactive world. seed drives pipe placement.
func NewWorld(cfg config.FlappyConfig, sprites Sprites, sounds Sounds, record storage.Record, seed int64) *World {
	sounds = sounds.withDefaults()
	pipeW, pipeH := worldSize(sprites.PipeBottom)

	return &World{
		cfg:        cfg,
		sprites:    sprites,
		sounds:     sounds,
		Bird:       NewBird(cfg, sprites.Bird, sounds.Wing),
		Pipes:      NewPipeManager(cfg, pipeW, pipeH, seed, sounds.Point),
		Background: NewScrollLayer(sprites.Background, 0, cfg.Layers.BackgroundDepth),
		Ground:     NewScrollLayer(sprites.Ground, cfg.GroundTop(), cfg.Layers.GroundDepth),
		timer:      NewSpawnTimer(cfg.SpawnTicks()),
		state:      Inactive,
		record:     record,
	}
}

// State returns the current state.
func (w *World) State() State {
	return w.state
}

// Score returns the score of the current or last game.
func (w *World) Score() int {
	return w.score
}

// Record returns the high-score record to persist.
func (w *World) Record() storage.Record {
	return w.record
}

// Advance runs one tick with the platform events collected since the last
// one. The spawn timer is polled first and keeps running while Inactive.
func (w *World) Advance(events []Event) StepResult {
	if w.timer.Tick() {
		events = append(events, Event{Kind: EventSpawnTimer})
	}
	frame := Dispatch(events)
	if frame.Has(core.ActionQuit) {
		return StepResult{Quit: true}
	}
	return w.Step(frame)
}

// Step applies the intents of one tick and, while Active, advances the
// physics: pipes scroll and are checked, the bird and layers move, and the
// bird is checked against the ground.
func (w *World) Step(in core.InputFrame) StepResult {
	var res StepResult

	if in.Has(core.ActionSpawn) && w.state == Active {
		w.Pipes.Spawn()
	}
	if in.Has(core.ActionFlap) {
		if w.state == Inactive {
			w.start()
			res.Transition = Started
		}
		w.Bird.Flap()
	}

	if w.state != Active {
		return res
	}

	hit, scored := w.Pipes.Tick(w.cfg.Physics.ScrollSpeed, w.Bird.Rect())
	w.score += scored
	res.Scored = scored
	if hit {
		w.end()
		res.Transition = Ended
	} else {
		w.Bird.Update()
		w.Background.Update(w.cfg.Physics.ScrollSpeed)
		w.Ground.Update(w.cfg.Physics.ScrollSpeed)
		if w.Bird.Rect().Bottom() >= w.Ground.Y {
			w.end()
			res.Transition = Ended
		}
	}

	w.record.Observe(w.score)
	return res
}

func (w *World) start() {
	w.Bird.Reset()
	w.Pipes.Clear()
	w.score = 0
	w.state = Active
}

func (w *World) end() {
	w.sounds.Hit.Play()
	w.state = Inactive
}

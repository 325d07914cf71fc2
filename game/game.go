// Package game wires the battle, deck and asset packages into an ebiten
// game made of swappable screens.
package game

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/tavernbrawl/assets"
	"github.com/plus3/tavernbrawl/battle"
	"github.com/plus3/tavernbrawl/config"
	"github.com/plus3/tavernbrawl/deck"
	"github.com/plus3/tavernbrawl/ecs"
	"github.com/plus3/tavernbrawl/ecs/debugui"
	debugui_ebiten "github.com/plus3/tavernbrawl/ecs/debugui/ebiten"
	"github.com/plus3/tavernbrawl/enemy"
)

// Options are the collaborators a Game is built from.
type Options struct {
	Config  config.Config
	Store   *deck.Store
	Assets  *assets.Loader
	Enemies *enemy.Factory
	Dice    battle.Dice
	Logger  *log.Logger

	// Overlay enables the Dear ImGui debug panels when set.
	Overlay *debugui_ebiten.ImguiBackend
}

// Game implements ebiten.Game. Exactly one screen is current; a screen
// change requested during a frame takes effect after the frame.
type Game struct {
	Storage *ecs.Storage

	cfg     config.Config
	screens map[ScreenID]*Screen
	current *Screen
	keys    *ecs.Singleton[Keys]
	router  *ecs.Singleton[Router]
	logger  *log.Logger

	overlay *debugui_ebiten.ImguiBackend
	debug   *ecs.Scheduler
	perf    *debugui.PerformanceStats
	timer   *debugui.FrameTimer
}

// New builds the game and enters the starting area.
func New(opts Options) (*Game, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	if opts.Enemies == nil {
		opts.Enemies = enemy.DefaultFactory()
	}
	if opts.Store == nil || opts.Assets == nil || opts.Dice == nil {
		return nil, errors.New("game needs a deck store, an asset loader and dice")
	}

	registry := ecs.NewComponentRegistry()
	registerComponents(registry)
	debugui.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	g := &Game{
		Storage: storage,
		cfg:     opts.Config,
		screens: make(map[ScreenID]*Screen),
		keys:    ecs.NewSingleton[Keys](storage),
		router:  ecs.NewSingleton[Router](storage, Router{Current: ScreenStart}),
		logger:  opts.Logger,
		overlay: opts.Overlay,
	}
	ecs.NewSingleton[Session](storage, Session{Deck: opts.Store.Load()})
	ecs.NewSingleton[BattleState](storage)
	ecs.NewSingleton[TavernState](storage)
	ecs.NewSingleton[Result](storage)
	ecs.NewSingleton[debugui.ImguiInputState](storage)

	r := &renderer{
		storage: storage,
		assets:  opts.Assets,
		width:   opts.Config.ScreenWidth,
		height:  opts.Config.ScreenHeight,
	}
	rules := opts.Config.Battle()

	g.addScreen(ScreenStart, nil, r.drawStart, &StartSystem{})
	g.addScreen(ScreenTavern,
		func() error {
			enterTavern(storage, opts.Store)
			return nil
		},
		r.drawTavern,
		&TavernSystem{Store: opts.Store, Logger: opts.Logger},
	)
	g.addScreen(ScreenBattle,
		func() error {
			var session *Session
			storage.ReadSingleton(&session)
			return enterBattle(storage, func() (*battle.Battle, error) {
				return battle.New(rules, session.Deck, opts.Enemies, opts.Dice)
			})
		},
		r.drawBattle,
		&CombatSystem{}, &OutcomeSystem{}, &PopupSystem{},
	)
	g.addScreen(ScreenResult, nil, r.drawResult, &ResultSystem{})

	if g.overlay != nil {
		g.debug = ecs.NewScheduler(storage)
		g.debug.Register(&debugui.ImguiSystem{})
		g.perf = debugui.NewPerformanceStats(120)
		g.timer = debugui.NewFrameTimer(nil)
		spawnDebugPanels(g)
	}

	if err := g.activate(ScreenStart); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) addScreen(id ScreenID, enter func() error, draw func(*ebiten.Image), systems ...ecs.System) {
	scheduler := ecs.NewScheduler(g.Storage)
	for _, system := range systems {
		scheduler.Register(system)
	}
	g.screens[id] = &Screen{ID: id, Scheduler: scheduler, Enter: enter, Draw: draw}
}

func (g *Game) activate(id ScreenID) error {
	screen, ok := g.screens[id]
	if !ok {
		return fmt.Errorf("no screen %s", id)
	}
	g.current = screen
	g.router.Get().Current = id

	if screen.Enter != nil {
		if err := screen.Enter(); err != nil {
			return fmt.Errorf("enter %s: %w", id, err)
		}
	}
	return nil
}

// Current returns the id of the current screen.
func (g *Game) Current() ScreenID {
	return g.current.ID
}

func (g *Game) Update() error {
	return g.Step(inpututil.AppendJustPressedKeys(nil), 1.0/float64(ebiten.TPS()))
}

// Step runs one frame of the current screen with the given key presses.
// It returns ebiten.Termination once the player quits.
func (g *Game) Step(pressed []ebiten.Key, dt float64) error {
	g.keys.Get().Pressed = pressed

	if g.overlay != nil {
		g.perf.Record(g.timer.Tick())
		g.overlay.BeginFrame()
	}
	g.current.Scheduler.Once(dt)
	if g.debug != nil {
		g.debug.Once(dt)
	}
	if g.overlay != nil {
		g.overlay.EndFrame()
	}

	router := g.router.Get()
	if router.Quit {
		return ebiten.Termination
	}
	if router.Current != g.current.ID {
		return g.activate(router.Current)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}

package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tavernbrawl/assets"
	"github.com/plus3/tavernbrawl/config"
	"github.com/plus3/tavernbrawl/deck"
	debugui_ebiten "github.com/plus3/tavernbrawl/ecs/debugui/ebiten"
	"github.com/plus3/tavernbrawl/enemy"
	"github.com/plus3/tavernbrawl/game"
)

const title = "Tavern Brawl"

func main() {
	logger := log.New(os.Stderr, "tavernbrawl: ", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	flag.StringVar(&cfg.SaveFile, "save", cfg.SaveFile, "Path of the saved deck.")
	flag.StringVar(&cfg.AssetsDir, "assets", cfg.AssetsDir, "Directory holding sprites and card artwork.")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed; 0 picks one from the clock.")
	flag.IntVar(&cfg.FinalStage, "final-stage", cfg.FinalStage, "Stage on which the boss appears.")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Show the Dear ImGui debug overlay.")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		logger.Fatalf("invalid config: %v", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	logger.Printf("seed %d, save file %s", cfg.Seed, cfg.SaveFile)

	var overlay *debugui_ebiten.ImguiBackend
	if cfg.Debug {
		overlay = debugui_ebiten.NewImguiBackend(title, cfg.ScreenWidth, cfg.ScreenHeight)
	}

	g, err := game.New(game.Options{
		Config:  cfg,
		Store:   deck.NewStore(cfg.SaveFile, logger),
		Assets:  assets.NewLoader(os.DirFS(cfg.AssetsDir), logger),
		Enemies: enemy.DefaultFactory(),
		Dice:    rand.New(rand.NewPCG(cfg.Seed, cfg.Seed>>1|1)),
		Logger:  logger,
		Overlay: overlay,
	})
	if err != nil {
		logger.Fatalf("start game: %v", err)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(title)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatalf("run game: %v", err)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"slices"
	"time"

	"github.com/plus3/tavernbrawl/battle"
	"github.com/plus3/tavernbrawl/card"
	"github.com/plus3/tavernbrawl/config"
	"github.com/plus3/tavernbrawl/deck"
	"github.com/plus3/tavernbrawl/ecs"
	"github.com/plus3/tavernbrawl/enemy"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	games := flag.Int("games", 1000, "The number of runs to play.")
	strategyName := flag.String("strategy", "greedy", "How the simulated player picks actions: greedy or melee.")
	useSaved := flag.Bool("saved", false, "Play with the saved deck instead of the default deck.")
	flag.StringVar(&cfg.SaveFile, "save", cfg.SaveFile, "Path of the saved deck.")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed; 0 picks one from the clock.")
	flag.IntVar(&cfg.FinalStage, "final-stage", cfg.FinalStage, "Stage on which the boss appears.")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	strategy, ok := strategies[*strategyName]
	if !ok {
		log.Fatalf("Unknown strategy %q", *strategyName)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	hand := card.DefaultDeck()
	if *useSaved {
		hand = deck.NewStore(cfg.SaveFile, log.Default()).Load()
	}

	log.Printf("Simulating %d runs with the %s strategy (seed %d)...\n", *games, *strategyName, cfg.Seed)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	report := &Report{
		Games:      *games,
		Strategy:   *strategyName,
		Seed:       cfg.Seed,
		FinalStage: cfg.FinalStage,
	}
	for _, c := range hand {
		report.Deck = append(report.Deck, c.Name())
	}

	startTime := time.Now()
	tally, stats, err := simulate(ctx, cfg.Battle(), hand, *games, strategy, rand.New(rand.NewPCG(cfg.Seed, cfg.Seed>>1|1)))
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
	report.TotalTime = time.Since(startTime)
	report.fill(tally, stats)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Brawl Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// simulate plays games runs of the battle rules, one action per scheduler
// frame, until every run is done or ctx is cancelled.
func simulate(ctx context.Context, rules battle.Config, hand []card.Card, games int, strategy Strategy, dice battle.Dice) (*Tally, *ecs.SchedulerStats, error) {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	ecs.NewSingleton[Match](storage)
	tally := ecs.NewSingleton[Tally](storage, Tally{Target: games})

	enemies := enemy.DefaultFactory()
	start := &StartSystem{
		Start: func() (*battle.Battle, error) {
			return battle.New(rules, slices.Clone(hand), enemies, dice)
		},
	}

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(start)
	scheduler.Register(&StrategySystem{Strategy: strategy})
	scheduler.Register(&TallySystem{})

	for !tally.Get().Done() {
		if err := ctx.Err(); err != nil {
			log.Printf("Interrupted after %d runs.", tally.Get().Played)
			break
		}
		scheduler.Once(0)
		if start.Err != nil {
			return nil, nil, fmt.Errorf("start run %d: %w", tally.Get().Played+1, start.Err)
		}
	}

	return tally.Get(), scheduler.GetStats(), nil
}

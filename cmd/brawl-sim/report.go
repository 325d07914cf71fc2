package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/template"
	"time"

	"github.com/plus3/tavernbrawl/ecs"
)

type Report struct {
	// Configuration
	Games      int
	Strategy   string
	Seed       uint64
	FinalStage int
	Deck       []string

	// Results
	Played    int
	Wins      int
	Losses    int
	Actions   int
	TotalTime time.Duration
	Stage     Stats
	Turns     Stats
	Reached   []StageCount
	Systems   []ecs.SystemStats
}

// StageCount is how many runs ended on Stage.
type StageCount struct {
	Stage int
	Runs  int
}

type Stats struct {
	Min     int
	Max     int
	Avg     float64
	Samples []int
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	total := 0
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = float64(total) / float64(len(s.Samples))
}

// WinRate returns the share of played runs that ended in victory.
func (r *Report) WinRate() float64 {
	if r.Played == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Played)
}

func (r *Report) fill(tally *Tally, stats *ecs.SchedulerStats) {
	r.Played = tally.Played
	r.Wins = tally.Wins
	r.Losses = tally.Losses
	r.Actions = tally.Actions
	r.Stage = Stats{Samples: tally.Stages}
	r.Turns = Stats{Samples: tally.Turns}
	r.Stage.Finalize()
	r.Turns.Finalize()

	counts := make(map[int]int)
	for _, stage := range tally.Stages {
		counts[stage]++
	}
	r.Reached = r.Reached[:0]
	for stage, runs := range counts {
		r.Reached = append(r.Reached, StageCount{Stage: stage, Runs: runs})
	}
	slices.SortFunc(r.Reached, func(a, b StageCount) int { return a.Stage - b.Stage })

	if stats != nil {
		r.Systems = stats.Systems
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Brawl Simulation Report

## Configuration
- **Runs:** {{.Games}}
- **Strategy:** {{.Strategy}}
- **Seed:** {{.Seed}}
- **Boss Stage:** {{.FinalStage}}
- **Deck:** {{join .Deck ", "}}

## Results
- **Runs Played:** {{.Played}}
- **Victories:** {{.Wins}}
- **Defeats:** {{.Losses}}
- **Win Rate:** {{pct .WinRate}}
- **Stage Reached:** avg {{printf "%.2f" .Stage.Avg}}, min {{.Stage.Min}}, max {{.Stage.Max}}
- **Turns per Run:** avg {{printf "%.2f" .Turns.Avg}}, min {{.Turns.Min}}, max {{.Turns.Max}}
- **Actions:** {{.Actions}} in {{.TotalTime}}

## Final Stage Distribution
| Stage | Runs |
|---|---|
{{range .Reached}}| {{.Stage}} | {{.Runs}} |
{{end}}
{{if .Systems}}
## Systems
| System | Runs | Avg | Max |
|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}{{end}}`

	fm := template.FuncMap{
		"pct": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v*100)
		},
		"join": strings.Join,
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}

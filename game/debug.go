package game

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tavernbrawl/ecs/debugui"
)

const debugLogLines = 12

func spawnDebugPanels(g *Game) {
	storage := g.Storage

	storage.Spawn(debugui.ImguiItem{
		Render: func() {
			g.perf.Render(g.current.Scheduler)
		},
	})

	storage.Spawn(debugui.ImguiItem{
		Render: func() {
			var state *BattleState
			if !storage.ReadSingleton(&state) {
				return
			}
			var session *Session
			storage.ReadSingleton(&session)

			imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(320, 360), imgui.CondOnce)

			if imgui.BeginV("Battle", nil, imgui.WindowFlagsNone) {
				imgui.Text(fmt.Sprintf("Screen: %s", g.current.ID))
				imgui.Text(fmt.Sprintf("Wins %d / Losses %d / Retreats %d", session.Wins, session.Losses, session.Retreats))
				imgui.Separator()

				if b := state.Battle; b != nil {
					imgui.Text(fmt.Sprintf("Stage %d/%d, turn %d, %s", b.Stage, b.Config.FinalStage, b.Turn, b.Outcome))
					imgui.Text(fmt.Sprintf("Player HP %d/%d shield %d", b.Player.Health, b.Player.MaxHealth, b.Player.Shield))
					imgui.Text(fmt.Sprintf("%s HP %d/%d atk %d", b.Enemy.Name(), b.Enemy.Health, b.Enemy.MaxHealth, b.Enemy.Attack))

					if imgui.TreeNodeStr("Hand") {
						for i, c := range b.Hand {
							spent := ""
							if b.Spent(i) {
								spent = " (spent)"
							}
							imgui.BulletText(fmt.Sprintf("%d: %s%s", i+1, c, spent))
						}
						imgui.TreePop()
					}

					if imgui.TreeNodeStr("Log") {
						start := max(0, len(b.Log)-debugLogLines)
						for _, ev := range b.Log[start:] {
							imgui.BulletText(ev.Message)
						}
						imgui.TreePop()
					}
				}
			}
			imgui.End()
		},
	})
}

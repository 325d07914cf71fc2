package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tavernbrawl/assets"
	"github.com/plus3/tavernbrawl/battle"
	"github.com/plus3/tavernbrawl/card"
	"github.com/plus3/tavernbrawl/ecs"
)

// Background images inside the asset directory.
const (
	startBackground  = "start_bg.png"
	tavernBackground = "tavern.jpg"
	battleBackground = "game_bg.png"
	playerSprite     = "player.png"
)

// Tavern layout.
const (
	cardSpacing = 130
	tavernRowY  = 250
	handRowY    = 500
	helpY       = 750
	glyphWidth  = 6
)

var (
	handHighlight   = color.RGBA{R: 255, G: 255, A: 255}
	tavernHighlight = color.RGBA{G: 255, B: 255, A: 255}
	cardFallback    = color.RGBA{R: 60, G: 45, B: 30, A: 255}
	spentShade      = color.RGBA{A: 170}
	healthBar       = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	healthBarBack   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

type renderer struct {
	storage *ecs.Storage
	assets  *assets.Loader
	width   int
	height  int
}

func (r *renderer) background(dst *ebiten.Image, name string) {
	dst.DrawImage(r.assets.Sprite(name, r.width, r.height), nil)
}

func (r *renderer) centered(dst *ebiten.Image, text string, y int) {
	widest := 0
	for _, line := range strings.Split(text, "\n") {
		widest = max(widest, len(line))
	}
	ebitenutil.DebugPrintAt(dst, text, (r.width-widest*glyphWidth)/2, y)
}

func (r *renderer) drawStart(dst *ebiten.Image) {
	r.background(dst, startBackground)

	var session *Session
	r.storage.ReadSingleton(&session)

	r.centered(dst, "TAVERN BRAWL", 120)
	r.centered(dst, "F: Fight | T: Tavern | ESC: Quit", 400)
	r.centered(dst, fmt.Sprintf("Wins: %d  Losses: %d  Retreats: %d  Best stage: %d",
		session.Wins, session.Losses, session.Retreats, session.BestStage), 440)

	names := make([]string, len(session.Deck))
	for i, c := range session.Deck {
		names[i] = c.Name()
	}
	r.centered(dst, "Deck: "+strings.Join(names, ", "), 480)
}

func (r *renderer) drawTavern(dst *ebiten.Image) {
	r.background(dst, tavernBackground)
	r.centered(dst, "Edit Your Deck", 30)

	var tavern *TavernState
	r.storage.ReadSingleton(&tavern)
	editor := tavern.Editor
	if editor == nil {
		return
	}

	startTavern := (r.width - len(editor.Pool)*cardSpacing) / 2
	for i, c := range editor.Pool {
		x := startTavern + i*cardSpacing
		r.drawCard(dst, c, x, tavernRowY)
		if i == editor.PoolIndex {
			r.highlight(dst, x, tavernRowY, tavernHighlight)
		}
	}

	startHand := (r.width - len(editor.Hand)*cardSpacing) / 2
	for i, c := range editor.Hand {
		x := startHand + i*cardSpacing
		r.drawCard(dst, c, x, handRowY)
		if i == editor.HandIndex {
			r.highlight(dst, x, handRowY, handHighlight)
		}
	}

	if c := editor.SelectedPool(); c != nil {
		r.centered(dst, c.String(), tavernRowY+assets.CardSize.Y+10)
	}
	r.centered(dst, "UP/DOWN: Select your card | LEFT/RIGHT: Browse Tavern | ENTER: Swap | E: Exit", helpY)
}

func (r *renderer) drawCard(dst *ebiten.Image, c card.Card, x, y int) {
	if art := r.assets.CardArt(c.Name()); art != nil {
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Translate(float64(x), float64(y))
		dst.DrawImage(art, opts)
		return
	}

	w, h := float32(assets.CardSize.X), float32(assets.CardSize.Y)
	vector.DrawFilledRect(dst, float32(x), float32(y), w, h, cardFallback, false)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("%s\n%s %d", c.Name(), c.Kind(), c.Value()), x+8, y+8)
}

func (r *renderer) highlight(dst *ebiten.Image, x, y int, clr color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y),
		float32(assets.CardSize.X), float32(assets.CardSize.Y), 5, clr, false)
}

func (r *renderer) drawBattle(dst *ebiten.Image) {
	r.background(dst, battleBackground)

	var state *BattleState
	r.storage.ReadSingleton(&state)
	b := state.Battle
	if b == nil {
		return
	}

	playerOpts := &ebiten.DrawImageOptions{}
	playerOpts.GeoM.Translate(playerX, playerY)
	dst.DrawImage(r.assets.Sprite(playerSprite, playerW, playerH), playerOpts)
	r.bar(dst, playerX, playerY-12, playerW, b.Player.Health, b.Player.MaxHealth)

	foe := b.Enemy
	enemyOpts := &ebiten.DrawImageOptions{}
	enemyOpts.GeoM.Translate(foe.X, foe.Y)
	dst.DrawImage(r.assets.Sprite(foe.Kind.Sprite, foe.Kind.Size.W, foe.Kind.Size.H), enemyOpts)
	r.bar(dst, int(foe.X), int(foe.Y)-12, foe.Kind.Size.W, foe.Health, foe.MaxHealth)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("%s  HP %d/%d  ATK %d", foe.Name(), foe.Health, foe.MaxHealth, foe.Attack),
		int(foe.X), int(foe.Y)-32)

	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("HP: %d/%d", b.Player.Health, b.Player.MaxHealth), 10, 10)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Shield: %d", b.Player.Shield), 10, 30)
	stage := fmt.Sprintf("Stage: %d/%d", b.Stage, b.Config.FinalStage)
	if b.IsBossStage() {
		stage += " (boss)"
	}
	ebitenutil.DebugPrintAt(dst, stage, 10, 50)

	handY := r.height - assets.CardSize.Y - 40
	start := (r.width - len(b.Hand)*(assets.CardSize.X+20)) / 2
	for i, c := range b.Hand {
		x := start + i*(assets.CardSize.X+20)
		r.drawCard(dst, c, x, handY)
		if b.Spent(i) {
			vector.DrawFilledRect(dst, float32(x), float32(handY),
				float32(assets.CardSize.X), float32(assets.CardSize.Y), spentShade, false)
		}
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("[%d]", i+1), x+assets.CardSize.X/2-9, handY-18)
	}

	for _, popup := range ecs.Each[Popup](r.storage) {
		r.popup(dst, popup)
	}

	r.centered(dst, state.Message, handY-60)
	r.centered(dst, "A: Attack | 1-4: Play card | ESC: Retreat", r.height-20)
}

func (r *renderer) bar(dst *ebiten.Image, x, y, w, value, maxValue int) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), 8, healthBarBack, false)
	if maxValue <= 0 || value <= 0 {
		return
	}
	fill := float32(w) * float32(min(value, maxValue)) / float32(maxValue)
	vector.DrawFilledRect(dst, float32(x), float32(y), fill, 8, healthBar, false)
}

func (r *renderer) popup(dst *ebiten.Image, p *Popup) {
	w := len(p.Text)*glyphWidth + 8
	x := int(p.X) - w/2
	y := int(p.Y)
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), 18, p.Color, false)
	ebitenutil.DebugPrintAt(dst, p.Text, x+4, y+1)
}

func (r *renderer) drawResult(dst *ebiten.Image) {
	dst.Fill(color.RGBA{R: 20, G: 15, B: 10, A: 255})

	var result *Result
	r.storage.ReadSingleton(&result)

	title := "DEFEAT"
	if result.Outcome == battle.Victory {
		title = "VICTORY"
	}
	r.centered(dst, title, 250)
	r.centered(dst, fmt.Sprintf("Stage %d reached in %d turns, last foe: %s", result.Stage, result.Turns, result.Enemy), 300)
	r.centered(dst, "ENTER: Return to the starting area", 400)
}

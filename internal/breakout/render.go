package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar  = '='
	BallChar    = '●'
	BrickChar   = '█'
	BorderHoriz = '─'
)

// Render draws a snapshot into dst. Arena coordinates map 1:1 onto screen
// cells; the HUD occupies row 0.
func Render(snap Snapshot, dst *core.Screen) {
	dst.Clear()

	renderHUD(snap, dst)

	for _, b := range snap.Bricks {
		dst.DrawRect(b.Rect, BrickChar, core.TierColor(b.Row))
	}

	dst.DrawRect(snap.Paddle, PaddleChar, core.ColorBrightCyan)

	if snap.Ball != nil {
		dst.SetColored(snap.Ball.X, snap.Ball.Y, BallChar, core.ColorBrightYellow)
	}

	switch snap.Phase {
	case PhaseGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R restart  Q quit", snap.Score))
	case PhaseCleared:
		drawCenteredBox(dst, "CLEARED!", fmt.Sprintf("Score: %d  |  R restart  Q quit", snap.Score))
	}
}

func renderHUD(snap Snapshot, dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Bricks: %d", len(snap.Bricks)))

	misses := fmt.Sprintf("Misses: %d/%d", snap.Misses, snap.MaxMisses)
	dst.DrawTextColored(dst.Width()-len(misses)-1, 0, misses, missesColor(snap))
}

func missesColor(snap Snapshot) core.Color {
	if snap.MaxMisses-snap.Misses <= 1 {
		return core.ColorRed
	}
	return core.ColorDefault
}

func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

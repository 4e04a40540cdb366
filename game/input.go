package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/vale/renderer"
	"github.com/pthm-cable/vale/ui"
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.Reset()
	}
	if rl.IsKeyPressed(rl.KeyP) {
		g.showPerf = !g.showPerf
	}
	if rl.IsKeyPressed(rl.KeyL) {
		g.logPerfStats()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		g.uiControls.Toggle()
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < MaxStepsPerUpdate {
		g.stepsPerUpdate++
	}

	g.handleCameraInput()
}

// handleAction applies a click from the controls bar.
func (g *Game) handleAction(a ui.Action) {
	switch a {
	case ui.ActionReset:
		g.Reset()
	case ui.ActionPause:
		g.paused = !g.paused
	case ui.ActionCamera:
		g.camera.Cycle()
	case ui.ActionPerf:
		g.showPerf = !g.showPerf
	}
}

// handleResize keeps screen-anchored panels in place after a window resize.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.backgroundRenderer = renderer.NewBackgroundRenderer(int32(w), int32(h))
	g.uiPerf.SetPosition(int32(w)-260, 10)
	g.uiControls.SetPosition(int32(w)-620, int32(h)-40)
}

// handleCameraInput processes camera mode and zoom controls.
func (g *Game) handleCameraInput() {
	if rl.IsKeyPressed(rl.KeyC) {
		g.camera.Cycle()
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.camera.ZoomBy(1 + float64(wheel)*0.1)
	}

	// Keyboard zoom with +/- (= and - keys)
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}

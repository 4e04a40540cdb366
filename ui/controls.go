package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Action is a button press reported by the controls bar.
type Action int

const (
	ActionNone Action = iota
	ActionReset
	ActionPause
	ActionCamera
	ActionPerf
)

// ControlsBar renders clickable buttons mirroring the keyboard shortcuts.
type ControlsBar struct {
	x, y    int32
	visible bool
}

// NewControlsBar creates a controls bar anchored at (x, y).
func NewControlsBar(x, y int32) *ControlsBar {
	return &ControlsBar{x: x, y: y, visible: true}
}

// SetPosition updates the bar position.
func (c *ControlsBar) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// Toggle switches bar visibility.
func (c *ControlsBar) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Draw renders the buttons and returns the action clicked this frame.
// Speed is edited in place by the slider.
func (c *ControlsBar) Draw(paused bool, speed *int, maxSpeed int) Action {
	if !c.visible {
		return ActionNone
	}

	const w, h, gap = 90, 26, 8
	x := float32(c.x)
	y := float32(c.y)
	action := ActionNone

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, "Reset") {
		action = ActionReset
	}
	x += w + gap

	pauseText := "Pause"
	if paused {
		pauseText = "Resume"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, pauseText) {
		action = ActionPause
	}
	x += w + gap

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, "Camera") {
		action = ActionCamera
	}
	x += w + gap

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, "Perf") {
		action = ActionPerf
	}
	x += w + gap + 40

	if speed != nil {
		v := gui.SliderBar(rl.Rectangle{X: x, Y: y + 4, Width: 140, Height: h - 8}, "Speed", "", float32(*speed), 1, float32(maxSpeed))
		*speed = min(max(int(v+0.5), 1), maxSpeed)
	}

	return action
}

package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// BackgroundRenderer paints the sky as a vertical gradient behind the 3D pass.
type BackgroundRenderer struct {
	screenW, screenH int32
	zenith, horizon  rl.Color
}

// NewBackgroundRenderer creates a sky for the given screen size.
func NewBackgroundRenderer(screenW, screenH int32) *BackgroundRenderer {
	return &BackgroundRenderer{
		screenW: screenW,
		screenH: screenH,
		zenith:  rl.Color{R: 62, G: 104, B: 168, A: 255},
		horizon: rl.Color{R: 214, G: 196, B: 170, A: 255},
	}
}

// Draw fills the screen. Call before BeginMode3D.
func (b *BackgroundRenderer) Draw() {
	rl.DrawRectangleGradientV(0, 0, b.screenW, b.screenH, b.zenith, b.horizon)
}

// Height field preview tool - top-down view of the valley with sliders for
// the terrain features.
//
// Usage: go run ./cmd/heightpreview [-config path]
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/vale/config"
	"github.com/pthm-cable/vale/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 560
	panelWidth   = windowWidth - previewSize - 30
	gridSize     = 256
)

// slider binds a config field to a labelled slider.
type slider struct {
	label    string
	value    *float64
	min, max float32
	format   string
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	defaults := cfg.Terrain
	params := defaults

	rl.InitWindow(windowWidth, windowHeight, "Height Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	sliders := []slider{
		{"Water level", &params.WaterLevel, -10, 10, "%.1f"},
		{"Base scale", &params.Base.Scale, 0, 20, "%.1f"},
		{"Base offset", &params.Base.Offset, 0, 30, "%.1f"},
		{"Mountain height", &params.Mountain.Height, 0, 120, "%.0f"},
		{"Mountain radius", &params.Mountain.Radius, 20, 260, "%.0f"},
		{"Mountain warp", &params.Mountain.WarpAmp, 0, 80, "%.0f"},
		{"Lake depth", &params.Lake.Depth, 0, 160, "%.0f"},
		{"Lake radius X", &params.Lake.RadiusX, 10, 160, "%.0f"},
		{"Lake radius Z", &params.Lake.RadiusZ, 10, 160, "%.0f"},
	}

	var (
		field      systems.HeightField
		wp         systems.Waypoints
		lo, hi     float64
		needsRegen = true
	)

	for !rl.WindowShouldClose() {
		if needsRegen {
			field = systems.NewHeightField(params)
			wp = systems.NewWaypoints(field, cfg.Flight)
			samples := field.SampleGrid(-params.Extent/2, -params.Extent/2, params.Extent, gridSize)
			lo, hi = systems.HeightRange(samples)
			updateTexture(texture, samples, field.WaterLevel(), lo, hi)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: gridSize, Height: gridSize},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)
		drawWaypoints(wp, params.Extent)

		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Min: %.1f  Max: %.1f  Water: %.1f", lo, hi, field.WaterLevel()), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Fire: (%.0f, %.1f, %.0f)  Bomb Y: %.1f", wp.Fire.X, wp.Fire.Y, wp.Fire.Z, wp.Bomb.Y), 15, statsY+20, 16, rl.DarkGray)

		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Terrain Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		for _, s := range sliders {
			rl.DrawText(s.label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			v := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
				"", "", float32(*s.value), s.min, s.max,
			)
			rl.DrawText(fmt.Sprintf(s.format, *s.value), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
			if d := float64(v) - *s.value; d > 1e-3 || d < -1e-3 {
				*s.value = float64(v)
				needsRegen = true
			}
			panelY += 30
		}

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaults
			needsRegen = true
		}
		panelY += 45

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			out, err := terrainYAML(params)
			if err != nil {
				slog.Error("failed to marshal terrain", "error", err)
			} else {
				rl.SetClipboardText(out)
			}
		}

		rl.EndDrawing()
	}
}

// terrainYAML renders the terrain section as it appears in config.yaml.
func terrainYAML(t config.TerrainConfig) (string, error) {
	data, err := yaml.Marshal(map[string]config.TerrainConfig{"terrain": t})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// worldToPreview maps a world (x, z) onto the preview rectangle.
func worldToPreview(x, z, extent float64) (int32, int32) {
	u := (x + extent/2) / extent
	v := (z + extent/2) / extent
	return int32(10 + u*previewSize), int32(10 + v*previewSize)
}

// drawWaypoints marks the loop's waypoints over the preview.
func drawWaypoints(wp systems.Waypoints, extent float64) {
	marks := []struct {
		name string
		x, z float64
		c    rl.Color
	}{
		{"fire", wp.Fire.X, wp.Fire.Z, rl.Orange},
		{"entry", wp.LakeEntry.X, wp.LakeEntry.Z, rl.SkyBlue},
		{"exit", wp.LakeExit.X, wp.LakeExit.Z, rl.Blue},
		{"climb", wp.Climb.X, wp.Climb.Z, rl.Green},
		{"pull", wp.PullUp.X, wp.PullUp.Z, rl.Purple},
	}
	for _, m := range marks {
		px, py := worldToPreview(m.x, m.z, extent)
		rl.DrawCircle(px, py, 5, m.c)
		rl.DrawText(m.name, px+7, py-6, 12, rl.Black)
	}
}

// updateTexture colors the samples by height and uploads them.
func updateTexture(texture rl.Texture2D, samples []float64, water, lo, hi float64) {
	pixels := make([]color.RGBA, len(samples))
	for i, h := range samples {
		if h < water {
			// Deeper water is darker
			t := 0.0
			if water > lo {
				t = (water - h) / (water - lo)
			}
			pixels[i] = color.RGBA{R: uint8(40 - t*30), G: uint8(110 - t*70), B: uint8(170 - t*80), A: 255}
			continue
		}
		t := 0.0
		if hi > water {
			t = (h - water) / (hi - water)
		}
		var r, g, b float64
		switch {
		case t < 0.4:
			// Grass
			s := t / 0.4
			r, g, b = 80+s*40, 140-s*20, 60
		case t < 0.8:
			// Rock
			s := (t - 0.4) / 0.4
			r, g, b = 120-s*10, 120-s*16, 60+s*40
		default:
			// Snow
			s := (t - 0.8) / 0.2
			r, g, b = 110+s*140, 104+s*146, 100+s*150
		}
		pixels[i] = color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
	}
	rl.UpdateTexture(texture, pixels)
}

package ui

import (
	"fmt"

	"github.com/pthm-cable/vale/components"
)

// FlightPanelData is the flyer snapshot shown in the flight panel.
type FlightPanelData struct {
	Transform     components.Transform
	Altitude      float64 // Above the contact floor
	Target        float64 // Distance to the current steering target
	MaxBank       float64
	MaxFlapRate   float64
	ActiveRipples int
	RippleCap     int
}

func flightData(d any) *FlightPanelData {
	fd, _ := d.(*FlightPanelData)
	if fd == nil {
		return &FlightPanelData{}
	}
	return fd
}

// flightSections lays out the flight panel.
var flightSections = []SectionDescriptor{
	{
		Title: "Flight",
		Fields: []FieldDescriptor{
			{Label: "State", Widget: WidgetText, TextGetter: func(d any) string {
				return flightData(d).Transform.State.String()
			}},
			{Label: "Speed", Widget: WidgetText, Format: "%.1f u/s", Getter: func(d any) float32 {
				return float32(flightData(d).Transform.Speed)
			}},
			{Label: "Height", Widget: WidgetText, TextGetter: func(d any) string {
				fd := flightData(d)
				return fmt.Sprintf("%.1f (clear %.2f)", fd.Transform.Position.Y, fd.Altitude)
			}},
			{Label: "Target", Widget: WidgetText, Format: "%.1f", Getter: func(d any) float32 {
				return float32(flightData(d).Target)
			}},
			{Label: "Bank", Widget: WidgetCenteredBar, Range: FieldRange{Max: 1}, Getter: func(d any) float32 {
				fd := flightData(d)
				if fd.MaxBank <= 0 {
					return 0
				}
				return float32(fd.Transform.Bank / fd.MaxBank)
			}},
			{Label: "Flap", Widget: WidgetBar, Range: DefaultRange(), Getter: func(d any) float32 {
				fd := flightData(d)
				if fd.MaxFlapRate <= 0 {
					return 0
				}
				return float32(fd.Transform.FlapRate / fd.MaxFlapRate)
			}},
		},
	},
	{
		Title: "Lake",
		Fields: []FieldDescriptor{
			{Label: "Ripples", Widget: WidgetText, TextGetter: func(d any) string {
				fd := flightData(d)
				return fmt.Sprintf("%d / %d", fd.ActiveRipples, fd.RippleCap)
			}},
			{Label: "Skimming", Widget: WidgetText, TextGetter: func(any) string { return "yes" },
				Visible: func(d any) bool { return flightData(d).Transform.State.Skimming() }},
		},
	},
}

// FlightPanel renders the flyer's live state.
type FlightPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewFlightPanel creates a new flight panel.
func NewFlightPanel(x, y, width int32) *FlightPanel {
	return &FlightPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (p *FlightPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the panel and returns the Y below it.
func (p *FlightPanel) Draw(data *FlightPanelData) int32 {
	r := p.renderer
	padding := r.Theme.Padding

	height := padding * 2
	for _, sd := range flightSections {
		height += r.SectionHeight(sd, data)
	}
	r.DrawPanel(p.x, p.y, p.width, height)

	y := p.y + padding
	for _, sd := range flightSections {
		y = r.DrawSection(p.x+padding, y, sd, data, p.width-padding*2)
	}
	return p.y + height
}

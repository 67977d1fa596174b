package smartcab

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"

	env "github.com/samuelfneumann/smartcab/environment"
)

const (
	cellSize    float64 = 80
	roadWidth   float64 = 4
	vehicleSize float64 = 9
	lightSize   float64 = 10
)

var (
	background     = color.RGBA{R: 245, G: 245, B: 240, A: 255}
	roadColour     = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	greenColour    = color.RGBA{R: 30, G: 170, B: 60, A: 255}
	primaryColour  = color.RGBA{R: 220, G: 30, B: 30, A: 255}
	dummyColour    = color.RGBA{R: 40, G: 90, B: 200, A: 255}
	destColour     = color.RGBA{R: 220, G: 30, B: 30, A: 255}
	headlineColour = color.Black
)

// pixel returns the pixel coordinates of intersection l
func pixel(l env.Location) (float64, float64) {
	return float64(l.X) * cellSize, float64(l.Y) * cellSize
}

// Render draws the current state of the world and saves it as a PNG
// image at path.
//
// Roads are drawn in grey. Each traffic light is drawn as a bar along
// the direction of travel that sees green. The primary vehicle is red,
// dummies are blue, and the destination is a red ring. Each vehicle
// has a short line pointing along its heading.
func (s *Smartcab) Render(path string) error {
	w := int(float64(s.x1+1) * cellSize)
	h := int(float64(s.y1+1)*cellSize + cellSize/2)
	dc := gg.NewContext(w, h)

	dc.SetColor(background)
	dc.Clear()

	// Roads
	dc.SetColor(roadColour)
	dc.SetLineWidth(roadWidth)
	for x := s.x0; x <= s.x1; x++ {
		px, _ := pixel(env.Location{X: x})
		dc.DrawLine(px, float64(s.y0)*cellSize, px, float64(s.y1)*cellSize)
	}
	for y := s.y0; y <= s.y1; y++ {
		_, py := pixel(env.Location{Y: y})
		dc.DrawLine(float64(s.x0)*cellSize, py, float64(s.x1)*cellSize, py)
	}
	dc.Stroke()

	// Lights
	for location, light := range s.lights {
		px, py := pixel(location)
		dc.SetColor(greenColour)
		if light.northSouth {
			dc.DrawRectangle(px-lightSize/4, py-lightSize, lightSize/2,
				2*lightSize)
		} else {
			dc.DrawRectangle(px-lightSize, py-lightSize/4, 2*lightSize,
				lightSize/2)
		}
		dc.Fill()
	}

	// Destination the primary vehicle is routed to
	destination := s.planner.Destination()
	if !s.done || s.primary.location == destination {
		px, py := pixel(destination)
		dc.SetColor(destColour)
		dc.SetLineWidth(2)
		dc.DrawCircle(px, py, 2*vehicleSize)
		dc.Stroke()
	}

	// Vehicles
	for _, d := range s.dummies {
		drawVehicle(dc, d, dummyColour)
	}
	drawVehicle(dc, s.primary, primaryColour)

	// Caption
	dc.SetColor(headlineColour)
	_, py := pixel(env.Location{Y: s.y1})
	caption := fmt.Sprintf("t = %d   deadline = %d   reward = %.1f", s.t,
		s.primary.deadline, s.reward)
	dc.DrawStringAnchored(caption, float64(w)/2, py+cellSize*0.75, 0.5, 0.5)

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: could not save %v: %w", path, err)
	}
	return nil
}

func drawVehicle(dc *gg.Context, v *vehicle, c color.Color) {
	px, py := pixel(v.location)

	// Offset vehicles to the right-hand lane of their heading
	right := v.heading.TurnRight()
	px += float64(right.DX) * vehicleSize
	py += float64(right.DY) * vehicleSize

	dc.SetColor(c)
	dc.DrawCircle(px, py, vehicleSize)
	dc.Fill()

	dc.SetColor(color.White)
	dc.SetLineWidth(2)
	dc.DrawLine(px, py, px+float64(v.heading.DX)*vehicleSize,
		py+float64(v.heading.DY)*vehicleSize)
	dc.Stroke()
}

package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"math"

	"github.com/fogleman/gg"
)

const (
	gaugeWidth  = 600
	gaugeHeight = 320

	arcRadius   = 180
	arcSegments = 120
	arcStroke   = 26
)

// Color stops for the risk sweep: red at 0, amber midway, green at 1.
var (
	stopLow  = [3]float64{0xdc / 255.0, 0x35 / 255.0, 0x45 / 255.0}
	stopMid  = [3]float64{0xff / 255.0, 0xc1 / 255.0, 0x07 / 255.0}
	stopHigh = [3]float64{0x28 / 255.0, 0xa7 / 255.0, 0x45 / 255.0}
)

// Gauge renders a semicircular health-score dial as a PNG. The needle points
// at probability, which is clamped to [0,1] before drawing.
func Gauge(probability float64, title string) ([]byte, error) {
	p := clamp(probability)

	dc := gg.NewContext(gaugeWidth, gaugeHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	cx := float64(gaugeWidth) / 2
	cy := float64(gaugeHeight) - 60

	// Upper semicircle swept in short colored segments to fake a gradient.
	// Angles run pi..2pi because the y axis points down.
	dc.SetLineWidth(arcStroke)
	for i := 0; i < arcSegments; i++ {
		t0 := float64(i) / arcSegments
		t1 := float64(i+1) / arcSegments
		r, g, b := sweepColor((t0 + t1) / 2)
		dc.SetRGB(r, g, b)
		dc.DrawArc(cx, cy, arcRadius, math.Pi+t0*math.Pi, math.Pi+t1*math.Pi)
		dc.Stroke()
	}

	// Needle.
	angle := math.Pi + p*math.Pi
	nx := cx + (arcRadius-arcStroke)*math.Cos(angle)
	ny := cy + (arcRadius-arcStroke)*math.Sin(angle)
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(4)
	dc.DrawLine(cx, cy, nx, ny)
	dc.Stroke()
	dc.DrawCircle(cx, cy, 8)
	dc.Fill()

	// Labels use the library's built-in face so no font files are needed.
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.DrawStringAnchored("0%", cx-arcRadius, cy+20, 0.5, 0.5)
	dc.DrawStringAnchored("50%", cx, cy-arcRadius-24, 0.5, 0.5)
	dc.DrawStringAnchored("100%", cx+arcRadius, cy+20, 0.5, 0.5)
	dc.DrawStringAnchored(title, cx, 24, 0.5, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%.1f%%", p*100), cx, cy+40, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode gauge png: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURI wraps a PNG for inline embedding in an <img> tag.
func DataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}

func sweepColor(t float64) (float64, float64, float64) {
	if t < 0.5 {
		return lerp3(stopLow, stopMid, t*2)
	}
	return lerp3(stopMid, stopHigh, (t-0.5)*2)
}

func lerp3(a, b [3]float64, t float64) (float64, float64, float64) {
	return a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

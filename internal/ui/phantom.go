package ui

import (
	"math"
	"strings"

	"github.com/atomicstack/seriesview/internal/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// cellAspect compensates for terminal cells being roughly twice as tall as
// they are wide.
const cellAspect = 2.0

// phantomIntensity returns the raw signal (0..1) of a synthetic cross-section
// at normalised coordinates u, v in [-1, 1]. Slices near either end of the
// series are smaller, and the texture varies per series.
func phantomIntensity(u, v float64, seriesID, frame, frames int) float64 {
	depth := 0.5
	if frames > 1 {
		depth = float64(frame-1) / float64(frames-1)
	}
	radius := 0.92 - 0.5*math.Abs(depth-0.5)
	r := math.Hypot(u, v*1.1)
	switch {
	case r > radius:
		return 0.03
	case r > radius-0.08:
		return 0.88
	}
	tissue := 0.48 + 0.12*math.Sin(float64(seriesID)*1.7+u*6)*math.Cos(v*5+depth*3)
	lobe := math.Hypot((math.Abs(u)-0.2)/0.12, (v+0.05)/(0.3*radius))
	if lobe < 1 {
		return 0.14
	}
	return tissue
}

// shade applies the descriptor's contrast, then brightness, to a raw
// intensity and clamps the result to 0..1.
func shade(intensity float64, d viewport.Descriptor) float64 {
	v := (intensity-0.5)*d.Contrast() + 0.5
	v = clamp01(v)
	return clamp01(v * d.Brightness())
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func grayHex(v float64) string {
	v = clamp01(v)
	return colorful.Color{R: v, G: v, B: v}.Hex()
}

// phantomRows renders the active frame as width x height cells. Runs of
// equal colour share one style so the escape overhead stays small.
func phantomRows(s viewport.Snapshot, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	scale := s.Descriptor.Scale
	if scale <= 0 {
		scale = 1
	}
	frames := s.Series.FrameCount
	rows := make([]string, height)
	for y := 0; y < height; y++ {
		var b strings.Builder
		run := 0
		current := ""
		flush := func() {
			if run == 0 {
				return
			}
			b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(current)).Render(strings.Repeat(" ", run)))
			run = 0
		}
		v := ((float64(y)+0.5)/float64(height)*2 - 1) / scale
		for x := 0; x < width; x++ {
			u := ((float64(x)+0.5)/float64(width)*2 - 1) * (float64(width) / (float64(height) * cellAspect)) / scale
			hex := grayHex(shade(phantomIntensity(u, v, s.Series.ID, s.State.FrameIndex, frames), s.Descriptor))
			if hex != current {
				flush()
				current = hex
			}
			run++
		}
		flush()
		rows[y] = b.String()
	}
	return rows
}

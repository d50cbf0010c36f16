package viewport

import (
	"fmt"
	"math"
	"strconv"
)

// Calibration holds the additive offsets applied when mapping window and
// level onto contrast and brightness percentages.
type Calibration struct {
	ContrastOffset   float64
	BrightnessOffset float64
}

// DefaultCalibration maps window 0..100 onto contrast 40..140% and level
// 0..100 onto brightness 30..130%.
var DefaultCalibration = Calibration{ContrastOffset: 40, BrightnessOffset: 30}

// Descriptor is the display-ready form of the adjustments.
type Descriptor struct {
	ContrastPercent   float64
	BrightnessPercent float64
	Scale             float64
}

// Mapper turns adjustments into descriptors. It performs no clamping.
type Mapper struct {
	Calibration Calibration
}

// Map computes the descriptor for the given window, level and zoom.
func (m Mapper) Map(window, level, zoom float64) Descriptor {
	return Descriptor{
		ContrastPercent:   window + m.Calibration.ContrastOffset,
		BrightnessPercent: level + m.Calibration.BrightnessOffset,
		Scale:             zoom / 100,
	}
}

// MapToRenderDescriptor maps with DefaultCalibration.
func MapToRenderDescriptor(window, level, zoom float64) Descriptor {
	return Mapper{Calibration: DefaultCalibration}.Map(window, level, zoom)
}

// Contrast returns the contrast as a multiplier (1 = unchanged).
func (d Descriptor) Contrast() float64 {
	return d.ContrastPercent / 100
}

// Brightness returns the brightness as a multiplier (1 = unchanged).
func (d Descriptor) Brightness() float64 {
	return d.BrightnessPercent / 100
}

// CSSFilter renders the descriptor as a CSS filter value.
func (d Descriptor) CSSFilter() string {
	return fmt.Sprintf("contrast(%s%%) brightness(%s%%) grayscale(100%%)",
		formatNumber(d.ContrastPercent), formatNumber(d.BrightnessPercent))
}

// CSSTransform renders the scale as a CSS transform value.
func (d Descriptor) CSSTransform() string {
	return fmt.Sprintf("scale(%s)", formatNumber(d.Scale))
}

// Readout is the numeric window-level overlay shown next to the image.
type Readout struct {
	Center int
	Width  int
}

// ReadoutFor derives the overlay values from a state.
func ReadoutFor(s State) Readout {
	return Readout{
		Center: int(math.Round(s.Level * 20)),
		Width:  int(math.Round(s.Window * 30)),
	}
}

func (r Readout) String() string {
	return fmt.Sprintf("WL: %d / WW: %d", r.Center, r.Width)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package widgets

import (
	"time"

	"skyfeed/internal/compose"
)

const (
	spinnerDots = 5
	spinnerDot  = "•"
	// SpinnerStep is how long each dot stays highlighted.
	SpinnerStep = 250 * time.Millisecond
)

// Spinner is a row of dim dots with one bright dot walking across it.
// Frame spinnerDots shows no bright dot.
type Spinner struct {
	Frame int
}

// SpinnerAt returns the spinner frame for wall-clock time t.
func SpinnerAt(t time.Time) Spinner {
	return Spinner{Frame: int(t.UnixMilli()/SpinnerStep.Milliseconds()) % (spinnerDots + 1)}
}

// Width is the number of columns the dots take.
func (Spinner) Width() int { return spinnerDots*2 - 1 }

// Render draws the dots centered in area.
func (sp Spinner) Render(area compose.Rect, buf *compose.Buffer) {
	if area.Empty() {
		return
	}
	x := area.X + max(area.Width-sp.Width(), 0)/2
	y := area.Y + (area.Height-1)/2
	for i := range spinnerDots {
		style := accentDimStyle
		if i == sp.Frame {
			style = boldStyle
		}
		if x+i*2 >= area.Right() {
			break
		}
		buf.SetStringN(x+i*2, y, spinnerDot, 1, style)
	}
}

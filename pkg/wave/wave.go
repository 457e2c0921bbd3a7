// Package wave provides stateless periodic functions of elapsed time.
package wave

import "github.com/chewxy/math32"

// Shape selects the base periodic function.
type Shape int

const (
	Sine Shape = iota
	Cosine
)

// Osc is value = Bias + Amplitude * shape(t*Speed + Phase).
// It holds no state; every sample is recomputed from t.
type Osc struct {
	Shape     Shape
	Speed     float32
	Phase     float32
	Amplitude float32
	Bias      float32
}

// At samples the oscillator at elapsed time t (seconds).
func (o Osc) At(t float32) float32 {
	x := t*o.Speed + o.Phase
	var s float32
	switch o.Shape {
	case Cosine:
		s = math32.Cos(x)
	default:
		s = math32.Sin(x)
	}
	return o.Bias + o.Amplitude*s
}

// Pulse returns max(0, sin(t*speed+phase)), the half-rectified blink curve.
func Pulse(t, speed, phase float32) float32 {
	return math32.Max(0, math32.Sin(t*speed+phase))
}

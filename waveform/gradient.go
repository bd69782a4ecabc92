package waveform

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

var (
	ErrNoStops         = errors.New("gradient needs at least one stop")
	ErrBadWeight       = errors.New("gradient stop weight must be positive")
	ErrStartOutOfRange = errors.New("gradient start stop out of range")
)

// DefaultStops is the stock blue-cyan cycle. The first three stops are a lead-in, see DefaultStart.
var DefaultStops = []string{"29A6FF:9", "00D2ED:9", "2DE2C0:2", "29A6FF:76"}

// DefaultStart is the index of the first displayed stop of DefaultStops.
const DefaultStart = 3

// Stop is a gradient anchor. Weight is the share of the cycle spent blending
// from this stop's color towards the next stop's color.
type Stop struct {
	Color  RGB
	Weight float64
}

// ParseStop parses "29A6FF:9".
func ParseStop(s string) (Stop, error) {
	hex, weight, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return Stop{}, fmt.Errorf("parse stop %q: expected hex:weight", s)
	}

	color, err := ParseHex(hex)
	if err != nil {
		return Stop{}, fmt.Errorf("parse stop %q: %w", s, err)
	}

	w, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
	if err != nil {
		return Stop{}, fmt.Errorf("parse stop %q: %w", s, err)
	}

	return Stop{Color: color, Weight: w}, nil
}

// ParseStops parses a list of "hex:weight" entries.
func ParseStops(specs []string) ([]Stop, error) {
	stops := make([]Stop, 0, len(specs))
	for _, s := range specs {
		stop, err := ParseStop(s)
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}
	return stops, nil
}

// Gradient is a cyclic multi-stop gradient. The last stop blends back into the first.
type Gradient struct {
	stops      []Stop
	linear     []linear
	cumulative []float64

	total     float64
	displayed float64
}

// NewGradient normalizes the stop weights into cumulative fractions of [0,1).
// Stops before start form a lead-in that widens the color population beyond the visible bars.
func NewGradient(stops []Stop, start int) (*Gradient, error) {
	if len(stops) == 0 {
		return nil, ErrNoStops
	}
	if start < 0 || start >= len(stops) {
		return nil, fmt.Errorf("%w: %d of %d", ErrStartOutOfRange, start, len(stops))
	}

	for i, s := range stops {
		if s.Weight <= 0 || math.IsNaN(s.Weight) || math.IsInf(s.Weight, 0) {
			return nil, fmt.Errorf("%w: stop %d has %v", ErrBadWeight, i, s.Weight)
		}
	}

	total := lo.SumBy(stops, func(s Stop) float64 { return s.Weight })
	hidden := lo.SumBy(stops[:start], func(s Stop) float64 { return s.Weight })

	g := &Gradient{
		stops:      append([]Stop(nil), stops...),
		linear:     lo.Map(stops, func(s Stop, _ int) linear { return s.Color.linear() }),
		cumulative: make([]float64, len(stops)),
		total:      total,
		displayed:  total - hidden,
	}

	var passed float64
	for i, s := range stops {
		passed += s.Weight
		g.cumulative[i] = passed / total
	}
	// Guard against float drift leaving a sliver past the last stop.
	g.cumulative[len(stops)-1] = 1

	return g, nil
}

// Stops returns a copy of the gradient stops.
func (g *Gradient) Stops() []Stop {
	return append([]Stop(nil), g.stops...)
}

// Population is the number of color samples for n visible bars: n widened by the lead-in.
func (g *Gradient) Population(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Floor(float64(n) * g.total / g.displayed))
}

// ColorAt samples position i of a population of p colors. i wraps modulo p.
// A stop boundary belongs to the stop that starts there.
func (g *Gradient) ColorAt(i, p int) RGB {
	if p <= 0 {
		return Black
	}

	i = ((i % p) + p) % p
	fraction := float64(i) / float64(p)

	k := 0
	for j, c := range g.cumulative {
		if fraction < c {
			k = j
			break
		}
	}

	var prev float64
	if k > 0 {
		prev = g.cumulative[k-1]
	}

	inner := (fraction - prev) / (g.cumulative[k] - prev)
	next := (k + 1) % len(g.linear)

	if g.stops[k].Color == g.stops[next].Color {
		return g.stops[k].Color
	}

	return blendLinear(g.linear[k], g.linear[next], inner)
}

// Palette samples every position of a population of p colors.
func (g *Gradient) Palette(p int) []RGB {
	if p <= 0 {
		return nil
	}

	palette := make([]RGB, p)
	for i := range palette {
		palette[i] = g.ColorAt(i, p)
	}
	return palette
}

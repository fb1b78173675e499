// Package palette assigns stable colors to constructors. Well known teams get
// their branding color, everything else falls back to a generated HSL wheel so
// adjacent series stay distinguishable.
package palette

import (
	"fmt"
	"math"
)

// ConstructorColors maps constructor ids to their branding color.
var ConstructorColors = map[int]string{
	1:   "#00D2BE", // Mercedes
	131: "#00D2BE",
	3:   "#0600EF", // Williams
	6:   "#DC0000", // Ferrari
	9:   "#1E41FF", // Red Bull
	214: "#FF8700", // McLaren (Mercedes era id)
	210: "#F596C8",
	51:  "#9B0000", // Alfa Romeo
	213: "#2B4562",
	117: "#0090FF",
	4:   "#FFF500", // Renault
	5:   "#FF8700",
	10:  "#006F62", // Aston Martin lineage
	211: "#787878",
	15:  "#469BFF",
	215: "#900000",
}

// baseHues are spaced around the wheel so neighbouring slots contrast.
var baseHues = []float64{0, 220, 30, 200, 120, 270, 180, 50}

// Generate returns n colors cycling through the base hues with varying
// saturation and lightness. Deterministic for a given n.
func Generate(n int) []string {
	colors := make([]string, 0, n)
	for i := 0; i < n; i++ {
		h := baseHues[i%len(baseHues)]
		s := float64(60+(i%3)*10) / 100.0
		l := float64(25+(i%4)*5) / 100.0
		colors = append(colors, hslToHex(h, s, l))
	}
	return colors
}

// ForConstructors resolves a color per constructor id in order, preferring
// branding colors and filling the rest from the generated wheel.
func ForConstructors(ids []int) map[int]string {
	generated := Generate(len(ids))
	ret := make(map[int]string, len(ids))
	for i, id := range ids {
		if c, ok := ConstructorColors[id]; ok {
			ret[id] = c
			continue
		}
		ret[id] = generated[i]
	}
	return ret
}

func hslToHex(h, s, l float64) string {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	toByte := func(v float64) int {
		return int(math.Round((v + m) * 255))
	}
	return fmt.Sprintf("#%02X%02X%02X", toByte(r), toByte(g), toByte(b))
}

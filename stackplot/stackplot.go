//Package stackplot draws assembled stacking structures with gonum/plot.
//It is a quick-look tool: a projection of the supercell down the b axis
//shows at a glance whether columns, interlayer spacings and wraparound came
//out as intended, without round-tripping through external viewers.
package stackplot

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"closepack"
)

//SideView renders the a-c projection of st (absolute x against absolute z,
//one series per species) and saves it under plotname. The format follows
//the file extension, anything plot.Save understands (png, svg, pdf, ...).
func SideView(st *closepack.Structure, title, plotname string) error {
	if st == nil {
		return fmt.Errorf("stackplot: given nil structure")
	}
	if st.Len() == 0 {
		return fmt.Errorf("stackplot: structure has no sites to draw")
	}
	coords := st.CoordMatrix()
	bySpecies := make(map[string]plotter.XYs)
	for i, s := range st.Sites() {
		bySpecies[s.Species] = append(bySpecies[s.Species], plotter.XY{X: coords.At(i, 0), Y: coords.At(i, 2)})
	}
	names := make([]string, 0, len(bySpecies))
	for n := range bySpecies {
		names = append(names, n)
	}
	sort.Strings(names)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (Angstrom)"
	p.Y.Label.Text = "z (Angstrom)"
	for k, n := range names {
		sc, err := plotter.NewScatter(bySpecies[n])
		if err != nil {
			return fmt.Errorf("stackplot: %s series: %v", n, err)
		}
		r, g, b := seriesColor(k, len(names))
		sc.GlyphStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		sc.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(sc)
		p.Legend.Add(n, sc)
	}
	p.Legend.Top = true
	if err := p.Save(10*vg.Centimeter, 14*vg.Centimeter, plotname); err != nil {
		return fmt.Errorf("stackplot: save %s: %v", plotname, err)
	}
	return nil
}

//seriesColor spreads the series over the hue circle so a handful of species
//stay distinguishable. Saturation and value are fixed.
func seriesColor(key, steps int) (uint8, uint8, uint8) {
	if steps < 1 {
		steps = 1
	}
	h := float64(key) / float64(steps) * 6
	c := 200.0
	x := c * (1 - abs(mod2(h)-1))
	var r, g, b float64
	switch {
	case h < 1:
		r, g = c, x
	case h < 2:
		r, g = x, c
	case h < 3:
		g, b = c, x
	case h < 4:
		g, b = x, c
	case h < 5:
		r, b = x, c
	default:
		r, b = c, x
	}
	return uint8(r), uint8(g), uint8(b)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

//mod2 reduces v into [0,2) without pulling in math for two lines.
func mod2(v float64) float64 {
	for v >= 2 {
		v -= 2
	}
	return v
}

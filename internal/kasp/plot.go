package kasp

import (
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

// A4 landscape.
const (
	pageWidth  = 11.69 * vg.Inch
	pageHeight = 8.27 * vg.Inch
)

// wellTickFontSize keeps the rotated well labels legible on 96+ well plates.
const wellTickFontSize = 5

// PlotFile renders the standard report for plates into a PDF at path.
func PlotFile(plates []*Plate, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if err := Plot(plates, file); err != nil {
		return err
	}
	return file.Close()
}

// Plot writes a seven-page PDF of scatter plots to w: FAM vs HEX raw and
// ROX-normalised, then per-well traces of each signal. Points are grouped
// and coloured by plate.
func Plot(plates []*Plate, w io.Writer) error {
	labels := wellLabels(plates)

	pages := []page{
		signalPage(plates, "Unnormalised FAM vs HEX", "FAM", "HEX",
			func(well Well) (float64, float64) { return float64(well.FAM), float64(well.HEX) }),
		signalPage(plates, "Normalised FAM vs HEX", "FAM", "HEX",
			func(well Well) (float64, float64) { return well.NormFAM(), well.NormHEX() }),
		wellPage(plates, labels, "Unnormalised FAM", "FAM",
			func(well Well) float64 { return float64(well.FAM) }),
		wellPage(plates, labels, "Unnormalised HEX", "HEX",
			func(well Well) float64 { return float64(well.HEX) }),
		wellPage(plates, labels, "Normalised FAM", "FAM",
			func(well Well) float64 { return well.NormFAM() }),
		wellPage(plates, labels, "Normalised HEX", "HEX",
			func(well Well) float64 { return well.NormHEX() }),
		wellPage(plates, labels, "ROX", "ROX",
			func(well Well) float64 { return float64(well.ROX) }),
	}

	canvas := vgpdf.New(pageWidth, pageHeight)
	for i, pg := range pages {
		if i > 0 {
			canvas.NextPage()
		}
		p, err := pg.build()
		if err != nil {
			return err
		}
		p.Draw(draw.New(canvas))
	}
	if _, err := canvas.WriteTo(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

// page is one plot of the report, with one scatter series per plate.
type page struct {
	title, xLabel, yLabel string
	series                []series
	wellAxis              []string // nominal x labels, nil for numeric axes
}

type series struct {
	name string
	pts  plotter.XYs
}

func (pg page) build() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = pg.title
	p.X.Label.Text = pg.xLabel
	p.Y.Label.Text = pg.yLabel

	var args []interface{}
	for _, s := range pg.series {
		args = append(args, s.name, s.pts)
	}
	if err := plotutil.AddScatters(p, args...); err != nil {
		return nil, fmt.Errorf("building %q page: %w", pg.title, err)
	}

	if pg.wellAxis != nil {
		p.NominalX(pg.wellAxis...)
		p.X.Tick.Label.Rotation = math.Pi / 2
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
		p.X.Tick.Label.Font.Size = wellTickFontSize
	}
	p.Legend.Top = true
	return p, nil
}

// signalPage plots one signal against another, one point per well.
func signalPage(plates []*Plate, title, xLabel, yLabel string, xy func(Well) (float64, float64)) page {
	pg := page{title: title, xLabel: xLabel, yLabel: yLabel}
	for _, plate := range plates {
		pts := make(plotter.XYs, 0, len(plate.Wells))
		for _, well := range plate.Wells {
			x, y := xy(well)
			pts = append(pts, plotter.XY{X: x, Y: y})
		}
		pg.series = append(pg.series, series{name: plate.Name, pts: pts})
	}
	return pg
}

// wellPage plots a signal per well coordinate. Wells with the same
// coordinate on different plates share an x position.
func wellPage(plates []*Plate, labels []string, title, yLabel string, y func(Well) float64) page {
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}

	pg := page{title: title, xLabel: "Well", yLabel: yLabel, wellAxis: labels}
	for _, plate := range plates {
		pts := make(plotter.XYs, 0, len(plate.Wells))
		for _, well := range plate.Wells {
			pts = append(pts, plotter.XY{X: float64(index[well.RowCol]), Y: y(well)})
		}
		pg.series = append(pg.series, series{name: plate.Name, pts: pts})
	}
	return pg
}

// wellLabels collects well coordinates across plates in order of first
// appearance.
func wellLabels(plates []*Plate) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, plate := range plates {
		for _, well := range plate.Wells {
			if !seen[well.RowCol] {
				seen[well.RowCol] = true
				labels = append(labels, well.RowCol)
			}
		}
	}
	return labels
}

package vis

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// DefaultFormats is what the figure scripts write when no format is chosen:
// one vector format, as in the paper.
var DefaultFormats = []string{"pdf"}

// canvasWriter is a drawing surface that can be persisted to a file.
type canvasWriter interface {
	vg.CanvasSizer
	io.WriterTo
}

func newCanvas(w, h vg.Length, format string) (canvasWriter, error) {
	switch format {
	case "pdf":
		return vgpdf.New(w, h), nil
	case "png":
		return vgimg.PngCanvas{Canvas: vgimg.New(w, h)}, nil
	case "svg":
		return vgsvg.New(w, h), nil
	default:
		return nil, fmt.Errorf("vis: unsupported plot format %q", format)
	}
}

func writeCanvas(c canvasWriter, dir, name, format string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("vis: create plot directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, name+"."+format)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("vis: create %s: %w", path, err)
	}
	defer f.Close()
	if _, err := c.WriteTo(f); err != nil {
		return fmt.Errorf("vis: write %s: %w", path, err)
	}
	return nil
}

// SavePlot writes p into dir under every requested format, creating dir if
// needed. An empty format list means DefaultFormats.
func SavePlot(p *plot.Plot, w, h vg.Length, dir, name string, formats []string) error {
	if len(formats) == 0 {
		formats = DefaultFormats
	}
	for _, format := range formats {
		c, err := newCanvas(w, h, format)
		if err != nil {
			return err
		}
		p.Draw(draw.New(c))
		if err := writeCanvas(c, dir, name, format); err != nil {
			return err
		}
	}
	return nil
}

// SaveStacked writes a two-panel figure with top occupying topFrac of the
// height, the layout of the heatmap-over-D_RS figures.
func SaveStacked(top, bottom *plot.Plot, topFrac float64, w, h vg.Length, dir, name string, formats []string) error {
	if len(formats) == 0 {
		formats = DefaultFormats
	}
	for _, format := range formats {
		c, err := newCanvas(w, h, format)
		if err != nil {
			return err
		}
		dc := draw.New(c)
		top.Draw(draw.Crop(dc, 0, 0, h*vg.Length(1-topFrac), 0))
		bottom.Draw(draw.Crop(dc, 0, 0, 0, -h*vg.Length(topFrac)))
		if err := writeCanvas(c, dir, name, format); err != nil {
			return err
		}
	}
	return nil
}

// SaveGrid tiles plots row-major onto one figure. Nil entries leave their
// tile empty, so a ragged last row is fine.
func SaveGrid(plots [][]*plot.Plot, w, h vg.Length, dir, name string, formats []string) error {
	if len(formats) == 0 {
		formats = DefaultFormats
	}
	rows := len(plots)
	cols := 0
	for _, row := range plots {
		if len(row) > cols {
			cols = len(row)
		}
	}
	tiles := draw.Tiles{
		Rows: rows, Cols: cols,
		PadX: vg.Millimeter * 2, PadY: vg.Millimeter * 2,
		PadTop: vg.Millimeter * 2, PadBottom: vg.Millimeter * 2,
		PadLeft: vg.Millimeter * 2, PadRight: vg.Millimeter * 2,
	}

	// Align wants a full rectangle
	full := make([][]*plot.Plot, rows)
	for r := range full {
		full[r] = make([]*plot.Plot, cols)
		copy(full[r], plots[r])
	}

	for _, format := range formats {
		c, err := newCanvas(w, h, format)
		if err != nil {
			return err
		}
		dc := draw.New(c)
		canvases := plot.Align(full, tiles, dc)
		for r := range full {
			for col := range full[r] {
				if full[r][col] == nil {
					continue
				}
				full[r][col].Draw(canvases[r][col])
			}
		}
		if err := writeCanvas(c, dir, name, format); err != nil {
			return err
		}
	}
	return nil
}

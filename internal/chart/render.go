package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"crinkbot/internal/probability"
)

const (
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultMaxPoints = 2000

	// FormatPNG is the only output format.
	FormatPNG = "png"
)

var (
	curveColor = gochart.ColorBlue
	guideColor = drawing.ColorFromHex("808080")
	labelColor = gochart.ColorRed

	printer = message.NewPrinter(language.English)
)

// Renderer draws probability charts. The zero value uses the defaults.
type Renderer struct {
	Width     int
	Height    int
	MaxPoints int
	// TempDir is where RenderTemp creates files; "" means os.TempDir().
	TempDir string
}

// Artifact is a rendered chart on disk.
type Artifact struct {
	Path   string
	Name   string
	Format string
}

// Open opens the rendered file for reading.
func (a Artifact) Open() (io.ReadCloser, error) {
	return os.Open(a.Path)
}

// Remove deletes the rendered file. Removing a missing file is not an error.
func (a Artifact) Remove() error {
	if a.Path == "" {
		return nil
	}
	if err := os.Remove(a.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Title returns the chart title for req.
func Title(req probability.Request) string {
	return printer.Sprintf("Chance of Success After %d Attempts (P=1/%d)", req.Trials, req.Odds)
}

// PercentLabel formats p as a whole percentage, e.g. 0.634 -> "63%".
func PercentLabel(p float64) string {
	return fmt.Sprintf("%.0f%%", math.Round(p*100))
}

// Render draws the chart for req and writes it as PNG to w.
func (r Renderer) Render(w io.Writer, req probability.Request) error {
	at, err := probability.At(req)
	if err != nil {
		return err
	}
	samples, err := probability.Curve(req, r.maxPoints())
	if err != nil {
		return err
	}
	_, hi := probability.Domain(req)

	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = float64(s.Attempt)
		ys[i] = s.Probability
	}
	trials := float64(req.Trials)
	dashed := gochart.Style{StrokeColor: guideColor, StrokeWidth: 1.5, StrokeDashArray: []float64{5, 5}}

	ch := gochart.Chart{
		Title:      Title(req),
		Width:      r.width(),
		Height:     r.height(),
		Background: gochart.Style{Padding: gochart.Box{Top: 48, Left: 24, Right: 24, Bottom: 40}},
		XAxis: gochart.XAxis{
			Name:           "Attempt Count",
			Range:          &gochart.ContinuousRange{Min: 0, Max: float64(hi)},
			ValueFormatter: attemptFormatter,
		},
		YAxis: gochart.YAxis{
			Name:           "Cumulative Success Percentage",
			Range:          &gochart.ContinuousRange{Min: 0, Max: 1},
			ValueFormatter: percentFormatter,
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    "cumulative",
				Style:   gochart.Style{StrokeColor: curveColor, StrokeWidth: 2},
				XValues: xs,
				YValues: ys,
			},
			gochart.ContinuousSeries{
				Name:    "trials",
				Style:   dashed,
				XValues: []float64{trials, trials},
				YValues: []float64{0, at},
			},
			gochart.ContinuousSeries{
				Name:    "chance",
				Style:   dashed,
				XValues: []float64{0, trials},
				YValues: []float64{at, at},
			},
			gochart.AnnotationSeries{
				Name:  "percent",
				Style: gochart.Style{FontColor: labelColor, StrokeColor: labelColor, FontSize: 9},
				Annotations: []gochart.Value2{
					{XValue: 0, YValue: at, Label: PercentLabel(at)},
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(gochart.PNG, &buf); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return fmt.Errorf("decode chart: %w", err)
	}
	caption := printer.Sprintf("1/%d chance per attempt, %s after %d", req.Odds, PercentLabel(at), req.Trials)
	if err := png.Encode(w, drawCaption(img, caption)); err != nil {
		return fmt.Errorf("encode chart: %w", err)
	}
	return nil
}

// RenderFile renders req into a new file at path.
func (r Renderer) RenderFile(path string, req probability.Request) (Artifact, error) {
	f, err := os.Create(path)
	if err != nil {
		return Artifact{}, err
	}
	return r.finish(f, req)
}

// RenderTemp renders req into a fresh temporary file. The caller must
// Remove the artifact when done with it.
func (r Renderer) RenderTemp(req probability.Request) (Artifact, error) {
	// Validate first so bad input never touches the filesystem.
	if err := req.Validate(); err != nil {
		return Artifact{}, err
	}
	f, err := os.CreateTemp(r.TempDir, "dropchance-*.png")
	if err != nil {
		return Artifact{}, err
	}
	return r.finish(f, req)
}

func (r Renderer) finish(f *os.File, req probability.Request) (Artifact, error) {
	art := Artifact{Path: f.Name(), Name: "dropchance.png", Format: FormatPNG}
	if err := r.Render(f, req); err != nil {
		_ = f.Close()
		_ = art.Remove()
		return Artifact{}, err
	}
	if err := f.Close(); err != nil {
		_ = art.Remove()
		return Artifact{}, err
	}
	return art, nil
}

func (r Renderer) width() int {
	if r.Width > 0 {
		return r.Width
	}
	return DefaultWidth
}

func (r Renderer) height() int {
	if r.Height > 0 {
		return r.Height
	}
	return DefaultHeight
}

func (r Renderer) maxPoints() int {
	if r.MaxPoints > 0 {
		return r.MaxPoints
	}
	return DefaultMaxPoints
}

func percentFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f%%", f*100)
	}
	return ""
}

func attemptFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return printer.Sprintf("%d", int(math.Round(f)))
	}
	return ""
}

// drawCaption stamps text near the bottom-left corner of img.
func drawCaption(img image.Image, text string) image.Image {
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)

	face := basicfont.Face7x13
	dr := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(color.RGBA{R: 64, G: 64, B: 64, A: 255}),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(b.Min.X + 12), Y: fixed.I(b.Max.Y - 10)},
	}
	dr.DrawString(text)
	return rgba
}

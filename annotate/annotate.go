package annotate

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"floormark/models"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
)

// Style How the boxes are drawn on the floor plan.
type Style struct {
	HalfWidth   int         // Distance from the center of a mark to the outer edge of its box
	StrokeWidth int         // Width of the outline, drawn inward from the outer edge
	Color       color.Color // Outline color
	Background  color.Color // Shown where the uploaded image is transparent
}

// DefaultStyle 20x20 red boxes with a 3 pixel outline on a white background.
func DefaultStyle() Style {
	return Style{
		HalfWidth:   10,
		StrokeWidth: 3,
		Color:       color.RGBA{R: 0xff, A: 0xff},
		Background:  color.White,
	}
}

// NewStyle Build a Style from configuration values, colors are given as hex (`ff0000`).
func NewStyle(halfWidth int, strokeWidth int, strokeColor Hex, background Hex) (Style, error) {
	if halfWidth <= 0 {
		return Style{}, fmt.Errorf("half width must be positive, got %d", halfWidth)
	}
	if strokeWidth <= 0 {
		return Style{}, fmt.Errorf("stroke width must be positive, got %d", strokeWidth)
	}
	c, err := Hex2Color(strokeColor)
	if err != nil {
		return Style{}, err
	}
	bg, err := Hex2Color(background)
	if err != nil {
		return Style{}, err
	}
	return Style{HalfWidth: halfWidth, StrokeWidth: strokeWidth, Color: c, Background: bg}, nil
}

// Normalize Copy img into an opaque RGBA image with its origin at (0, 0).
// Transparent areas are composited over the background color.
func Normalize(img image.Image, background color.Color) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Over)
	return out
}

// Annotate Draw a box for every mark, in order, on a normalized copy of src.
// The first mark with a coordinate that is not a number aborts the whole rendering.
func Annotate(src image.Image, marks []models.Mark, style Style) (*image.RGBA, error) {
	out := Normalize(src, style.Background)
	for _, mark := range marks {
		x, y, err := mark.Center()
		if err != nil {
			return nil, err
		}
		DrawBox(out, x, y, style)
	}
	log.Debug(fmt.Sprintf("Annotated %dx%d image with %d marks", out.Bounds().Dx(), out.Bounds().Dy(), len(marks)))
	return out, nil
}

// BoxBounds Outer bounds of the box around (x, y), with an exclusive maximum.
func BoxBounds(x float64, y float64, halfWidth int) image.Rectangle {
	x0 := int(math.Round(x - float64(halfWidth)))
	y0 := int(math.Round(y - float64(halfWidth)))
	x1 := int(math.Round(x + float64(halfWidth)))
	y1 := int(math.Round(y + float64(halfWidth)))
	return image.Rect(x0, y0, x1+1, y1+1)
}

// DrawBox Draw an unfilled square outline centered on (x, y). Parts outside dst are clipped.
func DrawBox(dst draw.Image, x float64, y float64, style Style) {
	box := BoxBounds(x, y, style.HalfWidth)
	s := style.StrokeWidth
	stroke := image.NewUniform(style.Color)

	edges := [4]image.Rectangle{
		image.Rect(box.Min.X, box.Min.Y, box.Max.X, box.Min.Y+s), // top
		image.Rect(box.Min.X, box.Max.Y-s, box.Max.X, box.Max.Y), // bottom
		image.Rect(box.Min.X, box.Min.Y, box.Min.X+s, box.Max.Y), // left
		image.Rect(box.Max.X-s, box.Min.Y, box.Max.X, box.Max.Y), // right
	}
	for _, edge := range edges {
		draw.Draw(dst, edge.Intersect(box), stroke, image.Point{}, draw.Src)
	}
}

package videobackend

import (
	"image"
	"image/color"
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/kestrelvision/kestreld/pkg/video/videoframe"
	"github.com/tauraamui/xerror"
	"gocv.io/x/gocv"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// TestCardFrame renders a synthetic test card at the given
// properties' dimensions, stamps the label onto it and returns it as
// an OpenCV frame. Used by the mock backend and by synthetic frame
// sources which need a recognisable, deterministic image without
// touching the codec.
func TestCardFrame(props videoframe.Properties, label string) (videoframe.Frame, error) {
	img := renderTestCardCanvas(props.Dimensions)
	if err := drawText(img, 5, 50, label); err != nil {
		return nil, xerror.Errorf("unable to draw label onto test card: %w", err)
	}

	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, xerror.Errorf("unable to convert test card image into OpenCV mat: %w", err)
	}
	return &openCVFrame{mat: mat, props: props}, nil
}

// renderTestCardCanvas draws three overlapping RGB circles spaced
// evenly around the canvas centre.
func renderTestCardCanvas(d videoframe.Dimensions) *image.RGBA {
	w, h := d.W, d.H
	hw, hh := float64(w/2), float64(h/2)
	r := float64(w) / 3
	θ := 2 * math.Pi / 3
	cr := &circle{hw - r*math.Sin(0), hh - r*math.Cos(0), r * 1.5}
	cg := &circle{hw - r*math.Sin(θ), hh - r*math.Cos(θ), r * 1.5}
	cb := &circle{hw - r*math.Sin(-θ), hh - r*math.Cos(-θ), r * 1.5}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			c := color.RGBA{
				cr.Brightness(float64(x), float64(y)),
				cg.Brightness(float64(x), float64(y)),
				cb.Brightness(float64(x), float64(y)),
				255,
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func drawText(canvas *image.RGBA, x, y int, text string) error {
	fontFace, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return err
	}
	fontDrawer := &font.Drawer{
		Dst: canvas,
		Src: image.White,
		Face: truetype.NewFace(fontFace, &truetype.Options{
			Size:    32.0,
			Hinting: font.HintingFull,
		}),
	}
	textBounds, _ := fontDrawer.BoundString(text)
	textHeight := textBounds.Max.Y - textBounds.Min.Y
	yPosition := fixed.I((y)-textHeight.Ceil())/2 + fixed.I(textHeight.Ceil())
	fontDrawer.Dot = fixed.Point26_6{
		X: fixed.I(x),
		Y: yPosition,
	}
	fontDrawer.DrawString(text)
	return nil
}

type circle struct {
	X, Y, R float64
}

func (c *circle) Brightness(x, y float64) uint8 {
	dx, dy := c.X-x, c.Y-y
	d := math.Sqrt(dx*dx+dy*dy) / c.R
	if d > 1 {
		return 0
	}
	return 255
}

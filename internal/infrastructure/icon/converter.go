// Package icon converts raster images into Windows icon files.
package icon

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	ico "github.com/Kodeworks/golang-image-ico"
	"github.com/disintegration/imaging"
	pkgerrors "github.com/pkg/errors"
)

// Size is the edge length of the generated icon frame
const Size = 32

// Converter implements conversion.IconConverter
type Converter struct {
	size   int
	filter imaging.ResampleFilter
}

// NewConverter creates a converter producing Size x Size icons
func NewConverter() *Converter {
	return &Converter{size: Size, filter: imaging.Lanczos}
}

// Convert decodes source, fits it into the icon frame and writes dest
func (c *Converter) Convert(ctx context.Context, source, dest string) error {
	img, err := imaging.Open(source)
	if err != nil {
		return pkgerrors.Wrapf(err, "cannot identify image file %s", source)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	frame := c.Frame(img)

	out, err := os.Create(dest)
	if err != nil {
		return pkgerrors.WithStack(err)
	}

	if err := ico.Encode(out, frame); err != nil {
		out.Close()
		os.Remove(dest)
		return pkgerrors.Wrap(err, "failed to encode icon")
	}

	if err := out.Close(); err != nil {
		return pkgerrors.WithStack(err)
	}
	return nil
}

// Frame scales img so its longer side matches the frame and centres it on a
// transparent square canvas
func (c *Converter) Frame(img image.Image) *image.NRGBA {
	w, h := fitWithin(img.Bounds().Dx(), img.Bounds().Dy(), c.size)
	resized := imaging.Resize(img, w, h, c.filter)
	canvas := imaging.New(c.size, c.size, color.NRGBA{})
	return imaging.PasteCenter(canvas, resized)
}

// fitWithin returns the dimensions of a w x h image scaled so its longer side is size
func fitWithin(w, h, size int) (int, int) {
	if w <= 0 || h <= 0 {
		return size, size
	}
	if w >= h {
		return size, clampDim(float64(h)*float64(size)/float64(w), size)
	}
	return clampDim(float64(w)*float64(size)/float64(h), size), size
}

func clampDim(v float64, size int) int {
	n := int(math.Round(v))
	if n < 1 {
		return 1
	}
	if n > size {
		return size
	}
	return n
}

func (c *Converter) String() string {
	return fmt.Sprintf("IconConverter{Size: %d}", c.size)
}

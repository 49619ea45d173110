package qr

import (
	"github.com/yeqown/go-qrcode/writer/standard"
	"github.com/yeqown/go-qrcode/writer/standard/shapes"

	qrc "orbitalintel.ai/tools/internal/core/qrcode"
)

const (
	barRatio = 0.85
	gapRatio = 0.10
)

// customShape implements standard.IShape; finder patterns stay solid squares so scanners lock on
type customShape struct {
	drawFunc func(ctx *standard.DrawContext)
}

func (cs *customShape) Draw(ctx *standard.DrawContext) {
	cs.drawFunc(ctx)
}

func (cs *customShape) DrawFinder(ctx *standard.DrawContext) {
	drawSquare(ctx, 0)
}

// shapeFor returns the drawer for a style, nil for the writer's default square
func shapeFor(style qrc.ModuleStyle) standard.IShape {
	switch style {
	case qrc.StyleGappedSquare:
		return &customShape{drawFunc: func(ctx *standard.DrawContext) { drawSquare(ctx, gapRatio) }}
	case qrc.StyleVerticalBars:
		return &customShape{drawFunc: shapes.VStripeBlock(barRatio)}
	case qrc.StyleHorizontalBars:
		return &customShape{drawFunc: shapes.HStripeBlock(barRatio)}
	case qrc.StyleRounded:
		return &customShape{drawFunc: shapes.LiquidBlock()}
	default:
		return nil
	}
}

// drawSquare fills the module inset by inset of its edge on every side
func drawSquare(ctx *standard.DrawContext, inset float64) {
	x, y := ctx.UpperLeft()
	w, h := ctx.Edge()
	dx, dy := float64(w)*inset, float64(h)*inset

	ctx.DrawRectangle(x+dx, y+dy, float64(w)-2*dx, float64(h)-2*dy)
	ctx.SetColor(ctx.Color())
	ctx.Fill()
}

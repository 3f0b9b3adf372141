package sapling

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSWidget is an actor that displays the current FPS and TPS in a corner
// overlay. The readout refreshes every ~0.5 seconds.
type FPSWidget struct {
	BaseActor
	img         *ebiten.Image
	sinceUpdate float64
}

// NewFPSWidget creates an FPS/TPS overlay actor. Add it to the stage root
// last so it draws on top.
func NewFPSWidget() *FPSWidget {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	f := &FPSWidget{img: ebiten.NewImage(100, 32)}
	f.initActor("fps_widget", f)
	f.Touchable = TouchableDisabled
	f.SetSize(100, 32)
	f.sinceUpdate = 1 // render on the first frame
	return f
}

func (f *FPSWidget) Act(dt float64) {
	f.sinceUpdate += dt
	if f.sinceUpdate < 0.5 {
		return
	}
	f.sinceUpdate = 0

	f.img.Clear()
	// Semi-transparent background for readability
	f.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
		ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (f *FPSWidget) Draw(screen *ebiten.Image, parentAlpha float64) {
	if !f.Visible {
		return
	}
	sx, sy := f.LocalToStage(0, 0)
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(sx, sy)
	op.ColorScale.ScaleAlpha(float32(parentAlpha * f.Color.A))
	screen.DrawImage(f.img, &op)
}

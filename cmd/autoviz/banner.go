package main

import (
	"image/color"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/Bhakti2904/Autoviz-Smart-Data-Visualizer/src/viz"
)

// bannerNotifier shows a transient banner near the top of the window for
// each notification. Banners auto-dismiss after viz.NotifyDuration and are
// independent of each other; nothing is queued or deduplicated.
type bannerNotifier struct {
	win fyne.Window
}

func severityColor(sev viz.Severity) color.Color {
	switch sev {
	case viz.SeverityError:
		return color.NRGBA{R: 0xb0, G: 0x2e, B: 0x2e, A: 0xe6}
	case viz.SeveritySuccess:
		return color.NRGBA{R: 0x1f, G: 0x7a, B: 0x33, A: 0xe6}
	default:
		return color.NRGBA{R: 0x2a, G: 0x4d, B: 0x8f, A: 0xe6}
	}
}

func (b bannerNotifier) Notify(message string, sev viz.Severity) {
	fyne.Do(func() {
		bg := canvas.NewRectangle(severityColor(sev))
		bg.CornerRadius = 6
		label := widget.NewLabel(message)
		pu := widget.NewPopUp(container.NewStack(bg, label), b.win.Canvas())
		winSize := b.win.Canvas().Size()
		puSize := pu.MinSize()
		pu.ShowAtPosition(fyne.NewPos((winSize.Width-puSize.Width)/2, 12))
		time.AfterFunc(viz.NotifyDuration, func() {
			fyne.Do(pu.Hide)
		})
	})
}

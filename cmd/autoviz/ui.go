package main

import (
	"context"
	"fmt"
	"image"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/Bhakti2904/Autoviz-Smart-Data-Visualizer/cmd/autoviz/uihelpers"
	"github.com/Bhakti2904/Autoviz-Smart-Data-Visualizer/src/api"
	"github.com/Bhakti2904/Autoviz-Smart-Data-Visualizer/src/config"
	"github.com/Bhakti2904/Autoviz-Smart-Data-Visualizer/src/render"
	"github.com/Bhakti2904/Autoviz-Smart-Data-Visualizer/src/viz"
)

type viewerState struct {
	app    fyne.App
	window fyne.Window

	orch   *viz.Orchestrator
	engine *render.Engine

	// current dataset projection; zero value before the first upload
	view    viz.DatasetView
	hasView bool

	// widgets
	fileLabel   *widget.Label
	statsLabel  *widget.Label
	table       *widget.Table
	xSelect     *widget.Select
	ySelect     *widget.Select
	typeSelect  *widget.Select
	colorSelect *widget.Select
	titleEntry  *widget.Entry
	chartImg    *canvas.Image
	chartBox    *fyne.Container
}

func runViewer(cfg *config.Config) {
	a := app.NewWithID("com.autoviz.viewer")
	w := a.NewWindow("AutoViz")
	w.Resize(fyne.NewSize(1100, 800))

	st := &viewerState{app: a, window: w}
	st.engine = render.NewEngine()

	st.fileLabel = widget.NewLabel("No file loaded")
	st.statsLabel = widget.NewLabel("")

	uploadBtn := widget.NewButton("Upload File…", nil)
	generateBtn := widget.NewButton("Generate Chart", nil)
	resetBtn := widget.NewButton("Reset", nil)

	st.xSelect = widget.NewSelect(nil, nil)
	st.xSelect.PlaceHolder = "X-Axis"
	st.ySelect = widget.NewSelect(nil, nil)
	st.ySelect.PlaceHolder = "Y-Axis"
	st.typeSelect = widget.NewSelect(api.ChartTypes, nil)
	st.typeSelect.Selected = a.Preferences().StringWithFallback("chartType", "bar")
	st.colorSelect = widget.NewSelect(api.ColorSchemes, nil)
	st.colorSelect.Selected = a.Preferences().StringWithFallback("colorScheme", "default")
	st.titleEntry = widget.NewEntry()
	st.titleEntry.SetPlaceHolder("Chart title")

	// preview table: 1 header row + up to 10 data rows
	st.table = widget.NewTable(
		func() (int, int) {
			if !st.hasView {
				return 1, 1
			}
			return len(st.view.Preview) + 1, len(st.view.Headers)
		},
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			lbl := o.(*widget.Label)
			if !st.hasView {
				lbl.SetText("")
				return
			}
			if id.Col >= len(st.view.Headers) {
				lbl.SetText("")
				return
			}
			header := st.view.Headers[id.Col]
			if id.Row == 0 {
				lbl.TextStyle = fyne.TextStyle{Bold: true}
				lbl.SetText(header)
				return
			}
			rix := id.Row - 1
			if rix >= len(st.view.Preview) {
				lbl.SetText("")
				return
			}
			lbl.TextStyle = fyne.TextStyle{}
			lbl.SetText(viz.CellString(st.view.Preview[rix][header]))
		},
	)

	st.chartImg = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	st.chartImg.FillMode = canvas.ImageFillContain
	st.chartImg.SetMinSize(fyne.NewSize(900, 480))
	st.chartBox = container.NewStack(st.chartImg)
	st.chartBox.Hide()

	st.engine.OnImage = func(img image.Image) {
		fyne.Do(func() {
			st.chartImg.Image = img
			st.chartImg.Refresh()
			st.chartBox.Show()
		})
	}
	st.engine.OnClear = func() {
		fyne.Do(func() { st.chartBox.Hide() })
	}

	client := api.NewClient(cfg.Server.URL)
	st.orch = viz.New(client, viz.Options{
		Surface:         st.engine,
		Notifier:        bannerNotifier{win: w},
		UploadControl:   buttonControl{btn: uploadBtn},
		GenerateControl: buttonControl{btn: generateBtn},
		OnDataset: func(v viz.DatasetView) {
			fyne.Do(func() { st.applyDataset(v) })
		},
		OnStats: func(s api.DataStats) {
			fyne.Do(func() {
				st.statsLabel.SetText(fmt.Sprintf("%d rows · %d columns · %d numeric · %d categorical · %d missing",
					s.TotalRows, s.TotalColumns, s.NumericColumns, s.CategoricalColumns, s.MissingValues))
			})
		},
		OnReset: func() {
			fyne.Do(func() { st.applyReset() })
		},
	})

	// chart control changes only mark the config as touched
	onConfigChange := func(string) {
		st.savePrefs()
		_ = st.orch.Configure(st.currentConfig())
	}
	st.xSelect.OnChanged = onConfigChange
	st.ySelect.OnChanged = onConfigChange
	st.typeSelect.OnChanged = onConfigChange
	st.colorSelect.OnChanged = onConfigChange
	st.titleEntry.OnChanged = onConfigChange

	uploadBtn.OnTapped = func() { st.openUploadDialog() }
	generateBtn.OnTapped = func() {
		chartCfg := st.currentConfig()
		go func() { _ = st.orch.GenerateChart(context.Background(), chartCfg) }()
	}
	resetBtn.OnTapped = func() {
		go st.orch.Reset()
	}

	controls := container.NewVBox(
		container.NewHBox(uploadBtn, st.fileLabel, resetBtn),
		st.statsLabel,
		container.NewHBox(
			widget.NewLabel("Type:"), st.typeSelect,
			widget.NewLabel("X:"), st.xSelect,
			widget.NewLabel("Y:"), st.ySelect,
			widget.NewLabel("Colors:"), st.colorSelect,
		),
		container.NewBorder(nil, nil, widget.NewLabel("Title:"), generateBtn, st.titleEntry),
	)

	chartScroll := container.NewVScroll(st.chartBox)
	chartScroll.SetMinSize(fyne.NewSize(900, 520))
	tabs := container.NewAppTabs(
		container.NewTabItem("Data", st.table),
		container.NewTabItem("Chart", chartScroll),
	)
	tabs.SetTabLocation(container.TabLocationTop)

	w.SetContent(container.NewBorder(controls, nil, nil, nil, tabs))
	st.buildMenus()
	st.watchResize()

	w.ShowAndRun()
}

// applyDataset projects a fresh upload onto the widgets: selector options,
// axis defaults, file metadata and the preview table. Runs on the UI thread.
func (st *viewerState) applyDataset(v viz.DatasetView) {
	st.view = v
	st.hasView = true
	st.fileLabel.SetText(uihelpers.TruncatePath(v.FileName, 48))
	st.xSelect.Options = v.Headers
	st.ySelect.Options = v.Headers
	if v.DefaultX != "" {
		st.xSelect.Selected = v.DefaultX
		st.ySelect.Selected = v.DefaultY
	} else {
		st.xSelect.ClearSelected()
		st.ySelect.ClearSelected()
	}
	st.xSelect.Refresh()
	st.ySelect.Refresh()
	colW := uihelpers.ComputePreviewColumnWidth(st.window.Canvas().Size().Width, v.TotalColumns)
	for i := 0; i < v.TotalColumns; i++ {
		st.table.SetColumnWidth(i, float32(colW))
	}
	st.table.Refresh()
}

// applyReset restores the initial upload affordance. Runs on the UI thread.
func (st *viewerState) applyReset() {
	st.view = viz.DatasetView{}
	st.hasView = false
	st.fileLabel.SetText("No file loaded")
	st.statsLabel.SetText("")
	st.xSelect.Options = nil
	st.ySelect.Options = nil
	st.xSelect.ClearSelected()
	st.ySelect.ClearSelected()
	st.titleEntry.SetText("")
	st.table.Refresh()
}

func (st *viewerState) currentConfig() api.ChartConfig {
	return api.ChartConfig{
		ChartType:   st.typeSelect.Selected,
		XAxis:       st.xSelect.Selected,
		YAxis:       st.ySelect.Selected,
		ColorScheme: st.colorSelect.Selected,
		Title:       st.titleEntry.Text,
	}
}

func (st *viewerState) savePrefs() {
	prefs := st.app.Preferences()
	prefs.SetString("chartType", st.typeSelect.Selected)
	prefs.SetString("colorScheme", st.colorSelect.Selected)
}

func (st *viewerState) openUploadDialog() {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		name := rc.URI().Name()
		go func() {
			defer rc.Close()
			_ = st.orch.Upload(context.Background(), name, rc)
		}()
	}, st.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".csv", ".json", ".xlsx", ".xls"}))
	d.Show()
}

func (st *viewerState) buildMenus() {
	exportChart := fyne.NewMenuItem("Export Chart as PNG…", func() {
		go func() { _ = st.orch.ExportChart("png", dialogSink{win: st.window}) }()
	})
	exportCSV := fyne.NewMenuItem("Export Data as CSV…", func() {
		go func() { _ = st.orch.ExportData(context.Background(), "csv", dialogSink{win: st.window}) }()
	})
	exportJSON := fyne.NewMenuItem("Export Data as JSON…", func() {
		go func() { _ = st.orch.ExportData(context.Background(), "json", dialogSink{win: st.window}) }()
	})
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Upload…", func() { st.openUploadDialog() }),
		fyne.NewMenuItemSeparator(),
		exportChart,
		exportCSV,
		exportJSON,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset", func() { go st.orch.Reset() }),
		fyne.NewMenuItem("Quit", func() { st.window.Close() }),
	)
	st.window.SetMainMenu(fyne.NewMainMenu(fileMenu))

	canv := st.window.Canvas()
	if canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { st.openUploadDialog() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { st.openUploadDialog() })
	}
}

// watchResize re-renders the displayed chart when the window width changes
// so it keeps using the available space.
func (st *viewerState) watchResize() {
	if st.window.Canvas() == nil {
		return
	}
	prevW := int(st.window.Canvas().Size().Width)
	done := make(chan struct{})
	st.window.SetOnClosed(func() { close(done) })
	go func() {
		t := time.NewTicker(300 * time.Millisecond)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				c := st.window.Canvas()
				if c == nil {
					continue
				}
				curW := int(c.Size().Width)
				if curW == prevW {
					continue
				}
				prevW = curW
				cw, ch := uihelpers.ComputeChartDimensions(curW - 60)
				st.engine.SetSize(cw, ch)
				if spec := st.orch.Store().Chart(); spec != nil {
					st.engine.Display(spec)
				}
			}
		}
	}()
}

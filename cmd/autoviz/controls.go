package main

import (
	"bytes"
	"io"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// buttonControl adapts a fyne button to the orchestrator's Control contract.
// The orchestrator runs on worker goroutines, so every mutation is routed
// through fyne.Do.
type buttonControl struct {
	btn *widget.Button
}

func (c buttonControl) Disable()      { fyne.Do(c.btn.Disable) }
func (c buttonControl) Enable()       { fyne.Do(c.btn.Enable) }
func (c buttonControl) Label() string { return c.btn.Text }
func (c buttonControl) SetLabel(s string) {
	fyne.Do(func() { c.btn.SetText(s) })
}

// dialogSink backs exports with a save dialog. The orchestrator writes the
// payload into a buffer; closing it pops the dialog and the chosen location
// receives the bytes. Fire-and-forget once the dialog is up.
type dialogSink struct {
	win fyne.Window
}

func (s dialogSink) Create(name string) (io.WriteCloser, error) {
	return &dialogFile{name: name, win: s.win}, nil
}

type dialogFile struct {
	name string
	win  fyne.Window
	buf  bytes.Buffer
}

func (f *dialogFile) Write(p []byte) (int, error) { return f.buf.Write(p) }

func (f *dialogFile) Close() error {
	data := f.buf.Bytes()
	fyne.Do(func() {
		fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
			if err != nil || wc == nil {
				return
			}
			defer wc.Close()
			_, _ = wc.Write(data)
		}, f.win)
		fs.SetFileName(f.name)
		fs.Show()
	})
	return nil
}

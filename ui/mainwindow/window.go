// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"image/png"
	"os"

	"vector-sketch/internal/app"
	"vector-sketch/internal/render"
	"vector-sketch/internal/version"
	"vector-sketch/ui/canvas"
	"vector-sketch/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	canvas    *canvas.DrawingCanvas
	statusBar *widget.Label
	snapCheck *widget.Check
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, appPrefs *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow(fmt.Sprintf("Vector Sketch %s", version.Version))

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  appPrefs,
	}

	mw.setupUI()
	mw.setupMenus()

	w := appPrefs.FloatWithFallback(prefs.KeyWindowW, 1200)
	h := appPrefs.FloatWithFallback(prefs.KeyWindowH, 800)
	win.Resize(fyne.NewSize(float32(w), float32(h)))

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.New(mw.state)
	mw.statusBar = widget.NewLabel("Ready")

	mw.canvas.OnStatus(func(msg string) {
		mw.statusBar.SetText(msg)
	})

	content := container.NewBorder(
		mw.createToolbar(),                // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		mw.canvas,                         // center
	)
	mw.SetContent(content)
}

// createToolbar creates the tool selection and snap controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	tools := []struct {
		label string
		tool  canvas.Tool
	}{
		{"Pan", canvas.ToolPan},
		{"Line", canvas.ToolLine},
		{"Circle", canvas.ToolCircle},
		{"Rect", canvas.ToolRect},
		{"Bezier", canvas.ToolBezier},
		{"Persp. Ellipse", canvas.ToolQuadEllipse},
	}

	items := []fyne.CanvasObject{widget.NewLabel("Tool:")}
	for _, t := range tools {
		tool := t.tool
		name := t.label
		items = append(items, widget.NewButton(name, func() {
			mw.canvas.SetTool(tool)
			mw.statusBar.SetText(fmt.Sprintf("Tool: %s", name))
		}))
	}

	mw.snapCheck = widget.NewCheck("Snap", func(on bool) {
		mw.state.SnapEnabled = on
		mw.prefs.SetBool(prefs.KeySnapEnabled, on)
	})
	mw.snapCheck.SetChecked(mw.prefs.Bool(prefs.KeySnapEnabled, true))
	items = append(items, widget.NewSeparator(), mw.snapCheck)

	return container.NewHBox(items...)
}

// setupMenus creates the application menu.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Project...", mw.onOpenProject),
		fyne.NewMenuItem("Save Project...", mw.onSaveProject),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PNG...", mw.onExportPNG),
	)
	mw.SetMainMenu(fyne.NewMainMenu(fileMenu))
}

func (mw *MainWindow) onOpenProject() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		if err := mw.state.LoadProject(path); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.prefs.SetString(prefs.KeyLastProject, path)
		mw.statusBar.SetText(fmt.Sprintf("Opened %s", path))
		mw.canvas.Refresh()
	}, mw.Window)
}

func (mw *MainWindow) onSaveProject() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := mw.state.SaveProject(path, "Untitled"); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.prefs.SetString(prefs.KeyLastProject, path)
		mw.statusBar.SetText(fmt.Sprintf("Saved %s", path))
	}, mw.Window)
}

func (mw *MainWindow) onExportPNG() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		img := render.ExportPNGSize(mw.state.Document(), 2)
		f, err := os.Create(path)
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		defer f.Close()
		if err := png.Encode(f, img); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.statusBar.SetText(fmt.Sprintf("Exported %s", path))
	}, mw.Window)
}

// SavePreferences persists window geometry and settings.
func (mw *MainWindow) SavePreferences() {
	size := mw.Canvas().Size()
	mw.prefs.SetFloat(prefs.KeyWindowW, float64(size.Width))
	mw.prefs.SetFloat(prefs.KeyWindowH, float64(size.Height))
	if err := mw.prefs.Save(); err != nil {
		mw.statusBar.SetText(fmt.Sprintf("save preferences: %v", err))
	}
}

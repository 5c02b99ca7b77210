package report

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/pkg/errors"
)

// Displayer shows a rendered figure to the user.
type Displayer interface {
	// Show blocks until the user has closed the figure.
	Show(title string, img image.Image) error
}

// DisplayError means no graphical backend could show the figure.
type DisplayError struct {
	Err error
}

func (e *DisplayError) Error() string {
	return fmt.Sprintf("no display available: %v", e.Err)
}

func (e *DisplayError) Unwrap() error { return e.Err }

// FyneDisplay shows figures in a Fyne window.
type FyneDisplay struct {
	// NewApp creates the Fyne application; app.New when nil.
	NewApp func() fyne.App
	// Available probes for a graphical backend before the app is created;
	// backendAvailable when nil.
	Available func() error
}

// Show opens a window holding img at its natural size and runs the Fyne event
// loop until the window is closed.
func (d *FyneDisplay) Show(title string, img image.Image) (err error) {
	if img == nil {
		return errors.New("nothing to display")
	}
	available := d.Available
	if available == nil {
		available = backendAvailable
	}
	if err := available(); err != nil {
		return &DisplayError{Err: err}
	}

	// The GL driver panics when it cannot open a window.
	defer func() {
		if r := recover(); r != nil {
			err = &DisplayError{Err: fmt.Errorf("%v", r)}
		}
	}()

	newApp := d.NewApp
	if newApp == nil {
		newApp = app.New
	}
	a := newApp()
	w := a.NewWindow(title)
	w.SetContent(figureContent(img))
	w.Resize(fyne.NewSize(float32(img.Bounds().Dx()), float32(img.Bounds().Dy())))
	w.SetMaster()
	w.ShowAndRun()
	return nil
}

func figureContent(img image.Image) fyne.CanvasObject {
	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	c.SetMinSize(fyne.NewSize(float32(img.Bounds().Dx())/2, float32(img.Bounds().Dy())/2))
	return container.NewStack(c)
}

package tapp

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

//go:generate mockgen -source=app.go -destination=app_mock.go -package=tapp

// App is the part of *tview.Application the browser drives.
type App interface {
	Run() error
	SetRoot(root tview.Primitive, fullscreen bool)
	SetFocus(p tview.Primitive)
	SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey)
	Stop()
}

type AppMethod func(na *appProxy)

func NewApp(app *tview.Application, o ...AppMethod) App {
	a := &appProxy{}
	if app != nil {
		a.setFocus = func(primitive tview.Primitive) {
			_ = app.SetFocus(primitive)
		}
		a.setRoot = func(root tview.Primitive, fullscreen bool) {
			_ = app.SetRoot(root, fullscreen)
		}
		a.setInputCapture = func(capture func(event *tcell.EventKey) *tcell.EventKey) {
			_ = app.SetInputCapture(capture)
		}
		a.run = app.Run
		a.stop = app.Stop
	}
	for _, m := range o {
		m(a)
	}
	return a
}

func WithSetFocus(setFocus func(p tview.Primitive)) AppMethod {
	return func(na *appProxy) {
		na.setFocus = setFocus
	}
}

func WithSetRoot(setRoot func(root tview.Primitive, fullscreen bool)) AppMethod {
	return func(na *appProxy) {
		na.setRoot = setRoot
	}
}

func WithSetInputCapture(setInputCapture func(capture func(event *tcell.EventKey) *tcell.EventKey)) AppMethod {
	return func(na *appProxy) {
		na.setInputCapture = setInputCapture
	}
}

func WithRun(run func() error) AppMethod {
	return func(na *appProxy) {
		na.run = run
	}
}

func WithStop(stop func()) AppMethod {
	return func(na *appProxy) {
		na.stop = stop
	}
}

var _ App = (*appProxy)(nil)

type appProxy struct {
	setFocus        func(p tview.Primitive)
	setRoot         func(root tview.Primitive, fullscreen bool)
	setInputCapture func(capture func(event *tcell.EventKey) *tcell.EventKey)
	run             func() error
	stop            func()
}

func (n appProxy) SetFocus(p tview.Primitive) {
	n.setFocus(p)
}

func (n appProxy) SetRoot(root tview.Primitive, fullscreen bool) {
	n.setRoot(root, fullscreen)
}

func (n appProxy) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	n.setInputCapture(capture)
}

func (n appProxy) Run() error {
	return n.run()
}

func (n appProxy) Stop() {
	n.stop()
}

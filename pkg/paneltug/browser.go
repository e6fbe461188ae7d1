package paneltug

import (
	"context"
	"fmt"

	"github.com/filetug/paneltug/pkg/files"
	"github.com/filetug/paneltug/pkg/paneltug/navstate"
	"github.com/filetug/paneltug/pkg/paneltug/presenter"
	"github.com/filetug/paneltug/pkg/paneltug/ptsettings"
	"github.com/filetug/paneltug/pkg/paneltug/tapp"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
)

const keyHints = "[gray]q[-] quit  [gray]←/→[-] parent/child  [gray]↑/↓[-] select"

// Browser owns the navigation state and the primitives showing it.
// All methods run on the tview event loop goroutine.
type Browser struct {
	*tview.Flex

	app    tapp.App
	nav    *navstate.Navigator
	state  navstate.State
	title  string
	logger logrus.FieldLogger

	header  *tview.TextView
	parent  *paneView
	current *paneView
	child   *paneView
}

type browserOptions struct {
	logger logrus.FieldLogger
}

type BrowserOption func(o *browserOptions)

func WithLogger(logger logrus.FieldLogger) BrowserOption {
	return func(o *browserOptions) {
		o.logger = logger
	}
}

// NewBrowser reads startDir, lays out the panes and installs itself as
// root and input capture of app.
func NewBrowser(app tapp.App, store files.Store, startDir string, settings ptsettings.Settings, options ...BrowserOption) *Browser {
	o := browserOptions{logger: logrus.StandardLogger()}
	for _, option := range options {
		option(&o)
	}

	b := &Browser{
		app:     app,
		nav:     navstate.New(store, navstate.WithLogger(o.logger)),
		title:   store.RootTitle(),
		logger:  o.logger,
		header:  tview.NewTextView(),
		parent:  newPaneView(settings.Colorize),
		current: newPaneView(settings.Colorize),
		child:   newPaneView(settings.Colorize),
	}
	b.header.SetDynamicColors(true)
	b.header.SetBorder(true)
	b.header.SetTitle(" paneltug ")

	proportions := settings.Proportions
	columns := tview.NewFlex()
	columns.AddItem(b.parent, 0, proportions[0], false)
	columns.AddItem(b.current, 0, proportions[1], true)
	columns.AddItem(b.child, 0, proportions[2], false)

	b.Flex = tview.NewFlex().SetDirection(tview.FlexRow)
	b.AddItem(b.header, settings.HeaderHeight, 0, false)
	b.AddItem(columns, 0, 1, true)

	b.logger.WithField("path", startDir).Info("starting browser")
	b.state = b.nav.Init(context.Background(), startDir)
	b.render()

	app.SetRoot(b, true)
	app.SetFocus(b.current)
	app.SetInputCapture(b.handleKey)
	return b
}

// State returns the state currently on screen.
func (b *Browser) State() navstate.State {
	return b.state
}

// handleKey consumes every key except Ctrl+C, which tview uses to stop.
func (b *Browser) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyCtrlC {
		return event
	}
	cmd := CommandForKey(event)
	switch cmd {
	case navstate.NoCommand:
		return nil
	case navstate.Quit:
		b.logger.Info("quit")
		b.app.Stop()
		return nil
	}
	b.state = b.nav.Apply(context.Background(), b.state, cmd)
	b.render()
	return nil
}

func (b *Browser) render() {
	view := presenter.Present(b.state)
	b.header.SetText(fmt.Sprintf("[::b]%s[::-] %s\n%s",
		tview.Escape(b.title), tview.Escape(view.Header), keyHints))
	b.parent.show(view.Parent)
	b.current.show(view.Current)
	b.child.show(view.Child)
}

package paneltug

import (
	"github.com/filetug/paneltug/pkg/files/osfile"
	"github.com/filetug/paneltug/pkg/paneltug/ptsettings"
	"github.com/filetug/paneltug/pkg/paneltug/tapp"
	"github.com/rivo/tview"
)

// SetupApp puts a Browser over the local filesystem into app.
func SetupApp(app *tview.Application, startDir string, settings ptsettings.Settings) *Browser {
	setRoundedBorders()
	return NewBrowser(tapp.NewApp(app), osfile.NewStore(), startDir, settings)
}

func setRoundedBorders() {
	tview.Borders.TopLeft = '╭'
	tview.Borders.TopRight = '╮'
	tview.Borders.BottomLeft = '╰'
	tview.Borders.BottomRight = '╯'
	tview.Borders.TopLeftFocus = '╭'
	tview.Borders.TopRightFocus = '╮'
	tview.Borders.BottomLeftFocus = '╰'
	tview.Borders.BottomRightFocus = '╯'
	tview.Borders.HorizontalFocus = tview.Borders.Horizontal
	tview.Borders.VerticalFocus = tview.Borders.Vertical
}

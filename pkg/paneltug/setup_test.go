package paneltug

import (
	"testing"

	"github.com/filetug/paneltug/pkg/paneltug/ptsettings"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
)

func TestSetupApp(t *testing.T) {
	app := tview.NewApplication()
	dir := t.TempDir()

	b := SetupApp(app, dir, ptsettings.Default())

	assert.NotNil(t, b)
	assert.Equal(t, dir, b.State().Current.Path())
	assert.NotNil(t, app.GetInputCapture())
	assert.Equal(t, b.current.table, app.GetFocus())
	assert.Equal(t, '╭', tview.Borders.TopLeft)
	assert.Equal(t, '╯', tview.Borders.BottomRightFocus)
}

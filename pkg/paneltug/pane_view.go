package paneltug

import (
	"github.com/filetug/paneltug/pkg/paneltug/presenter"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	listPage = "list"
	textPage = "text"
)

var selectedStyle = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Bold(true)

// paneView shows a presenter.Pane either as a table of rows or as a text block.
type paneView struct {
	*tview.Pages
	table    *tview.Table
	text     *tview.TextView
	colorize bool
}

func newPaneView(colorize bool) *paneView {
	p := &paneView{
		Pages:    tview.NewPages(),
		table:    tview.NewTable(),
		text:     tview.NewTextView(),
		colorize: colorize,
	}
	p.table.SetBorder(true)
	p.table.SetSelectedStyle(selectedStyle)
	p.text.SetBorder(true)
	p.text.SetWrap(true)
	p.AddPage(listPage, p.table, true, true)
	p.AddPage(textPage, p.text, true, false)
	return p
}

func (p *paneView) show(pane presenter.Pane) {
	if pane.Kind == presenter.PaneText {
		p.text.SetTitle(tview.Escape(pane.Title))
		p.text.SetText(pane.Text)
		p.text.ScrollToBeginning()
		p.SwitchToPage(textPage)
		return
	}
	p.table.Clear()
	p.table.SetTitle(tview.Escape(pane.Title))
	for i, row := range pane.Rows {
		cell := tview.NewTableCell(tview.Escape(row.Label)).SetExpansion(1)
		if p.colorize {
			cell.SetTextColor(row.Color)
		} else {
			cell.SetTextColor(tview.Styles.PrimaryTextColor)
		}
		p.table.SetCell(i, 0, cell)
	}
	if pane.Selected >= 0 {
		p.table.SetSelectable(true, false)
		p.table.Select(pane.Selected, 0)
	} else {
		p.table.SetSelectable(false, false)
		p.table.ScrollToBeginning()
	}
	p.SwitchToPage(listPage)
}

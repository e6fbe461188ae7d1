// Package presenter maps a navigation state to what the three panes display.
package presenter

import (
	"path/filepath"
	"strings"

	"github.com/filetug/paneltug/pkg/paneltug/navstate"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/unicode/norm"
)

type PaneKind int

const (
	PaneList PaneKind = iota
	PaneText
)

const (
	NoParentText    = "No parent directory"
	NoSelectionText = "Nothing selected"
	NoCurrentText   = "Empty"
)

// DirSuffix is appended to directory labels.
const DirSuffix = "/"

type Row struct {
	Label string
	Name  string
	IsDir bool
	Color tcell.Color
}

// Pane is either a list of rows (Kind == PaneList) or a text block.
type Pane struct {
	Title    string
	Kind     PaneKind
	Rows     []Row
	Selected int // -1 when nothing is selected
	Text     string
}

type View struct {
	Header  string
	Parent  Pane
	Current Pane
	Child   Pane
}

// Present builds the view for s. It keeps no state between calls.
func Present(s navstate.State) View {
	return View{
		Header:  s.Current.Path(),
		Parent:  presentSlot("Parent", s.Parent, NoParentText),
		Current: presentSlot("Current", s.Current, NoCurrentText),
		Child:   presentSlot("Child", s.Child, NoSelectionText),
	}
}

func presentSlot(title string, slot navstate.Slot, placeholder string) Pane {
	pane := Pane{
		Title:    paneTitle(title, slot.Path()),
		Kind:     PaneText,
		Selected: -1,
	}
	switch slot.Kind() {
	case navstate.SlotDirectory:
		listing, _ := slot.Listing()
		pane.Kind = PaneList
		pane.Rows = make([]Row, listing.Len())
		for i := range pane.Rows {
			pane.Rows[i] = newRow(listing.Entry(i).Name(), listing.Entry(i).IsDir())
		}
		if i, ok := listing.Selected(); ok {
			pane.Selected = i
		}
	case navstate.SlotFile:
		pane.Text = fileText(slot.Path())
	case navstate.SlotReadError:
		pane.Text = slot.Message()
	default:
		pane.Text = placeholder
	}
	return pane
}

func newRow(name string, isDir bool) Row {
	row := Row{
		Label: norm.NFC.String(name),
		Name:  name,
		IsDir: isDir,
	}
	if isDir {
		row.Label += DirSuffix
		row.Color = DirColor
	} else {
		row.Color = GetColorByFileExt(name)
	}
	return row
}

func paneTitle(title, p string) string {
	if p == "" {
		return " " + title + " "
	}
	name := filepath.Base(p)
	if name == string(filepath.Separator) {
		return " " + title + ": " + name + " "
	}
	return " " + title + ": " + norm.NFC.String(name) + " "
}

func fileText(p string) string {
	var sb strings.Builder
	sb.WriteString(p)
	if fileType := FileType(filepath.Base(p)); fileType != "" {
		sb.WriteString("\n\nType: ")
		sb.WriteString(fileType)
	}
	return sb.String()
}

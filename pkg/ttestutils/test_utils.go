package ttestutils

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

var NewSimulationScreen = tcell.NewSimulationScreen

// TestingT is the subset of testing.TB used by NewSimScreen.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
}

// ReadLine reads a full line from the screen
func ReadLine(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		str, _, _ := screen.Get(x, y)
		if str == "" {
			// nothing drawn at this cell
			b.WriteRune(' ')
			continue
		}
		b.WriteString(str)
	}
	return b.String()
}

// ReadScreen reads all lines of the screen joined by newlines.
func ReadScreen(screen tcell.Screen) string {
	width, height := screen.Size()
	lines := make([]string, height)
	for y := range lines {
		lines[y] = ReadLine(screen, y, width)
	}
	return strings.Join(lines, "\n")
}

// NewSimScreen creates a new simulation screen for testing
func NewSimScreen(t TestingT, charset string, width, height int) tcell.Screen {
	t.Helper()
	s := NewSimulationScreen(charset)
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	s.SetSize(width, height)
	return s
}

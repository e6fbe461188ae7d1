package presenter

import (
	"github.com/alecthomas/chroma/v2/lexers"
)

// FileType names the language of a file judging by its name only.
// It returns "" when no lexer claims the name.
func FileType(name string) string {
	lexer := lexers.Match(name)
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}

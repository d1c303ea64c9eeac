package output

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// Highlight colours source for a terminal. Unknown languages and highlighter
// failures return the input unchanged.
func Highlight(source, language string) string {
	b := new(strings.Builder)
	if language == "" {
		language = "text"
	}
	if err := quick.Highlight(b, source, language, "terminal256", "dracula"); err != nil {
		return source
	}
	return b.String()
}

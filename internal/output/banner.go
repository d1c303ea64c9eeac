package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

const welcomeMessage = "Welcome to react Kiva series templates!"

// Welcome renders the greeting shown before the prompts.
func Welcome() string {
	return BannerStyle.Render(welcomeMessage)
}

// NextSteps returns the markdown shown after a successful run.
func NextSteps(dir string) string {
	var b strings.Builder
	b.WriteString("## You can run\n\n")
	b.WriteString("```bash\n")
	if dir != "" && dir != "." {
		fmt.Fprintf(&b, "cd %s\n", dir)
	}
	b.WriteString("git init\n")
	b.WriteString("npm i\n")
	b.WriteString("```\n")
	return b.String()
}

// RenderMarkdown renders md for the terminal, falling back to the raw text.
func RenderMarkdown(md string, width int) string {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

// Goodbye writes the closing panel: next steps and the sign-off line.
func Goodbye(w io.Writer, dir string) {
	fmt.Fprint(w, "\n\n")
	fmt.Fprint(w, RenderMarkdown(NextSteps(dir), 80))
	fmt.Fprintln(w, HappyStyle.Render("Happy code !"))
}

// FileList writes one line per created or skipped file.
func FileList(w io.Writer, created, skipped []string) {
	for _, f := range created {
		fmt.Fprintf(w, "  %s %s\n", CreatedStyle.Render("create"), f)
	}
	for _, f := range skipped {
		fmt.Fprintf(w, "  %s %s\n", SkippedStyle.Render("identical"), f)
	}
}

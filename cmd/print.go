package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown document for the terminal.
func printMarkdown(doc string) {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Println(doc)
		return
	}
	out, err := renderer.Render(doc)
	if err != nil {
		// fall back to the raw markdown
		fmt.Println(doc)
		return
	}
	fmt.Print(out)
}

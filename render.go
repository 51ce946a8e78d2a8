package main

import (
	"checkers/game"
	"strings"
	"unicode"

	"github.com/muesli/termenv"
)

// render colours the board diagram: red pieces in red, white pieces in the default colour,
// kings in bold.
func render(output *termenv.Output, p *game.Position) string {
	var sb strings.Builder
	for _, ch := range p.Diagram() {
		style := output.String(string(ch))
		switch ch {
		case 'r', 'R':
			style = style.Foreground(output.Color("1"))
		case '.':
			style = style.Faint()
		}
		if unicode.IsUpper(ch) {
			style = style.Bold()
		}
		sb.WriteString(style.String())
	}
	return sb.String()
}

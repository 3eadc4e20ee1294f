package mines

import "strings"

// Text renders the board row-major: masked cells as their spoiler
// token, revealed cells as the bare token, rows joined by newlines.
func (b *Board) Text(sym SymbolSet) string {
	var sb strings.Builder
	for y := range b.Rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range b.Cols {
			if x > 0 {
				sb.WriteString(sym.sep)
			}
			sb.WriteString(sym.Cell(b.cells[b.index(x, y)]))
		}
	}
	return sb.String()
}

func Fence(text string) string {
	return "```\n" + text + "\n```"
}

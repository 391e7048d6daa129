package model

import (
	"io"
	"strings"

	"github.com/muesli/termenv"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	liveCellColor = "#7bc043"
)

// Renderer consumes committed views, one per tick
type Renderer interface {
	Display(v *View) error
	Clear()
}

// TerminalRenderer draws views as colored blocks on a terminal
type TerminalRenderer struct {
	out  *termenv.Output
	live termenv.Style
}

func NewTerminalRenderer(w io.Writer) *TerminalRenderer {
	out := termenv.NewOutput(w)
	return &TerminalRenderer{
		out:  out,
		live: out.String().Foreground(out.Color(liveCellColor)),
	}
}

// Display renders the view, x running down the screen and y across, matching the row-major layout
func (r *TerminalRenderer) Display(v *View) error {
	var sb strings.Builder
	block := r.live.Styled(gridPosBlock)
	for x := range v.Size() {
		for y := range v.Size() {
			if v.Alive(x, y) {
				sb.WriteString(block)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(r.out, sb.String())
	return err
}

// Clear clears the terminal screen and homes the cursor
func (r *TerminalRenderer) Clear() {
	r.out.ClearScreen()
	r.out.MoveCursor(1, 1)
}

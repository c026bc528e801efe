package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/eduteams/eduteams-cli/internal/config/types"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Terminal writes the instructions and results of a login session.
type Terminal struct {
	output *termenv.Output
	writer io.Writer
	isTTY  bool
	notice lipgloss.Style
	result lipgloss.Style
}

// NewTerminal returns a terminal writing to w. Colors are used according to mode;
// the screen is only cleared if w is a terminal.
func NewTerminal(w io.Writer, mode types.ColorMode) *Terminal {
	renderer := lipgloss.NewRenderer(w)

	switch mode {
	case types.ColorModeAlways:
		renderer.SetColorProfile(termenv.ANSI)
	case types.ColorModeNever:
		renderer.SetColorProfile(termenv.Ascii)
	case types.ColorModeAuto:
	}

	return &Terminal{
		output: termenv.NewOutput(w),
		writer: w,
		isTTY:  isTerminal(w),
		notice: renderer.NewStyle().Foreground(lipgloss.Color("5")),
		result: renderer.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// Clear clears the screen.
func (t *Terminal) Clear() {
	if !t.isTTY {
		return
	}

	t.output.ClearScreen()
}

// Echo prints text followed by a newline.
func (t *Terminal) Echo(text string) {
	_, _ = fmt.Fprintln(t.writer, text)
}

// Notice prints highlighted text which must not be missed by the user.
func (t *Terminal) Notice(text string) {
	t.printStyled(t.notice, text)
}

// Result prints the highlighted result of the session.
func (t *Terminal) Result(text string) {
	t.printStyled(t.result, text)
}

// printStyled renders every line on its own, lipgloss would pad a block to its widest line.
func (t *Terminal) printStyled(style lipgloss.Style, text string) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}

	_, _ = fmt.Fprintln(t.writer, strings.Join(lines, "\n"))
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

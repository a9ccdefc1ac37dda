package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

var (
	colorGreen  = lipgloss.Color("10")
	colorYellow = lipgloss.Color("11")
	colorRed    = lipgloss.Color("9")
	colorGray   = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#a3a3a3"}
	colorAccent = lipgloss.Color("#7D56F4")
)

type Output struct {
	out          io.Writer
	errOut       io.Writer
	enableColors bool

	green  lipgloss.Style
	yellow lipgloss.Style
	red    lipgloss.Style
	gray   lipgloss.Style
	header lipgloss.Style
}

func NewOutput() *Output {
	return NewOutputWithWriters(os.Stdout, os.Stderr, term.IsTerminal(os.Stdout.Fd()))
}

func NewOutputWithWriters(out, errOut io.Writer, enableColors bool) *Output {
	return &Output{
		out:          out,
		errOut:       errOut,
		enableColors: enableColors,
		green:        lipgloss.NewStyle().Foreground(colorGreen),
		yellow:       lipgloss.NewStyle().Foreground(colorYellow),
		red:          lipgloss.NewStyle().Foreground(colorRed),
		gray:         lipgloss.NewStyle().Foreground(colorGray),
		header:       lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
	}
}

func (o *Output) DisableColors() {
	o.enableColors = false
}

func (o *Output) Out() io.Writer {
	return o.out
}

func (o *Output) Err() io.Writer {
	return o.errOut
}

func (o *Output) render(style lipgloss.Style, text string) string {
	if !o.enableColors {
		return text
	}
	return style.Render(text)
}

func (o *Output) Green(text string) string {
	return o.render(o.green, text)
}

func (o *Output) Yellow(text string) string {
	return o.render(o.yellow, text)
}

func (o *Output) Red(text string) string {
	return o.render(o.red, text)
}

func (o *Output) Gray(text string) string {
	return o.render(o.gray, text)
}

func (o *Output) PrintHeader(msg string) {
	fmt.Fprintln(o.out, o.render(o.header, msg))
	fmt.Fprintln(o.out)
}

func (o *Output) PrintStep(msg string, args ...any) {
	fmt.Fprintf(o.out, "  "+msg+"\n", args...)
}

func (o *Output) PrintSuccess(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.out, "  %s%s\n", o.Green("✓ "), formatted)
}

func (o *Output) PrintWarning(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.out, "  %s%s\n", o.Yellow("⚠ "), formatted)
}

func (o *Output) PrintError(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.errOut, "  %s%s\n", o.Red("✗ "), formatted)
}

func (o *Output) PrintFile(path string, size int) {
	fmt.Fprintf(o.out, "    %-48s %s\n", path, o.Gray(formatSize(size)))
}

func (o *Output) PrintDone(msg string) {
	fmt.Fprintln(o.out, msg)
}

func formatSize(n int) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.2f kB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.2f MB", float64(n)/(1024*1024))
	}
}

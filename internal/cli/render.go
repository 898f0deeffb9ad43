package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	okColor    = color.New(color.FgGreen)
	warnColor  = color.New(color.FgRed)
	noteColor  = color.New(color.FgYellow, color.Bold)
)

func (a *App) title(format string, args ...interface{}) {
	titleColor.Fprintf(a.out, format+"\n", args...)
}

func (a *App) ok(format string, args ...interface{}) {
	okColor.Fprintf(a.out, format+"\n", args...)
}

func (a *App) warn(format string, args ...interface{}) {
	warnColor.Fprintf(a.out, format+"\n", args...)
}

func (a *App) note(format string, args ...interface{}) {
	noteColor.Fprintf(a.out, format+"\n", args...)
}

func (a *App) table(title string, headers []string, rows [][]string) {
	fmt.Fprintln(a.out)
	titleColor.Fprintln(a.out, title)
	t := tablewriter.NewWriter(a.out)
	t.SetHeader(headers)
	t.SetAutoWrapText(false)
	t.AppendBulk(rows)
	t.Render()
}

func (a *App) panel(title, content string) {
	lines := strings.Split(content, "\n")
	width := len(title)
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	fmt.Fprintln(a.out)
	titleColor.Fprintf(a.out, "-- %s %s\n", title, strings.Repeat("-", width-len(title)+2))
	for _, line := range lines {
		fmt.Fprintf(a.out, "   %s\n", line)
	}
	fmt.Fprintf(a.out, "%s\n", strings.Repeat("-", width+6))
}

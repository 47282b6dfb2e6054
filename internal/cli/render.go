package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/todoapp/todo-client/client"
)

// Palette carried over from the web front end.
var (
	colorDarkBlue    = lipgloss.Color("#25273D")
	colorDarkWhite   = lipgloss.Color("#C8CBE7")
	colorBlue        = lipgloss.Color("#3A7CFD")
	colorLightGray   = lipgloss.Color("#9495A5")
	colorOutline     = lipgloss.Color("#494C6B")
	colorGrey        = lipgloss.Color("#817D92")
	colorWhite       = lipgloss.Color("#FFFFFF")
	colorErrorAccent = lipgloss.Color("#E5484D")
)

const (
	boxChecked   = "☑"
	boxUnchecked = "☐"
	maxTitleLen  = 80
)

type theme struct {
	title, accent, done, pending, muted, ok, fail, panel lipgloss.Style
}

// newTheme binds styles to w so colour is dropped when w is not a terminal.
func newTheme(w io.Writer) theme {
	r := lipgloss.NewRenderer(w)
	return theme{
		title:   r.NewStyle().Bold(true).Foreground(colorWhite),
		accent:  r.NewStyle().Foreground(colorBlue),
		done:    r.NewStyle().Foreground(colorLightGray).Strikethrough(true),
		pending: r.NewStyle().Foreground(colorDarkWhite),
		muted:   r.NewStyle().Foreground(colorGrey),
		ok:      r.NewStyle().Foreground(colorBlue).Bold(true),
		fail:    r.NewStyle().Foreground(colorErrorAccent).Bold(true),
		panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorOutline).
			Background(colorDarkBlue).
			Padding(0, 1),
	}
}

func renderOK(w io.Writer, msg string) {
	fmt.Fprintln(w, newTheme(w).ok.Render("✔ "+msg))
}

func renderList(w io.Writer, todos []client.Todo, group bool) {
	t := newTheme(w)
	done, pending := stats(todos)

	lines := []string{
		fmt.Sprintf("%s  %s %d  %s %d  %s %d",
			t.title.Render("Todos"),
			t.ok.Render("✔"), done,
			t.pending.Render("•"), pending,
			t.accent.Render("Total"), len(todos),
		),
		t.muted.Render(progressBar(done, len(todos), 28)),
		"",
	}
	if group {
		lines = append(lines, groupLines(t, todos)...)
	} else {
		lines = append(lines, flatLines(t, todos)...)
	}
	fmt.Fprintln(w, t.panel.Render(strings.Join(lines, "\n")))
}

func stats(todos []client.Todo) (done, pending int) {
	for _, td := range todos {
		if td.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func flatLines(t theme, todos []client.Todo) []string {
	if len(todos) == 0 {
		return []string{t.muted.Render("no todos")}
	}
	out := make([]string, 0, len(todos))
	for _, td := range todos {
		box, style := boxUnchecked, t.pending
		if td.Completed {
			box, style = boxChecked, t.done
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			t.muted.Render(fmt.Sprintf("#%-4d", td.ID)), box, style.Render(truncate(td.Title, maxTitleLen))))
	}
	return out
}

func groupLines(t theme, todos []client.Todo) []string {
	var pend, done []client.Todo
	for _, td := range todos {
		if td.Completed {
			done = append(done, td)
		} else {
			pend = append(pend, td)
		}
	}
	section := func(name string, items []client.Todo) []string {
		lines := []string{t.accent.Render(name)}
		if len(items) == 0 {
			return append(lines, t.muted.Render("(none)"))
		}
		return append(lines, flatLines(t, items)...)
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}

func progressBar(done, total, width int) string {
	if width <= 0 {
		width = 28
	}
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf("] %d/%d", done, total)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

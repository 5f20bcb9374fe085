// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package usage

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/matt-FFFFFF/packagebuilder/internal/color"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	// DefaultIndent is the indent of tables and section bodies.
	DefaultIndent = 2
	// MinColumnSpacing is the space between the columns of a table.
	MinColumnSpacing = 4
	// minWrapWidth is the narrowest column that is still wrapped.
	minWrapWidth    = 20
	wrapBreakpoints = ","
)

// ConsoleWidth returns the width of the terminal on stdout, or 0 when stdout is not a terminal.
// Text is not wrapped at width 0.
var ConsoleWidth = func() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}

	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}

	return w
}

// Styles are the console styles.
type Styles struct {
	Heading     lipgloss.Style
	Message     lipgloss.Style
	Warning     lipgloss.Style
	Error       lipgloss.Style
	ErrorDetail lipgloss.Style
	Key         lipgloss.Style
}

// NewStyles creates the default styles for r.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Heading:     r.NewStyle().Bold(true),
		Message:     r.NewStyle(),
		Warning:     r.NewStyle().Foreground(lipgloss.Color("3")),
		Error:       r.NewStyle().Foreground(lipgloss.Color("1")),
		ErrorDetail: r.NewStyle().Foreground(lipgloss.Color("6")),
		Key:         r.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

// Console writes messages, errors and tables wrapped to the console width.
// Errors and error details go to the error writer.
type Console struct {
	out    io.Writer
	err    io.Writer
	width  int
	colour bool
	styles *Styles
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithWidth sets the wrap width. 0 disables wrapping.
func WithWidth(width int) ConsoleOption {
	return func(c *Console) {
		c.width = width
	}
}

// WithColour enables or disables colours.
func WithColour(colour bool) ConsoleOption {
	return func(c *Console) {
		c.colour = colour
	}
}

// NewConsole creates a Console. The width defaults to ConsoleWidth and colour to color.Enabled.
func NewConsole(out, errOut io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{
		out:    out,
		err:    errOut,
		width:  ConsoleWidth(),
		colour: color.Enabled(),
	}

	for _, opt := range opts {
		opt(c)
	}

	r := lipgloss.NewRenderer(out)
	if c.colour {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	c.styles = NewStyles(r)

	return c
}

// Width returns the wrap width.
func (c *Console) Width() int {
	return c.width
}

// NewLine writes an empty line.
func (c *Console) NewLine() {
	fmt.Fprintln(c.out)
}

// Message writes a message.
func (c *Console) Message(text string) {
	c.write(c.out, c.styles.Message, text, 0, 0)
}

// Heading writes a section heading.
func (c *Console) Heading(text string) {
	c.write(c.out, c.styles.Heading, text, 0, 0)
}

// Warning writes a warning.
func (c *Console) Warning(text string) {
	c.write(c.out, c.styles.Warning, text, 0, 0)
}

// Error writes an error.
func (c *Console) Error(text string) {
	c.write(c.err, c.styles.Error, text, 0, 0)
}

// ErrorDetail writes error details, continuation lines indented by overflow.
func (c *Console) ErrorDetail(text string, overflow int) {
	c.write(c.err, c.styles.ErrorDetail, text, 0, overflow)
}

// Indented writes a message indented by indent, continuation lines by indent+overflow.
func (c *Console) Indented(text string, indent, overflow int) {
	c.write(c.out, c.styles.Message, text, indent, overflow)
}

// Row is a row of a two column table.
type Row struct {
	Key   string
	Value string
}

// Table writes rows as two columns. The second column starts after the widest key
// and wraps within itself.
func (c *Console) Table(rows []Row) {
	keyWidth := 0
	for _, r := range rows {
		keyWidth = max(keyWidth, lipgloss.Width(r.Key))
	}

	valueStart := DefaultIndent + keyWidth + MinColumnSpacing
	margin := strings.Repeat(" ", DefaultIndent)

	for _, r := range rows {
		key := c.styles.Key.Render(r.Key) + strings.Repeat(" ", valueStart-DefaultIndent-lipgloss.Width(r.Key))

		for i, line := range c.wrap(r.Value, valueStart) {
			if i == 0 {
				fmt.Fprintln(c.out, strings.TrimRight(margin+key+c.styles.Message.Render(line), " "))
				continue
			}

			fmt.Fprintln(c.out, strings.Repeat(" ", valueStart)+c.styles.Message.Render(line))
		}
	}
}

func (c *Console) write(w io.Writer, style lipgloss.Style, text string, indent, overflow int) {
	for _, paragraph := range strings.Split(text, "\n") {
		for i, line := range c.wrap(paragraph, indent+overflow) {
			pad := indent
			if i > 0 {
				pad += overflow
			}

			fmt.Fprintln(w, strings.Repeat(" ", pad)+style.Render(line))
		}
	}
}

// wrap splits text into lines that fit after start columns.
func (c *Console) wrap(text string, start int) []string {
	limit := c.width - 1 - start
	if c.width <= 0 || limit < minWrapWidth {
		return strings.Split(text, "\n")
	}

	lines := strings.Split(ansi.Wrap(text, limit, wrapBreakpoints), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}

	return lines
}

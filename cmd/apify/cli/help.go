// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// minDescriptionWidth keeps table descriptions readable when the name
// column eats most of a narrow line.
const minDescriptionWidth = 20

// HelpRenderer writes help text for commands. Section headings are
// bold when the output supports it; everything is wrapped to the
// shared [LineWidth].
type HelpRenderer struct {
	// Program is the binary name used in usage lines.
	Program string

	// Description and Version appear in the main help menu.
	Description string
	Version     string

	writer  io.Writer
	width   *LineWidth
	heading lipgloss.Style
}

// NewHelpRenderer returns a renderer writing to writer. The color
// profile is detected from writer unless overridden by options (tests
// pass termenv.WithProfile(termenv.Ascii)).
func NewHelpRenderer(writer io.Writer, width *LineWidth, options ...termenv.OutputOption) *HelpRenderer {
	renderer := lipgloss.NewRenderer(writer, options...)
	return &HelpRenderer{
		Program: "apify",
		writer:  writer,
		width:   width,
		heading: renderer.NewStyle().Bold(true),
	}
}

// Render writes the help for command, whose canonical path is path.
// Sections appear in order: description, usage, aliases, arguments,
// flags, subcommands, examples. Empty sections are omitted.
func (h *HelpRenderer) Render(path string, command *Command) error {
	var sections []string

	if description := strings.TrimSpace(command.Description); description != "" {
		sections = append(sections, h.wrap(description, h.width.Value()))
	} else if command.Summary != "" {
		sections = append(sections, h.wrap(command.Summary, h.width.Value()))
	}

	sections = append(sections, h.section("USAGE", h.usageLine(path, command)))

	if aliases := h.aliasLines(path, command); aliases != "" {
		sections = append(sections, h.section("ALIASES", aliases))
	}

	if len(command.Args) > 0 {
		rows := make([][2]string, 0, len(command.Args))
		for _, arg := range command.Args {
			rows = append(rows, [2]string{arg.name, arg.description})
		}
		sections = append(sections, h.section("ARGUMENTS", h.table(rows)))
	}

	if flags := visibleFlags(command); len(flags) > 0 {
		rows := make([][2]string, 0, len(flags))
		for _, flag := range flags {
			rows = append(rows, [2]string{flagColumn(flag), flagDescription(flag)})
		}
		sections = append(sections, h.section("FLAGS", h.table(rows)))
	}

	if subcommands := visibleSubcommands(command); len(subcommands) > 0 {
		rows := make([][2]string, 0, len(subcommands))
		for _, subcommand := range subcommands {
			rows = append(rows, [2]string{joinPath(path, subcommand.Name), subcommand.ShortDescription()})
		}
		sections = append(sections, h.section("SUBCOMMANDS", h.list(rows)))
	}

	if len(command.Examples) > 0 {
		var lines []string
		for _, example := range command.Examples {
			if example.Description != "" {
				lines = append(lines, "  "+example.Description)
			}
			lines = append(lines, "    $ "+example.Command, "")
		}
		sections = append(sections, h.section("EXAMPLES", strings.TrimRight(strings.Join(lines, "\n"), "\n")))
	}

	_, err := fmt.Fprintln(h.writer, strings.Join(sections, "\n\n"))
	return err
}

// RenderMain writes the top-level help menu: the CLI description,
// version, usage, group commands under TOPICS and leaf commands under
// COMMANDS, each sorted by name. Hidden commands are omitted.
func (h *HelpRenderer) RenderMain(registry *Registry) error {
	var sections []string
	if h.Description != "" {
		sections = append(sections, h.wrap(h.Description, h.width.Value()))
	}
	if h.Version != "" {
		sections = append(sections, h.section("VERSION", "  "+h.Version))
	}
	sections = append(sections, h.section("USAGE", fmt.Sprintf("  $ %s <command> [options]", h.Program)))

	var topics, commands [][2]string
	roots := registry.Roots()
	sort.SliceStable(roots, func(i, j int) bool { return roots[i].Name < roots[j].Name })
	for _, command := range roots {
		if command.Hidden {
			continue
		}
		row := [2]string{command.Name, command.ShortDescription()}
		if command.IsGroup() {
			topics = append(topics, row)
		} else {
			commands = append(commands, row)
		}
	}
	if len(topics) > 0 {
		sections = append(sections, h.section("TOPICS", h.table(topics)))
	}
	if len(commands) > 0 {
		sections = append(sections, h.section("COMMANDS", h.table(commands)))
	}
	sections = append(sections, h.section("TROUBLESHOOTING",
		fmt.Sprintf("  Run '%s <command> --help' for details on a command.", h.Program)))

	_, err := fmt.Fprintln(h.writer, strings.Join(sections, "\n\n"))
	return err
}

func (h *HelpRenderer) section(title, body string) string {
	return h.heading.Render(title) + "\n" + body
}

// usageLine builds "  $ apify path <required> [optional] --req <value>
// [--opt <value>]", wrapping items onto continuation lines aligned
// after the command path.
func (h *HelpRenderer) usageLine(path string, command *Command) string {
	base := fmt.Sprintf("$ %s %s", h.Program, path)
	var items []string
	if command.IsGroup() && command.Run == nil {
		items = append(items, "<subcommand>")
	}
	for _, arg := range command.Args {
		name := arg.name
		if arg.catchAll {
			name += "..."
		}
		if arg.required {
			items = append(items, "<"+name+">")
		} else {
			items = append(items, "["+name+"]")
		}
	}
	for _, flag := range usageOrderedFlags(command) {
		item := "--" + flag.name
		if flag.kind != KindBoolean {
			item += " <value>"
		}
		if !flag.required {
			item = "[" + item + "]"
		}
		items = append(items, item)
	}

	indent := 2 + ansi.StringWidth(base) + 1
	limit := h.width.Value()
	var builder strings.Builder
	builder.WriteString("  " + base)
	column := 2 + ansi.StringWidth(base)
	for _, item := range items {
		itemWidth := ansi.StringWidth(item)
		if column+1+itemWidth > limit && column > indent {
			builder.WriteString("\n" + strings.Repeat(" ", indent) + item)
			column = indent + itemWidth
			continue
		}
		builder.WriteString(" " + item)
		column += 1 + itemWidth
	}
	return builder.String()
}

func (h *HelpRenderer) aliasLines(path string, command *Command) string {
	if len(command.Aliases) == 0 {
		return ""
	}
	parent := ""
	if index := strings.LastIndexByte(path, ' '); index >= 0 {
		parent = path[:index]
	}
	var lines []string
	for _, alias := range command.Aliases {
		lines = append(lines, fmt.Sprintf("  $ %s %s", h.Program, joinPath(parent, alias)))
	}
	return strings.Join(lines, "\n")
}

// table renders two-column rows indented by two spaces, the left
// column padded to its widest entry and the right column wrapped with
// continuation lines aligned under it.
func (h *HelpRenderer) table(rows [][2]string) string {
	widest, descriptionWidth := h.columns(rows)
	continuation := strings.Repeat(" ", 2+widest+2)

	var lines []string
	for _, row := range rows {
		padding := strings.Repeat(" ", widest-ansi.StringWidth(row[0]))
		wrapped := strings.Split(h.wrap(row[1], descriptionWidth), "\n")
		lines = append(lines, strings.TrimRight("  "+row[0]+padding+"  "+wrapped[0], " "))
		for _, line := range wrapped[1:] {
			lines = append(lines, strings.TrimRight(continuation+line, " "))
		}
	}
	return strings.Join(lines, "\n")
}

// list renders rows like [HelpRenderer.table] but keeps every entry on
// one line, truncating descriptions that do not fit.
func (h *HelpRenderer) list(rows [][2]string) string {
	widest, descriptionWidth := h.columns(rows)
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		padding := strings.Repeat(" ", widest-ansi.StringWidth(row[0]))
		description, _, _ := strings.Cut(row[1], "\n")
		description = ansi.Truncate(description, descriptionWidth, "…")
		lines = append(lines, strings.TrimRight("  "+row[0]+padding+"  "+description, " "))
	}
	return strings.Join(lines, "\n")
}

// columns returns the width of the name column and of the description
// column that fits beside it.
func (h *HelpRenderer) columns(rows [][2]string) (widest, descriptionWidth int) {
	for _, row := range rows {
		widest = max(widest, ansi.StringWidth(row[0]))
	}
	return widest, max(h.width.Value()-2-widest-2, minDescriptionWidth)
}

func (h *HelpRenderer) wrap(text string, limit int) string {
	return ansi.Wrap(text, limit, "")
}

// flagColumn renders "-t, --tag=<value>" or "    --json".
func flagColumn(flag Flag) string {
	prefix := "    "
	if short := flag.shortAlias(); short != "" {
		prefix = "-" + short + ", "
	}
	column := prefix + "--" + flag.name
	switch flag.kind {
	case KindChoice:
		column += "=<option>"
	case KindString, KindInteger:
		column += "=<value>"
	}
	return column
}

func flagDescription(flag Flag) string {
	description := flag.description
	if flag.required {
		description = "(required) " + description
	}
	var notes []string
	if len(flag.choices) > 0 {
		notes = append(notes, "<options: "+strings.Join(flag.choices, "|")+">")
	}
	if text, ok := flag.Default(); ok {
		notes = append(notes, "[default: "+text+"]")
	}
	if len(notes) > 0 {
		description += "\n" + strings.Join(notes, " ")
	}
	return description
}

func visibleFlags(command *Command) []Flag {
	var flags []Flag
	for _, flag := range command.Flags {
		if !flag.hidden {
			flags = append(flags, flag)
		}
	}
	return flags
}

// usageOrderedFlags lists visible flags with required flags first,
// then by name.
func usageOrderedFlags(command *Command) []Flag {
	flags := visibleFlags(command)
	sort.SliceStable(flags, func(i, j int) bool {
		if flags[i].required != flags[j].required {
			return flags[i].required
		}
		return flags[i].name < flags[j].name
	})
	return flags
}

func visibleSubcommands(command *Command) []*Command {
	var subcommands []*Command
	for _, subcommand := range command.Subcommands {
		if !subcommand.Hidden {
			subcommands = append(subcommands, subcommand)
		}
	}
	return subcommands
}

package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gofasta/internal/ui/pretty"
)

// helpStyles holds the Lipgloss styles behind the help templates.
type helpStyles struct {
	heading    lipgloss.Style // section headers: Usage, Flags, ...
	command    lipgloss.Style // command paths and usage lines
	subcommand lipgloss.Style // names in the command list
	flag       lipgloss.Style // flag specs: -n, --count int
	dim        lipgloss.Style // secondary text: examples, aliases
}

func newHelpStyles(colorEnabled bool) *helpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &helpStyles{
			heading:    plain,
			command:    plain,
			subcommand: plain,
			flag:       plain,
			dim:        plain,
		}
	}
	return &helpStyles{
		heading:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		command:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		subcommand: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		flag:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// HelpFormatter renders styled help and usage text for Cobra commands.
type HelpFormatter struct {
	styles *helpStyles
}

// NewHelpFormatter creates a help formatter honoring the color mode
// for the given writer.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{
		styles: newHelpStyles(pretty.IsColorEnabled(colorMode, writer)),
	}
}

// ApplyToCommand installs the styled templates on cmd. Cobra inherits
// usage and help functions, so applying to the root covers every
// subcommand.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := h.funcs()

	cmd.SetUsageFunc(func(command *cobra.Command) error {
		tmpl, err := template.New("usage").Funcs(funcs).Parse(h.usageTemplate())
		if err != nil {
			return fmt.Errorf("parse usage template: %w", err)
		}
		return tmpl.Execute(command.OutOrStdout(), command)
	})

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		tmpl, err := template.New("help").Funcs(funcs).Parse(h.helpTemplate())
		if err != nil {
			command.PrintErrln(err)
			return
		}
		if err := tmpl.Execute(command.OutOrStdout(), command); err != nil {
			command.PrintErrln(err)
		}
	})
}

func (h *HelpFormatter) funcs() template.FuncMap {
	return template.FuncMap{
		"heading":    h.styles.heading.Render,
		"command":    h.styles.command.Render,
		"subcommand": h.styles.subcommand.Render,
		"dim":        h.styles.dim.Render,
		"flags":      h.renderFlags,
		"join":       strings.Join,
		"pad":        padRight,
		"trimRight":  trimTrailingSpace,
	}
}

func (h *HelpFormatter) usageTemplate() string {
	return `{{ heading "Usage:" }}
  {{if .Runnable}}{{ command .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ command (printf "%s [command]" .CommandPath) }}{{end}}

{{- if gt (len .Aliases) 0}}

{{ heading "Aliases:" }}
  {{ dim (join .Aliases ", ") }}
{{- end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ subcommand (pad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (printf "%s [command] --help" .CommandPath) }}" for more information about a command.
{{- end}}
`
}

func (h *HelpFormatter) helpTemplate() string {
	return `{{if or .Runnable .HasSubCommands}}{{ command .CommandPath }}{{if .Version}} {{ dim .Version }}{{end}}

{{end}}{{with (or .Long .Short)}}{{ . | trimRight }}

{{end}}` + h.usageTemplate()
}

// renderFlags styles the flag usage block produced by pflag. Each line
// splits into the flag spec and its description at the first column
// gap; continuation lines from wrapped descriptions pass through
// untouched.
func (h *HelpFormatter) renderFlags(flags interface{}) string {
	set, ok := flags.(interface{ FlagUsages() string })
	if !ok {
		return ""
	}

	usages := strings.TrimSuffix(set.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = h.styleFlagLine(line)
	}
	return strings.Join(lines, "\n")
}

func (h *HelpFormatter) styleFlagLine(line string) string {
	body := strings.TrimLeft(line, " ")
	if body == "" || !strings.HasPrefix(body, "-") {
		return line
	}
	indent := line[:len(line)-len(body)]

	gap := strings.Index(body, "  ")
	if gap < 0 {
		return indent + h.styles.flag.Render(body)
	}

	spec := body[:gap]
	desc := strings.TrimLeft(body[gap:], " ")

	return indent + h.styles.flag.Render(spec) + "   " + desc
}

// padRight pads s with spaces to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// trimTrailingSpace trims trailing spaces and tabs from every line.
func trimTrailingSpace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

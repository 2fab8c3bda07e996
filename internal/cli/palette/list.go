package palette

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gantt/internal/cli"
	"github.com/thenoetrevino/gantt/internal/cli/styles"
	"github.com/thenoetrevino/gantt/internal/config/palettes"
	"github.com/thenoetrevino/gantt/internal/models"
)

// Info is the JSON view of a palette
type Info struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Colors      []string `json:"colors"`
	Default     bool     `json:"default,omitempty"`
}

// PalettesCmd returns the palettes subcommand
func PalettesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "palettes",
		Aliases: []string{"palette"},
		Short:   "List the available colour palettes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOutput, quietMode, _ := cli.OutputFlags(cmd)

			infos := List()

			if quietMode && !jsonOutput {
				for _, info := range infos {
					fmt.Fprintln(cmd.OutOrStdout(), info.Name)
				}
				return nil
			}

			formatter := &cli.OutputFormatter{JSON: jsonOutput, Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
			return formatter.Success(infos, Human(infos))
		},
	}

	return cmd
}

// List returns every palette, sorted by name
func List() []Info {
	names := palettes.Names()
	infos := make([]Info, 0, len(names))
	for _, name := range names {
		p, _ := palettes.Get(name)
		infos = append(infos, Info{
			Name:        p.Name,
			Description: p.Description,
			Colors:      p.Colors,
			Default:     p.Name == models.DefaultPalette,
		})
	}
	return infos
}

// Human renders palettes with colour swatches
func Human(infos []Info) string {
	width := 0
	for _, info := range infos {
		if len(info.Name) > width {
			width = len(info.Name)
		}
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Palettes"))
	for _, info := range infos {
		swatches := make([]string, 0, len(info.Colors))
		for _, c := range info.Colors {
			swatches = append(swatches, styles.Swatch(c))
		}
		name := fmt.Sprintf("%-*s", width, info.Name)
		desc := info.Description
		if info.Default {
			desc += " *"
		}
		fmt.Fprintf(&b, "\n  %s  %s  %s", styles.LabelStyle.Render(name), strings.Join(swatches, ""), styles.SubtitleStyle.Render(desc))
	}
	return b.String()
}

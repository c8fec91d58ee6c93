package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/linkbanner/pkg/render/banner/styles"
)

// stylesCommand creates the styles command listing every style.
func (c *CLI) stylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the available banner styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(stylesTable(styles.All()))
			printNewline()
			printNextStep("Render one", appName+" render --style "+string(styles.Retro))
			printNextStep("Pick interactively", appName+" pick")
			return nil
		},
	}
}

// stylesTable renders the style list as a bordered table.
func stylesTable(all []styles.Style) string {
	rows := make([][]string, len(all))
	for i, s := range all {
		random := ""
		if s.Random {
			random = "✓"
		}
		rows[i] = []string{string(s.ID), s.Description, random}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Style", "Description", "Seeded").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return StyleHighlight
			default:
				return StyleDim
			}
		})
	return t.Render()
}

// completeStyles completes --style values.
func completeStyles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, s := range styles.All() {
		if strings.HasPrefix(string(s.ID), toComplete) {
			out = append(out, string(s.ID)+"\t"+s.Description)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asmanlearning/asman/internal/catalog"
)

func newModulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List global enrichment modules",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-12s  %-4s  %-22s  %s\n", "ID", "", "Name", "Description")
			fmt.Fprintln(out, strings.Repeat("─", 80))
			for _, m := range catalog.Modules() {
				fmt.Fprintf(out, "%-12s  %-4s  %-22s  %s\n", m.ID, m.Flag, m.Name, m.Description)
			}
		},
	}
}

func newPersonasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "personas",
		Short: "List narration personas",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-20s  %-18s  %-5s  %-5s  %s\n", "ID", "Name", "Rate", "Pitch", "Personality")
			fmt.Fprintln(out, strings.Repeat("─", 80))
			for _, p := range catalog.Personas() {
				id := p.ID
				if id == catalog.DefaultPersonaID {
					id += "*"
				}
				fmt.Fprintf(out, "%-20s  %-18s  %-5.2f  %-5.2f  %s\n", id, p.Name, p.SpeakingRate, p.Pitch, p.Personality)
			}
			fmt.Fprintln(out, "\n* default persona")
		},
	}
}

func newCurriculumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curriculum",
		Short: "Browse the curriculum chapter catalog",
		Long: `List the chapters and topics available for curriculum lessons.

Without flags every class level and subject in the catalog is listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			class, _ := cmd.Flags().GetString("class")
			subject, _ := cmd.Flags().GetString("subject")

			levels := catalog.ClassLevels()
			if class != "" {
				lvl, ok := catalog.LookupClassLevel(class)
				if !ok {
					return fmt.Errorf("unknown class level %q", class)
				}
				levels = []catalog.ClassLevel{lvl}
			}

			out := cmd.OutOrStdout()
			found := false
			for _, lvl := range levels {
				for _, s := range catalog.CatalogSubjects(lvl.Value) {
					if subject != "" && s.Value != subject {
						continue
					}
					found = true
					fmt.Fprintf(out, "%s · %s\n", lvl.Label, s.Label)
					for _, ch := range catalog.Chapters(lvl.Value, s.Value) {
						fmt.Fprintf(out, "  %s: %s\n", ch.Chapter, ch.Title)
						for _, topic := range ch.Topics {
							fmt.Fprintf(out, "      - %s\n", topic)
						}
					}
					fmt.Fprintln(out)
				}
			}
			if !found {
				fmt.Fprintln(out, "No chapters found.")
			}
			return nil
		},
	}
	cmd.Flags().String("class", "", "Class level (1-5)")
	cmd.Flags().String("subject", "", "Subject value, e.g. mathematics or science")
	return cmd
}

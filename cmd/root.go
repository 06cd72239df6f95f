package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "asman",
		Short: "AI lesson packs for primary classrooms",
		Long: `ASman Learning turns a topic, a curriculum chapter, a document or a voice
note into a ready-to-teach lesson pack: an explanation with whiteboard cues,
an animation plan, questions, a hands-on activity and narration.

Run without a subcommand to open the interactive app.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/asman/config.yaml)")
	root.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ASMAN_DB env var)")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newModulesCmd())
	root.AddCommand(newPersonasCmd())
	root.AddCommand(newCurriculumCmd())
	root.AddCommand(newNarrateCmd())
	root.AddCommand(newLoginCmd())
	root.AddCommand(newSignupCmd())
	root.AddCommand(newLogoutCmd())
	root.AddCommand(newWhoamiCmd())
	root.AddCommand(newLLMCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the asman command tree.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

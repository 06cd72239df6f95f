package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asmanlearning/asman/internal/catalog"
	"github.com/asmanlearning/asman/internal/intake"
	"github.com/asmanlearning/asman/internal/narration"
)

func newNarrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "narrate",
		Short: "Speak lesson text with the configured narration backend",
		Long: `Synthesize narration for a piece of lesson text. Whiteboard markers are
removed before speaking. With the google backend the audio is written as an
MP3 under narration.output_dir; with the none backend the text that would be
spoken is printed instead.`,
		Args: cobra.NoArgs,
		RunE: runNarrate,
	}
	cmd.Flags().String("text", "", "Text to narrate")
	cmd.Flags().String("file", "", "Document whose text is narrated")
	cmd.Flags().String("persona", catalog.DefaultPersonaID, "Persona whose voice settings are used")
	cmd.Flags().String("language-code", "", "BCP-47 language code (defaults to narration.language_code)")
	cmd.MarkFlagsOneRequired("text", "file")
	cmd.MarkFlagsMutuallyExclusive("text", "file")
	return cmd
}

func runNarrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close(ctx)

	text, _ := cmd.Flags().GetString("text")
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		text, err = intake.ExtractTextFromDocument(ctx, path)
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}
	}

	personaID, _ := cmd.Flags().GetString("persona")
	langCode, _ := cmd.Flags().GetString("language-code")
	if langCode == "" {
		langCode = env.cfg.Narration.LanguageCode
	}
	voice := narration.VoiceFor(catalog.ResolvePersona(personaID), langCode)

	svc, release, err := env.narrationService(ctx)
	if err != nil {
		return err
	}
	defer release()

	h, err := svc.Speak(ctx, text, voice)
	if errors.Is(err, narration.ErrNothingToSay) {
		return fmt.Errorf("nothing to narrate once whiteboard markers are removed")
	}
	if err != nil {
		return err
	}
	if err := svc.Wait(h); err != nil {
		return fmt.Errorf("narrate: %w", err)
	}

	out := cmd.OutOrStdout()
	switch s := svc.(type) {
	case *narration.Narrator:
		if path, ok := s.OutputPath(h); ok {
			fmt.Fprintln(out, path)
		}
	case *narration.Recorder:
		u, _ := s.Last()
		fmt.Fprintln(cmd.ErrOrStderr(), "Narration is off (narration.backend: none). It would say:")
		fmt.Fprintln(out, u.Text)
	}
	return nil
}

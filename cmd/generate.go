package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asmanlearning/asman/internal/app"
	"github.com/asmanlearning/asman/internal/catalog"
	"github.com/asmanlearning/asman/internal/intake"
	"github.com/asmanlearning/asman/internal/lessons"
	"github.com/asmanlearning/asman/internal/screens/compose"
	"github.com/asmanlearning/asman/internal/screens/packview"
)

// errSourceConflict is returned when more than one content flag is set.
var errSourceConflict = fmt.Errorf("use only one of --text, --file, --audio or --chapter/--topic: %w", lessons.ErrEmptyContent)

type generateOptions struct {
	text     string
	file     string
	audio    string
	class    string
	subject  string
	chapter  string
	topic    string
	modules  []string
	persona  string
	language string
	upload   bool
	json     bool
	view     bool
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a lesson pack",
		Long: `Generate a lesson pack from exactly one content source: free text,
a document, an audio note or a curriculum chapter and topic.

When the AI service fails the command still succeeds with an offline pack
and prints a notice on stderr.`,
		Example: `  asman generate --text "The water cycle" --class 4 --module china
  asman generate --class 5 --subject science --chapter "Super Senses" --topic "Five Senses"
  asman generate --file notes.pdf --upload --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.text, "text", "", "Lesson content as free text")
	f.StringVar(&opts.file, "file", "", "Document to extract lesson content from (.txt, .md, .pdf, images)")
	f.StringVar(&opts.audio, "audio", "", "Audio note to transcribe into lesson content")
	f.StringVar(&opts.class, "class", "3", "Class level (1-5)")
	f.StringVar(&opts.subject, "subject", "", "Curriculum subject (with --chapter/--topic)")
	f.StringVar(&opts.chapter, "chapter", "", "Curriculum chapter title")
	f.StringVar(&opts.topic, "topic", "", "Curriculum topic")
	f.StringArrayVar(&opts.modules, "module", nil, "Enrichment module id (repeatable)")
	f.StringVar(&opts.persona, "persona", catalog.DefaultPersonaID, "Persona id")
	f.StringVar(&opts.language, "language", "primary", "Language mode: primary, secondary or bilingual")
	f.BoolVar(&opts.upload, "upload", false, "Request the simpler upload-shaped pack")
	f.BoolVar(&opts.json, "json", false, "Print the pack as JSON")
	f.BoolVar(&opts.view, "view", false, "Open the pack in the interactive viewer")
	cmd.MarkFlagsMutuallyExclusive("json", "view")
	return cmd
}

func runGenerate(cmd *cobra.Command, opts generateOptions) error {
	ctx := cmd.Context()
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close(ctx)

	req, err := opts.request(ctx)
	if err != nil {
		return err
	}

	svc := env.lessonService(ctx, cmd.ErrOrStderr())
	var pack lessons.LessonPack
	if opts.upload {
		pack, err = svc.GenerateUploadPack(ctx, req)
	} else {
		pack, err = svc.GenerateLessonPack(ctx, req)
	}
	if err != nil {
		if errors.Is(err, lessons.ErrEmptyContent) {
			return fmt.Errorf("no lesson content: pass --text, --file, --audio or --chapter/--topic: %w", err)
		}
		return err
	}

	if pack.IsFallback() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Note: %s (%s), so this is an offline lesson pack.\n",
			lessons.DescribeFallback(pack.FallbackReason), pack.FallbackReason)
	}

	switch {
	case opts.view:
		return viewPack(ctx, env, cmd.ErrOrStderr(), svc, pack, opts.persona)
	case opts.json:
		return writeJSON(cmd.OutOrStdout(), pack)
	default:
		_, err := io.WriteString(cmd.OutOrStdout(), lessons.RenderMarkdown(pack))
		return err
	}
}

// request builds the lesson request, extracting text from --file or
// --audio first.
func (o generateOptions) request(ctx context.Context) (lessons.LessonRequest, error) {
	req := lessons.LessonRequest{
		ClassLevel:          o.class,
		EnrichmentModuleIDs: o.modules,
		PersonaID:           o.persona,
		Language:            lessons.ParseLanguage(strings.ToLower(o.language)),
	}
	if o.upload {
		req.Shape = lessons.ShapeUpload
	}

	curriculum := o.chapter != "" || o.topic != "" || o.subject != ""
	sources := 0
	for _, set := range []bool{o.text != "", o.file != "", o.audio != "", curriculum} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return req, errSourceConflict
	}

	switch {
	case o.text != "":
		req.Source = lessons.FreeText{Text: o.text}
	case o.file != "":
		text, err := intake.ExtractTextFromDocument(ctx, o.file)
		if err != nil {
			return req, fmt.Errorf("read document: %w", err)
		}
		req.Source = lessons.Extracted{Text: text, Kind: lessons.ExtractionUpload}
	case o.audio != "":
		text, err := intake.TranscribeAudio(ctx, o.audio)
		if err != nil {
			return req, fmt.Errorf("read audio: %w", err)
		}
		req.Source = lessons.Extracted{Text: text, Kind: lessons.ExtractionAudio}
	case curriculum:
		req.Source = lessons.CurriculumRef{
			ClassLevel: o.class,
			Subject:    o.subject,
			Chapter:    o.chapter,
			Topic:      o.topic,
		}
	}
	return req, nil
}

// viewPack opens the interactive viewer on pack. Esc at the root does
// nothing, so the viewer is left with Ctrl+C.
func viewPack(ctx context.Context, env *appEnv, stderr io.Writer, gen compose.Generator, pack lessons.LessonPack, personaID string) error {
	opts, release := env.appOptions(ctx, stderr, gen)
	defer release()

	opts.Root = packview.New(pack, catalog.ResolvePersona(personaID), opts.Deps.Narration, opts.Deps.LanguageCode)
	return app.Run(opts)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

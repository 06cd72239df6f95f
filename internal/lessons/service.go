package lessons

import (
	"context"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/asmanlearning/asman/internal/llm"
	"github.com/asmanlearning/asman/internal/logger"
)

var tracer = otel.Tracer("github.com/asmanlearning/asman/internal/lessons")

// Service runs the lesson pack pipeline: normalize, prompt, request,
// parse, and fall back to a synthesized pack when the backend fails.
// It holds no per-call state, so concurrent calls are independent.
type Service struct {
	client *CompletionClient
	log    *logger.Logger
}

// NewService creates a lesson pack service.
func NewService(provider llm.Provider, cfg Config, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		client: NewCompletionClient(provider, cfg),
		log:    log,
	}
}

// GenerateLessonPack produces a pack for req. The only error it returns is
// ErrEmptyContent; every backend or parse failure yields a fallback pack.
func (s *Service) GenerateLessonPack(ctx context.Context, req LessonRequest) (LessonPack, error) {
	if req.Shape == "" {
		req.Shape = ShapeTeacher
	}
	return s.generate(ctx, req)
}

// GenerateUploadPack is GenerateLessonPack for the simple upload shape.
func (s *Service) GenerateUploadPack(ctx context.Context, req LessonRequest) (LessonPack, error) {
	req.Shape = ShapeUpload
	return s.generate(ctx, req)
}

func (s *Service) generate(ctx context.Context, req LessonRequest) (LessonPack, error) {
	requestID := ulid.Make().String()
	log := s.log.With("request_id", requestID)
	ctx = llm.WithRequestID(ctx, requestID)

	ctx, span := tracer.Start(ctx, "lessons.generate",
		trace.WithAttributes(
			attribute.String("request_id", requestID),
			attribute.String("shape", string(req.Shape)),
		),
	)
	defer span.End()

	in, err := s.normalize(ctx, req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Debug("lesson request rejected", "error", err)
		return LessonPack{}, err
	}
	log = log.With("class", in.ClassLevel, "age_band", in.AgeBand, "modules", len(in.EnrichmentModules))

	prompt := BuildPrompt(in)

	result := s.request(ctx, prompt)
	if !result.OK() {
		return s.fallback(ctx, log, in, result.Failure), nil
	}

	pack, err := s.parse(ctx, result.Text)
	if err != nil {
		return s.fallback(ctx, log, in, err), nil
	}

	log.Info("lesson pack generated",
		"title", pack.Title,
		"qa", len(pack.QA),
		"output_tokens", result.Usage.OutputTokens,
	)
	return pack, nil
}

func (s *Service) normalize(ctx context.Context, req LessonRequest) (NormalizedInput, error) {
	_, span := tracer.Start(ctx, "lessons.normalize")
	defer span.End()
	return Normalize(req)
}

func (s *Service) request(ctx context.Context, prompt string) CompletionResult {
	ctx, span := tracer.Start(ctx, "lessons.request",
		trace.WithAttributes(attribute.Int("prompt_chars", len(prompt))),
	)
	defer span.End()

	result := s.client.RequestCompletion(ctx, prompt)
	if !result.OK() {
		span.SetAttributes(attribute.String("failure", string(result.Failure.Kind)))
		span.SetStatus(codes.Error, result.Failure.Error())
	}
	return result
}

func (s *Service) parse(ctx context.Context, text string) (LessonPack, error) {
	_, span := tracer.Start(ctx, "lessons.parse")
	defer span.End()

	pack, err := ParseAndValidate(text)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return pack, err
}

func (s *Service) fallback(ctx context.Context, log *logger.Logger, in NormalizedInput, cause error) LessonPack {
	reason := FallbackReason(cause)
	_, span := tracer.Start(ctx, "lessons.fallback",
		trace.WithAttributes(attribute.String("reason", reason)),
	)
	defer span.End()

	log.Warn("using fallback lesson pack", "reason", reason, "error", cause)

	pack := SynthesizeFallback(in)
	pack.FallbackReason = reason
	pack.FacilitatorNotes = "Prepared offline because " + DescribeFallback(reason) + ". " + pack.FacilitatorNotes
	return pack
}

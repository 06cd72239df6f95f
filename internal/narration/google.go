package narration

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	texttospeechpb "cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"
)

// speechClient is the part of the Cloud TTS client the synthesizer uses.
type speechClient interface {
	SynthesizeSpeech(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest, opts ...gax.CallOption) (*texttospeechpb.SynthesizeSpeechResponse, error)
	Close() error
}

// GoogleSynthesizer synthesizes MP3 audio with Google Cloud Text-to-Speech.
type GoogleSynthesizer struct {
	client    speechClient
	voiceName string
}

// NewGoogleSynthesizer creates a Cloud TTS client using application
// default credentials. voiceName may be empty to let the service choose a
// voice for the language.
func NewGoogleSynthesizer(ctx context.Context, voiceName string, opts ...option.ClientOption) (*GoogleSynthesizer, error) {
	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create Google TTS client: %w", err)
	}
	return &GoogleSynthesizer{client: client, voiceName: voiceName}, nil
}

func (g *GoogleSynthesizer) Name() string { return "google" }

func (g *GoogleSynthesizer) Synthesize(ctx context.Context, text string, voice Voice) ([]byte, error) {
	resp, err := g.client.SynthesizeSpeech(ctx, synthesizeRequest(text, voice, g.voiceName))
	if err != nil {
		return nil, fmt.Errorf("Google TTS synthesize: %w", err)
	}
	return resp.AudioContent, nil
}

func (g *GoogleSynthesizer) Close() error { return g.client.Close() }

func synthesizeRequest(text string, voice Voice, voiceName string) *texttospeechpb.SynthesizeSpeechRequest {
	return &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: voice.LanguageCode,
			Name:         voiceName,
		},
		AudioConfig: audioConfig(voice),
	}
}

// audioConfig maps persona multipliers onto Cloud TTS units: speaking rate
// is already a multiplier, pitch is in semitones (one per 0.1 of pitch).
func audioConfig(voice Voice) *texttospeechpb.AudioConfig {
	cfg := &texttospeechpb.AudioConfig{
		AudioEncoding: texttospeechpb.AudioEncoding_MP3,
	}
	if voice.SpeakingRate != 0 {
		cfg.SpeakingRate = voice.SpeakingRate
	}
	if voice.Pitch != 0 {
		cfg.Pitch = (voice.Pitch - 1) * 10
	}
	return cfg
}

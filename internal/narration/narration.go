// Package narration speaks lesson text through a text-to-speech backend.
// A Service is injected into the UI; lesson generation never uses it.
package narration

import (
	"context"
	"errors"

	"github.com/asmanlearning/asman/internal/catalog"
)

var (
	// ErrNothingToSay is returned when text is empty once visual cues are
	// removed.
	ErrNothingToSay = errors.New("nothing to narrate")

	// ErrUnknownHandle is returned for handles a service never issued.
	ErrUnknownHandle = errors.New("unknown narration handle")
)

// Handle identifies one Speak call.
type Handle string

// Voice selects how text is spoken.
type Voice struct {
	Name         string
	LanguageCode string
	// SpeakingRate is a multiplier where 1.0 is normal speed.
	SpeakingRate float64
	// Pitch is a multiplier where 1.0 is the natural pitch of the voice.
	Pitch float64
}

// Service speaks text asynchronously.
type Service interface {
	// Speak starts narrating text and returns immediately. Starting a new
	// narration cancels the one in progress.
	Speak(ctx context.Context, text string, voice Voice) (Handle, error)
	// Cancel stops a narration. Cancelling a finished narration is a no-op.
	Cancel(h Handle) error
	// Wait blocks until the narration finishes and returns its error.
	Wait(h Handle) error
}

// VoiceFor builds the voice for a persona.
func VoiceFor(p catalog.Persona, languageCode string) Voice {
	if languageCode == "" {
		languageCode = "en-IN"
	}
	return Voice{
		Name:         p.Name,
		LanguageCode: languageCode,
		SpeakingRate: p.SpeakingRate,
		Pitch:        p.Pitch,
	}
}

package packview

import "github.com/asmanlearning/asman/internal/narration"

// narrationDoneMsg is sent when a narration finishes, fails or is stopped.
type narrationDoneMsg struct {
	Handle narration.Handle
	Err    error
}

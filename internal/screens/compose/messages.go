package compose

import (
	"time"

	"github.com/asmanlearning/asman/internal/lessons"
)

// packReadyMsg is sent when generation finishes. Err is set only for
// requests that could not be generated at all (empty content, unreadable
// file); backend failures arrive as fallback packs.
type packReadyMsg struct {
	Pack lessons.LessonPack
	Err  error
}

// spinnerTickMsg animates the loading spinner while generating.
type spinnerTickMsg time.Time

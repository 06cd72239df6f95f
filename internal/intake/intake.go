// Package intake turns uploaded files and recordings into lesson text.
// Text files and PDF text layers are read for real; images, scanned PDFs
// and audio return placeholder text because OCR and speech recognition are
// not performed.
package intake

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MaxFileSize is the largest file accepted (25 MB).
const MaxFileSize = 25 * 1024 * 1024

// ErrTooLarge is returned for files over MaxFileSize.
var ErrTooLarge = errors.New("file too large")

// Kind is the detected type of an input file.
type Kind string

const (
	KindText  Kind = "text"
	KindPDF   Kind = "pdf"
	KindImage Kind = "image"
	KindAudio Kind = "audio"
	KindOther Kind = "other"
)

var kindsByExt = map[string]Kind{
	".txt":  KindText,
	".md":   KindText,
	".text": KindText,
	".pdf":  KindPDF,
	".png":  KindImage,
	".jpg":  KindImage,
	".jpeg": KindImage,
	".gif":  KindImage,
	".webp": KindImage,
	".mp3":  KindAudio,
	".wav":  KindAudio,
	".m4a":  KindAudio,
	".ogg":  KindAudio,
	".webm": KindAudio,
}

// DetectKind classifies a path by its extension.
func DetectKind(path string) Kind {
	if k, ok := kindsByExt[strings.ToLower(filepath.Ext(path))]; ok {
		return k
	}
	return KindOther
}

// ExtractTextFromDocument returns best-effort text for an uploaded file.
func ExtractTextFromDocument(ctx context.Context, path string) (string, error) {
	if err := validateFile(path); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch DetectKind(path) {
	case KindText:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return strings.TrimSpace(string(data)), nil
	case KindPDF:
		text, err := readPDFText(path)
		if err != nil {
			return "", err
		}
		if text == "" {
			// Scanned or image-only PDF.
			return documentPlaceholder(path), nil
		}
		return text, nil
	default:
		return documentPlaceholder(path), nil
	}
}

// TranscribeAudio returns placeholder text for a voice recording.
func TranscribeAudio(ctx context.Context, path string) (string, error) {
	if err := validateFile(path); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return audioPlaceholder, nil
}

const audioPlaceholder = "This would contain the transcribed text from the audio recording."

func documentPlaceholder(path string) string {
	return fmt.Sprintf("Extracted text from %s. This would contain the actual text content from the uploaded image or PDF file.", filepath.Base(path))
}

func readPDFText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("could not read PDF %s: %w", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String()), nil
}

func validateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	if info.Size() > MaxFileSize {
		return fmt.Errorf("%s is %d MB, max %d MB: %w", path, info.Size()/(1024*1024), MaxFileSize/(1024*1024), ErrTooLarge)
	}
	return nil
}

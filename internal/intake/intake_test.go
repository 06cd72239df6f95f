package intake

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDetectKind(t *testing.T) {
	assert.Equal(t, KindText, DetectKind("notes.TXT"))
	assert.Equal(t, KindText, DetectKind("plan.md"))
	assert.Equal(t, KindPDF, DetectKind("/tmp/chapter.pdf"))
	assert.Equal(t, KindImage, DetectKind("board.jpeg"))
	assert.Equal(t, KindAudio, DetectKind("class.m4a"))
	assert.Equal(t, KindOther, DetectKind("lesson.docx"))
}

func TestExtractTextFromDocument_Text(t *testing.T) {
	path := writeFile(t, "water.txt", "\n  Water falls as rain.\n")
	text, err := ExtractTextFromDocument(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Water falls as rain.", text)
}

func TestExtractTextFromDocument_ImagePlaceholder(t *testing.T) {
	path := writeFile(t, "leaf.png", "\x89PNG")
	text, err := ExtractTextFromDocument(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Extracted text from leaf.png. This would contain the actual text content from the uploaded image or PDF file.", text)
}

func TestExtractTextFromDocument_CorruptPDF(t *testing.T) {
	path := writeFile(t, "broken.pdf", "not really a pdf")
	_, err := ExtractTextFromDocument(context.Background(), path)
	assert.Error(t, err)
}

func TestExtractTextFromDocument_Errors(t *testing.T) {
	_, err := ExtractTextFromDocument(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, err = ExtractTextFromDocument(context.Background(), t.TempDir())
	assert.ErrorContains(t, err, "is a directory")
}

func TestExtractTextFromDocument_TooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.txt")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(MaxFileSize+1))
	require.NoError(t, f.Close())

	_, err = ExtractTextFromDocument(context.Background(), path)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestExtractTextFromDocument_CanceledContext(t *testing.T) {
	path := writeFile(t, "a.txt", "text")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ExtractTextFromDocument(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTranscribeAudio(t *testing.T) {
	path := writeFile(t, "lesson.wav", "RIFF")
	text, err := TranscribeAudio(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, audioPlaceholder, text)

	_, err = TranscribeAudio(context.Background(), filepath.Join(t.TempDir(), "nope.wav"))
	assert.Error(t, err)
}

package lessons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_FreeTextTrimmed(t *testing.T) {
	in, err := Normalize(LessonRequest{
		Source:     FreeText{Text: "  Plants need sunlight.\n"},
		ClassLevel: "2",
	})
	require.NoError(t, err)
	assert.Equal(t, "Plants need sunlight.", in.Text)
	assert.Equal(t, "7-8", in.AgeBand)
	assert.Equal(t, ShapeTeacher, in.Shape)
	assert.Equal(t, LanguagePrimary, in.Language)
	assert.Empty(t, in.ExtractionKind)
}

func TestNormalize_EmptyContent(t *testing.T) {
	tests := []struct {
		name string
		req  LessonRequest
	}{
		{"no source", LessonRequest{}},
		{"whitespace free text", LessonRequest{Source: FreeText{Text: "   "}}},
		{"nil pointer source", LessonRequest{Source: (*FreeText)(nil)}},
		{"blank curriculum ref", LessonRequest{Source: CurriculumRef{ClassLevel: "3"}}},
		{"blank extracted text", LessonRequest{Source: Extracted{Text: "\n\t", Kind: ExtractionAudio}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.req)
			assert.ErrorIs(t, err, ErrEmptyContent)
		})
	}
}

func TestNormalize_CurriculumRef(t *testing.T) {
	in, err := Normalize(LessonRequest{
		Source: CurriculumRef{ClassLevel: "3", Subject: "science", Chapter: "Water", Topic: "Water Cycle"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Class 3 Environmental Science — Water: Water Cycle", in.Text)
	assert.Equal(t, "3", in.ClassLevel)
	assert.Equal(t, "science", in.Subject)
	assert.Equal(t, "8-9", in.AgeBand)
}

func TestNormalize_CurriculumRefUnknownSubjectVerbatim(t *testing.T) {
	in, err := Normalize(LessonRequest{
		Source:     &CurriculumRef{Subject: "Astronomy", Chapter: "Chapter 1", Topic: "Moon"},
		ClassLevel: "5",
	})
	require.NoError(t, err)
	assert.Equal(t, "Class 5 Astronomy — Chapter 1: Moon", in.Text)
}

func TestNormalize_CurriculumRefDropsEmptyParts(t *testing.T) {
	tests := []struct {
		ref  CurriculumRef
		want string
	}{
		{CurriculumRef{ClassLevel: "3", Subject: "science", Topic: "Water"}, "Class 3 Environmental Science — Water"},
		{CurriculumRef{ClassLevel: "3", Subject: "science", Chapter: "Water"}, "Class 3 Environmental Science — Water"},
		{CurriculumRef{ClassLevel: "4", Chapter: "Fractions", Topic: "Halves"}, "Class 4 — Fractions: Halves"},
		{CurriculumRef{Subject: "mathematics", Topic: "Shapes"}, "Mathematics — Shapes"},
		{CurriculumRef{Subject: "english"}, "English"},
	}
	for _, tt := range tests {
		in, err := Normalize(LessonRequest{Source: tt.ref})
		require.NoError(t, err)
		assert.Equal(t, tt.want, in.Text)
		assert.NotContains(t, in.Text, "  ")
	}
}

func TestNormalize_ExtractedPassesThrough(t *testing.T) {
	text := "  Extracted text from notes.pdf.  "
	in, err := Normalize(LessonRequest{Source: Extracted{Text: text, Kind: ExtractionUpload}})
	require.NoError(t, err)
	assert.Equal(t, text, in.Text)
	assert.Equal(t, ExtractionUpload, in.ExtractionKind)
}

func TestNormalize_UnknownClassUsesDefaultBand(t *testing.T) {
	in, err := Normalize(LessonRequest{Source: FreeText{Text: "x"}, ClassLevel: "12"})
	require.NoError(t, err)
	assert.Equal(t, "8-9", in.AgeBand)
}

func TestNormalize_ModuleResolutionIsOrderInsensitive(t *testing.T) {
	a, err := Normalize(LessonRequest{Source: FreeText{Text: "x"}, EnrichmentModuleIDs: []string{"europe", "china", "japan"}})
	require.NoError(t, err)
	b, err := Normalize(LessonRequest{Source: FreeText{Text: "x"}, EnrichmentModuleIDs: []string{"japan", "europe", "china", "japan"}})
	require.NoError(t, err)

	assert.Equal(t, a.EnrichmentModules, b.EnrichmentModules)
	require.Len(t, a.EnrichmentModules, 3)

	again, err := Normalize(LessonRequest{Source: FreeText{Text: "x"}, EnrichmentModuleIDs: []string{"europe", "china", "japan"}})
	require.NoError(t, err)
	assert.Equal(t, a, again)
}

func TestNormalize_UnknownModuleDropped(t *testing.T) {
	in, err := Normalize(LessonRequest{
		Source:              FreeText{Text: "x"},
		EnrichmentModuleIDs: []string{"usa", "not-a-module"},
	})
	require.NoError(t, err)
	require.Len(t, in.EnrichmentModules, 1)
	assert.Equal(t, "usa", in.EnrichmentModules[0].ID)
	assert.Equal(t, "US Focus", in.EnrichmentModules[0].Name)
}

func TestNormalize_PersonaDefault(t *testing.T) {
	in, err := Normalize(LessonRequest{Source: FreeText{Text: "x"}, PersonaID: "robot"})
	require.NoError(t, err)
	assert.Equal(t, "friendly_teacher", in.Persona.ID)

	in, err = Normalize(LessonRequest{Source: FreeText{Text: "x"}, PersonaID: "curious_explorer"})
	require.NoError(t, err)
	assert.Equal(t, "Arjun", in.Persona.Name)
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, LanguagePrimary, ParseLanguage(""))
	assert.Equal(t, LanguagePrimary, ParseLanguage("english"))
	assert.Equal(t, LanguagePrimary, ParseLanguage("klingon"))
	assert.Equal(t, LanguageSecondary, ParseLanguage("hindi"))
	assert.Equal(t, LanguageBilingual, ParseLanguage("bilingual"))
}

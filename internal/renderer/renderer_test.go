package renderer

import (
	"strings"
	"testing"

	"github.com/framecraft/promptdeck/internal/models"
)

func testLookup() TokenLookup {
	tokens := map[string]models.Token{
		"shotSize": {ID: "shotSize", Name: "shotSize", Label: "Shot Size", Rule: models.IncludeAlways, Placeholder: "{shotSize}"},
		"subject":  {ID: "subject", Name: "subject", Label: "Subject", Rule: models.IncludeAlways},
		"setting":  {ID: "setting", Name: "setting", Label: "Setting", Rule: models.IncludeOptional},
	}
	return func(id string) (models.Token, bool) {
		t, ok := tokens[id]
		return t, ok
	}
}

func TestFormatString(t *testing.T) {
	tmpl := models.Template{
		Slots: []models.Slot{
			{ID: "s1", TokenID: "shotSize", Suffix: " of "},
			{ID: "s2", TokenID: "subject"},
			{ID: "s3", TokenID: "setting", ConditionalPrefix: " in "},
		},
	}

	got := FormatString(tmpl, testLookup())
	want := "{shotSize} of {subject} in {setting}"
	if got != want {
		t.Errorf("FormatString = %q, want %q", got, want)
	}
}

func TestFormatStringSkipsDanglingSlots(t *testing.T) {
	tmpl := models.Template{
		Slots: []models.Slot{
			{ID: "s1", TokenID: "subject"},
			{ID: "s2", TokenID: "deleted", Prefix: ", "},
		},
	}

	if got := FormatString(tmpl, testLookup()); got != "{subject}" {
		t.Errorf("expected dangling slot skipped, got %q", got)
	}
}

func TestFormatStringEmptyTemplate(t *testing.T) {
	if got := FormatString(models.Template{}, testLookup()); got != "" {
		t.Errorf("expected empty format string, got %q", got)
	}
}

func TestMarkdownSummary(t *testing.T) {
	tmpl := models.Template{
		ID:       "shot",
		ModuleID: "video",
		Name:     "Cinematic Shot",
		Slots: []models.Slot{
			{ID: "s1", TokenID: "shotSize", Suffix: " of "},
			{ID: "s2", TokenID: "subject"},
		},
		BannedTerms: []string{"blurry", "lowres"},
	}

	md := MarkdownSummary(tmpl, testLookup())

	for _, want := range []string{
		"# Cinematic Shot",
		"Module: `video`",
		"Format: `{shotSize} of {subject}`",
		"| 1 | Shot Size | always |",
		"Banned terms: blurry, lowres",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("summary missing %q:\n%s", want, md)
		}
	}
}

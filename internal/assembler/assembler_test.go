package assembler

import (
	"reflect"
	"strings"
	"testing"

	"github.com/framecraft/promptdeck/internal/models"
)

func testTokens() []models.Token {
	return []models.Token{
		{
			ID: "shotSize", Name: "shotSize", Label: "Shot Size",
			Category: models.CategoryCinematography, Rule: models.IncludeAlways,
			Options: []models.TokenOption{
				{Value: "CU", Label: "Close-up"},
				{Value: "MS", Label: "Medium shot"},
				{Value: "WS", Label: "Wide shot"},
			},
			DefaultValue: "MS",
		},
		{
			ID: "subject", Name: "subject", Label: "Subject",
			Category: models.CategoryContent, Rule: models.IncludeAlways,
			AllowCustom: true, Required: true,
		},
		{
			ID: "lighting", Name: "lighting", Label: "Lighting",
			Category: models.CategoryVisualLook, Rule: models.IncludeOptional,
		},
		{
			ID: "artStyle", Name: "artStyle", Label: "Art Style",
			Category: models.CategoryVisualLook, Rule: models.IncludeNoStyle,
		},
		{ID: models.TokenStylePrefix, Name: "stylePrefix", Rule: models.IncludeSeparate},
		{ID: models.TokenStylePrompt, Name: "stylePrompt", Rule: models.IncludeSeparate},
		{ID: models.TokenStyleSuffix, Name: "styleSuffix", Rule: models.IncludeSeparate},
		{ID: models.TokenCameraMovement, Name: "cameraMovement", Rule: models.IncludeAdditive, DefaultValue: "static"},
		{ID: models.TokenSubjectMotion, Name: "subjectMotion", Rule: models.IncludeAdditive, DefaultValue: "static"},
		{ID: models.TokenDialog, Name: "dialog", Rule: models.IncludeAdditive, DefaultValue: "none"},
		{ID: models.TokenAmbient, Name: "ambient", Rule: models.IncludeAdditive, DefaultValue: "silence"},
		{ID: models.TokenMusic, Name: "music", Rule: models.IncludeAdditive, DefaultValue: "none"},
	}
}

func testTemplate() models.Template {
	return models.Template{
		ID:       "test-shot",
		ModuleID: "video",
		Name:     "Test Shot",
		Slots: []models.Slot{
			{ID: "s1", TokenID: "shotSize", Suffix: " of "},
			{ID: "s2", TokenID: "subject"},
			{ID: "s3", TokenID: "lighting", ConditionalPrefix: ", "},
			{ID: "s4", TokenID: "artStyle", ConditionalPrefix: ", "},
		},
	}
}

func TestBuildPromptTrailingSeparatorCleaned(t *testing.T) {
	a := New([]models.Token{
		{ID: "color", Name: "color", Rule: models.IncludeAlways},
		{ID: "extra", Name: "extra", Rule: models.IncludeOptional},
	}, nil)

	tmpl := models.Template{
		ID: "t",
		Slots: []models.Slot{
			{ID: "s1", TokenID: "color", Suffix: ", "},
			{ID: "s2", TokenID: "extra"},
		},
	}
	result := a.BuildPrompt(tmpl, []models.Selection{
		{TokenID: "color", Value: "red"},
	}, false)

	if result.Base != "red" {
		t.Errorf("expected trailing separator stripped, got %q", result.Base)
	}
}

func TestBuildPromptBannedTermWarning(t *testing.T) {
	a := New(testTokens(), nil)

	tmpl := testTemplate()
	tmpl.BannedTerms = []string{"ugly"}

	result := a.BuildPrompt(tmpl, []models.Selection{
		{TokenID: "shotSize", Value: "MS"},
		{TokenID: "subject", CustomValue: "an ugly dog"},
	}, false)

	if result.Base != "medium shot of an dog" {
		t.Errorf("expected banned term removed and spacing cleaned, got %q", result.Base)
	}
	want := []string{"Removed banned terms: ugly"}
	if !reflect.DeepEqual(result.Warnings, want) {
		t.Errorf("expected warnings %v, got %v", want, result.Warnings)
	}
}

func TestBuildPromptStyleComposition(t *testing.T) {
	a := New(testTokens(), nil)

	tmpl := models.Template{
		ID:    "t",
		Slots: []models.Slot{{ID: "s1", TokenID: "subject"}},
	}
	selections := []models.Selection{
		{TokenID: "subject", CustomValue: "red car"},
		{TokenID: models.TokenStylePrefix, Value: "cinematic"},
		{TokenID: models.TokenStylePrompt, Value: "in the style of X"},
	}

	result := a.BuildPrompt(tmpl, selections, true)
	if result.Full != "cinematic red car in the style of X" {
		t.Errorf("expected style channels folded around base, got %q", result.Full)
	}
	if result.Base != "red car" {
		t.Errorf("base must stay style-free, got %q", result.Base)
	}

	// Same selections without an active style: full equals base, but the
	// style channel values are still reported on the result.
	result = a.BuildPrompt(tmpl, selections, false)
	if result.Full != "red car" {
		t.Errorf("expected full == base without style, got %q", result.Full)
	}
	if result.Style.Prefix != "cinematic" || result.Style.Prompt != "in the style of X" {
		t.Errorf("style channel should carry the selected values, got %+v", result.Style)
	}
}

func TestBuildPromptConditionalOnNoStyle(t *testing.T) {
	a := New(testTokens(), nil)
	tmpl := testTemplate()
	selections := []models.Selection{
		{TokenID: "subject", CustomValue: "a lighthouse"},
		{TokenID: "artStyle", Value: "oil-painting"},
	}

	result := a.BuildPrompt(tmpl, selections, false)
	if result.Base != "medium shot of a lighthouse, oil painting" {
		t.Errorf("art style should appear when no style is active, got %q", result.Base)
	}

	result = a.BuildPrompt(tmpl, selections, true)
	if result.Base != "medium shot of a lighthouse" {
		t.Errorf("art style must drop out when a style is active, got %q", result.Base)
	}
}

func TestBuildPromptOptionalRule(t *testing.T) {
	a := New(testTokens(), nil)
	tmpl := testTemplate()

	base := []models.Selection{{TokenID: "subject", CustomValue: "a fox"}}

	result := a.BuildPrompt(tmpl, base, false)
	if strings.Contains(result.Base, ",") {
		t.Errorf("unselected optional slot must contribute nothing, got %q", result.Base)
	}

	result = a.BuildPrompt(tmpl, append(base, models.Selection{TokenID: "lighting", Value: "none"}), false)
	if strings.Contains(result.Base, "none") {
		t.Errorf("optional slot with value none must be excluded, got %q", result.Base)
	}

	result = a.BuildPrompt(tmpl, append(base, models.Selection{TokenID: "lighting", Value: "golden-hour"}), false)
	if result.Base != "medium shot of a fox, golden hour" {
		t.Errorf("optional slot with a real value must be included, got %q", result.Base)
	}
}

func TestBuildPromptSkipsDanglingSlots(t *testing.T) {
	a := New(testTokens(), nil)

	tmpl := models.Template{
		ID: "t",
		Slots: []models.Slot{
			{ID: "s1", TokenID: "subject"},
			{ID: "s2", TokenID: "deleted-token", Prefix: ", "},
		},
	}
	result := a.BuildPrompt(tmpl, []models.Selection{
		{TokenID: "subject", CustomValue: "a fox"},
	}, false)

	if result.Base != "a fox" {
		t.Errorf("dangling slot must be skipped, got %q", result.Base)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("dangling slot must not warn, got %v", result.Warnings)
	}
}

func TestBuildPromptSelectionPrecedence(t *testing.T) {
	a := New(testTokens(), nil)
	tmpl := models.Template{ID: "t", Slots: []models.Slot{{ID: "s1", TokenID: "shotSize"}}}

	// No selection: token default applies.
	result := a.BuildPrompt(tmpl, nil, false)
	if result.Base != "medium shot" {
		t.Errorf("expected default value, got %q", result.Base)
	}

	// Explicit value beats the default.
	result = a.BuildPrompt(tmpl, []models.Selection{{TokenID: "shotSize", Value: "WS"}}, false)
	if result.Base != "wide shot" {
		t.Errorf("expected selected value, got %q", result.Base)
	}

	// Custom value beats both.
	result = a.BuildPrompt(tmpl, []models.Selection{
		{TokenID: "shotSize", Value: "WS", CustomValue: "dutch angle"},
	}, false)
	if result.Base != "dutch angle" {
		t.Errorf("expected custom value to win, got %q", result.Base)
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	a := New(testTokens(), []string{"lowres"})
	tmpl := testTemplate()
	selections := []models.Selection{
		{TokenID: "subject", CustomValue: "a fox in lowres fog"},
		{TokenID: "lighting", Value: "moonlight"},
	}

	first := a.BuildPrompt(tmpl, selections, true)
	for i := 0; i < 5; i++ {
		if got := a.BuildPrompt(tmpl, selections, true); !reflect.DeepEqual(got, first) {
			t.Fatalf("identical inputs produced different results: %+v vs %+v", got, first)
		}
	}
}

func TestMotionChannel(t *testing.T) {
	a := New(testTokens(), nil)
	tmpl := models.Template{ID: "t", Slots: []models.Slot{{ID: "s1", TokenID: "subject"}}}

	// Static camera suppresses the whole channel, even with subject motion.
	result := a.BuildPrompt(tmpl, []models.Selection{
		{TokenID: "subject", CustomValue: "a fox"},
		{TokenID: models.TokenCameraMovement, Value: "static"},
		{TokenID: models.TokenSubjectMotion, Value: "running"},
	}, false)
	if result.Motion != nil {
		t.Errorf("static camera must yield no motion channel, got %+v", result.Motion)
	}

	// No motion selections at all: channel absent, defaults do not apply.
	result = a.BuildPrompt(tmpl, []models.Selection{
		{TokenID: "subject", CustomValue: "a fox"},
	}, false)
	if result.Motion != nil {
		t.Errorf("expected no motion channel without selections, got %+v", result.Motion)
	}

	result = a.BuildPrompt(tmpl, []models.Selection{
		{TokenID: "subject", CustomValue: "a fox"},
		{TokenID: models.TokenCameraMovement, Value: "slow pan"},
		{TokenID: models.TokenSubjectMotion, Value: "running"},
	}, false)
	if result.Motion == nil {
		t.Fatal("expected motion channel")
	}
	if result.Motion.CameraMovement != "slow pan" || result.Motion.SubjectMotion != "running" {
		t.Errorf("unexpected motion channel %+v", result.Motion)
	}

	got := a.BuildMotionPrompt(result.Base, result.Motion)
	if got != "slow pan: a fox, running" {
		t.Errorf("unexpected motion prompt %q", got)
	}
	if got := a.BuildMotionPrompt("a fox", nil); got != "a fox" {
		t.Errorf("nil motion must leave the base untouched, got %q", got)
	}
}

func TestAudioChannel(t *testing.T) {
	a := New(testTokens(), nil)
	tmpl := models.Template{ID: "t", Slots: []models.Slot{{ID: "s1", TokenID: "subject"}}}

	// All sentinel values: channel absent.
	result := a.BuildPrompt(tmpl, []models.Selection{
		{TokenID: "subject", CustomValue: "a fox"},
		{TokenID: models.TokenDialog, Value: "none"},
		{TokenID: models.TokenAmbient, Value: "silence"},
		{TokenID: models.TokenMusic, Value: "none"},
	}, false)
	if result.Audio != nil {
		t.Errorf("all-sentinel audio must yield no channel, got %+v", result.Audio)
	}

	result = a.BuildPrompt(tmpl, []models.Selection{
		{TokenID: "subject", CustomValue: "a fox"},
		{TokenID: models.TokenDialog, Value: "none"},
		{TokenID: models.TokenAmbient, Value: "wind through trees"},
	}, false)
	if result.Audio == nil {
		t.Fatal("expected audio channel")
	}
	if result.Audio.Ambient != "wind through trees" || result.Audio.Dialog != "" {
		t.Errorf("unexpected audio channel %+v", result.Audio)
	}
}

func TestValidateSelections(t *testing.T) {
	a := New(testTokens(), nil)
	tmpl := testTemplate()

	result := a.ValidateSelections(tmpl, nil)
	if result.Valid {
		t.Error("expected invalid result with required token unselected")
	}
	want := []string{"Subject is required"}
	if !reflect.DeepEqual(result.Errors, want) {
		t.Errorf("expected errors %v, got %v", want, result.Errors)
	}

	result = a.ValidateSelections(tmpl, []models.Selection{
		{TokenID: "subject", CustomValue: "a fox"},
	})
	if !result.Valid || len(result.Errors) != 0 {
		t.Errorf("expected valid result, got %+v", result)
	}
}

func TestShotAbbreviationExpansion(t *testing.T) {
	a := New(testTokens(), nil)
	tmpl := models.Template{ID: "t", Slots: []models.Slot{{ID: "s1", TokenID: "shotSize"}}}

	result := a.BuildPrompt(tmpl, []models.Selection{{TokenID: "shotSize", Value: "CU"}}, false)
	if result.Base != "close-up" {
		t.Errorf("expected abbreviation expanded, got %q", result.Base)
	}

	// A custom value is not an option, so it is not treated as an abbreviation.
	result = a.BuildPrompt(tmpl, []models.Selection{{TokenID: "shotSize", CustomValue: "low-angle"}}, false)
	if result.Base != "low angle" {
		t.Errorf("expected hyphens replaced for custom value, got %q", result.Base)
	}
}

func TestBuildPreview(t *testing.T) {
	a := New(testTokens(), nil)
	tmpl := testTemplate()

	got := a.BuildPreview(tmpl, false)
	if got != "medium shot of" && !strings.HasPrefix(got, "medium shot") {
		t.Errorf("preview should resolve defaults, got %q", got)
	}
}

func TestTruncateForDelivery(t *testing.T) {
	short := strings.Repeat("a", MaxDeliveryLength)
	if got := TruncateForDelivery(short); got != short {
		t.Errorf("text at the limit must pass through unchanged")
	}

	long := strings.Repeat("a", MaxDeliveryLength+50)
	got := TruncateForDelivery(long)
	if len(got) != MaxDeliveryLength {
		t.Errorf("expected truncated length %d, got %d", MaxDeliveryLength, len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated text must end with an ellipsis, got %q", got[len(got)-10:])
	}
}

package filter

import (
	"reflect"
	"testing"
)

func TestApplyRemovesWholeWords(t *testing.T) {
	f := New([]string{"watermark", "lowres"})

	got, removed := f.Apply("a city street, watermark, neon signs")
	if got != "a city street, neon signs" {
		t.Errorf("expected cleaned text, got %q", got)
	}
	if !reflect.DeepEqual(removed, []string{"watermark"}) {
		t.Errorf("expected removed [watermark], got %v", removed)
	}
}

func TestApplyIsCaseInsensitive(t *testing.T) {
	f := New([]string{"Watermark"})

	got, removed := f.Apply("WATERMARK over the scene")
	if got != "over the scene" {
		t.Errorf("expected term removed regardless of case, got %q", got)
	}
	if len(removed) != 1 || removed[0] != "watermark" {
		t.Errorf("removed terms should report the normalized form, got %v", removed)
	}
}

func TestApplyDoesNotMatchSubstrings(t *testing.T) {
	f := New([]string{"res"})

	got, removed := f.Apply("high resolution forest")
	if got != "high resolution forest" {
		t.Errorf("substring of a longer word must not match, got %q", got)
	}
	if removed != nil {
		t.Errorf("expected no removals, got %v", removed)
	}
}

func TestApplyReportsEachTermOnce(t *testing.T) {
	f := New([]string{"blurry"})

	got, removed := f.Apply("blurry foreground, blurry background")
	if got != "foreground, background" {
		t.Errorf("expected both occurrences removed, got %q", got)
	}
	if len(removed) != 1 {
		t.Errorf("a term should be named once however often it matched, got %v", removed)
	}
}

func TestApplyMultiWordTerm(t *testing.T) {
	f := New([]string{"jpeg artifacts"})

	got, removed := f.Apply("soft light, jpeg artifacts, grain")
	if got != "soft light, grain" {
		t.Errorf("expected multi-word term removed, got %q", got)
	}
	if len(removed) != 1 || removed[0] != "jpeg artifacts" {
		t.Errorf("expected removed [jpeg artifacts], got %v", removed)
	}
}

func TestApplyEmptyInputs(t *testing.T) {
	f := New(nil)
	if got, removed := f.Apply("unchanged text"); got != "unchanged text" || removed != nil {
		t.Errorf("no terms means no change, got %q %v", got, removed)
	}

	f = New([]string{"watermark"})
	if got, removed := f.Apply(""); got != "" || removed != nil {
		t.Errorf("empty text stays empty, got %q %v", got, removed)
	}
}

func TestSetTermsNormalizes(t *testing.T) {
	f := New([]string{"  Watermark ", "", "LOWRES"})

	want := []string{"watermark", "lowres"}
	if got := f.Terms(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected normalized terms %v, got %v", want, got)
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"repeated commas", "a,, b,,, c", "a, b, c"},
		{"repeated spaces", "a   b\t c", "a b c"},
		{"edge commas", ", a, b ,", "a, b"},
		{"comma with spaces between", "a, , b", "a, b"},
		{"only separators", " , ,, ", ""},
		{"already clean", "a man walks, slow pan", "a man walks, slow pan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
			// Clean must be idempotent
			if again := Clean(got); again != got {
				t.Errorf("Clean not idempotent: %q -> %q", got, again)
			}
		})
	}
}

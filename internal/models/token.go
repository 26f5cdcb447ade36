package models

import "strings"

// TokenCategory groups tokens for filtering in editors. It is a pure
// grouping tag and carries no assembly behavior.
type TokenCategory string

const (
	CategoryCinematography TokenCategory = "cinematography"
	CategoryContent        TokenCategory = "content"
	CategoryVisualLook     TokenCategory = "visualLook"
	CategoryMotion         TokenCategory = "motion"
	CategoryAudio          TokenCategory = "audio"
	CategoryStyle          TokenCategory = "style"
	CategoryMusicLab       TokenCategory = "musicLab"
	CategoryStorybook      TokenCategory = "storybook"
)

// AllCategories lists every valid token category in display order.
func AllCategories() []TokenCategory {
	return []TokenCategory{
		CategoryCinematography,
		CategoryContent,
		CategoryVisualLook,
		CategoryMotion,
		CategoryAudio,
		CategoryStyle,
		CategoryMusicLab,
		CategoryStorybook,
	}
}

// InclusionRule governs whether and when a token's slot contributes to the
// assembled base prompt.
type InclusionRule string

const (
	// IncludeAlways includes the slot unconditionally.
	IncludeAlways InclusionRule = "always"
	// IncludeNoStyle includes the slot only when no separate style is active.
	IncludeNoStyle InclusionRule = "conditionalOnNoStyle"
	// IncludeSeparate never contributes to the base prompt; the value is
	// carried on the style channel instead.
	IncludeSeparate InclusionRule = "separate"
	// IncludeAdditive never contributes to the base prompt; the value is
	// carried on the motion or audio channel instead.
	IncludeAdditive InclusionRule = "additive"
	// IncludeOptional includes the slot only when its value is non-empty and
	// not the literal "none".
	IncludeOptional InclusionRule = "optional"
)

// Reserved channel token ids. Selections for these tokens are pulled out of
// the selection set before the slot loop and are never processed as
// ordinary slots, even if a slot references them.
const (
	TokenStylePrefix    = "stylePrefix"
	TokenStylePrompt    = "stylePrompt"
	TokenStyleSuffix    = "styleSuffix"
	TokenCameraMovement = "cameraMovement"
	TokenSubjectMotion  = "subjectMotion"
	TokenDialog         = "dialog"
	TokenVoiceover      = "voiceover"
	TokenAmbient        = "ambient"
	TokenMusic          = "music"
)

// TokenOption is one selectable value of a token.
type TokenOption struct {
	Value       string `yaml:"value" json:"value"`
	Label       string `yaml:"label" json:"label"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Token is a reusable prompt fragment definition.
type Token struct {
	ID           string        `yaml:"id" json:"id"`
	Name         string        `yaml:"name" json:"name"`
	Label        string        `yaml:"label" json:"label"`
	Category     TokenCategory `yaml:"category" json:"category"`
	Rule         InclusionRule `yaml:"inclusionRule" json:"inclusionRule"`
	Options      []TokenOption `yaml:"options,omitempty" json:"options,omitempty"`
	DefaultValue string        `yaml:"defaultValue,omitempty" json:"defaultValue,omitempty"`
	AllowCustom  bool          `yaml:"allowCustom,omitempty" json:"allowCustom,omitempty"`
	Required     bool          `yaml:"required,omitempty" json:"required,omitempty"`

	// Placeholder is the textual marker (e.g. "{shotSize}") used for
	// human-readable format-string previews only, never for assembly.
	Placeholder string `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
}

// HasOption reports whether value matches one of the token's options.
func (t Token) HasOption(value string) bool {
	for _, opt := range t.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// FirstOption returns the first option value, or "" when the token has none.
func (t Token) FirstOption() string {
	if len(t.Options) == 0 {
		return ""
	}
	return t.Options[0].Value
}

// Implement list.Item interface for bubbles list component

// FilterValue returns the value used for filtering in lists
func (t Token) FilterValue() string {
	return cleanString(t.Label + " " + t.Name)
}

// Title satisfies the list.Item interface
func (t Token) Title() string {
	if t.Label != "" {
		return cleanString(t.Label)
	}
	return cleanString(t.Name)
}

// Description satisfies the list.Item interface
func (t Token) Description() string {
	var parts []string

	if t.Category != "" {
		parts = append(parts, string(t.Category))
	}
	if t.Rule != "" {
		parts = append(parts, string(t.Rule))
	}
	if len(t.Options) > 0 {
		parts = append(parts, optionSummary(t.Options))
	}
	if t.Required {
		parts = append(parts, "required")
	}

	result := strings.Join(parts, " • ")

	// Keep within a list row; leave space for the indicator and margins
	maxTotalLength := 100
	if len(result) > maxTotalLength {
		result = result[:maxTotalLength-3] + "..."
	}

	return cleanString(result)
}

func optionSummary(options []TokenOption) string {
	if len(options) == 1 {
		return "1 option"
	}
	var b strings.Builder
	for i, opt := range options {
		if i == 3 {
			b.WriteString(", …")
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(opt.Value)
	}
	return b.String()
}

// cleanString removes problematic characters that might cause rendering issues
func cleanString(s string) string {
	if s == "" {
		return ""
	}

	// Remove any control characters, newlines, tabs that could break rendering
	cleaned := ""
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' {
			cleaned += " "
		} else if r >= 32 && r != 127 { // Keep printable ASCII + unicode
			cleaned += string(r)
		}
	}

	// Collapse multiple spaces
	for cleaned != strings.ReplaceAll(cleaned, "  ", " ") {
		cleaned = strings.ReplaceAll(cleaned, "  ", " ")
	}

	return strings.TrimSpace(cleaned)
}

// Package config holds the built-in default token and template catalog used
// on first run and by reset-to-defaults.
package config

import "github.com/framecraft/promptdeck/internal/models"

// DefaultConfig returns a fresh copy of the built-in config document.
func DefaultConfig() *models.Config {
	return &models.Config{
		Version:    models.ConfigVersion,
		Tokens:     DefaultTokens(),
		Templates:  DefaultTemplates(),
		Categories: DefaultCategories(),
	}
}

// DefaultCategories returns the category order shown by editors.
func DefaultCategories() []string {
	var out []string
	for _, c := range models.AllCategories() {
		out = append(out, string(c))
	}
	return out
}

// DefaultBannedTerms is the starting global banned-term list. Users extend
// it at runtime; it is not part of the persisted config document.
func DefaultBannedTerms() []string {
	return []string{"lowres", "watermark", "jpeg artifacts"}
}

// DefaultTokens returns the built-in token registry. Default ids are stable
// strings rather than generated ids so templates and selections can refer
// to them across installs.
func DefaultTokens() []*models.Token {
	return []*models.Token{
		{
			ID:       "shotSize",
			Name:     "shotSize",
			Label:    "Shot Size",
			Category: models.CategoryCinematography,
			Rule:     models.IncludeAlways,
			Options: []models.TokenOption{
				{Value: "ECU", Label: "Extreme close-up"},
				{Value: "BCU", Label: "Big close-up"},
				{Value: "CU", Label: "Close-up"},
				{Value: "MCU", Label: "Medium close-up"},
				{Value: "MS", Label: "Medium shot"},
				{Value: "MLS", Label: "Medium long shot"},
				{Value: "FS", Label: "Full shot"},
				{Value: "LS", Label: "Long shot"},
				{Value: "WS", Label: "Wide shot"},
				{Value: "EWS", Label: "Extreme wide shot"},
				{Value: "OTS", Label: "Over-the-shoulder"},
				{Value: "POV", Label: "Point of view"},
				{Value: "2S", Label: "Two shot"},
			},
			DefaultValue: "MS",
			Placeholder:  "{shotSize}",
		},
		{
			ID:           "subject",
			Name:         "subject",
			Label:        "Subject",
			Category:     models.CategoryContent,
			Rule:         models.IncludeAlways,
			AllowCustom:  true,
			Required:     true,
			Placeholder:  "{subject}",
		},
		{
			ID:          "setting",
			Name:        "setting",
			Label:       "Setting",
			Category:    models.CategoryContent,
			Rule:        models.IncludeOptional,
			AllowCustom: true,
			Placeholder: "{setting}",
		},
		{
			ID:       "lighting",
			Name:     "lighting",
			Label:    "Lighting",
			Category: models.CategoryVisualLook,
			Rule:     models.IncludeOptional,
			Options: []models.TokenOption{
				{Value: "golden-hour", Label: "Golden hour"},
				{Value: "overcast", Label: "Overcast"},
				{Value: "neon", Label: "Neon"},
				{Value: "candlelit", Label: "Candlelit"},
				{Value: "high-key", Label: "High key"},
				{Value: "low-key", Label: "Low key"},
			},
			AllowCustom: true,
			Placeholder: "{lighting}",
		},
		{
			ID:       "colorGrade",
			Name:     "colorGrade",
			Label:    "Color Grade",
			Category: models.CategoryVisualLook,
			Rule:     models.IncludeOptional,
			Options: []models.TokenOption{
				{Value: "teal-and-orange", Label: "Teal and orange"},
				{Value: "desaturated", Label: "Desaturated"},
				{Value: "technicolor", Label: "Technicolor"},
				{Value: "monochrome", Label: "Monochrome"},
			},
			Placeholder: "{colorGrade}",
		},
		{
			ID:       "artStyle",
			Name:     "artStyle",
			Label:    "Art Style",
			Category: models.CategoryStyle,
			Rule:     models.IncludeNoStyle,
			Options: []models.TokenOption{
				{Value: "photorealistic", Label: "Photorealistic"},
				{Value: "watercolor", Label: "Watercolor"},
				{Value: "oil-painting", Label: "Oil painting"},
				{Value: "line-art", Label: "Line art"},
			},
			DefaultValue: "photorealistic",
			AllowCustom:  true,
			Placeholder:  "{artStyle}",
		},
		{
			ID:          models.TokenStylePrefix,
			Name:        models.TokenStylePrefix,
			Label:       "Style Prefix",
			Category:    models.CategoryStyle,
			Rule:        models.IncludeSeparate,
			AllowCustom: true,
			Placeholder: "{stylePrefix}",
		},
		{
			ID:          models.TokenStylePrompt,
			Name:        models.TokenStylePrompt,
			Label:       "Style Prompt",
			Category:    models.CategoryStyle,
			Rule:        models.IncludeSeparate,
			AllowCustom: true,
			Placeholder: "{stylePrompt}",
		},
		{
			ID:          models.TokenStyleSuffix,
			Name:        models.TokenStyleSuffix,
			Label:       "Style Suffix",
			Category:    models.CategoryStyle,
			Rule:        models.IncludeSeparate,
			AllowCustom: true,
			Placeholder: "{styleSuffix}",
		},
		{
			ID:       models.TokenCameraMovement,
			Name:     models.TokenCameraMovement,
			Label:    "Camera Movement",
			Category: models.CategoryMotion,
			Rule:     models.IncludeAdditive,
			Options: []models.TokenOption{
				{Value: "static", Label: "Static"},
				{Value: "slow-pan", Label: "Slow pan"},
				{Value: "dolly-in", Label: "Dolly in"},
				{Value: "dolly-out", Label: "Dolly out"},
				{Value: "crane-up", Label: "Crane up"},
				{Value: "handheld", Label: "Handheld"},
				{Value: "orbit", Label: "Orbit"},
			},
			DefaultValue: "static",
			Placeholder:  "{cameraMovement}",
		},
		{
			ID:           models.TokenSubjectMotion,
			Name:         models.TokenSubjectMotion,
			Label:        "Subject Motion",
			Category:     models.CategoryMotion,
			Rule:         models.IncludeAdditive,
			AllowCustom:  true,
			DefaultValue: "static",
			Placeholder:  "{subjectMotion}",
		},
		{
			ID:           models.TokenDialog,
			Name:         models.TokenDialog,
			Label:        "Dialog",
			Category:     models.CategoryAudio,
			Rule:         models.IncludeAdditive,
			AllowCustom:  true,
			DefaultValue: "none",
			Placeholder:  "{dialog}",
		},
		{
			ID:           models.TokenVoiceover,
			Name:         models.TokenVoiceover,
			Label:        "Voiceover",
			Category:     models.CategoryAudio,
			Rule:         models.IncludeAdditive,
			AllowCustom:  true,
			DefaultValue: "none",
			Placeholder:  "{voiceover}",
		},
		{
			ID:           models.TokenAmbient,
			Name:         models.TokenAmbient,
			Label:        "Ambient Sound",
			Category:     models.CategoryAudio,
			Rule:         models.IncludeAdditive,
			AllowCustom:  true,
			DefaultValue: "silence",
			Placeholder:  "{ambient}",
		},
		{
			ID:       models.TokenMusic,
			Name:     models.TokenMusic,
			Label:    "Music",
			Category: models.CategoryAudio,
			Rule:     models.IncludeAdditive,
			Options: []models.TokenOption{
				{Value: "none", Label: "None"},
				{Value: "orchestral", Label: "Orchestral"},
				{Value: "ambient-electronic", Label: "Ambient electronic"},
				{Value: "solo-piano", Label: "Solo piano"},
			},
			DefaultValue: "none",
			Placeholder:  "{music}",
		},
	}
}

// DefaultTemplates returns the built-in template catalog.
func DefaultTemplates() []*models.Template {
	return []*models.Template{
		{
			ID:       "cinematic-shot",
			ModuleID: "video",
			Name:     "Cinematic Shot",
			Slots: []models.Slot{
				{ID: "cinematic-shot-1", TokenID: "shotSize", Suffix: " of "},
				{ID: "cinematic-shot-2", TokenID: "subject"},
				{ID: "cinematic-shot-3", TokenID: "setting", ConditionalPrefix: " in "},
				{ID: "cinematic-shot-4", TokenID: "lighting", ConditionalPrefix: ", ", Suffix: " lighting"},
				{ID: "cinematic-shot-5", TokenID: "colorGrade", ConditionalPrefix: ", ", Suffix: " grade"},
				{ID: "cinematic-shot-6", TokenID: "artStyle", ConditionalPrefix: ", "},
			},
		},
		{
			ID:       "still-image",
			ModuleID: "image",
			Name:     "Still Image",
			Slots: []models.Slot{
				{ID: "still-image-1", TokenID: "subject"},
				{ID: "still-image-2", TokenID: "setting", ConditionalPrefix: " in "},
				{ID: "still-image-3", TokenID: "artStyle", ConditionalPrefix: ", "},
				{ID: "still-image-4", TokenID: "lighting", ConditionalPrefix: ", ", Suffix: " lighting"},
			},
		},
		{
			ID:       "audio-scene",
			ModuleID: "audio",
			Name:     "Audio Scene",
			Slots: []models.Slot{
				{ID: "audio-scene-1", TokenID: "subject"},
				{ID: "audio-scene-2", TokenID: "setting", ConditionalPrefix: " in "},
			},
		},
	}
}

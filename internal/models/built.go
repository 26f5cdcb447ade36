package models

// StyleChannel carries the style values that wrap the base prompt when a
// separate style is active for the build.
type StyleChannel struct {
	Prefix string `json:"prefix,omitempty"`
	Prompt string `json:"stylePrompt,omitempty"`
	Suffix string `json:"suffix,omitempty"`
}

// IsEmpty reports whether no style value is set.
func (s StyleChannel) IsEmpty() bool {
	return s.Prefix == "" && s.Prompt == "" && s.Suffix == ""
}

// MotionChannel carries camera and subject motion for video prompts.
type MotionChannel struct {
	CameraMovement string `json:"cameraMovement"`
	SubjectMotion  string `json:"subjectMotion,omitempty"`
}

// AudioChannel carries the audio layer values for audio-capable prompts.
type AudioChannel struct {
	Dialog    string `json:"dialog,omitempty"`
	Voiceover string `json:"voiceover,omitempty"`
	Ambient   string `json:"ambient,omitempty"`
	Music     string `json:"music,omitempty"`
}

// BuiltPrompt is the output of one assembly call. It is constructed fresh
// on every call and is purely derived, never stored as authoritative state.
type BuiltPrompt struct {
	// Full is the style-augmented prompt; equal to Base when no style
	// applies.
	Full string `json:"full"`
	// Base is the cleaned, banned-term-filtered concatenation of the
	// included slots.
	Base string `json:"base"`

	Style  StyleChannel   `json:"style"`
	Motion *MotionChannel `json:"motion,omitempty"`
	Audio  *AudioChannel  `json:"audio,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

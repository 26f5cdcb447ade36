// Package assembler turns a template plus a set of per-token selections
// into a final prompt string. Assembly is deterministic and side-effect
// free: the assembler reads a snapshot of tokens and banned terms taken at
// construction time and never mutates editing state.
package assembler

import (
	"fmt"
	"strings"

	"github.com/framecraft/promptdeck/internal/filter"
	"github.com/framecraft/promptdeck/internal/models"
)

// MaxDeliveryLength is the longest prompt text accepted by downstream
// generation consumers. Longer output must be truncated before handoff.
const MaxDeliveryLength = 1000

// Per-field "no selection" sentinels. These differ per channel field for
// compatibility with existing selection data, so the table below is the
// single place that knows them.
const (
	sentinelNone    = "none"
	sentinelStatic  = "static"
	sentinelSilence = "silence"
)

var absentSentinels = map[string]string{
	models.TokenCameraMovement: sentinelStatic,
	models.TokenSubjectMotion:  sentinelStatic,
	models.TokenDialog:         sentinelNone,
	models.TokenVoiceover:      sentinelNone,
	models.TokenMusic:          sentinelNone,
	models.TokenAmbient:        sentinelSilence,
}

// channelTokens are the reserved token ids pulled out of the selection set
// before the slot loop. A slot referencing one of these is never processed
// as an ordinary slot.
var channelTokens = map[string]bool{
	models.TokenStylePrefix:    true,
	models.TokenStylePrompt:    true,
	models.TokenStyleSuffix:    true,
	models.TokenCameraMovement: true,
	models.TokenSubjectMotion:  true,
	models.TokenDialog:         true,
	models.TokenVoiceover:      true,
	models.TokenAmbient:        true,
	models.TokenMusic:          true,
}

// shotFramingTokens are the token ids whose option values are stored as
// shot-size abbreviations and expand through shotAbbreviations for display.
var shotFramingTokens = map[string]bool{
	"shotSize":    true,
	"shotFraming": true,
	"coverage":    true,
}

var shotAbbreviations = map[string]string{
	"ECU": "extreme close-up",
	"BCU": "big close-up",
	"CU":  "close-up",
	"MCU": "medium close-up",
	"MS":  "medium shot",
	"MLS": "medium long shot",
	"FS":  "full shot",
	"LS":  "long shot",
	"WS":  "wide shot",
	"EWS": "extreme wide shot",
	"OTS": "over-the-shoulder shot",
	"POV": "point-of-view shot",
	"2S":  "two shot",
}

// Assembler assembles prompts from an immutable snapshot of the token
// registry and the global banned-term list.
type Assembler struct {
	tokens map[string]models.Token
	order  []models.Token
	filter *filter.Filter
}

// New creates an assembler over a snapshot of tokens and banned terms.
func New(tokens []models.Token, bannedTerms []string) *Assembler {
	a := &Assembler{
		tokens: make(map[string]models.Token, len(tokens)),
		filter: filter.New(bannedTerms),
	}
	for _, t := range tokens {
		a.order = append(a.order, t)
		a.tokens[t.ID] = t
	}
	return a
}

// GetToken returns the token with the given id from the snapshot.
func (a *Assembler) GetToken(id string) (models.Token, bool) {
	t, ok := a.tokens[id]
	return t, ok
}

// AllTokens returns the snapshot's tokens in their original order.
func (a *Assembler) AllTokens() []models.Token {
	out := make([]models.Token, len(a.order))
	copy(out, a.order)
	return out
}

// SetBannedTerms replaces the global banned-term list, re-normalizing to
// lowercase.
func (a *Assembler) SetBannedTerms(terms []string) {
	a.filter.SetTerms(terms)
}

// BannedTerms returns the normalized global banned-term list.
func (a *Assembler) BannedTerms() []string {
	return a.filter.Terms()
}

// ValidationResult reports missing required selections for a template.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// BuildPrompt assembles the template with the given selections. hasStyle
// indicates whether a separate style is active for this build. Assembly
// never fails: data-shape problems (dangling slots, empty values) are
// skipped and banned-term removals surface as warnings on the result.
func (a *Assembler) BuildPrompt(tmpl models.Template, selections []models.Selection, hasStyle bool) models.BuiltPrompt {
	byToken := indexSelections(selections)

	style := models.StyleChannel{
		Prefix: a.channelValue(byToken, models.TokenStylePrefix),
		Prompt: a.channelValue(byToken, models.TokenStylePrompt),
		Suffix: a.channelValue(byToken, models.TokenStyleSuffix),
	}

	var parts []string
	for _, slot := range tmpl.Slots {
		if channelTokens[slot.TokenID] {
			continue
		}
		token, ok := a.tokens[slot.TokenID]
		if !ok {
			// Slot references a deleted or unknown token: skip, no warning.
			continue
		}

		value := byToken[slot.TokenID].Effective(token.DefaultValue)
		if !includedInBase(token.Rule, value, hasStyle) {
			continue
		}
		// An included slot with nothing to say still contributes nothing.
		if value == "" || value == sentinelNone {
			continue
		}

		prefix := slot.Prefix
		if slot.ConditionalPrefix != "" {
			prefix = slot.ConditionalPrefix
		}
		parts = append(parts, prefix+a.displayValue(token, value)+slot.Suffix)
	}

	// Prefixes and suffixes supply all separators; the join adds none.
	base := filter.Clean(strings.Join(parts, ""))

	var warnings []string
	base, removed := a.templateFilter(tmpl).Apply(base)
	if len(removed) > 0 {
		warnings = append(warnings, "Removed banned terms: "+strings.Join(removed, ", "))
	}

	full := base
	if hasStyle && !style.IsEmpty() {
		var seq []string
		for _, part := range []string{style.Prefix, base, style.Prompt, style.Suffix} {
			if part != "" {
				seq = append(seq, part)
			}
		}
		full = strings.Join(seq, " ")
	}

	return models.BuiltPrompt{
		Full:     full,
		Base:     base,
		Style:    style,
		Motion:   a.motionChannel(byToken),
		Audio:    a.audioChannel(byToken),
		Warnings: warnings,
	}
}

// BuildMotionPrompt folds a motion channel into an already-assembled base
// prompt for video consumers.
func (a *Assembler) BuildMotionPrompt(base string, motion *models.MotionChannel) string {
	if motion == nil || motion.CameraMovement == "" || motion.CameraMovement == sentinelStatic {
		return base
	}
	out := fmt.Sprintf("%s: %s", motion.CameraMovement, base)
	if motion.SubjectMotion != "" && motion.SubjectMotion != sentinelStatic {
		out += ", " + motion.SubjectMotion
	}
	return out
}

// BuildPreview assembles the template with one synthesized selection per
// slot, using each token's default value or its first option, and returns
// the full prompt.
func (a *Assembler) BuildPreview(tmpl models.Template, hasStyle bool) string {
	selections := make([]models.Selection, 0, len(tmpl.Slots))
	for _, slot := range tmpl.Slots {
		token, ok := a.tokens[slot.TokenID]
		if !ok {
			continue
		}
		value := token.DefaultValue
		if value == "" {
			value = token.FirstOption()
		}
		selections = append(selections, models.Selection{TokenID: token.ID, Value: value})
	}
	return a.BuildPrompt(tmpl, selections, hasStyle).Full
}

// ValidateSelections verifies that every slot whose token is required has a
// selection with a non-empty value or custom value. Validation never blocks
// assembly; the two operations are independent.
func (a *Assembler) ValidateSelections(tmpl models.Template, selections []models.Selection) ValidationResult {
	byToken := indexSelections(selections)

	result := ValidationResult{Valid: true}
	for _, slot := range tmpl.Slots {
		token, ok := a.tokens[slot.TokenID]
		if !ok || !token.Required {
			continue
		}
		if !byToken[slot.TokenID].IsSet() {
			label := token.Label
			if label == "" {
				label = token.Name
			}
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("%s is required", label))
		}
	}
	return result
}

// TruncateForDelivery caps prompt text at the downstream consumer limit,
// truncating to 997 characters plus an ellipsis when it is exceeded.
func TruncateForDelivery(s string) string {
	if len(s) <= MaxDeliveryLength {
		return s
	}
	return s[:MaxDeliveryLength-3] + "..."
}

func indexSelections(selections []models.Selection) map[string]models.Selection {
	byToken := make(map[string]models.Selection, len(selections))
	for _, sel := range selections {
		byToken[sel.TokenID] = sel
	}
	return byToken
}

// includedInBase applies the inclusion-rule decision table for the base
// prompt.
func includedInBase(rule models.InclusionRule, value string, hasStyle bool) bool {
	switch rule {
	case models.IncludeAlways:
		return true
	case models.IncludeNoStyle:
		return !hasStyle
	case models.IncludeSeparate, models.IncludeAdditive:
		// Carried on the style / motion / audio channels instead.
		return false
	case models.IncludeOptional:
		return value != "" && value != sentinelNone
	default:
		return false
	}
}

// displayValue computes the human-facing form of a resolved value:
// shot-framing option values expand through the abbreviation dictionary,
// everything else has hyphens replaced with spaces.
func (a *Assembler) displayValue(token models.Token, value string) string {
	if token.HasOption(value) && shotFramingTokens[token.ID] {
		if expanded, ok := shotAbbreviations[value]; ok {
			return expanded
		}
	}
	return strings.ReplaceAll(value, "-", " ")
}

// channelValue resolves a reserved channel selection. Channels with no
// selection resolve to "" rather than falling back to token defaults, so a
// build without motion or audio input yields no motion or audio output.
func (a *Assembler) channelValue(byToken map[string]models.Selection, id string) string {
	sel, ok := byToken[id]
	if !ok {
		return ""
	}
	var def string
	if token, exists := a.tokens[id]; exists {
		def = token.DefaultValue
	}
	return sel.Effective(def)
}

func isAbsent(tokenID, value string) bool {
	if value == "" {
		return true
	}
	sentinel, ok := absentSentinels[tokenID]
	return ok && value == sentinel
}

func (a *Assembler) motionChannel(byToken map[string]models.Selection) *models.MotionChannel {
	camera := a.channelValue(byToken, models.TokenCameraMovement)
	if isAbsent(models.TokenCameraMovement, camera) {
		return nil
	}
	motion := &models.MotionChannel{CameraMovement: camera}
	if subject := a.channelValue(byToken, models.TokenSubjectMotion); !isAbsent(models.TokenSubjectMotion, subject) {
		motion.SubjectMotion = subject
	}
	return motion
}

func (a *Assembler) audioChannel(byToken map[string]models.Selection) *models.AudioChannel {
	var audio models.AudioChannel
	if v := a.channelValue(byToken, models.TokenDialog); !isAbsent(models.TokenDialog, v) {
		audio.Dialog = v
	}
	if v := a.channelValue(byToken, models.TokenVoiceover); !isAbsent(models.TokenVoiceover, v) {
		audio.Voiceover = v
	}
	if v := a.channelValue(byToken, models.TokenAmbient); !isAbsent(models.TokenAmbient, v) {
		audio.Ambient = v
	}
	if v := a.channelValue(byToken, models.TokenMusic); !isAbsent(models.TokenMusic, v) {
		audio.Music = v
	}
	if audio == (models.AudioChannel{}) {
		return nil
	}
	return &audio
}

// templateFilter combines the global banned-term list with the template's
// local terms. Style channel text is intentionally left unfiltered; only
// the base prompt passes through the filter.
func (a *Assembler) templateFilter(tmpl models.Template) *filter.Filter {
	if len(tmpl.BannedTerms) == 0 {
		return a.filter
	}
	return filter.New(append(a.filter.Terms(), tmpl.BannedTerms...))
}

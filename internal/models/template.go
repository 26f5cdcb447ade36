package models

import (
	"fmt"
	"strings"
	"time"
)

// Slot is one position in a template: a reference to a token plus the
// literal text that surrounds its resolved value.
type Slot struct {
	ID      string `yaml:"id" json:"id"`
	TokenID string `yaml:"tokenId" json:"tokenId"`
	Prefix  string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Suffix  string `yaml:"suffix,omitempty" json:"suffix,omitempty"`

	// ConditionalPrefix replaces Prefix when the slot's resolved value is
	// non-empty.
	ConditionalPrefix string `yaml:"conditionalPrefix,omitempty" json:"conditionalPrefix,omitempty"`
}

// Template is an ordered sequence of slots belonging to a feature module.
// Slot order is the sole determinant of concatenation order.
type Template struct {
	ID       string `yaml:"id" json:"id"`
	ModuleID string `yaml:"moduleId" json:"moduleId"`
	Name     string `yaml:"name" json:"name"`
	Slots    []Slot `yaml:"slots" json:"slots"`

	// FormatString is a derived, human-readable preview of the template
	// shape ("{shotSize} of {subject}, ..."). Informational only.
	FormatString string `yaml:"formatString,omitempty" json:"formatString,omitempty"`

	// BannedTerms are template-local banned terms, combined with the global
	// list at assembly time.
	BannedTerms []string `yaml:"bannedTerms,omitempty" json:"bannedTerms,omitempty"`

	CreatedAt time.Time `yaml:"created_at" json:"created_at"`
	UpdatedAt time.Time `yaml:"updated_at" json:"updated_at"`
}

// Clone returns a deep copy of the template with its own slot and
// banned-term slices.
func (t Template) Clone() Template {
	dup := t
	dup.Slots = make([]Slot, len(t.Slots))
	copy(dup.Slots, t.Slots)
	if t.BannedTerms != nil {
		dup.BannedTerms = make([]string, len(t.BannedTerms))
		copy(dup.BannedTerms, t.BannedTerms)
	}
	return dup
}

// SlotIndex returns the position of the slot with the given id, or -1.
func (t Template) SlotIndex(slotID string) int {
	for i, slot := range t.Slots {
		if slot.ID == slotID {
			return i
		}
	}
	return -1
}

// Implement list.Item interface for bubbles list component

// FilterValue returns the value used for filtering in lists
func (t Template) FilterValue() string {
	return cleanString(t.Name + " " + t.ModuleID)
}

// Title satisfies the list.Item interface
func (t Template) Title() string {
	if t.Name != "" {
		return cleanString(t.Name)
	}
	return cleanString(t.ID)
}

// Description satisfies the list.Item interface
func (t Template) Description() string {
	var parts []string

	if t.ModuleID != "" {
		parts = append(parts, t.ModuleID)
	}
	if len(t.Slots) == 1 {
		parts = append(parts, "1 slot")
	} else {
		parts = append(parts, fmt.Sprintf("%d slots", len(t.Slots)))
	}
	if !t.UpdatedAt.IsZero() {
		parts = append(parts, "Last edited: "+t.UpdatedAt.Format("2006-01-02 15:04"))
	}

	result := strings.Join(parts, " • ")

	maxTotalLength := 100
	if len(result) > maxTotalLength {
		result = result[:maxTotalLength-3] + "..."
	}

	return cleanString(result)
}

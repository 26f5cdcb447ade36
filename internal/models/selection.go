package models

// Selection is the ephemeral per-token input to one assembly call.
type Selection struct {
	TokenID     string `yaml:"tokenId" json:"tokenId"`
	Value       string `yaml:"value,omitempty" json:"value,omitempty"`
	CustomValue string `yaml:"customValue,omitempty" json:"customValue,omitempty"`
}

// Effective resolves the selection's effective value: CustomValue wins over
// Value, which wins over the supplied token default. An unset selection
// resolves to "".
func (s Selection) Effective(defaultValue string) string {
	if s.CustomValue != "" {
		return s.CustomValue
	}
	if s.Value != "" {
		return s.Value
	}
	return defaultValue
}

// IsSet reports whether the selection carries any explicit value.
func (s Selection) IsSet() bool {
	return s.Value != "" || s.CustomValue != ""
}

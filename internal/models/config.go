package models

// ConfigVersion is the current version of the persisted config document.
const ConfigVersion = "1.0"

// Config is the versioned document persisted by the config store. It holds
// the whole editable state: the token registry, the template list, and the
// category order.
type Config struct {
	Version    string      `yaml:"version" json:"version"`
	Tokens     []*Token    `yaml:"tokens" json:"tokens"`
	Templates  []*Template `yaml:"templates" json:"templates"`
	Categories []string    `yaml:"categories,omitempty" json:"categories,omitempty"`
}

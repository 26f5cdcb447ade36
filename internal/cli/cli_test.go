package cli

import (
	"strings"
	"testing"

	"github.com/framecraft/promptdeck/internal/models"
	"github.com/framecraft/promptdeck/internal/service"
)

type memoryStore struct {
	cfg *models.Config
}

func (m *memoryStore) Load(key string) (*models.Config, error) { return m.cfg, nil }
func (m *memoryStore) Save(key string, cfg *models.Config) error {
	m.cfg = cfg
	return nil
}
func (m *memoryStore) Clear(key string) error { m.cfg = nil; return nil }

func newTestCLI() *CLI {
	return NewCLI(service.NewServiceWithStore(&memoryStore{}))
}

func TestParseSelection(t *testing.T) {
	sel, err := parseSelection("subject=a red fox", false)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if sel.TokenID != "subject" || sel.Value != "a red fox" || sel.CustomValue != "" {
		t.Errorf("unexpected selection %+v", sel)
	}

	sel, err = parseSelection("subject=a red fox", true)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if sel.CustomValue != "a red fox" || sel.Value != "" {
		t.Errorf("custom flag should fill CustomValue, got %+v", sel)
	}

	// Values may themselves contain an equals sign.
	sel, err = parseSelection("subject=a=b", false)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if sel.Value != "a=b" {
		t.Errorf("expected value a=b, got %q", sel.Value)
	}

	for _, bad := range []string{"novalue", "=orphan", ""} {
		if _, err := parseSelection(bad, false); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestExecuteCommandUnknown(t *testing.T) {
	c := newTestCLI()
	err := c.ExecuteCommand([]string{"frobnicate"})
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("expected unknown command error, got %v", err)
	}
}

func TestExecuteCommandBannedMutations(t *testing.T) {
	c := newTestCLI()

	if err := c.ExecuteCommand([]string{"banned", "add", "jpeg", "artifacts"}); err != nil {
		t.Fatalf("Failed to add banned term: %v", err)
	}
	found := false
	for _, term := range c.service.BannedTerms() {
		if term == "jpeg artifacts" {
			found = true
		}
	}
	if !found {
		t.Error("multi-word arguments should join into one term")
	}

	if err := c.ExecuteCommand([]string{"banned", "remove", "jpeg", "artifacts"}); err != nil {
		t.Fatalf("Failed to remove banned term: %v", err)
	}
	for _, term := range c.service.BannedTerms() {
		if term == "jpeg artifacts" {
			t.Error("term should be removed")
		}
	}
}

func TestExecuteCommandTemplateDuplicate(t *testing.T) {
	c := newTestCLI()

	before := len(c.service.Templates())
	if err := c.ExecuteCommand([]string{"template", "duplicate", "cinematic-shot"}); err != nil {
		t.Fatalf("Failed to duplicate: %v", err)
	}
	if len(c.service.Templates()) != before+1 {
		t.Error("expected one more template after duplicate")
	}
}

func TestExecuteCommandRequiresArguments(t *testing.T) {
	c := newTestCLI()

	for _, args := range [][]string{
		{"build"},
		{"preview"},
		{"validate"},
		{"search"},
		{"token", "show"},
		{"template", "reorder", "cinematic-shot", "0"},
	} {
		if err := c.ExecuteCommand(args); err == nil {
			t.Errorf("expected error for %v", args)
		}
	}
}

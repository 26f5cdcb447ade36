// Package service implements the template editing state manager: it owns
// the live token registry and template list, applies synchronous CRUD and
// ordering mutations, and persists the whole state through a config store.
package service

import (
	"fmt"
	"os"
	"strings"

	"github.com/framecraft/promptdeck/internal/assembler"
	"github.com/framecraft/promptdeck/internal/config"
	"github.com/framecraft/promptdeck/internal/errors"
	"github.com/framecraft/promptdeck/internal/models"
	"github.com/framecraft/promptdeck/internal/renderer"
	"github.com/framecraft/promptdeck/internal/storage"
	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"
)

// ConfigStorageKey is the fixed key the editable state is persisted under.
const ConfigStorageKey = "promptdeck-config"

// Service provides business logic for token and template management. It is
// intended for a single writer (one editing session); assembly reads
// snapshots and is safe to run concurrently with itself.
type Service struct {
	store storage.ConfigStore

	tokens      []*models.Token
	templates   []*models.Template
	categories  []string
	bannedTerms []string

	unsaved bool
	lastErr string
}

// NewService creates a service backed by a file store rooted at
// PROMPTDECK_DIR (or ~/.promptdeck). State starts from the built-in
// defaults; any previously saved config replaces it. A load failure is
// recorded in Err() rather than failing construction.
func NewService() (*Service, error) {
	rootPath := os.Getenv("PROMPTDECK_DIR")
	store, err := storage.NewFileStore(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	svc := NewServiceWithStore(store)
	if err := svc.LoadConfig(); err != nil {
		// Defaults remain active; the error is surfaced through Err().
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}
	return svc, nil
}

// NewServiceWithStore creates a service over an explicit config store,
// starting from the built-in defaults without loading.
func NewServiceWithStore(store storage.ConfigStore) *Service {
	svc := &Service{
		store:       store,
		bannedTerms: config.DefaultBannedTerms(),
	}
	svc.applyConfig(config.DefaultConfig())
	svc.unsaved = false
	return svc
}

// InitLibrary initializes the on-disk library directory.
func (s *Service) InitLibrary() error {
	if fs, ok := s.store.(*storage.FileStore); ok {
		return fs.InitLibrary()
	}
	return nil
}

// HasUnsavedChanges reports whether any mutation happened since the last
// successful save or load.
func (s *Service) HasUnsavedChanges() bool {
	return s.unsaved
}

// Err returns the message of the last persistence failure, or "".
func (s *Service) Err() string {
	return s.lastErr
}

// Tokens returns the live token registry in order.
func (s *Service) Tokens() []*models.Token {
	out := make([]*models.Token, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Templates returns the live template list in order.
func (s *Service) Templates() []*models.Template {
	out := make([]*models.Template, len(s.templates))
	copy(out, s.templates)
	return out
}

// Categories returns the category display order.
func (s *Service) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// GetToken returns a token by id.
func (s *Service) GetToken(id string) (*models.Token, error) {
	for _, t := range s.tokens {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, errors.NotFoundError(fmt.Sprintf("token %q", id))
}

// GetTemplate returns a template by id.
func (s *Service) GetTemplate(id string) (*models.Template, error) {
	for _, t := range s.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, errors.NotFoundError(fmt.Sprintf("template %q", id))
}

// AddToken appends a token to the registry, generating an id when none is
// set. The only mutation that can fail is an id collision; no other
// validation blocks it.
func (s *Service) AddToken(token *models.Token) error {
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	for _, existing := range s.tokens {
		if existing.ID == token.ID {
			return errors.AlreadyExistsError(fmt.Sprintf("token %q", token.ID))
		}
	}
	s.tokens = append(s.tokens, token)
	s.markDirty()
	return nil
}

// UpdateToken replaces the token with the same id.
func (s *Service) UpdateToken(token *models.Token) error {
	for i, existing := range s.tokens {
		if existing.ID == token.ID {
			s.tokens[i] = token
			s.markDirty()
			return nil
		}
	}
	return errors.NotFoundError(fmt.Sprintf("token %q", token.ID))
}

// DeleteToken removes a token and cascades: every slot in every template
// referencing it is removed as well, so no dangling references survive.
// Deleting an unknown token is a no-op; an emptied template stays valid.
func (s *Service) DeleteToken(id string) {
	for i, token := range s.tokens {
		if token.ID == id {
			s.tokens = append(s.tokens[:i], s.tokens[i+1:]...)
			break
		}
	}
	for _, tmpl := range s.templates {
		kept := tmpl.Slots[:0]
		for _, slot := range tmpl.Slots {
			if slot.TokenID != id {
				kept = append(kept, slot)
			}
		}
		tmpl.Slots = kept
		s.refreshFormatString(tmpl)
	}
	s.markDirty()
}

// AddTemplate appends a template, generating an id when none is set.
func (s *Service) AddTemplate(tmpl *models.Template) error {
	if tmpl.ID == "" {
		tmpl.ID = uuid.NewString()
	}
	for _, existing := range s.templates {
		if existing.ID == tmpl.ID {
			return errors.AlreadyExistsError(fmt.Sprintf("template %q", tmpl.ID))
		}
	}
	s.refreshFormatString(tmpl)
	s.templates = append(s.templates, tmpl)
	s.markDirty()
	return nil
}

// UpdateTemplate replaces the template with the same id.
func (s *Service) UpdateTemplate(tmpl *models.Template) error {
	for i, existing := range s.templates {
		if existing.ID == tmpl.ID {
			s.refreshFormatString(tmpl)
			s.templates[i] = tmpl
			s.markDirty()
			return nil
		}
	}
	return errors.NotFoundError(fmt.Sprintf("template %q", tmpl.ID))
}

// DeleteTemplate removes a template by id. Unknown ids are a no-op.
func (s *Service) DeleteTemplate(id string) {
	for i, tmpl := range s.templates {
		if tmpl.ID == id {
			s.templates = append(s.templates[:i], s.templates[i+1:]...)
			break
		}
	}
	s.markDirty()
}

// DuplicateTemplate deep-copies a template, assigns a fresh id and a name
// suffix, and appends it to the template list.
func (s *Service) DuplicateTemplate(id string) (*models.Template, error) {
	src, err := s.GetTemplate(id)
	if err != nil {
		return nil, err
	}

	dup := src.Clone()
	dup.ID = uuid.NewString()
	dup.Name = src.Name + " (copy)"
	for i := range dup.Slots {
		dup.Slots[i].ID = uuid.NewString()
	}

	s.templates = append(s.templates, &dup)
	s.markDirty()
	return &dup, nil
}

// AddSlot appends a slot to a template, generating a slot id when none is
// set.
func (s *Service) AddSlot(templateID string, slot models.Slot) error {
	tmpl, err := s.GetTemplate(templateID)
	if err != nil {
		return err
	}
	if slot.ID == "" {
		slot.ID = uuid.NewString()
	}
	tmpl.Slots = append(tmpl.Slots, slot)
	s.refreshFormatString(tmpl)
	s.markDirty()
	return nil
}

// UpdateSlot replaces the slot with the same id within a template.
func (s *Service) UpdateSlot(templateID string, slot models.Slot) error {
	tmpl, err := s.GetTemplate(templateID)
	if err != nil {
		return err
	}
	idx := tmpl.SlotIndex(slot.ID)
	if idx < 0 {
		return errors.NotFoundError(fmt.Sprintf("slot %q", slot.ID))
	}
	tmpl.Slots[idx] = slot
	s.refreshFormatString(tmpl)
	s.markDirty()
	return nil
}

// RemoveSlot removes a slot from a template by id.
func (s *Service) RemoveSlot(templateID, slotID string) error {
	tmpl, err := s.GetTemplate(templateID)
	if err != nil {
		return err
	}
	idx := tmpl.SlotIndex(slotID)
	if idx < 0 {
		return errors.NotFoundError(fmt.Sprintf("slot %q", slotID))
	}
	tmpl.Slots = append(tmpl.Slots[:idx], tmpl.Slots[idx+1:]...)
	s.refreshFormatString(tmpl)
	s.markDirty()
	return nil
}

// ReorderSlots moves the slot at fromIndex to toIndex within a template.
// Out-of-range indices are a no-op.
func (s *Service) ReorderSlots(templateID string, fromIndex, toIndex int) error {
	tmpl, err := s.GetTemplate(templateID)
	if err != nil {
		return err
	}
	tmpl.Slots = moveElement(tmpl.Slots, fromIndex, toIndex)
	s.refreshFormatString(tmpl)
	s.markDirty()
	return nil
}

// moveElement removes the element at from and re-inserts it at to. Indices
// outside the list leave it unchanged.
func moveElement(list []models.Slot, from, to int) []models.Slot {
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) {
		return list
	}
	moved := list[from]
	list = append(list[:from], list[from+1:]...)
	list = append(list[:to], append([]models.Slot{moved}, list[to:]...)...)
	return list
}

// BannedTerms returns the global banned-term list.
func (s *Service) BannedTerms() []string {
	out := make([]string, len(s.bannedTerms))
	copy(out, s.bannedTerms)
	return out
}

// SetBannedTerms replaces the global banned-term list. Normalization to
// lowercase happens inside the filter when a snapshot is taken.
func (s *Service) SetBannedTerms(terms []string) {
	s.bannedTerms = make([]string, len(terms))
	copy(s.bannedTerms, terms)
}

// AddBannedTerm appends a term unless it is already listed.
func (s *Service) AddBannedTerm(term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}
	for _, existing := range s.bannedTerms {
		if strings.EqualFold(existing, term) {
			return
		}
	}
	s.bannedTerms = append(s.bannedTerms, term)
}

// RemoveBannedTerm removes a term, case-insensitively.
func (s *Service) RemoveBannedTerm(term string) {
	for i, existing := range s.bannedTerms {
		if strings.EqualFold(existing, term) {
			s.bannedTerms = append(s.bannedTerms[:i], s.bannedTerms[i+1:]...)
			return
		}
	}
}

// Assembler returns a prompt assembler over a snapshot of the current
// tokens and banned terms. The assembler never sees later mutations.
func (s *Service) Assembler() *assembler.Assembler {
	snapshot := make([]models.Token, len(s.tokens))
	for i, t := range s.tokens {
		snapshot[i] = *t
	}
	return assembler.New(snapshot, s.BannedTerms())
}

// SearchTokens fuzzy-searches the registry by label, name, and category.
func (s *Service) SearchTokens(query string) []*models.Token {
	if query == "" {
		return s.Tokens()
	}

	var searchStrings []string
	for _, t := range s.tokens {
		searchStrings = append(searchStrings, fmt.Sprintf("%s %s %s", t.Label, t.Name, t.Category))
	}

	matches := fuzzy.Find(query, searchStrings)

	var results []*models.Token
	for _, match := range matches {
		results = append(results, s.tokens[match.Index])
	}
	return results
}

// SearchTemplates fuzzy-searches templates by name and module.
func (s *Service) SearchTemplates(query string) []*models.Template {
	if query == "" {
		return s.Templates()
	}

	var searchStrings []string
	for _, t := range s.templates {
		searchStrings = append(searchStrings, fmt.Sprintf("%s %s", t.Name, t.ModuleID))
	}

	matches := fuzzy.Find(query, searchStrings)

	var results []*models.Template
	for _, match := range matches {
		results = append(results, s.templates[match.Index])
	}
	return results
}

// SaveConfig persists the whole editable state under the fixed storage
// key. A failure is recorded in Err() and returned; it is never retried.
func (s *Service) SaveConfig() error {
	cfg := &models.Config{
		Version:    models.ConfigVersion,
		Tokens:     s.tokens,
		Templates:  s.templates,
		Categories: s.categories,
	}

	if err := s.store.Save(ConfigStorageKey, cfg); err != nil {
		appErr := errors.StorageError("save config", err)
		s.lastErr = appErr.Error()
		return appErr
	}

	s.unsaved = false
	s.lastErr = ""
	return nil
}

// LoadConfig restores state from the store. An absent document falls back
// to the built-in defaults without error; a malformed one falls back to
// defaults and reports the failure.
func (s *Service) LoadConfig() error {
	cfg, err := s.store.Load(ConfigStorageKey)
	if err != nil {
		s.applyConfig(config.DefaultConfig())
		s.unsaved = false
		appErr := errors.StorageError("load config", err)
		s.lastErr = appErr.Error()
		return appErr
	}

	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s.applyConfig(cfg)
	s.unsaved = false
	s.lastErr = ""
	return nil
}

// ResetToDefaults clears the persisted state and restores the built-in
// token and template catalog.
func (s *Service) ResetToDefaults() error {
	if err := s.store.Clear(ConfigStorageKey); err != nil {
		appErr := errors.StorageError("clear config", err)
		s.lastErr = appErr.Error()
		return appErr
	}

	s.applyConfig(config.DefaultConfig())
	s.bannedTerms = config.DefaultBannedTerms()
	s.unsaved = false
	s.lastErr = ""
	return nil
}

func (s *Service) applyConfig(cfg *models.Config) {
	s.tokens = cfg.Tokens
	s.templates = cfg.Templates
	s.categories = cfg.Categories
	for _, tmpl := range s.templates {
		s.refreshFormatString(tmpl)
	}
}

func (s *Service) markDirty() {
	s.unsaved = true
}

// refreshFormatString recomputes the derived, human-readable format string
// after any mutation that changes a template's shape.
func (s *Service) refreshFormatString(tmpl *models.Template) {
	tmpl.FormatString = renderer.FormatString(*tmpl, func(id string) (models.Token, bool) {
		for _, t := range s.tokens {
			if t.ID == id {
				return *t, true
			}
		}
		return models.Token{}, false
	})
}

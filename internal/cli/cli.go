// Package cli provides the headless command-line interface over the
// editing service and the prompt assembler.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/framecraft/promptdeck/internal/assembler"
	"github.com/framecraft/promptdeck/internal/clipboard"
	"github.com/framecraft/promptdeck/internal/models"
	"github.com/framecraft/promptdeck/internal/renderer"
	"github.com/framecraft/promptdeck/internal/service"
)

// CLI provides headless command-line interface functionality
type CLI struct {
	service *service.Service
}

// NewCLI creates a new CLI instance
func NewCLI(svc *service.Service) *CLI {
	return &CLI{service: svc}
}

// ExecuteCommand processes a CLI command and returns the result
func (c *CLI) ExecuteCommand(args []string) error {
	if len(args) == 0 {
		return c.printUsage()
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "tokens":
		return c.listTokens(commandArgs)
	case "token":
		return c.handleToken(commandArgs)
	case "templates":
		return c.listTemplates(commandArgs)
	case "template":
		return c.handleTemplate(commandArgs)
	case "build":
		return c.buildPrompt(commandArgs)
	case "preview":
		return c.previewPrompt(commandArgs)
	case "validate":
		return c.validateSelections(commandArgs)
	case "search":
		return c.search(commandArgs)
	case "banned":
		return c.handleBanned(commandArgs)
	case "save":
		return c.service.SaveConfig()
	case "load":
		return c.service.LoadConfig()
	case "reset":
		return c.resetToDefaults(commandArgs)
	case "help":
		return c.printUsage()
	default:
		return fmt.Errorf("unknown command: %s. Use 'help' for usage information", command)
	}
}

// listTokens lists all tokens in the registry
func (c *CLI) listTokens(args []string) error {
	var format string
	var category string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--format", "-f":
			if i+1 < len(args) {
				format = args[i+1]
				i++
			}
		case "--category", "-c":
			if i+1 < len(args) {
				category = args[i+1]
				i++
			}
		}
	}

	tokens := c.service.Tokens()
	if category != "" {
		var filtered []*models.Token
		for _, t := range tokens {
			if string(t.Category) == category {
				filtered = append(filtered, t)
			}
		}
		tokens = filtered
	}

	switch format {
	case "json":
		return json.NewEncoder(os.Stdout).Encode(tokens)
	case "ids":
		for _, t := range tokens {
			fmt.Println(t.ID)
		}
	case "table":
		fmt.Printf("%-20s %-25s %-15s %-22s %s\n", "ID", "Label", "Category", "Rule", "Default")
		fmt.Println(strings.Repeat("-", 90))
		for _, t := range tokens {
			fmt.Printf("%-20s %-25s %-15s %-22s %s\n",
				t.ID, t.Label, t.Category, t.Rule, t.DefaultValue)
		}
	default:
		for _, t := range tokens {
			fmt.Printf("%s - %s\n", t.ID, t.Label)
			fmt.Printf("  %s, %s\n", t.Category, t.Rule)
			if len(t.Options) > 0 {
				var values []string
				for _, opt := range t.Options {
					values = append(values, opt.Value)
				}
				fmt.Printf("  Options: %s\n", strings.Join(values, ", "))
			}
			fmt.Println()
		}
	}
	return nil
}

// handleToken handles token subcommands (show, delete)
func (c *CLI) handleToken(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("token requires a subcommand: show, delete")
	}

	switch args[0] {
	case "show":
		if len(args) < 2 {
			return fmt.Errorf("token show requires a token ID")
		}
		token, err := c.service.GetToken(args[1])
		if err != nil {
			return err
		}
		return json.NewEncoder(os.Stdout).Encode(token)
	case "delete", "rm":
		if len(args) < 2 {
			return fmt.Errorf("token delete requires a token ID")
		}
		c.service.DeleteToken(args[1])
		if err := c.service.SaveConfig(); err != nil {
			return err
		}
		fmt.Printf("Deleted token %s (and its slots in every template)\n", args[1])
		return nil
	default:
		return fmt.Errorf("unknown token subcommand: %s", args[0])
	}
}

// listTemplates lists all templates
func (c *CLI) listTemplates(args []string) error {
	var format string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--format", "-f":
			if i+1 < len(args) {
				format = args[i+1]
				i++
			}
		}
	}

	templates := c.service.Templates()

	switch format {
	case "json":
		return json.NewEncoder(os.Stdout).Encode(templates)
	case "ids":
		for _, t := range templates {
			fmt.Println(t.ID)
		}
	default:
		for _, t := range templates {
			fmt.Printf("%s - %s (%s, %d slots)\n", t.ID, t.Name, t.ModuleID, len(t.Slots))
			if t.FormatString != "" {
				fmt.Printf("  %s\n", t.FormatString)
			}
			fmt.Println()
		}
	}
	return nil
}

// handleTemplate handles template subcommands (show, duplicate, delete,
// reorder)
func (c *CLI) handleTemplate(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("template requires a subcommand: show, duplicate, delete, reorder")
	}

	switch args[0] {
	case "show":
		if len(args) < 2 {
			return fmt.Errorf("template show requires a template ID")
		}
		return c.showTemplate(args[1], args[2:])
	case "duplicate":
		if len(args) < 2 {
			return fmt.Errorf("template duplicate requires a template ID")
		}
		dup, err := c.service.DuplicateTemplate(args[1])
		if err != nil {
			return err
		}
		if err := c.service.SaveConfig(); err != nil {
			return err
		}
		fmt.Printf("Created %s - %s\n", dup.ID, dup.Name)
		return nil
	case "delete", "rm":
		if len(args) < 2 {
			return fmt.Errorf("template delete requires a template ID")
		}
		c.service.DeleteTemplate(args[1])
		if err := c.service.SaveConfig(); err != nil {
			return err
		}
		fmt.Printf("Deleted template %s\n", args[1])
		return nil
	case "reorder":
		if len(args) < 4 {
			return fmt.Errorf("template reorder requires: <id> <fromIndex> <toIndex>")
		}
		from, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid fromIndex: %s", args[2])
		}
		to, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("invalid toIndex: %s", args[3])
		}
		if err := c.service.ReorderSlots(args[1], from, to); err != nil {
			return err
		}
		return c.service.SaveConfig()
	default:
		return fmt.Errorf("unknown template subcommand: %s", args[0])
	}
}

func (c *CLI) showTemplate(id string, args []string) error {
	var format string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--format", "-f":
			if i+1 < len(args) {
				format = args[i+1]
				i++
			}
		}
	}

	tmpl, err := c.service.GetTemplate(id)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		return json.NewEncoder(os.Stdout).Encode(tmpl)
	default:
		md := renderer.MarkdownSummary(*tmpl, c.tokenLookup())
		out, err := glamour.Render(md, "auto")
		if err != nil {
			// Fall back to raw markdown when the terminal renderer fails
			fmt.Println(md)
			return nil
		}
		fmt.Print(out)
	}
	return nil
}

// buildPrompt assembles a template with the given selections
func (c *CLI) buildPrompt(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("build requires a template ID")
	}

	id := args[0]
	var format string
	var hasStyle, copyOut, withMotion, truncate bool
	var selections []models.Selection

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "--var", "-v":
			if i+1 < len(args) {
				sel, err := parseSelection(args[i+1], false)
				if err != nil {
					return err
				}
				selections = append(selections, sel)
				i++
			}
		case "--custom":
			if i+1 < len(args) {
				sel, err := parseSelection(args[i+1], true)
				if err != nil {
					return err
				}
				selections = append(selections, sel)
				i++
			}
		case "--style", "-s":
			hasStyle = true
		case "--copy":
			copyOut = true
		case "--motion", "-m":
			withMotion = true
		case "--truncate":
			truncate = true
		case "--format", "-f":
			if i+1 < len(args) {
				format = args[i+1]
				i++
			}
		}
	}

	tmpl, err := c.service.GetTemplate(id)
	if err != nil {
		return err
	}

	asm := c.service.Assembler()
	built := asm.BuildPrompt(*tmpl, selections, hasStyle)

	output := built.Full
	if withMotion {
		output = asm.BuildMotionPrompt(built.Base, built.Motion)
	}
	if truncate {
		output = assembler.TruncateForDelivery(output)
	}

	for _, warning := range built.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	if copyOut {
		msg, err := clipboard.CopyWithFallback(output)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, msg)
	}

	switch format {
	case "json":
		return json.NewEncoder(os.Stdout).Encode(built)
	default:
		fmt.Println(output)
	}
	return nil
}

// previewPrompt assembles a template using defaults only
func (c *CLI) previewPrompt(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("preview requires a template ID")
	}

	var hasStyle bool
	for _, arg := range args[1:] {
		if arg == "--style" || arg == "-s" {
			hasStyle = true
		}
	}

	tmpl, err := c.service.GetTemplate(args[0])
	if err != nil {
		return err
	}

	fmt.Println(c.service.Assembler().BuildPreview(*tmpl, hasStyle))
	return nil
}

// validateSelections checks required tokens for a template
func (c *CLI) validateSelections(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("validate requires a template ID")
	}

	var selections []models.Selection
	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "--var", "-v":
			if i+1 < len(args) {
				sel, err := parseSelection(args[i+1], false)
				if err != nil {
					return err
				}
				selections = append(selections, sel)
				i++
			}
		}
	}

	tmpl, err := c.service.GetTemplate(args[0])
	if err != nil {
		return err
	}

	result := c.service.Assembler().ValidateSelections(*tmpl, selections)
	if result.Valid {
		fmt.Println("Valid")
		return nil
	}
	for _, msg := range result.Errors {
		fmt.Println(msg)
	}
	os.Exit(1)
	return nil
}

// search fuzzy-searches tokens and templates
func (c *CLI) search(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("search requires a query")
	}

	var tokensOnly, templatesOnly bool
	var queryParts []string
	for _, arg := range args {
		switch arg {
		case "--tokens":
			tokensOnly = true
		case "--templates":
			templatesOnly = true
		default:
			queryParts = append(queryParts, arg)
		}
	}
	query := strings.Join(queryParts, " ")

	if !templatesOnly {
		for _, t := range c.service.SearchTokens(query) {
			fmt.Printf("token     %s - %s\n", t.ID, t.Label)
		}
	}
	if !tokensOnly {
		for _, t := range c.service.SearchTemplates(query) {
			fmt.Printf("template  %s - %s\n", t.ID, t.Name)
		}
	}
	return nil
}

// handleBanned manages the global banned-term list
func (c *CLI) handleBanned(args []string) error {
	if len(args) == 0 || args[0] == "list" {
		for _, term := range c.service.BannedTerms() {
			fmt.Println(term)
		}
		return nil
	}

	switch args[0] {
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("banned add requires a term")
		}
		c.service.AddBannedTerm(strings.Join(args[1:], " "))
		return nil
	case "remove", "rm":
		if len(args) < 2 {
			return fmt.Errorf("banned remove requires a term")
		}
		c.service.RemoveBannedTerm(strings.Join(args[1:], " "))
		return nil
	default:
		return fmt.Errorf("unknown banned subcommand: %s", args[0])
	}
}

func (c *CLI) resetToDefaults(args []string) error {
	if err := c.service.ResetToDefaults(); err != nil {
		return err
	}
	fmt.Println("Restored built-in tokens and templates")
	return nil
}

func (c *CLI) tokenLookup() renderer.TokenLookup {
	return func(id string) (models.Token, bool) {
		token, err := c.service.GetToken(id)
		if err != nil {
			return models.Token{}, false
		}
		return *token, true
	}
}

// parseSelection parses a "tokenId=value" argument.
func parseSelection(arg string, custom bool) (models.Selection, error) {
	parts := strings.SplitN(arg, "=", 2)
	if len(parts) != 2 || parts[0] == "" {
		return models.Selection{}, fmt.Errorf("invalid selection %q, expected tokenId=value", arg)
	}
	sel := models.Selection{TokenID: parts[0]}
	if custom {
		sel.CustomValue = parts[1]
	} else {
		sel.Value = parts[1]
	}
	return sel, nil
}

func (c *CLI) printUsage() error {
	fmt.Println(`Usage: promptdeck <command> [options]

Commands:
  tokens                     List tokens (--format json|ids|table, --category <c>)
  token show <id>            Show a token as JSON
  token delete <id>          Delete a token and cascade its slots
  templates                  List templates (--format json|ids)
  template show <id>         Show a template (--format json)
  template duplicate <id>    Deep-copy a template
  template delete <id>       Delete a template
  template reorder <id> <from> <to>
                             Move a slot within a template
  build <id>                 Assemble a prompt
                             (--var token=value, --custom token=value,
                              --style, --motion, --copy, --truncate,
                              --format json)
  preview <id>               Assemble using defaults (--style)
  validate <id>              Check required tokens (--var token=value)
  search <query>             Fuzzy-search tokens and templates
  banned [list|add|remove]   Manage the global banned-term list
  save | load | reset        Persist, restore, or reset the config
  help                       Show this help`)
	return nil
}

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/framecraft/promptdeck/internal/cli"
	"github.com/framecraft/promptdeck/internal/errors"
	"github.com/framecraft/promptdeck/internal/service"
	"github.com/framecraft/promptdeck/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

var version = "0.1.0"

func printHelp() {
	fmt.Printf(`promptdeck - Token-based prompt assembly for generative video and image models

USAGE:
    promptdeck [OPTIONS] [COMMAND]

OPTIONS:
    --help          Show this help information
    --version       Print version information
    --init          Initialize the config directory
    --verbose       Log error details

COMMANDS:
    (no command)       Start interactive TUI mode
    tokens             List all tokens
    token              Token management (show, delete)
    templates          List all templates
    template           Template management (show, duplicate, delete, reorder)
    build <id>         Build a prompt from a template
    preview <id>       Preview a template with default selections
    validate <id>      Validate selections against a template
    search <query>     Fuzzy-search tokens and templates
    banned             Manage the banned term list (list, add, remove)
    save               Persist the current config
    load               Reload the config from disk
    reset              Reset the config to built-in defaults
    help               Show CLI command help

EXAMPLES:
    promptdeck                                      # Start interactive mode
    promptdeck --init                               # Create the config directory
    promptdeck tokens --format table                # List tokens in table format
    promptdeck build cinematic-shot --var subject="a lighthouse keeper"
    promptdeck build cinematic-shot --style --motion --copy
    promptdeck preview cinematic-shot --style
    promptdeck banned add "watermark"
    promptdeck help build                           # Get detailed help

STORAGE:
    Default directory: ~/.promptdeck
    Override with: PROMPTDECK_DIR=<path>
`)
}

func main() {
	var showVersion bool
	var initLib bool
	var showHelp bool
	var verbose bool

	flag.BoolVar(&showVersion, "version", false, "Print version information")
	flag.BoolVar(&initLib, "init", false, "Initialize the config directory")
	flag.BoolVar(&showHelp, "help", false, "Show help information")
	flag.BoolVar(&verbose, "verbose", false, "Log error details")
	flag.Parse()

	if showHelp {
		printHelp()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("promptdeck version %s\n", version)
		os.Exit(0)
	}

	// Initialize service with file storage
	svc, err := service.NewService()
	if err != nil {
		fmt.Println(err)
		return
	}

	if initLib {
		if err := svc.InitLibrary(); err != nil {
			fmt.Println("Error initializing config directory:", err)
			return
		}
		fmt.Println("Initialized promptdeck config directory")
		return
	}

	// Check if we have command line arguments for CLI mode
	args := flag.Args()
	if len(args) > 0 {
		// CLI mode - execute command and exit
		cliHandler := cli.NewCLI(svc)
		if err := cliHandler.ExecuteCommand(args); err != nil {
			errHandler := errors.NewCLIErrorHandler(verbose)
			fmt.Fprintln(os.Stderr, errHandler.HandleError(err))
			os.Exit(1)
		}
		return
	}

	// No arguments provided - start TUI mode
	model, err := ui.NewModel(svc)
	if err != nil {
		fmt.Println(err)
		return
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println(err)
		return
	}
}

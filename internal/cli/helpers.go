package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cantonlabs/ledgerview/internal/core"
	"github.com/cantonlabs/ledgerview/internal/dispatch"
	"github.com/cantonlabs/ledgerview/internal/errors"
	"golang.org/x/term"
)

// loadConfig loads the configuration from the data directory.
func loadConfig() (*core.Config, error) {
	dataDir, err := core.DataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get data directory: %w", err)
	}

	// Ensure data directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg, err := core.LoadConfig(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// newDispatcher builds the document store and the fixed operation
// catalog over it. Every command and both servers go through this.
func newDispatcher(cfg *core.Config) (*dispatch.Dispatcher, error) {
	docsDir, err := core.DocsDir(cfg)
	if err != nil {
		return nil, err
	}

	store, err := core.NewDocStore(docsDir)
	if err != nil {
		return nil, err
	}

	registry, err := dispatch.NewCatalog(store)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}

	return dispatch.NewDispatcher(registry), nil
}

// outputJSON marshals and prints JSON to stdout.
func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// isTerminal checks if the given file descriptor is a TTY.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// getExitCode maps error codes to CLI exit codes.
func getExitCode(err error) int {
	if err == nil {
		return 0
	}

	code := errors.Code(err)
	switch code {
	case errors.CodeToolNotFound, errors.CodeResourceNotFound, errors.CodeDocNotFound:
		return 4 // Unknown operation or document
	case errors.CodeDocExists:
		return 3 // Creation collision
	case errors.CodeInvalidParams, errors.CodeDocNameInvalid:
		return 2 // Bad input
	default:
		return 1 // General error
	}
}

// printError prints an error to stderr with appropriate formatting.
func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

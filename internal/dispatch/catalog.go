package dispatch

import (
	"fmt"
	"strings"

	"github.com/cantonlabs/ledgerview/internal/core"
	"github.com/cantonlabs/ledgerview/internal/errors"
)

// Resource URIs for the fixed documentation catalog.
const (
	URIScheme       = "canton://docs/"
	URISafetyGates  = URIScheme + "safety-gates"
	URIAuthPatterns = URIScheme + "auth-patterns"
)

// DocURI returns the resource URI for a canonical document id.
func DocURI(id string) string {
	return URIScheme + id
}

// Seed content for the documentation store. Externally edited files
// win; these are only written when absent.
const (
	safetyGatesDoc = `Canton Safety Gates Architecture:
Gate 1: DAML Compiler Safety - Patterns must compile successfully.
Gate 2: Safety Annotations - Patterns must have safety metadata.
Gate 3: Formal Verification - Safety properties must be verified.
Gate 4: Production Readiness - Must be production-tested and certified.
`

	authPatternsDoc = `DAML Authorization Patterns:
1. Proposer-Acceptor: Ensures multi-party agreement.
2. Delegation: One party authorizes another to act.
3. Mandatory Signatories: Contracts cannot be created without required signatures.
`
)

// NewCatalog seeds the documentation store and builds the fixed
// operation registry over it. This is the only place operations are
// defined; both transport adapters are generated from the result.
func NewCatalog(store *core.DocStore) (*Registry, error) {
	if err := store.Seed("safety-gates", safetyGatesDoc); err != nil {
		return nil, fmt.Errorf("failed to seed safety-gates: %w", err)
	}
	if err := store.Seed("auth-patterns", authPatternsDoc); err != nil {
		return nil, fmt.Errorf("failed to seed auth-patterns: %w", err)
	}

	tools := []Tool{
		{
			Name:        "analyze_daml_safety",
			Description: "Analyzes DAML code against the Canton Safety Gates",
			Params: []Param{
				{Name: "code", Required: true, Description: "DAML source code to analyze"},
			},
			Handler: func(args map[string]any) (string, error) {
				code := StringArg(args, "code")
				if code == "" {
					return "", errors.InvalidParams("code must be a non-empty string")
				}
				return core.AnalyzeSafety(code), nil
			},
		},
		{
			Name:        "generate_canton_deployment_script",
			Description: "Generates a starter deployment script for a Canton network",
			Params: []Param{
				{Name: "network_type", Default: "dev", Description: `Target network: "dev" or "prod"`},
			},
			Handler: func(args map[string]any) (string, error) {
				return core.DeploymentScript(StringArg(args, "network_type")), nil
			},
		},
		{
			Name:        "get_project_summary",
			Description: "Reads package.json and counts files to summarize a project",
			Params: []Param{
				{Name: "project_path", Default: ".", Description: "Relative or absolute path to the project root"},
			},
			Handler: func(args map[string]any) (string, error) {
				return core.SummarizeProject(StringArg(args, "project_path"))
			},
		},
		{
			Name:        "check_server_status",
			Description: "Returns a simple OK if the server is up",
			Handler: func(args map[string]any) (string, error) {
				return core.StatusHealthy, nil
			},
		},
		{
			Name:        "add_documentation",
			Description: "Stores a new documentation file in the docs directory",
			Params: []Param{
				{Name: "filename", Required: true, Description: "Name for the new document; extension is appended if absent"},
				{Name: "content", Required: true, Description: "Document text"},
			},
			Handler: func(args map[string]any) (string, error) {
				id, err := store.Create(StringArg(args, "filename"), StringArg(args, "content"))
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Added documentation %q (readable at %s)", id, DocURI(id)), nil
			},
		},
		{
			Name:        "list_available_docs",
			Description: "Lists all documentation files currently in the store",
			Handler: func(args map[string]any) (string, error) {
				ids, err := store.List()
				if err != nil {
					return "", err
				}
				if len(ids) == 0 {
					return "No documentation available.", nil
				}
				return strings.Join(ids, "\n"), nil
			},
		},
	}

	resources := []Resource{
		docResource(store, "Safety Gates", URISafetyGates,
			"The core Safety Gates architecture for Canton development"),
		docResource(store, "Auth Patterns", URIAuthPatterns,
			"Canonical DAML authorization patterns"),
	}

	return NewRegistry(tools, resources)
}

// docResource builds a resource backed by the documentation store.
// The store is re-read on every call; a missing backing document
// yields an explanatory text payload, never a dispatch-level error.
func docResource(store *core.DocStore, name, uri, description string) Resource {
	id := strings.TrimPrefix(uri, URIScheme)
	return Resource{
		Name:        name,
		URI:         uri,
		Description: description,
		MIMEType:    "text/plain",
		Handler: func() string {
			content, err := store.Read(id)
			if err != nil {
				return fmt.Sprintf("Documentation file %q not found in the store.", id)
			}
			return content
		},
	}
}

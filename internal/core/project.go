package core

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cantonlabs/ledgerview/internal/errors"
)

// ProjectSummary describes a project directory at the moment it was
// scanned. It is computed fresh per call and never cached.
type ProjectSummary struct {
	Name         string
	Dependencies []string
	TotalFiles   int
}

// packageManifest is the subset of package.json we care about.
type packageManifest struct {
	Name         string            `json:"name"`
	Dependencies map[string]string `json:"dependencies"`
}

// SummarizeProject reads package.json under projectPath and counts
// entries in the tree, skipping node_modules.
//
// A missing package.json is reported in the returned text rather than
// as an error, matching the tool's contract of always producing a
// readable answer for the agent.
func SummarizeProject(projectPath string) (string, error) {
	basePath, err := filepath.Abs(projectPath)
	if err != nil {
		return "", errors.ProjectInvalid(projectPath, err)
	}

	manifestPath := filepath.Join(basePath, "package.json")
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Sprintf("Error: No package.json found at %s", basePath), nil
		}
		return "", errors.ProjectInvalid(projectPath, err)
	}

	var manifest packageManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return "", errors.ProjectInvalid(projectPath, err)
	}

	summary := ProjectSummary{
		Name:         manifest.Name,
		Dependencies: sortedKeys(manifest.Dependencies),
	}
	if summary.Name == "" {
		summary.Name = "Unknown"
	}

	count, err := countProjectFiles(basePath)
	if err != nil {
		return "", errors.ProjectInvalid(projectPath, err)
	}
	summary.TotalFiles = count

	return fmt.Sprintf("Project: %s\nDependencies: %s\nEstimated Files: %d",
		summary.Name, strings.Join(summary.Dependencies, ", "), summary.TotalFiles), nil
}

// countProjectFiles counts files and directories under basePath,
// skipping node_modules subtrees. The root itself is not counted.
func countProjectFiles(basePath string) (int, error) {
	count := 0
	err := filepath.WalkDir(basePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == basePath {
			return nil
		}
		if d.IsDir() && d.Name() == "node_modules" {
			return filepath.SkipDir
		}
		count++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

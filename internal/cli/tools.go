package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the registered tools",
	Long:  `Lists every tool in the fixed operation catalog with its parameters.`,
	Args:  cobra.NoArgs,
	RunE:  runTools,
}

func runTools(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dispatcher, err := newDispatcher(cfg)
	if err != nil {
		return err
	}

	tools := dispatcher.Registry().Tools()

	if flagJSON {
		type paramOut struct {
			Name     string `json:"name"`
			Required bool   `json:"required"`
			Default  string `json:"default,omitempty"`
		}
		type toolOut struct {
			Name        string     `json:"name"`
			Description string     `json:"description"`
			Params      []paramOut `json:"params,omitempty"`
		}

		out := make([]toolOut, 0, len(tools))
		for _, tool := range tools {
			entry := toolOut{Name: tool.Name, Description: tool.Description}
			for _, p := range tool.Params {
				entry.Params = append(entry.Params, paramOut{Name: p.Name, Required: p.Required, Default: p.Default})
			}
			out = append(out, entry)
		}
		return outputJSON(map[string]any{"tools": out})
	}

	for _, tool := range tools {
		fmt.Printf("%s - %s\n", tool.Name, tool.Description)
		if flagQuiet {
			continue
		}
		for _, p := range tool.Params {
			switch {
			case p.Required:
				fmt.Printf("    %s (required)\n", p.Name)
			case p.Default != "":
				fmt.Printf("    %s (default: %s)\n", p.Name, p.Default)
			default:
				fmt.Printf("    %s\n", p.Name)
			}
		}
	}
	return nil
}

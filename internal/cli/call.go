package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call <tool> [key=value ...]",
	Short: "Invoke a tool through the dispatcher",
	Long: `Invokes a registered tool with key=value arguments and prints the
response text, exactly as an agent would receive it over either transport.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func runCall(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dispatcher, err := newDispatcher(cfg)
	if err != nil {
		return err
	}

	toolArgs := make(map[string]any, len(args)-1)
	for _, pair := range args[1:] {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return fmt.Errorf("argument %q is not in key=value form", pair)
		}
		toolArgs[key] = value
	}

	result, err := dispatcher.CallTool(args[0], toolArgs)
	if err != nil {
		return err
	}

	if flagJSON {
		return outputJSON(map[string]any{
			"text":    result.Text,
			"isError": result.IsError,
		})
	}

	if result.IsError {
		return fmt.Errorf("%s", result.Text)
	}
	fmt.Println(result.Text)
	return nil
}

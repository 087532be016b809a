package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/cantonlabs/ledgerview/internal/core"
	"github.com/cantonlabs/ledgerview/internal/dispatch"
	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Manage the documentation store",
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored documentation",
	Args:  cobra.NoArgs,
	RunE:  runDocsList,
}

var docsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a stored document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsShow,
}

var docsAddCmd = &cobra.Command{
	Use:   "add <name> [content]",
	Short: "Store a new document",
	Long: `Stores a new document under the given name. Content comes from the
second argument, or from stdin when piped. Creation never overwrites an
existing document.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDocsAdd,
}

func init() {
	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsShowCmd)
	docsCmd.AddCommand(docsAddCmd)
}

func openDocStore() (*core.DocStore, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	docsDir, err := core.DocsDir(cfg)
	if err != nil {
		return nil, err
	}
	return core.NewDocStore(docsDir)
}

func runDocsList(cmd *cobra.Command, args []string) error {
	store, err := openDocStore()
	if err != nil {
		return err
	}

	ids, err := store.List()
	if err != nil {
		return err
	}

	if flagJSON {
		return outputJSON(map[string]any{"docs": ids})
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

func runDocsShow(cmd *cobra.Command, args []string) error {
	store, err := openDocStore()
	if err != nil {
		return err
	}

	content, err := store.Read(args[0])
	if err != nil {
		return err
	}
	fmt.Print(content)
	return nil
}

func runDocsAdd(cmd *cobra.Command, args []string) error {
	store, err := openDocStore()
	if err != nil {
		return err
	}

	var content string
	if len(args) == 2 {
		content = args[1]
	} else {
		if isTerminal(os.Stdin) {
			return fmt.Errorf("no content given: pass it as an argument or pipe it on stdin")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		content = string(data)
	}

	id, err := store.Create(args[0], content)
	if err != nil {
		return err
	}

	if flagJSON {
		return outputJSON(map[string]any{"id": id, "uri": dispatch.DocURI(id)})
	}
	if !flagQuiet {
		fmt.Printf("Added documentation %q (readable at %s)\n", id, dispatch.DocURI(id))
	}
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jakoblorz/go-fexplorer/internal/tui/menu"
	"github.com/spf13/cobra"
)

// InfoCommand handles the info command
type InfoCommand struct {
	rt *Runtime
}

// NewInfoCommand creates a new info command
func NewInfoCommand(rt *Runtime) *cobra.Command {
	cmd := &InfoCommand{rt: rt}

	cobraCmd := &cobra.Command{
		Use:   "info NAME",
		Short: "Show metadata of a file or directory",
		Long: `Prints type, size, permissions, owner, group and timestamps of NAME,
resolved against the start directory. Regular files also get their MIME type.`,
		Example: `  fexplorer info go.mod
  fexplorer info /etc/hosts --format json`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("format", "text", "Output format: text or json")

	return cobraCmd
}

// Run executes the info command
func (c *InfoCommand) Run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if err := validateFormat(format); err != nil {
		return err
	}

	session, err := c.rt.Session()
	if err != nil {
		return err
	}

	entry, err := session.Info(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entry)
	}

	_, _ = fmt.Fprintln(out, menu.RenderInfo(entry))
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jakoblorz/go-fexplorer/internal/tui/menu"
	"github.com/spf13/cobra"
)

// LsCommand handles the ls command
type LsCommand struct {
	rt *Runtime
}

// NewLsCommand creates a new ls command
func NewLsCommand(rt *Runtime) *cobra.Command {
	cmd := &LsCommand{rt: rt}

	cobraCmd := &cobra.Command{
		Use:   "ls",
		Short: "List the start directory",
		Long: `Lists the start directory once and exits.

The simple listing shows directories first, then files, each sorted by name.
The long listing adds permissions, owner, group, size and modification time
and keeps the order in which the directory returned its entries.`,
		Example: `  fexplorer ls --dir /etc
  fexplorer ls --long
  fexplorer ls --format json | jq '.[].name'`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().BoolP("long", "l", false, "Show the detailed listing")
	cobraCmd.Flags().String("format", "text", "Output format: text or json")

	return cobraCmd
}

// Run executes the ls command
func (c *LsCommand) Run(cmd *cobra.Command, args []string) error {
	long, _ := cmd.Flags().GetBool("long")
	format, _ := cmd.Flags().GetString("format")
	if err := validateFormat(format); err != nil {
		return err
	}

	session, err := c.rt.Session()
	if err != nil {
		return err
	}

	entries, err := session.List(long)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if long {
		_, _ = fmt.Fprintln(out, menu.RenderDetailedListing(session.Dir(), entries))
	} else {
		_, _ = fmt.Fprintln(out, menu.RenderListing(session.Dir(), entries))
	}
	return nil
}

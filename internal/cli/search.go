package cli

import (
	"encoding/json"
	"fmt"

	fxerrors "github.com/jakoblorz/go-fexplorer/internal/errors"
	"github.com/jakoblorz/go-fexplorer/internal/explorer"
	"github.com/jakoblorz/go-fexplorer/internal/models"
	"github.com/spf13/cobra"
)

// SearchCommand handles the search command
type SearchCommand struct {
	rt *Runtime
}

// NewSearchCommand creates a new search command
func NewSearchCommand(rt *Runtime) *cobra.Command {
	cmd := &SearchCommand{rt: rt}

	cobraCmd := &cobra.Command{
		Use:   "search PATTERN",
		Short: "Find entries whose name contains PATTERN",
		Long: `Walks the start directory recursively and prints every file or directory
whose name contains PATTERN. Matching is a case sensitive substring match;
wildcards have no special meaning.

Directories that cannot be read are skipped. The order of the results follows
the order in which directories return their entries.`,
		Example: `  fexplorer search .go --dir ~/src
  fexplorer search log --limit 10
  fexplorer search conf --format json`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("format", "text", "Output format: text or json")
	cobraCmd.Flags().Int("limit", 0, "Stop after this many matches (0 means no limit)")

	return cobraCmd
}

// Run executes the search command
func (c *SearchCommand) Run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	limit, _ := cmd.Flags().GetInt("limit")
	if err := validateFormat(format); err != nil {
		return err
	}
	if limit < 0 {
		return fxerrors.InvalidArgument("search", "", "limit cannot be negative")
	}

	session, err := c.rt.Session()
	if err != nil {
		return err
	}

	result := &models.SearchResult{
		Root:    session.Dir(),
		Pattern: args[0],
		Paths:   []string{},
	}
	err = session.Searcher.Walk(session.Dir(), args[0], func(path string) error {
		result.Paths = append(result.Paths, path)
		if limit > 0 && result.Len() >= limit {
			return explorer.ErrStopSearch
		}
		return nil
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	for _, p := range result.Paths {
		_, _ = fmt.Fprintln(out, p)
	}
	return nil
}

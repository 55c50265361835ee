package cli

import (
	"fmt"
	"log/slog"

	"github.com/jakoblorz/go-fexplorer/internal/config"
	"github.com/jakoblorz/go-fexplorer/internal/explorer"
	"github.com/jakoblorz/go-fexplorer/internal/filesystem"
	"github.com/jakoblorz/go-fexplorer/internal/logging"
	"github.com/jakoblorz/go-fexplorer/internal/tui/menu"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Runtime carries what PersistentPreRunE resolved for the command that runs
type Runtime struct {
	fs      filesystem.FileSystem
	viper   *viper.Viper
	cfgFile string

	Config *config.Config
	Logger *slog.Logger
}

func (r *Runtime) load() error {
	if err := config.ReadFile(r.viper, r.cfgFile); err != nil {
		return err
	}

	cfg, err := config.Load(r.viper)
	if err != nil {
		return err
	}

	r.Config = cfg
	r.Logger = logging.NewLogger(cfg.Log)
	return nil
}

// Session opens a session at the configured start directory. The start
// directory has to be enterable, like any navigation target.
func (r *Runtime) Session() (*explorer.Session, error) {
	session := explorer.NewSession(r.fs, r.Logger, explorer.Options{
		StartDir: r.Config.StartDir,
		Search: explorer.SearchOptions{
			FollowSymlinks: r.Config.Search.FollowSymlinks,
			IgnoreFile:     r.Config.Search.IgnoreFile,
		},
	})

	if r.Config.StartDir != "" {
		if _, err := session.ChangeDirectory(r.Config.StartDir); err != nil {
			return nil, err
		}
	}

	return session, nil
}

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem) *cobra.Command {
	rt := &Runtime{
		fs:    fs,
		viper: viper.New(),
	}
	config.SetDefaults(rt.viper)

	rootCmd := &cobra.Command{
		Use:   "fexplorer",
		Short: "Interactive file explorer for the terminal",
		Long: `An interactive, menu driven file manager.

Without a subcommand fexplorer opens the menu: list, navigate, create,
delete, copy, move, search, inspect and chmod, all relative to a current
directory that persists between commands. The subcommands run a single
operation for use in scripts.`,
		Example: `  # Start the menu in the working directory
  fexplorer

  # Start in /var/log with line based prompts
  fexplorer --dir /var/log --plain

  # Find every entry whose name contains "conf"
  fexplorer search conf --dir /etc`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, rt)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rt.cfgFile, "config", "", "config file (default is $HOME/.config/fexplorer/config.yaml)")
	flags.String("dir", "", "start directory (default is the working directory)")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.String("log-format", "text", "log format: text or json")
	flags.Bool("plain", false, "use line based prompts even on a terminal")
	flags.Bool("follow-symlinks", false, "descend into symbolic links to directories when searching")
	flags.String("ignore-file", "", "gitignore style file in the search root listing entries to skip")

	bind := map[string]string{
		config.KeyStartDir:       "dir",
		config.KeyLogLevel:       "log-level",
		config.KeyLogFormat:      "log-format",
		config.KeyPlain:          "plain",
		config.KeyFollowSymlinks: "follow-symlinks",
		config.KeyIgnoreFile:     "ignore-file",
	}
	for key, flag := range bind {
		_ = rt.viper.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(NewLsCommand(rt))
	rootCmd.AddCommand(NewSearchCommand(rt))
	rootCmd.AddCommand(NewInfoCommand(rt))

	return rootCmd
}

func runInteractive(cmd *cobra.Command, rt *Runtime) error {
	session, err := rt.Session()
	if err != nil {
		return err
	}

	prompter := menu.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), menu.PrompterOptions{
		Plain:     rt.Config.UI.Plain,
		AltScreen: rt.Config.UI.AltScreen,
	})

	flow := menu.NewFlow(session, prompter, cmd.OutOrStdout(), cmd.ErrOrStderr(), rt.Logger)
	return flow.Run()
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand(filesystem.NewOSFileSystem())

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}

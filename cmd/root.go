package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/termgo-sh/termgo/internal/builtin"
	"github.com/termgo-sh/termgo/internal/config"
	"github.com/termgo-sh/termgo/internal/engine"
	"github.com/termgo-sh/termgo/internal/history"
	"github.com/termgo-sh/termgo/internal/session"
	"github.com/termgo-sh/termgo/internal/shell"
	"github.com/termgo-sh/termgo/internal/stats"
	"github.com/termgo-sh/termgo/internal/term"
)

var cfgPath string

// rootCmd starts the interactive interpreter.
var rootCmd = &cobra.Command{
	Use:          "termgo",
	Short:        "An interactive command interpreter",
	Long:         "termgo reads command lines, runs builtins or external programs\nagainst a tracked working directory, and reports their output.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, sess, eng, err := setup()
		if err != nil {
			return err
		}

		repl := &term.REPL{
			Engine:  eng,
			Session: sess,
			Config:  cfg,
			Store:   historyStore(cfg, sess),
		}
		return repl.Run()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}

// setup wires the production dependencies: the real filesystem, host
// stats, and the builtin table.
func setup() (*config.Configuration, *session.Session, *engine.Engine, error) {
	fsys := afero.NewOsFs()

	cfg, err := config.Load(fsys, cfgPath)
	if err != nil {
		return nil, nil, nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, nil, err
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = cwd
	}

	sess := session.New(fsys, cwd, home)
	eng := engine.New(builtin.NewRegistry(), engine.Options{
		Stats:         stats.Host(),
		ProcessSample: cfg.ProcessSample,
		HistoryLimit:  cfg.HistoryLimit,
		Color:         cfg.Color,
	})
	return cfg, sess, eng, nil
}

func historyStore(cfg *config.Configuration, sess *session.Session) *history.Store {
	path := shell.Resolve(cfg.HistoryFile, sess.Getwd(), sess.Home())
	return history.NewStore(sess.FS(), path, cfg.HistoryLimit)
}

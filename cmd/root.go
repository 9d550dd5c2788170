package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"pickbox/internal/config"
	"pickbox/internal/domain"
	"pickbox/internal/eventbus"
	"pickbox/internal/source"
)

// ErrCancelled is returned when the user leaves the picker without accepting
// an option. main maps it to exit status 130.
var ErrCancelled = errors.New("pick cancelled")

var errNoOptions = errors.New("no options: pass them as arguments, with --file or on stdin")

// stdinIsTerminal is swapped out by tests
var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// rootOptions holds the flags shared by the picker commands
type rootOptions struct {
	configPath string
	file       string
	watch      bool
	prompt     string
	height     int
	query      string
	noReset    bool
	logPath    string
	sort       string
}

// Execute runs the CLI
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "pickbox [options...]",
		Short: "Pick one option from a filterable list",
		Long: `pickbox shows a filterable drop-down in the terminal and prints the value
of the chosen option to stdout.

Options come from the arguments, from --file (plain lines or TOML), or from
stdin. A line of the form "label<TAB>value" shows label and prints value.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args, nil)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	flags.StringVarP(&opts.file, "file", "f", "", "read options from a file (.toml or one option per line)")
	flags.BoolVar(&opts.watch, "watch", false, "reload --file when it changes")
	flags.StringVar(&opts.prompt, "prompt", "", "prompt shown before the query")
	flags.IntVar(&opts.height, "height", 0, "maximum number of visible options")
	flags.StringVarP(&opts.query, "query", "q", "", "initial query")
	flags.BoolVar(&opts.noReset, "no-reset", false, "keep the typed query when the list is closed with Esc")
	flags.StringVar(&opts.logPath, "log", "", "log file (default <tmp>/pickbox.log)")
	flags.StringVar(&opts.sort, "sort", "", "option order: none, label or value")

	rootCmd.AddCommand(newDemoCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// run loads config and options, runs the picker and prints the chosen value.
// fixed replaces the option sources when non-nil.
func (o *rootOptions) run(cmd *cobra.Command, args []string, fixed []domain.Option) error {
	bus := eventbus.New()
	defer bus.Close()
	unsubscribe := subscribeLoggers(bus)
	defer unsubscribe()

	cfg, err := o.loadConfig(cmd, bus)
	if err != nil {
		return err
	}

	closeLog := setupLogging(cfg.LogPath())
	defer closeLog()

	req := pickRequest{Options: fixed, Query: o.query}
	if fixed == nil {
		if req.Options, req.InputTTY, err = o.collectOptions(cmd, args); err != nil {
			return err
		}
		if o.watch {
			if o.file == "" {
				return errors.New("--watch needs --file")
			}
			req.WatchPath = o.file
		}
	}
	if len(req.Options) == 0 {
		return errNoOptions
	}

	res, err := runPicker(cfg, bus, req)
	if err != nil {
		return err
	}
	if res.Cancelled || res.Selected == nil {
		return ErrCancelled
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Selected.Value)
	return nil
}

// loadConfig reads the config file and applies the flags the user set
func (o *rootOptions) loadConfig(cmd *cobra.Command, bus eventbus.EventBus) (*config.Config, error) {
	svc := config.NewConfigServiceWithBus(o.configPath, bus)

	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		// An explicit path must exist
		cfg, err = svc.LoadFromPath(o.configPath)
	} else {
		cfg, err = svc.Load()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("prompt") {
		cfg.Prompt = o.prompt
	}
	if flags.Changed("height") {
		cfg.MaxVisible = o.height
	}
	if flags.Changed("no-reset") {
		cfg.ResetOnCancel = !o.noReset
	}
	if flags.Changed("log") {
		cfg.LogFile = o.logPath
	}
	if flags.Changed("sort") {
		cfg.Sort = o.sort
	}
	cfg.Validate()

	return cfg, nil
}

// collectOptions picks the option source: --file, then arguments, then stdin.
// inputTTY reports that stdin carried the options, so keys must come from
// the terminal device instead.
func (o *rootOptions) collectOptions(cmd *cobra.Command, args []string) (options []domain.Option, inputTTY bool, err error) {
	switch {
	case o.file != "":
		options, err = source.LoadFile(o.file)
		if err != nil {
			return nil, false, err
		}
		return append(options, source.FromArgs(args)...), false, nil

	case len(args) > 0:
		return source.FromArgs(args), false, nil

	case !stdinIsTerminal():
		options, err = source.ParseLines(cmd.InOrStdin())
		return options, true, err
	}
	return nil, false, nil
}

// Package cmd implements the siteshield CLI commands using Cobra.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/toyinlola/siteshield/pkg/cli"
	"github.com/toyinlola/siteshield/pkg/commands"
	"github.com/toyinlola/siteshield/pkg/edgerc"
	"github.com/toyinlola/siteshield/pkg/interfaces"
	"github.com/toyinlola/siteshield/pkg/logging"
	"github.com/toyinlola/siteshield/pkg/report"
	"github.com/toyinlola/siteshield/pkg/signing"
	"github.com/toyinlola/siteshield/pkg/siteshield"
)

// app holds the global flags and the state shared by every subcommand of
// one invocation.
type app struct {
	cfgFile    string
	edgerc     string
	section    string
	accountKey string
	logFile    string
	debug      bool

	env    *cli.Environment
	cfg    *cli.Config
	logger *logging.Logger
}

// NewRootCmd builds the command tree. env supplies the launcher variables.
func NewRootCmd(env *cli.Environment) *cobra.Command {
	root, _ := newRoot(env)
	return root
}

func newRoot(env *cli.Environment) (*cobra.Command, *app) {
	a := &app{env: env, logger: logging.Nop()}

	root := &cobra.Command{
		Use:   env.CommandName(),
		Short: "Manage Site Shield maps",
		Long: `Site Shield maps are the sets of CIDR blocks an origin should allow
traffic from. This tool lists the maps on an account, shows the CIDRs of
a single map, and acknowledges pending map updates.

Credentials are read from an .edgerc file (--edgerc, $AKAMAI_EDGERC or
~/.edgerc), section --section, $AKAMAI_EDGERC_SECTION or "default".`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Annotations: map[string]string{
			cobra.CommandDisplayNameAnnotation: env.ProgramName(),
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("{{.DisplayName}} {{.Version}} (commit %s, built %s)\n", Commit, BuildDate))

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file path (default: .siteshield.yml or .siteshield.toml)")
	flags.StringVar(&a.edgerc, "edgerc", "", "location of the credentials file [$AKAMAI_EDGERC]")
	flags.StringVar(&a.section, "section", "", "section of the credentials file [$AKAMAI_EDGERC_SECTION]")
	flags.StringVar(&a.accountKey, "account-key", "", "account switch key")
	flags.StringVar(&a.logFile, "log-file", "", "write a debug log to this file (default: $AKAMAI_CLI_CACHE_DIR/siteshield.log)")
	flags.BoolVarP(&a.debug, "debug", "d", false, "show debug output")

	root.AddCommand(
		newListMapsCmd(a),
		newListCIDRsCmd(a),
		newAcknowledgeCmd(a),
		newVersionCmd(),
	)

	// help has to work with a broken config file, so it skips setup.
	root.InitDefaultHelpCmd()
	for _, c := range root.Commands() {
		if c.Name() == "help" {
			c.PersistentPreRun = func(cmd *cobra.Command, args []string) {}
		}
	}
	return root, a
}

// Execute runs the CLI with os.Args and reports any error on stderr.
// The returned error carries the exit classification.
func Execute(ctx context.Context) error {
	env, err := cli.LoadEnvironment()
	if err != nil {
		err = interfaces.Classify(interfaces.KindConfig, err)
		report.NewConsole(os.Stderr).Errorf("%s: %v", cli.DefaultProgramName, err)
		return err
	}

	root, a := newRoot(env)
	return run(ctx, root, a, os.Stderr)
}

func run(ctx context.Context, root *cobra.Command, a *app, stderr io.Writer) error {
	err := root.ExecuteContext(ctx)
	_ = a.logger.Close()

	if err != nil && ctx.Err() != nil {
		err = &interfaces.ExitError{Kind: interfaces.KindInterrupt, Err: err}
	}
	if err != nil {
		report.NewConsole(stderr).Errorf("%s: %v", root.DisplayName(), err)
	}
	return err
}

// setup loads the config file and builds the logger. Flags given on the
// command line take precedence over the config file.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := cli.LoadConfig(a.cfgFile)
	if err != nil {
		return interfaces.Classify(interfaces.KindConfig, err)
	}
	a.cfg = cfg

	if a.edgerc == "" {
		a.edgerc = cfg.Edgerc
	}
	if a.section == "" {
		a.section = cfg.Section
	}
	if a.accountKey == "" {
		a.accountKey = cfg.AccountKey
	}

	logger, err := logging.New(logging.Options{
		Debug:    a.debug,
		Console:  cmd.ErrOrStderr(),
		FilePath: a.env.LogFile(a.logFile, cfg),
	})
	if err != nil {
		return interfaces.Classify(interfaces.KindConfig, err)
	}
	// Tags every entry so runs can be told apart in a shared log file.
	logger.Logger = logger.With(zap.String("invocation", uuid.NewString()))
	a.logger = logger

	a.logger.Debug("starting",
		zap.String("command", cmd.Name()),
		zap.String("version", Version),
		zap.String("edgerc", a.edgerc),
		zap.String("section", a.section),
		zap.Bool("account_switch", a.accountKey != ""),
	)
	return nil
}

// newClient resolves credentials and builds a signed API client.
func (a *app) newClient() (interfaces.MapsAPI, error) {
	creds, err := edgerc.Load(edgerc.Options{Path: a.edgerc, Section: a.section})
	if err != nil {
		return nil, interfaces.Classify(interfaces.KindConfig, err)
	}
	a.logger.Debug("credentials loaded", zap.String("section", creds.Section), zap.String("host", creds.Host))

	return siteshield.NewClient(creds.BaseURL(), a.accountKey, signing.NewClient(creds.Signer)), nil
}

// handler builds a command handler writing to cmd's output streams.
func (a *app) handler(cmd *cobra.Command) *commands.Handler {
	return commands.New(a.newClient, cmd.OutOrStdout(),
		commands.WithLogger(a.logger.Logger),
		commands.WithConsole(report.NewConsole(cmd.OutOrStdout())),
	)
}

// format resolves the output format from the flag, falling back to the config file.
func (a *app) format(flag string) (interfaces.Format, error) {
	if flag == "" && a.cfg != nil {
		flag = a.cfg.Format
	}
	f, ok := interfaces.ParseFormat(flag)
	if !ok {
		return "", interfaces.Errorf(interfaces.KindUsage, "unknown output format %q (want table, json, yaml or markdown)", flag)
	}
	return f, nil
}

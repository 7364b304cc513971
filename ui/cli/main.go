// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KenKundert/avendesora-sub000/buildvars"
	"github.com/KenKundert/avendesora-sub000/internal/account"
	"github.com/KenKundert/avendesora-sub000/internal/config"
	"github.com/KenKundert/avendesora-sub000/internal/engine"
	"github.com/KenKundert/avendesora-sub000/internal/i18n"
	"github.com/KenKundert/avendesora-sub000/internal/logging"
	"github.com/KenKundert/avendesora-sub000/internal/output"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// app carries what every command needs once configuration is loaded.
type app struct {
	cfgFile string
	verbose bool

	cfg    config.Config
	engine engine.Engine
	store  *account.Store

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// readSeed obtains a master seed when the accounts file has none.
	readSeed func() ([]byte, error)
	now      func() time.Time
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, now: time.Now}
	a.readSeed = a.promptSeed
	return a
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	return newApp(os.Stdin, os.Stdout, os.Stderr).rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	i18n.Init(languageHint())
	cmd := &cobra.Command{
		Use:           "avendesora",
		Short:         i18n.T("root.short"),
		Long:          i18n.T("root.long"),
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	v, c, d := resolveBuildVersion(nil)
	compositeVersion := v
	if c != "" && c != "dev" {
		compositeVersion = compositeVersion + " (" + c + ")"
	}
	if d != "" {
		compositeVersion = compositeVersion + " built: " + d
	}
	cmd.Version = compositeVersion

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	pf.String("accounts-file", "", "Accounts definition file")
	pf.String("hash-algorithm", "", "Digest algorithm (sha512, sha3-512, blake2b-512)")
	pf.String("language", "", `Message language ("en", "de")`)

	cmd.AddCommand(
		a.valueCmd(),
		a.valuesCmd(),
		a.accountsCmd(),
		a.archiveCmd(),
		a.changedCmd(),
		a.initCmd(),
		a.versionCmd(),
	)
	return cmd
}

// languageHint picks the language for help texts, which are built before
// configuration is read.
func languageHint() string {
	if l := os.Getenv("AVENDESORA_LANGUAGE"); l != "" {
		return l
	}
	return "en"
}

// setup loads configuration and prepares logging and the engine. Commands
// that need accounts call loadStore afterwards.
func (a *app) setup(cmd *cobra.Command) error {
	explicit, err := a.configPath()
	if err != nil {
		return err
	}
	a.cfg, err = config.LoadConfig[config.Config](cmd, config.Defaults(), explicit)
	if err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return fmt.Errorf("error loading config: %w", err)
	}

	if a.verbose {
		a.cfg.LogLevel = "debug"
	}
	if err := logging.SetLevel(a.cfg.LogLevel); err != nil {
		return err
	}
	i18n.Init(a.cfg.Language)

	alg, err := engine.ParseAlgorithm(a.cfg.HashAlgorithm)
	if err != nil {
		return err
	}
	a.engine = engine.New(alg)
	logging.Debugf("using %s digests", alg)
	return nil
}

func (a *app) configPath() (*string, error) {
	if a.cfgFile == "" {
		return nil, nil
	}
	if _, err := os.Stat(a.cfgFile); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &a.cfgFile, nil
}

func (a *app) loadStore() error {
	s, err := account.Load(a.cfg.AccountsFile)
	if err != nil {
		return err
	}
	a.store = s
	return nil
}

// sink returns the configured output sink.
func (a *app) sink() (output.Sink, error) {
	return output.New(a.cfg.Output, a.stdout, time.Duration(a.cfg.ClipboardClear)*time.Second)
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("version.short"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			fmt.Fprintf(a.stdout, "version: %s\n", v)
			fmt.Fprintf(a.stdout, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(a.stdout, "built: %s\n", d)
			}
		},
	}
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// If no version was discovered but a commit was provided via ldflags,
	// show that to aid support.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}

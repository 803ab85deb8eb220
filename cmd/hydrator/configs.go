package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"null-hydrator/hydrate"
	"null-hydrator/internal/config"
	"null-hydrator/options"
)

type MainConfig struct {
	Config string `cli:"name=config desc='hydration settings file (yaml)'"`
	Policy string `cli:"name=policy desc='policy flags joined by | that override the settings file'"`
	Color  bool   `cli:"name=color desc='force colored output'"`

	Settings *config.Config
	Logger   *slog.Logger

	Main *cli.Command
}

// load reads the settings file, or the defaults when none is given, and
// installs the configured logger as the default one.
func (cfg *MainConfig) load() error {
	settings := config.Default()
	if cfg.Config != "" {
		var err error
		settings, err = config.LoadFile(cfg.Config)
		if err != nil {
			return err
		}
	}

	if cfg.Policy != "" {
		policy, unknown := options.ParsePolicy(cfg.Policy)
		if len(unknown) > 0 {
			return fmt.Errorf("%w: unknown policy flags %v", cli.ErrUsage, unknown)
		}
		settings.Policy = config.PolicyFrom(policy)
	}

	if err := settings.Validate(); err != nil {
		return err
	}

	logger, err := settings.Logger(os.Stderr)
	if err != nil {
		return err
	}

	slog.SetDefault(logger)
	cfg.Settings = settings
	cfg.Logger = logger

	return nil
}

func (cfg *MainConfig) hydrateOpts() ([]hydrate.Option, error) {
	opts, err := cfg.Settings.Options()
	if err != nil {
		return nil, err
	}

	return append(opts, hydrate.WithLogger(cfg.Logger)), nil
}

// colored reports whether output to w gets colors.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd())
}

type CheckConfig struct {
	*MainConfig

	Strict  bool `cli:"name=strict desc='fail on warnings too'"`
	Verbose bool `cli:"name=v desc='describe every checked type'"`

	Check *cli.Command
}

type DemoConfig struct {
	*MainConfig

	Dump bool `cli:"name=dump desc='dump the hydrated documents'"`

	Demo *cli.Command
}

type InitConfig struct {
	*MainConfig

	Force bool `cli:"name=f desc='overwrite an existing file'"`

	Init *cli.Command
}

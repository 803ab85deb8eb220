package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/scott-cotton/cli"

	"null-hydrator/internal/config"
)

const defaultSettingsFile = "hydrate.yaml"

func initSettings(cfg *InitConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Init.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: init takes at most one file", cli.ErrUsage)
	}

	path := defaultSettingsFile
	if len(args) == 1 {
		path = args[0]
	}

	if err := writeSettings(cfg.Settings, path, cfg.Force); err != nil {
		return err
	}

	fmt.Fprintf(cc.Out, "wrote %s\n", path)
	return nil
}

// writeSettings writes settings with every policy switch set explicitly.
func writeSettings(settings *config.Config, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, use -f to overwrite", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	out := *settings
	out.Policy = config.PolicyFrom(settings.Policy.Enum())

	return config.WriteFile(&out, path)
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-i2p/go-pkgdefaults/lib/config"
	"github.com/go-i2p/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var log = logger.GetGoI2PLogger()

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := config.NewToolViper()

	root := &cobra.Command{
		Use:          "pkgdefaults",
		Short:        "Inspect the machine-wide package client defaults",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String("dir", "", "directory holding the defaults file (default "+config.SharedDir()+")")
	flags.String("file", "", "defaults file name (default "+config.DefaultsFileName+")")
	flags.StringP("output", "o", "", "output format: text or yaml (default text)")
	for _, name := range []string{"dir", "file", "output"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(newShowCommand(v), newPathCommand(v))
	return root
}

func newShowCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the default package sources, push source and restore consent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ToolConfigFromViper(v)
			if err != nil {
				return err
			}
			defaults, err := loadDefaults(cfg)
			if err != nil {
				return err
			}
			return printSnapshot(cmd.OutOrStdout(), cfg.Output, defaults.Snapshot())
		},
	}
}

func newPathCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the path of the defaults file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ToolConfigFromViper(v)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(cfg.Dir, cfg.File))
			return err
		},
	}
}

// loadDefaults uses the process-wide instance unless the location was overridden.
func loadDefaults(cfg config.ToolConfig) (*config.Defaults, error) {
	if cfg.Dir == config.SharedDir() && cfg.File == config.DefaultsFileName {
		return config.Shared()
	}
	log.WithFields(logger.Fields{
		"at":     "loadDefaults",
		"reason": "location_overridden",
		"dir":    cfg.Dir,
		"file":   cfg.File,
	}).Debug("reading defaults from a non-standard location")
	return config.New(cfg.Dir, cfg.File)
}

func printSnapshot(w io.Writer, format string, s config.Snapshot) error {
	if format == config.OutputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintln(w, "Package sources:")
	if len(s.PackageSources) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, src := range s.PackageSources {
		state := "enabled"
		if !src.IsEnabled {
			state = "disabled"
		}
		fmt.Fprintf(w, "  %s [%s]\n", src, state)
	}
	fmt.Fprintf(w, "Default push source: %s\n", orNone(s.DefaultPushSource))
	_, err := fmt.Fprintf(w, "Package restore consent: %s\n", orNone(s.PackageRestoreConsent))
	return err
}

func orNone(v *string) string {
	if v == nil {
		return "(none)"
	}
	return *v
}

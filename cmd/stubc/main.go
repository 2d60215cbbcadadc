package main

import (
	"context"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/KimMachineGun/stubc/internal/stubc"
)

func newRootCommand(run func(ctx context.Context, c Config) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stubc [patterns | interfaces]",
		Short: "Generate stubc proxies for interfaces",
		Long: `stubc generates the proxy types backing stubc.New.

Without flags, it runs the generator functions found in the packages matching
the patterns. With a destination, it writes proxies of the given interfaces
({package-path}.{interface-name}) into the package in the working directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := LoadConfig(cmd, args)
			if err != nil {
				return err
			}

			return run(cmd.Context(), c)
		},
	}

	cmd.Flags().String("config", "", "YAML file holding the flag mode options")
	cmd.Flags().String("destination", "", "flag mode: destination of generated file")
	cmd.Flags().String("prefix", defaultPrefix, "flag mode: prefix of generated proxy names")
	cmd.Flags().String("suffix", "", "flag mode: suffix of generated proxy names")

	return cmd
}

func run(ctx context.Context, c Config) error {
	wd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "cannot get working directory")
	}

	if c.IsGeneratorMode() {
		return stubc.Generate(ctx, wd, c.Patterns)
	}

	err = c.ValidateFlags()
	if err != nil {
		return err
	}

	return stubc.GenerateWithFlags(ctx, wd, c.Flags())
}

func main() {
	log.SetFlags(0)

	err := newRootCommand(run).ExecuteContext(context.Background())
	if err != nil {
		log.Fatalln(err)
	}
}

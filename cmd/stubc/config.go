package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KimMachineGun/stubc/internal/stubc"
)

const defaultPrefix = "stubc"

// Config holds the options of the flag mode. It is read from the config
// file first, then the command line flags override it.
type Config struct {
	Destination string   `yaml:"destination"`
	Prefix      string   `yaml:"prefix"`
	Suffix      string   `yaml:"suffix"`
	Interfaces  []string `yaml:"interfaces"`

	// Patterns are the package patterns of the generator mode.
	Patterns []string `yaml:"-"`
}

func (c Config) IsGeneratorMode() bool {
	if c.Destination != "" || len(c.Interfaces) != 0 {
		return false
	}

	return true
}

func (c Config) ValidateFlags() error {
	if c.Destination == "" {
		return errors.New("destination flag is required in command line flags mode")
	}
	if len(c.Interfaces) == 0 {
		return errors.New("at least one interface is required in command line flags mode")
	}
	if c.Prefix == "" && c.Suffix == "" {
		return errors.New("prefix and suffix flags should not be both empty strings")
	}

	return nil
}

func (c Config) Flags() stubc.Flags {
	return stubc.Flags{
		Destination:     c.Destination,
		ProxyNamePrefix: c.Prefix,
		ProxyNameSuffix: c.Suffix,
		Interfaces:      c.Interfaces,
	}
}

func readConfigFile(path string, c *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "cannot read config file")
	}

	err = yaml.Unmarshal(data, c)
	if err != nil {
		return errors.Wrapf(err, "cannot parse config file %s", path)
	}

	return nil
}

// LoadConfig merges the config file named by the config flag with the flags
// set on cmd. Positional arguments are interfaces when the result is in flag
// mode and package patterns otherwise.
func LoadConfig(cmd *cobra.Command, args []string) (Config, error) {
	c := Config{Prefix: defaultPrefix}

	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return Config{}, err
	}
	if path != "" {
		err = readConfigFile(path, &c)
		if err != nil {
			return Config{}, err
		}
	}

	for name, dst := range map[string]*string{
		"destination": &c.Destination,
		"prefix":      &c.Prefix,
		"suffix":      &c.Suffix,
	} {
		if !flags.Changed(name) {
			continue
		}
		*dst, err = flags.GetString(name)
		if err != nil {
			return Config{}, err
		}
	}

	if c.Destination != "" || len(c.Interfaces) != 0 {
		c.Interfaces = append(c.Interfaces, args...)
	} else {
		c.Patterns = args
	}

	return c, nil
}

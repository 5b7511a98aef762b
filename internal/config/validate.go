package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateRoster(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.SourceFile == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/ertnotes/config.toml"
		}
		return fmt.Errorf("paths.source_file is required. Edit %s (create with 'ertnotes config init')", defaultPath)
	}
	return nil
}

func (c *Config) validateRoster() error {
	if len(c.Roster.Names) == 0 && c.Roster.File == "" {
		return errors.New("roster.names or roster.file must be set")
	}
	switch c.Roster.SupervisorVisibility {
	case "all", "roster", "non-roster":
	default:
		return fmt.Errorf("roster.supervisor_visibility must be all, roster, or non-roster (got %q)", c.Roster.SupervisorVisibility)
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.NonRosterFile == c.Output.EncapsulatedFile {
		return errors.New("output.non_roster_file and output.encapsulated_file must differ")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	return nil
}

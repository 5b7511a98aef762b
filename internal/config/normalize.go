package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeRoster(); err != nil {
		return err
	}
	c.normalizeOutput()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.SourceFile, err = expandPath(strings.TrimSpace(c.Paths.SourceFile)); err != nil {
		return fmt.Errorf("paths.source_file: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeRoster() error {
	names := make([]string, 0, len(c.Roster.Names))
	for _, name := range c.Roster.Names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	c.Roster.Names = names

	c.Roster.File = strings.TrimSpace(c.Roster.File)
	if c.Roster.File != "" {
		expanded, err := expandPath(c.Roster.File)
		if err != nil {
			return fmt.Errorf("roster.file: %w", err)
		}
		c.Roster.File = expanded
	}

	c.Roster.Supervisor = strings.TrimSpace(c.Roster.Supervisor)
	if c.Roster.Supervisor == "" {
		c.Roster.Supervisor = defaultSupervisor
	}
	c.Roster.SupervisorVisibility = strings.ToLower(strings.TrimSpace(c.Roster.SupervisorVisibility))
	if c.Roster.SupervisorVisibility == "" {
		c.Roster.SupervisorVisibility = defaultSupervisorVisibility
	}
	return nil
}

func (c *Config) normalizeOutput() {
	if strings.TrimSpace(c.Output.AssigneeSuffix) == "" {
		c.Output.AssigneeSuffix = defaultAssigneeSuffix
	}
	if strings.TrimSpace(c.Output.NonRosterFile) == "" {
		c.Output.NonRosterFile = defaultNonRosterFile
	}
	if strings.TrimSpace(c.Output.EncapsulatedFile) == "" {
		c.Output.EncapsulatedFile = defaultEncapsulatedFile
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

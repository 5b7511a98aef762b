package main

import (
	"strings"
	"sync"

	"ertnotes/internal/config"
	"ertnotes/internal/roster"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	rosterOnce sync.Once
	roster     *roster.Roster
	rosterErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureRoster() (*roster.Roster, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	c.rosterOnce.Do(func() {
		c.roster, c.rosterErr = roster.FromConfig(cfg)
	})
	return c.roster, c.rosterErr
}

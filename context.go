package main

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/maastricht-university/interview-pipeline/config"
	"github.com/maastricht-university/interview-pipeline/logging"
	"github.com/maastricht-university/interview-pipeline/orchestrator"
	"github.com/maastricht-university/interview-pipeline/transcript"
)

type commandContext struct {
	configFlag    string
	logLevelFlag  string
	logFormatFlag string

	configOnce sync.Once
	config     *config.Root
	logger     *logrus.Logger
	configErr  error
}

func (c *commandContext) ensureConfig() (*config.Root, error) {
	c.configOnce.Do(func() {
		cfg, err := config.Load(strings.TrimSpace(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != "" {
			cfg.Pipeline.LogLvl = c.logLevelFlag
		}
		if c.logFormatFlag != "" {
			cfg.Pipeline.LogFormat = c.logFormatFlag
		}
		log, err := logging.New(cfg.Pipeline.LogLvl, cfg.Pipeline.LogFormat, os.Stderr)
		if err != nil {
			c.configErr = err
			return
		}
		if cfg.Source != "" {
			log.WithField("path", cfg.Source).Debug("config loaded")
		}
		c.config, c.logger = cfg, log
	})
	return c.config, c.configErr
}

func (c *commandContext) pipeline(roles transcript.Roles) (*orchestrator.Pipeline, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return orchestrator.NewPipeline(cfg, orchestrator.WithLogger(c.logger), orchestrator.WithRoles(roles))
}

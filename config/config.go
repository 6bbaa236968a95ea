package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const EnvPrefix = "INTERVIEW"

type Service struct {
	URL string `yaml:"url" mapstructure:"url"`
}
type Services struct {
	Sentiment      Service `yaml:"sentiment" mapstructure:"sentiment"`
	Visualization  Service `yaml:"visualization" mapstructure:"visualization"`
	TimeoutSeconds int     `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
}
type Roles struct {
	Candidate   string `yaml:"candidate" mapstructure:"candidate"`
	Interviewer string `yaml:"interviewer" mapstructure:"interviewer"`
}
type Root struct {
	Pipeline struct {
		Name      string `yaml:"name" mapstructure:"name"`
		Version   string `yaml:"version" mapstructure:"version"`
		LogLvl    string `yaml:"log_level" mapstructure:"log_level"`
		LogFormat string `yaml:"log_format" mapstructure:"log_format"`
	} `yaml:"pipeline" mapstructure:"pipeline"`
	Roles    Roles    `yaml:"roles" mapstructure:"roles"`
	Services Services `yaml:"services" mapstructure:"services"`
	Paths    struct {
		Transcripts string `yaml:"transcripts" mapstructure:"transcripts"`
		Outputs     string `yaml:"outputs" mapstructure:"outputs"`
	} `yaml:"paths" mapstructure:"paths"`

	// Source is the config file that was read, empty when only defaults applied.
	Source string `yaml:"-" mapstructure:"-"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("pipeline.name", "interview-pipeline")
	v.SetDefault("pipeline.version", "dev")
	v.SetDefault("pipeline.log_level", "info")
	v.SetDefault("pipeline.log_format", "text")
	v.SetDefault("roles.candidate", "Candidate")
	v.SetDefault("roles.interviewer", "Interviewer")
	v.SetDefault("services.sentiment.url", "")
	v.SetDefault("services.visualization.url", "")
	v.SetDefault("services.timeout_seconds", 60)
	v.SetDefault("paths.transcripts", "transcripts")
	v.SetDefault("paths.outputs", "")
}

// Candidates returns the config files tried when no path is given.
func Candidates() []string {
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	return []string{
		filepath.Join("config", env, "config.yaml"),
		filepath.Join("src", "shared", "config.yaml"),
	}
}

// Load reads path, or the first existing candidate file when path is empty.
// Missing candidate files are not an error; defaults and INTERVIEW_* env vars apply.
func Load(path string) (*Root, error) {
	v := viper.New()
	defaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	source := ""
	if path != "" {
		source = path
	} else {
		for _, p := range Candidates() {
			if _, err := os.Stat(p); err == nil {
				source = p
				break
			}
		}
	}
	if source != "" {
		v.SetConfigFile(source)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", source, err)
		}
	}

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Source = source
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Root) Validate() error {
	var errs []error
	if _, err := logrus.ParseLevel(c.Pipeline.LogLvl); err != nil {
		errs = append(errs, fmt.Errorf("pipeline.log_level: %w", err))
	}
	switch c.Pipeline.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("pipeline.log_format: want text or json, got %q", c.Pipeline.LogFormat))
	}
	if c.Services.TimeoutSeconds < 0 {
		errs = append(errs, fmt.Errorf("services.timeout_seconds: must not be negative"))
	}
	return errors.Join(errs...)
}

func DurSeconds(n int) time.Duration { return time.Duration(n) * time.Second }

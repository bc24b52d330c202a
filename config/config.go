/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"encoding/json"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/wacul/ptr"
)

const (
	DEFAULT_PORT         = "5001"
	DEFAULT_PROJECT_NAME = "AwesomeGIC Bank"
	DEFAULT_LOG_LEVEL    = "warn"
	DEFAULT_LOG_FORMAT   = "text"
	DEFAULT_CONFIG_FILE  = "gicbank.json"
)

var ConfigStore atomic.Value

type ServerConfig struct {
	Port string `json:"port" envconfig:"GICBANK_SERVER_PORT"`
}

type RateLimitConfig struct {
	RequestsPerSecond  *float64 `json:"requests_per_second" envconfig:"GICBANK_RATE_LIMIT_RPS"`
	Burst              *int     `json:"burst" envconfig:"GICBANK_RATE_LIMIT_BURST"`
	CleanupIntervalSec *int     `json:"cleanup_interval_sec" envconfig:"GICBANK_RATE_LIMIT_CLEANUP_INTERVAL_SEC"`
}

type LogConfig struct {
	Level  string `json:"level" envconfig:"GICBANK_LOG_LEVEL"`
	Format string `json:"format" envconfig:"GICBANK_LOG_FORMAT"`
}

type Configuration struct {
	ProjectName string          `json:"project_name" envconfig:"GICBANK_PROJECT_NAME"`
	Server      ServerConfig    `json:"server"`
	RateLimit   RateLimitConfig `json:"rate_limit"`
	Log         LogConfig       `json:"log"`
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return errors.Wrapf(err, "opening config file %s", file)
		}
		defer f.Close()

		if err := json.NewDecoder(f).Decode(&cnf); err != nil {
			return errors.Wrapf(err, "decoding config file %s", file)
		}
	} else if errors.Is(err, os.ErrNotExist) {
		logrus.WithField("file", file).Debug("config json not passed, will use env variables")
	}

	// override config from environment variables
	if err := envconfig.Process("gicbank", &cnf); err != nil {
		return errors.Wrap(err, "reading environment overrides")
	}

	if err := cnf.validateAndAddDefaults(); err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return nil
}

func InitConfig(configFile string) error {
	logger()
	if configFile == "" {
		configFile = DEFAULT_CONFIG_FILE
	}
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded. Create a json file called gicbank.json or set GICBANK_ env variables")
	}
	return c, nil
}

func (cnf *Configuration) validateAndAddDefaults() error {
	cnf.ProjectName = strings.TrimSpace(cnf.ProjectName)
	cnf.Server.Port = strings.TrimSpace(cnf.Server.Port)
	cnf.Log.Level = strings.ToLower(strings.TrimSpace(cnf.Log.Level))
	cnf.Log.Format = strings.ToLower(strings.TrimSpace(cnf.Log.Format))

	if cnf.ProjectName == "" {
		cnf.ProjectName = DEFAULT_PROJECT_NAME
	}

	if cnf.Server.Port == "" {
		cnf.Server.Port = DEFAULT_PORT
	}

	if cnf.Log.Level == "" {
		cnf.Log.Level = DEFAULT_LOG_LEVEL
	}
	if _, err := logrus.ParseLevel(cnf.Log.Level); err != nil {
		return errors.Wrap(err, "invalid log level")
	}

	switch cnf.Log.Format {
	case "":
		cnf.Log.Format = DEFAULT_LOG_FORMAT
	case "text", "json":
	default:
		return errors.Errorf("invalid log format %q, use text or json", cnf.Log.Format)
	}

	// Rate limiting is disabled by default (when both RPS and Burst are nil)
	if cnf.RateLimit.RequestsPerSecond != nil && *cnf.RateLimit.RequestsPerSecond <= 0 {
		return errors.New("rate limit requests per second must be positive")
	}
	if cnf.RateLimit.RequestsPerSecond != nil && cnf.RateLimit.Burst == nil {
		cnf.RateLimit.Burst = ptr.Int(max(1, 2*int(*cnf.RateLimit.RequestsPerSecond)))
		log.Printf("Warning: Rate limit burst not specified. Setting default value: %d", *cnf.RateLimit.Burst)
	}
	if cnf.RateLimit.RequestsPerSecond == nil && cnf.RateLimit.Burst != nil {
		cnf.RateLimit.RequestsPerSecond = ptr.Float64(float64(*cnf.RateLimit.Burst) / 2)
		log.Printf("Warning: Rate limit RPS not specified. Setting default value: %.2f", *cnf.RateLimit.RequestsPerSecond)
	}
	if cnf.RateLimit.CleanupIntervalSec == nil {
		cnf.RateLimit.CleanupIntervalSec = ptr.Int(10800)
	}

	return nil
}

// RateLimitEnabled reports whether the API should throttle requests.
func (cnf *Configuration) RateLimitEnabled() bool {
	return cnf.RateLimit.RequestsPerSecond != nil && cnf.RateLimit.Burst != nil
}

// ConfigureLogger applies the log level and format to the standard logrus logger.
func (cnf *Configuration) ConfigureLogger() {
	level, err := logrus.ParseLevel(cnf.Log.Level)
	if err != nil {
		level = logrus.WarnLevel
	}
	logrus.SetLevel(level)

	if cnf.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	ConfigStore.Store(mockConfig)
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}

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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wacul/ptr"
)

func writeConfigFile(t *testing.T, cnf any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gicbank.json")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, json.NewEncoder(f).Encode(cnf))
	require.NoError(t, f.Close())
	return path
}

func TestValidateAndAddDefaults(t *testing.T) {
	cnf := Configuration{}
	require.NoError(t, cnf.validateAndAddDefaults())

	assert.Equal(t, DEFAULT_PROJECT_NAME, cnf.ProjectName)
	assert.Equal(t, DEFAULT_PORT, cnf.Server.Port)
	assert.Equal(t, DEFAULT_LOG_LEVEL, cnf.Log.Level)
	assert.Equal(t, DEFAULT_LOG_FORMAT, cnf.Log.Format)
	assert.False(t, cnf.RateLimitEnabled())
	require.NotNil(t, cnf.RateLimit.CleanupIntervalSec)
	assert.Equal(t, 10800, *cnf.RateLimit.CleanupIntervalSec)
}

func TestValidateAndAddDefaultsTrims(t *testing.T) {
	cnf := Configuration{
		ProjectName: "  Test Bank ",
		Server:      ServerConfig{Port: " 8080 "},
		Log:         LogConfig{Level: " DEBUG ", Format: "JSON"},
	}
	require.NoError(t, cnf.validateAndAddDefaults())

	assert.Equal(t, "Test Bank", cnf.ProjectName)
	assert.Equal(t, "8080", cnf.Server.Port)
	assert.Equal(t, "debug", cnf.Log.Level)
	assert.Equal(t, "json", cnf.Log.Format)
}

func TestValidateAndAddDefaultsRejects(t *testing.T) {
	tests := []struct {
		name string
		cnf  Configuration
	}{
		{"log level", Configuration{Log: LogConfig{Level: "loud"}}},
		{"log format", Configuration{Log: LogConfig{Format: "xml"}}},
		{"rate limit", Configuration{RateLimit: RateLimitConfig{RequestsPerSecond: ptr.Float64(0)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cnf.validateAndAddDefaults())
		})
	}
}

func TestRateLimitDefaults(t *testing.T) {
	cnf := Configuration{RateLimit: RateLimitConfig{RequestsPerSecond: ptr.Float64(5)}}
	require.NoError(t, cnf.validateAndAddDefaults())
	assert.True(t, cnf.RateLimitEnabled())
	assert.Equal(t, 10, *cnf.RateLimit.Burst)

	cnf = Configuration{RateLimit: RateLimitConfig{Burst: ptr.Int(8)}}
	require.NoError(t, cnf.validateAndAddDefaults())
	assert.True(t, cnf.RateLimitEnabled())
	assert.Equal(t, 4.0, *cnf.RateLimit.RequestsPerSecond)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, Configuration{
		ProjectName: "Temp Bank",
		Server:      ServerConfig{Port: "6001"},
	})

	t.Setenv("GICBANK_PROJECT_NAME", "Env Bank")

	require.NoError(t, loadConfigFromFile(path))

	loaded, err := Fetch()
	require.NoError(t, err)
	assert.Equal(t, "Env Bank", loaded.ProjectName)
	assert.Equal(t, "6001", loaded.Server.Port)
}

func TestLoadConfigFromFileMissing(t *testing.T) {
	t.Setenv("GICBANK_SERVER_PORT", "7001")

	require.NoError(t, loadConfigFromFile(filepath.Join(t.TempDir(), "absent.json")))

	loaded, err := Fetch()
	require.NoError(t, err)
	assert.Equal(t, "7001", loaded.Server.Port)
	assert.Equal(t, DEFAULT_PROJECT_NAME, loaded.ProjectName)
}

func TestLoadConfigFromFileMissingLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	defer logrus.SetOutput(os.Stderr)
	defer logrus.SetLevel(logrus.InfoLevel)

	absent := filepath.Join(t.TempDir(), "absent.json")

	logrus.SetLevel(logrus.InfoLevel)
	require.NoError(t, loadConfigFromFile(absent))
	assert.NotContains(t, buf.String(), "config json not passed")

	logrus.SetLevel(logrus.DebugLevel)
	require.NoError(t, loadConfigFromFile(absent))
	assert.Contains(t, buf.String(), "config json not passed")
}

func TestLoadConfigFromFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gicbank.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	err := loadConfigFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding config file")
}

func TestInitConfig(t *testing.T) {
	path := writeConfigFile(t, Configuration{ProjectName: "Init Bank"})

	require.NoError(t, InitConfig(path))

	loaded, err := Fetch()
	require.NoError(t, err)
	assert.Equal(t, "Init Bank", loaded.ProjectName)
}

func TestMockConfig(t *testing.T) {
	MockConfig(&Configuration{ProjectName: "Mock Bank"})

	loaded, err := Fetch()
	require.NoError(t, err)
	assert.Equal(t, "Mock Bank", loaded.ProjectName)
}

func TestConfigureLogger(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)
	defer logrus.SetFormatter(&logrus.TextFormatter{})

	cnf := &Configuration{Log: LogConfig{Level: "debug", Format: "json"}}
	cnf.ConfigureLogger()

	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)
}

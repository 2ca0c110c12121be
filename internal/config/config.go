/*
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package config holds the user-editable converter settings, persisted as
// YAML. Environment variables are read-only overrides applied at load
// time; command-line flags override both.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// TraceConfig are the two tunables of the arc approximation.
type TraceConfig struct {
	// EstimateSteps is the fixed sample count of the length-estimation
	// and bounding-box pass over each curve.
	EstimateSteps int `yaml:"estimate_steps"`
	// UnitsPerBiarc is the estimated curve length, in design units,
	// covered by one biarc pair.
	UnitsPerBiarc float64 `yaml:"units_per_biarc"`
}

// OutputConfig controls entity emission.
type OutputConfig struct {
	Layer     string `yaml:"layer"`     // fixed layer name in text mode
	FontMode  bool   `yaml:"font_mode"` // convert the whole printable ASCII range
	Linescale int    `yaml:"linescale"` // bitmap tracing pixel size; 0 = off
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Trace         TraceConfig   `yaml:"trace"`
	Output        OutputConfig  `yaml:"output"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Trace:         TraceConfig{EstimateSteps: 100, UnitsPerBiarc: 200},
		Output:        OutputConfig{},
		Logging:       LoggingConfig{Level: "info", Format: "console"},
	}
}

// Env var names used as overrides.
const (
	EnvEstimateSteps = "FONTDXF_ESTIMATE_STEPS"
	EnvUnitsPerBiarc = "FONTDXF_UNITS_PER_BIARC"
	EnvLayer         = "FONTDXF_LAYER"
	EnvLinescale     = "FONTDXF_LINESCALE"
	EnvLogLevel      = "FONTDXF_LOG_LEVEL"
	EnvLogFormat     = "FONTDXF_LOG_FORMAT"
	EnvLogFile       = "FONTDXF_LOG_FILE"
)

// Load reads the YAML file at path, merges it over the defaults, applies
// environment overrides and normalizes out-of-range values. An empty path
// yields defaults plus environment.
func Load(path string) (AppConfig, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	cfg.normalize()
	return cfg, nil
}

// Save writes cfg as YAML to path.
func Save(path string, cfg AppConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv(EnvEstimateSteps); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Trace.EstimateSteps = n
		}
	}
	if v := os.Getenv(EnvUnitsPerBiarc); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Trace.UnitsPerBiarc = f
		}
	}
	if v := os.Getenv(EnvLayer); v != "" {
		cfg.Output.Layer = v
	}
	if v := os.Getenv(EnvLinescale); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Output.Linescale = n
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Logging.File = v
	}
}

// normalize clamps values the tracer and rasterizer cannot work with.
func (c *AppConfig) normalize() {
	if c.Trace.EstimateSteps < 2 {
		c.Trace.EstimateSteps = Defaults().Trace.EstimateSteps
	}
	if c.Trace.UnitsPerBiarc <= 0 {
		c.Trace.UnitsPerBiarc = Defaults().Trace.UnitsPerBiarc
	}
	// Below 24 pixels per em the span extraction degenerates.
	if c.Output.Linescale > 0 && c.Output.Linescale < 24 {
		c.Output.Linescale = 24
	}
}

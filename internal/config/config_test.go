/*
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Trace.EstimateSteps != 100 || cfg.Trace.UnitsPerBiarc != 200 {
		t.Fatalf("unexpected trace defaults: %+v", cfg.Trace)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadEmptyPathGivesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Trace != Defaults().Trace {
		t.Fatalf("expected default trace config, got %+v", cfg.Trace)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fontdxf.yaml")
	want := Defaults()
	want.Trace.UnitsPerBiarc = 75
	want.Output.Layer = "ENGRAVE"
	want.Output.FontMode = true
	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Trace.UnitsPerBiarc != 75 || got.Output.Layer != "ENGRAVE" || !got.Output.FontMode {
		t.Fatalf("round trip lost values: %+v", got)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("trace:\n  units_per_biarc: 50\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Trace.UnitsPerBiarc != 50 {
		t.Fatalf("file value not applied: %+v", cfg.Trace)
	}
	if cfg.Trace.EstimateSteps != 100 {
		t.Fatalf("unset field lost its default: %+v", cfg.Trace)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvUnitsPerBiarc, "33.5")
	t.Setenv(EnvLayer, "CUT")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Trace.UnitsPerBiarc != 33.5 {
		t.Fatalf("env override not applied: %+v", cfg.Trace)
	}
	if cfg.Output.Layer != "CUT" {
		t.Fatalf("env override not applied: %+v", cfg.Output)
	}
}

func TestNormalizeClamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("trace:\n  estimate_steps: 0\n  units_per_biarc: -3\noutput:\n  linescale: 5\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Trace.EstimateSteps != 100 || cfg.Trace.UnitsPerBiarc != 200 {
		t.Fatalf("bad trace values not normalized: %+v", cfg.Trace)
	}
	if cfg.Output.Linescale != 24 {
		t.Fatalf("linescale not clamped: %d", cfg.Output.Linescale)
	}
}

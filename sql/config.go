// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sql

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Config carries engine-wide knobs that sit above the Predicate Checker
// itself (which stays a pure function of its inputs). Loaded from YAML.
type Config struct {
	// StrictBooleanEval makes the Predicate Checker (sql/plan) evaluate
	// both arms of And/Or before combining them, surfacing an error from
	// either arm even when the other arm alone would have determined the
	// result. When false (the default), the checker short-circuits on the
	// first arm that decides the result, without evaluating the other arm
	// at all. And/Or nodes evaluated through their own Eval (e.g. nested
	// under a comparison) always short-circuit, whatever this is set to.
	StrictBooleanEval bool `yaml:"strict_boolean_eval"`

	// MaxSubqueryRows bounds how many rows the subquery bridge will read
	// while scanning for an IN match before giving up and returning
	// ErrTooManySubqueryRows, guarding against a runaway correlated
	// subquery. Zero means unbounded.
	MaxSubqueryRows int `yaml:"max_subquery_rows"`
}

// DefaultConfig returns the zero-friction defaults: no implicit row cap,
// short-circuit boolean evaluation.
func DefaultConfig() *Config {
	return &Config{StrictBooleanEval: false, MaxSubqueryRows: 0}
}

// LoadConfig reads a YAML config file, falling back to DefaultConfig
// values for any field the file omits.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package secrets models the secrets an application requires: the
// specification documents shipped with each chart, the static secrets
// provided out of band, and the rules for generating secret values. Unlike
// values documents, secrets documents have a fixed schema and are decoded
// strictly.
package secrets

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"phalanx.dev/phalanx/pkg/api/phalanx"
	"phalanx.dev/phalanx/pkg/model"
	"phalanx.dev/phalanx/pkg/values"
)

// CopyRules says where a secret's value should be copied from.
type CopyRules struct {
	// Condition gates the rule on a chart setting; see Config.Condition.
	Condition string `yaml:"if,omitempty"`

	// Application is the application to copy the secret from.
	Application string `yaml:"application"`

	// Key is the secret key to copy the secret from.
	Key string `yaml:"key"`
}

// OnepasswordConfig describes how a static secret is stored in 1Password.
type OnepasswordConfig struct {
	// Encoded marks secret values that are base64-encoded in 1Password
	// because they contain significant newlines.
	Encoded bool `yaml:"encoded,omitempty"`
}

// Config specifies one application secret.
type Config struct {
	// Description is the human-readable description of the secret.
	Description string `yaml:"description"`

	// Condition names a chart setting that must be set to a true value in
	// the application's effective values for the secret to apply to an
	// environment. Empty means the secret always applies.
	Condition string `yaml:"if,omitempty"`

	// Copy gives the rules for copying the value from another secret.
	Copy *CopyRules `yaml:"copy,omitempty"`

	// Generate gives the rules for generating the value.
	Generate *GenerateRules `yaml:"generate,omitempty"`

	// Onepassword describes how the secret is stored in 1Password.
	Onepassword OnepasswordConfig `yaml:"onepassword,omitempty"`

	// Value is the literal secret value, for secrets that are not sensitive.
	Value string `yaml:"value,omitempty"`
}

// Secret is a secret specification bound to its application and key.
type Secret struct {
	Config

	// Application is the application the secret belongs to.
	Application string

	// Key is the secret's key within the application.
	Key string
}

// Load reads an application's secrets specification from its chart
// directory. Applications without one return nil with no error. Unknown
// fields and rule combinations the schema forbids are errors.
func Load(appDir string) (map[string]Config, error) {
	path := filepath.Join(appDir, phalanx.SecretsFile)
	contents, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "reading secrets specification %s", path)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(contents))
	decoder.KnownFields(true)
	configs := map[string]Config{}
	if err := decoder.Decode(&configs); err != nil {
		return nil, errors.Wrapf(err, "parsing secrets specification %s", path)
	}

	for key, config := range configs {
		if err := config.validate(); err != nil {
			return nil, errors.Wrapf(err, "secrets specification %s: secret %q", path, key)
		}
	}
	return configs, nil
}

func (c Config) validate() error {
	if c.Description == "" {
		return errors.New("description is required")
	}
	if c.Generate != nil {
		if err := c.Generate.validate(); err != nil {
			return err
		}
	}
	if c.Copy != nil {
		if c.Copy.Application == "" || c.Copy.Key == "" {
			return errors.New("copy requires both application and key")
		}
	}

	hasCopy := c.Copy != nil && c.Copy.Condition == ""
	hasGenerate := c.Generate != nil && c.Generate.Condition == ""
	if c.Generate != nil && hasCopy {
		return errors.New("both copy and generate may not be set for the same secret")
	}
	if c.Value != "" && (hasCopy || hasGenerate) {
		return errors.New("value may not be set if copy or generate is set")
	}
	return nil
}

// ForEnvironment resolves an application's secret specifications for one
// environment. Secrets whose condition is not met by the application's
// effective values are dropped, and conditional copy or generate rules whose
// own condition is not met are stripped from the secrets that carry them.
func ForEnvironment(app *model.Application, env string, configs map[string]Config) map[string]Secret {
	effective := app.EffectiveValues(env)

	secrets := make(map[string]Secret, len(configs))
	for key, config := range configs {
		if !conditionMet(config.Condition, effective) {
			continue
		}
		if config.Copy != nil && !conditionMet(config.Copy.Condition, effective) {
			config.Copy = nil
		}
		if config.Generate != nil && !conditionMet(config.Generate.Condition, effective) {
			config.Generate = nil
		}
		secrets[key] = Secret{Config: config, Application: app.Name, Key: key}
	}
	return secrets
}

// conditionMet reports whether the named chart setting is set to a true
// value. The condition is a dotted path into the application's values; an
// empty condition is always met.
func conditionMet(condition string, effective map[string]interface{}) bool {
	if condition == "" {
		return true
	}
	enabled, found := values.Bool(effective, strings.Split(condition, ".")...)
	return found && enabled
}

// SortedKeys returns the secret keys of a resolved set in ascending order.
func SortedKeys(secrets map[string]Secret) []string {
	keys := make([]string, 0, len(secrets))
	for key := range secrets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

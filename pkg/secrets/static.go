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

package secrets

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// StaticSecret is the value of one secret provided out of band.
type StaticSecret struct {
	// Description is intended for human writers of the document and ignored
	// by tools.
	Description string `yaml:"description,omitempty"`

	// Value of the secret. Empty when the value is not yet known.
	Value string `yaml:"value"`
}

// RegistryPullSecret is the pull secret for one Docker registry.
type RegistryPullSecret struct {
	// Username is the HTTP Basic Auth username.
	Username string `yaml:"username"`

	// Password is the HTTP Basic Auth password.
	Password string `yaml:"password"`
}

// PullSecret specifies the Docker pull secret for an environment.
type PullSecret struct {
	// Description of the pull secret for humans reading the document.
	Description string `yaml:"description,omitempty"`

	// Registries holds the pull secret for each registry that needs one.
	Registries map[string]RegistryPullSecret `yaml:"registries,omitempty"`
}

// ToDockerConfigJSON converts the pull secret to the serialized format
// Docker expects in a kubernetes.io/dockerconfigjson secret.
func (p *PullSecret) ToDockerConfigJSON() (string, error) {
	type registryAuth struct {
		Auth     string `json:"auth"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	auths := make(map[string]registryAuth, len(p.Registries))
	for registry, reg := range p.Registries {
		auth := base64.StdEncoding.EncodeToString([]byte(reg.Username + ":" + reg.Password))
		auths[registry] = registryAuth{Auth: auth, Username: reg.Username, Password: reg.Password}
	}
	out, err := json.Marshal(map[string]interface{}{"auths": auths})
	if err != nil {
		return "", errors.Wrap(err, "serializing pull secret")
	}
	return string(out), nil
}

// StaticSecrets is the document of out-of-band secret values for an
// environment.
type StaticSecrets struct {
	// Applications maps application name to secret key to its static secret.
	Applications map[string]map[string]StaticSecret `yaml:"applications,omitempty"`

	// PullSecret is the environment's Docker pull secret, if any is needed.
	PullSecret *PullSecret `yaml:"pull-secret,omitempty"`
}

// LoadStatic reads a static secrets document.
func LoadStatic(path string) (*StaticSecrets, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading static secrets %s", path)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(contents))
	decoder.KnownFields(true)
	static := &StaticSecrets{}
	if err := decoder.Decode(static); err != nil {
		return nil, errors.Wrapf(err, "parsing static secrets %s", path)
	}
	return static, nil
}

// ForApplication returns any known static secrets for an application. An
// application with none returns an empty map.
func (s *StaticSecrets) ForApplication(application string) map[string]StaticSecret {
	if s == nil || s.Applications == nil {
		return map[string]StaticSecret{}
	}
	appSecrets, ok := s.Applications[application]
	if !ok {
		return map[string]StaticSecret{}
	}
	return appSecrets
}

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

// Package docs renders the configuration model as markdown pages, one per
// environment plus an index, for inclusion in the operations documentation
// site. The renderer reads only the model's exported surface and its output
// is deterministic so regenerated pages diff cleanly.
package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ettle/strcase"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"phalanx.dev/phalanx/pkg/model"
	"phalanx.dev/phalanx/pkg/monitoring"
)

// frontMatter is the metadata block the documentation site expects at the
// top of each page. Fields marshal in declaration order.
type frontMatter struct {
	Title           string `yaml:"title"`
	Domain          string `yaml:"domain,omitempty"`
	VaultPathPrefix string `yaml:"vault_path_prefix,omitempty"`
}

// Generate writes one markdown page per environment plus an index page to
// outDir, creating the directory if needed and overwriting existing pages.
func Generate(p *model.Phalanx, outDir string) error {
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return errors.Wrapf(err, "creating output directory %s", outDir)
	}

	for _, env := range p.Environments {
		page, err := renderEnvironment(env)
		if err != nil {
			return err
		}
		if err := writePage(filepath.Join(outDir, env.Name+".md"), page); err != nil {
			return err
		}
	}

	index, err := renderIndex(p)
	if err != nil {
		return err
	}
	return writePage(filepath.Join(outDir, "index.md"), index)
}

func writePage(path string, contents []byte) error {
	if err := os.WriteFile(path, contents, 0644); err != nil {
		return errors.Wrapf(err, "writing page %s", path)
	}
	return nil
}

func writeFrontMatter(b *strings.Builder, fm frontMatter) error {
	out, err := yaml.Marshal(fm)
	if err != nil {
		return errors.Wrap(err, "serializing front matter")
	}
	b.WriteString("---\n")
	b.Write(out)
	b.WriteString("---\n\n")
	return nil
}

func renderEnvironment(env *model.Environment) ([]byte, error) {
	var b strings.Builder
	err := writeFrontMatter(&b, frontMatter{
		Title:           env.Name,
		Domain:          env.Domain,
		VaultPathPrefix: env.VaultPathPrefix,
	})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(&b, "# %s\n\n", env.Name)
	fmt.Fprintf(&b, "- Domain: `%s`\n", env.Domain)
	fmt.Fprintf(&b, "- Vault path prefix: `%s`\n", env.VaultPathPrefix)
	fmt.Fprintf(&b, "- Argo CD: %s\n", env.ArgoCDURL())
	fmt.Fprintf(&b, "- Identity provider: %s\n", env.IdentityProvider())

	b.WriteString("\n## Applications\n\n")
	b.WriteString("| Application | Namespace |\n")
	b.WriteString("| ----------- | --------- |\n")
	for _, app := range env.Apps {
		fmt.Fprintf(&b, "| %s | %s |\n", app.Name, app.Namespace)
	}

	if rbac := env.ArgoCDRBAC(); rbac != nil {
		b.WriteString("\n## Argo CD RBAC\n\n")
		for _, row := range rbac {
			fmt.Fprintf(&b, "- %s\n", row)
		}
	}

	if roles := env.Roles(); len(roles) > 0 {
		b.WriteString("\n## Group mapping\n\n")
		b.WriteString("| Role | Groups |\n")
		b.WriteString("| ---- | ------ |\n")
		for _, role := range roles {
			fmt.Fprintf(&b, "| %s | %s |\n", role.Role, strings.Join(role.Groups, ", "))
		}
	}

	if endpoints := monitoring.ForEnvironment(env); len(endpoints) > 0 {
		b.WriteString("\n## Metrics endpoints\n\n")
		b.WriteString("| Application | Component | URL |\n")
		b.WriteString("| ----------- | --------- | --- |\n")
		for _, endpoint := range endpoints {
			fmt.Fprintf(&b, "| %s | %s | %s |\n",
				endpoint.Application, componentName(endpoint.Component), endpoint.URL)
		}
	}

	return []byte(b.String()), nil
}

func renderIndex(p *model.Phalanx) ([]byte, error) {
	var b strings.Builder
	if err := writeFrontMatter(&b, frontMatter{Title: "Environments"}); err != nil {
		return nil, err
	}

	b.WriteString("# Environments\n\n")
	b.WriteString("| Environment | Domain | Identity provider |\n")
	b.WriteString("| ----------- | ------ | ----------------- |\n")
	for _, env := range p.Environments {
		fmt.Fprintf(&b, "| [%s](%s.md) | %s | %s |\n",
			env.Name, env.Name, env.Domain, env.IdentityProvider())
	}
	return []byte(b.String()), nil
}

// componentName renders a component identifier from the metrics table as a
// human-readable name, such as "repo_server" to "Repo Server".
func componentName(component string) string {
	return strcase.ToCase(component, strcase.TitleCase, ' ')
}

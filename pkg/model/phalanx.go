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

package model

// Phalanx is the root of the repository model.
type Phalanx struct {
	// Environments holds every resolved environment, in discovery order.
	Environments []*Environment

	// Apps holds every resolved application, sorted by name. Environments
	// reference these same instances rather than copies.
	Apps []*Application
}

// App returns the named application, or nil if the repository does not
// define it.
func (p *Phalanx) App(name string) *Application {
	for _, app := range p.Apps {
		if app.Name == name {
			return app
		}
	}
	return nil
}

// Environment returns the named environment, or nil if the repository does
// not define it.
func (p *Phalanx) Environment(name string) *Environment {
	for _, env := range p.Environments {
		if env.Name == name {
			return env
		}
	}
	return nil
}

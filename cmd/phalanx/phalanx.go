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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"phalanx.dev/phalanx/cmd/phalanx/docs"
	"phalanx.dev/phalanx/cmd/phalanx/secrets"
	"phalanx.dev/phalanx/cmd/phalanx/version"
	"phalanx.dev/phalanx/cmd/phalanx/vet"
	pkgversion "phalanx.dev/phalanx/pkg/version"
)

const (
	// versionTemplate is the template used when "phalanx --version" is
	// invoked. The default template outputs "phalanx version <VERSION>". This
	// just outputs "<VERSION>" for easier programmatic use.
	versionTemplate = `{{.Version}}
`
)

var rootCmd = &cobra.Command{
	Use:     "phalanx",
	Version: pkgversion.VERSION,
	Short: fmt.Sprintf(
		"Inspect the configuration model of a Phalanx repository (version %v)", pkgversion.VERSION),
}

func init() {
	rootCmd.SetVersionTemplate(versionTemplate)
	rootCmd.AddCommand(docs.Cmd)
	rootCmd.AddCommand(secrets.Cmd)
	rootCmd.AddCommand(version.Cmd)
	rootCmd.AddCommand(vet.Cmd)
}

func main() {
	// Use the default flag set, because some libs register flags with init.
	fs := flag.CommandLine

	// Register klog flags
	klog.InitFlags(fs)

	// Cobra uses the pflag lib, instead of the go flag lib.
	// So re-register all go flags as global (aka persistent) pflags.
	rootCmd.PersistentFlags().AddGoFlagSet(fs)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

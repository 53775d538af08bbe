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

package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"slurm-toolkit/pkg/config"
	"slurm-toolkit/pkg/logging"
	"slurm-toolkit/pkg/scheduler"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "slurm-toolkit",
	Short: "Builds, submits, and tracks Slurm batch job scripts.",
	Long: `slurm-toolkit assembles Slurm batch scripts from a command plus sbatch
directives, environment modules, and inter-job dependencies, submits them via
sbatch, and polls sacct for the submitted job's state.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a toolkit config file (default: ./"+config.DefaultPath+" if present).")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output.")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the toolkit config, honoring the --config flag.
func loadConfig() (config.Config, error) {
	fs := afero.NewOsFs()
	if configPath != "" {
		return config.Load(fs, configPath, true)
	}
	return config.Load(fs, config.DefaultPath, false)
}

// newClient builds the Slurm client from the config's tool paths.
func newClient(cfg config.Config) *scheduler.SlurmClient {
	return &scheduler.SlurmClient{
		SbatchPath: cfg.SbatchPath,
		SacctPath:  cfg.SacctPath,
	}
}

// assembleJobScript builds a JobScript from the shared submit/render flags,
// layering config defaults under the flag values.
func assembleJobScript(cfg config.Config, workDir string) (*scheduler.JobScript, error) {
	js, err := scheduler.NewJobScript(commandToRun, scriptName, workDir, append(cfg.Directives, directiveList...))
	if err != nil {
		return nil, err
	}

	js.SetDependencyMode(cfg.DependencyMode)
	if dependencyMode != "" {
		js.SetDependencyMode(dependencyMode)
	}
	js.SetShebang(cfg.Shebang)
	if shebangLine != "" {
		js.SetShebang(shebangLine)
	}

	js.AddModules(cfg.Modules)
	js.AddModules(moduleList)
	js.AddDependencies(dependencyIDs)
	for _, step := range extraSteps {
		js.AddStep(step)
	}
	return js, nil
}

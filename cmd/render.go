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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slurm-toolkit/pkg/logging"
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&commandToRun, "command", "e", "", "Command run as the first job step. Required.")
	renderCmd.Flags().StringArrayVarP(&extraSteps, "step", "s", nil, "Additional job step, repeatable.")
	renderCmd.Flags().StringArrayVarP(&directiveList, "directive", "d", nil, "sbatch directive, repeatable.")
	renderCmd.Flags().StringArrayVarP(&moduleList, "module", "m", nil, "Environment module, repeatable.")
	renderCmd.Flags().StringArrayVar(&dependencyIDs, "dependency", nil, "Job ID this job waits on, repeatable.")
	renderCmd.Flags().StringVar(&dependencyMode, "dependency-mode", "", "Dependency mode applied to all dependencies.")
	renderCmd.Flags().StringVar(&shebangLine, "shebang", "", "Interpreter line of the generated script.")

	_ = renderCmd.MarkFlagRequired("command")
}

var renderCmd = &cobra.Command{
	Use:          "render",
	Short:        "Prints the batch script that 'submit' would generate.",
	Run:          runRenderCmd,
	SilenceUsage: true,
}

func runRenderCmd(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		logging.Fatal("Failed to load config: %v", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		logging.Fatal("Failed to determine working directory: %v", err)
	}

	js, err := assembleJobScript(cfg, workDir)
	if err != nil {
		logging.Fatal("Failed to build job script: %v", err)
	}

	fmt.Print(js.Render())
}

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
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slurm-toolkit/pkg/logging"
	"slurm-toolkit/pkg/scheduler"
)

var (
	commandToRun   string
	scriptName     string
	extraSteps     []string
	directiveList  []string
	moduleList     []string
	dependencyIDs  []string
	dependencyMode string
	shebangLine    string
	keepScript     bool
	dryRun         bool
)

func init() {
	rootCmd.AddCommand(submitCmd)

	submitCmd.Flags().StringVarP(&commandToRun, "command", "e", "", "Command run as the first job step (e.g. 'python train.py'). Required.")
	submitCmd.Flags().StringVarP(&scriptName, "script-name", "n", "batch_script.sh", "Name of the script file written to the working directory.")
	submitCmd.Flags().StringArrayVarP(&extraSteps, "step", "s", nil, "Additional job step, repeatable. Steps run in the order given.")
	submitCmd.Flags().StringArrayVarP(&directiveList, "directive", "d", nil, "sbatch directive, repeatable (e.g. '--mem=4g', '-c 1').")
	submitCmd.Flags().StringArrayVarP(&moduleList, "module", "m", nil, "Environment module loaded before any step, repeatable.")
	submitCmd.Flags().StringArrayVar(&dependencyIDs, "dependency", nil, "Job ID this job waits on, repeatable.")
	submitCmd.Flags().StringVar(&dependencyMode, "dependency-mode", "", "Dependency mode applied to all dependencies (e.g. 'afterok'). Defaults from config.")
	submitCmd.Flags().StringVar(&shebangLine, "shebang", "", "Interpreter line of the generated script. Defaults from config.")
	submitCmd.Flags().BoolVar(&keepScript, "keep-script", false, "Keep the script file instead of removing it after submission.")
	submitCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the rendered script without submitting it.")

	_ = submitCmd.MarkFlagRequired("command")
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Builds a batch script and submits it via sbatch.",
	Long: `The 'submit' command assembles a Slurm batch script from the given command,
directives, modules, and dependencies, submits it via sbatch, and prints the
assigned job ID. By default the script file is removed after the scheduler
accepts it; use --keep-script to retain it.`,
	Run:          runSubmitCmd,
	SilenceUsage: true,
}

func runSubmitCmd(cmd *cobra.Command, args []string) {
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
	js.SetClient(newClient(cfg))

	if dryRun {
		fmt.Print(js.Render())
		return
	}

	var jobID string
	if keepScript {
		if err := js.Write(); err != nil {
			logging.Fatal("Failed to write job script: %v", err)
		}
		logging.Info("Wrote job script to %s", js.ScriptPath())
		jobID, err = js.Submit()
	} else {
		jobID, err = js.Run()
	}
	if err != nil {
		// A failed cleanup after a successful submission leaves the job
		// running under the scheduler; report the ID anyway.
		var fsErr *scheduler.FilesystemError
		if errors.As(err, &fsErr) && jobID != "" {
			logging.Warn("Job %s submitted, but cleanup failed: %v", jobID, err)
		} else {
			logging.Fatal("Submission failed: %v", err)
		}
	}

	fmt.Println(jobID)
}

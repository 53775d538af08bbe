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
	"time"

	"github.com/spf13/cobra"

	"slurm-toolkit/pkg/logging"
	"slurm-toolkit/pkg/scheduler"
)

var (
	watch         bool
	watchInterval time.Duration
)

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Poll until the job is finished.")
	statusCmd.Flags().DurationVar(&watchInterval, "interval", 10*time.Second, "Polling interval used with --watch.")
}

var statusCmd = &cobra.Command{
	Use:   "status <job-id>",
	Short: "Queries the state of a submitted job via sacct.",
	Long: `The 'status' command queries the scheduler's accounting database for the
state of a submitted job and reports whether the scheduler has stopped
actively running it. With --watch it polls at a fixed interval until the job
leaves the PENDING and RUNNING states.`,
	Args:         cobra.ExactArgs(1),
	Run:          runStatusCmd,
	SilenceUsage: true,
}

func runStatusCmd(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		logging.Fatal("Failed to load config: %v", err)
	}
	client := newClient(cfg)
	jobID := args[0]

	for {
		state, err := scheduler.QueryState(client, jobID)
		if err != nil {
			logging.Fatal("State query failed: %v", err)
		}

		if state.Finished() {
			fmt.Printf("%s finished\n", state)
			return
		}

		fmt.Printf("%s not finished\n", state)
		if !watch {
			return
		}
		time.Sleep(watchInterval)
	}
}

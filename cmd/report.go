// Copyright 2024-2026
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/nepse-tools/meroshare/meroshare"
	"github.com/nepse-tools/meroshare/render"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Check allotment outcomes of recently submitted applications",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(func(ctx context.Context, s *meroshare.Session, svc *services) error {
			records, err := svc.report.RecentApplications(ctx, s)
			if err != nil {
				return err
			}

			render.Applications(os.Stdout, records)
			return nil
		})
	},
}

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
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nepse-tools/meroshare/meroshare"
	"github.com/nepse-tools/meroshare/render"
)

var (
	applyCmdAll   bool
	applyCmdFirst bool
)

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().IntP("company-share-id", "c", 0, "Company share ID to apply to; run list to discover ids")
	viper.BindPFlag("apply.company_share_id", applyCmd.Flags().Lookup("company-share-id"))

	applyCmd.Flags().IntP("kitta", "n", 10, "Number of shares to apply for")
	viper.BindPFlag("apply.kitta", applyCmd.Flags().Lookup("kitta"))

	applyCmd.Flags().BoolVar(&applyCmdFirst, "first", false, "Apply to the first unapplied ordinary issue")
	applyCmd.Flags().BoolVar(&applyCmdAll, "all", false, "Apply to every unapplied ordinary issue")
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply to open share issues",
	Long: `Apply to open ordinary share issues. Select one target mode:
a specific issue with --company-share-id, the earliest open issue with
--first, or every open issue with --all.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		companyShareID := viper.GetInt("apply.company_share_id")
		kitta := viper.GetInt("apply.kitta")

		modes := 0
		for _, selected := range []bool{companyShareID != 0, applyCmdFirst, applyCmdAll} {
			if selected {
				modes++
			}
		}
		if modes != 1 {
			return errors.New("specify exactly one of --company-share-id, --first or --all")
		}

		return runBatch(func(ctx context.Context, s *meroshare.Session, svc *services) error {
			var results []*meroshare.ApplyResult

			switch {
			case applyCmdAll:
				var err error
				results, err = svc.workflow.ApplyAll(ctx, s, kitta)
				if err != nil {
					return err
				}
			case applyCmdFirst:
				result, err := svc.workflow.ApplyFirst(ctx, s, kitta)
				if err != nil {
					return err
				}
				results = append(results, result)
			default:
				result, err := svc.workflow.Apply(ctx, s, companyShareID, kitta)
				if err != nil {
					return err
				}
				results = append(results, result)
			}

			render.Outcomes(os.Stdout, results)
			return nil
		})
	},
}

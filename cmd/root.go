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
	"fmt"
	"os"

	"github.com/nepse-tools/meroshare/common"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Credential store
	viper.BindEnv("accounts.path", "MEROSHARE_ACCOUNTS")
	rootCmd.PersistentFlags().String("accounts", "accounts.csv", "Path to the accounts.csv credential store")
	viper.BindPFlag("accounts.path", rootCmd.PersistentFlags().Lookup("accounts"))

	rootCmd.PersistentFlags().StringP("user", "u", "", "Run for this account only; default is every account in the store")
	viper.BindPFlag("accounts.user", rootCmd.PersistentFlags().Lookup("user"))

	rootCmd.PersistentFlags().Bool("keep-going", false, "Continue with remaining accounts after one account fails")
	viper.BindPFlag("accounts.keep_going", rootCmd.PersistentFlags().Lookup("keep-going"))

	// Backend
	viper.BindEnv("meroshare.base_url", "MEROSHARE_BASE_URL")
	rootCmd.PersistentFlags().String("base-url", "", "MeroShare backend base URL")
	viper.BindPFlag("meroshare.base_url", rootCmd.PersistentFlags().Lookup("base-url"))

	rootCmd.PersistentFlags().Bool("insecure", false, "Skip TLS certificate verification")
	viper.BindPFlag("meroshare.insecure", rootCmd.PersistentFlags().Lookup("insecure"))

	// Logging configuration
	viper.BindEnv("log.level", "MEROSHARE_LOG_LEVEL")
	rootCmd.PersistentFlags().String("log-level", "warning", "Logging level")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	viper.BindEnv("log.output", "MEROSHARE_LOG_OUTPUT")
	rootCmd.PersistentFlags().String("log-output", "stderr", "Write logs to specified output one of: file path, `stdout`, or `stderr`")
	viper.BindPFlag("log.output", rootCmd.PersistentFlags().Lookup("log-output"))

	rootCmd.PersistentFlags().Bool("log-pretty", true, "Print logs with the console writer")
	viper.BindPFlag("log.pretty", rootCmd.PersistentFlags().Lookup("log-pretty"))
}

var rootCmd = &cobra.Command{
	Use:     "meroshare",
	Version: common.CurrentVersion.String(),
	Short:   "MeroShare simplified for bulk actions",
	Long: `Automate MeroShare IPO/FPO workflows across accounts: list currently
open issues, apply to unapplied ordinary share issues, and check
allotment reports.`,
	// listing is the default action, matching "run with no args"
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, args)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

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

// Package batch runs one action per configured account, strictly in order
// and one at a time. Sessions, catalogs and results are owned by a single
// account's run; nothing is shared across accounts.
package batch

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/nepse-tools/meroshare/accounts"
	"github.com/nepse-tools/meroshare/meroshare"
)

// Action is the per-account work to run against an established session.
type Action func(ctx context.Context, s *meroshare.Session) error

// Result is the outcome of one account's run. Err is the fatal error that
// aborted the account (authentication, branch resolution, fetch failures);
// apply-time outcomes are reported by the action itself and are not errors.
type Result struct {
	Account string
	Err     error
}

// Run executes action for every account sequentially. By default the first
// fatal account error ends the batch, mirroring a single operator watching
// the run; keepGoing opts into finishing the remaining accounts regardless.
// The returned slice holds one Result per account attempted, in input order.
func Run(ctx context.Context, client *meroshare.Client, accts []*accounts.Account, keepGoing bool, action Action) []Result {
	results := make([]Result, 0, len(accts))

	for _, account := range accts {
		log.Info().Str("Account", account.Name).Msg("starting account run")

		err := runOne(ctx, client, account, action)
		results = append(results, Result{Account: account.Name, Err: err})

		if err != nil {
			log.Error().Err(err).Str("Account", account.Name).Msg("account run failed")
			if !keepGoing {
				break
			}
		}
	}

	return results
}

func runOne(ctx context.Context, client *meroshare.Client, account *accounts.Account, action Action) error {
	session, err := meroshare.NewSession(ctx, client, account)
	if err != nil {
		return err
	}

	return action(ctx, session)
}

// Failed reports whether any account in the batch ended with a fatal error.
func Failed(results []Result) bool {
	for _, result := range results {
		if result.Err != nil {
			return true
		}
	}
	return false
}

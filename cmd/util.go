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

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/nepse-tools/meroshare/accounts"
	"github.com/nepse-tools/meroshare/batch"
	"github.com/nepse-tools/meroshare/common"
	"github.com/nepse-tools/meroshare/meroshare"
	"github.com/nepse-tools/meroshare/render"
)

var errBatchFailed = errors.New("one or more accounts failed")

// services bundles the backend collaborators shared by all commands. The
// catalog cache is keyed by session instance, so sharing one catalog across
// accounts is safe.
type services struct {
	client   *meroshare.Client
	catalog  *meroshare.Catalog
	workflow *meroshare.Workflow
	report   *meroshare.Report
}

func newServices() *services {
	client := meroshare.NewClient()
	catalog := meroshare.NewCatalog(client)
	return &services{
		client:   client,
		catalog:  catalog,
		workflow: meroshare.NewWorkflow(client, catalog),
		report:   meroshare.NewReport(client),
	}
}

// runBatch loads the configured accounts and runs action for each of them
// sequentially, printing a failure summary at the end.
func runBatch(action func(ctx context.Context, s *meroshare.Session, svc *services) error) error {
	common.SetupLogging()

	accts, err := accounts.Load(viper.GetString("accounts.path"), viper.GetString("accounts.user"))
	if err != nil {
		log.Error().Err(err).Msg("could not load accounts")
		return err
	}

	svc := newServices()
	results := batch.Run(context.Background(), svc.client, accts, viper.GetBool("accounts.keep_going"),
		func(ctx context.Context, s *meroshare.Session) error {
			render.AccountBanner(os.Stdout, s.Account().Name)
			return action(ctx, s, svc)
		})

	render.Summary(os.Stdout, results)
	if batch.Failed(results) {
		return errBatchFailed
	}
	return nil
}

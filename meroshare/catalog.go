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

package meroshare

import (
	"context"
	"fmt"
	"net/http"

	lru "github.com/hashicorp/golang-lru"
	"github.com/rs/zerolog/log"
)

// searchPageSize matches the page size the MeroShare frontend requests; the
// backend never lists more open issues than fit on one page.
const searchPageSize = 20

const catalogCacheSize = 16

type filterField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Alias string `json:"alias"`
}

type filterDate struct {
	Key       string `json:"key"`
	Condition string `json:"condition"`
	Alias     string `json:"alias"`
	Value     string `json:"value"`
}

type searchRequest struct {
	FilterFieldParams       []filterField `json:"filterFieldParams"`
	FilterDateParams        []filterDate  `json:"filterDateParams"`
	Page                    int           `json:"page"`
	Size                    int           `json:"size"`
	SearchRoleViewConstants string        `json:"searchRoleViewConstants"`
}

// Catalog fetches and memoizes the open-issue list. The cache is keyed by
// Session instance: within one session's lifetime decisions are made against
// a single consistent snapshot even if the server state moves underneath,
// while a fresh session always recomputes from scratch.
type Catalog struct {
	client *Client
	cache  *lru.Cache
}

func NewCatalog(client *Client) *Catalog {
	cache, err := lru.New(catalogCacheSize)
	if err != nil {
		log.Panic().Err(err).Msg("could not create issue cache")
	}

	return &Catalog{
		client: client,
		cache:  cache,
	}
}

// OpenIssues returns the currently open issues for the session, in server
// order. The first call per session fetches; later calls return the cached
// snapshot without touching the network.
func (c *Catalog) OpenIssues(ctx context.Context, s *Session) ([]Issue, error) {
	if cached, ok := c.cache.Get(s); ok {
		return cached.([]Issue), nil
	}

	payload := searchRequest{
		FilterFieldParams: []filterField{
			{Key: "companyIssue.companyISIN.script", Alias: "Scrip"},
			{Key: "companyIssue.companyISIN.company.name", Alias: "Company Name"},
			{Key: "companyIssue.assignedToClient.name", Alias: "Issue Manager"},
		},
		FilterDateParams: []filterDate{
			{Key: "minIssueOpenDate"},
			{Key: "maxIssueCloseDate"},
		},
		Page:                    1,
		Size:                    searchPageSize,
		SearchRoleViewConstants: "VIEW_APPLICABLE_SHARE",
	}

	var result struct {
		Object []Issue `json:"object"`
	}
	err := c.client.doJSON(ctx, http.MethodPost, "/api/meroShare/companyShare/applicableIssue/", s.authorization, payload, &result)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCatalogFetch, err)
	}

	log.Debug().Str("Account", s.Account().Name).Int("NumIssues", len(result.Object)).Msg("fetched open issues")
	c.cache.Add(s, result.Object)
	return result.Object, nil
}

// UnappliedOrdinaryIssues filters OpenIssues down to the ordinary share
// issues the account has not applied to, preserving server order.
func (c *Catalog) UnappliedOrdinaryIssues(ctx context.Context, s *Session) ([]Issue, error) {
	issues, err := c.OpenIssues(ctx, s)
	if err != nil {
		return nil, err
	}

	unapplied := make([]Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.IsUnappliedOrdinaryShare() {
			unapplied = append(unapplied, issue)
		}
	}

	return unapplied, nil
}

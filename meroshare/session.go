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

	"github.com/rs/zerolog/log"

	"github.com/nepse-tools/meroshare/accounts"
)

// dematPrefix starts every BOID issued by CDSC.
const dematPrefix = "130"

// Bank is one entry of the linked-bank list.
type Bank struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// BranchInfo is one branch/account record, augmented with the id of the bank
// it was resolved from.
type BranchInfo struct {
	ID              int    `json:"id"`
	AccountNumber   string `json:"accountNumber"`
	AccountBranchID int    `json:"accountBranchId"`
	AccountTypeID   int    `json:"accountTypeId"`
	AccountTypeName string `json:"accountTypeName"`
	BranchName      string `json:"branchName"`
	BankID          int    `json:"bankId"`
}

// Session owns one account's authenticated MeroShare state. NewSession
// drives authentication and branch resolution to completion; a Session you
// hold is always fully resolved, so catalog, apply and report operations
// never observe a partially initialized session. Token and branch info are
// write-once; nothing is persisted across runs.
type Session struct {
	client        *Client
	account       *accounts.Account
	authorization string
	branch        *BranchInfo
}

// NewSession authenticates the account and resolves its bank branch. Any
// failure is fatal for the account; there is no retry.
func NewSession(ctx context.Context, client *Client, account *accounts.Account) (*Session, error) {
	s := &Session{
		client:  client,
		account: account,
	}

	if err := s.authenticate(ctx); err != nil {
		return nil, err
	}
	if err := s.resolveBranch(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

type authRequest struct {
	ClientID int    `json:"clientId"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Session) authenticate(ctx context.Context) error {
	payload := authRequest{
		ClientID: s.account.ClientID,
		Username: s.account.Username,
		Password: s.account.Password,
	}

	resp, err := s.client.Do(ctx, http.MethodPost, "/api/meroShare/auth/", "", payload)
	if err != nil {
		return fmt.Errorf("%w for user %s: %s", ErrAuthentication, s.account.Username, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Error().Int("StatusCode", resp.StatusCode).Str("Username", s.account.Username).Msg("authentication rejected")
		return fmt.Errorf("%w for user %s: status %d", ErrAuthentication, s.account.Username, resp.StatusCode)
	}

	token := resp.Header.Get("Authorization")
	if token == "" {
		return fmt.Errorf("%w for user %s: response carries no authorization token", ErrAuthentication, s.account.Username)
	}

	s.authorization = token
	log.Debug().Str("Username", s.account.Username).Msg("session created")
	return nil
}

func (s *Session) resolveBranch(ctx context.Context) error {
	bank, err := s.firstBank(ctx)
	if err != nil {
		return err
	}

	var branches []BranchInfo
	err = s.client.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/meroShare/bank/%d", bank.ID), s.authorization, nil, &branches)
	if err != nil {
		return fmt.Errorf("%w for account %s: %s", ErrBranchResolution, s.account.Name, err)
	}
	if len(branches) == 0 {
		return fmt.Errorf("%w for account %s: bank %d has no branches", ErrBranchResolution, s.account.Name, bank.ID)
	}

	// first branch in server order; multi-branch selection is not supported
	branch := branches[0]
	branch.BankID = bank.ID
	s.branch = &branch

	log.Debug().Str("Account", s.account.Name).Int("BankID", bank.ID).Str("Branch", branch.BranchName).Msg("branch resolved")
	return nil
}

// firstBank returns the earliest entry of the server's linked-bank list.
func (s *Session) firstBank(ctx context.Context) (*Bank, error) {
	var banks []Bank
	err := s.client.doJSON(ctx, http.MethodGet, "/api/meroShare/bank/", s.authorization, nil, &banks)
	if err != nil {
		return nil, fmt.Errorf("%w for account %s: %s", ErrBranchResolution, s.account.Name, err)
	}
	if len(banks) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoBankRegistered, s.account.Name)
	}

	return &banks[0], nil
}

// Demat is the subscriber identifier used by every post-login endpoint.
func (s *Session) Demat() string {
	return dematPrefix + s.account.DP + s.account.Username
}

// Account returns the account this session was created for.
func (s *Session) Account() *accounts.Account {
	return s.account
}

// Branch returns the resolved branch/account details.
func (s *Session) Branch() *BranchInfo {
	return s.branch
}

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

package accounts

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

var (
	ErrAccountNotFound              = errors.New("account not found in credential store")
	ErrUnknownDepositoryParticipant = errors.New("unknown depository participant code")
	ErrMalformedCredentialStore     = errors.New("malformed credential store")
)

// Account holds one MeroShare login plus the identifiers needed to submit
// share applications on its behalf. Accounts are immutable after Load.
type Account struct {
	// Name identifies the account holder in the credential store
	Name string

	// DP is the depository participant code of the capital holding the account
	DP string

	// ClientID is the numeric id MeroShare assigns to the DP; resolved from
	// the capitals table at construction time
	ClientID int

	Username       string
	Password       string
	CRN            string
	TransactionPIN string
}

// New constructs an Account, resolving the DP code to its MeroShare client
// id. An unresolvable DP code is a configuration error.
func New(name, dp, username, password, crn, pin string) (*Account, error) {
	clientID, err := ClientID(dp)
	if err != nil {
		return nil, err
	}

	return &Account{
		Name:           name,
		DP:             dp,
		ClientID:       clientID,
		Username:       username,
		Password:       password,
		CRN:            crn,
		TransactionPIN: pin,
	}, nil
}

// ClientID maps a depository participant code to the numeric client id used
// by the MeroShare auth endpoint.
func ClientID(dp string) (int, error) {
	for _, capital := range capitals {
		if capital.Code == dp {
			return capital.ID, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownDepositoryParticipant, dp)
}

// expected header columns of the credential store
var storeColumns = []string{"user", "dp", "username", "password", "crn", "pin"}

// Load reads accounts from the CSV credential store at path. With an empty
// name every account is returned in store order; otherwise only the matching
// account is returned.
func Load(path string, name string) ([]*Account, error) {
	fh, err := os.Open(path)
	if err != nil {
		log.Error().Err(err).Str("Path", path).Msg("could not open credential store")
		return nil, err
	}
	defer fh.Close()

	accounts, err := parse(fh)
	if err != nil {
		return nil, err
	}

	if name == "" {
		return accounts, nil
	}

	for _, account := range accounts {
		if account.Name == name {
			return []*Account{account}, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, name)
}

func parse(r io.Reader) ([]*Account, error) {
	reader := csv.NewReader(r)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedCredentialStore, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrMalformedCredentialStore)
	}

	// map header names to column positions so column order in the store
	// doesn't matter
	colIdx := make(map[string]int, len(rows[0]))
	for idx, col := range rows[0] {
		colIdx[col] = idx
	}
	for _, col := range storeColumns {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformedCredentialStore, col)
		}
	}

	accounts := make([]*Account, 0, len(rows)-1)
	for _, row := range rows[1:] {
		account, err := New(row[colIdx["user"]], row[colIdx["dp"]],
			row[colIdx["username"]], row[colIdx["password"]],
			row[colIdx["crn"]], row[colIdx["pin"]])
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

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
	"fmt"
	"strings"
)

const (
	shareTypeIPO        = "IPO"
	shareTypeFPO        = "FPO"
	shareGroupOrdinary  = "Ordinary Shares"
	actionAlreadyEdited = "edit"
)

// Issue is a read-only view over one applicable-issue record as returned by
// the backend. Records never mutate after decoding.
type Issue struct {
	CompanyShareID int    `json:"companyShareId"`
	SubGroup       string `json:"subGroup"`
	Scrip          string `json:"scrip"`
	CompanyName    string `json:"companyName"`
	ShareTypeName  string `json:"shareTypeName"`
	ShareGroupName string `json:"shareGroupName"`
	StatusName     string `json:"statusName"`
	Action         string `json:"action"`
	IssueOpenDate  string `json:"issueOpenDate"`
	IssueCloseDate string `json:"issueCloseDate"`
}

func (i *Issue) IsIPO() bool {
	return i.ShareTypeName == shareTypeIPO
}

func (i *Issue) IsFPO() bool {
	return i.ShareTypeName == shareTypeFPO
}

func (i *Issue) IsOrdinaryShares() bool {
	return i.ShareGroupName == shareGroupOrdinary
}

// IsApplied reports whether this account already applied; the backend
// signals it by offering an "edit" action on the issue.
func (i *Issue) IsApplied() bool {
	return i.Action == actionAlreadyEdited
}

// IsUnappliedOrdinaryShare reports whether the issue is still worth applying
// to: an ordinary share issue the account has not touched yet.
func (i *Issue) IsUnappliedOrdinaryShare() bool {
	return i.IsOrdinaryShares() && !i.IsApplied()
}

// Status describes the applied state for display.
func (i *Issue) Status() string {
	if i.IsApplied() {
		return "applied"
	}
	return "not applied"
}

// String renders the issue banner shown in listing mode.
func (i *Issue) String() string {
	return fmt.Sprintf("******   COMPANY SHARE ID: %d    ******\n%s (%s) - %s (%s) - %s\n%s - %s\n%s\n",
		i.CompanyShareID, i.ShareTypeName, i.ShareGroupName, i.SubGroup,
		i.Scrip, i.CompanyName, i.IssueOpenDate, i.IssueCloseDate,
		capitalize(i.Status()))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

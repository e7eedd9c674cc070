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

// Package render formats console output for the CLI commands.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/nepse-tools/meroshare/batch"
	"github.com/nepse-tools/meroshare/meroshare"
)

// AccountBanner prints the per-account header preceding each account's
// output.
func AccountBanner(w io.Writer, name string) {
	fmt.Fprintf(w, "=========  %s  =========\n", strings.ToUpper(name))
}

func newTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleColoredDark)
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateRows = false
	tw.Style().Options.SeparateColumns = false
	return tw
}

// Issues renders the open-issue listing.
func Issues(w io.Writer, issues []meroshare.Issue) {
	if len(issues) == 0 {
		fmt.Fprintln(w, "no open issues")
		return
	}

	tw := newTable(w)
	tw.AppendHeader(table.Row{"ID", "SCRIP", "COMPANY", "TYPE", "GROUP", "OPEN", "CLOSE", "STATUS"})
	for idx := range issues {
		issue := &issues[idx]
		status := issue.Status()
		if issue.IsApplied() {
			status = text.Colors{text.FgGreen}.Sprint(status)
		}
		tw.AppendRow(table.Row{
			issue.CompanyShareID, issue.Scrip, issue.CompanyName,
			issue.ShareTypeName, issue.ShareGroupName,
			issue.IssueOpenDate, issue.IssueCloseDate, status,
		})
	}
	tw.Render()
}

// Applications renders the allotment report.
func Applications(w io.Writer, records []meroshare.ApplicationRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "no applications in reporting window")
		return
	}

	tw := newTable(w)
	tw.AppendHeader(table.Row{"SCRIP", "COMPANY", "STATUS", "ALLOTMENT"})
	for idx := range records {
		record := &records[idx]
		allotment := record.AllotmentStatus
		if allotment != meroshare.AllotmentNotAvailable {
			allotment = text.Colors{text.FgGreen}.Sprint(allotment)
		}
		tw.AppendRow(table.Row{record.Scrip, record.CompanyName, record.StatusName, allotment})
	}
	tw.Render()
}

// Outcomes renders apply results.
func Outcomes(w io.Writer, results []*meroshare.ApplyResult) {
	for _, result := range results {
		if result.Outcome == meroshare.OutcomeNothingToApply {
			fmt.Fprintln(w, "nothing to apply")
			continue
		}

		line := fmt.Sprintf("%s (%d) -- %s", result.Scrip, result.CompanyShareID, strings.ToUpper(result.Outcome.String()))
		if result.Outcome == meroshare.OutcomeApplied {
			line = text.Colors{text.FgGreen}.Sprint(line)
		} else {
			line = text.Colors{text.FgRed}.Sprint(line)
		}
		fmt.Fprintln(w, line)
	}
}

// Summary renders the per-account batch results after a run.
func Summary(w io.Writer, results []batch.Result) {
	if !batch.Failed(results) {
		return
	}

	fmt.Fprintln(w)
	for _, result := range results {
		if result.Err != nil {
			fmt.Fprintf(w, "%s: %s\n", result.Account, text.Colors{text.FgRed}.Sprint(result.Err))
		}
	}
}

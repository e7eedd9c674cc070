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

package render_test

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nepse-tools/meroshare/batch"
	"github.com/nepse-tools/meroshare/meroshare"
	"github.com/nepse-tools/meroshare/render"
)

var _ = Describe("Render", func() {
	var buf *bytes.Buffer

	BeforeEach(func() {
		buf = &bytes.Buffer{}
	})

	Describe("AccountBanner", func() {
		It("upcases the account name", func() {
			render.AccountBanner(buf, "ram")
			Expect(buf.String()).To(ContainSubstring("RAM"))
		})
	})

	Describe("Issues", func() {
		It("lists one row per issue", func() {
			render.Issues(buf, []meroshare.Issue{
				{CompanyShareID: 301, Scrip: "SBL", CompanyName: "Sunrise Bank Ltd.", ShareTypeName: "IPO", ShareGroupName: "Ordinary Shares"},
				{CompanyShareID: 303, Scrip: "GBIME", CompanyName: "Global IME Bank Ltd.", ShareTypeName: "FPO", ShareGroupName: "Ordinary Shares", Action: "edit"},
			})

			out := buf.String()
			Expect(out).To(ContainSubstring("SBL"))
			Expect(out).To(ContainSubstring("GBIME"))
			Expect(out).To(ContainSubstring("applied"))
		})

		It("notes when nothing is open", func() {
			render.Issues(buf, nil)
			Expect(buf.String()).To(ContainSubstring("no open issues"))
		})
	})

	Describe("Applications", func() {
		It("prints the allotment status per record", func() {
			render.Applications(buf, []meroshare.ApplicationRecord{
				{Scrip: "SBL", CompanyName: "Sunrise Bank Ltd.", StatusName: "APPROVED", AllotmentStatus: "Alloted"},
				{Scrip: "NMBD", CompanyName: "NMB Debenture", StatusName: "PENDING", AllotmentStatus: meroshare.AllotmentNotAvailable},
			})

			out := buf.String()
			Expect(out).To(ContainSubstring("Alloted"))
			Expect(out).To(ContainSubstring("N/A"))
		})
	})

	Describe("Outcomes", func() {
		It("prints one line per result", func() {
			render.Outcomes(buf, []*meroshare.ApplyResult{
				{CompanyShareID: 301, Scrip: "SBL", Outcome: meroshare.OutcomeApplied},
				{CompanyShareID: 304, Scrip: "MKCL", Outcome: meroshare.OutcomeFailed},
			})

			out := buf.String()
			Expect(out).To(ContainSubstring("SBL"))
			Expect(out).To(ContainSubstring("APPLY FAILED"))
		})

		It("reports when there was nothing to apply to", func() {
			render.Outcomes(buf, []*meroshare.ApplyResult{{Outcome: meroshare.OutcomeNothingToApply}})
			Expect(buf.String()).To(ContainSubstring("nothing to apply"))
		})
	})

	Describe("Summary", func() {
		It("is silent when every account succeeded", func() {
			render.Summary(buf, []batch.Result{{Account: "ram"}})
			Expect(buf.String()).To(BeEmpty())
		})

		It("lists failed accounts with their error", func() {
			render.Summary(buf, []batch.Result{
				{Account: "ram"},
				{Account: "sita", Err: errors.New("no banks")},
			})

			out := buf.String()
			Expect(out).To(ContainSubstring("sita"))
			Expect(out).To(ContainSubstring("no banks"))
			Expect(out).ToNot(ContainSubstring("ram"))
		})
	})
})

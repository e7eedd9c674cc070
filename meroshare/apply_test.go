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

package meroshare_test

import (
	"context"
	"errors"

	"github.com/jarcoal/httpmock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nepse-tools/meroshare/meroshare"
)

var _ = Describe("Workflow", func() {
	var (
		ctx      context.Context
		client   *meroshare.Client
		workflow *meroshare.Workflow
		session  *meroshare.Session
	)

	BeforeEach(func() {
		ctx = context.Background()
		client = meroshare.NewClient()
		httpmock.ActivateNonDefault(client.HTTP)
		registerSessionResponders()

		var err error
		session, err = meroshare.NewSession(ctx, client, testAccount())
		Expect(err).To(BeNil())

		catalog := meroshare.NewCatalog(client)
		workflow = meroshare.NewWorkflow(client, catalog)

		httpmock.RegisterResponder("POST", issuesURL,
			httpmock.NewStringResponder(200, issuesFixture))
	})

	AfterEach(func() {
		httpmock.DeactivateAndReset()
	})

	registerCanApply := func(companyShareID int, message string) {
		httpmock.RegisterResponder("GET", canApplyURL(companyShareID, session.Demat()),
			httpmock.NewStringResponder(200, `{"message":"`+message+`"}`))
	}

	Context("applying to an eligible issue", func() {
		BeforeEach(func() {
			registerCanApply(301, "Customer can apply.")
			httpmock.RegisterResponder("POST", applyURL,
				httpmock.NewStringResponder(201, `{}`))
		})

		It("submits and reports the applied outcome", func() {
			result, err := workflow.Apply(ctx, session, 301, 10)
			Expect(err).To(BeNil())
			Expect(result.Outcome).To(Equal(meroshare.OutcomeApplied))
			Expect(result.CompanyShareID).To(Equal(301))
			Expect(result.Scrip).To(Equal("SBL"))

			info := httpmock.GetCallCountInfo()
			Expect(info["GET "+canApplyURL(301, session.Demat())]).To(Equal(1))
			Expect(info["POST "+applyURL]).To(Equal(1))
		})
	})

	Context("applying to a company share id outside the eligible set", func() {
		It("fails without contacting the apply endpoints", func() {
			// 303 is in the catalog but already applied
			_, err := workflow.Apply(ctx, session, 303, 10)
			Expect(errors.Is(err, meroshare.ErrIssueNotEligible)).To(BeTrue())

			info := httpmock.GetCallCountInfo()
			Expect(info["GET "+canApplyURL(303, session.Demat())]).To(Equal(0))
			Expect(info["POST "+applyURL]).To(Equal(0))
		})

		It("fails for ids the catalog has never seen", func() {
			_, err := workflow.Apply(ctx, session, 999, 10)
			Expect(errors.Is(err, meroshare.ErrIssueNotEligible)).To(BeTrue())
		})
	})

	Context("when the eligibility check is negative", func() {
		BeforeEach(func() {
			registerCanApply(301, "Customer cannot apply.")
		})

		It("reports cannot-apply and skips submission", func() {
			result, err := workflow.Apply(ctx, session, 301, 10)
			Expect(err).To(BeNil())
			Expect(result.Outcome).To(Equal(meroshare.OutcomeCannotApply))

			info := httpmock.GetCallCountInfo()
			Expect(info["POST "+applyURL]).To(Equal(0))
		})
	})

	Context("when submission is rejected", func() {
		BeforeEach(func() {
			registerCanApply(301, "Customer can apply.")
			httpmock.RegisterResponder("POST", applyURL,
				httpmock.NewStringResponder(409, `{}`))
		})

		It("reports a failed outcome without an error", func() {
			result, err := workflow.Apply(ctx, session, 301, 10)
			Expect(err).To(BeNil())
			Expect(result.Outcome).To(Equal(meroshare.OutcomeFailed))
		})
	})

	Describe("ApplyFirst", func() {
		It("applies to the earliest eligible issue only", func() {
			registerCanApply(301, "Customer can apply.")
			httpmock.RegisterResponder("POST", applyURL,
				httpmock.NewStringResponder(201, `{}`))

			result, err := workflow.ApplyFirst(ctx, session, 10)
			Expect(err).To(BeNil())
			Expect(result.CompanyShareID).To(Equal(301))
			Expect(result.Outcome).To(Equal(meroshare.OutcomeApplied))

			info := httpmock.GetCallCountInfo()
			Expect(info["POST "+applyURL]).To(Equal(1))
		})

		It("reports nothing-to-apply without contacting the apply endpoint", func() {
			httpmock.RegisterResponder("POST", issuesURL,
				httpmock.NewStringResponder(200, `{"object":[]}`))

			result, err := workflow.ApplyFirst(ctx, session, 10)
			Expect(err).To(BeNil())
			Expect(result.Outcome).To(Equal(meroshare.OutcomeNothingToApply))

			info := httpmock.GetCallCountInfo()
			Expect(info["POST "+applyURL]).To(Equal(0))
		})
	})

	Describe("ApplyAll", func() {
		It("continues past per-issue failures", func() {
			registerCanApply(301, "Customer cannot apply.")
			registerCanApply(304, "Customer can apply.")
			httpmock.RegisterResponder("POST", applyURL,
				httpmock.NewStringResponder(201, `{}`))

			results, err := workflow.ApplyAll(ctx, session, 10)
			Expect(err).To(BeNil())
			Expect(results).To(HaveLen(2))
			Expect(results[0].Outcome).To(Equal(meroshare.OutcomeCannotApply))
			Expect(results[1].Outcome).To(Equal(meroshare.OutcomeApplied))

			info := httpmock.GetCallCountInfo()
			Expect(info["POST "+applyURL]).To(Equal(1))
		})

		It("reports nothing-to-apply when every issue is applied already", func() {
			httpmock.RegisterResponder("POST", issuesURL,
				httpmock.NewStringResponder(200, `{"object":[
					{"companyShareId":303,"scrip":"GBIME","shareGroupName":"Ordinary Shares","action":"edit"}
				]}`))

			results, err := workflow.ApplyAll(ctx, session, 10)
			Expect(err).To(BeNil())
			Expect(results).To(HaveLen(1))
			Expect(results[0].Outcome).To(Equal(meroshare.OutcomeNothingToApply))
		})
	})
})

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

var _ = Describe("Session", func() {
	var (
		ctx    context.Context
		client *meroshare.Client
	)

	BeforeEach(func() {
		ctx = context.Background()
		client = meroshare.NewClient()
		httpmock.ActivateNonDefault(client.HTTP)
	})

	AfterEach(func() {
		httpmock.DeactivateAndReset()
	})

	Context("with a healthy backend", func() {
		BeforeEach(func() {
			registerSessionResponders()
		})

		It("stores the first branch augmented with the bank id", func() {
			s, err := meroshare.NewSession(ctx, client, testAccount())
			Expect(err).To(BeNil())
			Expect(s.Branch()).To(Equal(&meroshare.BranchInfo{
				ID:              55,
				AccountNumber:   "0099",
				AccountBranchID: 7,
				AccountTypeID:   1,
				BankID:          1,
			}))
		})

		It("derives the demat id from prefix, DP and username", func() {
			s, err := meroshare.NewSession(ctx, client, testAccount())
			Expect(err).To(BeNil())
			Expect(s.Demat()).To(Equal("130" + "13200" + "00123456"))
		})
	})

	Context("when authentication is rejected", func() {
		BeforeEach(func() {
			httpmock.RegisterResponder("POST", authURL,
				httpmock.NewStringResponder(401, `{"message":"Invalid credentials."}`))
		})

		It("fails with an authentication error naming the user", func() {
			_, err := meroshare.NewSession(ctx, client, testAccount())
			Expect(errors.Is(err, meroshare.ErrAuthentication)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("00123456"))
		})

		It("does not attempt branch resolution", func() {
			_, _ = meroshare.NewSession(ctx, client, testAccount())
			info := httpmock.GetCallCountInfo()
			Expect(info["GET "+bankURL]).To(Equal(0))
		})
	})

	Context("when the auth response carries no authorization token", func() {
		BeforeEach(func() {
			httpmock.RegisterResponder("POST", authURL,
				httpmock.NewStringResponder(200, `{}`))
		})

		It("fails instead of continuing unauthenticated", func() {
			_, err := meroshare.NewSession(ctx, client, testAccount())
			Expect(errors.Is(err, meroshare.ErrAuthentication)).To(BeTrue())

			info := httpmock.GetCallCountInfo()
			Expect(info["GET "+bankURL]).To(Equal(0))
		})
	})

	Context("when the account has no linked banks", func() {
		BeforeEach(func() {
			registerSessionResponders()
			httpmock.RegisterResponder("GET", bankURL,
				httpmock.NewStringResponder(200, `[]`))
		})

		It("fails with a no-bank error", func() {
			_, err := meroshare.NewSession(ctx, client, testAccount())
			Expect(errors.Is(err, meroshare.ErrNoBankRegistered)).To(BeTrue())
		})
	})

	Context("when the branch list is empty", func() {
		BeforeEach(func() {
			registerSessionResponders()
			httpmock.RegisterResponder("GET", bankURL+"1",
				httpmock.NewStringResponder(200, `[]`))
		})

		It("fails with a branch resolution error", func() {
			_, err := meroshare.NewSession(ctx, client, testAccount())
			Expect(errors.Is(err, meroshare.ErrBranchResolution)).To(BeTrue())
		})
	})

	Context("when the branch request fails", func() {
		BeforeEach(func() {
			registerSessionResponders()
			httpmock.RegisterResponder("GET", bankURL+"1",
				httpmock.NewStringResponder(500, ``))
		})

		It("fails with a branch resolution error", func() {
			_, err := meroshare.NewSession(ctx, client, testAccount())
			Expect(errors.Is(err, meroshare.ErrBranchResolution)).To(BeTrue())
		})
	})
})

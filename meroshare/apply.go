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
	"strconv"

	"github.com/rs/zerolog/log"
)

// canApplyMessage is the literal the eligibility endpoint returns for an
// account that may still apply.
const canApplyMessage = "Customer can apply."

// Outcome classifies one application attempt. Outcomes are results, not
// errors: in batch mode the caller reports them and moves on.
type Outcome int

const (
	OutcomeApplied Outcome = iota
	OutcomeNotEligible
	OutcomeCannotApply
	OutcomeFailed
	OutcomeNothingToApply
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeNotEligible:
		return "not eligible"
	case OutcomeCannotApply:
		return "cannot apply"
	case OutcomeFailed:
		return "apply failed"
	case OutcomeNothingToApply:
		return "nothing to apply"
	}
	return "unknown"
}

// ApplyResult reports the outcome of one application attempt. CompanyShareID
// and Scrip are zero for OutcomeNothingToApply.
type ApplyResult struct {
	CompanyShareID int
	Scrip          string
	Outcome        Outcome
}

// Workflow submits share applications through an eligibility-then-submit
// core shared by the explicit-id, first-eligible and all-eligible entry
// points.
type Workflow struct {
	client  *Client
	catalog *Catalog
}

func NewWorkflow(client *Client, catalog *Catalog) *Workflow {
	return &Workflow{
		client:  client,
		catalog: catalog,
	}
}

// Apply submits an application for the issue with the given company share
// id. The id must belong to an unapplied ordinary issue in the session's
// catalog; anything else is a hard error and no network call towards the
// apply endpoints is made.
func (w *Workflow) Apply(ctx context.Context, s *Session, companyShareID int, kitta int) (*ApplyResult, error) {
	issues, err := w.catalog.UnappliedOrdinaryIssues(ctx, s)
	if err != nil {
		return nil, err
	}

	for idx := range issues {
		if issues[idx].CompanyShareID == companyShareID {
			return w.submit(ctx, s, &issues[idx], kitta)
		}
	}

	return nil, fmt.Errorf("%w: %d", ErrIssueNotEligible, companyShareID)
}

// ApplyFirst applies to the earliest unapplied ordinary issue in server
// order, or reports OutcomeNothingToApply when none is open.
func (w *Workflow) ApplyFirst(ctx context.Context, s *Session, kitta int) (*ApplyResult, error) {
	issues, err := w.catalog.UnappliedOrdinaryIssues(ctx, s)
	if err != nil {
		return nil, err
	}
	if len(issues) == 0 {
		return &ApplyResult{Outcome: OutcomeNothingToApply}, nil
	}

	return w.submit(ctx, s, &issues[0], kitta)
}

// ApplyAll applies sequentially to every unapplied ordinary issue. Per-issue
// outcomes never stop the sweep; session-level failures do.
func (w *Workflow) ApplyAll(ctx context.Context, s *Session, kitta int) ([]*ApplyResult, error) {
	issues, err := w.catalog.UnappliedOrdinaryIssues(ctx, s)
	if err != nil {
		return nil, err
	}
	if len(issues) == 0 {
		return []*ApplyResult{{Outcome: OutcomeNothingToApply}}, nil
	}

	results := make([]*ApplyResult, 0, len(issues))
	for idx := range issues {
		result, err := w.submit(ctx, s, &issues[idx], kitta)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}

// CanApply asks the backend whether the account is still eligible for the
// issue.
func (w *Workflow) CanApply(ctx context.Context, s *Session, companyShareID int) (bool, error) {
	var result struct {
		Message string `json:"message"`
	}
	path := fmt.Sprintf("/api/meroShare/applicantForm/customerType/%d/%s", companyShareID, s.Demat())
	if err := w.client.doJSON(ctx, http.MethodGet, path, s.authorization, nil, &result); err != nil {
		return false, fmt.Errorf("%w: %s", ErrEligibilityCheck, err)
	}

	return result.Message == canApplyMessage, nil
}

type applyRequest struct {
	Demat           string `json:"demat"`
	Boid            string `json:"boid"`
	AccountNumber   string `json:"accountNumber"`
	CustomerID      int    `json:"customerId"`
	AccountBranchID int    `json:"accountBranchId"`
	AccountTypeID   int    `json:"accountTypeId,omitempty"`
	AppliedKitta    string `json:"appliedKitta"`
	CRNNumber       string `json:"crnNumber"`
	TransactionPIN  string `json:"transactionPIN"`
	CompanyShareID  string `json:"companyShareId"`
	BankID          int    `json:"bankId"`
}

func (w *Workflow) submit(ctx context.Context, s *Session, issue *Issue, kitta int) (*ApplyResult, error) {
	result := &ApplyResult{
		CompanyShareID: issue.CompanyShareID,
		Scrip:          issue.Scrip,
	}

	eligible, err := w.CanApply(ctx, s, issue.CompanyShareID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		log.Warn().Int("CompanyShareID", issue.CompanyShareID).Str("Scrip", issue.Scrip).Msg("customer cannot apply")
		result.Outcome = OutcomeCannotApply
		return result, nil
	}

	account := s.Account()
	branch := s.Branch()
	payload := applyRequest{
		Demat:           s.Demat(),
		Boid:            account.Username,
		AccountNumber:   branch.AccountNumber,
		CustomerID:      branch.ID,
		AccountBranchID: branch.AccountBranchID,
		AccountTypeID:   branch.AccountTypeID,
		AppliedKitta:    strconv.Itoa(kitta),
		CRNNumber:       account.CRN,
		TransactionPIN:  account.TransactionPIN,
		CompanyShareID:  strconv.Itoa(issue.CompanyShareID),
		BankID:          branch.BankID,
	}

	resp, err := w.client.Do(ctx, http.MethodPost, "/api/meroShare/applicantForm/share/apply", s.authorization, payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Warn().Int("CompanyShareID", issue.CompanyShareID).Int("StatusCode", resp.StatusCode).Msg("apply rejected")
		result.Outcome = OutcomeFailed
		return result, nil
	}

	log.Info().Int("CompanyShareID", issue.CompanyShareID).Str("Scrip", issue.Scrip).Int("Kitta", kitta).Msg("applied successfully")
	result.Outcome = OutcomeApplied
	return result, nil
}

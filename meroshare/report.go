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
	"time"
)

// reportWindow is how far back the application report looks.
const reportWindow = 2 // months

// AllotmentNotAvailable marks applications whose allotment cannot be looked
// up yet (still pending, rejected, and so on).
const AllotmentNotAvailable = "N/A"

// application statuses that have an allotment detail worth fetching
var allottedStatuses = []string{"TRANSACTION_SUCCESS", "APPROVED"}

// ApplicationRecord is one submitted application enriched with its allotment
// outcome.
type ApplicationRecord struct {
	ApplicantFormID int    `json:"applicantFormId"`
	CompanyShareID  int    `json:"companyShareId"`
	CompanyName     string `json:"companyName"`
	Scrip           string `json:"scrip"`
	ShareTypeName   string `json:"shareTypeName"`
	StatusName      string `json:"statusName"`
	AppliedKitta    int    `json:"appliedKitta"`

	// AllotmentStatus is filled by the report, not by the search endpoint
	AllotmentStatus string `json:"-"`
}

// Report fetches recently submitted applications and their allotment
// outcomes.
type Report struct {
	client *Client
}

func NewReport(client *Client) *Report {
	return &Report{client: client}
}

// RecentApplications lists the session's applications from the last two
// months, each enriched with an allotment status. A failure on any detail
// lookup aborts the whole report; partial results are never returned.
func (r *Report) RecentApplications(ctx context.Context, s *Session) ([]ApplicationRecord, error) {
	today := time.Now()
	windowStart := today.AddDate(0, -reportWindow, 0)

	payload := searchRequest{
		FilterFieldParams: []filterField{
			{Key: "companyShare.companyIssue.companyISIN.script", Alias: "Scrip"},
			{Key: "companyShare.companyIssue.companyISIN.company.name", Alias: "Company Name"},
		},
		FilterDateParams: []filterDate{
			{
				Key:   "appliedDate",
				Value: fmt.Sprintf("BETWEEN '%s' AND '%s'", windowStart.Format("2006-01-02"), today.Format("2006-01-02")),
			},
		},
		Page:                    1,
		Size:                    searchPageSize,
		SearchRoleViewConstants: "VIEW_APPLICANT_FORM_COMPLETE",
	}

	var result struct {
		Object []ApplicationRecord `json:"object"`
	}
	err := r.client.doJSON(ctx, http.MethodPost, "/api/meroShare/applicantForm/active/search/", s.authorization, payload, &result)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReportFetch, err)
	}

	records := result.Object
	for idx := range records {
		if err := r.attachAllotmentStatus(ctx, s, &records[idx]); err != nil {
			return nil, err
		}
	}

	return records, nil
}

func (r *Report) attachAllotmentStatus(ctx context.Context, s *Session, record *ApplicationRecord) error {
	if !hasAllotmentDetail(record.StatusName) {
		record.AllotmentStatus = AllotmentNotAvailable
		return nil
	}

	var detail struct {
		StatusName string `json:"statusName"`
	}
	path := fmt.Sprintf("/api/meroShare/applicantForm/report/detail/%d", record.ApplicantFormID)
	if err := r.client.doJSON(ctx, http.MethodGet, path, s.authorization, nil, &detail); err != nil {
		return fmt.Errorf("%w: allotment detail for form %d: %s", ErrReportFetch, record.ApplicantFormID, err)
	}

	record.AllotmentStatus = detail.StatusName
	return nil
}

func hasAllotmentDetail(status string) bool {
	for _, allotted := range allottedStatuses {
		if status == allotted {
			return true
		}
	}
	return false
}

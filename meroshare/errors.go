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

import "errors"

var (
	ErrAuthentication   = errors.New("unable to create session")
	ErrNoBankRegistered = errors.New("no banks registered for account")
	ErrBranchResolution = errors.New("unable to resolve branch details")
	ErrCatalogFetch     = errors.New("unable to fetch open issues")
	ErrEligibilityCheck = errors.New("unable to check application eligibility")
	ErrIssueNotEligible = errors.New("no unapplied ordinary issue with requested company share id")
	ErrReportFetch      = errors.New("unable to fetch application reports")
)

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

// Capital is one depository participant as registered with CDSC. Code is the
// five digit DP code that prefixes a BOID, ID is the client id the MeroShare
// backend expects at login.
type Capital struct {
	Code string
	ID   int
	Name string
}

// capitals is the fixed DP lookup table. The MeroShare frontend ships the
// same mapping; it changes rarely (new capitals are licensed a few times a
// year at most).
var capitals = []Capital{
	{Code: "10100", ID: 101, Name: "NIDC Capital Markets Ltd."},
	{Code: "10200", ID: 102, Name: "NMB Capital Ltd."},
	{Code: "10300", ID: 103, Name: "Nabil Investment Banking Ltd."},
	{Code: "10400", ID: 104, Name: "NIBL Ace Capital Ltd."},
	{Code: "10600", ID: 106, Name: "Siddhartha Capital Ltd."},
	{Code: "10700", ID: 107, Name: "Global IME Capital Ltd."},
	{Code: "10900", ID: 109, Name: "Laxmi Capital Market Ltd."},
	{Code: "11000", ID: 110, Name: "Civil Capital Market Ltd."},
	{Code: "11100", ID: 111, Name: "Prabhu Capital Ltd."},
	{Code: "11300", ID: 113, Name: "Sanima Capital Ltd."},
	{Code: "11400", ID: 114, Name: "CBIL Capital Ltd."},
	{Code: "11500", ID: 115, Name: "NIC Asia Capital Ltd."},
	{Code: "11600", ID: 116, Name: "Sunrise Capital Ltd."},
	{Code: "11700", ID: 117, Name: "Kumari Capital Ltd."},
	{Code: "11800", ID: 118, Name: "Muktinath Capital Ltd."},
	{Code: "11900", ID: 119, Name: "Himalayan Capital Ltd."},
	{Code: "12000", ID: 120, Name: "Century Commercial Bank Ltd."},
	{Code: "12100", ID: 121, Name: "Citizens Investment Trust"},
	{Code: "12200", ID: 122, Name: "Nepal SBI Merchant Banking Ltd."},
	{Code: "12300", ID: 123, Name: "Garima Capital Ltd."},
	{Code: "12400", ID: 124, Name: "Machhapuchchhre Capital Ltd."},
	{Code: "12500", ID: 125, Name: "BOK Capital Market Ltd."},
	{Code: "12600", ID: 126, Name: "RBB Merchant Banking Ltd."},
	{Code: "12700", ID: 127, Name: "Shine Resunga Capital Ltd."},
	{Code: "12800", ID: 128, Name: "Nepal Stock House Pvt. Ltd."},
	{Code: "12900", ID: 129, Name: "Secured Securities Ltd."},
	{Code: "13000", ID: 130, Name: "Swarnalaxmi Securities Pvt. Ltd."},
	{Code: "13100", ID: 131, Name: "Dipshikha Dhitopatra Karobar Co. Pvt. Ltd."},
	{Code: "13200", ID: 132, Name: "Sewa Securities Pvt. Ltd."},
	{Code: "13300", ID: 133, Name: "Creative Securities Pvt. Ltd."},
}

// Capitals returns the DP lookup table.
func Capitals() []Capital {
	return capitals
}

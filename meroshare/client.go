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
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// DefaultBaseURL is the production MeroShare backend.
const DefaultBaseURL = "https://webbackend.cdsc.com.np"

// Client talks HTTP/JSON to the MeroShare backend. It carries no session
// state; authorization tokens are supplied per request by the Session.
type Client struct {
	BaseURL string

	// HTTP is exported so tests can instrument the transport
	HTTP *http.Client
}

// NewClient builds a Client from viper configuration. meroshare.base_url
// overrides the production host; meroshare.insecure disables certificate
// verification (the CDSC backend has a history of broken certificate
// chains).
func NewClient() *Client {
	baseURL := viper.GetString("meroshare.base_url")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	transport := http.DefaultTransport
	if viper.GetBool("meroshare.insecure") {
		log.Warn().Msg("certificate verification disabled")
		transport = &http.Transport{
			// #nosec G402 -- opt-in via meroshare.insecure
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Transport: transport},
	}
}

// Do executes one request against the backend. A non-nil payload is JSON
// encoded into the body; a non-empty token is sent as the Authorization
// header. The caller owns the response body.
func (c *Client) Do(ctx context.Context, method string, path string, token string, payload interface{}) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Error().Err(err).Str("Method", method).Str("Path", path).Msg("request failed")
		return nil, err
	}

	return resp, nil
}

// doJSON executes a request and decodes a 2xx response body into out. Any
// status >= 400 is returned as an error without touching out.
func (c *Client) doJSON(ctx context.Context, method string, path string, token string, payload interface{}, out interface{}) error {
	resp, err := c.Do(ctx, method, path, token, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("HTTP request returned invalid status code: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	decoded, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(decoded, out)
}

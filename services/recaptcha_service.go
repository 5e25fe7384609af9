// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/l3montree-dev/livefire-site/shared"
)

const (
	recaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"
	// scores below this are treated as bots. Matches the threshold the
	// frontend widget was tuned against.
	recaptchaMinScore = 0.5
)

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	Action     string   `json:"action"`
	ErrorCodes []string `json:"error-codes"`
}

type recaptchaVerifier struct {
	secretKey  string
	verifyURL  string
	httpClient http.Client
}

func NewRecaptchaVerifier(config shared.Config, httpClient http.Client) *recaptchaVerifier {
	return &recaptchaVerifier{
		secretKey:  config.RecaptchaSecretKey,
		verifyURL:  recaptchaVerifyURL,
		httpClient: httpClient,
	}
}

// Enabled reports whether a secret key is configured. Without one the whole
// challenge stage is skipped.
func (v *recaptchaVerifier) Enabled() bool {
	return v.secretKey != ""
}

// Verify checks a client supplied token against the siteverify endpoint. A
// token only passes if the verdict is a success AND the risk score clears the
// threshold.
func (v *recaptchaVerifier) Verify(ctx context.Context, token string) error {
	form := url.Values{}
	form.Set("secret", v.secretKey)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not reach siteverify endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("siteverify endpoint returned status %d", resp.StatusCode)
	}

	var verdict siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return fmt.Errorf("could not decode siteverify response: %w", err)
	}

	if !verdict.Success {
		return fmt.Errorf("token rejected: %v", verdict.ErrorCodes)
	}
	if verdict.Score < recaptchaMinScore {
		return fmt.Errorf("score %.2f below threshold %.2f", verdict.Score, recaptchaMinScore)
	}
	return nil
}

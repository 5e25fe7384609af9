// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/l3montree-dev/livefire-site/shared"
	"github.com/stretchr/testify/assert"
)

func newTestVerifier(t *testing.T, handler http.HandlerFunc) *recaptchaVerifier {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	v := NewRecaptchaVerifier(shared.Config{RecaptchaSecretKey: "secret-key"}, *server.Client())
	v.verifyURL = server.URL
	return v
}

func TestRecaptchaVerifier(t *testing.T) {
	t.Run("should be disabled without a secret key", func(t *testing.T) {
		v := NewRecaptchaVerifier(shared.Config{}, http.Client{})
		assert.False(t, v.Enabled())
	})

	t.Run("should pass a successful verdict with a high score", func(t *testing.T) {
		v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "secret-key", r.FormValue("secret"))
			assert.Equal(t, "some-token", r.FormValue("response"))
			w.Write([]byte(`{"success": true, "score": 0.9}`)) // nolint: errcheck
		})

		assert.True(t, v.Enabled())
		assert.NoError(t, v.Verify(context.Background(), "some-token"))
	})

	t.Run("should reject a successful verdict with a low score", func(t *testing.T) {
		v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": true, "score": 0.1}`)) // nolint: errcheck
		})

		assert.Error(t, v.Verify(context.Background(), "some-token"))
	})

	t.Run("should reject an unsuccessful verdict regardless of score", func(t *testing.T) {
		v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": false, "score": 0.9, "error-codes": ["invalid-input-response"]}`)) // nolint: errcheck
		})

		err := v.Verify(context.Background(), "some-token")
		assert.ErrorContains(t, err, "invalid-input-response")
	})

	t.Run("should accept a score exactly on the threshold", func(t *testing.T) {
		v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": true, "score": 0.5}`)) // nolint: errcheck
		})

		assert.NoError(t, v.Verify(context.Background(), "some-token"))
	})

	t.Run("should fail on an upstream error status", func(t *testing.T) {
		v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		assert.Error(t, v.Verify(context.Background(), "some-token"))
	})

	t.Run("should fail on a malformed response body", func(t *testing.T) {
		v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`)) // nolint: errcheck
		})

		assert.Error(t, v.Verify(context.Background(), "some-token"))
	})
}

// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/l3montree-dev/livefire-site/monitoring"
	"github.com/l3montree-dev/livefire-site/shared"
)

type scheduleService struct {
	upstreamURL string
	httpClient  http.Client
}

// NewScheduleService proxies the public training schedule from the booking
// platform, so the site can render it without exposing the upstream to
// browsers directly.
func NewScheduleService(config shared.Config, httpClient http.Client) *scheduleService {
	return &scheduleService{
		upstreamURL: config.ScheduleUpstreamURL,
		httpClient:  httpClient,
	}
}

func (s *scheduleService) Fetch(ctx context.Context, category string) ([]byte, error) {
	upstream := s.upstreamURL
	if category != "" {
		upstream += "?category=" + url.QueryEscape(category)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, upstream, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		monitoring.ScheduleProxyErrors.Inc()
		return nil, fmt.Errorf("could not reach schedule upstream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		monitoring.ScheduleProxyErrors.Inc()
		return nil, fmt.Errorf("schedule upstream returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

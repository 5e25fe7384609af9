// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"errors"
	"log/slog"

	"github.com/l3montree-dev/livefire-site/shared"
	"github.com/spf13/viper"
)

type contentService struct {
	v *viper.Viper
}

// NewContentService reads the editorial site content (contact addresses,
// page copy) from <contentDir>/site.yaml. A missing file is not fatal, every
// lookup then falls back to the configured defaults.
func NewContentService(config shared.Config) (*contentService, error) {
	v := viper.New()
	v.SetConfigName("site")
	v.SetConfigType("yaml")
	v.AddConfigPath(config.ContentDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Warn("site content file not found, lookups will use fallbacks", "dir", config.ContentDir)
			return &contentService{v: v}, nil
		}
		return nil, err
	}

	return &contentService{v: v}, nil
}

func (c *contentService) Get(key string) (string, bool) {
	if !c.v.IsSet(key) {
		return "", false
	}
	value := c.v.GetString(key)
	return value, value != ""
}

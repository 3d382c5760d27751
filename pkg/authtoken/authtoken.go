/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package authtoken_test github.com/velocitycareerlabs/velocitycore-sub004/pkg/transport NetworkService

package authtoken

import (
	"context"
	"errors"
	"net/http"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/velocitycareerlabs/velocitycore-sub004/internal/logfields"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/config"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/model"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/sdkerr"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/transport"
)

var logger = log.New("auth-token")

type Config struct {
	AppConfig      *config.Config
	NetworkService transport.NetworkService
}

// Service obtains OAuth access tokens from a relying party's agent.
type Service struct {
	cfg     *config.Config
	network transport.NetworkService
}

func New(config *Config) *Service {
	return &Service{
		cfg:     config.AppConfig,
		network: config.NetworkService,
	}
}

// GetAuthToken exchanges an authorization code, or refreshes an expired token, depending on
// the descriptor's grant type.
func (s *Service) GetAuthToken(ctx context.Context, descriptor *model.AuthTokenDescriptor) (*model.AuthToken, error) {
	if descriptor.AuthTokenURI == "" {
		return nil, tokenError(errors.New("auth token uri is empty"), descriptor)
	}

	req, err := transport.NewRequest(s.cfg, http.MethodPost, descriptor.AuthTokenURI, descriptor.Payload())
	if err != nil {
		return nil, tokenError(err, descriptor)
	}

	resp, err := s.network.SendRequest(ctx, req)
	if err != nil {
		return nil, tokenError(err, descriptor)
	}

	token, err := model.ParseAuthToken(resp.Payload, descriptor)
	if err != nil {
		return nil, tokenError(err, descriptor)
	}

	logger.Debug("auth token obtained", log.WithURL(descriptor.AuthTokenURI), logfields.WithDID(descriptor.RelyingPartyDID))

	return token, nil
}

func tokenError(err error, descriptor *model.AuthTokenDescriptor) error {
	logger.Warn("get auth token failed", log.WithURL(descriptor.AuthTokenURI), log.WithError(err))

	return sdkerr.Wrap(sdkerr.SdkError, err).
		WithComponent(sdkerr.AuthTokenComponent).
		WithOperation("get " + descriptor.GrantType() + " token").
		With(sdkerr.KeyURL, descriptor.AuthTokenURI)
}

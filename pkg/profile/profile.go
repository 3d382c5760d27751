/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package profile_test github.com/velocitycareerlabs/velocitycore-sub004/pkg/transport NetworkService

package profile

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

var logger = log.New("verified-profile")

type Config struct {
	AppConfig      *config.Config
	NetworkService transport.NetworkService
}

// Service fetches organizations' verified profiles from the registrar.
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

func (s *Service) GetVerifiedProfile(ctx context.Context, did string) (*model.VerifiedProfile, error) {
	if did == "" {
		return nil, profileError(errors.New("empty DID"), did, "")
	}

	endpoint := s.cfg.VerifiedProfileURL(did)

	req, err := transport.NewRequest(s.cfg, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, profileError(err, did, endpoint)
	}

	resp, err := s.network.SendRequest(ctx, req)
	if err != nil {
		return nil, profileError(err, did, endpoint)
	}

	p, err := model.NewVerifiedProfile(resp.Payload)
	if err != nil {
		return nil, profileError(err, did, endpoint)
	}

	logger.Debug("verified profile fetched", logfields.WithDID(did))

	return p, nil
}

func profileError(err error, did, endpoint string) error {
	logger.Warn("get verified profile failed", logfields.WithDID(did), log.WithError(err))

	e := sdkerr.Wrap(sdkerr.SdkError, err).
		WithComponent(sdkerr.ProfileComponent).
		WithOperation("get verified profile").
		With(sdkerr.KeyDID, did)

	if endpoint != "" {
		e.With(sdkerr.KeyURL, endpoint)
	}

	return e
}

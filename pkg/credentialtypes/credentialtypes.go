/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package credentialtypes_test github.com/velocitycareerlabs/velocitycore-sub004/pkg/transport NetworkService

package credentialtypes

import (
	"context"
	"net/http"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/velocitycareerlabs/velocitycore-sub004/internal/logfields"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/config"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/model"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/sdkerr"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/transport"
)

var logger = log.New("credential-types")

type Config struct {
	AppConfig      *config.Config
	NetworkService transport.NetworkService
}

// Service reads the registrar's credential type registry. The registry is fetched on every
// call.
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

// GetCredentialTypes returns the credential types known to the registrar.
func (s *Service) GetCredentialTypes(ctx context.Context) (model.CredentialTypes, error) {
	endpoint := s.cfg.CredentialTypesURL()

	req, err := transport.NewRequest(s.cfg, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, registryError(err, endpoint)
	}

	resp, err := s.network.SendRequest(ctx, req)
	if err != nil {
		return nil, registryError(err, endpoint)
	}

	types, err := model.ParseCredentialTypes(resp.Payload)
	if err != nil {
		return nil, registryError(err, endpoint)
	}

	logger.Debug("credential types fetched", log.WithURL(endpoint), logfields.WithCredentialCount(len(types)))

	return types, nil
}

func registryError(err error, endpoint string) error {
	logger.Warn("get credential types failed", log.WithURL(endpoint), log.WithError(err))

	return sdkerr.Wrap(sdkerr.SdkError, err).
		WithComponent(sdkerr.CredentialTypesComponent).
		WithOperation("get credential types").
		With(sdkerr.KeyURL, endpoint)
}

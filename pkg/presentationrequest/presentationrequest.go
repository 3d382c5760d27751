/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package presentationrequest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/velocitycareerlabs/velocitycore-sub004/internal/logfields"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/config"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/did"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/model"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/observability/metrics"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/observability/metrics/noop"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/sdkerr"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/transport"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/verification"
)

var logger = log.New("presentation-request")

const presentationRequestKey = "presentation_request"

type signatureVerifier interface {
	Verify(ctx context.Context, token *jwt.JWT) (*did.Document, error)
}

type profileService interface {
	GetVerifiedProfile(ctx context.Context, did string) (*model.VerifiedProfile, error)
}

type Config struct {
	AppConfig         *config.Config
	NetworkService    transport.NetworkService
	SignatureVerifier signatureVerifier
	ProfileService    profileService
	Metrics           metrics.Metrics
}

// Service acquires presentation requests from inspectors.
type Service struct {
	cfg               *config.Config
	network           transport.NetworkService
	signatureVerifier signatureVerifier
	profileService    profileService
	metrics           metrics.Metrics

	deepLinkVerifier    verification.PresentationRequestByDeepLinkVerifier
	serviceTypeVerifier verification.ProfileServiceTypeVerifier
}

func New(config *Config) *Service {
	m := config.Metrics
	if m == nil {
		m = noop.GetMetrics()
	}

	return &Service{
		cfg:               config.AppConfig,
		network:           config.NetworkService,
		signatureVerifier: config.SignatureVerifier,
		profileService:    config.ProfileService,
		metrics:           m,
	}
}

// GetPresentationRequest fetches the request behind the descriptor's deep link, verifies its
// signature, binds it to the deep link and checks the inspector's accreditation.
func (s *Service) GetPresentationRequest(
	ctx context.Context,
	descriptor *model.PresentationRequestDescriptor,
) (*model.PresentationRequest, error) {
	start := time.Now()
	defer func() { s.metrics.PresentationRequestTime(time.Since(start)) }()

	endpoint, err := descriptor.Endpoint()
	if err != nil {
		return nil, requestError(err, "build endpoint", "")
	}

	token, err := s.fetch(ctx, endpoint)
	if err != nil {
		return nil, requestError(err, "fetch presentation request", endpoint)
	}

	doc, err := s.signatureVerifier.Verify(ctx, token)
	if err != nil {
		return nil, err
	}

	unbound := model.NewPresentationRequest(token, nil, descriptor.DeepLink, doc, descriptor.PushDelegate)

	if _, err = s.deepLinkVerifier.Verify(ctx, unbound, descriptor.DeepLink, doc); err != nil {
		return nil, err
	}

	profile, err := s.profileService.GetVerifiedProfile(ctx, token.Iss())
	if err != nil {
		return nil, err
	}

	if _, err = s.serviceTypeVerifier.Verify(ctx, profile, model.InspectorServiceTypes); err != nil {
		return nil, err
	}

	request := model.NewPresentationRequest(token, profile, descriptor.DeepLink, doc, descriptor.PushDelegate)

	logger.Info("presentation request verified",
		logfields.WithDID(request.InspectorID()), logfields.WithExchangeID(request.ExchangeID()))

	return request, nil
}

func (s *Service) fetch(ctx context.Context, endpoint string) (*jwt.JWT, error) {
	req, err := transport.NewRequest(s.cfg, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.network.SendRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	encoded := gjson.GetBytes(resp.Payload, presentationRequestKey)
	if encoded.Type != gjson.String {
		return nil, fmt.Errorf("response has no %s", presentationRequestKey)
	}

	return jwt.Decode(encoded.String())
}

func requestError(err error, operation, endpoint string) error {
	logger.Warn("get presentation request failed", log.WithURL(endpoint), log.WithError(err))

	var e *sdkerr.Error
	if errors.As(err, &e) {
		return err
	}

	return sdkerr.New(sdkerr.SdkError, err).
		WithComponent(sdkerr.PresentationRequestComponent).
		WithOperation(operation).
		With(sdkerr.KeyURL, endpoint)
}

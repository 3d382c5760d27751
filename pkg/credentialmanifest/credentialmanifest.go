/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package credentialmanifest acquires credential manifests. A manifest is fetched, its signature
// verified against the key published by its issuer, bound to the deep link it came from and
// checked against the issuer's accreditation before it is returned. Partially verified manifests
// are never returned.
package credentialmanifest

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

var logger = log.New("credential-manifest")

const issuingRequestKey = "issuing_request"

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

type Service struct {
	cfg               *config.Config
	network           transport.NetworkService
	signatureVerifier signatureVerifier
	profileService    profileService
	metrics           metrics.Metrics

	deepLinkVerifier    verification.CredentialManifestByDeepLinkVerifier
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

// GetCredentialManifest fetches and verifies the manifest addressed by descriptor.
func (s *Service) GetCredentialManifest(
	ctx context.Context,
	descriptor *model.CredentialManifestDescriptor,
) (*model.CredentialManifest, error) {
	start := time.Now()
	defer func() { s.metrics.CredentialManifestTime(time.Since(start)) }()

	endpoint, err := descriptor.Endpoint()
	if err != nil {
		return nil, manifestError(err, "build endpoint", "")
	}

	token, err := s.fetch(ctx, endpoint)
	if err != nil {
		return nil, manifestError(err, "fetch credential manifest", endpoint)
	}

	doc, err := s.signatureVerifier.Verify(ctx, token)
	if err != nil {
		return nil, err
	}

	unbound := model.NewCredentialManifest(token, nil, descriptor.DeepLink, doc)

	if descriptor.DeepLink != nil {
		if _, err = s.deepLinkVerifier.Verify(ctx, unbound, descriptor.DeepLink, doc); err != nil {
			return nil, err
		}
	} else if descriptor.IssuerDID != "" && !(doc.Matches(descriptor.IssuerDID) && doc.Matches(token.Iss())) {
		return nil, sdkerr.Newf(sdkerr.MismatchedRequestIssuerDid,
			"manifest issued by %s, requested from %s", token.Iss(), descriptor.IssuerDID).
			WithComponent(sdkerr.CredentialManifestComponent).
			WithOperation("verify credential manifest issuer").
			With(sdkerr.KeyDID, descriptor.IssuerDID).
			With(sdkerr.KeyClaimedDID, token.Iss())
	}

	profile, err := s.profileService.GetVerifiedProfile(ctx, token.Iss())
	if err != nil {
		return nil, err
	}

	if _, err = s.serviceTypeVerifier.Verify(ctx, profile, model.IssuingServiceTypes); err != nil {
		return nil, err
	}

	manifest := model.NewCredentialManifest(token, profile, descriptor.DeepLink, doc)

	logger.Info("credential manifest verified",
		logfields.WithDID(manifest.IssuerID()), logfields.WithExchangeID(manifest.ExchangeID()))

	return manifest, nil
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

	encoded := gjson.GetBytes(resp.Payload, issuingRequestKey)
	if encoded.Type != gjson.String {
		return nil, fmt.Errorf("response has no %s", issuingRequestKey)
	}

	return jwt.Decode(encoded.String())
}

func manifestError(err error, operation, endpoint string) error {
	logger.Warn("get credential manifest failed", log.WithURL(endpoint), log.WithError(err))

	var e *sdkerr.Error
	if errors.As(err, &e) {
		return err
	}

	return sdkerr.New(sdkerr.SdkError, err).
		WithComponent(sdkerr.CredentialManifestComponent).
		WithOperation(operation).
		With(sdkerr.KeyURL, endpoint)
}

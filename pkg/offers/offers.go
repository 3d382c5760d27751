/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package offers drives the issuing side of an exchange: offers are generated (or polled for)
// from the issuer of a verified credential manifest, and the holder's decision is finalized into
// issued credentials, each of which is checked before it is handed out.
package offers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/piprate/json-gold/ld"
	"github.com/samber/lo"
	lop "github.com/samber/lo/parallel"
	"github.com/tidwall/gjson"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/velocitycareerlabs/velocitycore-sub004/internal/logfields"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/config"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/credentialtypes"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/did"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/model"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/observability/metrics"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/observability/metrics/noop"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/sdkerr"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/transport"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/verification"
)

var logger = log.New("offers")

type didResolver interface {
	Resolve(ctx context.Context, id string) (*did.Document, error)
}

type credentialTypesService interface {
	GetCredentialTypes(ctx context.Context) (model.CredentialTypes, error)
}

type Config struct {
	AppConfig              *config.Config
	NetworkService         transport.NetworkService
	DIDResolver            didResolver
	JWTSigner              jwt.Signer
	CredentialTypesService credentialTypesService
	// DocumentLoader loads the JSON-LD contexts of credential types. Defaults to a loader using
	// NetworkService.
	DocumentLoader ld.DocumentLoader
	Metrics        metrics.Metrics
}

type Service struct {
	cfg                    *config.Config
	network                transport.NetworkService
	didResolver            didResolver
	jwtSigner              jwt.Signer
	credentialTypesService credentialTypesService
	documentLoader         ld.DocumentLoader
	metrics                metrics.Metrics

	offersVerifier        verification.OffersByDeepLinkVerifier
	credentialDIDVerifier verification.CredentialDIDVerifier
	credentialsVerifier   verification.CredentialsByDeepLinkVerifier
}

func New(config *Config) *Service {
	m := config.Metrics
	if m == nil {
		m = noop.GetMetrics()
	}

	return &Service{
		cfg:                    config.AppConfig,
		network:                config.NetworkService,
		didResolver:            config.DIDResolver,
		jwtSigner:              config.JWTSigner,
		credentialTypesService: config.CredentialTypesService,
		documentLoader:         config.DocumentLoader,
		metrics:                m,
	}
}

// Generate asks the issuer for offers. The session token obtained with the manifest is sent as
// bearer and carried unchanged into the returned offers.
func (s *Service) Generate(
	ctx context.Context,
	descriptor *model.GenerateOffersDescriptor,
	sessionToken model.Token,
) (*model.Offers, error) {
	return s.requestOffers(ctx, descriptor, sessionToken, "generate offers")
}

// CheckForOffers polls an issuer whose offers are produced asynchronously.
func (s *Service) CheckForOffers(
	ctx context.Context,
	descriptor *model.GenerateOffersDescriptor,
	sessionToken model.Token,
) (*model.Offers, error) {
	return s.requestOffers(ctx, descriptor, sessionToken, "check for offers")
}

func (s *Service) requestOffers(
	ctx context.Context,
	descriptor *model.GenerateOffersDescriptor,
	sessionToken model.Token,
	operation string,
) (*model.Offers, error) {
	start := time.Now()
	defer func() { s.metrics.GenerateOffersTime(time.Since(start)) }()

	manifest := descriptor.Manifest
	endpoint := manifest.CheckOffersURI()

	resp, err := s.post(ctx, endpoint, descriptor.Payload(), sessionToken)
	if err != nil {
		return nil, offersError(err, operation, endpoint)
	}

	offers, err := model.ParseOffers(resp.Payload, resp.StatusCode, sessionToken)
	if err != nil {
		return nil, offersError(err, operation, endpoint)
	}

	if dl := manifest.DeepLink(); dl != nil {
		if _, err = s.offersVerifier.Verify(ctx, offers, dl, manifest.DIDDocument()); err != nil {
			return nil, err
		}
	}

	logger.Info("offers received", logfields.WithExchangeID(manifest.ExchangeID()), logfields.WithOfferCount(len(offers.All)))

	return offers, nil
}

// Finalize sends the holder's decision and checks every issued credential. A credential failing
// a check is reported in FinalizeResult.Failed; only failures concerning the whole call (transport,
// malformed answer, credential type registry, deep link DID resolution) are returned as error.
func (s *Service) Finalize(
	ctx context.Context,
	descriptor *model.FinalizeOffersDescriptor,
	sessionToken model.Token,
) (*FinalizeResult, error) {
	start := time.Now()
	defer func() { s.metrics.FinalizeOffersTime(time.Since(start)) }()

	manifest := descriptor.Manifest
	endpoint := manifest.FinalizeOffersURI()

	var proof *jwt.JWT

	if descriptor.ProofKey != nil {
		var err error

		proof, err = s.jwtSigner.Sign(ctx, descriptor.ProofPayload(time.Now()), descriptor.ProofKey)
		if err != nil {
			return nil, offersError(fmt.Errorf("sign proof: %w", err), "finalize offers", endpoint)
		}
	}

	resp, err := s.post(ctx, endpoint, descriptor.Payload(proof), sessionToken)
	if err != nil {
		return nil, offersError(err, "finalize offers", endpoint)
	}

	issued := gjson.ParseBytes(resp.Payload)
	if !gjson.ValidBytes(resp.Payload) || !issued.IsArray() {
		return nil, offersError(errors.New("finalize answer is not an array of credentials"), "finalize offers", endpoint)
	}

	encoded := lo.Map(issued.Array(), func(r gjson.Result, _ int) string { return r.String() })

	checks, err := s.newCredentialChecks(ctx, descriptor)
	if err != nil {
		return nil, err
	}

	outcomes := lop.Map(encoded, func(e string, _ int) *RejectedCredential {
		return checks.run(ctx, e)
	})

	result := &FinalizeResult{Passed: []*jwt.JWT{}, Failed: []*RejectedCredential{}}

	for _, o := range outcomes {
		if o.Reason != nil {
			s.metrics.CredentialRejected()
			result.Failed = append(result.Failed, o)

			continue
		}

		result.Passed = append(result.Passed, o.Credential)
	}

	logger.Info("offers finalized",
		logfields.WithExchangeID(manifest.ExchangeID()),
		logfields.WithCredentialCount(len(result.Passed)),
		logfields.WithOfferCount(len(descriptor.ApprovedOfferIDs)))

	return result, nil
}

func (s *Service) post(
	ctx context.Context,
	endpoint string,
	body interface{},
	sessionToken model.Token,
) (*transport.Response, error) {
	if endpoint == "" {
		return nil, errors.New("manifest has no endpoint for this step")
	}

	req, err := transport.NewRequest(s.cfg, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}

	return s.network.SendRequest(ctx, req.WithBearer(sessionToken.Value))
}

func (s *Service) loader(ctx context.Context) ld.DocumentLoader {
	if s.documentLoader != nil {
		return s.documentLoader
	}

	return credentialtypes.NewContextLoader(ctx, s.cfg, s.network)
}

func offersError(err error, operation, endpoint string) error {
	logger.Warn(operation+" failed", log.WithURL(endpoint), log.WithError(err))

	var e *sdkerr.Error
	if errors.As(err, &e) {
		return err
	}

	return sdkerr.New(sdkerr.SdkError, err).
		WithComponent(sdkerr.OffersComponent).
		WithOperation(operation).
		With(sdkerr.KeyURL, endpoint)
}

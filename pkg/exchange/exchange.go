/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package exchange composes DID resolution, the codec, the verifier chain and the exchange flows
// into one wallet-side service.
package exchange

import (
	"context"

	"github.com/piprate/json-gold/ld"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/authtoken"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/config"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/credentialmanifest"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/credentialtypes"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/did"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt/josecrypto"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/model"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/observability/metrics"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/observability/metrics/noop"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/offers"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/presentationrequest"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/profile"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/submission"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/transport"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/verification"
)

var _ ServiceInterface = (*Service)(nil)

// Config configures the service. Only AppConfig is required: the network defaults to an HTTP
// transport and the signer and verifier to the go-jose based implementation.
type Config struct {
	AppConfig      *config.Config
	NetworkService transport.NetworkService
	JWTSigner      jwt.Signer
	JWTVerifier    jwt.Verifier
	DocumentLoader ld.DocumentLoader
	Metrics        metrics.Metrics
}

type Service struct {
	didResolver         *did.Resolver
	jwtSigner           jwt.Signer
	signatureVerifier   *verification.SignatureVerifier
	credentialTypes     *credentialtypes.Service
	profiles            *profile.Service
	credentialManifests *credentialmanifest.Service
	presentationReqs    *presentationrequest.Service
	offers              *offers.Service
	submissions         *submission.Service
	authTokens          *authtoken.Service
}

func New(config *Config) *Service {
	cfg := config.AppConfig

	m := config.Metrics
	if m == nil {
		m = noop.GetMetrics()
	}

	network := config.NetworkService
	if network == nil {
		network = transport.NewHTTPService(cfg, transport.WithMetrics(m))
	}

	crypto := josecrypto.New()

	signer := config.JWTSigner
	if signer == nil {
		signer = crypto
	}

	verifier := config.JWTVerifier
	if verifier == nil {
		verifier = crypto
	}

	resolver := did.NewResolver(cfg, network, did.WithMetrics(m))

	signatureVerifier := verification.NewSignatureVerifier(&verification.SignatureVerifierConfig{
		DIDResolver: resolver,
		JWTVerifier: verifier,
		Metrics:     m,
	})

	profiles := profile.New(&profile.Config{AppConfig: cfg, NetworkService: network})
	types := credentialtypes.New(&credentialtypes.Config{AppConfig: cfg, NetworkService: network})

	return &Service{
		didResolver:       resolver,
		jwtSigner:         signer,
		signatureVerifier: signatureVerifier,
		credentialTypes:   types,
		profiles:          profiles,
		credentialManifests: credentialmanifest.New(&credentialmanifest.Config{
			AppConfig:         cfg,
			NetworkService:    network,
			SignatureVerifier: signatureVerifier,
			ProfileService:    profiles,
			Metrics:           m,
		}),
		presentationReqs: presentationrequest.New(&presentationrequest.Config{
			AppConfig:         cfg,
			NetworkService:    network,
			SignatureVerifier: signatureVerifier,
			ProfileService:    profiles,
			Metrics:           m,
		}),
		offers: offers.New(&offers.Config{
			AppConfig:              cfg,
			NetworkService:         network,
			DIDResolver:            resolver,
			JWTSigner:              signer,
			CredentialTypesService: types,
			DocumentLoader:         config.DocumentLoader,
			Metrics:                m,
		}),
		submissions: submission.New(&submission.Config{
			AppConfig:      cfg,
			NetworkService: network,
			JWTSigner:      signer,
			Metrics:        m,
		}),
		authTokens: authtoken.New(&authtoken.Config{AppConfig: cfg, NetworkService: network}),
	}
}

func (s *Service) ResolveDID(ctx context.Context, id string) (*did.Document, error) {
	return s.didResolver.Resolve(ctx, id)
}

// VerifyJWT checks the token signature against the key its issuer publishes and returns the
// issuer's document.
func (s *Service) VerifyJWT(ctx context.Context, token *jwt.JWT) (*did.Document, error) {
	return s.signatureVerifier.Verify(ctx, token)
}

func (s *Service) SignJWT(
	ctx context.Context,
	payload map[string]interface{},
	key *jwt.SigningKey,
) (*jwt.JWT, error) {
	return s.jwtSigner.Sign(ctx, payload, key)
}

func (s *Service) GetCredentialTypes(ctx context.Context) (model.CredentialTypes, error) {
	return s.credentialTypes.GetCredentialTypes(ctx)
}

func (s *Service) GetVerifiedProfile(ctx context.Context, id string) (*model.VerifiedProfile, error) {
	return s.profiles.GetVerifiedProfile(ctx, id)
}

func (s *Service) GetCredentialManifest(
	ctx context.Context,
	descriptor *model.CredentialManifestDescriptor,
) (*model.CredentialManifest, error) {
	return s.credentialManifests.GetCredentialManifest(ctx, descriptor)
}

func (s *Service) GetPresentationRequest(
	ctx context.Context,
	descriptor *model.PresentationRequestDescriptor,
) (*model.PresentationRequest, error) {
	return s.presentationReqs.GetPresentationRequest(ctx, descriptor)
}

func (s *Service) GenerateOffers(
	ctx context.Context,
	descriptor *model.GenerateOffersDescriptor,
	sessionToken model.Token,
) (*model.Offers, error) {
	return s.offers.Generate(ctx, descriptor, sessionToken)
}

func (s *Service) CheckForOffers(
	ctx context.Context,
	descriptor *model.GenerateOffersDescriptor,
	sessionToken model.Token,
) (*model.Offers, error) {
	return s.offers.CheckForOffers(ctx, descriptor, sessionToken)
}

func (s *Service) FinalizeOffers(
	ctx context.Context,
	descriptor *model.FinalizeOffersDescriptor,
	sessionToken model.Token,
) (*offers.FinalizeResult, error) {
	return s.offers.Finalize(ctx, descriptor, sessionToken)
}

func (s *Service) SubmitPresentation(
	ctx context.Context,
	submission *model.PresentationSubmission,
	authToken *model.AuthToken,
) (*model.SubmissionResult, error) {
	return s.submissions.Submit(ctx, submission, authToken)
}

func (s *Service) GetExchangeProgress(
	ctx context.Context,
	descriptor *model.ExchangeDescriptor,
) (*model.Exchange, error) {
	return s.submissions.GetExchangeProgress(ctx, descriptor)
}

func (s *Service) GetAuthToken(ctx context.Context, descriptor *model.AuthTokenDescriptor) (*model.AuthToken, error) {
	return s.authTokens.GetAuthToken(ctx, descriptor)
}

/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -self_package mocks -package verification_test -source=signature.go -mock_names didResolver=MockDIDResolver

package verification

import (
	"context"
	"errors"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/velocitycareerlabs/velocitycore-sub004/internal/logfields"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/did"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/observability/metrics"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/observability/metrics/noop"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/sdkerr"
)

type didResolver interface {
	Resolve(ctx context.Context, id string) (*did.Document, error)
}

type SignatureVerifierConfig struct {
	DIDResolver didResolver
	JWTVerifier jwt.Verifier
	Metrics     metrics.Metrics
}

// SignatureVerifier verifies JWTs against the key their issuer publishes in its DID document.
type SignatureVerifier struct {
	didResolver didResolver
	jwtVerifier jwt.Verifier
	metrics     metrics.Metrics
}

func NewSignatureVerifier(config *SignatureVerifierConfig) *SignatureVerifier {
	m := config.Metrics
	if m == nil {
		m = noop.GetMetrics()
	}

	return &SignatureVerifier{
		didResolver: config.DIDResolver,
		jwtVerifier: config.JWTVerifier,
		metrics:     m,
	}
}

// Verify resolves the token's iss, looks up the key named by kid and checks the signature.
// On success it returns the resolved issuer document, the only document later binding checks
// may rely on.
func (v *SignatureVerifier) Verify(ctx context.Context, token *jwt.JWT) (*did.Document, error) {
	start := time.Now()
	defer func() { v.metrics.VerifyJWTTime(time.Since(start)) }()

	doc, err := v.didResolver.Resolve(ctx, token.Iss())
	if err != nil {
		return nil, sdkerr.Wrap(sdkerr.ResolutionFailed, err)
	}

	kid := token.Kid()

	jwk, ok := did.GetPublicJWK(doc, kid)
	if !ok {
		logger.Warn("public key not found", logfields.WithDID(doc.ID), logfields.WithKID(kid))

		return nil, sdkerr.Newf(sdkerr.PublicKeyNotFound, "no verification method for kid %q", kid).
			WithComponent(sdkerr.VerificationComponent).
			WithOperation("lookup public key").
			With(sdkerr.KeyDID, doc.ID).
			With(sdkerr.KeyKID, kid)
	}

	valid, err := v.jwtVerifier.Verify(ctx, token, jwk)
	if err == nil && !valid {
		err = errors.New("signature does not verify")
	}

	if err != nil {
		logger.Warn("JWT signature invalid", logfields.WithDID(doc.ID), logfields.WithKID(kid), log.WithError(err))

		return nil, sdkerr.New(sdkerr.SignatureInvalid, err).
			WithComponent(sdkerr.VerificationComponent).
			WithOperation("verify signature").
			With(sdkerr.KeyDID, doc.ID).
			With(sdkerr.KeyKID, kid)
	}

	logger.Debug("JWT signature verified", logfields.WithDID(doc.ID), logfields.WithKID(kid))

	return doc, nil
}

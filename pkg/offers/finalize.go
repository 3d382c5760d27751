/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package offers

import (
	"context"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/velocitycareerlabs/velocitycore-sub004/internal/logfields"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/deeplink"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/did"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/model"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/verification"
)

// FinalizeResult splits the issued credentials into those passing every check and those that
// did not. Both keep the order of the issuer's answer.
type FinalizeResult struct {
	Passed []*jwt.JWT
	Failed []*RejectedCredential
}

// RejectedCredential is an issued credential that failed a check. Credential is nil when the
// issuer answered with something that is not a JWT; Encoded always holds the raw value.
type RejectedCredential struct {
	Encoded    string
	Credential *jwt.JWT
	Reason     error
}

// credentialChecks holds everything the per-credential checks need, gathered once per finalize.
type credentialChecks struct {
	descriptor     *model.FinalizeOffersDescriptor
	types          model.CredentialTypes
	deepLink       *deeplink.DeepLink
	deepLinkDoc    *did.Document
	deepLinkErr    error
	issuerVerifier *verification.CredentialIssuerVerifier

	credentialDIDVerifier verification.CredentialDIDVerifier
	credentialsVerifier   verification.CredentialsByDeepLinkVerifier
}

func (s *Service) newCredentialChecks(
	ctx context.Context,
	descriptor *model.FinalizeOffersDescriptor,
) (*credentialChecks, error) {
	manifest := descriptor.Manifest

	types, err := s.credentialTypesService.GetCredentialTypes(ctx)
	if err != nil {
		return nil, err
	}

	checks := &credentialChecks{
		descriptor: descriptor,
		types:      types,
		deepLink:   manifest.DeepLink(),
		issuerVerifier: verification.NewCredentialIssuerVerifier(&verification.CredentialIssuerVerifierConfig{
			DocumentLoader: s.loader(ctx),
		}),
		credentialDIDVerifier: s.credentialDIDVerifier,
		credentialsVerifier:   s.credentialsVerifier,
	}

	if checks.deepLink != nil {
		if linkDID, ok := checks.deepLink.DID(); ok {
			checks.deepLinkDoc, checks.deepLinkErr = s.didResolver.Resolve(ctx, linkDID)
			if checks.deepLinkErr != nil {
				logger.Warn("deep link DID not resolved, rejecting issued credentials",
					logfields.WithDID(linkDID), log.WithError(checks.deepLinkErr))
			}
		}
	}

	return checks, nil
}

// run decodes one issued credential and applies the credential DID, issuer accreditation and
// deep link checks in turn. The first failing check is the rejection reason. An unresolved deep
// link DID fails the deep link check of every credential.
func (c *credentialChecks) run(ctx context.Context, encoded string) *RejectedCredential {
	outcome := &RejectedCredential{Encoded: encoded}

	credential, err := jwt.Decode(encoded)
	if err != nil {
		outcome.Reason = err

		return outcome
	}

	outcome.Credential = credential

	if _, err = c.credentialDIDVerifier.Verify(ctx, credential, c.descriptor); err != nil {
		outcome.Reason = err

		return outcome
	}

	_, err = c.issuerVerifier.Verify(ctx, credential, c.descriptor.Manifest.VerifiedProfile(), c.types)
	if err != nil {
		outcome.Reason = err

		return outcome
	}

	if c.deepLinkErr != nil {
		outcome.Reason = c.deepLinkErr

		return outcome
	}

	if c.deepLink != nil {
		if _, err = c.credentialsVerifier.Verify(ctx, credential, c.deepLink, c.deepLinkDoc); err != nil {
			outcome.Reason = err

			return outcome
		}
	}

	logger.Debug("issued credential accepted", logfields.WithCredentialID(credential.Jti()), logfields.WithDID(credential.Iss()))

	return outcome
}

/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verification

import (
	"context"
	"errors"

	"github.com/velocitycareerlabs/velocitycore-sub004/internal/logfields"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/model"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/sdkerr"
)

// CredentialDIDVerifier checks that a finalized credential was issued by the issuer the finalize
// call targeted, either under its DID or one of the aliases of the issuer's DID document.
type CredentialDIDVerifier struct{}

func (CredentialDIDVerifier) Verify(
	_ context.Context,
	credential *jwt.JWT,
	descriptor *model.FinalizeOffersDescriptor,
) (bool, error) {
	iss := credential.Iss()
	issuerID := descriptor.IssuerID()

	if iss != "" && iss == issuerID {
		return true, nil
	}

	if doc := descriptor.Manifest.DIDDocument(); iss != "" && doc != nil && doc.Matches(iss) && doc.Matches(issuerID) {
		return true, nil
	}

	logger.Warn("credential issuer mismatch", logfields.WithDID(iss), logfields.WithCredentialID(credential.Jti()))

	return false, withCredential(sdkerr.Newf(sdkerr.MismatchedCredentialIssuerDid,
		"credential issued by %q, expected %q", iss, issuerID).
		WithComponent(sdkerr.VerificationComponent).
		WithOperation("verify credential DID").
		With(sdkerr.KeyDID, issuerID).
		With(sdkerr.KeyClaimedDID, iss), credential)
}

func withCredential(err error, credential *jwt.JWT) error {
	var e *sdkerr.Error
	if asSDKError(err, &e) {
		tagCredential(e, credential)
	}

	return err
}

// tagCredential records the credential's jti, or its vc.id when jti is absent, on e.
func tagCredential(e *sdkerr.Error, credential *jwt.JWT) {
	id := credential.Jti()
	if id == "" {
		id = credential.Claim("vc.id").String()
	}

	e.With(sdkerr.KeyCredential, id)
}

func asSDKError(err error, target **sdkerr.Error) bool {
	return errors.As(err, target)
}

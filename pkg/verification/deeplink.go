/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verification

import (
	"context"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/deeplink"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/did"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/model"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/sdkerr"
)

// CredentialManifestByDeepLinkVerifier checks that the manifest issuer is the organization the
// deep link claims. doc is the issuer document resolved while verifying the manifest signature.
type CredentialManifestByDeepLinkVerifier struct{}

func (CredentialManifestByDeepLinkVerifier) Verify(
	_ context.Context,
	manifest *model.CredentialManifest,
	dl *deeplink.DeepLink,
	doc *did.Document,
) (bool, error) {
	return bind("verify credential manifest", sdkerr.MismatchedRequestIssuerDid, manifest.IssuerID(), dl, doc)
}

// PresentationRequestByDeepLinkVerifier checks that the request inspector is the organization
// the deep link claims.
type PresentationRequestByDeepLinkVerifier struct{}

func (PresentationRequestByDeepLinkVerifier) Verify(
	_ context.Context,
	request *model.PresentationRequest,
	dl *deeplink.DeepLink,
	doc *did.Document,
) (bool, error) {
	return bind("verify presentation request", sdkerr.MismatchedPresentationRequestInspectorDid,
		request.InspectorID(), dl, doc)
}

// CredentialsByDeepLinkVerifier checks that an issued credential comes from the organization the
// deep link claims. doc is the document resolved for the deep link's DID.
type CredentialsByDeepLinkVerifier struct{}

func (CredentialsByDeepLinkVerifier) Verify(
	_ context.Context,
	credential *jwt.JWT,
	dl *deeplink.DeepLink,
	doc *did.Document,
) (bool, error) {
	ok, err := bind("verify credential", sdkerr.MismatchedCredentialIssuerDid, credential.Iss(), dl, doc)
	if err != nil {
		return false, withCredential(err, credential)
	}

	return ok, nil
}

// OffersByDeepLinkVerifier checks that every offer comes from the organization the deep link
// claims. The first mismatching offer rejects the whole set.
type OffersByDeepLinkVerifier struct{}

func (OffersByDeepLinkVerifier) Verify(
	_ context.Context,
	offers *model.Offers,
	dl *deeplink.DeepLink,
	doc *did.Document,
) (bool, error) {
	if _, ok := dl.DID(); !ok {
		return bind("verify offers", sdkerr.MismatchedOfferIssuerDid, "", dl, doc)
	}

	for _, offer := range offers.All {
		if _, err := bind("verify offers", sdkerr.MismatchedOfferIssuerDid, offer.IssuerID(), dl, doc); err != nil {
			var e *sdkerr.Error
			if asSDKError(err, &e) {
				e.With(sdkerr.KeyOfferID, offer.ID())
			}

			return false, err
		}
	}

	return true, nil
}

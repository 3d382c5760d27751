/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package model

import (
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/deeplink"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/did"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt"
)

// Claim paths of issuing and presentation request JWTs.
const (
	claimExchangeID               = "exchange_id"
	claimPresentationDefinitionID = "presentation_definition.id"
	claimCheckOffersURI           = "metadata.check_offers_uri"
	claimFinalizeOffersURI        = "metadata.finalize_offers_uri"
	claimSubmitPresentationURI    = "metadata.submit_presentation_uri"
	claimProgressURI              = "metadata.progress_uri"
	claimAuthTokenURI             = "metadata.auth_token_uri"
	claimClientName               = "metadata.client_name"
)

// CredentialManifest is a verified issuing request. It is only constructed after the request's
// signature and deep link binding were checked.
type CredentialManifest struct {
	token           *jwt.JWT
	verifiedProfile *VerifiedProfile
	deepLink        *deeplink.DeepLink
	didDocument     *did.Document
}

// NewCredentialManifest assembles a manifest. deepLink is nil for manifests requested by service.
func NewCredentialManifest(
	token *jwt.JWT,
	profile *VerifiedProfile,
	deepLink *deeplink.DeepLink,
	doc *did.Document,
) *CredentialManifest {
	return &CredentialManifest{
		token:           token,
		verifiedProfile: profile,
		deepLink:        deepLink,
		didDocument:     doc,
	}
}

func (m *CredentialManifest) JWT() *jwt.JWT {
	return m.token
}

func (m *CredentialManifest) VerifiedProfile() *VerifiedProfile {
	return m.verifiedProfile
}

// DeepLink returns the link the manifest was requested through, or nil.
func (m *CredentialManifest) DeepLink() *deeplink.DeepLink {
	return m.deepLink
}

// DIDDocument returns the issuer document the manifest was verified against.
func (m *CredentialManifest) DIDDocument() *did.Document {
	return m.didDocument
}

// IssuerID returns the verified issuer DID.
func (m *CredentialManifest) IssuerID() string {
	return m.token.Iss()
}

func (m *CredentialManifest) ExchangeID() string {
	return m.token.Claim(claimExchangeID).String()
}

func (m *CredentialManifest) PresentationDefinitionID() string {
	return m.token.Claim(claimPresentationDefinitionID).String()
}

func (m *CredentialManifest) ClientName() string {
	return m.token.Claim(claimClientName).String()
}

func (m *CredentialManifest) CheckOffersURI() string {
	return m.token.Claim(claimCheckOffersURI).String()
}

func (m *CredentialManifest) FinalizeOffersURI() string {
	return m.token.Claim(claimFinalizeOffersURI).String()
}

func (m *CredentialManifest) SubmitPresentationURI() string {
	return m.token.Claim(claimSubmitPresentationURI).String()
}

func (m *CredentialManifest) ProgressURI() string {
	return m.token.Claim(claimProgressURI).String()
}

func (m *CredentialManifest) AuthTokenURI() string {
	return m.token.Claim(claimAuthTokenURI).String()
}

// VendorOriginContext returns the context of the originating deep link, if any.
func (m *CredentialManifest) VendorOriginContext() string {
	if m.deepLink == nil {
		return ""
	}

	return m.deepLink.VendorOriginContext()
}

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

const claimPresentationDefinitionPurpose = "presentation_definition.purpose"

// PresentationRequest is a verified inspector request.
type PresentationRequest struct {
	token           *jwt.JWT
	verifiedProfile *VerifiedProfile
	deepLink        *deeplink.DeepLink
	didDocument     *did.Document
	pushDelegate    *PushDelegate
}

// NewPresentationRequest assembles a presentation request.
func NewPresentationRequest(
	token *jwt.JWT,
	profile *VerifiedProfile,
	deepLink *deeplink.DeepLink,
	doc *did.Document,
	pushDelegate *PushDelegate,
) *PresentationRequest {
	return &PresentationRequest{
		token:           token,
		verifiedProfile: profile,
		deepLink:        deepLink,
		didDocument:     doc,
		pushDelegate:    pushDelegate,
	}
}

func (r *PresentationRequest) JWT() *jwt.JWT {
	return r.token
}

func (r *PresentationRequest) VerifiedProfile() *VerifiedProfile {
	return r.verifiedProfile
}

func (r *PresentationRequest) DeepLink() *deeplink.DeepLink {
	return r.deepLink
}

func (r *PresentationRequest) DIDDocument() *did.Document {
	return r.didDocument
}

// PushDelegate returns the push target submitted along with the presentation, or nil.
func (r *PresentationRequest) PushDelegate() *PushDelegate {
	return r.pushDelegate
}

// InspectorID returns the verified inspector DID.
func (r *PresentationRequest) InspectorID() string {
	return r.token.Iss()
}

func (r *PresentationRequest) ExchangeID() string {
	return r.token.Claim(claimExchangeID).String()
}

func (r *PresentationRequest) PresentationDefinitionID() string {
	return r.token.Claim(claimPresentationDefinitionID).String()
}

func (r *PresentationRequest) Purpose() string {
	return r.token.Claim(claimPresentationDefinitionPurpose).String()
}

func (r *PresentationRequest) ClientName() string {
	return r.token.Claim(claimClientName).String()
}

func (r *PresentationRequest) SubmitPresentationURI() string {
	return r.token.Claim(claimSubmitPresentationURI).String()
}

func (r *PresentationRequest) ProgressURI() string {
	return r.token.Claim(claimProgressURI).String()
}

func (r *PresentationRequest) AuthTokenURI() string {
	return r.token.Claim(claimAuthTokenURI).String()
}

func (r *PresentationRequest) VendorOriginContext() string {
	if r.deepLink == nil {
		return ""
	}

	return r.deepLink.VendorOriginContext()
}

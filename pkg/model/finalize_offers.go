/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package model

import (
	"time"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt"
)

const proofTypeJWT = "jwt"

// FinalizeOffersDescriptor carries the holder's decision on the offers of one exchange.
type FinalizeOffersDescriptor struct {
	Manifest         *CredentialManifest
	Challenge        string
	ApprovedOfferIDs []string
	RejectedOfferIDs []string
	// HolderDID and ProofKey are set when the issuer expects proof of key possession.
	HolderDID string
	ProofKey  *jwt.SigningKey
}

// NewFinalizeOffersDescriptor builds a descriptor for the offers of manifest's exchange.
func NewFinalizeOffersDescriptor(
	manifest *CredentialManifest,
	challenge string,
	approvedOfferIDs, rejectedOfferIDs []string,
) *FinalizeOffersDescriptor {
	return &FinalizeOffersDescriptor{
		Manifest:         manifest,
		Challenge:        challenge,
		ApprovedOfferIDs: approvedOfferIDs,
		RejectedOfferIDs: rejectedOfferIDs,
	}
}

// IssuerID returns the issuer the finalize call targets.
func (d *FinalizeOffersDescriptor) IssuerID() string {
	return d.Manifest.IssuerID()
}

// ProofPayload returns the claims of the key possession proof, bound to the issuer and challenge.
func (d *FinalizeOffersDescriptor) ProofPayload(now time.Time) map[string]interface{} {
	claims := map[string]interface{}{
		jwt.ClaimAud:   d.IssuerID(),
		jwt.ClaimNonce: d.Challenge,
		jwt.ClaimIat:   now.Unix(),
	}

	if d.HolderDID != "" {
		claims[jwt.ClaimIss] = d.HolderDID
	}

	return claims
}

// Payload builds the finalize request body. proof may be nil.
func (d *FinalizeOffersDescriptor) Payload(proof *jwt.JWT) map[string]interface{} {
	body := map[string]interface{}{
		"exchangeId":       d.Manifest.ExchangeID(),
		"approvedOfferIds": nonNil(d.ApprovedOfferIDs),
		"rejectedOfferIds": nonNil(d.RejectedOfferIDs),
	}

	if d.Challenge != "" {
		body["challenge"] = d.Challenge
	}

	if proof != nil {
		body["proof"] = map[string]interface{}{
			"proof_type": proofTypeJWT,
			"jwt":        proof.Encoded(),
		}
	}

	return body
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

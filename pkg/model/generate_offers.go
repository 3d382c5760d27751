/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package model

import "github.com/samber/lo"

// GenerateOffersDescriptor asks the issuer of manifest for offers of the given credential types.
// OfferHashes lists offers the holder already has, so the issuer can skip them.
type GenerateOffersDescriptor struct {
	Manifest    *CredentialManifest
	Types       []string
	OfferHashes []string
}

func NewGenerateOffersDescriptor(manifest *CredentialManifest, types []string) *GenerateOffersDescriptor {
	return &GenerateOffersDescriptor{Manifest: manifest, Types: types}
}

// Payload builds the check offers request body.
func (d *GenerateOffersDescriptor) Payload() map[string]interface{} {
	body := map[string]interface{}{
		"exchangeId": d.Manifest.ExchangeID(),
		"types": lo.Map(d.Types, func(t string, _ int) map[string]interface{} {
			return map[string]interface{}{"type": t}
		}),
	}

	if len(d.OfferHashes) > 0 {
		body["offerHashes"] = d.OfferHashes
	}

	return body
}

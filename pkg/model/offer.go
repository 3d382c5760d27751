/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package model

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"github.com/valyala/fastjson"
)

// Offer describes one credential an issuer proposes to issue.
type Offer struct {
	payload []byte
}

// NewOffer wraps an offer JSON object.
func NewOffer(payload []byte) (*Offer, error) {
	if !gjson.ValidBytes(payload) || !gjson.ParseBytes(payload).IsObject() {
		return nil, errors.New("offer is not a JSON object")
	}

	return &Offer{payload: append([]byte(nil), payload...)}, nil
}

func (o *Offer) ID() string {
	return gjson.GetBytes(o.payload, "id").String()
}

// IssuerID returns issuer.id, or issuer when the issuer is given as a plain DID.
func (o *Offer) IssuerID() string {
	issuer := gjson.GetBytes(o.payload, "issuer")
	if issuer.IsObject() {
		return issuer.Get("id").String()
	}

	return issuer.String()
}

// CredentialTypes returns the offered credential types.
func (o *Offer) CredentialTypes() []string {
	t := gjson.GetBytes(o.payload, "type")
	if !t.IsArray() {
		return lo.Compact([]string{t.String()})
	}

	return lo.Map(t.Array(), func(r gjson.Result, _ int) string { return r.String() })
}

// Payload returns a copy of the offer JSON.
func (o *Offer) Payload() []byte {
	return append([]byte(nil), o.payload...)
}

func (o *Offer) MarshalJSON() ([]byte, error) {
	return o.Payload(), nil
}

// Offers is the normalized answer of a generate or check offers call.
type Offers struct {
	All          []*Offer
	Challenge    string
	SessionToken Token
	StatusCode   int
}

// IDs returns the ids of all offers.
func (o *Offers) IDs() []string {
	return lo.Map(o.All, func(offer *Offer, _ int) string { return offer.ID() })
}

// offersPayload is the wire shape of an offers answer: either offersPayloadArray or
// offersPayloadObject.
type offersPayload interface {
	isOffersPayload()
}

type offersPayloadArray []*fastjson.Value

type offersPayloadObject struct {
	offers    []*fastjson.Value
	challenge string
}

func (offersPayloadArray) isOffersPayload()  {}
func (offersPayloadObject) isOffersPayload() {}

func decodeOffersPayload(v *fastjson.Value) (offersPayload, error) {
	switch v.Type() {
	case fastjson.TypeArray:
		items, _ := v.Array()

		return offersPayloadArray(items), nil
	case fastjson.TypeObject:
		obj := offersPayloadObject{challenge: string(v.GetStringBytes("challenge"))}

		if offers := v.Get("offers"); offers != nil && offers.Type() != fastjson.TypeNull {
			items, err := offers.Array()
			if err != nil {
				return nil, fmt.Errorf("offers: %w", err)
			}

			obj.offers = items
		}

		return obj, nil
	default:
		return nil, fmt.Errorf("unexpected offers payload type %s", v.Type())
	}
}

// ParseOffers normalizes both wire shapes, a bare array and {"offers": [...], "challenge": ...},
// into Offers. An empty body yields no offers.
func ParseOffers(payload []byte, statusCode int, sessionToken Token) (*Offers, error) {
	result := &Offers{SessionToken: sessionToken, StatusCode: statusCode, All: []*Offer{}}

	if len(bytes.TrimSpace(payload)) == 0 {
		return result, nil
	}

	var p fastjson.Parser

	v, err := p.ParseBytes(payload)
	if err != nil {
		return nil, fmt.Errorf("parse offers: %w", err)
	}

	decoded, err := decodeOffersPayload(v)
	if err != nil {
		return nil, err
	}

	var items []*fastjson.Value

	switch t := decoded.(type) {
	case offersPayloadArray:
		items = t
	case offersPayloadObject:
		items = t.offers
		result.Challenge = t.challenge
	}

	for i, item := range items {
		offer, err := NewOffer(item.MarshalTo(nil))
		if err != nil {
			return nil, fmt.Errorf("offer %d: %w", i, err)
		}

		result.All = append(result.All, offer)
	}

	return result, nil
}

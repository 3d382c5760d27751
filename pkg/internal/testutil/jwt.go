/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package testutil

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/did"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt/josecrypto"
)

// KeyFragment is the verification method fragment of every test key.
const KeyFragment = "key-1"

// Party is an issuer, inspector or holder with a secp256k1 key published in its DID document.
type Party struct {
	DID      string
	Key      *jwt.SigningKey
	Document *did.Document
}

// NewParty generates a key for id and a DID document listing it.
func NewParty(t *testing.T, id string, alsoKnownAs ...string) *Party {
	t.Helper()

	priv, err := josecrypto.GenerateKey(jwt.ES256K)
	require.NoError(t, err)

	jwk, err := josecrypto.PublicJWK(priv.Public())
	require.NoError(t, err)

	return &Party{
		DID: id,
		Key: &jwt.SigningKey{KID: id + "#" + KeyFragment, Alg: jwt.ES256K, Key: priv},
		Document: &did.Document{
			ID:          id,
			AlsoKnownAs: alsoKnownAs,
			VerificationMethod: []did.VerificationMethod{{
				ID:           "#" + KeyFragment,
				Type:         "JsonWebKey2020",
				Controller:   id,
				PublicKeyJwk: jwk,
			}},
		},
	}
}

// Sign signs claims with the party's key.
func (p *Party) Sign(t *testing.T, claims map[string]interface{}) *jwt.JWT {
	t.Helper()

	token, err := josecrypto.New().Sign(context.Background(), claims, p.Key)
	require.NoError(t, err)

	return token
}

// DocumentJSON returns the party's DID document as the registrar resolver serves it.
func (p *Party) DocumentJSON(t *testing.T) []byte {
	t.Helper()

	b, err := json.Marshal(map[string]interface{}{"didDocument": p.Document})
	require.NoError(t, err)

	return b
}

// ProfileJSON returns a verified profile of the party accredited for serviceTypes.
func (p *Party) ProfileJSON(t *testing.T, serviceTypes ...string) []byte {
	t.Helper()

	b, err := json.Marshal(map[string]interface{}{
		"id": p.DID,
		"credentialSubject": map[string]interface{}{
			"id":                               p.DID,
			"name":                             "Organization " + p.DID,
			"permittedVelocityServiceCategory": serviceTypes,
		},
	})
	require.NoError(t, err)

	return b
}

/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verification_test

import (
	"context"
	"crypto"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/deeplink"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/did"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt/josecrypto"
)

const (
	issuerDID   = "did:example:abc"
	aliasDID    = "did:other:xyz"
	mismatchDID = "did:mismatch:999"
	issuerKID   = issuerDID + "#key-1"
)

type issuer struct {
	key *jwt.SigningKey
	doc *did.Document
}

func newIssuer(t *testing.T, alsoKnownAs ...string) *issuer {
	t.Helper()

	priv, err := josecrypto.GenerateKey(jwt.ES256K)
	require.NoError(t, err)

	return &issuer{
		key: &jwt.SigningKey{KID: issuerKID, Alg: jwt.ES256K, Key: priv},
		doc: documentFor(t, issuerDID, priv.Public(), alsoKnownAs...),
	}
}

func documentFor(t *testing.T, id string, pub crypto.PublicKey, alsoKnownAs ...string) *did.Document {
	t.Helper()

	jwk, err := josecrypto.PublicJWK(pub)
	require.NoError(t, err)

	return &did.Document{
		ID:          id,
		AlsoKnownAs: alsoKnownAs,
		VerificationMethod: []did.VerificationMethod{
			{ID: "#key-1", Type: "JsonWebKey2020", Controller: id, PublicKeyJwk: jwk},
		},
	}
}

func (i *issuer) sign(t *testing.T, payload map[string]interface{}) *jwt.JWT {
	t.Helper()

	token, err := josecrypto.New().Sign(context.Background(), payload, i.key)
	require.NoError(t, err)

	return token
}

func issuingDeepLink(t *testing.T, linkDID string) *deeplink.DeepLink {
	t.Helper()

	requestURI := "https://agent.example.com/get-credential-manifest?id=1"
	if linkDID != "" {
		requestURI += "&issuerDid=" + url.QueryEscape(linkDID)
	}

	dl, err := deeplink.Parse("velocity-network://issue?request_uri=" + url.QueryEscape(requestURI))
	require.NoError(t, err)

	return dl
}

func inspectionDeepLink(t *testing.T, linkDID string) *deeplink.DeepLink {
	t.Helper()

	requestURI := "https://inspector.example.com/get-presentation-request?id=1"
	if linkDID != "" {
		requestURI += "&inspectorDid=" + url.QueryEscape(linkDID)
	}

	dl, err := deeplink.Parse("velocity-network://inspect?request_uri=" + url.QueryEscape(requestURI))
	require.NoError(t, err)

	return dl
}

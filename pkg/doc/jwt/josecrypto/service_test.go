/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package josecrypto_test

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/did"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt/josecrypto"
)

func samplePayload() map[string]interface{} {
	return map[string]interface{}{
		"iss": "did:example:abc",
		"jti": "4f2b2f9e-7a3c-4c36-b5d6-0d7a38a5c7a1",
		"vp": map[string]interface{}{
			"type": "VerifiablePresentation",
			"verifiableCredential": []interface{}{
				"eyJhbGciOiJFUzI1NksifQ.e30.c2ln",
			},
		},
		"nbf": float64(1700000000),
	}
}

func TestService_SignVerify(t *testing.T) {
	svc := josecrypto.New()

	for _, alg := range []jwt.Algorithm{jwt.ES256, jwt.ES384, jwt.ES512, jwt.ES256K, jwt.EdDSA, jwt.RS256} {
		t.Run(string(alg), func(t *testing.T) {
			priv, err := josecrypto.GenerateKey(alg)
			require.NoError(t, err)

			key := &jwt.SigningKey{KID: "did:example:abc#key-1", Alg: alg, Key: priv}

			token, err := svc.Sign(context.Background(), samplePayload(), key)
			require.NoError(t, err)

			require.Equal(t, string(alg), token.Alg())
			require.Equal(t, "did:example:abc#key-1", token.Kid())
			require.Equal(t, jwt.DefaultType, token.Typ())

			decoded, err := jwt.Decode(token.Encoded())
			require.NoError(t, err)
			require.Equal(t, samplePayload(), decoded.Payload())

			jwk, err := josecrypto.PublicJWK(priv.Public())
			require.NoError(t, err)

			ok, err := svc.Verify(context.Background(), decoded, jwk)
			require.NoError(t, err)
			require.True(t, ok)

			other, err := josecrypto.GenerateKey(alg)
			require.NoError(t, err)

			otherJWK, err := josecrypto.PublicJWK(other.Public())
			require.NoError(t, err)

			ok, _ = svc.Verify(context.Background(), decoded, otherJWK)
			require.False(t, ok)
		})
	}
}

func TestService_Sign(t *testing.T) {
	svc := josecrypto.New()

	t.Run("custom type", func(t *testing.T) {
		priv, err := josecrypto.GenerateKey(jwt.ES256)
		require.NoError(t, err)

		token, err := svc.Sign(context.Background(), samplePayload(),
			&jwt.SigningKey{Alg: jwt.ES256, Key: priv, Type: "vc+jwt"})
		require.NoError(t, err)
		require.Equal(t, "vc+jwt", token.Typ())
		require.Empty(t, token.Kid())
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := svc.Sign(context.Background(), samplePayload(), nil)
		require.EqualError(t, err, "signing key is required")
	})

	t.Run("ES256K with P-256 key", func(t *testing.T) {
		priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		require.NoError(t, err)

		_, err = svc.Sign(context.Background(), samplePayload(), &jwt.SigningKey{Alg: jwt.ES256K, Key: priv})
		require.ErrorContains(t, err, "ES256K requires a secp256k1 ECDSA key")
	})

	t.Run("algorithm does not match key", func(t *testing.T) {
		priv, err := josecrypto.GenerateKey(jwt.EdDSA)
		require.NoError(t, err)

		_, err = svc.Sign(context.Background(), samplePayload(), &jwt.SigningKey{Alg: jwt.ES256, Key: priv})
		require.ErrorContains(t, err, "sign ES256")
	})
}

func TestService_Verify(t *testing.T) {
	svc := josecrypto.New()

	priv, err := josecrypto.GenerateKey(jwt.ES256K)
	require.NoError(t, err)

	jwk, err := josecrypto.PublicJWK(priv.Public())
	require.NoError(t, err)
	require.Equal(t, "secp256k1", jwk.Crv)

	token, err := svc.Sign(context.Background(), samplePayload(), &jwt.SigningKey{Alg: jwt.ES256K, Key: priv})
	require.NoError(t, err)

	t.Run("tampered payload", func(t *testing.T) {
		parts := strings.Split(token.Encoded(), ".")

		forged, err := svc.Sign(context.Background(), map[string]interface{}{"iss": "did:attacker:1"},
			&jwt.SigningKey{Alg: jwt.ES256K, Key: priv})
		require.NoError(t, err)

		tampered, err := jwt.Decode(parts[0] + "." + strings.Split(forged.Encoded(), ".")[1] + "." + parts[2])
		require.NoError(t, err)

		ok, err := svc.Verify(context.Background(), tampered, jwk)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("nil key", func(t *testing.T) {
		ok, err := svc.Verify(context.Background(), token, nil)
		require.Error(t, err)
		require.False(t, ok)
	})

	t.Run("curve mismatch", func(t *testing.T) {
		p256, err := josecrypto.GenerateKey(jwt.ES256)
		require.NoError(t, err)

		p256JWK, err := josecrypto.PublicJWK(p256.Public())
		require.NoError(t, err)

		ok, err := svc.Verify(context.Background(), token, p256JWK)
		require.ErrorContains(t, err, "does not match key curve")
		require.False(t, ok)
	})

	t.Run("invalid JWK", func(t *testing.T) {
		es256, err := josecrypto.GenerateKey(jwt.ES256)
		require.NoError(t, err)

		es256Token, err := svc.Sign(context.Background(), samplePayload(), &jwt.SigningKey{Alg: jwt.ES256, Key: es256})
		require.NoError(t, err)

		ok, err := svc.Verify(context.Background(), es256Token, &did.PublicJWK{Kty: "EC", Crv: "P-256", X: "AA", Y: "AA"})
		require.Error(t, err)
		require.False(t, ok)
	})
}

func TestPublicKey(t *testing.T) {
	_, err := josecrypto.PublicKey(&did.PublicJWK{Kty: "EC", Crv: "secp256k1", X: "!!", Y: "AA"})
	require.ErrorContains(t, err, "decode x")

	_, err = josecrypto.PublicKey(&did.PublicJWK{Kty: "EC", Crv: "secp256k1", X: "AQ", Y: "AQ"})
	require.ErrorContains(t, err, "not on curve")
}

func TestGenerateKey_Unsupported(t *testing.T) {
	_, err := josecrypto.GenerateKey("HS256")
	require.ErrorContains(t, err, "unsupported algorithm")
}

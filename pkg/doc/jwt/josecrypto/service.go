/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package josecrypto

import (
	"context"
	"crypto"
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"github.com/go-jose/go-jose/v3"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/velocitycareerlabs/velocitycore-sub004/internal/logfields"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/did"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt"
)

var logger = log.New("josecrypto")

const (
	curveSecp256k1   = "secp256k1"
	secp256k1KeySize = 32
)

// Service signs and verifies JWTs with go-jose, and with btcec for ES256K.
type Service struct{}

// New returns the crypto service.
func New() *Service {
	return &Service{}
}

// Sign signs payload with key.
func (s *Service) Sign(_ context.Context, payload map[string]interface{}, key *jwt.SigningKey) (*jwt.JWT, error) {
	if key == nil || key.Key == nil {
		return nil, errors.New("signing key is required")
	}

	typ := key.Type
	if typ == "" {
		typ = jwt.DefaultType
	}

	var (
		encoded string
		err     error
	)

	if key.Alg == jwt.ES256K {
		encoded, err = signES256K(payload, key, typ)
	} else {
		encoded, err = signJOSE(payload, key, typ)
	}

	if err != nil {
		return nil, fmt.Errorf("sign %s: %w", key.Alg, err)
	}

	return jwt.Decode(encoded)
}

// Verify checks token's signature with jwk.
func (s *Service) Verify(_ context.Context, token *jwt.JWT, jwk *did.PublicJWK) (bool, error) {
	if jwk == nil {
		return false, errors.New("public key is required")
	}

	if jwt.Algorithm(token.Alg()) == jwt.ES256K || jwk.Crv == curveSecp256k1 {
		return verifyES256K(token, jwk)
	}

	pub, err := PublicKey(jwk)
	if err != nil {
		return false, err
	}

	jws, err := jose.ParseSigned(token.Encoded())
	if err != nil {
		return false, fmt.Errorf("parse JWS: %w", err)
	}

	if _, err = jws.Verify(pub); err != nil {
		logger.Debug("signature verification failed", logfields.WithKID(token.Kid()), log.WithError(err))

		return false, nil
	}

	return true, nil
}

func signJOSE(payload map[string]interface{}, key *jwt.SigningKey, typ string) (string, error) {
	opts := (&jose.SignerOptions{}).WithType(jose.ContentType(typ))
	if key.KID != "" {
		opts = opts.WithHeader(jwt.HeaderKid, key.KID)
	}

	signer, err := jose.NewSigner(jose.SigningKey{Algorithm: jose.SignatureAlgorithm(key.Alg), Key: key.Key}, opts)
	if err != nil {
		return "", fmt.Errorf("create signer: %w", err)
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	jws, err := signer.Sign(b)
	if err != nil {
		return "", err
	}

	return jws.CompactSerialize()
}

func signES256K(payload map[string]interface{}, key *jwt.SigningKey, typ string) (string, error) {
	priv, ok := key.Key.(*ecdsa.PrivateKey)
	if !ok || priv.Curve != btcec.S256() {
		return "", errors.New("ES256K requires a secp256k1 ECDSA key")
	}

	header := map[string]interface{}{
		jwt.HeaderAlg: string(jwt.ES256K),
		jwt.HeaderTyp: typ,
	}

	if key.KID != "" {
		header[jwt.HeaderKid] = key.KID
	}

	signingInput, err := jwt.Encode(header, payload)
	if err != nil {
		return "", err
	}

	digest := sha256.Sum256([]byte(signingInput))

	r, sig, err := ecdsa.Sign(rand.Reader, priv, digest[:])
	if err != nil {
		return "", err
	}

	rs := make([]byte, 2*secp256k1KeySize)
	r.FillBytes(rs[:secp256k1KeySize])
	sig.FillBytes(rs[secp256k1KeySize:])

	return signingInput + "." + base64.RawURLEncoding.EncodeToString(rs), nil
}

func verifyES256K(token *jwt.JWT, jwk *did.PublicJWK) (bool, error) {
	if jwt.Algorithm(token.Alg()) != jwt.ES256K || jwk.Crv != curveSecp256k1 {
		return false, fmt.Errorf("algorithm %q does not match key curve %q", token.Alg(), jwk.Crv)
	}

	pub, err := PublicKey(jwk)
	if err != nil {
		return false, err
	}

	sig := token.Signature()
	if len(sig) != 2*secp256k1KeySize {
		return false, fmt.Errorf("invalid ES256K signature length %d", len(sig))
	}

	digest := sha256.Sum256([]byte(token.SigningInput()))

	r := new(big.Int).SetBytes(sig[:secp256k1KeySize])
	s := new(big.Int).SetBytes(sig[secp256k1KeySize:])

	return ecdsa.Verify(pub.(*ecdsa.PublicKey), digest[:], r, s), nil
}

// PublicKey converts a public JWK to a crypto public key.
func PublicKey(jwk *did.PublicJWK) (crypto.PublicKey, error) {
	if jwk.Crv == curveSecp256k1 {
		x, err := base64.RawURLEncoding.DecodeString(jwk.X)
		if err != nil {
			return nil, fmt.Errorf("decode x: %w", err)
		}

		y, err := base64.RawURLEncoding.DecodeString(jwk.Y)
		if err != nil {
			return nil, fmt.Errorf("decode y: %w", err)
		}

		pub := &ecdsa.PublicKey{
			Curve: btcec.S256(),
			X:     new(big.Int).SetBytes(x),
			Y:     new(big.Int).SetBytes(y),
		}

		if !pub.Curve.IsOnCurve(pub.X, pub.Y) {
			return nil, errors.New("secp256k1 point is not on curve")
		}

		return pub, nil
	}

	b, err := json.Marshal(jwk)
	if err != nil {
		return nil, fmt.Errorf("marshal JWK: %w", err)
	}

	var key jose.JSONWebKey
	if err = key.UnmarshalJSON(b); err != nil {
		return nil, fmt.Errorf("parse JWK: %w", err)
	}

	if !key.IsPublic() {
		return nil, errors.New("JWK is not a public key")
	}

	return key.Key, nil
}

// PublicJWK converts a public key to its JWK form.
func PublicJWK(pub crypto.PublicKey) (*did.PublicJWK, error) {
	if ec, ok := pub.(*ecdsa.PublicKey); ok && ec.Curve == btcec.S256() {
		x := make([]byte, secp256k1KeySize)
		y := make([]byte, secp256k1KeySize)

		ec.X.FillBytes(x)
		ec.Y.FillBytes(y)

		return &did.PublicJWK{
			Kty: "EC",
			Crv: curveSecp256k1,
			X:   base64.RawURLEncoding.EncodeToString(x),
			Y:   base64.RawURLEncoding.EncodeToString(y),
		}, nil
	}

	b, err := (&jose.JSONWebKey{Key: pub}).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal JWK: %w", err)
	}

	jwk := &did.PublicJWK{}
	if err = json.Unmarshal(b, jwk); err != nil {
		return nil, fmt.Errorf("unmarshal JWK: %w", err)
	}

	return jwk, nil
}

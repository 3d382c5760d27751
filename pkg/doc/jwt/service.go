/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwt

import (
	"context"
	"crypto"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/did"
)

// Algorithm is a JWS "alg" value.
type Algorithm string

const (
	ES256  Algorithm = "ES256"
	ES256K Algorithm = "ES256K"
	ES384  Algorithm = "ES384"
	ES512  Algorithm = "ES512"
	EdDSA  Algorithm = "EdDSA"
	RS256  Algorithm = "RS256"
)

// DefaultType is the "typ" header used when SigningKey.Type is empty.
const DefaultType = "JWT"

// SigningKey is a holder key able to sign JWTs.
type SigningKey struct {
	KID  string
	Alg  Algorithm
	Key  crypto.Signer
	Type string
}

// Signer signs claims into a JWT.
type Signer interface {
	Sign(ctx context.Context, payload map[string]interface{}, key *SigningKey) (*JWT, error)
}

// Verifier checks a JWT signature against a public key. A false result and an error both
// mean the token is untrusted.
type Verifier interface {
	Verify(ctx context.Context, token *JWT, jwk *did.PublicJWK) (bool, error)
}

/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package josecrypto

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"fmt"

	"github.com/btcsuite/btcd/btcec"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt"
)

const rsaKeyBits = 2048

// GenerateKey creates a new private key for alg.
func GenerateKey(alg jwt.Algorithm) (crypto.Signer, error) {
	var (
		key crypto.Signer
		err error
	)

	switch alg {
	case jwt.ES256:
		key, err = ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	case jwt.ES384:
		key, err = ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	case jwt.ES512:
		key, err = ecdsa.GenerateKey(elliptic.P521(), rand.Reader)
	case jwt.ES256K:
		var priv *btcec.PrivateKey

		priv, err = btcec.NewPrivateKey(btcec.S256())
		if err == nil {
			key = priv.ToECDSA()
		}
	case jwt.EdDSA:
		_, key, err = ed25519.GenerateKey(rand.Reader)
	case jwt.RS256:
		key, err = rsa.GenerateKey(rand.Reader, rsaKeyBits)
	default:
		return nil, fmt.Errorf("unsupported algorithm: %s", alg)
	}

	if err != nil {
		return nil, fmt.Errorf("generate %s key: %w", alg, err)
	}

	return key, nil
}

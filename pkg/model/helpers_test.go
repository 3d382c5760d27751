/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/deeplink"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt"
)

const (
	issuerDID    = "did:ion:issuer"
	inspectorDID = "did:ion:inspector"
)

func unsignedJWT(t *testing.T, payload map[string]interface{}) *jwt.JWT {
	t.Helper()

	input, err := jwt.Encode(map[string]interface{}{"alg": "ES256K", "kid": "did:ion:issuer#key-1"}, payload)
	require.NoError(t, err)

	token, err := jwt.Decode(input + ".c2ln")
	require.NoError(t, err)

	return token
}

func manifestJWT(t *testing.T) *jwt.JWT {
	t.Helper()

	return unsignedJWT(t, map[string]interface{}{
		"iss":         issuerDID,
		"exchange_id": "exchange-1",
		"presentation_definition": map[string]interface{}{
			"id":      "pd-1",
			"purpose": "Employment check",
		},
		"metadata": map[string]interface{}{
			"client_name":             "ACME",
			"check_offers_uri":        "https://agent.example.com/offers",
			"finalize_offers_uri":     "https://agent.example.com/finalize",
			"submit_presentation_uri": "https://agent.example.com/submit",
			"progress_uri":            "https://agent.example.com/progress",
			"auth_token_uri":          "https://agent.example.com/token",
		},
	})
}

func requestJWT(t *testing.T) *jwt.JWT {
	t.Helper()

	return unsignedJWT(t, map[string]interface{}{
		"iss":         inspectorDID,
		"exchange_id": "exchange-2",
		"presentation_definition": map[string]interface{}{
			"id":      "pd-2",
			"purpose": "Background check",
		},
		"metadata": map[string]interface{}{
			"client_name":             "Inspector Inc",
			"submit_presentation_uri": "https://inspector.example.com/submit",
			"progress_uri":            "https://inspector.example.com/progress?tenant=1",
			"auth_token_uri":          "https://inspector.example.com/token",
		},
	})
}

func mustDeepLink(t *testing.T, value string) *deeplink.DeepLink {
	t.Helper()

	dl, err := deeplink.Parse(value)
	require.NoError(t, err)

	return dl
}

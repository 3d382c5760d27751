/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credentialmanifest_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/config"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/credentialmanifest"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/deeplink"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/did"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt/josecrypto"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/internal/testutil"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/model"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/profile"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/sdkerr"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/transport"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/verification"
)

const (
	issuerDID   = "did:example:abc"
	aliasDID    = "did:other:xyz"
	manifestURL = "https://agent.example.com/get-credential-manifest"
)

type fixture struct {
	cfg     *config.Config
	network *testutil.Network
	issuer  *testutil.Party
	svc     *credentialmanifest.Service
}

func newFixture(t *testing.T, alsoKnownAs ...string) *fixture {
	t.Helper()

	cfg, err := config.New(config.WithRegistrarURL("https://registrar.example.com"))
	require.NoError(t, err)

	f := &fixture{
		cfg:     cfg,
		network: testutil.NewNetwork(),
		issuer:  testutil.NewParty(t, issuerDID, alsoKnownAs...),
	}

	f.network.
		JSON(http.MethodGet, cfg.ResolveDIDURL(issuerDID), http.StatusOK, f.issuer.DocumentJSON(t)).
		JSON(http.MethodGet, cfg.VerifiedProfileURL(issuerDID), http.StatusOK, f.issuer.ProfileJSON(t, "Issuer"))

	f.serveManifest(t, f.issuer.Sign(t, manifestClaims()).Encoded())

	f.svc = credentialmanifest.New(&credentialmanifest.Config{
		AppConfig:      cfg,
		NetworkService: f.network,
		SignatureVerifier: verification.NewSignatureVerifier(&verification.SignatureVerifierConfig{
			DIDResolver: did.NewResolver(cfg, f.network),
			JWTVerifier: josecrypto.New(),
		}),
		ProfileService: profile.New(&profile.Config{AppConfig: cfg, NetworkService: f.network}),
	})

	return f
}

func (f *fixture) serveManifest(t *testing.T, encoded string) {
	t.Helper()

	f.network.JSON(http.MethodGet, manifestURL, http.StatusOK, []byte(`{"issuing_request":"`+encoded+`"}`))
}

func manifestClaims() map[string]interface{} {
	return map[string]interface{}{
		"iss":         issuerDID,
		"exchange_id": "exchange-1",
		"presentation_definition": map[string]interface{}{
			"id": "pd-1",
		},
		"metadata": map[string]interface{}{
			"client_name":         "ACME",
			"check_offers_uri":    "https://agent.example.com/credential-offers",
			"finalize_offers_uri": "https://agent.example.com/finalize-offers",
		},
	}
}

func deepLinkTo(t *testing.T, linkDID string) *deeplink.DeepLink {
	t.Helper()

	requestURI := manifestURL + "?id=1"
	if linkDID != "" {
		requestURI += "&issuerDid=" + url.QueryEscape(linkDID)
	}

	dl, err := deeplink.Parse("velocity-network://issue?request_uri=" + url.QueryEscape(requestURI))
	require.NoError(t, err)

	return dl
}

func TestService_GetCredentialManifest(t *testing.T) {
	t.Run("deep link DID is the issuer", func(t *testing.T) {
		f := newFixture(t)
		dl := deepLinkTo(t, issuerDID)
		pd := &model.PushDelegate{PushURL: "https://wallet.example.com/push", PushToken: "pt"}

		manifest, err := f.svc.GetCredentialManifest(context.Background(),
			model.NewCredentialManifestDescriptorByDeepLink(dl, pd))
		require.NoError(t, err)

		require.Equal(t, issuerDID, manifest.IssuerID())
		require.Equal(t, "exchange-1", manifest.ExchangeID())
		require.Equal(t, "ACME", manifest.ClientName())
		require.Same(t, dl, manifest.DeepLink())
		require.Equal(t, issuerDID, manifest.VerifiedProfile().ID())
		require.Equal(t, issuerDID, manifest.DIDDocument().ID)

		req := f.network.Last(http.MethodGet, manifestURL)
		require.NotNil(t, req)
		require.Equal(t, "1.0", req.Headers[transport.HeaderProtocolVersion])

		u, err := url.Parse(req.Endpoint)
		require.NoError(t, err)
		require.Equal(t, "pt", u.Query().Get(model.ParamPushDelegateTok))
		require.Equal(t, issuerDID, u.Query().Get("issuerDid"))
	})

	t.Run("deep link DID is an alias of the issuer", func(t *testing.T) {
		f := newFixture(t, aliasDID)

		manifest, err := f.svc.GetCredentialManifest(context.Background(),
			model.NewCredentialManifestDescriptorByDeepLink(deepLinkTo(t, aliasDID), nil))
		require.NoError(t, err)
		require.Equal(t, issuerDID, manifest.IssuerID())
	})

	t.Run("deep link DID is not an alias", func(t *testing.T) {
		f := newFixture(t, aliasDID)

		manifest, err := f.svc.GetCredentialManifest(context.Background(),
			model.NewCredentialManifestDescriptorByDeepLink(deepLinkTo(t, "did:mismatch:999"), nil))
		require.Nil(t, manifest)
		require.True(t, sdkerr.HasCode(err, sdkerr.MismatchedRequestIssuerDid))
		require.Nil(t, f.network.Last(http.MethodGet, f.cfg.VerifiedProfileURL(issuerDID)))
	})

	t.Run("deep link without DID", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetCredentialManifest(context.Background(),
			model.NewCredentialManifestDescriptorByDeepLink(deepLinkTo(t, ""), nil))
		require.True(t, sdkerr.HasCode(err, sdkerr.MissingDidInDeepLink))
	})

	t.Run("by service skips deep link binding", func(t *testing.T) {
		f := newFixture(t, aliasDID)

		manifest, err := f.svc.GetCredentialManifest(context.Background(),
			model.NewCredentialManifestDescriptorByService(manifestURL, aliasDID, []string{"EmailV1.0"}, nil))
		require.NoError(t, err)
		require.Nil(t, manifest.DeepLink())

		u, err := url.Parse(f.network.Last(http.MethodGet, manifestURL).Endpoint)
		require.NoError(t, err)
		require.Equal(t, []string{"EmailV1.0"}, u.Query()[model.ParamCredentialTypes])
	})

	t.Run("by service for another issuer", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetCredentialManifest(context.Background(),
			model.NewCredentialManifestDescriptorByService(manifestURL, "did:mismatch:999", nil, nil))
		require.True(t, sdkerr.HasCode(err, sdkerr.MismatchedRequestIssuerDid))
	})

	t.Run("signed by another key", func(t *testing.T) {
		f := newFixture(t)
		f.serveManifest(t, testutil.NewParty(t, issuerDID).Sign(t, manifestClaims()).Encoded())

		_, err := f.svc.GetCredentialManifest(context.Background(),
			model.NewCredentialManifestDescriptorByDeepLink(deepLinkTo(t, issuerDID), nil))
		require.True(t, sdkerr.HasCode(err, sdkerr.SignatureInvalid))
	})

	t.Run("unknown kid", func(t *testing.T) {
		f := newFixture(t)
		f.issuer.Key.KID = issuerDID + "#key-9"
		f.serveManifest(t, f.issuer.Sign(t, manifestClaims()).Encoded())

		_, err := f.svc.GetCredentialManifest(context.Background(),
			model.NewCredentialManifestDescriptorByDeepLink(deepLinkTo(t, issuerDID), nil))
		require.True(t, sdkerr.HasCode(err, sdkerr.PublicKeyNotFound))
	})

	t.Run("issuer not accredited", func(t *testing.T) {
		f := newFixture(t)
		f.network.JSON(http.MethodGet, f.cfg.VerifiedProfileURL(issuerDID), http.StatusOK,
			f.issuer.ProfileJSON(t, "Inspector"))

		_, err := f.svc.GetCredentialManifest(context.Background(),
			model.NewCredentialManifestDescriptorByDeepLink(deepLinkTo(t, issuerDID), nil))
		require.True(t, sdkerr.HasCode(err, sdkerr.InvalidProfileServiceType))
	})

	t.Run("issuer DID does not resolve", func(t *testing.T) {
		f := newFixture(t)
		f.network.JSON(http.MethodGet, f.cfg.ResolveDIDURL(issuerDID), http.StatusNotFound, []byte(`{}`))

		_, err := f.svc.GetCredentialManifest(context.Background(),
			model.NewCredentialManifestDescriptorByDeepLink(deepLinkTo(t, issuerDID), nil))
		require.True(t, sdkerr.HasCode(err, sdkerr.ResolutionFailed))
	})

	t.Run("agent unavailable", func(t *testing.T) {
		f := newFixture(t)
		f.network.JSON(http.MethodGet, manifestURL, http.StatusBadGateway, []byte(`bad gateway`))

		_, err := f.svc.GetCredentialManifest(context.Background(),
			model.NewCredentialManifestDescriptorByDeepLink(deepLinkTo(t, issuerDID), nil))
		require.True(t, sdkerr.Retryable(err))
	})

	t.Run("no issuing request", func(t *testing.T) {
		f := newFixture(t)
		f.network.JSON(http.MethodGet, manifestURL, http.StatusOK, []byte(`{"presentation_request":"x"}`))

		_, err := f.svc.GetCredentialManifest(context.Background(),
			model.NewCredentialManifestDescriptorByDeepLink(deepLinkTo(t, issuerDID), nil))
		require.Equal(t, sdkerr.SdkError, sdkerr.CodeOf(err))
		require.ErrorContains(t, err, "issuing_request")
	})

	t.Run("malformed JWT", func(t *testing.T) {
		f := newFixture(t)
		f.serveManifest(t, "not-a-jwt")

		_, err := f.svc.GetCredentialManifest(context.Background(),
			model.NewCredentialManifestDescriptorByDeepLink(deepLinkTo(t, issuerDID), nil))
		require.True(t, sdkerr.HasCode(err, sdkerr.MalformedJwt))
	})

	t.Run("empty descriptor", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetCredentialManifest(context.Background(), &model.CredentialManifestDescriptor{})
		require.Equal(t, sdkerr.SdkError, sdkerr.CodeOf(err))
	})
}

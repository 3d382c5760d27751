/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/config"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.New()
		require.NoError(t, err)

		require.Equal(t, config.EnvironmentProd, cfg.Environment())
		require.Equal(t, config.ProtocolVersion1, cfg.ProtocolVersion())
		require.False(t, cfg.IsDebugOn())
		require.Equal(t, "https://registrar.velocitynetwork.foundation", cfg.RegistrarURL())
		require.Equal(t, 30*time.Second, cfg.RequestTimeout())
		require.EqualValues(t, 3, cfg.MaxRetries())
	})

	t.Run("options", func(t *testing.T) {
		cfg, err := config.New(
			config.WithEnvironment(config.EnvironmentDev),
			config.WithProtocolVersion(config.ProtocolVersion2),
			config.WithDebug(true),
			config.WithRequestTimeout(time.Second),
			config.WithMaxRetries(0),
		)
		require.NoError(t, err)

		require.Equal(t, "https://devregistrar.velocitynetwork.foundation", cfg.RegistrarURL())
		require.Equal(t, config.ProtocolVersion2, cfg.ProtocolVersion())
		require.True(t, cfg.IsDebugOn())
		require.Zero(t, cfg.MaxRetries())
	})

	t.Run("registrar override", func(t *testing.T) {
		cfg, err := config.New(config.WithRegistrarURL("http://localhost:8080/"))
		require.NoError(t, err)

		require.Equal(t, "http://localhost:8080/api/v0.6/resolve-did/did:example:abc",
			cfg.ResolveDIDURL("did:example:abc"))
		require.Equal(t, "http://localhost:8080/api/v0.6/organizations/did:example:abc/verified-profile",
			cfg.VerifiedProfileURL("did:example:abc"))
		require.Equal(t, "http://localhost:8080/api/v0.6/credential-types", cfg.CredentialTypesURL())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := config.New(config.WithProtocolVersion("3.0"))
		require.ErrorContains(t, err, "unsupported protocol version")

		_, err = config.New(config.WithEnvironment("moon"))
		require.ErrorContains(t, err, "unsupported environment")

		_, err = config.New(config.WithRegistrarURL("not a url"))
		require.ErrorContains(t, err, "invalid registrar url")

		_, err = config.New(config.WithRequestTimeout(0))
		require.ErrorContains(t, err, "request timeout must be positive")
	})
}

func TestParseEnvironment(t *testing.T) {
	env, err := config.ParseEnvironment("QA")
	require.NoError(t, err)
	require.Equal(t, config.EnvironmentQA, env)

	_, err = config.ParseEnvironment("local")
	require.Error(t, err)
}

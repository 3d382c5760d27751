/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tracing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	t.Run("Provider NONE", func(t *testing.T) {
		shutdown, tracer, err := Initialize("", "vnf-wallet")
		require.NoError(t, err)
		require.NotNil(t, shutdown)
		require.NotNil(t, tracer)
		require.NotPanics(t, shutdown)
	})

	t.Run("Provider JAEGER with collector endpoint", func(t *testing.T) {
		t.Setenv(JaegerCollectorEndpointEnvKey, "http://localhost:14268/api/traces")

		shutdown, tracer, err := Initialize(Jaeger, "vnf-wallet")
		require.NoError(t, err)
		require.NotNil(t, tracer)
		require.NotPanics(t, shutdown)
	})

	t.Run("Provider JAEGER without endpoint", func(t *testing.T) {
		t.Setenv(JaegerAgentEndpointEnvKey, "")
		t.Setenv(JaegerCollectorEndpointEnvKey, "")

		shutdown, tracer, err := Initialize(Jaeger, "vnf-wallet")
		require.ErrorContains(t, err, "neither agent nor collector endpoint is provided")
		require.Nil(t, shutdown)
		require.Nil(t, tracer)
	})

	t.Run("Provider STDOUT", func(t *testing.T) {
		shutdown, tracer, err := Initialize(Stdout, "vnf-wallet")
		require.NoError(t, err)
		require.NotNil(t, shutdown)
		require.NotNil(t, tracer)
		require.NotPanics(t, shutdown)
	})

	t.Run("Unsupported provider", func(t *testing.T) {
		shutdown, tracer, err := Initialize("unsupported", "vnf-wallet")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unsupported exporter type")
		require.Nil(t, shutdown)
		require.Nil(t, tracer)
	})
}

func TestIsExporterSupported(t *testing.T) {
	require.True(t, IsExporterSupported(None))
	require.True(t, IsExporterSupported(Stdout))
	require.True(t, IsExporterSupported(Jaeger))
	require.False(t, IsExporterSupported("unsupported"))
}

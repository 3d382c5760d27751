/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package walletcmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/velocitycareerlabs/velocitycore-sub004/cmd/common"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/config"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/observability/tracing"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	environmentFlagName      = "environment"
	environmentFlagShorthand = "e"
	environmentEnvKey        = "VNF_WALLET_ENVIRONMENT"
	environmentFlagUsage     = "Velocity Network environment (prod, staging, qa, dev). Defaults to prod. " +
		commonEnvVarUsageText + environmentEnvKey

	registrarURLFlagName  = "registrar-url"
	registrarURLEnvKey    = "VNF_WALLET_REGISTRAR_URL"
	registrarURLFlagUsage = "Registrar base URL, overrides the one derived from the environment. " +
		commonEnvVarUsageText + registrarURLEnvKey

	protocolVersionFlagName  = "protocol-version"
	protocolVersionEnvKey    = "VNF_WALLET_PROTOCOL_VERSION"
	protocolVersionFlagUsage = "Exchange protocol version sent to agents (1.0, 2.0). Defaults to 1.0. " +
		commonEnvVarUsageText + protocolVersionEnvKey

	requestTimeoutFlagName  = "request-timeout"
	requestTimeoutEnvKey    = "VNF_WALLET_REQUEST_TIMEOUT"
	requestTimeoutFlagUsage = "Timeout of a single request, e.g. 10s. " +
		commonEnvVarUsageText + requestTimeoutEnvKey

	maxRetriesFlagName  = "max-retries"
	maxRetriesEnvKey    = "VNF_WALLET_MAX_RETRIES"
	maxRetriesFlagUsage = "How many times a failed request is retried. " +
		commonEnvVarUsageText + maxRetriesEnvKey

	tracingProviderFlagName  = "tracing-provider"
	tracingProviderEnvKey    = "VNF_WALLET_TRACING_PROVIDER"
	tracingProviderFlagUsage = "Tracing provider (JAEGER, STDOUT). Tracing is off when not set. " +
		commonEnvVarUsageText + tracingProviderEnvKey

	tracingServiceNameFlagName  = "tracing-service-name"
	tracingServiceNameEnvKey    = "VNF_WALLET_TRACING_SERVICE_NAME"
	tracingServiceNameFlagUsage = "Service name reported with spans. Defaults to vnf-wallet. " +
		commonEnvVarUsageText + tracingServiceNameEnvKey

	metricsProviderFlagName  = "metrics-provider"
	metricsProviderEnvKey    = "VNF_WALLET_METRICS_PROVIDER"
	metricsProviderFlagUsage = "Metrics provider (prometheus). Metrics are off when not set. " +
		commonEnvVarUsageText + metricsProviderEnvKey

	metricsHostURLFlagName  = "metrics-host-url"
	metricsHostURLEnvKey    = "VNF_WALLET_METRICS_HOST_URL"
	metricsHostURLFlagUsage = "Address the prometheus /metrics endpoint listens on while the command runs. " +
		commonEnvVarUsageText + metricsHostURLEnvKey

	defaultServiceName    = "vnf-wallet"
	prometheusMetricsName = "prometheus"
)

type parameters struct {
	configOpts      []config.Opt
	logLevel        string
	tracingProvider tracing.SpanExporterType
	serviceName     string
	metricsProvider string
	metricsHostURL  string
}

func createFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP(environmentFlagName, environmentFlagShorthand, "", environmentFlagUsage)
	flags.String(registrarURLFlagName, "", registrarURLFlagUsage)
	flags.String(protocolVersionFlagName, "", protocolVersionFlagUsage)
	flags.String(requestTimeoutFlagName, "", requestTimeoutFlagUsage)
	flags.String(maxRetriesFlagName, "", maxRetriesFlagUsage)
	flags.StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelPrefixFlagUsage)
	flags.String(tracingProviderFlagName, "", tracingProviderFlagUsage)
	flags.String(tracingServiceNameFlagName, "", tracingServiceNameFlagUsage)
	flags.String(metricsProviderFlagName, "", metricsProviderFlagUsage)
	flags.String(metricsHostURLFlagName, "", metricsHostURLFlagUsage)
}

func getParameters(cmd *cobra.Command) (*parameters, error) {
	configOpts, err := getConfigOpts(cmd)
	if err != nil {
		return nil, err
	}

	tracingProvider := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingProviderFlagName, tracingProviderEnvKey)
	if !tracing.IsExporterSupported(tracingProvider) {
		return nil, fmt.Errorf("unsupported tracing provider: %s", tracingProvider)
	}

	serviceName := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingServiceNameFlagName, tracingServiceNameEnvKey)
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	metricsProvider := cmdutils.GetUserSetOptionalVarFromString(cmd, metricsProviderFlagName, metricsProviderEnvKey)
	if metricsProvider != "" && metricsProvider != prometheusMetricsName {
		return nil, fmt.Errorf("unsupported metrics provider: %s", metricsProvider)
	}

	return &parameters{
		configOpts:      configOpts,
		logLevel:        cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey),
		tracingProvider: tracingProvider,
		serviceName:     serviceName,
		metricsProvider: metricsProvider,
		metricsHostURL:  cmdutils.GetUserSetOptionalVarFromString(cmd, metricsHostURLFlagName, metricsHostURLEnvKey),
	}, nil
}

func getConfigOpts(cmd *cobra.Command) ([]config.Opt, error) {
	var opts []config.Opt

	if env := cmdutils.GetUserSetOptionalVarFromString(cmd, environmentFlagName, environmentEnvKey); env != "" {
		environment, err := config.ParseEnvironment(env)
		if err != nil {
			return nil, err
		}

		opts = append(opts, config.WithEnvironment(environment))
	}

	if u := cmdutils.GetUserSetOptionalVarFromString(cmd, registrarURLFlagName, registrarURLEnvKey); u != "" {
		opts = append(opts, config.WithRegistrarURL(u))
	}

	if v := cmdutils.GetUserSetOptionalVarFromString(cmd, protocolVersionFlagName, protocolVersionEnvKey); v != "" {
		opts = append(opts, config.WithProtocolVersion(config.ProtocolVersion(v)))
	}

	if v := cmdutils.GetUserSetOptionalVarFromString(cmd, requestTimeoutFlagName, requestTimeoutEnvKey); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s [%s]: %w", requestTimeoutFlagName, v, err)
		}

		opts = append(opts, config.WithRequestTimeout(timeout))
	}

	if v := cmdutils.GetUserSetOptionalVarFromString(cmd, maxRetriesFlagName, maxRetriesEnvKey); v != "" {
		retries, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s [%s]: %w", maxRetriesFlagName, v, err)
		}

		opts = append(opts, config.WithMaxRetries(retries))
	}

	return opts, nil
}

/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package walletcmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/velocitycareerlabs/velocitycore-sub004/cmd/common"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/config"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/deeplink"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/exchange"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/model"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/observability/metrics"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/observability/metrics/noop"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/observability/metrics/prometheus"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/observability/tracing"
	exchangetracing "github.com/velocitycareerlabs/velocitycore-sub004/pkg/observability/tracing/wrappers/exchange"
)

var logger = log.New("vnf-wallet")

const (
	deepLinkFlagName        = "deeplink"
	serviceEndpointFlagName = "service-endpoint"
	issuerDIDFlagName       = "issuer-did"
	credentialTypeFlagName  = "credential-type"
	pushURLFlagName         = "push-url"
	pushTokenFlagName       = "push-token"
	progressURIFlagName     = "progress-uri"
	exchangeIDFlagName      = "exchange-id"
	sessionTokenFlagName    = "session-token"
)

// AddCommands adds the wallet commands and their shared flags to root.
func AddCommands(root *cobra.Command) {
	createFlags(root)

	root.AddCommand(
		newResolveDIDCmd(),
		newParseDeepLinkCmd(),
		newVerifyJWTCmd(),
		newCredentialTypesCmd(),
		newVerifiedProfileCmd(),
		newGetManifestCmd(),
		newGetPresentationRequestCmd(),
		newExchangeProgressCmd(),
	)
}

func newResolveDIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve-did <did>",
		Short: "Resolve a DID document through the registrar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, svc exchange.ServiceInterface) error {
				doc, err := svc.ResolveDID(ctx, args[0])
				if err != nil {
					return err
				}

				return printJSON(cmd, doc)
			})
		},
	}
}

type deepLinkOutput struct {
	Kind                deeplink.Kind `json:"kind"`
	RequestURI          string        `json:"requestUri"`
	DID                 string        `json:"did,omitempty"`
	VendorOriginContext string        `json:"vendorOriginContext,omitempty"`
}

func newParseDeepLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse-deeplink <deeplink>",
		Short: "Parse a wallet deep link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dl, err := deeplink.Parse(args[0])
			if err != nil {
				return err
			}

			id, _ := dl.DID()

			return printJSON(cmd, &deepLinkOutput{
				Kind:                dl.Kind(),
				RequestURI:          dl.RequestURI(),
				DID:                 id,
				VendorOriginContext: dl.VendorOriginContext(),
			})
		},
	}
}

type verifyJWTOutput struct {
	Issuer string `json:"iss,omitempty"`
	Kid    string `json:"kid"`
	DID    string `json:"did"`
}

func newVerifyJWTCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-jwt <jwt>",
		Short: "Verify a JWT signature against the key its kid points to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := jwt.Decode(args[0])
			if err != nil {
				return err
			}

			return withService(cmd, func(ctx context.Context, svc exchange.ServiceInterface) error {
				doc, err := svc.VerifyJWT(ctx, token)
				if err != nil {
					return err
				}

				return printJSON(cmd, &verifyJWTOutput{Issuer: token.Iss(), Kid: token.Kid(), DID: doc.ID})
			})
		},
	}
}

func newCredentialTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "credential-types",
		Short: "List the credential types known to the registrar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd, func(ctx context.Context, svc exchange.ServiceInterface) error {
				types, err := svc.GetCredentialTypes(ctx)
				if err != nil {
					return err
				}

				return printJSON(cmd, types)
			})
		},
	}
}

func newVerifiedProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verified-profile <did>",
		Short: "Fetch the verified profile of an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, svc exchange.ServiceInterface) error {
				profile, err := svc.GetVerifiedProfile(ctx, args[0])
				if err != nil {
					return err
				}

				return printJSON(cmd, json.RawMessage(profile.Payload()))
			})
		},
	}
}

type manifestOutput struct {
	IssuerID                 string `json:"issuerId"`
	IssuerName               string `json:"issuerName,omitempty"`
	ExchangeID               string `json:"exchangeId"`
	PresentationDefinitionID string `json:"presentationDefinitionId,omitempty"`
	ClientName               string `json:"clientName,omitempty"`
	CheckOffersURI           string `json:"checkOffersUri,omitempty"`
	FinalizeOffersURI        string `json:"finalizeOffersUri,omitempty"`
	SubmitPresentationURI    string `json:"submitPresentationUri,omitempty"`
	AuthTokenURI             string `json:"authTokenUri,omitempty"`
	VendorOriginContext      string `json:"vendorOriginContext,omitempty"`
}

func newGetManifestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-manifest",
		Short: "Fetch and verify a credential manifest",
		Long: "Fetches a credential manifest either through an issuing deep link or through an issuer's " +
			"service endpoint, and verifies it against the issuer's DID document and verified profile.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			descriptor, err := manifestDescriptor(cmd)
			if err != nil {
				return err
			}

			return withService(cmd, func(ctx context.Context, svc exchange.ServiceInterface) error {
				m, err := svc.GetCredentialManifest(ctx, descriptor)
				if err != nil {
					return err
				}

				return printJSON(cmd, &manifestOutput{
					IssuerID:                 m.IssuerID(),
					IssuerName:               m.VerifiedProfile().Name(),
					ExchangeID:               m.ExchangeID(),
					PresentationDefinitionID: m.PresentationDefinitionID(),
					ClientName:               m.ClientName(),
					CheckOffersURI:           m.CheckOffersURI(),
					FinalizeOffersURI:        m.FinalizeOffersURI(),
					SubmitPresentationURI:    m.SubmitPresentationURI(),
					AuthTokenURI:             m.AuthTokenURI(),
					VendorOriginContext:      m.VendorOriginContext(),
				})
			})
		},
	}

	cmd.Flags().String(deepLinkFlagName, "", "Issuing deep link.")
	cmd.Flags().String(serviceEndpointFlagName, "", "Issuer service endpoint, used when no deep link is given.")
	cmd.Flags().String(issuerDIDFlagName, "", "DID of the issuer behind the service endpoint.")
	cmd.Flags().StringSlice(credentialTypeFlagName, nil, "Credential types to request. Can be repeated.")
	addPushDelegateFlags(cmd)

	return cmd
}

func manifestDescriptor(cmd *cobra.Command) (*model.CredentialManifestDescriptor, error) {
	flags := cmd.Flags()

	link, _ := flags.GetString(deepLinkFlagName)
	endpoint, _ := flags.GetString(serviceEndpointFlagName)
	issuerDID, _ := flags.GetString(issuerDIDFlagName)
	types, _ := flags.GetStringSlice(credentialTypeFlagName)

	pd := pushDelegate(cmd)

	if link != "" {
		dl, err := deeplink.Parse(link)
		if err != nil {
			return nil, err
		}

		d := model.NewCredentialManifestDescriptorByDeepLink(dl, pd)
		d.CredentialTypes = types

		return d, nil
	}

	if endpoint == "" || issuerDID == "" {
		return nil, fmt.Errorf("either --%s or both --%s and --%s must be set",
			deepLinkFlagName, serviceEndpointFlagName, issuerDIDFlagName)
	}

	return model.NewCredentialManifestDescriptorByService(endpoint, issuerDID, types, pd), nil
}

type presentationRequestOutput struct {
	InspectorID              string `json:"inspectorId"`
	InspectorName            string `json:"inspectorName,omitempty"`
	ExchangeID               string `json:"exchangeId"`
	PresentationDefinitionID string `json:"presentationDefinitionId"`
	Purpose                  string `json:"purpose,omitempty"`
	ClientName               string `json:"clientName,omitempty"`
	SubmitPresentationURI    string `json:"submitPresentationUri"`
	ProgressURI              string `json:"progressUri,omitempty"`
	AuthTokenURI             string `json:"authTokenUri,omitempty"`
}

func newGetPresentationRequestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-presentation-request",
		Short: "Fetch and verify a presentation request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			link, _ := cmd.Flags().GetString(deepLinkFlagName)
			if link == "" {
				return fmt.Errorf("--%s must be set", deepLinkFlagName)
			}

			dl, err := deeplink.Parse(link)
			if err != nil {
				return err
			}

			descriptor := model.NewPresentationRequestDescriptor(dl, pushDelegate(cmd))

			return withService(cmd, func(ctx context.Context, svc exchange.ServiceInterface) error {
				r, err := svc.GetPresentationRequest(ctx, descriptor)
				if err != nil {
					return err
				}

				return printJSON(cmd, &presentationRequestOutput{
					InspectorID:              r.InspectorID(),
					InspectorName:            r.VerifiedProfile().Name(),
					ExchangeID:               r.ExchangeID(),
					PresentationDefinitionID: r.PresentationDefinitionID(),
					Purpose:                  r.Purpose(),
					ClientName:               r.ClientName(),
					SubmitPresentationURI:    r.SubmitPresentationURI(),
					ProgressURI:              r.ProgressURI(),
					AuthTokenURI:             r.AuthTokenURI(),
				})
			})
		},
	}

	cmd.Flags().String(deepLinkFlagName, "", "Inspection deep link.")
	addPushDelegateFlags(cmd)

	return cmd
}

func newExchangeProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exchange-progress",
		Short: "Poll the progress of a disclosure exchange",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()

			progressURI, _ := flags.GetString(progressURIFlagName)
			exchangeID, _ := flags.GetString(exchangeIDFlagName)
			sessionToken, _ := flags.GetString(sessionTokenFlagName)

			if progressURI == "" || exchangeID == "" {
				return fmt.Errorf("--%s and --%s must be set", progressURIFlagName, exchangeIDFlagName)
			}

			descriptor := &model.ExchangeDescriptor{
				ProgressURI:  progressURI,
				ExchangeID:   exchangeID,
				SessionToken: model.NewToken(sessionToken),
			}

			return withService(cmd, func(ctx context.Context, svc exchange.ServiceInterface) error {
				e, err := svc.GetExchangeProgress(ctx, descriptor)
				if err != nil {
					return err
				}

				return printJSON(cmd, e)
			})
		},
	}

	cmd.Flags().String(progressURIFlagName, "", "Progress URI of the presentation request.")
	cmd.Flags().String(exchangeIDFlagName, "", "Exchange ID.")
	cmd.Flags().String(sessionTokenFlagName, "", "Session token returned by the submission.")

	return cmd
}

func addPushDelegateFlags(cmd *cobra.Command) {
	cmd.Flags().String(pushURLFlagName, "", "Push delegate URL the agent sends exchange updates to.")
	cmd.Flags().String(pushTokenFlagName, "", "Token the agent presents to the push delegate.")
}

func pushDelegate(cmd *cobra.Command) *model.PushDelegate {
	pushURL, _ := cmd.Flags().GetString(pushURLFlagName)
	if pushURL == "" {
		return nil
	}

	pushToken, _ := cmd.Flags().GetString(pushTokenFlagName)

	return &model.PushDelegate{PushURL: pushURL, PushToken: pushToken}
}

// withService builds the traced exchange service from the command's flags and runs fn with it.
func withService(cmd *cobra.Command, fn func(ctx context.Context, svc exchange.ServiceInterface) error) error {
	params, err := getParameters(cmd)
	if err != nil {
		return err
	}

	common.SetLogLevel(logger, params.logLevel)

	cfg, err := config.New(params.configOpts...)
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	shutdownTracer, tracer, err := tracing.Initialize(params.tracingProvider, params.serviceName)
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}

	defer shutdownTracer()

	m, destroyMetrics, err := createMetrics(params)
	if err != nil {
		return err
	}

	defer destroyMetrics()

	svc := exchangetracing.Wrap(exchange.New(&exchange.Config{
		AppConfig: cfg,
		Metrics:   m,
	}), tracer)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return fn(ctx, svc)
}

func createMetrics(params *parameters) (metrics.Metrics, func(), error) {
	if params.metricsProvider != prometheusMetricsName {
		return noop.GetMetrics(), func() {}, nil
	}

	if params.metricsHostURL == "" {
		return nil, nil, errors.New("metrics host URL is required by the prometheus provider")
	}

	provider := prometheus.NewPrometheusProvider(prometheus.NewServer(params.metricsHostURL))

	if err := provider.Create(); err != nil {
		return nil, nil, fmt.Errorf("create metrics provider: %w", err)
	}

	return provider.Metrics(), func() {
		if err := provider.Destroy(); err != nil {
			logger.Warn("Failed to stop metrics provider", log.WithError(err))
		}
	}, nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

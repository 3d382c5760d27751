/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
)

// Logger used by the metrics providers.
var Logger = log.New("metrics-provider")

const (
	// Namespace of every metric.
	Namespace = "vnf_wallet"

	Transport             = "transport"
	TransportRequestTime  = "request_seconds"
	TransportRequestRetry = "request_retries_total"

	Resolution        = "did"
	ResolveDIDTime    = "resolve_seconds"
	Verification      = "verification"
	VerifyJWTTime     = "jwt_verify_seconds"
	RejectedCredCount = "rejected_credentials_total"

	Exchange                 = "exchange"
	CredentialManifestTime   = "get_credential_manifest_seconds"
	PresentationRequestTime  = "get_presentation_request_seconds"
	FinalizeOffersTime       = "finalize_offers_seconds"
	SubmitPresentationTime   = "submit_presentation_seconds"
	GenerateOffersTime       = "generate_offers_seconds"
	ExchangeProgressPollTime = "exchange_progress_seconds"
)

// Provider creates and destroys a metrics backend.
type Provider interface {
	Create() error
	Destroy() error
	Metrics() Metrics
}

// Metrics is the set of measurements the engine reports.
//
//nolint:interfacebloat
type Metrics interface {
	TransportRequestTime(value time.Duration)
	TransportRetry()
	ResolveDIDTime(value time.Duration)
	VerifyJWTTime(value time.Duration)
	CredentialRejected()
	CredentialManifestTime(value time.Duration)
	PresentationRequestTime(value time.Duration)
	GenerateOffersTime(value time.Duration)
	FinalizeOffersTime(value time.Duration)
	SubmitPresentationTime(value time.Duration)
	ExchangeProgressTime(value time.Duration)
}

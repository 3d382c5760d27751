/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"time"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/observability/metrics"
)

// NoMetrics discards every measurement.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

func (n *NoMetrics) TransportRequestTime(_ time.Duration)    {}
func (n *NoMetrics) TransportRetry()                         {}
func (n *NoMetrics) ResolveDIDTime(_ time.Duration)          {}
func (n *NoMetrics) VerifyJWTTime(_ time.Duration)           {}
func (n *NoMetrics) CredentialRejected()                     {}
func (n *NoMetrics) CredentialManifestTime(_ time.Duration)  {}
func (n *NoMetrics) PresentationRequestTime(_ time.Duration) {}
func (n *NoMetrics) GenerateOffersTime(_ time.Duration)      {}
func (n *NoMetrics) FinalizeOffersTime(_ time.Duration)      {}
func (n *NoMetrics) SubmitPresentationTime(_ time.Duration)  {}
func (n *NoMetrics) ExchangeProgressTime(_ time.Duration)    {}

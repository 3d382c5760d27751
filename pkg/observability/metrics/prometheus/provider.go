/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct {
	httpServer *http.Server
}

// NewPrometheusProvider creates a metrics provider serving /metrics from httpServer (may be nil).
func NewPrometheusProvider(httpServer *http.Server) metrics.Provider {
	return &promProvider{httpServer: httpServer}
}

// Create starts the metrics HTTP server in the background.
func (pp *promProvider) Create() error {
	if pp.httpServer == nil {
		return nil
	}

	go func() {
		if err := pp.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics HTTP server stopped", log.WithError(err))
		}
	}()

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy stops the metrics HTTP server.
func (pp *promProvider) Destroy() error {
	if pp.httpServer == nil {
		return nil
	}

	if err := pp.httpServer.Shutdown(context.Background()); err != nil {
		return fmt.Errorf("shutdown metrics HTTP server: %w", err)
	}

	return nil
}

// GetMetrics returns the process-wide Prometheus metrics, registering them on first use.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics holds the engine's Prometheus collectors.
type PromMetrics struct {
	transportRequestTime    prometheus.Histogram
	transportRetries        prometheus.Counter
	resolveDIDTime          prometheus.Histogram
	verifyJWTTime           prometheus.Histogram
	rejectedCredentials     prometheus.Counter
	credentialManifestTime  prometheus.Histogram
	presentationRequestTime prometheus.Histogram
	generateOffersTime      prometheus.Histogram
	finalizeOffersTime      prometheus.Histogram
	submitPresentationTime  prometheus.Histogram
	exchangeProgressTime    prometheus.Histogram
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *PromMetrics {
	pm := &PromMetrics{
		transportRequestTime: newHistogram(metrics.Transport, metrics.TransportRequestTime,
			"The time (in seconds) it takes to complete a request, retries included."),
		transportRetries: newCounter(metrics.Transport, metrics.TransportRequestRetry,
			"The number of retried requests."),
		resolveDIDTime: newHistogram(metrics.Resolution, metrics.ResolveDIDTime,
			"The time (in seconds) it takes to resolve a DID document."),
		verifyJWTTime: newHistogram(metrics.Verification, metrics.VerifyJWTTime,
			"The time (in seconds) it takes to verify a JWT against its issuer key."),
		rejectedCredentials: newCounter(metrics.Verification, metrics.RejectedCredCount,
			"The number of finalized credentials that failed verification."),
		credentialManifestTime: newHistogram(metrics.Exchange, metrics.CredentialManifestTime,
			"The time (in seconds) it takes to acquire and verify a credential manifest."),
		presentationRequestTime: newHistogram(metrics.Exchange, metrics.PresentationRequestTime,
			"The time (in seconds) it takes to acquire and verify a presentation request."),
		generateOffersTime: newHistogram(metrics.Exchange, metrics.GenerateOffersTime,
			"The time (in seconds) it takes to generate offers."),
		finalizeOffersTime: newHistogram(metrics.Exchange, metrics.FinalizeOffersTime,
			"The time (in seconds) it takes to finalize offers and verify the issued credentials."),
		submitPresentationTime: newHistogram(metrics.Exchange, metrics.SubmitPresentationTime,
			"The time (in seconds) it takes to sign and submit a presentation."),
		exchangeProgressTime: newHistogram(metrics.Exchange, metrics.ExchangeProgressPollTime,
			"The time (in seconds) it takes to poll exchange progress."),
	}

	prometheus.MustRegister(
		pm.transportRequestTime, pm.transportRetries, pm.resolveDIDTime, pm.verifyJWTTime,
		pm.rejectedCredentials, pm.credentialManifestTime, pm.presentationRequestTime,
		pm.generateOffersTime, pm.finalizeOffersTime, pm.submitPresentationTime, pm.exchangeProgressTime,
	)

	return pm
}

func (pm *PromMetrics) TransportRequestTime(value time.Duration) {
	pm.transportRequestTime.Observe(value.Seconds())
}

func (pm *PromMetrics) TransportRetry() {
	pm.transportRetries.Inc()
}

func (pm *PromMetrics) ResolveDIDTime(value time.Duration) {
	pm.resolveDIDTime.Observe(value.Seconds())

	logger.Debug("resolve DID time", log.WithDuration(value))
}

func (pm *PromMetrics) VerifyJWTTime(value time.Duration) {
	pm.verifyJWTTime.Observe(value.Seconds())

	logger.Debug("verify JWT time", log.WithDuration(value))
}

func (pm *PromMetrics) CredentialRejected() {
	pm.rejectedCredentials.Inc()
}

func (pm *PromMetrics) CredentialManifestTime(value time.Duration) {
	pm.credentialManifestTime.Observe(value.Seconds())
}

func (pm *PromMetrics) PresentationRequestTime(value time.Duration) {
	pm.presentationRequestTime.Observe(value.Seconds())
}

func (pm *PromMetrics) GenerateOffersTime(value time.Duration) {
	pm.generateOffersTime.Observe(value.Seconds())
}

func (pm *PromMetrics) FinalizeOffersTime(value time.Duration) {
	pm.finalizeOffersTime.Observe(value.Seconds())

	logger.Debug("finalize offers time", log.WithDuration(value))
}

func (pm *PromMetrics) SubmitPresentationTime(value time.Duration) {
	pm.submitPresentationTime.Observe(value.Seconds())

	logger.Debug("submit presentation time", log.WithDuration(value))
}

func (pm *PromMetrics) ExchangeProgressTime(value time.Duration) {
	pm.exchangeProgressTime.Observe(value.Seconds())
}

func newCounter(subsystem, name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	})
}

func newHistogram(subsystem, name, help string) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	})
}

package httpclient

import (
	"net/http"
	"time"

	"freight-emissions/internal/core/logger"
	"freight-emissions/internal/core/metrics"
	"freight-emissions/internal/core/proxy"

	"go.uber.org/zap"
)

// LoggingRoundTripper logs and meters every outbound request.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and records its outcome.
// Only scheme, host and path are logged; query strings may carry API keys.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	host := req.URL.Host
	target := req.URL.Scheme + "://" + host + req.URL.Path

	logger.Get().Debug("HTTP Request Started",
		zap.String("method", req.Method),
		zap.String("url", target),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)
	metrics.HTTPDuration.WithLabelValues(host).Observe(duration.Seconds())

	if err != nil {
		metrics.HTTPRequests.WithLabelValues(host, metrics.OutcomeFailure).Inc()
		logger.Get().Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", target),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	outcome := metrics.OutcomeSuccess
	if resp.StatusCode >= http.StatusBadRequest {
		outcome = metrics.OutcomeFailure
	}
	metrics.HTTPRequests.WithLabelValues(host, outcome).Inc()

	logger.Get().Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", target),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client with logging middleware, routed through the proxy when one is configured.
func NewClient(timeout time.Duration, proxySettings proxy.Settings) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if u := proxySettings.URL(); u != nil {
		transport.Proxy = http.ProxyURL(u)
		logger.Get().Debug("Outbound proxy configured", zap.String("proxy", proxySettings.HostPort()))
	}

	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: transport,
		},
		Timeout: timeout,
	}
}

// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"errors"

	autherror "github.com/Brunera17/TCC/internal/errors"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	LoginAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_login_attempts_total",
		Help: "Login attempts by outcome.",
	}, []string{"outcome"})

	TokenVerifications = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_token_verifications_total",
		Help: "Token verifications by token kind and result.",
	}, []string{"kind", "result"})

	ProposalValidations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "proposal_validations_total",
		Help: "Proposal validations by verdict.",
	}, []string{"valid"})

	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

// Register adds every collector to reg.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		LoginAttempts, TokenVerifications, ProposalValidations, HTTPRequests, HTTPRequestDuration,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Outcome maps an auth error to a low-cardinality label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, autherror.ErrAccountLocked):
		return "locked"
	case errors.Is(err, autherror.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, autherror.ErrTokenExpired):
		return "expired"
	case errors.Is(err, autherror.ErrTokenRevoked):
		return "revoked"
	case errors.Is(err, autherror.ErrTokenInvalid):
		return "invalid"
	default:
		return "error"
	}
}

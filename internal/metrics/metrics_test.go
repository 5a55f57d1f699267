package metrics

import (
	"errors"
	"testing"

	autherror "github.com/Brunera17/TCC/internal/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, "success", Outcome(nil))
	assert.Equal(t, "locked", Outcome(autherror.ErrAccountLocked))
	assert.Equal(t, "invalid_credentials", Outcome(autherror.ErrInvalidCredentials))
	assert.Equal(t, "expired", Outcome(autherror.ErrTokenExpired))
	assert.Equal(t, "revoked", Outcome(autherror.ErrTokenRevoked))
	assert.Equal(t, "invalid", Outcome(autherror.ErrTokenInvalid))
	assert.Equal(t, "error", Outcome(errors.New("boom")))
}

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, Register(reg))
	assert.Error(t, Register(reg), "double registration must fail")

	before := testutil.ToFloat64(LoginAttempts.WithLabelValues("success"))
	LoginAttempts.WithLabelValues("success").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(LoginAttempts.WithLabelValues("success")))
}

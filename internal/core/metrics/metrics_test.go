package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeSuccess, Outcome(nil))
	assert.Equal(t, OutcomeFailure, Outcome(errors.New("boom")))
}

func TestLegResults_Increment(t *testing.T) {
	before := testutil.ToFloat64(LegResults.WithLabelValues("road", OutcomeSuccess))
	LegResults.WithLabelValues("road", OutcomeSuccess).Inc()
	after := testutil.ToFloat64(LegResults.WithLabelValues("road", OutcomeSuccess))

	assert.Equal(t, before+1, after)
}

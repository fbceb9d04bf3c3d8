package campussdk

import (
	"context"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/campus/pkg/sessionstore/drivers/memory"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	fail := make(chan bool, 2)
	fail <- false
	fail <- true

	client := newTestClient(t, memory.NewStore(), func(w http.ResponseWriter, _ *http.Request) {
		if <-fail {
			htmlReply(http.StatusBadGateway)(w, nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	}, WithMetrics(reg))
	ctx := context.Background()

	require.True(t, client.ListActivities(ctx).Success)
	require.False(t, client.ListActivities(ctx).Success)

	m := client.metrics
	require.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, outcomeOK)), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, string(KindBackendUnavailable))), 0)
	require.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

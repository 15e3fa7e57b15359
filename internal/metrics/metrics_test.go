package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypernet/network"
	"github.com/katalvlaran/hypernet/projection"
)

func sampleResult(t *testing.T) projection.Result {
	t.Helper()
	n := network.New("bipartite", network.KindBipartite)
	n.AddVertex(1, "a")
	n.AddVertex(2, "Hyperedge 1")
	n.AddState(0, 1)
	require.NoError(t, n.AddLink(1, 2, 0.5))
	require.NoError(t, n.AddLink(2, 1, 1))
	n.Drop()
	return projection.Result{Kind: projection.KindBipartite, Network: n, Duration: 3 * time.Millisecond}
}

func TestObserve(t *testing.T) {
	m := New()
	r := sampleResult(t)
	m.Observe(r)
	m.Observe(r)

	kind := projection.KindBipartite.String()
	assert.Equal(t, 4.0, testutil.ToFloat64(m.linksEmitted.WithLabelValues(kind)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.linksDropped.WithLabelValues(kind)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.vertices.WithLabelValues(kind)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.states.WithLabelValues(kind)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
	assert.Equal(t, 0, testutil.CollectAndCount(m.failures))
}

func TestObserve_Failure(t *testing.T) {
	m := New()
	m.Observe(projection.Result{Kind: projection.KindUnipartite, Err: errors.New("boom")})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("unipartite")))
	assert.Equal(t, 0, testutil.CollectAndCount(m.linksEmitted))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Observe(projection.Result{})
		m.ObservePhase("parse", 1)
	})
	assert.NoError(t, m.WriteTextfile("ignored"))
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.Observe(sampleResult(t))
	m.ObservePhase("parse", 0.25)

	path := filepath.Join(t.TempDir(), "hypernet.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `hypernet_links_emitted_total{projection="bipartite"} 2`)
	assert.Contains(t, out, `hypernet_phase_duration_seconds{phase="parse"} 0.25`)
	assert.Contains(t, out, "hypernet_projection_duration_seconds_bucket")
}

package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	assert.Nil(t, parseTag(nil))
	assert.Equal(t, []string{"state:settled", "reason:n/a"}, parseTag([]string{"state", "settled", "reason", TagValueNA}))
	assert.Panics(t, func() { parseTag([]string{"odd"}) })
}

func TestNewWithoutAgent(t *testing.T) {
	m := New("escrow.test", WithoutPodName(), WithSampleRate(0.5))
	require.NotPanics(t, func() {
		m.BumpSum("purchase.settled", 1, "state", "settled")
		m.BumpAvg("purchase.legs", 3)
		m.BumpHistogram("purchase.amount", 10000)
		m.BumpTime("purchase.resolve.time").End()
	})
	_, ok := ddClients[0].(*LogClient)
	assert.True(t, ok)
	assert.Equal(t, 0.5, m.(*Metrics).sampleRate())
}

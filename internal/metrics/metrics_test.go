package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGaugesAreRegistered(t *testing.T) {
	SealThroughput.WithLabelValues("128", "fbk32").Set(1234)
	OpenThroughput.WithLabelValues("128", "fbk32").Set(5678)

	families, err := Registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	require.True(t, names["tinyjambu_seal_bytes_per_second"])
	require.True(t, names["tinyjambu_open_bytes_per_second"])
}

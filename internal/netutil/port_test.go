package netutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFreeTCPPort(t *testing.T) {
	t.Parallel()

	port, err := FreeTCPPort()

	require.NoError(t, err)
	require.Greater(t, port, 0)
	require.LessOrEqual(t, port, 65535)
}

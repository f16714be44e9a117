package descriptor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseProxyTarget(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		input   string
		want    ProxyTarget
		wantErr string
	}{
		{
			name:  "tcp port",
			input: ":23232",
			want:  ProxyTarget{Port: 23232},
		},
		{
			name:  "lowest valid port",
			input: ":1",
			want:  ProxyTarget{Port: 1},
		},
		{
			name:  "unix socket without leading slash",
			input: "unix/tmp/app.sock",
			want:  ProxyTarget{SocketPath: "/tmp/app.sock"},
		},
		{
			name:  "unix socket with leading slash",
			input: "unix//tmp/app.sock",
			want:  ProxyTarget{SocketPath: "/tmp/app.sock"},
		},
		{
			name:    "empty unix path",
			input:   "unix/",
			wantErr: "empty socket path",
		},
		{
			name:    "port zero",
			input:   ":0",
			wantErr: "outside the valid range",
		},
		{
			name:    "port too large",
			input:   ":70000",
			wantErr: "outside the valid range",
		},
		{
			name:    "non-numeric port",
			input:   ":http",
			wantErr: "invalid port",
		},
		{
			name:    "host present",
			input:   "localhost:8080",
			wantErr: "must start with",
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: "must start with",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseProxyTarget(tc.input)

			if tc.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ParseProxyTarget(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestProxyTarget_String(t *testing.T) {
	t.Parallel()

	// String must round-trip whatever Parse accepted.
	for _, input := range []string{":23232", "unix/tmp/app.sock"} {
		target, err := ParseProxyTarget(input)
		require.NoError(t, err)
		require.Equal(t, input, target.String())
	}

	require.Equal(t, ":8080", TCPTarget(8080))
}

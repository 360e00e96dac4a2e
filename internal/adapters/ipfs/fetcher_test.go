package ipfs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobintsev/evmcrispr/internal/domain"
)

const votingArtifact = `{
  "appName": "voting.aragonpm.eth",
  "roles": [{"name": "Create new votes", "id": "CREATE_VOTES_ROLE", "params": []}],
  "abi": [{"type":"function","name":"initialize","inputs":[{"name":"_token","type":"address"},{"name":"_support","type":"uint64"}],"outputs":[],"stateMutability":"nonpayable"}]
}`

func TestFetcher_URL(t *testing.T) {
	f := NewFetcher("https://gw.test/ipfs")

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "ipfs:QmAbc", want: "https://gw.test/ipfs/QmAbc/artifact.json"},
		{in: "QmAbc", want: "https://gw.test/ipfs/QmAbc/artifact.json"},
		{in: "ipfs:", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := f.URL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ipfs/QmVoting/artifact.json":
			_, _ = w.Write([]byte(votingArtifact))
		case "/ipfs/QmBroken/artifact.json":
			_, _ = w.Write([]byte(`{"appName":`))
		case "/ipfs/QmDown/artifact.json":
			w.WriteHeader(http.StatusBadGateway)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL + "/ipfs/")
	ctx := context.Background()

	artifact, err := f.Fetch(ctx, "ipfs:QmVoting")
	require.NoError(t, err)
	assert.Equal(t, "voting.aragonpm.eth", artifact.AppName)
	_, ok := artifact.ABI.Methods["initialize"]
	assert.True(t, ok)
	role, ok := artifact.RoleByName("CREATE_VOTES_ROLE")
	require.True(t, ok)
	assert.NotEqual(t, [32]byte{}, [32]byte(role.Bytes))

	_, err = f.Fetch(ctx, "ipfs:QmMissing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = f.Fetch(ctx, "ipfs:QmDown")
	assert.True(t, errors.Is(err, domain.ErrException))

	_, err = f.Fetch(ctx, "ipfs:QmBroken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid artifact ipfs:QmBroken")
}

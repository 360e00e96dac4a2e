package subgraph

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobintsev/evmcrispr/internal/domain"
)

func newTestServer(t *testing.T, handler func(req graphQLRequest) string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req graphQLRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		_, _ = w.Write([]byte(handler(req)))
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(1, srv.URL)
	require.NoError(t, err)
	return c
}

func TestNewClient(t *testing.T) {
	c, err := NewClient(100, "")
	require.NoError(t, err)
	assert.Equal(t, "https://api.thegraph.com/subgraphs/name/1hive/aragon-xdai", c.url)

	_, err = NewClient(5, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrException))
	assert.Contains(t, err.Error(), "Network 5 not supported. Use 1, 4, 100 or 137.")

	c, err = NewClient(5, "http://custom")
	require.NoError(t, err)
	assert.Equal(t, "http://custom", c.url)
}

func TestClient_Repo(t *testing.T) {
	c := newTestServer(t, func(req graphQLRequest) string {
		assert.Equal(t, "voting", req.Variables["name"])
		return `{"data":{"repos":[
			{"name":"voting","address":"0x1111111111111111111111111111111111111111","registry":{"name":"open.aragonpm.eth"},
			 "lastVersion":{"semanticVersion":"1,0,0","codeAddress":"0x0000000000000000000000000000000000000001","contentUri":"ipfs:QmOld"}},
			{"name":"voting","address":"0x2222222222222222222222222222222222222222","registry":{"name":"aragonpm.eth"},
			 "lastVersion":{"semanticVersion":"2,1,0","codeAddress":"0x0000000000000000000000000000000000000002","contentUri":"ipfs:QmNew"}}
		]}}`
	})

	repo, err := c.Repo(context.Background(), "voting", "aragonpm.eth")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x2222222222222222222222222222222222222222"), repo.Address)
	assert.Equal(t, "aragonpm.eth", repo.RegistryName)
	assert.Equal(t, common.HexToAddress("0x2"), repo.LastVersion.CodeAddress)
	assert.Equal(t, "ipfs:QmNew", repo.LastVersion.ContentURI)

	_, err = c.Repo(context.Background(), "voting", "hatch.aragonpm.eth")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Contains(t, err.Error(), "Repo voting.hatch.aragonpm.eth not found")
}

func TestClient_OrganizationApps(t *testing.T) {
	t.Run("parses apps and roles", func(t *testing.T) {
		c := newTestServer(t, func(req graphQLRequest) string {
			assert.Equal(t, "0x00000000000000000000000000000000000000da", req.Variables["id"])
			return `{"data":{"organization":{"apps":[{
				"address":"0x00000000000000000000000000000000000000a1",
				"appId":"0x9fa3927f639745e587912d4b0fea7ef9013bf93fb907d29faeab57417ba6e1d4",
				"repoName":"voting",
				"implementation":{"address":"0x00000000000000000000000000000000000000c0"},
				"repo":{"name":"voting","registry":{"name":"aragonpm.eth"}},
				"version":{"codeAddress":"0x00000000000000000000000000000000000000c1","contentUri":"ipfs:QmVoting"},
				"roles":[{"roleHash":"0x01","manager":"0x00000000000000000000000000000000000000ee","grantees":[{"granteeAddress":"0x00000000000000000000000000000000000000f1"}]}]
			}]}}}`
		})

		apps, err := c.OrganizationApps(context.Background(), common.HexToAddress("0xDA"))
		require.NoError(t, err)
		require.Len(t, apps, 1)

		app := apps[0]
		assert.Equal(t, "voting", app.Name)
		assert.Equal(t, "aragonpm.eth", app.RegistryName)
		assert.Equal(t, common.HexToAddress("0xc1"), app.CodeAddress)
		assert.Equal(t, "ipfs:QmVoting", app.ContentURI)
		require.Len(t, app.Roles, 1)
		assert.Equal(t, common.HexToHash("0x01"), app.Roles[0].RoleHash)
		assert.Equal(t, common.HexToAddress("0xee"), app.Roles[0].Manager)
		assert.Equal(t, []common.Address{common.HexToAddress("0xf1")}, app.Roles[0].Grantees)
	})

	t.Run("missing organization", func(t *testing.T) {
		c := newTestServer(t, func(graphQLRequest) string {
			return `{"data":{"organization":null}}`
		})

		_, err := c.OrganizationApps(context.Background(), common.HexToAddress("0xDA"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Contains(t, err.Error(), "Organization apps not found")
	})

	t.Run("graphql errors", func(t *testing.T) {
		c := newTestServer(t, func(graphQLRequest) string {
			return `{"data":null,"errors":[{"message":"indexing error"}]}`
		})

		_, err := c.OrganizationApps(context.Background(), common.HexToAddress("0xDA"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrException))
		assert.Contains(t, err.Error(), "An error happened while querying subgraph: indexing error")
	})

	malformed := []struct {
		name string
		body string
		want string
	}{
		{name: "invalid json", body: `{"data":`, want: "failed to decode subgraph response"},
		{name: "unexpected data shape", body: `{"data":{"organization":"nope"}}`, want: "failed to decode subgraph response data"},
	}
	for _, tt := range malformed {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestServer(t, func(graphQLRequest) string { return tt.body })

			_, err := c.OrganizationApps(context.Background(), common.HexToAddress("0xDA"))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrException))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

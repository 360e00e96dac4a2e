package subgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"

	"github.com/lobintsev/evmcrispr/internal/domain"
	"github.com/lobintsev/evmcrispr/internal/domain/config"
	"github.com/lobintsev/evmcrispr/internal/modules/aragonos"
)

const repoQuery = `query Repos($name: String!) {
  repos(where: {name: $name}) {
    name
    address
    registry { name }
    lastVersion { semanticVersion codeAddress contentUri }
  }
}`

const organizationAppsQuery = `query OrganizationApps($id: ID!) {
  organization(id: $id) {
    apps {
      address
      appId
      repoName
      implementation { address }
      repo { name registry { name } }
      version { codeAddress contentUri }
      roles {
        roleHash
        manager
        grantees { granteeAddress }
      }
    }
  }
}`

// Client queries an Aragon subgraph over GraphQL
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a client for the given chain. An explicit subgraph URL
// takes precedence over the built-in network table.
func NewClient(chainID uint64, subgraphURL string) (*Client, error) {
	if subgraphURL == "" {
		network, ok := domain.LookupNetwork(chainID)
		if !ok {
			return nil, domain.NewException(nil, "Network %d not supported. Use %s.", chainID, supportedChains())
		}
		subgraphURL = network.SubgraphURL
	}

	return &Client{
		url: subgraphURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// NewClientFromConfig creates a client for the configured network
func NewClientFromConfig(cfg *config.RuntimeConfig) (*Client, error) {
	return NewClient(cfg.Network.ChainID, cfg.Network.SubgraphURL)
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

func (c *Client) query(ctx context.Context, query string, variables map[string]any, out any) error {
	payload, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewException(err, "An error happened while querying subgraph")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewException(err, "failed to read subgraph response")
	}

	if resp.StatusCode != http.StatusOK {
		return domain.NewException(nil, "An error happened while querying subgraph: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result graphQLResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return domain.NewException(err, "failed to decode subgraph response")
	}

	if len(result.Errors) > 0 {
		return domain.NewException(nil, "An error happened while querying subgraph: %s", result.Errors[0].Message)
	}

	if err := json.Unmarshal(result.Data, out); err != nil {
		return domain.NewException(err, "failed to decode subgraph response data")
	}
	return nil
}

type rawVersion struct {
	SemanticVersion string `json:"semanticVersion"`
	CodeAddress     string `json:"codeAddress"`
	ContentURI      string `json:"contentUri"`
}

type rawRegistry struct {
	Name string `json:"name"`
}

type rawRepo struct {
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Registry    rawRegistry `json:"registry"`
	LastVersion *rawVersion `json:"lastVersion"`
}

// Repo fetches an APM repo by name within a registry (e.g. "voting",
// "aragonpm.eth").
func (c *Client) Repo(ctx context.Context, name, registry string) (*domain.Repo, error) {
	var data struct {
		Repos []rawRepo `json:"repos"`
	}
	if err := c.query(ctx, repoQuery, map[string]any{"name": name}, &data); err != nil {
		return nil, err
	}

	repo, ok := lo.Find(data.Repos, func(r rawRepo) bool {
		return r.Registry.Name == registry
	})
	if !ok {
		return nil, domain.NewNotFoundError("Repo %s.%s not found", name, registry)
	}

	out := &domain.Repo{
		Name:         repo.Name,
		RegistryName: repo.Registry.Name,
		Address:      common.HexToAddress(repo.Address),
	}
	if repo.LastVersion != nil {
		out.LastVersion = domain.RepoVersion{
			Version:     repo.LastVersion.SemanticVersion,
			CodeAddress: common.HexToAddress(repo.LastVersion.CodeAddress),
			ContentURI:  repo.LastVersion.ContentURI,
		}
	}
	return out, nil
}

type rawGrantee struct {
	GranteeAddress string `json:"granteeAddress"`
}

type rawRole struct {
	RoleHash string       `json:"roleHash"`
	Manager  string       `json:"manager"`
	Grantees []rawGrantee `json:"grantees"`
}

type rawApp struct {
	Address        string `json:"address"`
	AppID          string `json:"appId"`
	RepoName       string `json:"repoName"`
	Implementation *struct {
		Address string `json:"address"`
	} `json:"implementation"`
	Repo *struct {
		Name     string      `json:"name"`
		Registry rawRegistry `json:"registry"`
	} `json:"repo"`
	Version *rawVersion `json:"version"`
	Roles   []rawRole   `json:"roles"`
}

// OrganizationApps fetches every app installed on a DAO.
func (c *Client) OrganizationApps(ctx context.Context, dao common.Address) ([]domain.OrganizationApp, error) {
	var data struct {
		Organization *struct {
			Apps []rawApp `json:"apps"`
		} `json:"organization"`
	}
	id := strings.ToLower(dao.Hex())
	if err := c.query(ctx, organizationAppsQuery, map[string]any{"id": id}, &data); err != nil {
		return nil, err
	}

	if data.Organization == nil || data.Organization.Apps == nil {
		return nil, domain.NewNotFoundError("Organization apps not found")
	}

	return lo.Map(data.Organization.Apps, func(a rawApp, _ int) domain.OrganizationApp {
		return parseApp(a)
	}), nil
}

func parseApp(a rawApp) domain.OrganizationApp {
	app := domain.OrganizationApp{
		Address: common.HexToAddress(a.Address),
		AppID:   common.HexToHash(a.AppID),
		Name:    a.RepoName,
	}
	if a.Repo != nil {
		app.Name = a.Repo.Name
		app.RegistryName = a.Repo.Registry.Name
	}
	if app.Name != "" && app.RegistryName == "" {
		app.RegistryName = domain.DefaultRegistry
	}
	if a.Implementation != nil {
		app.CodeAddress = common.HexToAddress(a.Implementation.Address)
	}
	if a.Version != nil {
		if a.Version.CodeAddress != "" {
			app.CodeAddress = common.HexToAddress(a.Version.CodeAddress)
		}
		app.ContentURI = a.Version.ContentURI
	}
	app.Roles = lo.Map(a.Roles, func(r rawRole, _ int) domain.RoleGrant {
		return domain.RoleGrant{
			RoleHash: common.HexToHash(r.RoleHash),
			Manager:  common.HexToAddress(r.Manager),
			Grantees: lo.Map(r.Grantees, func(g rawGrantee, _ int) common.Address {
				return common.HexToAddress(g.GranteeAddress)
			}),
		}
	})
	return app
}

func supportedChains() string {
	ids := lo.Map(domain.Networks(), func(n domain.Network, _ int) string {
		return fmt.Sprint(n.ChainID)
	})
	if len(ids) < 2 {
		return strings.Join(ids, "")
	}
	return strings.Join(ids[:len(ids)-1], ", ") + " or " + ids[len(ids)-1]
}

var _ aragonos.RegistryClient = (*Client)(nil)

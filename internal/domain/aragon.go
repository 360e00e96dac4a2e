package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// DefaultRegistry is the APM registry used when an identifier names none.
const DefaultRegistry = "aragonpm.eth"

// Role is a permission role declared in an app artifact.
type Role struct {
	Name   string      `json:"name"`
	ID     string      `json:"id"`
	Params []string    `json:"params,omitempty"`
	Bytes  common.Hash `json:"bytes"`
}

// Artifact is an app's interface descriptor plus its declared roles.
type Artifact struct {
	AppName string
	ABI     abi.ABI
	Roles   []Role
}

// RoleByName looks a role up by its symbolic id (CREATE_VOTES_ROLE).
func (a *Artifact) RoleByName(name string) (Role, bool) {
	return FindRole(a.Roles, name)
}

// FindRole looks a role up by id, falling back to its display name.
func FindRole(roles []Role, name string) (Role, bool) {
	for _, r := range roles {
		if r.ID == name {
			return r, true
		}
	}
	for _, r := range roles {
		if r.Name == name {
			return r, true
		}
	}
	return Role{}, false
}

type artifactJSON struct {
	AppName string          `json:"appName"`
	ABI     json.RawMessage `json:"abi"`
	Roles   []Role          `json:"roles"`
}

// ParseArtifact decodes an artifact.json document. Roles without an explicit
// hash get keccak256(id).
func ParseArtifact(data []byte) (*Artifact, error) {
	var raw artifactJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode artifact: %w", err)
	}
	if len(raw.ABI) == 0 {
		return nil, fmt.Errorf("artifact has no abi")
	}
	parsed, err := abi.JSON(strings.NewReader(string(raw.ABI)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse artifact abi: %w", err)
	}
	for i, r := range raw.Roles {
		if r.ID == "" {
			raw.Roles[i].ID = r.Name
		}
		if r.Bytes == (common.Hash{}) {
			raw.Roles[i].Bytes = crypto.Keccak256Hash([]byte(raw.Roles[i].ID))
		}
	}
	return &Artifact{AppName: raw.AppName, ABI: parsed, Roles: raw.Roles}, nil
}

// AppPermission is the state of one role on an app.
type AppPermission struct {
	Manager  common.Address
	Grantees map[common.Address]struct{}
}

// App is an installed (or about to be installed) app instance of a DAO.
type App struct {
	Identifier   string
	Name         string
	RegistryName string
	Address      common.Address
	CodeAddress  common.Address
	ContentURI   string
	ABI          *abi.ABI
	Roles        []Role
	Permissions  map[common.Hash]*AppPermission
}

// NewAppPermissions builds the permission set of an app from its roles. Every
// role starts with no manager and no grantees.
func NewAppPermissions(roles []Role) map[common.Hash]*AppPermission {
	perms := make(map[common.Hash]*AppPermission, len(roles))
	for _, r := range roles {
		perms[r.Bytes] = &AppPermission{Grantees: map[common.Address]struct{}{}}
	}
	return perms
}

// Permission is a (grantee, app, role, manager) request as written in a
// script. Role is a symbolic name or a 32-byte hex hash.
type Permission struct {
	Grantee string
	App     string
	Role    string
	Manager string
}

// RepoVersion is one published version of an APM repo.
type RepoVersion struct {
	Version     string
	CodeAddress common.Address
	ContentURI  string
}

// Repo is an APM repository as reported by the registry query client.
type Repo struct {
	Name         string
	RegistryName string
	Address      common.Address
	LastVersion  RepoVersion
}

// RoleGrant is the on-chain state of a role as reported for an org app.
type RoleGrant struct {
	RoleHash common.Hash
	Manager  common.Address
	Grantees []common.Address
}

// OrganizationApp is app metadata as reported by the registry query client.
type OrganizationApp struct {
	Address      common.Address
	AppID        common.Hash
	Name         string
	RegistryName string
	CodeAddress  common.Address
	ContentURI   string
	Roles        []RoleGrant
}

// Namehash implements the ENS name hashing algorithm (EIP-137).
func Namehash(name string) common.Hash {
	var node common.Hash
	if name == "" {
		return node
	}
	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		label := crypto.Keccak256([]byte(labels[i]))
		node = crypto.Keccak256Hash(node.Bytes(), label)
	}
	return node
}

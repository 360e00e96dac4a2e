package aragonos

import (
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/lobintsev/evmcrispr/internal/adapters/abi/bindings"
	"github.com/lobintsev/evmcrispr/internal/domain"
)

// Kernel and ACL are part of every DAO and ship no artifact, so their
// descriptors are built from the bundled bindings.
const (
	kernelAppName = "kernel"
	aclAppName    = "acl"
)

func systemRole(name string) domain.Role {
	h := crypto.Keccak256Hash([]byte(name))
	return domain.Role{Name: name, ID: name, Bytes: h}
}

func systemArtifact(name string) (*domain.Artifact, bool) {
	switch name {
	case kernelAppName:
		parsed, err := bindings.KernelMetaData.ParseABI()
		if err != nil {
			return nil, false
		}
		return &domain.Artifact{
			AppName: kernelAppName,
			ABI:     *parsed,
			Roles:   []domain.Role{systemRole("APP_MANAGER_ROLE")},
		}, true
	case aclAppName:
		parsed, err := bindings.ACLMetaData.ParseABI()
		if err != nil {
			return nil, false
		}
		return &domain.Artifact{
			AppName: aclAppName,
			ABI:     *parsed,
			Roles:   []domain.Role{systemRole("CREATE_PERMISSIONS_ROLE")},
		}, true
	}
	return nil, false
}

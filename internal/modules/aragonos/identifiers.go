package aragonos

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lobintsev/evmcrispr/internal/domain"
)

const registrySuffix = "." + domain.DefaultRegistry

var (
	appIdentifierRegex   = regexp.MustCompile(`^([a-z0-9]+(?:-[a-z0-9]+)*)(?:\.([a-z0-9]+(?:-[a-z0-9]+)*))?(?::([a-z0-9]+(?:-[a-z0-9]+)*))?$`)
	semanticVersionRegex = regexp.MustCompile(`^([0-9]+)\.([0-9]+)\.([0-9]+)$`)
)

// AppIdentifier names an app inside a DAO: `name[.registry][:label]`. The
// registry is the first label of an APM registry under aragonpm.eth and the
// label is an index for existing apps or a free-form tag for new ones.
type AppIdentifier struct {
	Name     string
	Registry string
	Label    string
}

// ParseAppIdentifier parses id, failing on anything that is not a valid
// identifier.
func ParseAppIdentifier(id string) (AppIdentifier, error) {
	m := appIdentifierRegex.FindStringSubmatch(id)
	if m == nil {
		return AppIdentifier{}, fmt.Errorf("invalid app identifier %s", id)
	}
	return AppIdentifier{Name: m[1], Registry: m[2], Label: m[3]}, nil
}

// RegistryName returns the full APM registry name, e.g. open.aragonpm.eth.
func (a AppIdentifier) RegistryName() string {
	if a.Registry == "" {
		return domain.DefaultRegistry
	}
	return a.Registry + registrySuffix
}

// ENSName is the name of the app's APM repo.
func (a AppIdentifier) ENSName() string {
	return a.Name + "." + a.RegistryName()
}

// String returns the normalized identifier; a missing label becomes 0.
func (a AppIdentifier) String() string {
	label := a.Label
	if label == "" {
		label = "0"
	}
	return a.base() + ":" + label
}

func (a AppIdentifier) base() string {
	if a.Registry == "" {
		return a.Name
	}
	return a.Name + "." + a.Registry
}

// NormalizeIdentifier returns id with an explicit label. Invalid
// identifiers are returned unchanged.
func NormalizeIdentifier(id string) string {
	parsed, err := ParseAppIdentifier(id)
	if err != nil {
		return id
	}
	return parsed.String()
}

// identifierFor builds the identifier of the index-th app named name in
// registry.
func identifierFor(name, registry string, index int) string {
	id := AppIdentifier{Name: name, Label: strconv.Itoa(index)}
	if registry != "" && registry != domain.DefaultRegistry {
		id.Registry = strings.TrimSuffix(registry, registrySuffix)
	}
	return id.String()
}

// parseSemanticVersion splits MAJOR.MINOR.PATCH.
func parseSemanticVersion(v string) ([3]uint16, error) {
	var out [3]uint16
	m := semanticVersionRegex.FindStringSubmatch(v)
	if m == nil {
		return out, fmt.Errorf("invalid semantic version %s", v)
	}
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseUint(m[i+1], 10, 16)
		if err != nil {
			return out, fmt.Errorf("invalid semantic version %s", v)
		}
		out[i] = uint16(n)
	}
	return out, nil
}

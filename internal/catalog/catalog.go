package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Catalog is the static table of required skills per (organization, role).
type Catalog interface {
	Lookup(organization, role string) []string
	CareerObjective(organization, role string) *string
	Organizations() []string
	Roles(organization string) []string
}

type organizationEntry struct {
	Organization string      `yaml:"organization"`
	Roles        []roleEntry `yaml:"roles"`
}

type roleEntry struct {
	Name      string   `yaml:"name"`
	Skills    []string `yaml:"skills"`
	Objective string   `yaml:"objective,omitempty"`
}

type key struct {
	organization string
	role         string
}

type catalog struct {
	organizations []string
	roles         map[string][]string
	skills        map[key][]string
	objectives    map[key]string
}

// Load returns the embedded catalog, or the one at path when path is set.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Parse(embeddedCatalog)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return Parse(data)
}

// Parse builds a catalog from its YAML form. Organizations, roles and skills
// must be unique within their parent, and skills must be lowercase.
func Parse(data []byte) (Catalog, error) {
	var entries []organizationEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := &catalog{
		roles:      make(map[string][]string),
		skills:     make(map[key][]string),
		objectives: make(map[key]string),
	}

	for _, org := range entries {
		if org.Organization == "" {
			return nil, errors.New("catalog entry without organization name")
		}
		if _, exists := c.roles[org.Organization]; exists {
			return nil, fmt.Errorf("duplicate organization %q", org.Organization)
		}

		c.organizations = append(c.organizations, org.Organization)
		roleNames := make([]string, 0, len(org.Roles))

		for _, role := range org.Roles {
			k := key{organization: org.Organization, role: role.Name}
			if role.Name == "" {
				return nil, fmt.Errorf("role without name under %q", org.Organization)
			}
			if _, exists := c.skills[k]; exists {
				return nil, fmt.Errorf("duplicate role %q under %q", role.Name, org.Organization)
			}

			seen := make(map[string]struct{}, len(role.Skills))
			for _, skill := range role.Skills {
				if skill == "" || skill != strings.ToLower(skill) {
					return nil, fmt.Errorf("skill %q of %s/%s must be non-empty lowercase", skill, org.Organization, role.Name)
				}
				if _, dup := seen[skill]; dup {
					return nil, fmt.Errorf("duplicate skill %q in %s/%s", skill, org.Organization, role.Name)
				}
				seen[skill] = struct{}{}
			}

			c.skills[k] = append([]string{}, role.Skills...)
			if role.Objective != "" {
				c.objectives[k] = role.Objective
			}
			roleNames = append(roleNames, role.Name)
		}

		c.roles[org.Organization] = roleNames
	}

	return c, nil
}

// Lookup implements Catalog. Unknown pairs yield an empty list.
func (c *catalog) Lookup(organization, role string) []string {
	skills := c.skills[key{organization: organization, role: role}]
	return append([]string{}, skills...)
}

// CareerObjective implements Catalog.
func (c *catalog) CareerObjective(organization, role string) *string {
	k := key{organization: organization, role: role}
	if _, known := c.skills[k]; !known {
		return nil
	}

	if objective, ok := c.objectives[k]; ok {
		return &objective
	}

	objective := DefaultObjective(organization, role)
	return &objective
}

// Organizations implements Catalog.
func (c *catalog) Organizations() []string {
	return append([]string{}, c.organizations...)
}

// Roles implements Catalog.
func (c *catalog) Roles(organization string) []string {
	return append([]string{}, c.roles[organization]...)
}

// DefaultObjective is the objective used for roles without an explicit one.
func DefaultObjective(organization, role string) string {
	return fmt.Sprintf("Aspiring %s eager to contribute skills and grow at %s.", role, organization)
}

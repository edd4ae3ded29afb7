// Package manifest is the construction boundary of the generator: it parses
// yaml resource descriptions and validates every value before the
// composition core sees it. Entities built here are assumed valid
// downstream.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the root of a yaml resource description.
type Manifest struct {
	Accounts []AccountSpec `yaml:"accounts"`
}

type AccountSpec struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
	Sku      string `yaml:"sku,omitempty"`
	Kind     string `yaml:"kind,omitempty"`

	// HierarchicalNamespace enables Data Lake semantics. Leaving it unset
	// is different from setting it false: unset emits no flag at all.
	HierarchicalNamespace *bool             `yaml:"hierarchicalNamespace,omitempty"`
	Tags                  map[string]string `yaml:"tags,omitempty"`

	// DependsOn names other storage accounts in this manifest that must
	// deploy first.
	DependsOn []string `yaml:"dependsOn,omitempty"`

	Containers      []ContainerSpec      `yaml:"containers,omitempty"`
	FileShares      []FileShareSpec      `yaml:"fileShares,omitempty"`
	Queues          []string             `yaml:"queues,omitempty"`
	LifecycleRules  []LifecycleRuleSpec  `yaml:"lifecycleRules,omitempty"`
	RoleAssignments []RoleAssignmentSpec `yaml:"roleAssignments,omitempty"`
	StaticWebsite   *StaticWebsiteSpec   `yaml:"staticWebsite,omitempty"`
}

type ContainerSpec struct {
	Name   string `yaml:"name"`
	Access string `yaml:"access,omitempty"`
}

type FileShareSpec struct {
	Name  string `yaml:"name"`
	Quota *int   `yaml:"quota,omitempty"`
}

type LifecycleRuleSpec struct {
	Name                string   `yaml:"name"`
	CoolBlobAfter       *int     `yaml:"coolBlobAfter,omitempty"`
	ArchiveBlobAfter    *int     `yaml:"archiveBlobAfter,omitempty"`
	DeleteBlobAfter     *int     `yaml:"deleteBlobAfter,omitempty"`
	DeleteSnapshotAfter *int     `yaml:"deleteSnapshotAfter,omitempty"`
	Filters             []string `yaml:"filters,omitempty"`
}

type RoleAssignmentSpec struct {
	Role        string `yaml:"role"`
	PrincipalId string `yaml:"principalId"`

	// PrincipalOwner names the user-assigned identity the principal
	// originates from, when that identity deploys in the same template.
	PrincipalOwner string `yaml:"principalOwner,omitempty"`
}

type StaticWebsiteSpec struct {
	IndexPage   string  `yaml:"indexPage"`
	ErrorPage   *string `yaml:"errorPage,omitempty"`
	ContentPath string  `yaml:"contentPath"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	return Parse(data)
}

// Parse parses manifest yaml.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	return &m, nil
}

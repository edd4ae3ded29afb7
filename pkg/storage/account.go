package storage

import "github.com/armsmith/armsmith/pkg/arm"

// StaticWebsite configures post-deployment static website hosting for an
// account. It never appears in the emitted template; the website deployer
// consumes it after the deployment engine accepts the document.
type StaticWebsite struct {
	// IndexPage is served for directory requests.
	IndexPage string
	// ErrorPage is served for missing blobs. Nil leaves the account's 404
	// document unset.
	ErrorPage *string
	// ContentPath is the local directory uploaded into the $web container.
	ContentPath string
}

// Account describes a storage account.
type Account struct {
	Name     arm.ResourceName
	Location string
	Sku      Sku
	Kind     AccountKind

	// Dependencies are explicit edges to resources the account requires,
	// beyond what the composition core infers for sub-resources.
	Dependencies []arm.ResourceId

	// EnableHierarchicalNamespace turns on Data Lake filesystem semantics.
	// Nil emits an empty properties object, which the account schema
	// expects when no flags apply.
	EnableHierarchicalNamespace *bool

	StaticWebsite *StaticWebsite
	Tags          map[string]string
}

func (a *Account) ResourceName() arm.ResourceName {
	return a.Name
}

// ResourceId returns the account's address, the parent id every
// sub-resource composes against.
func (a *Account) ResourceId() arm.ResourceId {
	return AccountResource.ResourceId(a.Name)
}

func (a *Account) DependsOn() []arm.ResourceId {
	return a.Dependencies
}

type accountProperties struct {
	IsHnsEnabled bool `json:"isHnsEnabled"`
}

type skuModel struct {
	Name string `json:"name"`
}

type accountModel struct {
	Type       string            `json:"type"`
	APIVersion string            `json:"apiVersion"`
	Name       string            `json:"name"`
	Location   string            `json:"location"`
	DependsOn  []string          `json:"dependsOn"`
	Tags       map[string]string `json:"tags"`
	Sku        skuModel          `json:"sku"`
	Kind       string            `json:"kind"`
	Properties any               `json:"properties"`
}

func (a *Account) JSONModel() any {
	var properties any = struct{}{}
	if a.EnableHierarchicalNamespace != nil {
		properties = accountProperties{IsHnsEnabled: *a.EnableHierarchicalNamespace}
	}

	tags := a.Tags
	if tags == nil {
		tags = map[string]string{}
	}

	return accountModel{
		Type:       AccountResource.Type,
		APIVersion: AccountResource.APIVersion,
		Name:       a.Name.String(),
		Location:   a.Location,
		DependsOn:  arm.References(a.Dependencies...),
		Tags:       tags,
		Sku:        skuModel{Name: string(a.Sku)},
		Kind:       string(a.Kind),
		Properties: properties,
	}
}

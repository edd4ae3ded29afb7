package manifest

import (
	"fmt"
	"regexp"

	"github.com/armsmith/armsmith/pkg/arm"
	"github.com/armsmith/armsmith/pkg/storage"
	"github.com/armsmith/armsmith/pkg/website"
)

// Storage account names are 3-24 lowercase letters and digits.
var accountNamePattern = regexp.MustCompile(`^[a-z0-9]{3,24}$`)

var identityResource = arm.ResourceType{
	Type:       "Microsoft.ManagedIdentity/userAssignedIdentities",
	APIVersion: "2018-11-30",
}

// Resources validates the manifest and builds the full resource set.
func (m *Manifest) Resources() ([]arm.Resource, error) {
	var resources []arm.Resource

	for _, spec := range m.Accounts {
		built, err := buildAccount(spec)
		if err != nil {
			return nil, fmt.Errorf("account '%s': %w", spec.Name, err)
		}

		resources = append(resources, built...)
	}

	return resources, nil
}

// Websites collects the post-deploy static website configurations declared
// in the manifest.
func (m *Manifest) Websites() []website.Config {
	var configs []website.Config
	for _, spec := range m.Accounts {
		if spec.StaticWebsite == nil {
			continue
		}

		configs = append(configs, website.Config{
			AccountName: spec.Name,
			IndexPage:   spec.StaticWebsite.IndexPage,
			ErrorPage:   spec.StaticWebsite.ErrorPage,
			ContentPath: spec.StaticWebsite.ContentPath,
		})
	}

	return configs
}

func buildAccount(spec AccountSpec) ([]arm.Resource, error) {
	if !accountNamePattern.MatchString(spec.Name) {
		return nil, fmt.Errorf("name must be 3-24 lowercase letters and digits")
	}
	if spec.Location == "" {
		return nil, fmt.Errorf("location is required")
	}

	sku, err := storage.ParseSku(spec.Sku)
	if err != nil {
		return nil, err
	}

	kind, err := storage.ParseAccountKind(spec.Kind)
	if err != nil {
		return nil, err
	}

	var deps []arm.ResourceId
	for _, dep := range spec.DependsOn {
		deps = append(deps, storage.AccountResource.ResourceId(arm.ResourceName(dep)))
	}

	var staticWebsite *storage.StaticWebsite
	if spec.StaticWebsite != nil {
		if spec.StaticWebsite.IndexPage == "" || spec.StaticWebsite.ContentPath == "" {
			return nil, fmt.Errorf("static website requires indexPage and contentPath")
		}

		staticWebsite = &storage.StaticWebsite{
			IndexPage:   spec.StaticWebsite.IndexPage,
			ErrorPage:   spec.StaticWebsite.ErrorPage,
			ContentPath: spec.StaticWebsite.ContentPath,
		}
	}

	account := &storage.Account{
		Name:                        arm.ResourceName(spec.Name),
		Location:                    spec.Location,
		Sku:                         sku,
		Kind:                        kind,
		Dependencies:                deps,
		EnableHierarchicalNamespace: spec.HierarchicalNamespace,
		StaticWebsite:               staticWebsite,
		Tags:                        spec.Tags,
	}

	resources := []arm.Resource{account}

	for _, c := range spec.Containers {
		if c.Name == "" {
			return nil, fmt.Errorf("container name is required")
		}

		access, err := storage.ParsePublicAccess(c.Access)
		if err != nil {
			return nil, fmt.Errorf("container '%s': %w", c.Name, err)
		}

		resources = append(resources, &storage.Container{
			Name:    arm.ResourceName(c.Name),
			Account: account.Name,
			Access:  access,
		})
	}

	for _, s := range spec.FileShares {
		if s.Name == "" {
			return nil, fmt.Errorf("file share name is required")
		}
		if s.Quota != nil && *s.Quota <= 0 {
			return nil, fmt.Errorf("file share '%s': quota must be positive", s.Name)
		}

		resources = append(resources, &storage.FileShare{
			Name:       arm.ResourceName(s.Name),
			Account:    account.Name,
			ShareQuota: s.Quota,
		})
	}

	for _, q := range spec.Queues {
		if q == "" {
			return nil, fmt.Errorf("queue name is required")
		}

		resources = append(resources, &storage.Queue{
			Name:    arm.ResourceName(q),
			Account: account.Name,
		})
	}

	if len(spec.LifecycleRules) > 0 {
		rules, err := buildRules(spec.LifecycleRules)
		if err != nil {
			return nil, err
		}

		resources = append(resources, &storage.ManagementPolicy{
			Account: account.Name,
			Rules:   rules,
		})
	}

	for _, ra := range spec.RoleAssignments {
		role, err := storage.ParseRole(ra.Role)
		if err != nil {
			return nil, err
		}
		if ra.PrincipalId == "" {
			return nil, fmt.Errorf("role assignment '%s': principalId is required", ra.Role)
		}

		principal := storage.Principal{Id: ra.PrincipalId}
		if ra.PrincipalOwner != "" {
			owner := identityResource.ResourceId(arm.ResourceName(ra.PrincipalOwner))
			principal.Owner = &owner
		}

		resources = append(resources, &storage.RoleAssignment{
			Account:   account.Name,
			Role:      role,
			Principal: principal,
		})
	}

	return resources, nil
}

func buildRules(specs []LifecycleRuleSpec) ([]storage.LifecycleRule, error) {
	rules := make([]storage.LifecycleRule, 0, len(specs))
	for _, r := range specs {
		if r.Name == "" {
			return nil, fmt.Errorf("lifecycle rule name is required")
		}

		for _, threshold := range []*int{r.CoolBlobAfter, r.ArchiveBlobAfter, r.DeleteBlobAfter, r.DeleteSnapshotAfter} {
			if threshold != nil && *threshold < 0 {
				return nil, fmt.Errorf("lifecycle rule '%s': thresholds must not be negative", r.Name)
			}
		}

		rules = append(rules, storage.LifecycleRule{
			Name:                r.Name,
			CoolBlobAfter:       r.CoolBlobAfter,
			ArchiveBlobAfter:    r.ArchiveBlobAfter,
			DeleteBlobAfter:     r.DeleteBlobAfter,
			DeleteSnapshotAfter: r.DeleteSnapshotAfter,
			Filters:             r.Filters,
		})
	}

	return rules, nil
}

package storage

import "github.com/armsmith/armsmith/pkg/arm"

// LifecycleRule transitions or deletes block blobs based on age. A nil
// threshold means that transition is not configured, which is distinct from
// a threshold of zero days; unset actions are omitted from the emitted rule
// entirely.
type LifecycleRule struct {
	Name string

	// Days after last modification before the blob moves to the cool tier.
	CoolBlobAfter *int
	// Days after last modification before the blob moves to the archive
	// tier.
	ArchiveBlobAfter *int
	// Days after last modification before the blob is deleted.
	DeleteBlobAfter *int
	// Days after creation before a blob snapshot is deleted.
	DeleteSnapshotAfter *int

	// Filters restricts the rule to blobs under these path prefixes.
	Filters []string
}

// ManagementPolicy is the lifecycle-management policy of a storage account.
// An account has at most one, addressed by the fixed child name "default".
// Rule order is preserved in the emitted document; the deployment engine
// owns rule-conflict resolution.
type ManagementPolicy struct {
	Account arm.ResourceName
	Rules   []LifecycleRule
}

func (p *ManagementPolicy) accountId() arm.ResourceId {
	return AccountResource.ResourceId(p.Account)
}

func (p *ManagementPolicy) resourceId() arm.ResourceId {
	return p.accountId().Child(ManagementPolicyResource, "default")
}

func (p *ManagementPolicy) ResourceName() arm.ResourceName {
	return p.resourceId().Name
}

func (p *ManagementPolicy) DependsOn() []arm.ResourceId {
	return []arm.ResourceId{p.accountId()}
}

type modifiedAgeAction struct {
	DaysAfterModificationGreaterThan int `json:"daysAfterModificationGreaterThan"`
}

type createdAgeAction struct {
	DaysAfterCreationGreaterThan int `json:"daysAfterCreationGreaterThan"`
}

type baseBlobActions struct {
	TierToCool    *modifiedAgeAction `json:"tierToCool,omitempty"`
	TierToArchive *modifiedAgeAction `json:"tierToArchive,omitempty"`
	Delete        *modifiedAgeAction `json:"delete,omitempty"`
}

type snapshotActions struct {
	Delete *createdAgeAction `json:"delete,omitempty"`
}

type ruleActions struct {
	BaseBlob *baseBlobActions `json:"baseBlob,omitempty"`
	Snapshot *snapshotActions `json:"snapshot,omitempty"`
}

type ruleFilters struct {
	BlobTypes   []string `json:"blobTypes"`
	PrefixMatch []string `json:"prefixMatch,omitempty"`
}

type ruleDefinition struct {
	Actions ruleActions `json:"actions"`
	Filters ruleFilters `json:"filters"`
}

type ruleModel struct {
	Name       string         `json:"name"`
	Enabled    bool           `json:"enabled"`
	Type       string         `json:"type"`
	Definition ruleDefinition `json:"definition"`
}

type policyModel struct {
	Type       string           `json:"type"`
	APIVersion string           `json:"apiVersion"`
	Name       string           `json:"name"`
	DependsOn  []string         `json:"dependsOn"`
	Properties policyProperties `json:"properties"`
}

type policyProperties struct {
	Policy policyRules `json:"policy"`
}

type policyRules struct {
	Rules []ruleModel `json:"rules"`
}

func compileRule(rule LifecycleRule) ruleModel {
	var base *baseBlobActions
	if rule.CoolBlobAfter != nil || rule.ArchiveBlobAfter != nil || rule.DeleteBlobAfter != nil {
		base = &baseBlobActions{}
		if rule.CoolBlobAfter != nil {
			base.TierToCool = &modifiedAgeAction{DaysAfterModificationGreaterThan: *rule.CoolBlobAfter}
		}
		if rule.ArchiveBlobAfter != nil {
			base.TierToArchive = &modifiedAgeAction{DaysAfterModificationGreaterThan: *rule.ArchiveBlobAfter}
		}
		if rule.DeleteBlobAfter != nil {
			base.Delete = &modifiedAgeAction{DaysAfterModificationGreaterThan: *rule.DeleteBlobAfter}
		}
	}

	var snapshot *snapshotActions
	if rule.DeleteSnapshotAfter != nil {
		snapshot = &snapshotActions{
			Delete: &createdAgeAction{DaysAfterCreationGreaterThan: *rule.DeleteSnapshotAfter},
		}
	}

	return ruleModel{
		Name:    rule.Name,
		Enabled: true,
		Type:    "Lifecycle",
		Definition: ruleDefinition{
			Actions: ruleActions{BaseBlob: base, Snapshot: snapshot},
			Filters: ruleFilters{
				BlobTypes:   []string{"blockBlob"},
				PrefixMatch: rule.Filters,
			},
		},
	}
}

func (p *ManagementPolicy) JSONModel() any {
	rules := make([]ruleModel, 0, len(p.Rules))
	for _, rule := range p.Rules {
		rules = append(rules, compileRule(rule))
	}

	return policyModel{
		Type:       ManagementPolicyResource.Type,
		APIVersion: ManagementPolicyResource.APIVersion,
		Name:       p.resourceId().String(),
		DependsOn:  arm.References(p.DependsOn()...),
		Properties: policyProperties{Policy: policyRules{Rules: rules}},
	}
}

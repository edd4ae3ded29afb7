package storage

import (
	"fmt"
	"strings"

	"github.com/armsmith/armsmith/pkg/arm"
)

// RoleDefinition identifies a built-in role by its well-known definition id.
type RoleDefinition struct {
	Name string
	Id   string
}

// Built-in storage data-plane roles.
// https://learn.microsoft.com/en-us/azure/role-based-access-control/built-in-roles
var (
	StorageBlobDataReader = RoleDefinition{
		Name: "Storage Blob Data Reader",
		Id:   "2a2b9908-6ea1-4ae2-8e65-a410df84e7d1",
	}
	StorageBlobDataContributor = RoleDefinition{
		Name: "Storage Blob Data Contributor",
		Id:   "ba92f5b4-2d11-453d-a403-e96b0029c9fe",
	}
	StorageBlobDataOwner = RoleDefinition{
		Name: "Storage Blob Data Owner",
		Id:   "b7e6dc6d-f1e8-4753-8033-0f276bb0955b",
	}
	StorageQueueDataContributor = RoleDefinition{
		Name: "Storage Queue Data Contributor",
		Id:   "974c5e8b-45b9-4653-ba55-5f855dd0fb88",
	}
	StorageFileDataSMBShareContributor = RoleDefinition{
		Name: "Storage File Data SMB Share Contributor",
		Id:   "0c867c2a-1d8c-454a-a3db-ab2ea1bdc8bb",
	}
)

var builtInRoles = []RoleDefinition{
	StorageBlobDataReader,
	StorageBlobDataContributor,
	StorageBlobDataOwner,
	StorageQueueDataContributor,
	StorageFileDataSMBShareContributor,
}

// ParseRole resolves a built-in role by display name.
func ParseRole(name string) (RoleDefinition, error) {
	for _, role := range builtInRoles {
		if role.Name == name {
			return role, nil
		}
	}

	return RoleDefinition{}, fmt.Errorf("unknown role '%s'", name)
}

// Principal is the identity granted a role. Id is either a literal object
// id or a template expression resolving to one. Owner points at the
// resource the principal originates from when that resource is managed in
// the same deployment (a user-assigned identity, for example); it adds a
// dependency edge and a display-name suffix, nothing more.
type Principal struct {
	Id    string
	Owner *arm.ResourceId
}

// RoleAssignment grants a principal a role on a storage account. Its
// identity is derived, not user supplied: hashing the account, principal
// and role into a stable GUID means re-running the generator names the same
// assignment the same way, so re-deployment updates instead of duplicating.
type RoleAssignment struct {
	Account   arm.ResourceName
	Role      RoleDefinition
	Principal Principal
}

func (r *RoleAssignment) accountId() arm.ResourceId {
	return AccountResource.ResourceId(r.Account)
}

func (r *RoleAssignment) roleDefinitionId() string {
	return fmt.Sprintf(
		"[subscriptionResourceId('Microsoft.Authorization/roleDefinitions', '%s')]", r.Role.Id)
}

func (r *RoleAssignment) resourceId() arm.ResourceId {
	seed := r.Account.String() + r.Principal.Id + r.roleDefinitionId()
	guid := arm.DeterministicGUID(seed)

	return r.accountId().Child(RoleAssignmentResource, "Microsoft.Authorization", guid.String())
}

func (r *RoleAssignment) ResourceName() arm.ResourceName {
	return r.resourceId().Name
}

func (r *RoleAssignment) DependsOn() []arm.ResourceId {
	deps := []arm.ResourceId{r.accountId()}
	if r.Principal.Owner != nil {
		deps = append(deps, *r.Principal.Owner)
	}

	return deps
}

// displayName is cosmetic and never affects the derived identity.
func (r *RoleAssignment) displayName() string {
	if r.Principal.Owner == nil {
		return r.Role.Name
	}

	segments := strings.Split(r.Principal.Owner.Name.String(), "/")
	return fmt.Sprintf("%s (%s)", r.Role.Name, segments[len(segments)-1])
}

type roleAssignmentProperties struct {
	RoleDefinitionId string `json:"roleDefinitionId"`
	PrincipalId      string `json:"principalId"`
}

type roleAssignmentModel struct {
	Type       string                   `json:"type"`
	APIVersion string                   `json:"apiVersion"`
	Name       string                   `json:"name"`
	DependsOn  []string                 `json:"dependsOn"`
	Tags       map[string]string        `json:"tags"`
	Properties roleAssignmentProperties `json:"properties"`
}

func (r *RoleAssignment) JSONModel() any {
	return roleAssignmentModel{
		Type:       RoleAssignmentResource.Type,
		APIVersion: RoleAssignmentResource.APIVersion,
		Name:       r.resourceId().String(),
		DependsOn:  arm.References(r.DependsOn()...),
		Tags:       map[string]string{"displayName": r.displayName()},
		Properties: roleAssignmentProperties{
			RoleDefinitionId: r.roleDefinitionId(),
			PrincipalId:      r.Principal.Id,
		},
	}
}

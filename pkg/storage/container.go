package storage

import "github.com/armsmith/armsmith/pkg/arm"

// Container describes a blob container inside a storage account. The
// account reference is a back-reference, not ownership: the container
// addresses itself under the account's path and depends on it.
type Container struct {
	Name    arm.ResourceName
	Account arm.ResourceName
	Access  PublicAccess
}

func (c *Container) accountId() arm.ResourceId {
	return AccountResource.ResourceId(c.Account)
}

func (c *Container) resourceId() arm.ResourceId {
	return c.accountId().Child(ContainerResource, "default", c.Name.String())
}

func (c *Container) ResourceName() arm.ResourceName {
	return c.resourceId().Name
}

func (c *Container) DependsOn() []arm.ResourceId {
	return []arm.ResourceId{c.accountId()}
}

type containerProperties struct {
	PublicAccess string `json:"publicAccess"`
}

type containerModel struct {
	Type       string              `json:"type"`
	APIVersion string              `json:"apiVersion"`
	Name       string              `json:"name"`
	DependsOn  []string            `json:"dependsOn"`
	Properties containerProperties `json:"properties"`
}

func (c *Container) JSONModel() any {
	return containerModel{
		Type:       ContainerResource.Type,
		APIVersion: ContainerResource.APIVersion,
		Name:       c.resourceId().String(),
		DependsOn:  arm.References(c.DependsOn()...),
		Properties: containerProperties{PublicAccess: string(c.Access)},
	}
}

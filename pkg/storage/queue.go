package storage

import "github.com/armsmith/armsmith/pkg/arm"

// Queue describes a storage queue inside a storage account. The queue
// schema takes no properties, so its model carries none at all.
type Queue struct {
	Name    arm.ResourceName
	Account arm.ResourceName
}

func (q *Queue) accountId() arm.ResourceId {
	return AccountResource.ResourceId(q.Account)
}

func (q *Queue) resourceId() arm.ResourceId {
	return q.accountId().Child(QueueResource, "default", q.Name.String())
}

func (q *Queue) ResourceName() arm.ResourceName {
	return q.resourceId().Name
}

func (q *Queue) DependsOn() []arm.ResourceId {
	return []arm.ResourceId{q.accountId()}
}

type queueModel struct {
	Type       string   `json:"type"`
	APIVersion string   `json:"apiVersion"`
	Name       string   `json:"name"`
	DependsOn  []string `json:"dependsOn"`
}

func (q *Queue) JSONModel() any {
	return queueModel{
		Type:       QueueResource.Type,
		APIVersion: QueueResource.APIVersion,
		Name:       q.resourceId().String(),
		DependsOn:  arm.References(q.DependsOn()...),
	}
}

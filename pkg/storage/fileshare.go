package storage

import "github.com/armsmith/armsmith/pkg/arm"

// DefaultShareQuota is the share quota, in GiB, applied when a file share
// does not set one explicitly.
const DefaultShareQuota = 5120

// FileShare describes an SMB file share inside a storage account.
type FileShare struct {
	Name    arm.ResourceName
	Account arm.ResourceName

	// ShareQuota is the share size limit in GiB. Nil applies
	// DefaultShareQuota.
	ShareQuota *int
}

func (s *FileShare) accountId() arm.ResourceId {
	return AccountResource.ResourceId(s.Account)
}

func (s *FileShare) resourceId() arm.ResourceId {
	return s.accountId().Child(FileShareResource, "default", s.Name.String())
}

func (s *FileShare) ResourceName() arm.ResourceName {
	return s.resourceId().Name
}

func (s *FileShare) DependsOn() []arm.ResourceId {
	return []arm.ResourceId{s.accountId()}
}

type fileShareProperties struct {
	ShareQuota int `json:"shareQuota"`
}

type fileShareModel struct {
	Type       string              `json:"type"`
	APIVersion string              `json:"apiVersion"`
	Name       string              `json:"name"`
	DependsOn  []string            `json:"dependsOn"`
	Properties fileShareProperties `json:"properties"`
}

func (s *FileShare) JSONModel() any {
	quota := DefaultShareQuota
	if s.ShareQuota != nil {
		quota = *s.ShareQuota
	}

	return fileShareModel{
		Type:       FileShareResource.Type,
		APIVersion: FileShareResource.APIVersion,
		Name:       s.resourceId().String(),
		DependsOn:  arm.References(s.DependsOn()...),
		Properties: fileShareProperties{ShareQuota: quota},
	}
}

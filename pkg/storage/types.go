// Package storage describes Azure Storage resources (accounts, containers,
// file shares, queues, lifecycle policies, role assignments) as immutable
// entities that plug into the arm composition core.
package storage

import (
	"fmt"

	"github.com/armsmith/armsmith/pkg/arm"
)

// Resource types and the API versions this module emits them with.
var (
	AccountResource          = arm.ResourceType{Type: "Microsoft.Storage/storageAccounts", APIVersion: "2019-06-01"}
	ContainerResource        = arm.ResourceType{Type: "Microsoft.Storage/storageAccounts/blobServices/containers", APIVersion: "2018-03-01-preview"}
	FileShareResource        = arm.ResourceType{Type: "Microsoft.Storage/storageAccounts/fileServices/shares", APIVersion: "2019-06-01"}
	QueueResource            = arm.ResourceType{Type: "Microsoft.Storage/storageAccounts/queueServices/queues", APIVersion: "2019-06-01"}
	ManagementPolicyResource = arm.ResourceType{Type: "Microsoft.Storage/storageAccounts/managementPolicies", APIVersion: "2019-06-01"}
	RoleAssignmentResource   = arm.ResourceType{Type: "Microsoft.Authorization/roleAssignments", APIVersion: "2020-04-01-preview"}
)

// Sku is a storage account SKU name.
type Sku string

const (
	StandardLRS   Sku = "Standard_LRS"
	StandardGRS   Sku = "Standard_GRS"
	StandardRAGRS Sku = "Standard_RAGRS"
	StandardZRS   Sku = "Standard_ZRS"
	PremiumLRS    Sku = "Premium_LRS"
)

// ParseSku validates a SKU name. An empty value defaults to Standard_LRS.
func ParseSku(value string) (Sku, error) {
	switch Sku(value) {
	case "":
		return StandardLRS, nil
	case StandardLRS, StandardGRS, StandardRAGRS, StandardZRS, PremiumLRS:
		return Sku(value), nil
	}

	return Sku(""), fmt.Errorf("unsupported storage sku '%s'", value)
}

// AccountKind selects the storage account schema variant.
type AccountKind string

const (
	KindStorageV2        AccountKind = "StorageV2"
	KindStorage          AccountKind = "Storage"
	KindBlobStorage      AccountKind = "BlobStorage"
	KindFileStorage      AccountKind = "FileStorage"
	KindBlockBlobStorage AccountKind = "BlockBlobStorage"
)

// ParseAccountKind validates an account kind. An empty value defaults to
// StorageV2.
func ParseAccountKind(value string) (AccountKind, error) {
	switch AccountKind(value) {
	case "":
		return KindStorageV2, nil
	case KindStorageV2, KindStorage, KindBlobStorage, KindFileStorage, KindBlockBlobStorage:
		return AccountKind(value), nil
	}

	return AccountKind(""), fmt.Errorf("unsupported storage account kind '%s'", value)
}

// PublicAccess is the blob container accessibility level, emitted verbatim
// as the container's publicAccess property.
type PublicAccess string

const (
	// PublicAccessNone keeps the container private.
	PublicAccessNone PublicAccess = "None"
	// PublicAccessContainer allows anonymous read of blobs and listing of
	// the container.
	PublicAccessContainer PublicAccess = "Container"
	// PublicAccessBlob allows anonymous read of individual blobs only.
	PublicAccessBlob PublicAccess = "Blob"
)

// ParsePublicAccess validates an accessibility level. An empty value
// defaults to None.
func ParsePublicAccess(value string) (PublicAccess, error) {
	switch PublicAccess(value) {
	case "":
		return PublicAccessNone, nil
	case PublicAccessNone, PublicAccessContainer, PublicAccessBlob:
		return PublicAccess(value), nil
	}

	return PublicAccess(""), fmt.Errorf("unsupported container access level '%s'", value)
}

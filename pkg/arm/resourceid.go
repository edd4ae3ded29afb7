// Package arm contains the generic resource-composition core: typed
// addressing for resource-manager resources, the capability contract every
// emittable resource implements, and single-document template emission.
//
// Domain packages (storage, and any future resource family) plug into this
// package by declaring their resource types and implementing Resource.
package arm

// ResourceName is the leaf identity of a resource instance. Names are
// validated by the builder layer before they reach this package; here they
// are opaque path segments, possibly slash separated for sub-resources.
type ResourceName string

func (n ResourceName) String() string {
	return string(n)
}

// Child extends a name with a nested path segment. Composition is
// associative: a.Child("b").Child("c") renders identically to
// a.Child("b/c").
func (n ResourceName) Child(segment string) ResourceName {
	return ResourceName(string(n) + "/" + segment)
}

// ResourceType identifies a resource schema and the API version this module
// emits it with. One value exists per resource kind, declared once in the
// owning domain package.
type ResourceType struct {
	Type       string
	APIVersion string
}

// ResourceId constructs an id of this type for a named instance.
func (t ResourceType) ResourceId(name ResourceName) ResourceId {
	return ResourceId{Type: t, Name: name}
}

// ResourceId addresses a concrete resource instance: a resource type plus a
// hierarchical name path (e.g. "mystore/default/data" for a container
// nested under a storage account).
type ResourceId struct {
	Type ResourceType
	Name ResourceName
}

// Child re-addresses this id at a nested schema, extending the name path
// with the given segments. A storage account id becomes a container id via
// account.Child(containerType, "default", containerName).
func (id ResourceId) Child(t ResourceType, segments ...string) ResourceId {
	name := id.Name
	for _, segment := range segments {
		name = name.Child(segment)
	}

	return ResourceId{Type: t, Name: name}
}

// String renders the reference form used inside dependsOn entries.
func (id ResourceId) String() string {
	return string(id.Name)
}

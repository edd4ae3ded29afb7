package arm

// Resource is implemented by every entity that can appear in a deployment
// template.
type Resource interface {
	// ResourceName returns the entity's own identity, used for uniqueness
	// within a deployment and for cross-referencing between resources.
	ResourceName() ResourceName

	// DependsOn returns the ids of resources that must exist before this
	// one is created. Targets outside the emitted set are allowed; they
	// refer to pre-existing infrastructure.
	DependsOn() []ResourceId

	// JSONModel returns the fully resolved template representation of the
	// resource: {type, apiVersion, name, dependsOn, properties, ...}.
	// It must be a pure function of the entity's fields.
	JSONModel() any
}

// References renders dependency edges for a dependsOn array, deduplicated
// and preserving first-seen order. A nil input renders as an empty slice so
// the key marshals to [] rather than null.
func References(ids ...ResourceId) []string {
	refs := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))

	for _, id := range ids {
		ref := id.String()
		if _, ok := seen[ref]; ok {
			continue
		}

		seen[ref] = struct{}{}
		refs = append(refs, ref)
	}

	return refs
}

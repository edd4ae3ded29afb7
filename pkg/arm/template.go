package arm

import (
	"encoding/json"
	"fmt"
)

const (
	templateSchema = "https://schema.management.azure.com/schemas/2019-04-01/deploymentTemplate.json#"
	contentVersion = "1.0.0.0"
)

// Template is the deployment document envelope handed to the resource
// manager. Parameters and outputs are always present as empty objects; this
// generator resolves every value at build time.
type Template struct {
	Schema         string            `json:"$schema"`
	ContentVersion string            `json:"contentVersion"`
	Parameters     map[string]any    `json:"parameters"`
	Outputs        map[string]any    `json:"outputs"`
	Resources      []json.RawMessage `json:"resources"`
}

// Deployment collects resources and emits them as a single template.
// Resources may be added in any order; emission orders them so that in-set
// dependencies precede their dependents, which is the ordering contract the
// deployment engine consumes.
type Deployment struct {
	resources []Resource
}

func NewDeployment(resources ...Resource) *Deployment {
	d := &Deployment{}
	for _, r := range resources {
		d.Add(r)
	}

	return d
}

// Add appends a resource to the deployment.
func (d *Deployment) Add(r Resource) *Deployment {
	d.resources = append(d.resources, r)
	return d
}

// Template validates the resource set and builds the deployment document.
// Emission is all-or-nothing: duplicate identities, dependency cycles or a
// resource that cannot produce a valid JSON body fail the whole call before
// any output is usable.
func (d *Deployment) Template() (*Template, error) {
	ordered, err := d.order()
	if err != nil {
		return nil, err
	}

	resources := make([]json.RawMessage, 0, len(ordered))
	for _, r := range ordered {
		body, err := json.Marshal(r.JSONModel())
		if err != nil {
			return nil, fmt.Errorf("marshaling resource '%s': %w", r.ResourceName(), err)
		}

		resources = append(resources, body)
	}

	return &Template{
		Schema:         templateSchema,
		ContentVersion: contentVersion,
		Parameters:     map[string]any{},
		Outputs:        map[string]any{},
		Resources:      resources,
	}, nil
}

// Emit builds the template and serializes it as an indented JSON document.
func (d *Deployment) Emit() ([]byte, error) {
	template, err := d.Template()
	if err != nil {
		return nil, err
	}

	body, err := json.MarshalIndent(template, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling template: %w", err)
	}

	return body, nil
}

// order returns the resources sorted so that every in-set dependency comes
// before its dependents, stable with respect to insertion order among
// resources with no edge between them.
func (d *Deployment) order() ([]Resource, error) {
	byName := make(map[string]int, len(d.resources))
	for i, r := range d.resources {
		name := r.ResourceName().String()
		if _, ok := byName[name]; ok {
			return nil, fmt.Errorf("duplicate resource '%s' in deployment", name)
		}

		byName[name] = i
	}

	// Kahn's algorithm over in-set edges only. Edges pointing at resources
	// outside the set refer to pre-existing infrastructure and do not
	// constrain ordering here.
	indegree := make([]int, len(d.resources))
	dependents := make([][]int, len(d.resources))
	for i, r := range d.resources {
		for _, dep := range r.DependsOn() {
			target, ok := byName[dep.String()]
			if !ok {
				continue
			}

			dependents[target] = append(dependents[target], i)
			indegree[i]++
		}
	}

	ready := make([]int, 0, len(d.resources))
	for i := range d.resources {
		if indegree[i] == 0 {
			ready = append(ready, i)
		}
	}

	ordered := make([]Resource, 0, len(d.resources))
	for len(ready) > 0 {
		next := ready[0]
		ready = ready[1:]
		ordered = append(ordered, d.resources[next])

		for _, dependent := range dependents[next] {
			indegree[dependent]--
			if indegree[dependent] == 0 {
				ready = append(ready, dependent)
			}
		}
	}

	if len(ordered) != len(d.resources) {
		return nil, fmt.Errorf("dependency cycle detected among deployment resources")
	}

	return ordered, nil
}

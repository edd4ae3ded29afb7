package manifest

import (
	"encoding/json"
	"testing"

	"github.com/armsmith/armsmith/pkg/arm"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `
accounts:
  - name: mystore
    location: westeurope
    sku: Standard_GRS
    kind: StorageV2
    hierarchicalNamespace: true
    tags:
      env: prod
    containers:
      - name: data
        access: Container
      - name: internal
    fileShares:
      - name: projects
        quota: 100
    queues:
      - jobs
    lifecycleRules:
      - name: cool-logs
        coolBlobAfter: 30
        filters:
          - logs/
    roleAssignments:
      - role: Storage Blob Data Contributor
        principalId: "[reference('appidentity').principalId]"
        principalOwner: appidentity
    staticWebsite:
      indexPage: index.html
      errorPage: 404.html
      contentPath: ./public
`

func Test_Manifest_Resources(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	resources, err := m.Resources()
	require.NoError(t, err)

	// account, 2 containers, share, queue, policy, role assignment
	require.Len(t, resources, 7)

	names := make([]string, 0, len(resources))
	for _, r := range resources {
		names = append(names, r.ResourceName().String())
	}

	require.Contains(t, names, "mystore")
	require.Contains(t, names, "mystore/default/data")
	require.Contains(t, names, "mystore/default/internal")
	require.Contains(t, names, "mystore/default/projects")
	require.Contains(t, names, "mystore/default/jobs")
	require.Contains(t, names, "mystore/default")
}

func Test_Manifest_EndToEnd(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	resources, err := m.Resources()
	require.NoError(t, err)

	body, err := arm.NewDeployment(resources...).Emit()
	require.NoError(t, err)

	var document struct {
		Resources []map[string]any `json:"resources"`
	}
	require.NoError(t, json.Unmarshal(body, &document))
	require.Len(t, document.Resources, 7)

	// the account precedes every sub-resource
	require.Equal(t, "mystore", document.Resources[0]["name"])

	var container map[string]any
	for _, r := range document.Resources {
		if r["name"] == "mystore/default/data" {
			container = r
		}
	}

	require.NotNil(t, container)
	require.Equal(t, []any{"mystore"}, container["dependsOn"])
	require.Equal(t, map[string]any{"publicAccess": "Container"}, container["properties"])
}

func Test_Manifest_Websites(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	configs := m.Websites()
	require.Len(t, configs, 1)
	require.Equal(t, "mystore", configs[0].AccountName)
	require.Equal(t, "index.html", configs[0].IndexPage)
	require.NotNil(t, configs[0].ErrorPage)
	require.Equal(t, "404.html", *configs[0].ErrorPage)
	require.Equal(t, "./public", configs[0].ContentPath)
}

func Test_Manifest_Validation(t *testing.T) {
	t.Run("RejectsInvalidAccountName", func(t *testing.T) {
		m, err := Parse([]byte("accounts:\n  - name: My_Store\n    location: westeurope\n"))
		require.NoError(t, err)

		_, err = m.Resources()
		require.ErrorContains(t, err, "lowercase letters and digits")
	})

	t.Run("RejectsMissingLocation", func(t *testing.T) {
		m, err := Parse([]byte("accounts:\n  - name: mystore\n"))
		require.NoError(t, err)

		_, err = m.Resources()
		require.ErrorContains(t, err, "location is required")
	})

	t.Run("RejectsUnknownSku", func(t *testing.T) {
		m, err := Parse([]byte("accounts:\n  - name: mystore\n    location: westeurope\n    sku: Platinum_LRS\n"))
		require.NoError(t, err)

		_, err = m.Resources()
		require.ErrorContains(t, err, "unsupported storage sku")
	})

	t.Run("RejectsNegativeThreshold", func(t *testing.T) {
		yaml := `
accounts:
  - name: mystore
    location: westeurope
    lifecycleRules:
      - name: bad
        coolBlobAfter: -1
`
		m, err := Parse([]byte(yaml))
		require.NoError(t, err)

		_, err = m.Resources()
		require.ErrorContains(t, err, "thresholds must not be negative")
	})

	t.Run("RejectsUnknownRole", func(t *testing.T) {
		yaml := `
accounts:
  - name: mystore
    location: westeurope
    roleAssignments:
      - role: Galactic Overlord
        principalId: p
`
		m, err := Parse([]byte(yaml))
		require.NoError(t, err)

		_, err = m.Resources()
		require.ErrorContains(t, err, "unknown role")
	})

	t.Run("DefaultsSkuAndKind", func(t *testing.T) {
		m, err := Parse([]byte("accounts:\n  - name: mystore\n    location: westeurope\n"))
		require.NoError(t, err)

		resources, err := m.Resources()
		require.NoError(t, err)
		require.Len(t, resources, 1)

		body, err := json.Marshal(resources[0].JSONModel())
		require.NoError(t, err)

		var model map[string]any
		require.NoError(t, json.Unmarshal(body, &model))
		require.Equal(t, map[string]any{"name": "Standard_LRS"}, model["sku"])
		require.Equal(t, "StorageV2", model["kind"])
	})
}

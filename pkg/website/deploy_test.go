package website

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockServiceClient struct {
	mock.Mock
}

func (m *mockServiceClient) EnableStaticWebsite(ctx context.Context, indexPage string, errorPage *string) error {
	args := m.Called(ctx, indexPage, errorPage)
	return args.Error(0)
}

func (m *mockServiceClient) UploadFile(ctx context.Context, containerName string, blobName string, filePath string) error {
	args := m.Called(ctx, containerName, blobName, filePath)
	return args.Error(0)
}

func writeContent(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, body := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	}

	return dir
}

func Test_Deployer_Deploy(t *testing.T) {
	errorPage := "404.html"

	t.Run("Success", func(t *testing.T) {
		contentPath := writeContent(t, map[string]string{
			"index.html":   "<html/>",
			"css/site.css": "body {}",
		})

		client := &mockServiceClient{}
		client.On("EnableStaticWebsite", mock.Anything, "index.html", &errorPage).Return(nil)
		client.On("UploadFile", mock.Anything, "$web", "css/site.css", mock.Anything).Return(nil)
		client.On("UploadFile", mock.Anything, "$web", "index.html", mock.Anything).Return(nil)

		message, err := NewDeployer(client).Deploy(context.Background(), Config{
			AccountName: "mystore",
			IndexPage:   "index.html",
			ErrorPage:   &errorPage,
			ContentPath: contentPath,
		})

		require.NoError(t, err)
		require.Contains(t, message, "enabled static website on 'mystore'")
		require.Contains(t, message, "uploaded 2 blobs to $web")
		client.AssertExpectations(t)
	})

	t.Run("UploadStillRunsWhenEnableFails", func(t *testing.T) {
		contentPath := writeContent(t, map[string]string{"index.html": "<html/>"})

		client := &mockServiceClient{}
		client.On("EnableStaticWebsite", mock.Anything, "index.html", (*string)(nil)).
			Return(errors.New("forbidden"))
		client.On("UploadFile", mock.Anything, "$web", "index.html", mock.Anything).Return(nil)

		message, err := NewDeployer(client).Deploy(context.Background(), Config{
			AccountName: "mystore",
			IndexPage:   "index.html",
			ContentPath: contentPath,
		})

		require.ErrorContains(t, err, "enabling static website on 'mystore'")
		require.ErrorContains(t, err, "forbidden")
		require.Contains(t, message, "uploaded 1 blobs to $web")
		client.AssertExpectations(t)
	})

	t.Run("BothFailuresAreRetained", func(t *testing.T) {
		contentPath := writeContent(t, map[string]string{"index.html": "<html/>"})

		client := &mockServiceClient{}
		client.On("EnableStaticWebsite", mock.Anything, "index.html", (*string)(nil)).
			Return(errors.New("forbidden"))
		client.On("UploadFile", mock.Anything, "$web", "index.html", mock.Anything).
			Return(errors.New("timeout"))

		_, err := NewDeployer(client).Deploy(context.Background(), Config{
			AccountName: "mystore",
			IndexPage:   "index.html",
			ContentPath: contentPath,
		})

		require.ErrorContains(t, err, "forbidden")
		require.ErrorContains(t, err, "timeout")
	})

	t.Run("MissingContentPathFailsUploadStep", func(t *testing.T) {
		client := &mockServiceClient{}
		client.On("EnableStaticWebsite", mock.Anything, "index.html", (*string)(nil)).Return(nil)

		message, err := NewDeployer(client).Deploy(context.Background(), Config{
			AccountName: "mystore",
			IndexPage:   "index.html",
			ContentPath: filepath.Join(t.TempDir(), "missing"),
		})

		require.ErrorContains(t, err, "uploading website content")
		require.Contains(t, message, "enabled static website on 'mystore'")
		client.AssertExpectations(t)
	})
}

package website

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
)

// webContainer is the reserved container the platform serves website
// content from.
const webContainer = "$web"

// Config describes the static website to activate on a storage account.
type Config struct {
	AccountName string
	IndexPage   string
	ErrorPage   *string
	ContentPath string
}

// Deployer performs the post-deployment website activation. Retry policy
// belongs to the caller; the deployer attempts each step exactly once.
type Deployer struct {
	client ServiceClient
}

func NewDeployer(client ServiceClient) *Deployer {
	return &Deployer{client: client}
}

// Deploy enables website hosting, then uploads the content directory into
// $web. Both steps always run; the returned message concatenates each
// step's outcome and the returned error combines each step's failure.
func (d *Deployer) Deploy(ctx context.Context, cfg Config) (string, error) {
	var failures error
	var outcomes []string

	if err := d.client.EnableStaticWebsite(ctx, cfg.IndexPage, cfg.ErrorPage); err != nil {
		failures = multierr.Append(failures, fmt.Errorf("enabling static website on '%s': %w", cfg.AccountName, err))
		outcomes = append(outcomes, fmt.Sprintf("enabling static website on '%s' failed", cfg.AccountName))
	} else {
		outcomes = append(outcomes, fmt.Sprintf("enabled static website on '%s'", cfg.AccountName))
	}

	uploaded, err := d.uploadContent(ctx, cfg.ContentPath)
	if err != nil {
		failures = multierr.Append(failures, fmt.Errorf("uploading website content from '%s': %w", cfg.ContentPath, err))
		outcomes = append(outcomes, fmt.Sprintf("uploading content from '%s' failed after %d blobs", cfg.ContentPath, uploaded))
	} else {
		outcomes = append(outcomes, fmt.Sprintf("uploaded %d blobs to %s", uploaded, webContainer))
	}

	return strings.Join(outcomes, "\n"), failures
}

// uploadContent walks the content directory and uploads every regular file,
// preserving the relative path as the blob name. It stops at the first
// failed upload.
func (d *Deployer) uploadContent(ctx context.Context, contentPath string) (int, error) {
	uploaded := 0
	err := filepath.WalkDir(contentPath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(contentPath, path)
		if err != nil {
			return err
		}

		blobName := filepath.ToSlash(rel)
		log.Printf("uploading %s", blobName)

		if err := d.client.UploadFile(ctx, webContainer, blobName, path); err != nil {
			return err
		}

		uploaded++
		return nil
	})

	return uploaded, err
}

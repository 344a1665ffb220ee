package provider

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/filesystem"
	"github.com/marquee-cli/marquee/log"
	"github.com/marquee-cli/marquee/network"
	"github.com/marquee-cli/marquee/util"
)

// CatalogSyncedMsg is sent to the TUI when the local catalog changed.
type CatalogSyncedMsg struct{}

// SyncCmd syncs the catalog in the background and reports changes to the TUI.
func SyncCmd(url, path string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		updated, err := Sync(ctx, network.Client, url, path)
		if err != nil {
			log.Warnf("catalog sync: %s", err)
			return nil
		}

		if updated {
			return CatalogSyncedMsg{}
		}
		return nil
	}
}

// Sync downloads the catalog at url into path when it differs from the
// local copy. The download is validated before it replaces the local file.
func Sync(ctx context.Context, client *http.Client, url, path string) (updated bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return false, err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}

	fs := filesystem.API()
	if local, err := fs.ReadFile(path); err == nil && sha256.Sum256(local) == sha256.Sum256(body) {
		return false, nil
	}

	if _, err := catalog.DecodeList(bytes.NewReader(body)); err != nil {
		return false, fmt.Errorf("refusing invalid catalog: %w", err)
	}

	tmp := path + ".tmp"
	if err := fs.WriteFile(tmp, body, 0o644); err != nil {
		return false, err
	}

	if err := fs.Rename(tmp, path); err != nil {
		_ = fs.Remove(tmp)
		return false, err
	}

	log.Infof("catalog sync: updated %s", path)
	return true, nil
}

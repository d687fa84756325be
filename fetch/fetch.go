// Package fetch downloads the thesession.org data dumps.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/tunedex/tunedex/constants"
)

// Download fetches one dump ("tunes" or "aliases") into the data directory
// and returns its path. An existing file is left alone. A temp-dir copy is
// reused when present: trial and error runs delete and remake datasets often
// enough that the cache pays for itself.
func Download(name string) (string, error) {
	if err := os.MkdirAll(constants.GetDataDir(), 0777); err != nil {
		return "", fmt.Errorf("creating data dir: %w", err)
	}

	dest := filepath.Join(constants.GetDataDir(), name+".json")
	if _, err := os.Stat(dest); err == nil {
		return dest, nil
	}

	cached := filepath.Join(os.TempDir(), name+".json")
	if _, err := os.Stat(cached); err == nil {
		fmt.Printf("Found cached %v...\n", cached)
		return dest, copyFile(cached, dest)
	}

	url := fmt.Sprintf(constants.TheSessionDataURL, name)
	fmt.Printf("Downloading from %v...\n", url)
	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("downloading %v: %w", name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("downloading %v: unexpected status %v", name, resp.Status)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, resp.Body); err != nil {
		return "", fmt.Errorf("writing %v: %w", dest, err)
	}

	// Store a temp copy in case we need it again soon.
	copyFile(dest, cached)

	return dest, nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0666)
}

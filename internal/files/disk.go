package files

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Disk stores files on the local filesystem under a base directory and
// serves them through a public base URL.
type Disk struct {
	baseDir string
	baseURL string
	index   string // maps file id -> relative path
}

// NewDisk creates a disk-backed store rooted at baseDir.
func NewDisk(baseDir, baseURL string) *Disk {
	return &Disk{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
		index:   filepath.Join(baseDir, ".index"),
	}
}

// Upload writes data under dir and returns a stable reference.
// The id doubles as the on-disk file name so Download needs no index lookup.
func (d *Disk) Upload(ctx context.Context, data []byte, name, mime, dir string) (Ref, error) {
	if err := ctx.Err(); err != nil {
		return Ref{}, err
	}

	id := uuid.NewString()
	rel := filepath.Join(sanitizeDir(dir), id+filepath.Ext(name))
	abs := filepath.Join(d.baseDir, rel)

	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return Ref{}, err
	}
	if err := os.WriteFile(abs, data, 0644); err != nil {
		return Ref{}, err
	}
	if err := d.writeIndex(id, rel); err != nil {
		return Ref{}, err
	}

	return Ref{
		ID:   id,
		Link: d.baseURL + "/" + filepath.ToSlash(rel),
		MIME: mime,
	}, nil
}

// Download returns the file contents for a previously uploaded id.
func (d *Disk) Download(ctx context.Context, id string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rel, err := d.lookupIndex(id)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(d.baseDir, rel))
}

func (d *Disk) writeIndex(id, rel string) error {
	if err := os.MkdirAll(filepath.Dir(d.index), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(d.index, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "%s\t%s\n", id, rel)
	return err
}

func (d *Disk) lookupIndex(id string) (string, error) {
	data, err := os.ReadFile(d.index)
	if err != nil {
		return "", fmt.Errorf("file %s not found", id)
	}
	for _, line := range strings.Split(string(data), "\n") {
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) == 2 && parts[0] == id {
			return parts[1], nil
		}
	}
	return "", fmt.Errorf("file %s not found", id)
}

// sanitizeDir keeps the deterministic folder path safe for the filesystem.
func sanitizeDir(dir string) string {
	parts := strings.Split(filepath.ToSlash(dir), "/")
	clean := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == "." || p == ".." {
			continue
		}
		p = strings.Map(func(r rune) rune {
			switch r {
			case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
				return '-'
			}
			return r
		}, p)
		clean = append(clean, p)
	}
	return filepath.Join(clean...)
}

package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	storageOpEnsureDir = "generator.ensure_dir"
	storageOpWrite     = "generator.write"
	storageOpRemove    = "generator.remove"
	storageOpPromote   = "generator.promote"
	storageOpCarry     = "generator.carry_over"
)

type writeCategory string

const (
	categoryPage    writeCategory = "page"
	categoryAsset   writeCategory = "asset"
	categoryFeed    writeCategory = "feed"
	categorySitemap writeCategory = "sitemap"
	categoryRobots  writeCategory = "robots"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// writeFileRequest describes a file write routed through the artifact writer.
type writeFileRequest struct {
	Path        string
	Content     []byte
	Category    writeCategory
	ContentType string
}

// artifactWriter abstracts where generator outputs end up.
type artifactWriter interface {
	EnsureDir(ctx context.Context, path string) error
	WriteFile(ctx context.Context, req writeFileRequest) error
}

func validateOutputPath(p string) error {
	if strings.TrimSpace(p) == "" {
		return errors.New("generator: write requires path")
	}
	if !fs.ValidPath(p) || p == "." {
		return fmt.Errorf("generator: invalid output path %q", p)
	}
	return nil
}

// dirWriter writes outputs below root on the local filesystem.
type dirWriter struct {
	root string
}

func newDirWriter(root string) *dirWriter {
	return &dirWriter{root: root}
}

func (w *dirWriter) EnsureDir(ctx context.Context, p string) error {
	if strings.TrimSpace(p) == "" || p == "." {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateOutputPath(p); err != nil {
		return err
	}
	return os.MkdirAll(filepath.Join(w.root, filepath.FromSlash(p)), dirPerm)
}

func (w *dirWriter) WriteFile(ctx context.Context, req writeFileRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateOutputPath(req.Path); err != nil {
		return err
	}
	target := filepath.Join(w.root, filepath.FromSlash(req.Path))
	if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return err
	}
	return os.WriteFile(target, req.Content, filePerm)
}

// memoryWriter keeps outputs in memory. Dry runs use it so every page is
// still rendered without touching the filesystem.
type memoryWriter struct {
	files map[string][]byte
}

func newMemoryWriter() *memoryWriter {
	return &memoryWriter{files: map[string][]byte{}}
}

func (w *memoryWriter) EnsureDir(context.Context, string) error { return nil }

func (w *memoryWriter) WriteFile(ctx context.Context, req writeFileRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateOutputPath(req.Path); err != nil {
		return err
	}
	w.files[req.Path] = append([]byte(nil), req.Content...)
	return nil
}

// stagingDir creates an empty directory next to outputDir.
func stagingDir(outputDir string) (string, error) {
	parent := filepath.Dir(outputDir)
	if err := os.MkdirAll(parent, dirPerm); err != nil {
		return "", err
	}
	dir, err := os.MkdirTemp(parent, "."+filepath.Base(outputDir)+"-staging-")
	if err != nil {
		return "", err
	}
	if err := os.Chmod(dir, dirPerm); err != nil {
		_ = os.RemoveAll(dir)
		return "", err
	}
	return dir, nil
}

// carryOver copies files of the current outputDir that match one of
// patterns into staging, so promote does not drop them. Patterns use
// path.Match against the slash separated path relative to outputDir. Files
// the build produced itself win over the old copy. The copied paths are
// returned.
func carryOver(outputDir, staging string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	if _, err := os.Stat(outputDir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var kept []string
	err := fs.WalkDir(os.DirFS(outputDir), ".", func(rel string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.Type().IsRegular() || !matchesAny(patterns, rel) {
			return nil
		}
		target := filepath.Join(staging, filepath.FromSlash(rel))
		if _, err := os.Lstat(target); err == nil {
			return nil
		}
		data, err := os.ReadFile(filepath.Join(outputDir, filepath.FromSlash(rel)))
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
			return err
		}
		if err := os.WriteFile(target, data, filePerm); err != nil {
			return err
		}
		kept = append(kept, rel)
		return nil
	})
	return kept, err
}

func matchesAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, _ := path.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// promote replaces outputDir with staging. The previous tree is moved aside
// first and restored when the swap fails.
func promote(staging, outputDir string, now time.Time) error {
	previous := ""
	if _, err := os.Stat(outputDir); err == nil {
		previous = filepath.Join(filepath.Dir(outputDir),
			"."+filepath.Base(outputDir)+"-previous-"+strconv.FormatInt(now.UnixNano(), 10))
		if err := os.Rename(outputDir, previous); err != nil {
			return err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.Rename(staging, outputDir); err != nil {
		if previous != "" {
			_ = os.Rename(previous, outputDir)
		}
		return err
	}

	if previous != "" {
		return os.RemoveAll(previous)
	}
	return nil
}

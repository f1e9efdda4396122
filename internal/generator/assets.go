package generator

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
)

const cssMediaType = "text/css"

// stylesheetWriter is implemented by highlighters that ship a stylesheet.
type stylesheetWriter interface {
	WriteCSS(w io.Writer) error
}

// regularFiles lists the regular files in dir accepted by keep, sorted by
// name. A missing directory yields no files.
func regularFiles(fsys fs.FS, dir string, keep func(name string) bool) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := fs.ReadDir(fsys, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, assetError(dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() && keep(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

func isSourceStylesheet(name string) bool {
	return strings.HasSuffix(name, ".css") && !strings.HasSuffix(name, ".min.css")
}

func isMinifiedStylesheet(name string) bool {
	return strings.HasSuffix(name, ".min.css")
}

func isFont(name string) bool {
	return strings.HasSuffix(name, ".woff") || strings.HasSuffix(name, ".woff2")
}

// bundleStylesheets joins the source stylesheets of dir in name order,
// appends the highlighter stylesheet and minifies the result.
func bundleStylesheets(fsys fs.FS, dir string, highlight stylesheetWriter) ([]byte, error) {
	names, err := regularFiles(fsys, dir, isSourceStylesheet)
	if err != nil {
		return nil, err
	}

	sources := make([]string, 0, len(names)+1)
	for _, name := range names {
		p := path.Join(dir, name)
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, assetError(p, err)
		}
		sources = append(sources, string(data))
	}
	if highlight != nil {
		var buf bytes.Buffer
		if err := highlight.WriteCSS(&buf); err != nil {
			return nil, err
		}
		sources = append(sources, buf.String())
	}

	m := minify.New()
	m.AddFunc(cssMediaType, css.Minify)
	bundle, err := m.String(cssMediaType, strings.Join(sources, "\n"))
	if err != nil {
		return nil, err
	}
	return []byte(bundle), nil
}

// copyFiles copies every file of srcDir accepted by keep into outDir.
func (b *build) copyFiles(ctx context.Context, srcDir, outDir string, keep func(string) bool) error {
	names, err := regularFiles(b.source, srcDir, keep)
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := b.copyFile(ctx, path.Join(srcDir, name), path.Join(outDir, name)); err != nil {
			return err
		}
	}
	return nil
}

func (b *build) copyFile(ctx context.Context, src, dst string) error {
	data, err := fs.ReadFile(b.source, src)
	if err != nil {
		return assetError(src, err)
	}
	return b.write(ctx, writeFileRequest{
		Path:        dst,
		Content:     data,
		Category:    categoryAsset,
		ContentType: detectAssetContentType(dst),
	})
}

func (b *build) writeAssets(ctx context.Context) error {
	bundle, err := bundleStylesheets(b.source, b.cfg.StylesDir, b.stylesheet)
	if err != nil {
		return err
	}
	if err := b.write(ctx, writeFileRequest{
		Path:        bundlePath,
		Content:     bundle,
		Category:    categoryAsset,
		ContentType: cssMediaType,
	}); err != nil {
		return err
	}

	if err := b.copyFiles(ctx, b.cfg.StylesDir, stylesOutDir, isMinifiedStylesheet); err != nil {
		return err
	}
	if err := b.copyFiles(ctx, b.cfg.FontsDir, fontsOutDir, isFont); err != nil {
		return err
	}

	if b.cfg.ImagesDir == "" {
		return nil
	}
	favicon := path.Join(b.cfg.ImagesDir, faviconFile)
	if _, err := fs.Stat(b.source, favicon); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			b.logger.Debug("generator.asset.skipped", "path", favicon, "reason", "missing")
			return nil
		}
		return assetError(favicon, err)
	}
	return b.copyFile(ctx, favicon, faviconFile)
}

func detectAssetContentType(asset string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(asset), "."))
	switch ext {
	case "css":
		return "text/css"
	case "js":
		return "application/javascript"
	case "svg":
		return "image/svg+xml"
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	case "ico":
		return "image/x-icon"
	case "woff":
		return "font/woff"
	case "woff2":
		return "font/woff2"
	default:
		return "application/octet-stream"
	}
}

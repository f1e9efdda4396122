package articles

import (
	"context"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/goliatone/go-publish/internal/identity"
	"github.com/goliatone/go-publish/internal/logging"
	"github.com/goliatone/go-publish/internal/markdown"
	"github.com/goliatone/go-publish/pkg/interfaces"
)

// ParseOptions configures ParseDir.
type ParseOptions struct {
	// Parser builds the syntax tree. Nil selects a default markdown.Engine.
	Parser interfaces.MarkdownParser
	// Tags expands raw filename tags. Nil keeps them unchanged.
	Tags          TagMapper
	IncludeDrafts bool
	Logger        interfaces.Logger
}

// ParseDir loads every article directly inside dir. Entries that are not
// regular .md files or whose names do not follow the article naming scheme
// are skipped. Read failures and invalid dates abort the scan.
//
// The result is ordered by publication date, newest first.
func ParseDir(ctx context.Context, fsys fs.FS, dir string, opts ParseOptions) ([]*Article, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, readError(dir, err)
	}

	parser := opts.Parser
	if parser == nil {
		parser = markdown.NewEngine(markdown.Options{})
	}
	logger := logging.OrNoOp(opts.Logger)

	list := make([]*Article, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.Type().IsRegular() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}

		filename := ParseFilename(strings.TrimSuffix(entry.Name(), Extension))
		if !filename.Valid() {
			logger.Debug("articles.skipped", "file", entry.Name(), "reason", "filename")
			continue
		}

		article, err := loadArticle(fsys, path.Join(dir, entry.Name()), filename, parser, opts.Tags)
		if err != nil {
			return nil, err
		}
		if article.Draft && !opts.IncludeDrafts {
			logger.Debug("articles.skipped", "file", entry.Name(), "reason", "draft")
			continue
		}

		logging.WithArticleContext(logger, article.Name, article.SourcePath, "parse").
			Info("articles.parsed", "title", article.Title(), "tags", article.Tags, "published", article.Published)
		list = append(list, article)
	}

	slices.SortStableFunc(list, func(a, b *Article) int {
		return b.Published.Compare(a.Published)
	})
	return list, nil
}

func loadArticle(fsys fs.FS, sourcePath string, filename Filename, parser interfaces.MarkdownParser, mapper TagMapper) (*Article, error) {
	data, err := fs.ReadFile(fsys, sourcePath)
	if err != nil {
		return nil, readError(sourcePath, err)
	}
	info, err := fs.Stat(fsys, sourcePath)
	if err != nil {
		return nil, readError(sourcePath, err)
	}

	published, err := ParsePublished(filename.Published)
	if err != nil {
		return nil, dateError(sourcePath, err)
	}

	meta, body := splitFrontMatter(data)

	lastModified := info.ModTime().UTC()
	if lastModified.IsZero() {
		lastModified = published
	}

	rawTags := append(slices.Clone(filename.Tags), meta.Tags...)

	return &Article{
		ID:           identity.ArticleUUID(filename.Name, filename.Published),
		Name:         filename.Name,
		Body:         &Document{Root: parser.Parse(body), Source: body},
		Published:    published,
		LastModified: lastModified,
		Tags:         NormalizeTags(rawTags, mapper),
		Summary:      strings.TrimSpace(meta.Summary),
		Draft:        meta.Draft,
		SourcePath:   sourcePath,
	}, nil
}

package generator

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeOutputWrite    = "OUTPUT_WRITE_FAILED"
	textCodeTemplateRender = "TEMPLATE_RENDER_FAILED"
	textCodeAssetRead      = "ASSET_READ_FAILED"
	textCodeArticleName    = "ARTICLE_NAME_INVALID"
)

var (
	// ErrTemplateNotFound reports a render call for an unknown template.
	ErrTemplateNotFound = errors.New("generator: template not found")
	errEngineRequired   = errors.New("generator: markdown engine is required")
	errSourceRequired   = errors.New("generator: source filesystem is required")
	errOutputRequired   = errors.New("generator: output directory is required")
	errTemplateRequired = errors.New("generator: template renderer is required")
)

func writeError(path string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, fmt.Sprintf("write %s: %v", path, err)).
		WithTextCode(textCodeOutputWrite)
}

func templateError(name, target string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, fmt.Sprintf("render template %s for %s: %v", name, target, err)).
		WithTextCode(textCodeTemplateRender)
}

func assetError(path string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, fmt.Sprintf("read asset %s: %v", path, err)).
		WithTextCode(textCodeAssetRead)
}

func articleNameError(source, name string) error {
	err := fmt.Errorf("article name %q cannot be used as a directory", name)
	return goerrors.Wrap(err, goerrors.CategoryValidation, fmt.Sprintf("article %s: %v", source, err)).
		WithTextCode(textCodeArticleName)
}

package articles

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeArticleRead = "ARTICLE_READ_FAILED"
	textCodeArticleDate = "ARTICLE_DATE_INVALID"
)

func readError(path string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, fmt.Sprintf("read article %s: %v", path, err)).
		WithTextCode(textCodeArticleRead)
}

func dateError(path string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryValidation, fmt.Sprintf("article %s: %v", path, err)).
		WithTextCode(textCodeArticleDate)
}

package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must prefix keys by entity type to avoid collisions.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// ArticleUUID identifies an article by its display name and publish date, so
// the id survives content edits but changes when the article is re-dated.
func ArticleUUID(name string, published string) uuid.UUID {
	return UUID("go-publish:article:" + strings.TrimSpace(published) + ":" + strings.TrimSpace(name))
}

// TagUUID identifies a canonical tag.
func TagUUID(tag string) uuid.UUID {
	return UUID("go-publish:tag:" + strings.ToLower(strings.TrimSpace(tag)))
}

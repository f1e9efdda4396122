package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/aymerick/raymond"

	"github.com/goliatone/go-publish/internal/articles"
	"github.com/goliatone/go-publish/pkg/interfaces"
)

// rssDateLayout matches the HTTP date format used by RSS readers.
const rssDateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

var germanWeekdays = [...]string{
	"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
}

var germanMonths = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// FullDate formats t like "Donnerstag, 4. März 2021".
func FullDate(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%s, %d. %s %d", germanWeekdays[t.Weekday()], t.Day(), germanMonths[t.Month()-1], t.Year())
}

// ShortDate formats t like "04.03.2021".
func ShortDate(t time.Time) string {
	return t.UTC().Format("02.01.2006")
}

// ISODate formats t like "2021-03-04".
func ISODate(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// RSSDate formats t like "Thu, 04 Mar 2021 00:00:00 GMT".
func RSSDate(t time.Time) string {
	return t.UTC().Format(rssDateLayout)
}

func asTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	default:
		return time.Time{}, false
	}
}

func dateHelper(format func(time.Time) string) func(any) string {
	return func(value any) string {
		t, ok := asTime(value)
		if !ok || t.IsZero() {
			return ""
		}
		return format(t)
	}
}

func asDocument(value any) *articles.Document {
	switch v := value.(type) {
	case *articles.Document:
		return v
	case articles.Document:
		return &v
	case *articles.Article:
		if v == nil {
			return nil
		}
		return v.Body
	case ArticleView:
		return v.Body
	case *ArticleView:
		if v == nil {
			return nil
		}
		return v.Body
	default:
		return nil
	}
}

// templateHelpers returns the helper set registered on every template.
func templateHelpers(renderer interfaces.MarkdownRenderer) map[string]any {
	return map[string]any{
		"fullDate":  dateHelper(FullDate),
		"shortDate": dateHelper(ShortDate),
		"isoDate":   dateHelper(ISODate),
		"rssDate":   dateHelper(RSSDate),
		"md": func(value any) raymond.SafeString {
			doc := asDocument(value)
			if doc == nil || doc.Root == nil || renderer == nil {
				return ""
			}
			var b strings.Builder
			if err := renderer.Render(&b, doc.Source, doc.Root); err != nil {
				panic(err)
			}
			return raymond.SafeString(b.String())
		},
		"usesMermaid": func(value any) bool {
			doc := asDocument(value)
			return doc != nil && doc.UsesMermaid()
		},
		"join": func(value any) string {
			switch v := value.(type) {
			case []string:
				return strings.Join(v, ", ")
			case string:
				return v
			default:
				return ""
			}
		},
	}
}

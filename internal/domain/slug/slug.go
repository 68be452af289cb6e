package slug

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// Make generates a URL-safe base slug from a human-readable name.
// Example: "Test Diamond" -> "test-diamond"
func Make(name string) string {
	base := strings.ToLower(strings.TrimSpace(name))
	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" {
		base = "untitled"
	}
	return base
}

// Unique returns the first of base, base-1, base-2, ... with no existing row
// in model's table. selfSlug excludes the record being updated so it can keep
// its own slug.
func Unique(db *gorm.DB, model any, base string, selfSlug string) (string, error) {
	candidate := base
	for i := 1; ; i++ {
		q := db.Model(model).Where("slug = ?", candidate)
		if selfSlug != "" {
			q = q.Where("slug <> ?", selfSlug)
		}
		var n int64
		if err := q.Count(&n).Error; err != nil {
			return "", err
		}
		if n == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

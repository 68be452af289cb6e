package query

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"lumiere-backend/internal/repo"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Params builds the shared list envelope from the request. Pagination accepts
// either limit/offset or page/pageSize; sort takes "field:direction" checked
// against the resource's allowlist of json field -> column.
func Params(c *gin.Context, sortable map[string]string, defaultSort string) repo.ListParams {
	limit, offset := pagination(c)
	return repo.ListParams{
		Limit:       limit,
		Offset:      offset,
		OrderClause: sortClause(c.Query("sort"), sortable, defaultSort),
	}
}

func pagination(c *gin.Context) (limit, offset int) {
	limit = intQuery(c, "limit", 0)
	offset = intQuery(c, "offset", 0)

	if limit == 0 {
		if pageSize := intQuery(c, "pageSize", 0); pageSize > 0 {
			limit = pageSize
			if page := intQuery(c, "page", 1); page > 1 {
				offset = (page - 1) * pageSize
			}
		}
	}

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func sortClause(raw string, sortable map[string]string, fallback string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}

	field := raw
	dir := "ASC"
	if i := strings.IndexByte(raw, ':'); i >= 0 {
		field = raw[:i]
		if strings.EqualFold(raw[i+1:], "desc") {
			dir = "DESC"
		}
	}

	column, ok := sortable[field]
	if !ok {
		return fallback
	}
	return column + " " + dir
}

// BoolQuery parses a flag parameter, returning nil when absent or malformed.
func BoolQuery(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// CSV splits a comma-separated parameter such as an id or slug set.
func CSV(c *gin.Context, name string) []string {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

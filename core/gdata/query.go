package gdata

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Query is a set of GData URL query parameters.
// It is a plain map; the accessors below cover the common parameters.
type Query map[string]string

// Standard GData query parameter names
const (
	ParamTextQuery    = "q"
	ParamMaxResults   = "max-results"
	ParamStartIndex   = "start-index"
	ParamOrderBy      = "orderby"
	ParamAuthor       = "author"
	ParamAlt          = "alt"
	ParamUpdatedMin   = "updated-min"
	ParamUpdatedMax   = "updated-max"
	ParamPublishedMin = "published-min"
	ParamPublishedMax = "published-max"
)

// TextQuery returns the full-text "q" parameter
func (q Query) TextQuery() string {
	return q[ParamTextQuery]
}

// SetTextQuery sets the full-text "q" parameter
func (q Query) SetTextQuery(text string) {
	q[ParamTextQuery] = text
}

// MaxResults returns max-results, or 0 when unset or malformed
func (q Query) MaxResults() int {
	n, _ := strconv.Atoi(q[ParamMaxResults])
	return n
}

// SetMaxResults sets max-results
func (q Query) SetMaxResults(n int) {
	q[ParamMaxResults] = strconv.Itoa(n)
}

// StartIndex returns start-index, or 0 when unset or malformed
func (q Query) StartIndex() int {
	n, _ := strconv.Atoi(q[ParamStartIndex])
	return n
}

// SetStartIndex sets the 1-based start-index
func (q Query) SetStartIndex(n int) {
	q[ParamStartIndex] = strconv.Itoa(n)
}

// OrderBy returns the orderby parameter
func (q Query) OrderBy() string {
	return q[ParamOrderBy]
}

// SetOrderBy sets the orderby parameter
func (q Query) SetOrderBy(order string) {
	q[ParamOrderBy] = order
}

// ToURI appends the encoded parameters to feed
func (q Query) ToURI(feed string) string {
	return AppendParams(feed, q, true)
}

// ParamList renders params as "key=value" strings sorted by key, escaping
// both sides with query escaping when escape is true.
func ParamList(params map[string]string, escape bool) []string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if escape {
			out = append(out, url.QueryEscape(k)+"="+url.QueryEscape(params[k]))
		} else {
			out = append(out, k+"="+params[k])
		}
	}
	return out
}

// AppendParams adds params to uri, joining with "?" or "&" as appropriate
func AppendParams(uri string, params map[string]string, escape bool) string {
	if len(params) == 0 {
		return uri
	}
	sep := "?"
	if strings.Contains(uri, "?") {
		sep = "&"
	}
	return uri + sep + strings.Join(ParamList(params, escape), "&")
}

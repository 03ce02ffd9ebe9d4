package gbase

import "gbase-api/core/gdata"

// ParamBQ is the Google Base query language parameter
const ParamBQ = "bq"

// Query holds URL query parameters for a Google Base feed.
// It is a plain map; BQ and the generic GData accessors are conveniences.
type Query map[string]string

// NewQuery creates an empty query
func NewQuery() Query {
	return Query{}
}

// BQ returns the Google Base query, e.g. "[item type:products][price < 100 usd]"
func (q Query) BQ() string {
	return q[ParamBQ]
}

// SetBQ sets the Google Base query
func (q Query) SetBQ(bq string) {
	q[ParamBQ] = bq
}

// TextQuery returns the full-text "q" parameter
func (q Query) TextQuery() string {
	return gdata.Query(q).TextQuery()
}

// SetTextQuery sets the full-text "q" parameter
func (q Query) SetTextQuery(text string) {
	gdata.Query(q).SetTextQuery(text)
}

// MaxResults returns max-results, or 0 when unset
func (q Query) MaxResults() int {
	return gdata.Query(q).MaxResults()
}

// SetMaxResults sets max-results
func (q Query) SetMaxResults(n int) {
	gdata.Query(q).SetMaxResults(n)
}

// StartIndex returns start-index, or 0 when unset
func (q Query) StartIndex() int {
	return gdata.Query(q).StartIndex()
}

// SetStartIndex sets the 1-based start-index
func (q Query) SetStartIndex(n int) {
	gdata.Query(q).SetStartIndex(n)
}

// SetOrderBy sets the orderby parameter
func (q Query) SetOrderBy(order string) {
	gdata.Query(q).SetOrderBy(order)
}

// ToURI returns feed with the escaped parameters appended
func (q Query) ToURI(feed string) string {
	return gdata.Query(q).ToURI(feed)
}

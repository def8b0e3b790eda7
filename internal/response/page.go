package response

import (
	"net/url"
	"strconv"
)

// Page is the paginated list body: total count, links to the neighbouring
// pages (nil when there is none), and the rows for the current page.
type Page struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// NewPage builds a Page for a 1-based page number over count total rows.
// Links preserve the caller's query string with only `page` swapped out.
func NewPage(path string, query url.Values, page, pageSize, count int, results interface{}) Page {
	totalPages := (count + pageSize - 1) / pageSize

	p := Page{Count: count, Results: results}
	if page < totalPages {
		p.Next = pageLink(path, query, page+1)
	}
	if page > 1 && page <= totalPages+1 {
		p.Previous = pageLink(path, query, page-1)
	}
	return p
}

func pageLink(path string, query url.Values, page int) *string {
	q := url.Values{}
	for k, vs := range query {
		q[k] = append([]string(nil), vs...)
	}
	q.Set("page", strconv.Itoa(page))
	link := path + "?" + q.Encode()
	return &link
}

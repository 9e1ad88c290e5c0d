package render

import (
	"fmt"
	"html/template"
	"net/url"
	"strconv"

	"github.com/matt-dz/recipebox/internal/form"
)

func funcs(images ImageURLs) template.FuncMap {
	return template.FuncMap{
		"imageURL": func(key *string) string {
			if key == nil || *key == "" || images == nil {
				return ""
			}
			return images.URL(*key)
		},
		// pageURL keeps the current query and swaps the page number.
		"pageURL": func(v url.Values, page int) string {
			q := url.Values{}
			for k, vs := range v {
				q[k] = append([]string(nil), vs...)
			}
			q.Set("page", strconv.Itoa(page))
			return "?" + q.Encode()
		},
		"optInt": func(p *int) string {
			if p == nil {
				return ""
			}
			return strconv.Itoa(*p)
		},
		"isID": func(p *int64, id int64) bool {
			return p != nil && *p == id
		},
		"rowName": func(prefix string, i int, field string) string {
			return fmt.Sprintf("%s-%d-%s", prefix, i, field)
		},
		"rowError": func(errs form.Errors, prefix string, i int, field string) string {
			return errs[fmt.Sprintf("%s-%d-%s", prefix, i, field)]
		},
		"rating": func(avg float64) string {
			return strconv.FormatFloat(avg, 'f', 1, 64)
		},
	}
}

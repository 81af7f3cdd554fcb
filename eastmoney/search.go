package eastmoney

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/totalreturn"
)

// SearchResult is one code/name match from the whole-market listing.
type SearchResult struct {
	Code string `json:"f12"`
	Name string `json:"f14"`
}

// fs selects all Shanghai and Shenzhen A-share listings.
const listMarkets = "m:0+t:6,m:0+t:80,m:1+t:2,m:1+t:23"

// codeNameList fetches the whole-market code/name map.
func (c *Client) codeNameList() ([]SearchResult, error) {
	// {"data":{"diff":[{"f12":"600000","f14":"浦发银行"},...]}}
	addr := fmt.Sprintf("%s?pn=1&pz=10000&fields=f12,f14&fs=%s", c.ListURL, listMarkets)
	var payload struct {
		Data struct {
			Diff []SearchResult `json:"diff"`
		} `json:"data"`
	}
	if err := jwget(c.HTTP, addr, &payload); err != nil {
		return nil, fmt.Errorf("%w: code/name list: %v", totalreturn.ErrProviderUnavailable, err)
	}
	return payload.Data.Diff, nil
}

// Search matches a free-form term against codes and names of the whole
// market listing. An exact code match wins, otherwise every listing whose
// name or code contains the term is returned.
func (c *Client) Search(ctx context.Context, term string) ([]SearchResult, error) {
	list, err := c.codeNameList()
	if err != nil {
		return nil, err
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}
	code := NormalizeSymbol(term)
	var results []SearchResult
	for _, item := range list {
		if item.Code == code {
			return []SearchResult{item}, nil
		}
		if strings.Contains(item.Name, term) || strings.Contains(item.Code, term) {
			results = append(results, item)
		}
	}
	return results, nil
}

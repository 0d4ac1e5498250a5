package marketdata

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
	"papertrade"
)

// Client fetches quotes from the Yahoo Finance quote endpoint.
//
// Responses are cached on disk with a daily expiry, the simulation does not
// need anything fresher than that.
type Client struct {
	base   string // endpoint base, overridable in tests
	client *http.Client
}

const yahooBase = "https://query1.finance.yahoo.com/v7/finance/quote"

// NewClient returns a quote client against the public Yahoo endpoint.
func NewClient() *Client {
	return &Client{base: yahooBase, client: daily()}
}

/*
	{
	    "quoteResponse": {
	        "result": [
	            {
	                "shortName": "Tesla, Inc.",
	                "regularMarketPrice": 201.88,
	                "trailingPE": 57.6
	            }
	        ],
	        "error": null
	    }
	}
*/
func (c *Client) Fetch(ticker string) (Quote, error) {
	ticker = papertrade.NormalizeTicker(ticker)
	addr := c.base + "?symbols=" + url.QueryEscape(ticker)

	var jobj any
	if err := jwget(c.client, addr, &jobj); err != nil {
		return Quote{}, fmt.Errorf("error retrieving %q: %w: %w", ticker, ErrUnavailable, err)
	}

	price, err := jfloat(jobj, "$.quoteResponse.result[0].regularMarketPrice")
	if err != nil {
		// An unknown ticker yields an empty result list, not an HTTP error.
		return Quote{}, fmt.Errorf("no quote for %q: %w", ticker, ErrUnavailable)
	}
	// The source has no trailing P/E for unprofitable companies; treat it as zero.
	pe, err := jfloat(jobj, "$.quoteResponse.result[0].trailingPE")
	if err != nil {
		pe = 0
	}
	name := ticker
	if n, err := jstring(jobj, "$.quoteResponse.result[0].shortName"); err == nil {
		name = n
	}

	return Quote{
		Name:  name,
		Price: decimal.NewFromFloat(price),
		PE:    decimal.NewFromFloat(pe),
	}, nil
}

// jfloat extracts a single float value from a decoded JSON document.
func jfloat(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer,
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing %q: not a float: %v", path, jval)
	}
	return val, nil
}

// jstring extracts a single string value from a decoded JSON document.
func jstring(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("error parsing %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("error parsing %q: not a string: %v", path, jval)
	}
	return val, nil
}

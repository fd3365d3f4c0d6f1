package quotes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/financialking/budget-service/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewClient(&config.Config{QuotesURL: server.URL}, log)
}

func TestLookupPrice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		symbol := r.URL.Query().Get("symbol")
		fmt.Fprintf(w, `<?xml version="1.0" encoding="utf-8"?>
			<quote>
				<symbol>%s</symbol>
				<price>189.34</price>
			</quote>`, symbol)
	})

	price, err := client.LookupPrice(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "189.34", price.String())
}

func TestLookupPriceMissingPrice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<quote><symbol>AAPL</symbol></quote>`)
	})

	_, err := client.LookupPrice(context.Background(), "AAPL")
	assert.ErrorContains(t, err, "no price data")
}

func TestLookupPriceBadXML(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"price": 189.34}`)
	})

	_, err := client.LookupPrice(context.Background(), "AAPL")
	assert.Error(t, err)
}

func TestLookupPriceServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "feed down", http.StatusServiceUnavailable)
	})

	_, err := client.LookupPrice(context.Background(), "AAPL")
	assert.ErrorContains(t, err, "unexpected status code: 503")
}

func TestLookupPriceUnparsablePrice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<quote><symbol>AAPL</symbol><price>n/a</price></quote>`)
	})

	_, err := client.LookupPrice(context.Background(), "AAPL")
	assert.ErrorContains(t, err, "failed to parse price")
}

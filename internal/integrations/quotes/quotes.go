package quotes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/financialking/budget-service/internal/config"
)

// Client handles integration with the market data quote feed
type Client struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewClient initializes a new quote feed client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url: cfg.QuotesURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// sendRequest fetches the raw XML quote document for a symbol
func (c *Client) sendRequest(ctx context.Context, symbol string) ([]byte, error) {
	reqURL := fmt.Sprintf("%s?symbol=%s", c.url, url.QueryEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	c.log.Debugf("Quote feed XML response for %s: %s", symbol, string(body))

	return body, nil
}

// parseXMLResponse extracts the price from a quote document
func (c *Client) parseXMLResponse(rawBody []byte) (decimal.Decimal, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse XML: %v", err)
	}

	priceElement := doc.FindElement("//quote/price")
	if priceElement == nil {
		return decimal.Zero, fmt.Errorf("no price data found in XML")
	}

	price, err := decimal.NewFromString(priceElement.Text())
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse price: %v", err)
	}

	return price, nil
}

// LookupPrice retrieves the current price for a ticker symbol
func (c *Client) LookupPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	body, err := c.sendRequest(ctx, symbol)
	if err != nil {
		return decimal.Zero, err
	}

	price, err := c.parseXMLResponse(body)
	if err != nil {
		return decimal.Zero, err
	}

	c.log.Debugf("Retrieved price for %s: %s", symbol, price.String())
	return price, nil
}

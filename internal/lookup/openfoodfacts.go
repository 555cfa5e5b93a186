// Package lookup wraps the OpenFoodFacts search API. Lookup failures are
// non-fatal by contract: every fault degrades to an empty suggestion list.
package lookup

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fitlog/internal/logger"
	"fitlog/internal/models"

	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL  = "https://world.openfoodfacts.org"
	defaultTimeout  = 10 * time.Second
	defaultPageSize = 10
	maxPageSize     = 10

	searchPath = "/cgi/search.pl"

	unknownName = "Unknown"
)

type Config struct {
	BaseURL  string
	Timeout  time.Duration
	PageSize int
}

// Client issues one outbound search per call. No caching, no retries.
type Client struct {
	http     *resty.Client
	pageSize int
	log      *logger.Logger
}

func NewClient(cfg Config, log *logger.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.PageSize <= 0 || cfg.PageSize > maxPageSize {
		cfg.PageSize = defaultPageSize
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{http: cli, pageSize: cfg.PageSize, log: log}
}

// searchResponse mirrors the slice of the upstream payload we care about.
type searchResponse struct {
	Products []struct {
		ProductName string `json:"product_name"`
		Brands      string `json:"brands"`
		Nutriments  struct {
			EnergyKcal100g    float64 `json:"energy-kcal_100g"`
			Proteins100g      float64 `json:"proteins_100g"`
			Carbohydrates100g float64 `json:"carbohydrates_100g"`
			Fat100g           float64 `json:"fat_100g"`
			Sodium100g        float64 `json:"sodium_100g"`
			Sugars100g        float64 `json:"sugars_100g"`
			Fiber100g         float64 `json:"fiber_100g"`
		} `json:"nutriments"`
	} `json:"products"`
}

// Search queries the upstream food database and normalizes each hit.
// A blank query short-circuits without a network call. Transport faults,
// non-200 responses, decode failures, and a missing product list all return
// an empty slice.
func (c *Client) Search(ctx context.Context, query string) []models.NutritionFacts {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.NutritionFacts{}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"search_terms":  query,
			"search_simple": "1",
			"action":        "process",
			"json":          "1",
			"page_size":     strconv.Itoa(c.pageSize),
		}).
		Get(searchPath)
	if err != nil {
		c.warn("lookup_request_failed", "err", err, "query", query)
		return []models.NutritionFacts{}
	}
	if resp.StatusCode() != http.StatusOK {
		c.warn("lookup_bad_status", "status", resp.StatusCode(), "query", query)
		return []models.NutritionFacts{}
	}

	var sr searchResponse
	if err := json.Unmarshal(resp.Body(), &sr); err != nil {
		c.warn("lookup_decode_failed", "err", err, "query", query)
		return []models.NutritionFacts{}
	}

	out := make([]models.NutritionFacts, 0, len(sr.Products))
	for _, p := range sr.Products {
		if len(out) == c.pageSize {
			break
		}
		name := strings.TrimSpace(p.ProductName)
		if name == "" {
			name = unknownName
		}
		out = append(out, models.NutritionFacts{
			Name:     name,
			Brand:    strings.TrimSpace(p.Brands),
			Calories: p.Nutriments.EnergyKcal100g,
			Protein:  p.Nutriments.Proteins100g,
			Carbs:    p.Nutriments.Carbohydrates100g,
			Fat:      p.Nutriments.Fat100g,
			Sodium:   p.Nutriments.Sodium100g,
			Sugar:    p.Nutriments.Sugars100g,
			Fiber:    p.Nutriments.Fiber100g,
		})
	}
	return out
}

func (c *Client) warn(msg string, kv ...interface{}) {
	if c.log != nil {
		c.log.Warnw(msg, kv...)
	}
}

//go:build integration

package router_test

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v
//
// Covered flows:
//   - purchase draft → post → stock/avg cost updated → movement written
//   - sale post → COGS/profit filled, insufficient stock rejected
//   - unpost round-trip restores stock and keeps the document number
//   - treasury record + balance aggregation
//   - price lookup by barcode (second hit served from cache)

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/4supreme/business-application/internal/config"
	"github.com/4supreme/business-application/internal/infra"
	"github.com/4supreme/business-application/internal/router"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("business_test"),
		tcPostgres.WithUsername("business"),
		tcPostgres.WithPassword("business"),
		testcontainers.WithWaitStrategy(
			tcPostgres.BasicWaitStrategies()...,
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx, testcontainers.WithImage("redis:7-alpine"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:        8000,
		Env:         "test",
		DatabaseURL: pgURL,
		RedisURL:    rdURL,
		RateLimit:   1000,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	srv := httptest.NewServer(router.New(cfg, db, rdb))
	t.Cleanup(srv.Close)
	return srv
}

type productJSON struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	QtyOnHand decimal.Decimal `json:"qty_on_hand"`
	AvgCost   decimal.Decimal `json:"avg_cost"`
}

type documentJSON struct {
	ID          uint            `json:"id"`
	Status      string          `json:"status"`
	Number      *string         `json:"number"`
	Total       decimal.Decimal `json:"total"`
	TotalCOGS   decimal.Decimal `json:"total_cogs"`
	GrossProfit decimal.Decimal `json:"gross_profit"`
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func createProduct(t *testing.T, srv *httptest.Server, name, barcode string) productJSON {
	t.Helper()
	body := map[string]any{"name": name}
	if barcode != "" {
		body["barcode"] = barcode
	}
	resp := do(t, srv, "POST", "/v1/products", jsonBody(t, body))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var p productJSON
	decodeJSON(t, resp, &p)
	return p
}

func createAndPost(t *testing.T, srv *httptest.Server, docType string, productID uint, qty, price string) documentJSON {
	t.Helper()
	resp := do(t, srv, "POST", "/v1/documents", jsonBody(t, map[string]any{
		"type":  docType,
		"lines": []map[string]any{{"product_id": productID, "qty": qty, "price": price}},
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var doc documentJSON
	decodeJSON(t, resp, &doc)

	postResp := do(t, srv, "POST", fmt.Sprintf("/v1/documents/%d/post", doc.ID), nil)
	require.Equal(t, http.StatusOK, postResp.StatusCode)
	decodeJSON(t, postResp, &doc)
	return doc
}

func getProduct(t *testing.T, srv *httptest.Server, id uint) productJSON {
	t.Helper()
	resp := do(t, srv, "GET", fmt.Sprintf("/v1/products/%d", id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var p productJSON
	decodeJSON(t, resp, &p)
	return p
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_PurchaseSaleCycle(t *testing.T) {
	srv := setupServer(t)

	p := createProduct(t, srv, "Widget", "")

	// Receive 10 @ 10.00, then 5 @ 16.00 → qty 15, avg 12.00
	doc := createAndPost(t, srv, "purchase", p.ID, "10", "10.00")
	assert.Equal(t, "posted", doc.Status)
	require.NotNil(t, doc.Number)
	createAndPost(t, srv, "purchase", p.ID, "5", "16.00")

	got := getProduct(t, srv, p.ID)
	assert.True(t, got.QtyOnHand.Equal(dec("15")), "qty, got %s", got.QtyOnHand)
	assert.True(t, got.AvgCost.Equal(dec("12")), "avg cost, got %s", got.AvgCost)

	// Sell 2 @ 16.00 → COGS 24.00, profit 8.00
	sale := createAndPost(t, srv, "sale", p.ID, "2", "16.00")
	assert.True(t, sale.Total.Equal(dec("32")))
	assert.True(t, sale.TotalCOGS.Equal(dec("24")))
	assert.True(t, sale.GrossProfit.Equal(dec("8")))

	got = getProduct(t, srv, p.ID)
	assert.True(t, got.QtyOnHand.Equal(dec("13")))
	assert.True(t, got.AvgCost.Equal(dec("12")))

	// Movement ledger holds one row per posted line.
	movResp := do(t, srv, "GET", fmt.Sprintf("/v1/movements?product_id=%d", p.ID), nil)
	require.Equal(t, http.StatusOK, movResp.StatusCode)
	var movements struct {
		Total int64 `json:"total"`
	}
	decodeJSON(t, movResp, &movements)
	assert.Equal(t, int64(3), movements.Total)
}

func TestE2E_SaleInsufficientStock(t *testing.T) {
	srv := setupServer(t)
	p := createProduct(t, srv, "Gadget", "")

	resp := do(t, srv, "POST", "/v1/documents", jsonBody(t, map[string]any{
		"type":  "sale",
		"lines": []map[string]any{{"product_id": p.ID, "qty": "1", "price": "9.99"}},
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var doc documentJSON
	decodeJSON(t, resp, &doc)

	postResp := do(t, srv, "POST", fmt.Sprintf("/v1/documents/%d/post", doc.ID), nil)
	defer postResp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, postResp.StatusCode)

	// Still a draft, stock untouched.
	got := getProduct(t, srv, p.ID)
	assert.True(t, got.QtyOnHand.IsZero())
}

func TestE2E_UnpostRoundTrip(t *testing.T) {
	srv := setupServer(t)
	p := createProduct(t, srv, "Bolt M6", "")

	doc := createAndPost(t, srv, "purchase", p.ID, "5", "16.00")
	require.NotNil(t, doc.Number)
	number := *doc.Number

	unpostResp := do(t, srv, "POST", fmt.Sprintf("/v1/documents/%d/unpost", doc.ID), nil)
	require.Equal(t, http.StatusOK, unpostResp.StatusCode)
	var unposted documentJSON
	decodeJSON(t, unpostResp, &unposted)
	assert.Equal(t, "draft", unposted.Status)
	require.NotNil(t, unposted.Number)
	assert.Equal(t, number, *unposted.Number)

	got := getProduct(t, srv, p.ID)
	assert.True(t, got.QtyOnHand.IsZero())
	assert.True(t, got.AvgCost.IsZero())

	// Repost keeps the original number.
	repostResp := do(t, srv, "POST", fmt.Sprintf("/v1/documents/%d/post", doc.ID), nil)
	require.Equal(t, http.StatusOK, repostResp.StatusCode)
	var reposted documentJSON
	decodeJSON(t, repostResp, &reposted)
	assert.Equal(t, number, *reposted.Number)
}

func TestE2E_TreasuryBalance(t *testing.T) {
	srv := setupServer(t)

	for _, txn := range []map[string]any{
		{"account": "cash", "direction": "in", "amount": "100.00"},
		{"account": "cash", "direction": "out", "amount": "30.00"},
		{"account": "bank", "direction": "in", "amount": "50.00"},
	} {
		resp := do(t, srv, "POST", "/v1/treasury/transactions", jsonBody(t, txn))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	balResp := do(t, srv, "GET", "/v1/treasury/balance", nil)
	require.Equal(t, http.StatusOK, balResp.StatusCode)
	var bal struct {
		Cash  decimal.Decimal `json:"cash"`
		Bank  decimal.Decimal `json:"bank"`
		Total decimal.Decimal `json:"total"`
	}
	decodeJSON(t, balResp, &bal)
	assert.True(t, bal.Cash.Equal(dec("70")), "cash, got %s", bal.Cash)
	assert.True(t, bal.Bank.Equal(dec("50")), "bank, got %s", bal.Bank)
	assert.True(t, bal.Total.Equal(dec("120")), "total, got %s", bal.Total)
}

func TestE2E_PriceLookupCached(t *testing.T) {
	srv := setupServer(t)
	p := createProduct(t, srv, "Gaseosa 500ml", "77900010000017")
	createAndPost(t, srv, "purchase", p.ID, "10", "10.00")

	for i := 0; i < 2; i++ { // second hit comes from redis
		resp := do(t, srv, "GET", "/v1/price/77900010000017", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var price struct {
			Name string `json:"name"`
		}
		decodeJSON(t, resp, &price)
		assert.Equal(t, "Gaseosa 500ml", price.Name)
	}

	missResp := do(t, srv, "GET", "/v1/price/00000000000000", nil)
	defer missResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, missResp.StatusCode)
}

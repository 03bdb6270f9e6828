package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"cash-wallet-tracker/internal/core/domain"
	"cash-wallet-tracker/internal/core/ports"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the advisory collaborator over HTTP JSON. It implements
// ports.AdvisoryClient; callers own the fallback behavior on error.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a new advisory client.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// NewClientWithHTTP creates a client with a custom HTTP transport.
func NewClientWithHTTP(baseURL string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient, log: log}
}

type classifyRequest struct {
	Description string `json:"description"`
}

type analyzeRequest struct {
	Transactions []domain.Transaction `json:"transactions"`
}

type adviseRequest struct {
	Wallets      []domain.Wallet      `json:"wallets"`
	Transactions []domain.Transaction `json:"transactions"`
	Question     string               `json:"question"`
}

type adviseResponse struct {
	Answer string `json:"answer"`
}

// ClassifyTransaction asks the collaborator for a spending category.
func (c *Client) ClassifyTransaction(ctx context.Context, description string) (*ports.AdvisoryClassification, error) {
	var out ports.AdvisoryClassification
	if err := c.post(ctx, "/v1/classify", classifyRequest{Description: description}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzePatterns asks the collaborator for behavioural observations over
// the transaction history.
func (c *Client) AnalyzePatterns(ctx context.Context, transactions []domain.Transaction) (*ports.AdvisoryPatternInsights, error) {
	var out ports.AdvisoryPatternInsights
	if err := c.post(ctx, "/v1/patterns", analyzeRequest{Transactions: transactions}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Advise asks a free-form question with the full wallet context.
func (c *Client) Advise(ctx context.Context, wallets []domain.Wallet, transactions []domain.Transaction, question string) (string, error) {
	var out adviseResponse
	req := adviseRequest{Wallets: wallets, Transactions: transactions, Question: question}
	if err := c.post(ctx, "/v1/advise", req, &out); err != nil {
		return "", err
	}
	return out.Answer, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode advisory request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build advisory request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("advisory request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096)) //nolint:errcheck
		return fmt.Errorf("advisory returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode advisory response: %w", err)
	}
	return nil
}

package financial

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	financialerrors "go-recruit/internal/financial/errors"
	"go-recruit/internal/shared/apperror"

	"go.uber.org/zap"
)

// Config untuk sistem finansial external. BaseURL/APIKey kosong berarti
// integrasi tidak aktif; operasi sync akan menolak dengan error yang jelas
// tanpa mengganggu state lokal.
type Config struct {
	BaseURL     string
	APIKey      string
	AccountCode string
}

func LoadConfig() Config {
	cfg := Config{
		BaseURL:     os.Getenv("FINANCIAL_API_URL"),
		APIKey:      os.Getenv("FINANCIAL_API_KEY"),
		AccountCode: os.Getenv("FINANCIAL_ACCOUNT_CODE"),
	}
	if cfg.AccountCode == "" {
		cfg.AccountCode = "5100-HR"
	}
	return cfg
}

func (c Config) Enabled() bool {
	return c.BaseURL != "" && c.APIKey != ""
}

// BudgetAllocation adalah payload budget rekrutmen per job posting.
type BudgetAllocation struct {
	ReferenceID string         `json:"reference_id"`
	Type        string         `json:"type"`
	Department  string         `json:"department"`
	AccountCode string         `json:"account_code"`
	Amount      float64        `json:"amount"`
	Currency    string         `json:"currency"`
	Description string         `json:"description"`
	Metadata    BudgetMetadata `json:"metadata"`
}

type BudgetMetadata struct {
	JobTitle       string `json:"job_title"`
	EmploymentType string `json:"employment_type"`
	SalaryRange    string `json:"salary_range"`
}

// EmployeeCost adalah payload biaya gaji bulanan untuk applicant yang hired.
type EmployeeCost struct {
	ReferenceID  string  `json:"reference_id"`
	Type         string  `json:"type"`
	EmployeeCode string  `json:"employee_code"`
	EmployeeName string  `json:"employee_name"`
	Department   string  `json:"department"`
	AccountCode  string  `json:"account_code"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	Frequency    string  `json:"frequency"`
	StartDate    string  `json:"start_date,omitempty"`
	Description  string  `json:"description"`
}

//go:generate mockgen -source=client.go -destination=mock/client_mock.go -package=mock
type Client interface {
	PushBudgetAllocation(ctx context.Context, payload BudgetAllocation) (map[string]any, error)
	PushEmployeeCost(ctx context.Context, payload EmployeeCost) (map[string]any, error)
}

type httpClient struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
}

func NewHTTPClient(cfg Config, logger ...*zap.Logger) Client {
	l := zap.L().Named("financial.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("financial.client")
	}
	return &httpClient{
		cfg:    cfg,
		http:   &http.Client{Timeout: 30 * time.Second},
		logger: l,
	}
}

func (c *httpClient) PushBudgetAllocation(ctx context.Context, payload BudgetAllocation) (map[string]any, error) {
	return c.post(ctx, "/api/budget/allocations", payload)
}

func (c *httpClient) PushEmployeeCost(ctx context.Context, payload EmployeeCost) (map[string]any, error) {
	return c.post(ctx, "/api/expenses/employee-costs", payload)
}

func (c *httpClient) post(ctx context.Context, path string, payload any) (map[string]any, error) {
	if !c.cfg.Enabled() {
		return nil, financialerrors.ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("financial api request failed", zap.String("path", path), zap.Error(err))
		return nil, apperror.Wrap(err, apperror.CodeServiceUnavailable, "Financial sync failed", http.StatusBadGateway)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("financial api rejected payload",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody),
		)
		// Body error dari remote disertakan supaya caller bisa melaporkannya
		return nil, apperror.Wrap(
			fmt.Errorf("financial api returned %d: %s", resp.StatusCode, string(respBody)),
			apperror.CodeServiceUnavailable,
			"Financial sync failed",
			http.StatusBadGateway,
		)
	}

	var data map[string]any
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &data); err != nil {
			return nil, apperror.Wrap(err, apperror.CodeServiceUnavailable, "Financial sync failed", http.StatusBadGateway)
		}
	}
	return data, nil
}

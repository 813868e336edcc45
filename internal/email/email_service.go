package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const resendEndpoint = "https://api.resend.com/emails"

type Receipt struct {
	OrderNumber string
	Items       []ReceiptItem
	Subtotal    float64
	Discount    float64
	Total       float64
	PaidAt      time.Time
}

type ReceiptItem struct {
	Name      string
	UnitPrice float64
}

type Service interface {
	SendPurchaseReceipt(ctx context.Context, to, name string, receipt Receipt) error
}

type service struct {
	apiKey string
	from   string
	client *http.Client
	logger *zap.Logger
}

func NewService(apiKey, from string, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		apiKey: apiKey,
		from:   from,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (s *service) SendPurchaseReceipt(ctx context.Context, to, name string, receipt Receipt) error {
	body, err := json.Marshal(sendRequest{
		From:    s.from,
		To:      []string{to},
		Subject: fmt.Sprintf("إيصال الدفع - الطلب %s", receipt.OrderNumber),
		HTML:    renderReceiptHTML(name, receipt),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}

	s.logger.Info("purchase receipt sent",
		zap.String("order_number", receipt.OrderNumber),
		zap.String("to", to))
	return nil
}

func renderReceiptHTML(name string, r Receipt) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, `<div dir="rtl" style="font-family:Tahoma,Arial,sans-serif">`)
	fmt.Fprintf(&b, "<h2>شكراً لطلبك يا %s</h2>", name)
	fmt.Fprintf(&b, "<p>رقم الطلب: <strong>%s</strong></p><ul>", r.OrderNumber)
	for _, it := range r.Items {
		fmt.Fprintf(&b, "<li>%s: %.2f ر.س</li>", it.Name, it.UnitPrice)
	}
	fmt.Fprintf(&b, "</ul>")
	fmt.Fprintf(&b, "<p>المجموع الفرعي: %.2f ر.س</p>", r.Subtotal)
	if r.Discount > 0 {
		fmt.Fprintf(&b, "<p>الخصم: -%.2f ر.س</p>", r.Discount)
	}
	fmt.Fprintf(&b, "<p><strong>الإجمالي: %.2f ر.س</strong></p>", r.Total)
	fmt.Fprintf(&b, "<p>تاريخ الدفع: %s</p></div>", r.PaidAt.Format("2006-01-02 15:04"))
	return b.String()
}

// NewNoopService is used in local development when no provider key is set.
func NewNoopService(logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &noopService{logger: logger}
}

type noopService struct {
	logger *zap.Logger
}

func (s *noopService) SendPurchaseReceipt(_ context.Context, to, _ string, receipt Receipt) error {
	s.logger.Info("email disabled, skipping receipt",
		zap.String("order_number", receipt.OrderNumber),
		zap.String("to", to))
	return nil
}

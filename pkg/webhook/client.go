package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ReportType identifies the kind of document the print service should produce
type ReportType string

const (
	ReportCierreZ     ReportType = "cierre_z"
	ReportInformeX    ReportType = "informe_x"
	ReportSingleOrder ReportType = "pedido_individual"
	ReportReprint     ReportType = "reprintClosure"
)

// MethodDetail is the per-payment-method breakdown in a report
type MethodDetail struct {
	Count    int     `json:"count"`
	Subtotal float64 `json:"subtotal"`
}

// OrderTicket carries a single order's data for a pedido_individual report
type OrderTicket struct {
	RoomNumber string  `json:"habitacion"`
	Items      string  `json:"articulos"`
	Total      float64 `json:"total"`
	Notes      string  `json:"notas,omitempty"`
}

// ReportData is the report_data section of the print webhook payload.
// Field names are part of the wire contract with the print service.
type ReportData struct {
	Fecha              string                  `json:"fecha"`
	Hora               string                  `json:"hora"`
	HotelName          string                  `json:"hotel_name"`
	TotalPedidos       int                     `json:"totalPedidos"`
	PedidosCompletados int                     `json:"pedidosCompletados"`
	PedidosCancelados  int                     `json:"pedidosCancelados"`
	PedidosEliminados  int                     `json:"pedidosEliminados"`
	TotalDinero        float64                 `json:"totalDinero"`
	MetodosDetalle     map[string]MethodDetail `json:"metodosDetalle"`
	Pedido             *OrderTicket            `json:"pedido,omitempty"`
}

// Request is the full print webhook payload
type Request struct {
	HotelID    string     `json:"hotel_id"`
	ReportType ReportType `json:"report_type"`
	ReportData ReportData `json:"report_data"`
}

// StatusError reports a non-2xx response from the print service
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("print webhook returned status %d", e.StatusCode)
}

// Client posts report payloads to a hotel's print webhook
type Client struct {
	client *http.Client
}

// NewClient creates a webhook client with the given request timeout
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		client: &http.Client{Timeout: timeout},
	}
}

// Dispatch posts the report to the given webhook URL.
// A non-2xx response yields a *StatusError; the caller decides whether a
// dispatch failure is fatal (for closures it never is).
func (c *Client) Dispatch(ctx context.Context, url string, payload *Request) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("webhook: marshaling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: sending report: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode}
	}
	return nil
}

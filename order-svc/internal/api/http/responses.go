package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"foodhub/order-svc/internal/domain"
	"foodhub/order-svc/internal/service"

	"github.com/shopspring/decimal"
)

type createOrderRequest struct {
	UserID       int64             `json:"user_id"`
	RestaurantID int64             `json:"restaurant_id"`
	Items        []domain.CartLine `json:"items"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// totalsResponse renders money as fixed two-decimal strings. Stages that are
// switched off are omitted.
type totalsResponse struct {
	Subtotal    string  `json:"subtotal"`
	PlatformFee string  `json:"platform_fee"`
	Commission  *string `json:"commission,omitempty"`
	NetEarnings *string `json:"net_earnings,omitempty"`
	CGST        *string `json:"cgst,omitempty"`
	SGST        *string `json:"sgst,omitempty"`
	GrandTotal  string  `json:"grand_total"`
}

type placedOrderResponse struct {
	OrderID int64              `json:"order_id"`
	Status  domain.OrderStatus `json:"status"`
	totalsResponse
}

type billLineResponse struct {
	MenuItemID int64  `json:"menu_item_id"`
	Name       string `json:"name"`
	UnitPrice  string `json:"unit_price"`
	Quantity   int    `json:"quantity"`
	LineTotal  string `json:"line_total"`
}

type billResponse struct {
	OrderID    int64              `json:"order_id"`
	Restaurant string             `json:"restaurant"`
	Status     domain.OrderStatus `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	Items      []billLineResponse `json:"items,omitempty"`
	totalsResponse
}

type orderSummaryResponse struct {
	OrderID    int64              `json:"order_id"`
	Customer   string             `json:"customer"`
	Restaurant string             `json:"restaurant"`
	Subtotal   string             `json:"subtotal"`
	Status     domain.OrderStatus `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	Items      []string           `json:"items"`
}

type restaurantReportResponse struct {
	RestaurantID    int64  `json:"restaurant_id"`
	TotalOrders     int    `json:"total_orders"`
	TotalRevenue    string `json:"total_revenue"`
	TotalCommission string `json:"total_commission"`
	NetEarnings     string `json:"net_earnings"`
}

type systemReportRowResponse struct {
	RestaurantID int64  `json:"restaurant_id"`
	Restaurant   string `json:"restaurant"`
	TotalOrders  int    `json:"total_orders"`
	TotalRevenue string `json:"total_revenue"`
}

func optionalMoney(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}

func newTotalsResponse(t domain.Totals) totalsResponse {
	return totalsResponse{
		Subtotal:    t.Subtotal.StringFixed(2),
		PlatformFee: t.PlatformFee.StringFixed(2),
		Commission:  optionalMoney(t.Commission),
		NetEarnings: optionalMoney(t.NetEarnings),
		CGST:        optionalMoney(t.CGST),
		SGST:        optionalMoney(t.SGST),
		GrandTotal:  t.GrandTotal.StringFixed(2),
	}
}

func newPlacedOrderResponse(placed *service.PlacedOrder) placedOrderResponse {
	totals := newTotalsResponse(placed.Totals)
	// Payout figures belong to restaurant views, not the customer receipt.
	totals.NetEarnings = nil
	return placedOrderResponse{
		OrderID:        placed.OrderID,
		Status:         placed.Status,
		totalsResponse: totals,
	}
}

func newBillResponse(bill *domain.Bill, withItems bool) billResponse {
	resp := billResponse{
		OrderID:        bill.OrderID,
		Restaurant:     bill.RestaurantName,
		Status:         bill.Status,
		CreatedAt:      bill.CreatedAt,
		totalsResponse: newTotalsResponse(bill.Totals),
	}
	if withItems {
		resp.Items = make([]billLineResponse, 0, len(bill.Lines))
		for _, line := range bill.Lines {
			resp.Items = append(resp.Items, billLineResponse{
				MenuItemID: line.MenuItemID,
				Name:       line.Name,
				UnitPrice:  line.UnitPriceAtBuy.StringFixed(2),
				Quantity:   line.Quantity,
				LineTotal:  line.LineTotal().StringFixed(2),
			})
		}
	}
	return resp
}

func newOrderSummaries(summaries []domain.OrderSummary) []orderSummaryResponse {
	resp := make([]orderSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		items := s.Items
		if items == nil {
			items = []string{}
		}
		resp = append(resp, orderSummaryResponse{
			OrderID:    s.ID,
			Customer:   s.Customer,
			Restaurant: s.RestaurantName,
			Subtotal:   s.Subtotal.StringFixed(2),
			Status:     s.Status,
			CreatedAt:  s.CreatedAt,
			Items:      items,
		})
	}
	return resp
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"message": message})
}

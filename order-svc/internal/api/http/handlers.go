package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"foodhub/order-svc/internal/domain"
	"foodhub/order-svc/internal/service"

	"github.com/gorilla/mux"
)

const idempotencyHeader = "Idempotency-Key"

type Handler struct {
	Orders  service.OrderServiceInterface
	Reports service.ReportServiceInterface
}

func NewHandler(orders service.OrderServiceInterface, reports service.ReportServiceInterface) *Handler {
	return &Handler{Orders: orders, Reports: reports}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id:[0-9]+}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id:[0-9]+}/bill", h.getBill).Methods("GET")
	r.HandleFunc("/api/orders/{id:[0-9]+}/status", h.updateStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id:[0-9]+}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/customers/{userId:[0-9]+}/orders", h.getCustomerOrders).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId:[0-9]+}/orders", h.getRestaurantOrders).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId:[0-9]+}/report", h.getRestaurantReport).Methods("GET")
	r.HandleFunc("/api/admin/orders", h.getAllOrders).Methods("GET")
	r.HandleFunc("/api/admin/report", h.getSystemReport).Methods("GET")
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrTerminalState), errors.Is(err, domain.ErrRequestInFlight):
		return http.StatusConflict
	case domain.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		log.Printf("%s %s [%s]: %v", r.Method, r.URL.Path, RequestID(r.Context()), err)
		writeError(w, code, fallback)
		return
	}
	writeError(w, code, err.Error())
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var payload createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	placed, err := h.Orders.PlaceOrder(r.Context(), service.PlaceOrderRequest{
		UserID:         payload.UserID,
		RestaurantID:   payload.RestaurantID,
		Items:          payload.Items,
		IdempotencyKey: r.Header.Get(idempotencyHeader),
	})
	if err != nil {
		h.fail(w, r, err, "failed to place order")
		return
	}

	code := http.StatusCreated
	if placed.Replayed {
		code = http.StatusOK
	}
	writeJSON(w, code, newPlacedOrderResponse(placed))
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	h.writeBill(w, r, false)
}

func (h *Handler) getBill(w http.ResponseWriter, r *http.Request) {
	h.writeBill(w, r, true)
}

func (h *Handler) writeBill(w http.ResponseWriter, r *http.Request, withItems bool) {
	orderID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	bill, err := h.Orders.GetBill(r.Context(), orderID)
	if err != nil {
		h.fail(w, r, err, "failed to load bill")
		return
	}
	writeJSON(w, http.StatusOK, newBillResponse(bill, withItems))
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var payload updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	change, err := h.Orders.UpdateStatus(r.Context(), orderID, payload.Status)
	if err != nil {
		h.fail(w, r, err, "failed to update status")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Order status updated",
		"order_id": change.OrderID,
		"status":   change.To,
	})
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	qrCode, err := h.Orders.QRCode(r.Context(), orderID)
	if err != nil {
		h.fail(w, r, err, "failed to render QR code")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) getCustomerOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	orders, err := h.Reports.CustomerOrders(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err, "failed to list orders")
		return
	}
	writeJSON(w, http.StatusOK, newOrderSummaries(orders))
}

func (h *Handler) getRestaurantOrders(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathID(r, "restaurantId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	orders, err := h.Reports.RestaurantOrders(r.Context(), restaurantID)
	if errors.Is(err, domain.ErrUnknownRestaurant) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.fail(w, r, err, "failed to list orders")
		return
	}
	writeJSON(w, http.StatusOK, newOrderSummaries(orders))
}

func (h *Handler) getAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Reports.AllOrders(r.Context())
	if err != nil {
		h.fail(w, r, err, "failed to list orders")
		return
	}
	writeJSON(w, http.StatusOK, newOrderSummaries(orders))
}

func (h *Handler) getRestaurantReport(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathID(r, "restaurantId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	report, err := h.Reports.RestaurantReport(r.Context(), restaurantID)
	if errors.Is(err, domain.ErrUnknownRestaurant) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.fail(w, r, err, "failed to build report")
		return
	}
	writeJSON(w, http.StatusOK, restaurantReportResponse{
		RestaurantID:    report.RestaurantID,
		TotalOrders:     report.TotalOrders,
		TotalRevenue:    report.TotalRevenue.StringFixed(2),
		TotalCommission: report.TotalCommission.StringFixed(2),
		NetEarnings:     report.NetEarnings().StringFixed(2),
	})
}

func (h *Handler) getSystemReport(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Reports.SystemReport(r.Context())
	if err != nil {
		h.fail(w, r, err, "failed to build report")
		return
	}

	resp := make([]systemReportRowResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, systemReportRowResponse{
			RestaurantID: row.RestaurantID,
			Restaurant:   row.RestaurantName,
			TotalOrders:  row.TotalOrders,
			TotalRevenue: row.TotalRevenue.StringFixed(2),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

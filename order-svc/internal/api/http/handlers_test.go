package httpapi_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpapi "foodhub/order-svc/internal/api/http"
	"foodhub/order-svc/internal/billing"
	"foodhub/order-svc/internal/domain"
	"foodhub/order-svc/internal/mocks"
	"foodhub/order-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(orders *mocks.OrderServiceInterface, reports *mocks.ReportServiceInterface) *mux.Router {
	handler := httpapi.NewHandler(orders, reports)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func workedExampleTotals() domain.Totals {
	commission := money("25.00")
	return billing.FromTotals(money("250.00"), money("12.50"), &commission,
		&billing.Tax{CGST: money("23.63"), SGST: money("23.63")})
}

func serve(router http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeMap(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body
}

func TestHandler_healthCheck(t *testing.T) {
	router := setupTestRouter(mocks.NewOrderServiceInterface(t), mocks.NewReportServiceInterface(t))

	rr := serve(router, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "order-svc", decodeMap(t, rr)["service"])
}

func TestHandler_createOrder(t *testing.T) {
	validBody := `{"user_id":5,"restaurant_id":1,"items":[{"menu_item_id":1,"quantity":2,"price":0.01},{"menu_item_id":2,"quantity":1}]}`

	tests := []struct {
		name         string
		payload      string
		headers      map[string]string
		prepareMocks func(orders *mocks.OrderServiceInterface)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: validBody,
			prepareMocks: func(orders *mocks.OrderServiceInterface) {
				orders.On("PlaceOrder", mock.Anything, mock.MatchedBy(func(req service.PlaceOrderRequest) bool {
					return req.UserID == 5 && req.RestaurantID == 1 && len(req.Items) == 2 && req.IdempotencyKey == ""
				})).Return(&service.PlacedOrder{OrderID: 10, Status: domain.StatusPending, Totals: workedExampleTotals()}, nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"grand_total":"309.76"`,
		},
		{
			name:    "replayed idempotency key",
			payload: validBody,
			headers: map[string]string{"Idempotency-Key": "abc"},
			prepareMocks: func(orders *mocks.OrderServiceInterface) {
				orders.On("PlaceOrder", mock.Anything, mock.MatchedBy(func(req service.PlaceOrderRequest) bool {
					return req.IdempotencyKey == "abc"
				})).Return(&service.PlacedOrder{OrderID: 10, Status: domain.StatusPending, Totals: workedExampleTotals(), Replayed: true}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"order_id":10`,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func(orders *mocks.OrderServiceInterface) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `Invalid JSON format`,
		},
		{
			name:    "empty cart",
			payload: `{"user_id":5,"restaurant_id":1,"items":[]}`,
			prepareMocks: func(orders *mocks.OrderServiceInterface) {
				orders.On("PlaceOrder", mock.Anything, mock.Anything).Return(nil, domain.ErrEmptyCart).Once()
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `"message":"cart is empty"`,
		},
		{
			name:    "item from another restaurant",
			payload: validBody,
			prepareMocks: func(orders *mocks.OrderServiceInterface) {
				orders.On("PlaceOrder", mock.Anything, mock.Anything).
					Return(nil, &domain.InvalidItemError{MenuItemID: 3, RestaurantID: 1}).Once()
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `menu item 3 does not belong to restaurant 1`,
		},
		{
			name:    "key in flight",
			payload: validBody,
			headers: map[string]string{"Idempotency-Key": "abc"},
			prepareMocks: func(orders *mocks.OrderServiceInterface) {
				orders.On("PlaceOrder", mock.Anything, mock.Anything).Return(nil, domain.ErrRequestInFlight).Once()
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:    "persistence failure hides driver error",
			payload: validBody,
			prepareMocks: func(orders *mocks.OrderServiceInterface) {
				orders.On("PlaceOrder", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("insert order: %w: %w", domain.ErrPersistence, errors.New("pq: secret detail"))).Once()
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `"message":"failed to place order"`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderServiceInterface(t)
			router := setupTestRouter(orders, mocks.NewReportServiceInterface(t))
			testCase.prepareMocks(orders)

			rr := serve(router, http.MethodPost, "/api/orders", testCase.payload, testCase.headers)

			assert.Equal(t, testCase.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			if testCase.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), testCase.expectedBody)
			}
			assert.NotContains(t, rr.Body.String(), "secret detail")
			assert.NotContains(t, rr.Body.String(), "net_earnings")
		})
	}
}

func TestHandler_createOrder_WorkedExampleBody(t *testing.T) {
	orders := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(orders, mocks.NewReportServiceInterface(t))
	orders.On("PlaceOrder", mock.Anything, mock.Anything).
		Return(&service.PlacedOrder{OrderID: 10, Status: domain.StatusPending, Totals: workedExampleTotals()}, nil).Once()

	rr := serve(router, http.MethodPost, "/api/orders", `{"user_id":5,"restaurant_id":1,"items":[{"menu_item_id":1,"quantity":2}]}`, nil)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, map[string]interface{}{
		"order_id":     float64(10),
		"status":       "Pending",
		"subtotal":     "250.00",
		"platform_fee": "12.50",
		"commission":   "25.00",
		"cgst":         "23.63",
		"sgst":         "23.63",
		"grand_total":  "309.76",
	}, decodeMap(t, rr))
}

func storedBill() *domain.Bill {
	return &domain.Bill{
		OrderID:        10,
		RestaurantName: "Burger Barn",
		Status:         domain.StatusAccepted,
		CreatedAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Lines: []domain.OrderLine{
			{OrderID: 10, MenuItemID: 1, Name: "Burger", Quantity: 2, UnitPriceAtBuy: money("100.00")},
			{OrderID: 10, MenuItemID: 2, Name: "Fries", Quantity: 1, UnitPriceAtBuy: money("50.00")},
		},
		Totals: workedExampleTotals(),
	}
}

func TestHandler_getBill(t *testing.T) {
	orders := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(orders, mocks.NewReportServiceInterface(t))
	orders.On("GetBill", mock.Anything, int64(10)).Return(storedBill(), nil).Once()

	rr := serve(router, http.MethodGet, "/api/orders/10/bill", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeMap(t, rr)
	assert.Equal(t, "Burger Barn", body["restaurant"])
	assert.Equal(t, "Accepted", body["status"])
	assert.Equal(t, "309.76", body["grand_total"])
	assert.Equal(t, "225.00", body["net_earnings"])

	items := body["items"].([]interface{})
	require.Len(t, items, 2)
	assert.Equal(t, map[string]interface{}{
		"menu_item_id": float64(1),
		"name":         "Burger",
		"unit_price":   "100.00",
		"quantity":     float64(2),
		"line_total":   "200.00",
	}, items[0])
}

func TestHandler_getOrder_OmitsItems(t *testing.T) {
	orders := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(orders, mocks.NewReportServiceInterface(t))
	orders.On("GetBill", mock.Anything, int64(10)).Return(storedBill(), nil).Once()

	rr := serve(router, http.MethodGet, "/api/orders/10", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeMap(t, rr)
	assert.NotContains(t, body, "items")
	assert.Equal(t, "250.00", body["subtotal"])
}

func TestHandler_getBill_Errors(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "not found", err: domain.ErrOrderNotFound, expectedCode: http.StatusNotFound},
		{name: "mismatch", err: fmt.Errorf("order 10: %w", domain.ErrBillMismatch), expectedCode: http.StatusInternalServerError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderServiceInterface(t)
			router := setupTestRouter(orders, mocks.NewReportServiceInterface(t))
			orders.On("GetBill", mock.Anything, int64(10)).Return(nil, testCase.err).Once()

			rr := serve(router, http.MethodGet, "/api/orders/10/bill", "", nil)

			assert.Equal(t, testCase.expectedCode, rr.Code)
			assert.Contains(t, decodeMap(t, rr), "message")
		})
	}
}

func TestHandler_nonNumericOrderID(t *testing.T) {
	router := setupTestRouter(mocks.NewOrderServiceInterface(t), mocks.NewReportServiceInterface(t))

	rr := serve(router, http.MethodGet, "/api/orders/abc/bill", "", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_updateStatus(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		prepareMocks func(orders *mocks.OrderServiceInterface)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"status":"Preparing"}`,
			prepareMocks: func(orders *mocks.OrderServiceInterface) {
				orders.On("UpdateStatus", mock.Anything, int64(10), "Preparing").
					Return(&domain.StatusChange{OrderID: 10, From: domain.StatusAccepted, To: domain.StatusPreparing}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"message":"Order status updated"`,
		},
		{
			name:    "invalid status",
			payload: `{"status":"Cancelled"}`,
			prepareMocks: func(orders *mocks.OrderServiceInterface) {
				orders.On("UpdateStatus", mock.Anything, int64(10), "Cancelled").Return(nil, domain.ErrInvalidStatus).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "already delivered",
			payload: `{"status":"Accepted"}`,
			prepareMocks: func(orders *mocks.OrderServiceInterface) {
				orders.On("UpdateStatus", mock.Anything, int64(10), "Accepted").Return(nil, domain.ErrTerminalState).Once()
			},
			expectedCode: http.StatusConflict,
			expectedBody: `order already delivered`,
		},
		{
			name:    "unknown order",
			payload: `{"status":"Accepted"}`,
			prepareMocks: func(orders *mocks.OrderServiceInterface) {
				orders.On("UpdateStatus", mock.Anything, int64(10), "Accepted").Return(nil, domain.ErrOrderNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid_json",
			payload:      `{`,
			prepareMocks: func(orders *mocks.OrderServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderServiceInterface(t)
			router := setupTestRouter(orders, mocks.NewReportServiceInterface(t))
			testCase.prepareMocks(orders)

			rr := serve(router, http.MethodPut, "/api/orders/10/status", testCase.payload, nil)

			assert.Equal(t, testCase.expectedCode, rr.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_getOrderQRCode(t *testing.T) {
	orders := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(orders, mocks.NewReportServiceInterface(t))
	orders.On("QRCode", mock.Anything, int64(10)).Return([]byte("\x89PNG"), nil).Once()

	rr := serve(router, http.MethodGet, "/api/orders/10/qrcode", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.Equal(t, []byte("\x89PNG"), rr.Body.Bytes())
}

func TestHandler_reports(t *testing.T) {
	summaries := []domain.OrderSummary{{
		ID:             11,
		Customer:       "Asha",
		RestaurantName: "Burger Barn",
		Subtotal:       money("250"),
		Status:         domain.StatusPending,
		Items:          []string{"Burger x2", "Fries x1"},
	}}

	t.Run("restaurant orders", func(t *testing.T) {
		reports := mocks.NewReportServiceInterface(t)
		router := setupTestRouter(mocks.NewOrderServiceInterface(t), reports)
		reports.On("RestaurantOrders", mock.Anything, int64(1)).Return(summaries, nil).Once()

		rr := serve(router, http.MethodGet, "/api/restaurants/1/orders", "", nil)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"items":["Burger x2","Fries x1"]`)
		assert.Contains(t, rr.Body.String(), `"subtotal":"250.00"`)
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		reports := mocks.NewReportServiceInterface(t)
		router := setupTestRouter(mocks.NewOrderServiceInterface(t), reports)
		reports.On("RestaurantReport", mock.Anything, int64(9)).Return(nil, domain.ErrUnknownRestaurant).Once()

		rr := serve(router, http.MethodGet, "/api/restaurants/9/report", "", nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("restaurant report", func(t *testing.T) {
		reports := mocks.NewReportServiceInterface(t)
		router := setupTestRouter(mocks.NewOrderServiceInterface(t), reports)
		reports.On("RestaurantReport", mock.Anything, int64(1)).Return(&domain.RestaurantReport{
			RestaurantID:    1,
			TotalOrders:     2,
			TotalRevenue:    money("350"),
			TotalCommission: money("35"),
		}, nil).Once()

		rr := serve(router, http.MethodGet, "/api/restaurants/1/report", "", nil)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, map[string]interface{}{
			"restaurant_id":    float64(1),
			"total_orders":     float64(2),
			"total_revenue":    "350.00",
			"total_commission": "35.00",
			"net_earnings":     "315.00",
		}, decodeMap(t, rr))
	})

	t.Run("customer orders empty", func(t *testing.T) {
		reports := mocks.NewReportServiceInterface(t)
		router := setupTestRouter(mocks.NewOrderServiceInterface(t), reports)
		reports.On("CustomerOrders", mock.Anything, int64(5)).Return(nil, nil).Once()

		rr := serve(router, http.MethodGet, "/api/customers/5/orders", "", nil)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("admin orders", func(t *testing.T) {
		reports := mocks.NewReportServiceInterface(t)
		router := setupTestRouter(mocks.NewOrderServiceInterface(t), reports)
		reports.On("AllOrders", mock.Anything).Return(summaries, nil).Once()

		rr := serve(router, http.MethodGet, "/api/admin/orders", "", nil)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"customer":"Asha"`)
	})

	t.Run("admin report", func(t *testing.T) {
		reports := mocks.NewReportServiceInterface(t)
		router := setupTestRouter(mocks.NewOrderServiceInterface(t), reports)
		reports.On("SystemReport", mock.Anything).Return([]domain.SystemReportRow{
			{RestaurantID: 1, RestaurantName: "Burger Barn", TotalOrders: 2, TotalRevenue: money("350")},
		}, nil).Once()

		rr := serve(router, http.MethodGet, "/api/admin/report", "", nil)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[{"restaurant_id":1,"restaurant":"Burger Barn","total_orders":2,"total_revenue":"350.00"}]`, rr.Body.String())
	})

	t.Run("admin report failure", func(t *testing.T) {
		reports := mocks.NewReportServiceInterface(t)
		router := setupTestRouter(mocks.NewOrderServiceInterface(t), reports)
		reports.On("SystemReport", mock.Anything).Return(nil, errors.New("connection refused")).Once()

		rr := serve(router, http.MethodGet, "/api/admin/report", "", nil)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"message":"failed to build report"}`, rr.Body.String())
	})
}

func TestNewRouter_RequestID(t *testing.T) {
	router := httpapi.NewRouter(httpapi.NewHandler(mocks.NewOrderServiceInterface(t), mocks.NewReportServiceInterface(t)))

	rr := serve(router, http.MethodGet, "/health", "", map[string]string{"X-Request-ID": "req-42"})
	assert.Equal(t, "req-42", rr.Header().Get("X-Request-ID"))

	rr = serve(router, http.MethodGet, "/health", "", nil)
	assert.Len(t, rr.Header().Get("X-Request-ID"), 36)
}

package service_test

import (
	"context"
	"testing"

	"foodhub/order-svc/internal/domain"
	"foodhub/order-svc/internal/mocks"
	"foodhub/order-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportService_RestaurantReport(t *testing.T) {
	tests := []struct {
		name       string
		exists     bool
		report     *domain.RestaurantReport
		wantErr    error
		wantLookup bool
	}{
		{
			name:   "known restaurant",
			exists: true,
			report: &domain.RestaurantReport{
				RestaurantID:    1,
				TotalOrders:     2,
				TotalRevenue:    money("350.00"),
				TotalCommission: money("35.00"),
			},
			wantLookup: true,
		},
		{
			name:    "unknown restaurant",
			exists:  false,
			wantErr: domain.ErrUnknownRestaurant,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			reports := mocks.NewReportRepository(t)
			menu := mocks.NewMenuLookup(t)
			svc := service.NewReportService(reports, menu)

			menu.On("RestaurantExists", mock.Anything, int64(1)).Return(testCase.exists, nil).Once()
			if testCase.wantLookup {
				reports.On("RestaurantReport", mock.Anything, int64(1)).Return(testCase.report, nil).Once()
			}

			report, err := svc.RestaurantReport(context.Background(), 1)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "315.00", report.NetEarnings().StringFixed(2))
		})
	}
}

func TestReportService_OrderLists(t *testing.T) {
	reports := mocks.NewReportRepository(t)
	menu := mocks.NewMenuLookup(t)
	svc := service.NewReportService(reports, menu)

	summaries := []domain.OrderSummary{{ID: 1, Items: []string{"Burger x2"}}}
	reports.On("ListCustomerOrders", mock.Anything, int64(5)).Return(summaries, nil).Once()
	reports.On("ListAllOrders", mock.Anything).Return(summaries, nil).Once()
	reports.On("ListRestaurantOrders", mock.Anything, int64(1)).Return(summaries, nil).Once()
	menu.On("RestaurantExists", mock.Anything, int64(1)).Return(true, nil).Once()

	customer, err := svc.CustomerOrders(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, summaries, customer)

	all, err := svc.AllOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, summaries, all)

	restaurant, err := svc.RestaurantOrders(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, summaries, restaurant)
}

func TestReportService_SystemReport(t *testing.T) {
	reports := mocks.NewReportRepository(t)
	svc := service.NewReportService(reports, mocks.NewMenuLookup(t))

	rows := []domain.SystemReportRow{{RestaurantID: 1, RestaurantName: "Burger Barn", TotalOrders: 2}}
	reports.On("SystemReport", mock.Anything).Return(rows, nil).Once()

	got, err := svc.SystemReport(context.Background())

	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"atrid_reportes/internal/models"
)

// exampleOrders mirrors a real backend window: one order with snapshot cost
// data and one with only the unit-price field set.
func exampleOrders() []models.Order {
	return []models.Order{
		{
			ID:    1,
			Fecha: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
			Items: []models.LineItem{
				{ID: 1, Price: decPtr("10"), Qty: int64Ptr(2), Costo: decPtr("4")},
			},
		},
		{
			ID:    2,
			Fecha: time.Date(2026, 8, 2, 16, 30, 0, 0, time.UTC),
			Items: []models.LineItem{
				{ID: 2, PrecioUnitario: decPtr("5"), Cantidad: int64Ptr(1)},
			},
		},
	}
}

func TestPeriodTotal_Example(t *testing.T) {
	total := PeriodTotal(exampleOrders())
	assert.Equal(t, "25.00", total.StringFixed(2))
}

func TestPeriodProfit_Example(t *testing.T) {
	// Order 2 has no cost record, so its full price counts as profit.
	profit := PeriodProfit(exampleOrders())
	assert.Equal(t, "17.00", profit.StringFixed(2))
}

func TestPeriodTotals_OrderIndependent(t *testing.T) {
	orders := exampleOrders()
	reversed := []models.Order{orders[1], orders[0]}

	assert.True(t, PeriodTotal(orders).Equal(PeriodTotal(reversed)))
	assert.True(t, PeriodProfit(orders).Equal(PeriodProfit(reversed)))
}

func TestPeriodProfit_AllCostsZeroEqualsTotal(t *testing.T) {
	orders := []models.Order{
		{ID: 1, Items: []models.LineItem{
			{ID: 1, Price: decPtr("3.33"), Qty: int64Ptr(3)},
			{ID: 2, PrecioUnitario: decPtr("1.25")},
		}},
	}
	assert.True(t, PeriodProfit(orders).Equal(PeriodTotal(orders)))
}

func TestPeriodTotals_MixedTypesContributeIdentically(t *testing.T) {
	orders := []models.Order{
		{ID: 1, Items: []models.LineItem{
			{ID: 1, Tipo: models.ItemTypeProducto, Price: decPtr("10")},
			{ID: 2, Tipo: models.ItemTypeServicio, Servicio: &models.ServiceRef{Precio: decPtr("15")}},
		}},
	}
	assert.Equal(t, "25.00", PeriodTotal(orders).StringFixed(2))
}

func TestCommissionAmount_ZeroRateIsExactZero(t *testing.T) {
	amount := CommissionAmount(decimal.RequireFromString("1234.56"), decimal.Zero)
	assert.True(t, amount.Equal(decimal.Zero))
	assert.Equal(t, "0.00", amount.StringFixed(2))
}

func TestCommissionAmount_Example(t *testing.T) {
	total := PeriodTotal(exampleOrders())
	amount := CommissionAmount(total, decimal.NewFromInt(10))
	assert.Equal(t, "2.50", amount.StringFixed(2))
}

func TestCommissionAmount_FullRange(t *testing.T) {
	total := decimal.NewFromInt(200)
	for _, rate := range []int64{1, 25, 50, 100} {
		amount := CommissionAmount(total, decimal.NewFromInt(rate))
		want := total.Mul(decimal.NewFromInt(rate)).Div(decimal.NewFromInt(100))
		assert.True(t, amount.Equal(want), "rate %d", rate)
	}
}

func TestBuildReportSummary(t *testing.T) {
	summary := BuildReportSummary(exampleOrders(), decimal.NewFromInt(10))
	assert.Equal(t, "25.00", summary.TotalPeriodo)
	assert.Equal(t, "17.00", summary.GananciaPeriodo)
	assert.Equal(t, "10.00", summary.PorcentajeComision)
	assert.Equal(t, "2.50", summary.TotalComision)
	assert.Equal(t, 2, summary.OrderCount)
}

func TestBuildOrderSummary(t *testing.T) {
	order := exampleOrders()[0]
	order.Codigo = strPtr("ORD-001")
	order.Cliente = &models.Cliente{Nombre: "Ana", Telefono: "5555-1234"}

	summary := BuildOrderSummary(order, true)
	assert.Equal(t, int64(1), summary.ID)
	assert.Equal(t, "ORD-001", summary.Codigo)
	assert.Equal(t, "Ana", summary.ClienteNombre)
	assert.Equal(t, "20.00", summary.Total)
	assert.True(t, summary.Deleting)
}

func TestBuildOrderSummary_CodigoFallsBackToID(t *testing.T) {
	summary := BuildOrderSummary(exampleOrders()[1], false)
	assert.Equal(t, "2", summary.Codigo)
}

func TestBuildOrderDetail(t *testing.T) {
	order := models.Order{
		ID:    7,
		Fecha: time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC),
		Items: []models.LineItem{
			{
				ID:       1,
				Cantidad: int64Ptr(2),
				Producto: &models.ProductRef{Descripcion: strPtr("Crema"), SKU: strPtr("CR-9"), Precio: decPtr("30"), Costo: decPtr("12")},
			},
			{
				ID:       2,
				Tipo:     models.ItemTypeServicio,
				Servicio: &models.ServiceRef{Descripcion: strPtr("Peinado"), Precio: decPtr("40")},
			},
		},
	}

	detail := BuildOrderDetail(order)
	assert.Equal(t, "100.00", detail.Total)
	assert.Equal(t, "76.00", detail.Ganancia)
	assert.Len(t, detail.Items, 2)

	assert.Equal(t, "Crema", detail.Items[0].Nombre)
	assert.Equal(t, "CR-9", detail.Items[0].SKU)
	assert.Equal(t, "30.00", detail.Items[0].PrecioUnitario)
	assert.Equal(t, int64(2), detail.Items[0].Cantidad)
	assert.Equal(t, "60.00", detail.Items[0].Subtotal)

	assert.Equal(t, "Peinado", detail.Items[1].Nombre)
	assert.Equal(t, "", detail.Items[1].SKU)
	assert.Equal(t, "40.00", detail.Items[1].Subtotal)
}

package services

import (
	"github.com/shopspring/decimal"

	"atrid_reportes/internal/models"
)

var oneHundred = decimal.NewFromInt(100)

// OrderTotal returns the revenue of a single order: the sum of resolved
// unit price times quantity over its line items.
func OrderTotal(o models.Order) decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(ResolveItem(it).Subtotal())
	}
	return total
}

// OrderProfit returns the profit of a single order: the sum of resolved
// (price - cost) times quantity over its line items.
func OrderProfit(o models.Order) decimal.Decimal {
	profit := decimal.Zero
	for _, it := range o.Items {
		profit = profit.Add(ResolveItem(it).Profit())
	}
	return profit
}

// PeriodTotal folds the loaded order set into total period revenue. Products
// and services contribute identically; no item is skipped by type.
func PeriodTotal(orders []models.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(OrderTotal(o))
	}
	return total
}

// PeriodProfit folds the loaded order set into total period profit.
func PeriodProfit(orders []models.Order) decimal.Decimal {
	profit := decimal.Zero
	for _, o := range orders {
		profit = profit.Add(OrderProfit(o))
	}
	return profit
}

// CommissionAmount derives the commission payout from the period total.
// A zero rate short-circuits to an exact zero instead of multiplying.
func CommissionAmount(total, rate decimal.Decimal) decimal.Decimal {
	if rate.IsZero() {
		return decimal.Zero
	}
	return total.Mul(rate).Div(oneHundred)
}

// BuildOrderSummary shapes one order into a listing row with its resolved
// total. deleting marks an in-flight deletion for that order.
func BuildOrderSummary(o models.Order, deleting bool) models.OrderSummary {
	summary := models.OrderSummary{
		ID:       o.ID,
		Codigo:   o.DisplayCode(),
		Fecha:    o.Fecha,
		Total:    OrderTotal(o).StringFixed(2),
		Deleting: deleting,
	}
	if o.Cliente != nil {
		summary.ClienteNombre = o.Cliente.Nombre
	}
	return summary
}

// BuildOrderDetail shapes one order into the detail view, resolving every
// line item to its canonical values.
func BuildOrderDetail(o models.Order) models.OrderDetail {
	detail := models.OrderDetail{
		ID:       o.ID,
		Codigo:   o.DisplayCode(),
		Fecha:    o.Fecha,
		Cliente:  o.Cliente,
		Items:    make([]models.LineItemView, 0, len(o.Items)),
		Total:    OrderTotal(o).StringFixed(2),
		Ganancia: OrderProfit(o).StringFixed(2),
	}
	for _, it := range o.Items {
		resolved := ResolveItem(it)
		detail.Items = append(detail.Items, models.LineItemView{
			ID:             it.ID,
			Nombre:         resolved.DisplayName,
			SKU:            resolved.SKU,
			PrecioUnitario: resolved.UnitPrice.StringFixed(2),
			Cantidad:       resolved.Quantity,
			Subtotal:       resolved.Subtotal().StringFixed(2),
		})
	}
	return detail
}

// BuildReportSummary shapes the aggregate figures for the loaded period.
func BuildReportSummary(orders []models.Order, commissionRate decimal.Decimal) models.ReportSummary {
	total := PeriodTotal(orders)
	return models.ReportSummary{
		TotalPeriodo:       total.StringFixed(2),
		GananciaPeriodo:    PeriodProfit(orders).StringFixed(2),
		PorcentajeComision: commissionRate.StringFixed(2),
		TotalComision:      CommissionAmount(total, commissionRate).StringFixed(2),
		OrderCount:         len(orders),
	}
}

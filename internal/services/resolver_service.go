package services

import (
	"strconv"

	"github.com/shopspring/decimal"

	"atrid_reportes/internal/models"
)

// ResolvedItem is the canonical view of a line item after collapsing the
// backend's variant field shapes. Resolution never fails: missing optional
// fields fall back to zero price, zero cost and quantity one.
type ResolvedItem struct {
	UnitPrice   decimal.Decimal
	UnitCost    decimal.Decimal
	Quantity    int64
	DisplayName string
	SKU         string
}

// Subtotal returns UnitPrice * Quantity.
func (r ResolvedItem) Subtotal() decimal.Decimal {
	return r.UnitPrice.Mul(decimal.NewFromInt(r.Quantity))
}

// Profit returns (UnitPrice - UnitCost) * Quantity. An item without a cost
// record resolves to cost zero, so its full price counts as profit.
func (r ResolvedItem) Profit() decimal.Decimal {
	return r.UnitPrice.Sub(r.UnitCost).Mul(decimal.NewFromInt(r.Quantity))
}

// ResolveItem produces the canonical price, cost, quantity, display name and
// SKU for a line item of unknown exact shape. It is pure and idempotent.
func ResolveItem(it models.LineItem) ResolvedItem {
	return ResolvedItem{
		UnitPrice:   resolveUnitPrice(it),
		UnitCost:    resolveUnitCost(it),
		Quantity:    resolveQuantity(it),
		DisplayName: resolveDisplayName(it),
		SKU:         resolveSKU(it),
	}
}

// resolveUnitPrice probes, in order: the mock-data price field, the backend
// snapshot unit price, the referenced product's price, the referenced
// service's price, then zero.
func resolveUnitPrice(it models.LineItem) decimal.Decimal {
	if it.Price != nil {
		return *it.Price
	}
	if it.PrecioUnitario != nil {
		return *it.PrecioUnitario
	}
	if it.Producto != nil && it.Producto.Precio != nil {
		return *it.Producto.Precio
	}
	if it.Servicio != nil && it.Servicio.Precio != nil {
		return *it.Servicio.Precio
	}
	return decimal.Zero
}

// resolveUnitCost probes the snapshot cost fields, then the referenced
// product's cost, then zero.
func resolveUnitCost(it models.LineItem) decimal.Decimal {
	if it.CostoUnitario != nil {
		return *it.CostoUnitario
	}
	if it.Costo != nil {
		return *it.Costo
	}
	if it.Producto != nil && it.Producto.Costo != nil {
		return *it.Producto.Costo
	}
	return decimal.Zero
}

func resolveQuantity(it models.LineItem) int64 {
	if it.Qty != nil {
		return *it.Qty
	}
	if it.Cantidad != nil {
		return *it.Cantidad
	}
	return 1
}

// resolveDisplayName picks the reference description first, then the item's
// own name, then synthesizes a label from the reference id (or, failing
// that, the item id). Services and products use their own reference chain;
// an item with no tipo is treated as a product.
func resolveDisplayName(it models.LineItem) string {
	if it.Tipo == models.ItemTypeServicio {
		if it.Servicio != nil && it.Servicio.Descripcion != nil && *it.Servicio.Descripcion != "" {
			return *it.Servicio.Descripcion
		}
		if it.Nombre != nil && *it.Nombre != "" {
			return *it.Nombre
		}
		return "Servicio #" + fallbackRefID(it.ServicioID, it.ID)
	}

	if it.Producto != nil && it.Producto.Descripcion != nil && *it.Producto.Descripcion != "" {
		return *it.Producto.Descripcion
	}
	if it.Nombre != nil && *it.Nombre != "" {
		return *it.Nombre
	}
	return "Producto #" + fallbackRefID(it.ProductoID, it.ID)
}

// resolveSKU reads the SKU from the product reference only. A missing
// product reference means no SKU; services never have one.
func resolveSKU(it models.LineItem) string {
	if it.Producto != nil && it.Producto.SKU != nil {
		return *it.Producto.SKU
	}
	return ""
}

func fallbackRefID(refID *int64, itemID int64) string {
	if refID != nil {
		return strconv.FormatInt(*refID, 10)
	}
	return strconv.FormatInt(itemID, 10)
}

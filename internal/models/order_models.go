package models

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Line item type discriminator values used by the order backend.
const (
	ItemTypeProducto = "producto"
	ItemTypeServicio = "servicio"
)

// ProductRef is the product record a line item may reference. Every field is
// optional because older orders carry only the snapshot fields on the item
// itself and no product reference at all.
type ProductRef struct {
	ID          *int64           `json:"id,omitempty"`
	Descripcion *string          `json:"descripcion,omitempty"`
	SKU         *string          `json:"sku,omitempty"`
	Precio      *decimal.Decimal `json:"precio,omitempty"`
	Costo       *decimal.Decimal `json:"costo,omitempty"`
}

// ServiceRef is the service record a line item may reference.
// Services carry no SKU.
type ServiceRef struct {
	ID          *int64           `json:"id,omitempty"`
	Descripcion *string          `json:"descripcion,omitempty"`
	Precio      *decimal.Decimal `json:"precio,omitempty"`
}

// Cliente is the customer summary attached to an order.
type Cliente struct {
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono,omitempty"`
}

// LineItem is one sold product or service as delivered by the order backend.
// The backend has gone through schema revisions, so price, cost and quantity
// can each live in more than one field. Variant fields are pointers so that
// "absent" is distinguishable from an explicit zero; canonical values are
// produced by services.ResolveItem.
type LineItem struct {
	ID     int64   `json:"id"`
	Tipo   string  `json:"tipo,omitempty"`
	Nombre *string `json:"nombre,omitempty"`

	// Unit price variants, in resolution priority order.
	Price          *decimal.Decimal `json:"price,omitempty"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty"`

	// Unit cost variants, in resolution priority order.
	CostoUnitario *decimal.Decimal `json:"costo_unitario,omitempty"`
	Costo         *decimal.Decimal `json:"costo,omitempty"`

	// Quantity variants, in resolution priority order.
	Qty      *int64 `json:"qty,omitempty"`
	Cantidad *int64 `json:"cantidad,omitempty"`

	ProductoID *int64      `json:"producto_id,omitempty"`
	ServicioID *int64      `json:"servicio_id,omitempty"`
	Producto   *ProductRef `json:"producto,omitempty"`
	Servicio   *ServiceRef `json:"servicio,omitempty"`
}

// Order is one sales transaction as delivered by the order backend.
type Order struct {
	ID      int64      `json:"id"`
	Codigo  *string    `json:"codigo,omitempty"`
	Fecha   time.Time  `json:"fecha"`
	Cliente *Cliente   `json:"cliente,omitempty"`
	Items   []LineItem `json:"items"`
}

// DisplayCode returns the human-facing order number, falling back to the
// numeric id when the backend recorded no codigo.
func (o Order) DisplayCode() string {
	if o.Codigo != nil && *o.Codigo != "" {
		return *o.Codigo
	}
	return strconv.FormatInt(o.ID, 10)
}

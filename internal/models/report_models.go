package models

import "time"

// ReportSummary holds the aggregate figures for the currently loaded period.
// Monetary amounts are formatted with exactly two decimal places for display.
type ReportSummary struct {
	TotalPeriodo       string `json:"total_periodo"`
	GananciaPeriodo    string `json:"ganancia_periodo"`
	PorcentajeComision string `json:"porcentaje_comision"`
	TotalComision      string `json:"total_comision"`
	OrderCount         int    `json:"order_count"`
}

// OrderSummary is one row of the period order listing.
type OrderSummary struct {
	ID            int64     `json:"id"`
	Codigo        string    `json:"codigo"`
	Fecha         time.Time `json:"fecha"`
	ClienteNombre string    `json:"cliente_nombre,omitempty"`
	Total         string    `json:"total"`
	Deleting      bool      `json:"deleting"`
}

// LineItemView is one resolved line of the order detail view: canonical
// values only, with the multi-shape source fields already collapsed.
type LineItemView struct {
	ID             int64  `json:"id"`
	Nombre         string `json:"nombre"`
	SKU            string `json:"sku,omitempty"`
	PrecioUnitario string `json:"precio_unitario"`
	Cantidad       int64  `json:"cantidad"`
	Subtotal       string `json:"subtotal"`
}

// OrderDetail is the full detail view of a single order.
type OrderDetail struct {
	ID       int64          `json:"id"`
	Codigo   string         `json:"codigo"`
	Fecha    time.Time      `json:"fecha"`
	Cliente  *Cliente       `json:"cliente,omitempty"`
	Items    []LineItemView `json:"items"`
	Total    string         `json:"total"`
	Ganancia string         `json:"ganancia"`
}

// ReportRequestParams holds the query parameters accepted by the report
// endpoints. Dates use the YYYY-MM-DD layout.
type ReportRequestParams struct {
	Inicio string `form:"inicio"`
	Fin    string `form:"fin"`
}

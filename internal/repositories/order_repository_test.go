package repositories

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrders_SendsPeriodBounds(t *testing.T) {
	var gotPath, gotInicio, gotFin string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotInicio = r.URL.Query().Get("inicio")
		gotFin = r.URL.Query().Get("fin")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "codigo": "ORD-001", "fecha": "2026-08-01T10:00:00Z",
			 "cliente": {"nombre": "Ana", "telefono": "5555-1234"},
			 "items": [{"id": 1, "precio_unitario": 5, "cantidad": 2}]},
			{"id": 2, "fecha": "2026-08-02T16:30:00Z",
			 "items": [{"id": 2, "tipo": "servicio", "servicio": {"id": 9, "descripcion": "Corte", "precio": 40}}]}
		]`))
	}))
	defer server.Close()

	repo := NewOrderRepository(server.URL, 5*time.Second)
	inicio := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2026, 8, 31, 23, 59, 59, 999999999, time.UTC)

	orders, err := repo.ListOrders(context.Background(), &inicio, &fin)
	require.NoError(t, err)

	assert.Equal(t, "/ordenes", gotPath)
	assert.Equal(t, inicio.Format(time.RFC3339Nano), gotInicio)
	assert.Equal(t, fin.Format(time.RFC3339Nano), gotFin)

	require.Len(t, orders, 2)
	assert.Equal(t, int64(1), orders[0].ID)
	assert.Equal(t, "ORD-001", orders[0].DisplayCode())
	require.NotNil(t, orders[0].Cliente)
	assert.Equal(t, "Ana", orders[0].Cliente.Nombre)
	require.Len(t, orders[0].Items, 1)
	require.NotNil(t, orders[0].Items[0].PrecioUnitario)
	assert.Equal(t, "5", orders[0].Items[0].PrecioUnitario.String())

	assert.Equal(t, "2", orders[1].DisplayCode())
	require.NotNil(t, orders[1].Items[0].Servicio)
	assert.Equal(t, "Corte", *orders[1].Items[0].Servicio.Descripcion)
}

func TestListOrders_OmitsAbsentBounds(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	repo := NewOrderRepository(server.URL, 5*time.Second)
	orders, err := repo.ListOrders(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Equal(t, "", gotQuery)
}

func TestListOrders_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	repo := NewOrderRepository(server.URL, 5*time.Second)
	_, err := repo.ListOrders(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestListOrders_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	repo := NewOrderRepository(server.URL, time.Second)
	_, err := repo.ListOrders(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestListOrders_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "an array"`))
	}))
	defer server.Close()

	repo := NewOrderRepository(server.URL, 5*time.Second)
	_, err := repo.ListOrders(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestDeleteOrder_Success(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	repo := NewOrderRepository(server.URL, 5*time.Second)
	require.NoError(t, repo.DeleteOrder(context.Background(), 42))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/ordenes/42", gotPath)
}

func TestDeleteOrder_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	repo := NewOrderRepository(server.URL, 5*time.Second)
	err := repo.DeleteOrder(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOrder_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	repo := NewOrderRepository(server.URL, 5*time.Second)
	err := repo.DeleteOrder(context.Background(), 42)
	assert.ErrorIs(t, err, ErrDeleteFailed)
}

func TestListOrders_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	repo := NewOrderRepository(server.URL, 0)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := repo.ListOrders(ctx, nil, nil)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

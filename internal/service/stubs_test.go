package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"zapastock/internal/model"
	"zapastock/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory stubs of the repository interfaces. Atomicity is trivial here;
// what matters is that the services observe the same contract the GORM
// implementations honor.

type productoRepoStub struct {
	mu          sync.Mutex
	productos   map[uuid.UUID]*model.Producto
	historial   []model.HistorialPrecio
	movimientos []model.MovimientoStock
	imagenes    []model.ImagenProducto

	conTransacciones map[uuid.UUID]bool
	errCrear         error
}

func newProductoRepoStub() *productoRepoStub {
	return &productoRepoStub{
		productos:        make(map[uuid.UUID]*model.Producto),
		conTransacciones: make(map[uuid.UUID]bool),
	}
}

func (s *productoRepoStub) CrearAtomico(_ context.Context, p *model.Producto, historial []model.HistorialPrecio, movInicial *model.MovimientoStock) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.errCrear != nil {
		return s.errCrear
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	copia := *p
	s.productos[p.ID] = &copia
	for i := range historial {
		historial[i].ProductoID = p.ID
		s.historial = append(s.historial, historial[i])
	}
	if movInicial != nil {
		movInicial.ProductoID = p.ID
		s.movimientos = append(s.movimientos, *movInicial)
	}
	return nil
}

func (s *productoRepoStub) ActualizarStockAtomico(_ context.Context, id uuid.UUID, nuevoStock int, mov *model.MovimientoStock) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.StockActual = nuevoStock
	mov.ProductoID = id
	s.movimientos = append(s.movimientos, *mov)
	return nil
}

func (s *productoRepoStub) ActualizarAtomico(_ context.Context, p *model.Producto, historial []model.HistorialPrecio) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copia := *p
	s.productos[p.ID] = &copia
	for i := range historial {
		historial[i].ProductoID = p.ID
		s.historial = append(s.historial, historial[i])
	}
	return nil
}

func (s *productoRepoStub) EliminarAtomico(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.productos, id)
	return nil
}

func (s *productoRepoStub) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *p
	return &copia, nil
}

func (s *productoRepoStub) FindConRelaciones(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	return s.FindByID(ctx, id)
}

func (s *productoRepoStub) List(context.Context) ([]model.Producto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Producto, 0, len(s.productos))
	for _, p := range s.productos {
		out = append(out, *p)
	}
	return out, nil
}

func (s *productoRepoStub) ListarNombres(context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	nombres := make([]string, 0, len(s.productos))
	for _, p := range s.productos {
		nombres = append(nombres, p.Nombre)
	}
	return nombres, nil
}

func (s *productoRepoStub) BuscarPorNombre(_ context.Context, termino string) ([]model.Producto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Producto
	for _, p := range s.productos {
		if strings.Contains(strings.ToLower(p.Nombre), strings.ToLower(termino)) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *productoRepoStub) FindByProveedorID(_ context.Context, proveedorID uuid.UUID) ([]model.Producto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Producto
	for _, p := range s.productos {
		if p.ProveedorID != nil && *p.ProveedorID == proveedorID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *productoRepoStub) ConStockBajo(_ context.Context, limite int) ([]model.Producto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Producto
	for _, p := range s.productos {
		if p.StockActual <= limite {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *productoRepoStub) TieneTransacciones(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conTransacciones[id], nil
}

func (s *productoRepoStub) CrearImagen(_ context.Context, img *model.ImagenProducto) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if img.ID == uuid.Nil {
		img.ID = uuid.New()
	}
	s.imagenes = append(s.imagenes, *img)
	return nil
}

func (s *productoRepoStub) historialDe(id uuid.UUID) []model.HistorialPrecio {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.HistorialPrecio
	for _, h := range s.historial {
		if h.ProductoID == id {
			out = append(out, h)
		}
	}
	return out
}

func (s *productoRepoStub) movimientosDe(id uuid.UUID) []model.MovimientoStock {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.MovimientoStock
	for _, m := range s.movimientos {
		if m.ProductoID == id {
			out = append(out, m)
		}
	}
	return out
}

// ───────────────────────────────────────────────────────────────────────────

type proveedorRepoStub struct {
	proveedores map[uuid.UUID]*model.Proveedor
	productos   map[uuid.UUID]int64
}

func newProveedorRepoStub() *proveedorRepoStub {
	return &proveedorRepoStub{
		proveedores: make(map[uuid.UUID]*model.Proveedor),
		productos:   make(map[uuid.UUID]int64),
	}
}

func (s *proveedorRepoStub) agregar(p *model.Proveedor) *model.Proveedor {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.proveedores[p.ID] = p
	return p
}

func (s *proveedorRepoStub) Create(_ context.Context, p *model.Proveedor) error {
	s.agregar(p)
	return nil
}

func (s *proveedorRepoStub) FindByID(_ context.Context, id uuid.UUID) (*model.Proveedor, error) {
	p, ok := s.proveedores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (s *proveedorRepoStub) FindPorDefecto(context.Context) (*model.Proveedor, error) {
	for _, p := range s.proveedores {
		if p.PorDefecto {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *proveedorRepoStub) List(context.Context) ([]model.Proveedor, error) {
	out := make([]model.Proveedor, 0, len(s.proveedores))
	for _, p := range s.proveedores {
		out = append(out, *p)
	}
	return out, nil
}

func (s *proveedorRepoStub) Update(_ context.Context, p *model.Proveedor) error {
	s.proveedores[p.ID] = p
	return nil
}

func (s *proveedorRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.proveedores, id)
	return nil
}

func (s *proveedorRepoStub) ContarProductos(_ context.Context, id uuid.UUID) (int64, error) {
	return s.productos[id], nil
}

// ───────────────────────────────────────────────────────────────────────────

type historialRepoStub struct {
	filas []model.HistorialPrecio
}

func (s *historialRepoStub) Create(_ context.Context, h *model.HistorialPrecio) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	s.filas = append(s.filas, *h)
	return nil
}

func (s *historialRepoStub) ListByProducto(_ context.Context, productoID uuid.UUID) ([]model.HistorialPrecio, error) {
	var out []model.HistorialPrecio
	for _, h := range s.filas {
		if h.ProductoID == productoID {
			out = append(out, h)
		}
	}
	return out, nil
}

type movimientoRepoStub struct {
	filas []model.MovimientoStock
}

func (s *movimientoRepoStub) List(_ context.Context, filter repository.MovimientoStockFilter) ([]model.MovimientoStock, int64, error) {
	var out []model.MovimientoStock
	for _, m := range s.filas {
		if filter.ProductoID != nil && m.ProductoID != *filter.ProductoID {
			continue
		}
		if filter.Tipo != "" && m.Tipo != filter.Tipo {
			continue
		}
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

// ───────────────────────────────────────────────────────────────────────────

type ventaRepoStub struct {
	productos *productoRepoStub
	ventas    []*model.VentaLocal
	movs      []model.MovimientoStock
}

func (s *ventaRepoStub) RegistrarAtomico(_ context.Context, v *model.VentaLocal, movs []model.MovimientoStock) error {
	s.productos.mu.Lock()
	defer s.productos.mu.Unlock()
	for _, det := range v.Detalles {
		p, ok := s.productos.productos[det.ProductoID]
		if !ok || p.StockActual < det.Cantidad {
			return fmt.Errorf("producto %s: %w", det.ProductoID, repository.ErrStockInsuficiente)
		}
	}
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	for _, det := range v.Detalles {
		s.productos.productos[det.ProductoID].StockActual -= det.Cantidad
	}
	for i := range movs {
		movs[i].ReferenciaID = &v.ID
		s.movs = append(s.movs, movs[i])
	}
	s.ventas = append(s.ventas, v)
	return nil
}

func (s *ventaRepoStub) FindByID(_ context.Context, id uuid.UUID) (*model.VentaLocal, error) {
	for _, v := range s.ventas {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *ventaRepoStub) List(context.Context) ([]model.VentaLocal, error) {
	out := make([]model.VentaLocal, 0, len(s.ventas))
	for _, v := range s.ventas {
		out = append(out, *v)
	}
	return out, nil
}

// ───────────────────────────────────────────────────────────────────────────

type clienteRepoStub struct {
	clientes map[uuid.UUID]*model.Cliente
	deudas   map[uuid.UUID]*model.Deuda
}

func newClienteRepoStub() *clienteRepoStub {
	return &clienteRepoStub{
		clientes: make(map[uuid.UUID]*model.Cliente),
		deudas:   make(map[uuid.UUID]*model.Deuda),
	}
}

func (s *clienteRepoStub) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	s.clientes[c.ID] = c
	return nil
}

func (s *clienteRepoStub) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := s.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (s *clienteRepoStub) List(context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(s.clientes))
	for _, c := range s.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (s *clienteRepoStub) Update(_ context.Context, c *model.Cliente) error {
	s.clientes[c.ID] = c
	return nil
}

func (s *clienteRepoStub) CrearDeuda(_ context.Context, d *model.Deuda) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	s.deudas[d.ID] = d
	return nil
}

func (s *clienteRepoStub) FindDeuda(_ context.Context, id uuid.UUID) (*model.Deuda, error) {
	d, ok := s.deudas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (s *clienteRepoStub) ListDeudas(_ context.Context, clienteID uuid.UUID) ([]model.Deuda, error) {
	var out []model.Deuda
	for _, d := range s.deudas {
		if d.ClienteID == clienteID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (s *clienteRepoStub) ListDeudasPendientes(context.Context) ([]model.Deuda, error) {
	var out []model.Deuda
	for _, d := range s.deudas {
		if !d.Pagado {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (s *clienteRepoStub) UpdateDeuda(_ context.Context, d *model.Deuda) error {
	s.deudas[d.ID] = d
	return nil
}

// ───────────────────────────────────────────────────────────────────────────

type alertaRegistrada struct {
	ProductoID uuid.UUID
	Nombre     string
	Stock      int
}

type notificadorStub struct {
	alertas []alertaRegistrada
}

func (s *notificadorStub) EncolarAlertaStock(_ context.Context, productoID uuid.UUID, nombre string, stockActual int) error {
	s.alertas = append(s.alertas, alertaRegistrada{ProductoID: productoID, Nombre: nombre, Stock: stockActual})
	return nil
}

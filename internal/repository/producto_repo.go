package repository

import (
	"context"

	"zapastock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory stubs.
//
// The *Atomico methods are the product aggregate writer: each one commits
// every row it touches (product, historial_precios, movimientos_stock) in a
// single transaction, or none at all.
type ProductoRepository interface {
	// CrearAtomico inserts the product, its initial price-history rows and —
	// when movInicial is non-nil — the initial stock movement. The repository
	// fills ProductoID on the historial and movement rows once the product
	// has its generated id.
	CrearAtomico(ctx context.Context, p *model.Producto, historial []model.HistorialPrecio, movInicial *model.MovimientoStock) error

	// ActualizarStockAtomico sets the product's stock and appends the given
	// movement in one transaction.
	ActualizarStockAtomico(ctx context.Context, id uuid.UUID, nuevoStock int, mov *model.MovimientoStock) error

	// ActualizarAtomico saves changed product fields and appends one
	// price-history row per changed price kind.
	ActualizarAtomico(ctx context.Context, p *model.Producto, historial []model.HistorialPrecio) error

	// EliminarAtomico cascades: historial, imagenes and movimientos first,
	// then the product row. Callers must run the referential guard
	// (TieneTransacciones) before invoking this.
	EliminarAtomico(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	FindConRelaciones(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	List(ctx context.Context) ([]model.Producto, error)
	ListarNombres(ctx context.Context) ([]string, error)
	BuscarPorNombre(ctx context.Context, termino string) ([]model.Producto, error)
	FindByProveedorID(ctx context.Context, proveedorID uuid.UUID) ([]model.Producto, error)
	ConStockBajo(ctx context.Context, limite int) ([]model.Producto, error)

	// TieneTransacciones reports whether any sale, purchase or order detail
	// references the product (application-layer referential guard).
	TieneTransacciones(ctx context.Context, id uuid.UUID) (bool, error)

	CrearImagen(ctx context.Context, img *model.ImagenProducto) error
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) CrearAtomico(ctx context.Context, p *model.Producto, historial []model.HistorialPrecio, movInicial *model.MovimientoStock) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		for i := range historial {
			historial[i].ProductoID = p.ID
			if err := tx.Create(&historial[i]).Error; err != nil {
				return err
			}
		}
		if movInicial != nil {
			movInicial.ProductoID = p.ID
			if err := tx.Create(movInicial).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *productoRepo) ActualizarStockAtomico(ctx context.Context, id uuid.UUID, nuevoStock int, mov *model.MovimientoStock) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Producto{}).Where("id = ?", id).
			Update("stock_actual", nuevoStock).Error; err != nil {
			return err
		}
		mov.ProductoID = id
		return tx.Create(mov).Error
	})
}

func (r *productoRepo) ActualizarAtomico(ctx context.Context, p *model.Producto, historial []model.HistorialPrecio) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		for i := range historial {
			historial[i].ProductoID = p.ID
			if err := tx.Create(&historial[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *productoRepo) EliminarAtomico(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("producto_id = ?", id).Delete(&model.HistorialPrecio{}).Error; err != nil {
			return err
		}
		if err := tx.Where("producto_id = ?", id).Delete(&model.ImagenProducto{}).Error; err != nil {
			return err
		}
		if err := tx.Where("producto_id = ?", id).Delete(&model.MovimientoStock{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Producto{}, "id = ?", id).Error
	})
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productoRepo) FindConRelaciones(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).
		Preload("Proveedor").
		Preload("Imagenes").
		Preload("HistorialPrecios", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Movimientos", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Limit(10)
		}).
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productoRepo) List(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Preload("Proveedor").
		Preload("Imagenes").
		Order("created_at DESC").
		Find(&productos).Error
	return productos, err
}

// ListarNombres returns every product display name. The import pipeline
// normalizes these once at batch start to build its duplicate snapshot.
func (r *productoRepo) ListarNombres(ctx context.Context) ([]string, error) {
	var nombres []string
	err := r.db.WithContext(ctx).Model(&model.Producto{}).Pluck("nombre", &nombres).Error
	return nombres, err
}

func (r *productoRepo) BuscarPorNombre(ctx context.Context, termino string) ([]model.Producto, error) {
	var productos []model.Producto
	like := "%" + termino + "%"
	err := r.db.WithContext(ctx).
		Preload("Proveedor").
		Preload("Imagenes").
		Where("nombre ILIKE ? OR descripcion ILIKE ?", like, like).
		Order("nombre ASC").
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) FindByProveedorID(ctx context.Context, proveedorID uuid.UUID) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Preload("Proveedor").
		Where("proveedor_id = ?", proveedorID).
		Order("nombre ASC").
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) ConStockBajo(ctx context.Context, limite int) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Preload("Proveedor").
		Where("stock_actual <= ?", limite).
		Order("stock_actual ASC").
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) TieneTransacciones(ctx context.Context, id uuid.UUID) (bool, error) {
	tablas := []string{"detalle_venta_local", "detalle_compra_mayorista", "detalle_encargue_proveedor"}
	for _, tabla := range tablas {
		var count int64
		if err := r.db.WithContext(ctx).Table(tabla).
			Where("producto_id = ?", id).Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}

func (r *productoRepo) CrearImagen(ctx context.Context, img *model.ImagenProducto) error {
	return r.db.WithContext(ctx).Create(img).Error
}

package infra

import (
	"time"

	"zapastock/internal/model"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDatabase opens the Postgres connection, tunes the pool and migrates
// the schema.
func NewDatabase(databaseURL string, log zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&model.Proveedor{},
		&model.Producto{},
		&model.ImagenProducto{},
		&model.HistorialPrecio{},
		&model.MovimientoStock{},
		&model.Cliente{},
		&model.Deuda{},
		&model.VentaLocal{},
		&model.DetalleVentaLocal{},
		&model.CompraMayorista{},
		&model.DetalleCompraMayorista{},
		&model.EncargueProveedor{},
		&model.DetalleEncargueProveedor{},
		&model.Usuario{},
	); err != nil {
		return nil, err
	}

	log.Info().Msg("base de datos conectada y migrada")
	return db, nil
}

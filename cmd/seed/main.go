// Seed crea los datos minimos para operar: el usuario admin, el proveedor
// por defecto y el cliente casual.
package main

import (
	"errors"
	"os"

	"zapastock/internal/config"
	"zapastock/internal/infra"
	"zapastock/internal/model"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo cargar la configuracion")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a la base de datos")
	}

	seedProveedorPorDefecto(db, log)
	seedClienteCasual(db, log)
	seedAdmin(db, log)

	log.Info().Msg("seed completado")
}

func seedProveedorPorDefecto(db *gorm.DB, log zerolog.Logger) {
	var existente model.Proveedor
	err := db.First(&existente, "por_defecto = true").Error
	if err == nil {
		log.Info().Str("id", existente.ID.String()).Msg("proveedor por defecto ya existe")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal().Err(err).Msg("error consultando proveedores")
	}

	desc := "Proveedor asignado a cargas de catalogo sin proveedor"
	p := model.Proveedor{Nombre: "Proveedor general", Descripcion: &desc, PorDefecto: true}
	if err := db.Create(&p).Error; err != nil {
		log.Fatal().Err(err).Msg("no se pudo crear el proveedor por defecto")
	}
	log.Info().Str("id", p.ID.String()).Msg("proveedor por defecto creado")
}

func seedClienteCasual(db *gorm.DB, log zerolog.Logger) {
	var existente model.Cliente
	err := db.First(&existente, "nombre = ?", "Cliente casual").Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal().Err(err).Msg("error consultando clientes")
	}

	c := model.Cliente{Nombre: "Cliente casual"}
	if err := db.Create(&c).Error; err != nil {
		log.Fatal().Err(err).Msg("no se pudo crear el cliente casual")
	}
	log.Info().Str("id", c.ID.String()).Msg("cliente casual creado")
}

func seedAdmin(db *gorm.DB, log zerolog.Logger) {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Warn().Msg("ADMIN_USERNAME/ADMIN_PASSWORD no definidos, se omite el admin")
		return
	}

	var existente model.Usuario
	err := db.First(&existente, "username = ?", username).Error
	if err == nil {
		log.Info().Str("username", username).Msg("el admin ya existe")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal().Err(err).Msg("error consultando usuarios")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo hashear la contraseña")
	}

	u := model.Usuario{
		Username:     username,
		PasswordHash: string(hash),
		Rol:          model.RolAdmin,
		Activo:       true,
	}
	if err := db.Create(&u).Error; err != nil {
		log.Fatal().Err(err).Msg("no se pudo crear el admin")
	}
	log.Info().Str("username", username).Msg("admin creado")
}

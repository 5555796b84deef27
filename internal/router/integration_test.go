//go:build integration

package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"zapastock/internal/config"
	"zapastock/internal/infra"
	"zapastock/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type entorno struct {
	engine *gin.Engine
	db     *gorm.DB
	token  string
}

func levantarEntorno(t *testing.T) *entorno {
	t.Helper()
	ctx := context.Background()

	pg, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("zapastock"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	log := zerolog.New(os.Stderr).Level(zerolog.WarnLevel)
	db, err := infra.NewDatabase(dsn, log)
	require.NoError(t, err)

	cfg := &config.Config{
		Env:                        "test",
		JWTSecret:                  "clave-de-integracion",
		JWTExpirationHours:         1,
		CargaMasivaMaxFilas:        500,
		CargaMasivaMaxFilasArchivo: 1000,
		StockBajoLimite:            5,
	}

	engine := New(Dependencies{Config: cfg, DB: db, Log: log})

	// Datos minimos: proveedor por defecto y usuario admin
	desc := "fallback"
	require.NoError(t, db.Create(&model.Proveedor{
		Nombre: "Proveedor general", Descripcion: &desc, PorDefecto: true,
	}).Error)

	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.Usuario{
		Username: "admin", PasswordHash: string(hash), Rol: model.RolAdmin, Activo: true,
	}).Error)

	e := &entorno{engine: engine, db: db}
	e.token = e.login(t, "admin", "secreto123")
	return e
}

func (e *entorno) login(t *testing.T, username, password string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	e.engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.AccessToken
}

func (e *entorno) hacer(t *testing.T, metodo, ruta string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		require.NoError(t, err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(metodo, ruta, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)
	e.engine.ServeHTTP(w, req)
	return w
}

func TestIntegracion_CargaMasivaYVenta(t *testing.T) {
	e := levantarEntorno(t)

	// Carga masiva con precios en formato de catalogo
	carga := map[string]any{
		"productos": []map[string]any{
			{"nombre": "Zapatilla Runner", "precio": "1.234,56"},
			{"nombre": "Botin Clasico", "precio": "$ 1.500", "descripcion": "**Oferta** cuero"},
			{"nombre": "zapatilla runner", "precio": "999"}, // duplicado in-batch
			{"nombre": "Rota", "precio": "sin precio"},
		},
		"aumento_porcentaje": 10,
		"stock_por_defecto":  4,
	}
	w := e.hacer(t, http.MethodPost, "/v1/productos/carga-masiva", carga)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Resumen struct {
			Total           int `json:"total"`
			Exitosos        int `json:"exitosos"`
			Errores         int `json:"errores"`
			Duplicados      int `json:"duplicados"`
			PorcentajeExito int `json:"porcentaje_exito"`
		} `json:"resumen"`
		Resultados struct {
			Detalles []struct {
				Index  int     `json:"index"`
				Estado string  `json:"estado"`
				ID     *string `json:"id"`
			} `json:"detalles"`
		} `json:"resultados"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Resumen.Total)
	assert.Equal(t, 2, resp.Resumen.Exitosos)
	assert.Equal(t, 1, resp.Resumen.Duplicados)
	assert.Equal(t, 1, resp.Resumen.Errores)
	assert.Equal(t, 50, resp.Resumen.PorcentajeExito)

	// Dos productos persistidos, con historial doble y stock inicial
	var total int64
	require.NoError(t, e.db.Model(&model.Producto{}).Count(&total).Error)
	assert.EqualValues(t, 2, total)

	var historial int64
	require.NoError(t, e.db.Model(&model.HistorialPrecio{}).Count(&historial).Error)
	assert.EqualValues(t, 4, historial)

	// Reimportar el mismo catalogo no crea nada
	w = e.hacer(t, http.MethodPost, "/v1/productos/carga-masiva", carga)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, e.db.Model(&model.Producto{}).Count(&total).Error)
	assert.EqualValues(t, 2, total)

	// Venta sobre el producto creado
	productoID := resp.Resultados.Detalles[0].ID
	require.NotNil(t, productoID)

	venta := map[string]any{
		"forma_pago": "efectivo",
		"detalles": []map[string]any{
			{"producto_id": *productoID, "cantidad": 2, "precio_unitario": 1358.02},
		},
	}
	w = e.hacer(t, http.MethodPost, "/v1/ventas", venta)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var p model.Producto
	require.NoError(t, e.db.First(&p, "id = ?", *productoID).Error)
	assert.Equal(t, 2, p.StockActual)

	var movs int64
	require.NoError(t, e.db.Model(&model.MovimientoStock{}).
		Where("producto_id = ? AND origen = ?", *productoID, model.OrigenVenta).
		Count(&movs).Error)
	assert.EqualValues(t, 1, movs)

	// Vender mas de lo disponible se rechaza con 409
	venta["detalles"] = []map[string]any{
		{"producto_id": *productoID, "cantidad": 99, "precio_unitario": 1000},
	}
	w = e.hacer(t, http.MethodPost, "/v1/ventas", venta)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestIntegracion_RequiereToken(t *testing.T) {
	e := levantarEntorno(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/productos", nil)
	e.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

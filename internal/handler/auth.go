package handler

import (
	"net/http"

	"zapastock/internal/dto"
	"zapastock/internal/model"
	"zapastock/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary Iniciar sesion
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} dto.LoginResponse
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	token, duracion, usuario, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(duracion.Seconds()),
		User:        toUsuarioResponse(usuario),
	})
}

func (h *AuthHandler) CrearUsuario(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuario, err := h.auth.CrearUsuario(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toUsuarioResponse(usuario))
}

func (h *AuthHandler) ListarUsuarios(c *gin.Context) {
	usuarios, err := h.auth.ListarUsuarios(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	items := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		items = append(items, toUsuarioResponse(&usuarios[i]))
	}
	c.JSON(http.StatusOK, items)
}

func (h *AuthHandler) DesactivarUsuario(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.auth.DesactivarUsuario(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toUsuarioResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Rol:      u.Rol,
		Activo:   u.Activo,
	}
}

package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
	"github.com/jhoicas/Empleados-api/pkg/config"
)

// StorePinger verifica la conexión con el record store.
type StorePinger func(ctx context.Context) error

// SystemHandler expone health y diagnóstico, sin autenticación.
type SystemHandler struct {
	userRepo repository.UserRepository
	ping     StorePinger
	cfg      *config.Config
}

func NewSystemHandler(userRepo repository.UserRepository, ping StorePinger, cfg *config.Config) *SystemHandler {
	return &SystemHandler{userRepo: userRepo, ping: ping, cfg: cfg}
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	storeConnected := h.ping(c.Context()) == nil

	demoExists := false
	if demo, err := h.userRepo.GetDemoProfile(c.Context()); err == nil && demo != nil {
		demoExists = true
	}

	return c.JSON(fiber.Map{
		"status":         "ok",
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"demoUserExists": demoExists,
		"storeConnected": storeConnected,
	})
}

// DebugStatus godoc
// @Summary      Diagnóstico del seed y la configuración (solo presencia, nunca valores)
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /debug/status [get]
func (h *SystemHandler) DebugStatus(c *fiber.Ctx) error {
	userCount, err := h.userRepo.CountProfiles(c.Context())
	if err != nil {
		userCount = -1
	}

	demoInStore := false
	if demo, derr := h.userRepo.GetDemoProfile(c.Context()); derr == nil && demo != nil {
		demoInStore = true
	}

	adminCredential := false
	if cred, cerr := h.userRepo.GetCredential(c.Context(), h.cfg.Seed.AdminEmail); cerr == nil && cred != nil {
		adminCredential = true
	}

	return c.JSON(fiber.Map{
		"userCount":          userCount,
		"demoUserInStore":    demoInStore,
		"adminCredential":    adminCredential,
		"seedEnabled":        h.cfg.Seed.Enabled,
		"jwtSecretSet":       h.cfg.JWT.Secret != "",
		"storageAccessSet":   h.cfg.Storage.AccessKey != "" && h.cfg.Storage.SecretKey != "",
		"storageEndpointSet": h.cfg.Storage.Endpoint != "",
	})
}

package uiconfig

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GlobalName is the window property the UI script reads its config from.
const GlobalName = "__APP_CONFIG__"

// Recorder counts served config requests.
type Recorder interface {
	RecordRequest(format string)
}

type Handler struct {
	service  *Service
	recorder Recorder
	log      *zap.Logger
}

func NewHandler(s *Service, r Recorder, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{service: s, recorder: r, log: log}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/config", h.getConfig)
	app.Get("/config.js", h.getConfigScript)
}

func (h *Handler) getConfig(c *fiber.Ctx) error {
	h.record("json")
	return c.JSON(h.service.Current())
}

func (h *Handler) getConfigScript(c *fiber.Ctx) error {
	h.record("js")
	body, err := Script(h.service.Current())
	if err != nil {
		h.log.Error("encode config script", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not encode config"})
	}
	c.Set(fiber.HeaderContentType, "application/javascript; charset=utf-8")
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(body)
}

func (h *Handler) record(format string) {
	if h.recorder != nil {
		h.recorder.RecordRequest(format)
	}
}

// Script renders p as a statement assigning it to window.__APP_CONFIG__.
func Script(p Payload) ([]byte, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(b)+32)
	out = append(out, "window."+GlobalName+" = "...)
	out = append(out, b...)
	out = append(out, ";\n"...)
	return out, nil
}

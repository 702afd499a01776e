package handler

import (
	"context"

	"dbprobe/internal/adapter/http/dto"
	"dbprobe/internal/core/ports"
	"dbprobe/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ProbeHandler serves the connectivity probe.
type ProbeHandler struct {
	prober ports.Prober
	log    zerolog.Logger
}

// NewProbeHandler creates a new ProbeHandler.
func NewProbeHandler(prober ports.Prober, log zerolog.Logger) *ProbeHandler {
	return &ProbeHandler{prober: prober, log: log}
}

// Check handles GET /. Probe failures are reported in the body with a 200.
func (h *ProbeHandler) Check(c *gin.Context) {
	// A probe, once started, runs to completion even if the client goes away.
	ctx := context.WithoutCancel(c.Request.Context())

	result := h.prober.Probe(ctx)

	h.log.Info().
		Str("request_id", c.GetString(response.RequestIDKey)).
		Str("target", h.prober.Target()).
		Str("status", string(result.Status)).
		Dur("took", result.Duration).
		Msg("probe completed")

	response.OK(c, dto.FromResult(result))
}

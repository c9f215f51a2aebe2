package api

import (
    "errors"
    "time"

    models "AstroServe/internal/domain/models"
    "AstroServe/internal/usecase"
    xhttp "AstroServe/pkg/http"
    xlogger "AstroServe/pkg/logger"

    "github.com/labstack/echo/v4"
)

// ChartsEchoHandler exposes the chart computation endpoints over Echo.
type ChartsEchoHandler struct {
	logger *xlogger.Logger
	asm    *usecase.Assembler
	cmp    *usecase.Comparator
}

func NewChartsEchoHandler(logger *xlogger.Logger, asm *usecase.Assembler, cmp *usecase.Comparator) *ChartsEchoHandler {
	return &ChartsEchoHandler{logger: logger, asm: asm, cmp: cmp}
}

func (h *ChartsEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/natal_chart", h.NatalChart)
	e.POST("/synastry", h.Synastry)
	e.POST("/transits", h.Transits)
	e.POST("/composite", h.Composite)
	e.GET("/planets/now", h.PlanetsNow)
	e.GET("/health", h.Health)
}

func (h *ChartsEchoHandler) NatalChart(c echo.Context) error {
	req := &models.NatalRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	spec, err := h.asm.Resolve(req.BirthData)
	if err != nil {
		return h.domainError(c, err)
	}
	chart, err := h.asm.Assemble(c.Request().Context(), spec)
	if err != nil {
		h.logger.Error("natal chart", xlogger.Error(err), xlogger.String("subject", spec.Subject))
		return h.domainError(c, err)
	}
	return xhttp.SuccessResponse(c, chart)
}

func (h *ChartsEchoHandler) Synastry(c echo.Context) error {
	specs, ok, werr := h.resolvePair(c)
	if !ok {
		return werr
	}

	report, err := h.cmp.Synastry(c.Request().Context(), specs[0], specs[1])
	if err != nil {
		h.logger.Error("synastry", xlogger.Error(err))
		return h.domainError(c, err)
	}
	return xhttp.SuccessResponse(c, report)
}

func (h *ChartsEchoHandler) Composite(c echo.Context) error {
	specs, ok, werr := h.resolvePair(c)
	if !ok {
		return werr
	}

	composite, err := h.cmp.Composite(c.Request().Context(), specs[0], specs[1])
	if err != nil {
		h.logger.Error("composite", xlogger.Error(err))
		return h.domainError(c, err)
	}
	return xhttp.SuccessResponse(c, composite)
}

func (h *ChartsEchoHandler) Transits(c echo.Context) error {
	req := &models.TransitRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	spec, err := h.asm.Resolve(req.BirthData)
	if err != nil {
		return h.domainError(c, err)
	}

	at := time.Now().UTC()
	if req.TransitUTC != "" {
		parsed, ok := xhttp.ParseTime(req.TransitUTC)
		if !ok {
			return h.domainError(c, models.NewInvalidInput("transit_datetime_utc",
				"cannot parse as an ISO-8601 UTC timestamp"))
		}
		at = parsed.UTC()
	}

	report, err := h.cmp.Transits(c.Request().Context(), spec, at)
	if err != nil {
		h.logger.Error("transits", xlogger.Error(err))
		return h.domainError(c, err)
	}
	return xhttp.SuccessResponse(c, report)
}

func (h *ChartsEchoHandler) PlanetsNow(c echo.Context) error {
	at := xhttp.ParseTimeDefault(c.QueryParam("at"), time.Now()).UTC()

	positions, err := h.asm.Positions(c.Request().Context(), at)
	if err != nil {
		h.logger.Error("planets now", xlogger.Error(err))
		return h.domainError(c, err)
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"timestamp_utc": at.Format(time.RFC3339),
		"planets":       positions,
	})
}

func (h *ChartsEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

// resolvePair binds a two-person request and resolves both chart specs. When
// ok is false the error response has already been written; the caller just
// returns the write result.
func (h *ChartsEchoHandler) resolvePair(c echo.Context) ([2]usecase.ChartSpec, bool, error) {
	req := &models.PairRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return [2]usecase.ChartSpec{}, false, xhttp.BadRequestResponse(c, verr)
	}

	spec1, err := h.asm.Resolve(req.Person1)
	if err != nil {
		return [2]usecase.ChartSpec{}, false, h.domainError(c, err)
	}
	spec2, err := h.asm.Resolve(req.Person2)
	if err != nil {
		return [2]usecase.ChartSpec{}, false, h.domainError(c, err)
	}
	return [2]usecase.ChartSpec{spec1, spec2}, true, nil
}

// domainError maps domain error kinds onto HTTP statuses: bad input is the
// caller's fault (400), out-of-range timestamps are unprocessable (422) and
// broken house geometry is ours (500).
func (h *ChartsEchoHandler) domainError(c echo.Context, err error) error {
	var derr *models.DomainError
	app := xhttp.InternalError("internal error")
	if errors.As(err, &derr) {
		switch derr.Kind {
		case models.KindInvalidInput:
			app = xhttp.BadRequestError(derr.Message)
			app.Field = derr.Field
			app.Code = "ERR_INVALID_INPUT"
		case models.KindEphemerisUnavailable:
			app = xhttp.UnprocessableError(derr.Message)
			app.Code = "ERR_EPHEMERIS_UNAVAILABLE"
		case models.KindInvalidHouseData:
			// cusp diagnostics are logged, never returned
			app = xhttp.InternalError("internal error")
			app.Code = "ERR_INVALID_HOUSE_DATA"
		}
	}
	return xhttp.AppErrorResponse(c, app)
}

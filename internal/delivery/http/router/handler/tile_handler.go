package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"locator/internal/delivery/http/middleware"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// defaultStyle is used when the widget omits an explicit style reference.
const defaultStyle = "mapbox/streets-v12"

// TileHandlerParams holds dependencies for TileHandler, injected by Fx.
type TileHandlerParams struct {
	fx.In

	TileUC usecase.TileUsecase
	Logger *slog.Logger
}

// TileHandler proxies map tiles to the widget.
type TileHandler struct {
	tileUC usecase.TileUsecase
	logger *slog.Logger
}

// NewTileHandler is the constructor for TileHandler
func NewTileHandler(params TileHandlerParams) *TileHandler {
	return &TileHandler{
		tileUC: params.TileUC,
		logger: params.Logger,
	}
}

// GetTile handles GET /api/maps/tiles/:z/:x/:y where the y segment is a
// filename like "385.png" or "385@2x.png". Requests come from img tags, so
// the auth middleware accepts the token query parameter here.
func (h *TileHandler) GetTile(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	input, err := parseTilePath(c)
	if err != nil {
		return err
	}

	body, err := h.tileUC.GetTile(c.Request().Context(), claims.SiteID, input)
	if err != nil {
		return err
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", body)
}

func parseTilePath(c echo.Context) (*usecase.TileInput, error) {
	z, err := strconv.ParseUint(c.Param("z"), 10, 32)
	if err != nil {
		return nil, domainerrors.ErrInvalidTileCoordinates
	}

	x, err := strconv.ParseUint(c.Param("x"), 10, 32)
	if err != nil {
		return nil, domainerrors.ErrInvalidTileCoordinates
	}

	yName := strings.TrimSuffix(c.Param("y"), ".png")
	if yName == c.Param("y") {
		return nil, domainerrors.ErrInvalidTileCoordinates
	}

	retina := strings.HasSuffix(yName, "@2x")
	yName = strings.TrimSuffix(yName, "@2x")

	y, err := strconv.ParseUint(yName, 10, 32)
	if err != nil {
		return nil, domainerrors.ErrInvalidTileCoordinates
	}

	style := c.QueryParam("style")
	if style == "" {
		style = defaultStyle
	}

	return &usecase.TileInput{
		Style:  style,
		Z:      uint32(z),
		X:      uint32(x),
		Y:      uint32(y),
		Retina: retina,
	}, nil
}

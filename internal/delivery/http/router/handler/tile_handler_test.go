package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"locator/internal/delivery/http/middleware"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/service"
	mockUsecase "locator/internal/mocks/usecase"
	"locator/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWidgetClaims() *service.Claims {
	return &service.Claims{SiteID: "site-1", CollectionID: "coll-1", Type: service.TokenTypeWidget}
}

func newTileContext(target, z, x, y string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("z", "x", "y")
	c.SetParamValues(z, x, y)
	middleware.SetClaims(c, testWidgetClaims())

	return c, rec
}

func TestTileHandler_GetTile(t *testing.T) {
	tileUC := mockUsecase.NewMockTileUsecase(t)
	h := &TileHandler{tileUC: tileUC, logger: discardLogger()}

	c, rec := newTileContext("/api/maps/tiles/10/301/385.png", "10", "301", "385.png")

	tileUC.EXPECT().GetTile(c.Request().Context(), "site-1", &usecase.TileInput{
		Style: defaultStyle,
		Z:     10,
		X:     301,
		Y:     385,
	}).Return([]byte("png-bytes"), nil)

	err := h.GetTile(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestTileHandler_GetTile_RetinaSuffix(t *testing.T) {
	tileUC := mockUsecase.NewMockTileUsecase(t)
	h := &TileHandler{tileUC: tileUC, logger: discardLogger()}

	c, _ := newTileContext("/api/maps/tiles/10/301/385@2x.png", "10", "301", "385@2x.png")

	tileUC.EXPECT().GetTile(c.Request().Context(), "site-1", &usecase.TileInput{
		Style:  defaultStyle,
		Z:      10,
		X:      301,
		Y:      385,
		Retina: true,
	}).Return([]byte("png-bytes"), nil)

	err := h.GetTile(c)

	require.NoError(t, err)
}

func TestTileHandler_GetTile_ExplicitStyle(t *testing.T) {
	tileUC := mockUsecase.NewMockTileUsecase(t)
	h := &TileHandler{tileUC: tileUC, logger: discardLogger()}

	c, _ := newTileContext("/api/maps/tiles/10/301/385.png?style=acme/night-v1", "10", "301", "385.png")

	tileUC.EXPECT().GetTile(c.Request().Context(), "site-1", &usecase.TileInput{
		Style: "acme/night-v1",
		Z:     10,
		X:     301,
		Y:     385,
	}).Return([]byte("png-bytes"), nil)

	err := h.GetTile(c)

	require.NoError(t, err)
}

func TestTileHandler_GetTile_BadPath(t *testing.T) {
	tests := []struct {
		name    string
		z, x, y string
	}{
		{name: "missing png extension", z: "10", x: "301", y: "385"},
		{name: "missing png on retina", z: "10", x: "301", y: "385@2x"},
		{name: "non numeric y", z: "10", x: "301", y: "abc.png"},
		{name: "non numeric z", z: "ten", x: "301", y: "385.png"},
		{name: "negative x", z: "10", x: "-1", y: "385.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tileUC := mockUsecase.NewMockTileUsecase(t)
			h := &TileHandler{tileUC: tileUC, logger: discardLogger()}

			c, _ := newTileContext("/api/maps/tiles/x", tt.z, tt.x, tt.y)

			err := h.GetTile(c)

			assert.ErrorIs(t, err, domainerrors.ErrInvalidTileCoordinates)
		})
	}
}

func TestTileHandler_GetTile_MissingClaims(t *testing.T) {
	tileUC := mockUsecase.NewMockTileUsecase(t)
	h := &TileHandler{tileUC: tileUC, logger: discardLogger()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/maps/tiles/10/301/385.png", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.GetTile(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

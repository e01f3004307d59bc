package http_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	httpadapter "paquexpress/internal/adapters/in/http"
	"paquexpress/internal/core/application/usecases/commands"
	"paquexpress/internal/core/application/usecases/queries"
	"paquexpress/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTokenVerifier returns a fixed subject or error for any token.
type stubTokenVerifier struct {
	subject string
	err     error
}

func (v stubTokenVerifier) Parse(_ string) (string, error) {
	return v.subject, v.err
}

// newTestServer builds a Server whose command and query handlers stay
// zero-valued; these tests exercise only the auth path, which rejects the
// request before any handler runs.
func newTestServer(verifier httpadapter.TokenVerifier) *httpadapter.Server {
	return httpadapter.NewServer(
		commands.RegisterAgentCommandHandler{},
		commands.LoginCommandHandler{},
		commands.CreateParcelCommandHandler{},
		commands.RegisterDeliveryCommandHandler{},
		queries.GetAssignedParcelsQueryHandler{},
		verifier,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestRequireAgentToken(t *testing.T) {
	agentID := kernel.NewUUID()

	t.Run("MissingAuthorizationHeader", func(t *testing.T) {
		server := newTestServer(stubTokenVerifier{subject: agentID.String()})
		ctx, rec := newGetContext(t, "/paquetes/asignados/"+agentID.String(), "")

		err := server.RequireAgentToken(failingNext(t))(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("MalformedAuthorizationHeader", func(t *testing.T) {
		server := newTestServer(stubTokenVerifier{subject: agentID.String()})
		ctx, rec := newGetContext(t, "/paquetes/asignados/"+agentID.String(), "Token abc")

		err := server.RequireAgentToken(failingNext(t))(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("RejectedToken", func(t *testing.T) {
		server := newTestServer(stubTokenVerifier{err: errors.New("signature is invalid")})
		ctx, rec := newGetContext(t, "/paquetes/asignados/"+agentID.String(), "Bearer expired-token")

		err := server.RequireAgentToken(failingNext(t))(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ValidTokenReachesHandler", func(t *testing.T) {
		server := newTestServer(stubTokenVerifier{subject: agentID.String()})
		ctx, rec := newGetContext(t, "/paquetes/asignados/"+agentID.String(), "Bearer valid-token")

		nextCalled := false
		next := func(c echo.Context) error {
			nextCalled = true
			return c.NoContent(http.StatusOK)
		}

		err := server.RequireAgentToken(next)(ctx)

		require.NoError(t, err)
		assert.True(t, nextCalled)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestGetAssignedParcels_TokenForDifferentAgent_ReturnsUnauthorized(t *testing.T) {
	requestedAgentID := kernel.NewUUID()
	tokenAgentID := kernel.NewUUID()

	server := newTestServer(stubTokenVerifier{subject: tokenAgentID.String()})
	ctx, rec := newGetContext(t, "/paquetes/asignados/:id_agente", "Bearer valid-token")
	ctx.SetParamNames("id_agente")
	ctx.SetParamValues(requestedAgentID.String())

	handler := server.RequireAgentToken(server.GetAssignedParcels)
	err := handler(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "no corresponde al agente")
}

func TestRegisterDelivery_TokenForDifferentAgent_ReturnsUnauthorized(t *testing.T) {
	requestedAgentID := kernel.NewUUID()
	tokenAgentID := kernel.NewUUID()

	form := url.Values{}
	form.Set("id_paquete_fk", "PKG-001")
	form.Set("id_agente_fk", requestedAgentID.String())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/entregas/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.Header.Set(echo.HeaderAuthorization, "Bearer valid-token")
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	server := newTestServer(stubTokenVerifier{subject: tokenAgentID.String()})
	handler := server.RequireAgentToken(server.RegisterDelivery)
	err := handler(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "no corresponde al agente")
}

// newGetContext builds an echo context for a GET request with the given
// Authorization header.
func newGetContext(t *testing.T, target, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// failingNext fails the test if the middleware lets the request through.
func failingNext(t *testing.T) echo.HandlerFunc {
	t.Helper()

	return func(echo.Context) error {
		t.Error("request should have been rejected before the handler")
		return nil
	}
}

// Package http exposes the delivery service over REST.
// Field names on the wire follow the mobile client's contract, which predates
// this service; they are Spanish and stay that way.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"paquexpress/internal/core/application/usecases/commands"
	"paquexpress/internal/core/application/usecases/queries"
	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// TokenVerifier validates a session token and returns the agent id it was
// issued for.
type TokenVerifier interface {
	Parse(token string) (string, error)
}

// authAgentIDKey carries the token subject from the auth middleware to the
// route handlers.
const authAgentIDKey = "auth_agent_id"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerAgentHandler    commands.RegisterAgentCommandHandler
	loginHandler            commands.LoginCommandHandler
	createParcelHandler     commands.CreateParcelCommandHandler
	registerDeliveryHandler commands.RegisterDeliveryCommandHandler

	// Query handlers
	getAssignedParcelsHandler queries.GetAssignedParcelsQueryHandler

	tokenVerifier TokenVerifier
	logger        *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerAgentHandler commands.RegisterAgentCommandHandler,
	loginHandler commands.LoginCommandHandler,
	createParcelHandler commands.CreateParcelCommandHandler,
	registerDeliveryHandler commands.RegisterDeliveryCommandHandler,
	getAssignedParcelsHandler queries.GetAssignedParcelsQueryHandler,
	tokenVerifier TokenVerifier,
	logger *slog.Logger,
) *Server {
	return &Server{
		registerAgentHandler:      registerAgentHandler,
		loginHandler:              loginHandler,
		createParcelHandler:       createParcelHandler,
		registerDeliveryHandler:   registerDeliveryHandler,
		getAssignedParcelsHandler: getAssignedParcelsHandler,
		tokenVerifier:             tokenVerifier,
		logger:                    logger,
	}
}

// RegisterRoutes binds all endpoints on the given Echo instance.
// Agent-facing routes require the session token issued on login.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/agentes/", s.RegisterAgent)
	e.POST("/login/", s.Login)
	e.POST("/paquetes/", s.CreateParcel)
	e.GET("/paquetes/asignados/:id_agente", s.GetAssignedParcels, s.RequireAgentToken)
	e.POST("/entregas/", s.RegisterDelivery, s.RequireAgentToken)
}

// RequireAgentToken rejects requests without a valid "Authorization: Bearer"
// session token and stores the token's agent id for the route handler.
func (s *Server) RequireAgentToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return ctx.JSON(http.StatusUnauthorized, errorBody{
				Detail: "Se requiere un token de sesión",
			})
		}

		tokenAgentID, err := s.tokenVerifier.Parse(token)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, errorBody{
				Detail: "Token de sesión inválido",
			})
		}

		ctx.Set(authAgentIDKey, tokenAgentID)
		return next(ctx)
	}
}

// tokenMatchesAgent reports whether the session token on the request was
// issued for the given agent.
func tokenMatchesAgent(ctx echo.Context, agentID kernel.UUID) bool {
	tokenAgentID, ok := ctx.Get(authAgentIDKey).(string)
	return ok && tokenAgentID == agentID.String()
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterAgent handles POST /agentes/ - creates a new delivery agent.
func (s *Server) RegisterAgent(ctx echo.Context) error {
	usuario := ctx.FormValue("usuario")
	nombre := ctx.FormValue("nombre")
	password := ctx.FormValue("password")

	cmd, err := commands.NewRegisterAgentCommand(kernel.NewUUID(), usuario, nombre, password)
	if err != nil {
		return s.errorResponse(ctx, err, "Todos los campos son requeridos")
	}

	createdAgent, err := s.registerAgentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "No se pudo crear el agente")
	}

	return ctx.JSON(http.StatusCreated, agentResponse{
		AgentID: createdAgent.ID().String(),
		Name:    createdAgent.Name(),
		Login:   createdAgent.Login(),
	})
}

// Login handles POST /login/ - authenticates an agent and opens a session.
func (s *Server) Login(ctx echo.Context) error {
	var request loginRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Detail: "Cuerpo de la petición inválido",
		})
	}

	cmd, err := commands.NewLoginCommand(request.Login, request.Password)
	if err != nil {
		return s.errorResponse(ctx, err, "Usuario y contraseña son requeridos")
	}

	result, err := s.loginHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "Usuario o contraseña incorrectos")
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		Message: "Inicio de sesión exitoso",
		AgentID: result.AgentID.String(),
		Name:    result.AgentName,
		Token:   result.Token,
	})
}

// CreateParcel handles POST /paquetes/ - registers a parcel and assigns it to an agent.
func (s *Server) CreateParcel(ctx echo.Context) error {
	trackingID, err := parcel.NewTrackingID(ctx.FormValue("id_paquete"))
	if err != nil {
		return s.errorResponse(ctx, err, "Identificador de paquete inválido")
	}

	agentID, err := kernel.UUIDFromString(ctx.FormValue("id_agente_asignado_fk"))
	if err != nil {
		return s.errorResponse(ctx, err, "Identificador de agente inválido")
	}

	destination, err := parseGeoPoint(ctx.FormValue("lat"), ctx.FormValue("lon"))
	if err != nil {
		return s.errorResponse(ctx, err, "Coordenadas inválidas")
	}

	cmd, err := commands.NewCreateParcelCommand(trackingID, agentID, ctx.FormValue("calle"), destination)
	if err != nil {
		return s.errorResponse(ctx, err, "Todos los campos son requeridos")
	}

	createdParcel, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "No se pudo crear el paquete")
	}

	return ctx.JSON(http.StatusCreated, parcelResponse{
		TrackingID: createdParcel.TrackingID().String(),
		AgentID:    createdParcel.AgentID().String(),
		Status:     createdParcel.Status().String(),
		Address: addressResponse{
			ID:         createdParcel.Address().ID().String(),
			Street:     createdParcel.Address().Street(),
			Locality:   createdParcel.Address().Locality(),
			City:       createdParcel.Address().City(),
			PostalCode: createdParcel.Address().PostalCode(),
			Latitude:   createdParcel.Address().Destination().Latitude(),
			Longitude:  createdParcel.Address().Destination().Longitude(),
		},
	})
}

// GetAssignedParcels handles GET /paquetes/asignados/:id_agente - lists an
// agent's pending parcels.
func (s *Server) GetAssignedParcels(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("id_agente"))
	if err != nil {
		return s.errorResponse(ctx, err, "Identificador de agente inválido")
	}

	if !tokenMatchesAgent(ctx, agentID) {
		return ctx.JSON(http.StatusUnauthorized, errorBody{
			Detail: "La sesión no corresponde al agente",
		})
	}

	query, err := queries.NewGetAssignedParcelsQuery(agentID)
	if err != nil {
		return s.errorResponse(ctx, err, "Identificador de agente inválido")
	}

	parcels, err := s.getAssignedParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "No se pudieron listar los paquetes")
	}

	response := make([]parcelResponse, len(parcels))
	for i, p := range parcels {
		response[i] = parcelResponse{
			TrackingID: p.TrackingID.String(),
			AgentID:    agentID.String(),
			Status:     p.Status.String(),
			Address: addressResponse{
				ID:         p.Address.ID.String(),
				Street:     p.Address.Street,
				Locality:   p.Address.Locality,
				City:       p.Address.City,
				PostalCode: p.Address.PostalCode,
				Latitude:   p.Address.Destination.Latitude(),
				Longitude:  p.Address.Destination.Longitude(),
			},
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterDelivery handles POST /entregas/ - registers a proof of delivery.
// Expects a multipart form with the parcel, agent, GPS fix and the photo file.
func (s *Server) RegisterDelivery(ctx echo.Context) error {
	trackingID, err := parcel.NewTrackingID(ctx.FormValue("id_paquete_fk"))
	if err != nil {
		return s.errorResponse(ctx, err, "Identificador de paquete inválido")
	}

	agentID, err := kernel.UUIDFromString(ctx.FormValue("id_agente_fk"))
	if err != nil {
		return s.errorResponse(ctx, err, "Identificador de agente inválido")
	}

	if !tokenMatchesAgent(ctx, agentID) {
		return ctx.JSON(http.StatusUnauthorized, errorBody{
			Detail: "La sesión no corresponde al agente",
		})
	}

	location, err := parseGeoPoint(ctx.FormValue("latitud_gps"), ctx.FormValue("longitud_gps"))
	if err != nil {
		return s.errorResponse(ctx, err, "Coordenadas inválidas")
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Detail: "La foto de entrega es requerida",
		})
	}

	photo, err := fileHeader.Open()
	if err != nil {
		return s.errorResponse(ctx, err, "No se pudo leer la foto")
	}
	defer photo.Close()

	cmd, err := commands.NewRegisterDeliveryCommand(trackingID, agentID, location, fileHeader.Filename, photo)
	if err != nil {
		return s.errorResponse(ctx, err, "Datos de entrega inválidos")
	}

	proof, err := s.registerDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "No se pudo registrar la entrega")
	}

	return ctx.JSON(http.StatusOK, deliveryRegisteredResponse{
		Message: "Entrega del paquete " + proof.TrackingID().String() + " registrada correctamente.",
		Proof: proofResponse{
			TrackingID:  proof.TrackingID().String(),
			AgentID:     proof.AgentID().String(),
			PhotoPath:   proof.PhotoPath(),
			Latitude:    proof.Location().Latitude(),
			Longitude:   proof.Location().Longitude(),
			DeliveredAt: proof.DeliveredAt(),
		},
	})
}

// errorResponse maps application errors to HTTP statuses. Internal causes are
// logged and never echoed to the client.
func (s *Server) errorResponse(ctx echo.Context, err error, detail string) error {
	switch {
	case errors.Is(err, commands.ErrInvalidCredentials):
		return ctx.JSON(http.StatusUnauthorized, errorBody{Detail: detail})
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, commands.ErrParcelNotDeliverable):
		return ctx.JSON(http.StatusNotFound, errorBody{Detail: detail})
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return ctx.JSON(http.StatusConflict, errorBody{Detail: detail})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, errorBody{Detail: detail})
	default:
		s.logger.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Request().URL.Path,
			"error", err,
		)
		return ctx.JSON(http.StatusInternalServerError, errorBody{Detail: "Error interno"})
	}
}

// parseGeoPoint builds a validated GPS fix from raw form values.
func parseGeoPoint(rawLatitude, rawLongitude string) (kernel.GeoPoint, error) {
	latitude, err := strconv.ParseFloat(rawLatitude, 64)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("latitude", err)
	}

	longitude, err := strconv.ParseFloat(rawLongitude, 64)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("longitude", err)
	}

	return kernel.NewGeoPoint(latitude, longitude)
}

type errorBody struct {
	Detail string `json:"detail"`
}

type loginRequest struct {
	Login    string `json:"usuario"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"msg"`
	AgentID string `json:"id_agente"`
	Name    string `json:"nombre"`
	Token   string `json:"token"`
}

type agentResponse struct {
	AgentID string `json:"id_agente"`
	Name    string `json:"nombre"`
	Login   string `json:"usuario"`
}

type addressResponse struct {
	ID         string  `json:"id_direccion"`
	Street     string  `json:"calle_numero"`
	Locality   string  `json:"colonia"`
	City       string  `json:"ciudad"`
	PostalCode string  `json:"codigo_postal"`
	Latitude   float64 `json:"latitud_destino"`
	Longitude  float64 `json:"longitud_destino"`
}

type parcelResponse struct {
	TrackingID string          `json:"id_paquete"`
	AgentID    string          `json:"id_agente_asignado_fk"`
	Status     string          `json:"estado"`
	Address    addressResponse `json:"direccion"`
}

type proofResponse struct {
	TrackingID  string    `json:"id_paquete_fk"`
	AgentID     string    `json:"id_agente_fk"`
	PhotoPath   string    `json:"ruta_foto"`
	Latitude    float64   `json:"latitud_gps"`
	Longitude   float64   `json:"longitud_gps"`
	DeliveredAt time.Time `json:"fecha_entrega"`
}

type deliveryRegisteredResponse struct {
	Message string        `json:"msg"`
	Proof   proofResponse `json:"entrega"`
}

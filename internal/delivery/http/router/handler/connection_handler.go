package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ushankamesh-devX/helatrade-sub000/internal/delivery/http/middleware"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/delivery/http/response"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ConnectionHandler holds dependencies for connection-related handlers.
type ConnectionHandler struct {
	uc     usecase.ConnectionUsecase
	logger *slog.Logger
}

// NewConnectionHandler is the constructor for ConnectionHandler, injected by Fx.
func NewConnectionHandler(uc usecase.ConnectionUsecase, logger *slog.Logger) *ConnectionHandler {
	return &ConnectionHandler{
		uc:     uc,
		logger: logger,
	}
}

// connectionPair resolves the (store, producer) pair from the authenticated
// account and the :peer_id route param. The actor's type decides which side
// of the pair it occupies.
func connectionPair(c echo.Context) (storeID, producerID uuid.UUID, role entity.InitiatorRole, err error) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid account ID in token")
	}

	accountType, ok := middleware.AccountType(c)
	if !ok {
		return uuid.Nil, uuid.Nil, "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid account type in token")
	}

	peerID, err := uuid.Parse(c.Param("peer_id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, "", echo.NewHTTPError(http.StatusBadRequest, "Invalid peer id")
	}

	if accountType == entity.AccountTypeStore {
		return accountID, peerID, entity.InitiatorStore, nil
	}

	return peerID, accountID, entity.InitiatorProducer, nil
}

// requestConnectionBody carries the optional free-text note of a request.
type requestConnectionBody struct {
	Note string `json:"note"`
}

// RequestConnection handles opening a pending connection with the peer
// named in the route.
func (h *ConnectionHandler) RequestConnection(c echo.Context) error {
	storeID, producerID, role, err := connectionPair(c)
	if err != nil {
		return err
	}

	var body requestConnectionBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid connection request input")
	}

	input := &usecase.RequestConnectionInput{
		StoreID:     storeID,
		ProducerID:  producerID,
		InitiatedBy: role,
		Note:        body.Note,
	}

	conn, err := h.uc.RequestConnection(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newConnectionView(conn), "Connection requested successfully")
}

// transitionConnectionBody carries the requested next status.
type transitionConnectionBody struct {
	Status entity.ConnectionStatus `json:"status"`
}

// TransitionConnection handles moving the connection with the peer named in
// the route to a new status.
func (h *ConnectionHandler) TransitionConnection(c echo.Context) error {
	storeID, producerID, _, err := connectionPair(c)
	if err != nil {
		return err
	}

	var body transitionConnectionBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid connection transition input")
	}

	input := &usecase.TransitionConnectionInput{
		StoreID:    storeID,
		ProducerID: producerID,
		NextStatus: body.Status,
	}

	conn, err := h.uc.TransitionConnection(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newConnectionView(conn), "Connection updated successfully")
}

// GetConnection handles fetching the connection with the peer named in the
// route.
func (h *ConnectionHandler) GetConnection(c echo.Context) error {
	storeID, producerID, _, err := connectionPair(c)
	if err != nil {
		return err
	}

	conn, err := h.uc.GetConnection(c.Request().Context(), storeID, producerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newConnectionView(conn), "Connection retrieved successfully")
}

// connectionListView is the wire shape of one connection page.
type connectionListView struct {
	Connections []*ConnectionView `json:"connections"`
	Page        usecase.PageMeta  `json:"page"`
}

// ListConnections handles listing the authenticated account's connections.
func (h *ConnectionHandler) ListConnections(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	accountType, ok := middleware.AccountType(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account type in token")
	}

	role := entity.InitiatorProducer
	if accountType == entity.AccountTypeStore {
		role = entity.InitiatorStore
	}

	input := &usecase.ListConnectionsInput{
		AccountID: accountID,
		Role:      role,
		Status:    entity.ConnectionStatus(c.QueryParam("status")),
		Page:      intQueryParam(c, "page"),
		PerPage:   intQueryParam(c, "per_page"),
	}

	output, err := h.uc.ListConnections(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	view := &connectionListView{
		Connections: newConnectionViews(output.Connections),
		Page:        output.Page,
	}

	return response.Success(c, http.StatusOK, view, "Connections retrieved successfully")
}

// intQueryParam parses an integer query parameter, returning zero when the
// parameter is absent or malformed.
func intQueryParam(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return value
}

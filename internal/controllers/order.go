package controllers

import (
	"encoding/json"
	"net/http"
	"path"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Nduhiu17/treasure-shop-api/internal/dto"
	"github.com/Nduhiu17/treasure-shop-api/internal/entities"
	"github.com/Nduhiu17/treasure-shop-api/internal/services"
	"github.com/Nduhiu17/treasure-shop-api/pkg/api"
	"github.com/Nduhiu17/treasure-shop-api/pkg/constants"
	apperrors "github.com/Nduhiu17/treasure-shop-api/pkg/errors"
	"github.com/Nduhiu17/treasure-shop-api/pkg/filestorage"
	"github.com/Nduhiu17/treasure-shop-api/pkg/utils"
)

type OrderController struct {
	orderService services.OrderServiceInterface
	engine       services.TransitionEngineInterface
	storage      filestorage.FileStorageInterface
	uploadsURL   string
	logger       *zap.Logger
}

func NewOrderController(
	orderService services.OrderServiceInterface,
	engine services.TransitionEngineInterface,
	storage filestorage.FileStorageInterface,
	uploadsURL string,
	logger *zap.Logger,
) *OrderController {
	return &OrderController{
		orderService: orderService,
		engine:       engine,
		storage:      storage,
		uploadsURL:   uploadsURL,
		logger:       logger,
	}
}

func parseOrderID(ctx echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.NewInvalidInputError("invalid order id %q", ctx.Param("id"))
	}
	return id, nil
}

// saveUpload stores a multipart file under the given prefix and returns its
// public URL. A missing file yields (nil, nil).
func (c *OrderController) saveUpload(ctx echo.Context, field, prefix string) (*string, error) {
	fileHeader, err := ctx.FormFile(field)
	if err == http.ErrMissingFile || fileHeader == nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	filePath, err := c.storage.Save(src, fileHeader.Filename, prefix)
	if err != nil {
		return nil, err
	}
	url := path.Join(c.uploadsURL, filePath)
	return &url, nil
}

func (c *OrderController) respondOrder(ctx echo.Context, code int, message string, order *entities.Order, actor entities.Actor) error {
	return api.SuccessOne(ctx, code, message, dto.OrderResponseDTO{
		Order:          *order,
		AllowedActions: c.engine.AllowedActions(order, actor),
	})
}

// CreateOrder takes multipart form data: a required "data" field with the
// order JSON plus an optional "file" with the assignment brief.
func (c *OrderController) CreateOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	actor, err := utils.GetActorFromCtx(reqCtx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	dataString := ctx.FormValue("data")
	if dataString == "" {
		return api.ErrorResponse(ctx, apperrors.NewInvalidInputError("the 'data' form field is required"))
	}

	var body dto.CreateOrderDTO
	if err := json.Unmarshal([]byte(dataString), &body); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewInvalidInputError("invalid JSON in 'data': %v", err))
	}
	if err := ctx.Validate(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	fileURL, err := c.saveUpload(ctx, "file", "orders")
	if err != nil {
		c.logger.Error("failed to store order file", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	order, err := c.orderService.CreateOrder(reqCtx, body, fileURL, actor)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return c.respondOrder(ctx, http.StatusCreated, "order created", order, actor)
}

func (c *OrderController) ListOrders(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	actor, err := utils.GetActorFromCtx(reqCtx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	filter := utils.ParseQuery(ctx.Request().URL.Query())
	orders, total, err := c.orderService.ListOrders(reqCtx, filter, actor)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessList(ctx, "orders listed", orders, total, filter.Page, filter.Limit)
}

func (c *OrderController) FindOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	actor, err := utils.GetActorFromCtx(reqCtx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	id, err := parseOrderID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	order, err := c.orderService.FindOrder(reqCtx, id, actor)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return c.respondOrder(ctx, http.StatusOK, "order found", order, actor)
}

func (c *OrderController) GetActions(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	actor, err := utils.GetActorFromCtx(reqCtx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	id, err := parseOrderID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	order, err := c.orderService.FindOrder(reqCtx, id, actor)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "allowed actions",
		c.engine.AllowedActions(order, actor))
}

// transition runs one lifecycle action and returns the updated order.
func (c *OrderController) transition(ctx echo.Context, action string, payload services.TransitionPayload) error {
	reqCtx := ctx.Request().Context()
	actor, err := utils.GetActorFromCtx(reqCtx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	id, err := parseOrderID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	order, err := c.engine.Transition(reqCtx, id, action, actor, payload)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return c.respondOrder(ctx, http.StatusOK, "order updated", order, actor)
}

func (c *OrderController) Pay(ctx echo.Context) error {
	return c.transition(ctx, constants.ActionPay, services.TransitionPayload{})
}

func (c *OrderController) Assign(ctx echo.Context) error {
	var body dto.AssignOrderDTO
	if err := ctx.Bind(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return c.transition(ctx, constants.ActionAssign, services.TransitionPayload{WriterID: body.WriterID})
}

func (c *OrderController) AcceptAssignment(ctx echo.Context) error {
	return c.transition(ctx, constants.ActionAcceptAssignment, services.TransitionPayload{})
}

func (c *OrderController) RejectAssignment(ctx echo.Context) error {
	return c.transition(ctx, constants.ActionRejectAssignment, services.TransitionPayload{})
}

func (c *OrderController) StartProgress(ctx echo.Context) error {
	return c.transition(ctx, constants.ActionStartProgress, services.TransitionPayload{})
}

// SubmitWork takes multipart form data: a required "file" and an optional
// "note".
func (c *OrderController) SubmitWork(ctx echo.Context) error {
	note := ctx.FormValue("note")
	body := dto.SubmitWorkDTO{Note: note}
	if err := ctx.Validate(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	fileURL, err := c.saveUpload(ctx, "file", "submissions")
	if err != nil {
		c.logger.Error("failed to store submission file", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	payload := services.TransitionPayload{Note: note}
	if fileURL != nil {
		payload.FileURL = *fileURL
	}
	return c.transition(ctx, constants.ActionSubmitWork, payload)
}

func (c *OrderController) Approve(ctx echo.Context) error {
	return c.transition(ctx, constants.ActionApprove, services.TransitionPayload{})
}

// RequestFeedback takes multipart form data: a required "text" and an
// optional annotated "file".
func (c *OrderController) RequestFeedback(ctx echo.Context) error {
	body := dto.RequestFeedbackDTO{Text: ctx.FormValue("text")}
	if err := ctx.Validate(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	fileURL, err := c.saveUpload(ctx, "file", "feedbacks")
	if err != nil {
		c.logger.Error("failed to store feedback file", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return c.transition(ctx, constants.ActionRequestFeedback, services.TransitionPayload{
		FeedbackText:    body.Text,
		FeedbackFileURL: fileURL,
	})
}

func (c *OrderController) MarkCompleted(ctx echo.Context) error {
	return c.transition(ctx, constants.ActionMarkCompleted, services.TransitionPayload{})
}

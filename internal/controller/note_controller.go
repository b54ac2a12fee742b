package controller

import (
	"notes-app-be/internal/constant"
	"notes-app-be/internal/dto"
	"notes-app-be/internal/pkg/apperror"
	"notes-app-be/internal/pkg/serverutils"
	"notes-app-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.All("", serverutils.MethodNotAllowed(fiber.MethodGet, fiber.MethodPost))

	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
	h.All("/:id", serverutils.MethodNotAllowed(fiber.MethodGet, fiber.MethodPut, fiber.MethodDelete))
}

// noteID treats a malformed id like an unknown one.
func noteID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.NotFound(constant.MsgNoteNotFound)
	}
	return id, nil
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	query := dto.ListNotesQuery{
		Search: ctx.Query("search"),
		Tag:    ctx.Query("tag"),
	}

	res, err := c.noteService.List(ctx.UserContext(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation(constant.MsgTitleContentRequired)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return apperror.Validation(constant.MsgTitleContentRequired)
	}

	res, err := c.noteService.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	id, err := noteID(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation(constant.MsgTitleContentRequired)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return apperror.Validation(constant.MsgTitleContentRequired)
	}

	id, err := noteID(ctx)
	if err != nil {
		return err
	}
	req.Id = id

	res, err := c.noteService.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	id, err := noteID(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.Delete(ctx.UserContext(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.MessageResponse(constant.MsgNoteDeleted))
}

package controller

import (
	"errors"

	"notes-app-be/internal/dto"
	"notes-app-be/internal/entity"
	"notes-app-be/internal/pkg/apperror"
	"notes-app-be/internal/pkg/logger"
	"notes-app-be/internal/repository/memory"
	"notes-app-be/internal/service"
	"notes-app-be/internal/view"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	actionAddTag    = "add_tag"
	actionRemoveTag = "remove_tag"
	actionSubmit    = "submit"
)

type IPageController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	NewNote(ctx *fiber.Ctx) error
	EditNote(ctx *fiber.Ctx) error
	ShowDraft(ctx *fiber.Ctx) error
	DraftAction(ctx *fiber.Ctx) error
	ShowNote(ctx *fiber.Ctx) error
	SaveNote(ctx *fiber.Ctx) error
	DeleteNote(ctx *fiber.Ctx) error
}

type pageController struct {
	noteService service.INoteService
	drafts      *memory.DraftRepository
	logger      logger.ILogger
}

func NewPageController(noteService service.INoteService, drafts *memory.DraftRepository, log logger.ILogger) IPageController {
	return &pageController{
		noteService: noteService,
		drafts:      drafts,
		logger:      log,
	}
}

func (c *pageController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.page(c.Index))

	r.Get("/notes/new", c.page(c.NewNote))
	r.Get("/notes/:id/edit", c.page(c.EditNote))
	r.Post("/notes/:id/delete", c.page(c.DeleteNote))
	r.Get("/notes/:id", c.page(c.ShowNote))
	r.Post("/notes/:id", c.page(c.SaveNote))

	r.Get("/drafts/:draftId", c.page(c.ShowDraft))
	r.Post("/drafts/:draftId", c.page(c.DraftAction))
}

// page renders a failed handler as an HTML error page instead of JSON.
func (c *pageController) page(h fiber.Handler) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if err := h(ctx); err != nil {
			return c.renderError(ctx, err)
		}
		return nil
	}
}

func (c *pageController) renderError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Something went wrong"

	var appErr *apperror.AppError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		status, message = appErr.Status(), appErr.Message
	case errors.As(err, &fiberErr):
		status, message = fiberErr.Code, fiberErr.Message
	}

	if status == fiber.StatusInternalServerError {
		c.logger.Error("PageController", "Page failed", map[string]interface{}{
			"error":  err,
			"method": ctx.Method(),
			"path":   ctx.Path(),
		})
	}

	return ctx.Status(status).Render("error", view.ErrorPage{
		Title:   message,
		Status:  status,
		Message: message,
	}, view.Layout)
}

// Index loads every note; q and tag only filter what was loaded.
func (c *pageController) Index(ctx *fiber.Ctx) error {
	notes, err := c.noteService.List(ctx.UserContext(), dto.ListNotesQuery{})
	if err != nil {
		return err
	}

	list := view.NewNoteList(notes, ctx.Query("q"), ctx.Query("tag"))
	return ctx.Render("list", view.ListPage{Title: "Notes", List: list}, view.Layout)
}

func (c *pageController) NewNote(ctx *fiber.Ctx) error {
	id := c.drafts.Save(&entity.NoteDraft{Tags: []string{}})
	return ctx.Redirect("/drafts/"+id, fiber.StatusSeeOther)
}

func (c *pageController) EditNote(ctx *fiber.Ctx) error {
	id, err := noteID(ctx)
	if err != nil {
		return err
	}

	note, err := c.noteService.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	draftID := c.drafts.Save(&entity.NoteDraft{
		NoteId:  note.Id,
		Title:   note.Title,
		Content: note.Content,
		Tags:    note.Tags,
	})
	return ctx.Redirect("/drafts/"+draftID, fiber.StatusSeeOther)
}

func (c *pageController) loadDraft(ctx *fiber.Ctx) (*entity.NoteDraft, error) {
	draft, ok := c.drafts.Get(ctx.Params("draftId"))
	if !ok {
		return nil, apperror.NotFound("Draft not found")
	}
	return draft, nil
}

func (c *pageController) renderForm(ctx *fiber.Ctx, draft *entity.NoteDraft, form *view.NoteForm, message string) error {
	title := "Edit Note"
	if draft.IsNew() {
		title = "New Note"
	}
	return ctx.Render("form", view.FormPage{
		Title:   title,
		DraftId: draft.Id,
		IsNew:   draft.IsNew(),
		Form:    form,
		Error:   message,
	}, view.Layout)
}

func (c *pageController) ShowDraft(ctx *fiber.Ctx) error {
	draft, err := c.loadDraft(ctx)
	if err != nil {
		return err
	}
	return c.renderForm(ctx, draft, view.NoteFormFromDraft(draft), "")
}

// DraftAction applies one form button press to the stored draft.
func (c *pageController) DraftAction(ctx *fiber.Ctx) error {
	draft, err := c.loadDraft(ctx)
	if err != nil {
		return err
	}

	form := view.NoteFormFromDraft(draft)
	form.Title = ctx.FormValue("title")
	form.Content = ctx.FormValue("content")
	form.TagInput = ctx.FormValue("tag_input")

	action := ctx.FormValue("action")
	removeTag := ctx.FormValue("remove_tag")
	if removeTag != "" {
		action = actionRemoveTag
	}

	switch action {
	case actionAddTag:
		form.AddTag()
	case actionRemoveTag:
		form.RemoveTag(removeTag)
	case actionSubmit:
		return c.submitDraft(ctx, draft, form)
	default:
		return apperror.Validation("Unknown form action")
	}

	form.ApplyTo(draft)
	c.drafts.Save(draft)
	return ctx.Redirect("/drafts/"+draft.Id, fiber.StatusSeeOther)
}

func (c *pageController) submitDraft(ctx *fiber.Ctx, draft *entity.NoteDraft, form *view.NoteForm) error {
	var saved *dto.NoteResponse
	err := form.Submit(func(v view.NoteFormValues) error {
		var err error
		if draft.IsNew() {
			saved, err = c.noteService.Create(ctx.UserContext(), &dto.CreateNoteRequest{
				Title: v.Title, Content: v.Content, Tags: v.Tags,
			})
		} else {
			saved, err = c.noteService.Update(ctx.UserContext(), &dto.UpdateNoteRequest{
				Id: draft.NoteId, Title: v.Title, Content: v.Content, Tags: v.Tags,
			})
		}
		return err
	})

	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Code == apperror.ErrValidation {
		form.ApplyTo(draft)
		c.drafts.Save(draft)

		ctx.Status(fiber.StatusBadRequest)
		return c.renderForm(ctx, draft, form, appErr.Message)
	}
	if err != nil {
		return err
	}

	c.drafts.Delete(draft.Id)
	return ctx.Redirect("/notes/"+saved.Id.String(), fiber.StatusSeeOther)
}

func (c *pageController) ShowNote(ctx *fiber.Ctx) error {
	id, err := noteID(ctx)
	if err != nil {
		return err
	}

	note, err := c.noteService.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	detail := view.NewNoteDetail(note)
	if ctx.Query("edit") == "1" {
		detail.Edit()
	}
	return ctx.Render("detail", view.DetailPage{Title: note.Title, Detail: detail}, view.Layout)
}

// SaveNote is the detail page's inline save. Failures are logged and the
// page is shown again in read-only mode.
func (c *pageController) SaveNote(ctx *fiber.Ctx) error {
	id, err := noteID(ctx)
	if err != nil {
		return err
	}

	note, err := c.noteService.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	detail := view.NewNoteDetail(note)
	detail.Edit()
	detail.Title = ctx.FormValue("title")
	detail.Content = ctx.FormValue("content")

	err = detail.Save(func(id uuid.UUID, title, content string) error {
		_, err := c.noteService.Update(ctx.UserContext(), &dto.UpdateNoteRequest{
			Id: id, Title: title, Content: content,
		})
		return err
	})
	if err != nil {
		c.logger.Warn("PageController", "Inline save failed", map[string]interface{}{"note_id": id, "error": err})
	}

	return ctx.Redirect("/notes/"+id.String(), fiber.StatusSeeOther)
}

// DeleteNote goes back to the list unless the note still exists after a
// failed delete, in which case its page is shown again.
func (c *pageController) DeleteNote(ctx *fiber.Ctx) error {
	id, err := noteID(ctx)
	if err == nil {
		err = c.noteService.Delete(ctx.UserContext(), id)
	}
	if err != nil {
		c.logger.Warn("PageController", "Delete failed", map[string]interface{}{"note_id": ctx.Params("id"), "error": err})
		if !apperror.Is(err, apperror.ErrNotFound) {
			return ctx.Redirect("/notes/"+id.String(), fiber.StatusSeeOther)
		}
	}

	return ctx.Redirect("/", fiber.StatusSeeOther)
}

package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/exams/dto"
	"vidyalaya_backend/internals/features/school/exams/service"
	helper "vidyalaya_backend/internals/helpers"
	helperAuth "vidyalaya_backend/internals/helpers/auth"
)

type ExamSheetController struct {
	Service *service.ExamSheetService
}

func NewExamSheetController(svc *service.ExamSheetService) *ExamSheetController {
	return &ExamSheetController{Service: svc}
}

// POST /exams/sheets
func (ctrl *ExamSheetController) Save(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SaveExamSheetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	res, err := ctrl.Service.Save(c.UserContext(), schoolID, &req, actorID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "Exam sheet saved", res)
}

// GET /exams/sheets?year=&term=&grade_id=
func (ctrl *ExamSheetController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var f dto.ListExamSheetFilter
	if year, ok := helper.QueryInt(c, "year"); ok {
		f.Year = &year
	}
	if term, ok := helper.QueryInt(c, "term"); ok {
		f.Term = &term
	}
	if v := strings.TrimSpace(c.Query("grade_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid grade_id filter")
		}
		f.GradeID = &id
	}

	res, err := ctrl.Service.List(c.UserContext(), schoolID, f)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "OK", res)
}

// DELETE /exams/sheets/:id
func (ctrl *ExamSheetController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid exam sheet id")
	}
	if err := ctrl.Service.Delete(c.UserContext(), schoolID, id); err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Exam sheet deleted", nil)
}

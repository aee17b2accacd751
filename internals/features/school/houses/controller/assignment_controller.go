package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/houses/dto"
	"vidyalaya_backend/internals/features/school/houses/service"
	helper "vidyalaya_backend/internals/helpers"
	helperAuth "vidyalaya_backend/internals/helpers/auth"
)

type AssignmentController struct {
	Service *service.AssignmentService
}

func NewAssignmentController(svc *service.AssignmentService) *AssignmentController {
	return &AssignmentController{Service: svc}
}

// POST /houses/assignments
func (ctrl *AssignmentController) Assign(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.AssignStudentHouseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	res, err := ctrl.Service.Assign(c.UserContext(), schoolID, &req, actorID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	if res == nil {
		return helper.JsonOK(c, "Student unassigned", nil)
	}
	return helper.JsonOK(c, "Student assigned", res)
}

// POST /houses/assignments/bulk
func (ctrl *AssignmentController) BulkAssign(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.BulkAssignStudentHouseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	res, err := ctrl.Service.BulkAssign(c.UserContext(), schoolID, &req, actorID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "Bulk assignment applied", res)
}

// GET /houses/assignments?year=&house_id=&grade_id=
func (ctrl *AssignmentController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var f dto.ListAssignmentFilter
	if year, ok := helper.QueryInt(c, "year"); ok {
		f.Year = &year
	}
	if v := strings.TrimSpace(c.Query("house_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid house_id filter")
		}
		f.HouseID = &id
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

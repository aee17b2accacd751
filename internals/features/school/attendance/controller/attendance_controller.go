package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/attendance/dto"
	"vidyalaya_backend/internals/features/school/attendance/model"
	"vidyalaya_backend/internals/features/school/attendance/service"
	helper "vidyalaya_backend/internals/helpers"
	helperAuth "vidyalaya_backend/internals/helpers/auth"
)

var allowedStatusFilters = map[string]bool{
	model.AttendanceStatusPresent: true,
	model.AttendanceStatusAbsent:  true,
	model.AttendanceStatusLate:    true,
}

type AttendanceController struct {
	Service *service.AttendanceService
}

func NewAttendanceController(svc *service.AttendanceService) *AttendanceController {
	return &AttendanceController{Service: svc}
}

// POST /attendance
func (ctrl *AttendanceController) Mark(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	res, err := ctrl.Service.Mark(c.UserContext(), schoolID, &req, actorID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "Attendance marked", res)
}

// GET /attendance?student_id=&date=&status=
func (ctrl *AttendanceController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var f dto.ListAttendanceFilter
	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid student_id filter")
		}
		f.StudentID = &id
	}
	if v := strings.TrimSpace(c.Query("date")); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid date filter, want YYYY-MM-DD")
		}
		f.Date = &d
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		if !allowedStatusFilters[v] {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid status filter")
		}
		f.Status = &v
	}

	res, err := ctrl.Service.List(c.UserContext(), schoolID, f)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "OK", res)
}

// DELETE /attendance/:id
func (ctrl *AttendanceController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid attendance id")
	}
	if err := ctrl.Service.Delete(c.UserContext(), schoolID, id); err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Attendance record deleted", nil)
}

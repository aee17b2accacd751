package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/clubs/dto"
	"vidyalaya_backend/internals/features/school/clubs/service"
	helper "vidyalaya_backend/internals/helpers"
	helperAuth "vidyalaya_backend/internals/helpers/auth"
)

type ClubController struct {
	Service *service.ClubService
}

func NewClubController(svc *service.ClubService) *ClubController {
	return &ClubController{Service: svc}
}

// POST /clubs
func (ctrl *ClubController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateClubRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	res, err := ctrl.Service.Create(c.UserContext(), schoolID, &req, actorID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonCreated(c, "Club created", res)
}

// GET /clubs
func (ctrl *ClubController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	res, err := ctrl.Service.List(c.UserContext(), schoolID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "OK", res)
}

// GET /clubs/:id
func (ctrl *ClubController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid club id")
	}
	res, err := ctrl.Service.GetByID(c.UserContext(), schoolID, id)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "OK", res)
}

// PATCH /clubs/:id
func (ctrl *ClubController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid club id")
	}

	var req dto.UpdateClubRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	res, err := ctrl.Service.Update(c.UserContext(), schoolID, id, &req, actorID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Club updated", res)
}

// DELETE /clubs/:id
func (ctrl *ClubController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid club id")
	}
	if err := ctrl.Service.Delete(c.UserContext(), schoolID, id); err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Club deleted", nil)
}

// POST /clubs/:id/members
func (ctrl *ClubController) AssignMember(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	clubID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid club id")
	}

	var req dto.AssignClubMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	res, err := ctrl.Service.AssignMember(c.UserContext(), schoolID, clubID, &req, actorID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "Member assigned", res)
}

// DELETE /clubs/:id/members/:studentId
func (ctrl *ClubController) RemoveMember(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	clubID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid club id")
	}
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	res, err := ctrl.Service.RemoveMember(c.UserContext(), schoolID, clubID, studentID, actorID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "Member removed", res)
}

// POST /clubs/positions
func (ctrl *ClubController) CreatePosition(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateClubPositionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	res, err := ctrl.Service.CreatePosition(c.UserContext(), schoolID, &req, actorID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonCreated(c, "Club position created", res)
}

// GET /clubs/positions
func (ctrl *ClubController) ListPositions(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	res, err := ctrl.Service.ListPositions(c.UserContext(), schoolID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "OK", res)
}

// DELETE /clubs/positions/:id
func (ctrl *ClubController) DeletePosition(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid club position id")
	}
	if err := ctrl.Service.DeletePosition(c.UserContext(), schoolID, id); err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Club position deleted", nil)
}

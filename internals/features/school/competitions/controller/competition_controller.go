package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/competitions/dto"
	"vidyalaya_backend/internals/features/school/competitions/service"
	helper "vidyalaya_backend/internals/helpers"
	helperAuth "vidyalaya_backend/internals/helpers/auth"
)

type CompetitionController struct {
	Service *service.CompetitionService
}

func NewCompetitionController(svc *service.CompetitionService) *CompetitionController {
	return &CompetitionController{Service: svc}
}

// POST /competitions
func (ctrl *CompetitionController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateCompetitionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	res, err := ctrl.Service.Create(c.UserContext(), schoolID, &req, actorID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonCreated(c, "Competition created", res)
}

// GET /competitions
func (ctrl *CompetitionController) List(c *fiber.Ctx) error {
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

// GET /competitions/:id
func (ctrl *CompetitionController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid competition id")
	}
	res, err := ctrl.Service.GetByID(c.UserContext(), schoolID, id)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "OK", res)
}

// PATCH /competitions/:id
func (ctrl *CompetitionController) Update(c *fiber.Ctx) error {
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
		return fiber.NewError(fiber.StatusBadRequest, "Invalid competition id")
	}

	var req dto.UpdateCompetitionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	res, err := ctrl.Service.Update(c.UserContext(), schoolID, id, &req, actorID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Competition updated", res)
}

// DELETE /competitions/:id
func (ctrl *CompetitionController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid competition id")
	}
	if err := ctrl.Service.Delete(c.UserContext(), schoolID, id); err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Competition deleted", nil)
}

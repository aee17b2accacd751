package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/competitions/dto"
	"vidyalaya_backend/internals/features/school/competitions/service"
	helper "vidyalaya_backend/internals/helpers"
	helperAuth "vidyalaya_backend/internals/helpers/auth"
)

type ResultController struct {
	Service *service.ResultService
}

func NewResultController(svc *service.ResultService) *ResultController {
	return &ResultController{Service: svc}
}

// POST /competitions/:id/results
func (ctrl *ResultController) Record(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	competitionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid competition id")
	}

	var req dto.RecordResultsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	res, err := ctrl.Service.Record(c.UserContext(), schoolID, competitionID, &req, actorID)
	if err != nil {
		if errors.Is(err, service.ErrDuplicatePlace) {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "Results recorded", res)
}

// GET /competitions/:id/results?year=
func (ctrl *ResultController) ListByYear(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	competitionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid competition id")
	}
	year, ok := helper.QueryInt(c, "year")
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Query param year is required")
	}

	res, err := ctrl.Service.ListByCompetitionYear(c.UserContext(), schoolID, competitionID, year)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "OK", res)
}

// GET /competitions/house-points?year=
func (ctrl *ResultController) HousePoints(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	year, ok := helper.QueryInt(c, "year")
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Query param year is required")
	}

	res, err := ctrl.Service.HousePoints(c.UserContext(), schoolID, year)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "OK", res)
}

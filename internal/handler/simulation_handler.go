package handler

import (
	"context"
	"net/http"

	"margin-simulator/internal/service"
	"margin-simulator/pkg/response"

	"github.com/gin-gonic/gin"
)

type SimulationHandler struct {
	simulationService service.SimulationService
}

func NewSimulationHandler(simulationService service.SimulationService) *SimulationHandler {
	return &SimulationHandler{simulationService: simulationService}
}

func (h *SimulationHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/simulations")
	{
		group.GET("/defaults", h.GetDefaults)
		group.POST("", h.Simulate)
	}
}

// GetDefaults returns the values prefilled in the simulation form
// @Summary      Get form defaults
// @Description  Returns prefill values; rates are given as percentages
// @Tags         simulations
// @Produce      json
// @Success      200  {object}  response.Response{data=config.FormDefaults}
// @Router       /api/simulations/defaults [get]
func (h *SimulationHandler) GetDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.simulationService.Defaults()))
}

// Simulate runs one pricing scenario
// @Summary      Run a simulation
// @Description  Computes VAT, margin, taxes and net profit from a sale price or a target margin
// @Tags         simulations
// @Accept       json
// @Produce      json
// @Param        request  body      service.SimulateRequest  true  "Scenario and form values"
// @Success      200      {object}  response.Response{data=service.SimulationResponse}
// @Failure      400      {object}  response.Response  "Malformed payload"
// @Failure      422      {object}  response.Response  "Invalid field, rate, price or margin"
// @Router       /api/simulations [post]
func (h *SimulationHandler) Simulate(c *gin.Context) {
	var req service.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	status, resp := Reply(c.Request.Context(), h.simulationService, req)
	c.JSON(status, resp)
}

// Reply runs a simulation and wraps the outcome in the response envelope.
// Validation failures become 422 with their error code.
func Reply(ctx context.Context, svc service.SimulationService, req service.SimulateRequest) (int, response.Response) {
	res, err := svc.Simulate(ctx, req)
	if err != nil {
		code := service.ErrorCode(err)
		if code == "" {
			return http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error())
		}
		return http.StatusUnprocessableEntity, response.ErrorWithCode(http.StatusUnprocessableEntity, code, err.Error())
	}
	return http.StatusOK, response.Success(http.StatusOK, res)
}

package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"ppmdesk.io/ppmdesk/internal/api/generated"
	"ppmdesk.io/ppmdesk/internal/service"
	"ppmdesk.io/ppmdesk/internal/usecase"
)

// ListServicePlanRows handles GET /service-plans/rows, the PPM data grid.
func (s *Server) ListServicePlanRows(c *gin.Context) {
	rows, err := latest(c, s, "ppm-rows", func(ctx context.Context) ([]service.ServicePlanRow, error) {
		return s.plans.Rows(ctx)
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// CreateServicePlan handles POST /service-plans.
func (s *Server) CreateServicePlan(c *gin.Context) {
	ctx := c.Request.Context()
	var req usecase.CreateServicePlanInput
	if !bindJSON(c, &req) {
		return
	}
	req.CreatedBy = actorFromCtx(ctx)

	out, err := s.createPlanUC.Execute(ctx, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// GetServicePlan handles GET /service-plans/{ppm_id}.
func (s *Server) GetServicePlan(c *gin.Context, ppmId generated.PpmID) {
	sp, err := s.plans.Detail(c.Request.Context(), ppmId)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

// UpdateServicePlan handles PATCH /service-plans/{ppm_id}.
func (s *Server) UpdateServicePlan(c *gin.Context, ppmId generated.PpmID) {
	var req service.ServicePlanPatch
	if !bindJSON(c, &req) {
		return
	}
	if err := s.plans.Update(c.Request.Context(), ppmId, req); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListServicePlanAssets handles GET /service-plans/{ppm_id}/assets.
func (s *Server) ListServicePlanAssets(c *gin.Context, ppmId generated.PpmID) {
	links, err := s.plans.LinkedAssets(c.Request.Context(), ppmId)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

// ListCandidateAssets handles
// GET /service-plans/{ppm_id}/candidate-assets?disc_id=&bld_id=.
func (s *Server) ListCandidateAssets(c *gin.Context, ppmId generated.PpmID, params generated.ListCandidateAssetsParams) {
	assets, err := s.plans.CandidateAssets(c.Request.Context(), ppmId, valueOf(params.DiscId), valueOf(params.BldId))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, assets)
}

// AddServicePlanAssets handles POST /service-plans/{ppm_id}/assets.
func (s *Server) AddServicePlanAssets(c *gin.Context, ppmId generated.PpmID) {
	var req generated.AddServicePlanAssetsJSONRequestBody
	if !bindJSON(c, &req) {
		return
	}
	links, err := s.plans.AddAssets(c.Request.Context(), ppmId, req.AsIds)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, links)
}

// RemoveServicePlanAsset handles DELETE /service-plans/{ppm_id}/assets/{as_id}.
func (s *Server) RemoveServicePlanAsset(c *gin.Context, ppmId generated.PpmID, asId generated.AsID) {
	if err := s.plans.RemoveAsset(c.Request.Context(), ppmId, asId); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListInstructions handles GET /service-plans/{ppm_id}/instructions.
func (s *Server) ListInstructions(c *gin.Context, ppmId generated.PpmID) {
	insts, err := s.plans.Instructions(c.Request.Context(), ppmId)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, insts)
}

// SaveInstructions handles PUT /service-plans/{ppm_id}/instructions.
// Items with an id are updated, the rest inserted.
func (s *Server) SaveInstructions(c *gin.Context, ppmId generated.PpmID) {
	var req usecase.SaveInstructionsInput
	if !bindJSON(c, &req) {
		return
	}
	req.PlanID = ppmId

	out, err := s.saveInstrUC.Execute(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DeleteInstruction handles DELETE /instructions/{inst_id}.
func (s *Server) DeleteInstruction(c *gin.Context, instId int) {
	if err := s.plans.DeleteInstruction(c.Request.Context(), instId); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateBulkRevision handles POST /bulk-revisions.
func (s *Server) CreateBulkRevision(c *gin.Context) {
	ctx := c.Request.Context()
	var req usecase.BulkRevisionInput
	if !bindJSON(c, &req) {
		return
	}
	if req.RequestedBy == "" {
		req.RequestedBy = actorFromCtx(ctx)
	}

	out, err := s.bulkUC.Execute(ctx, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

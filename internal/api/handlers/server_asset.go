package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"ppmdesk.io/ppmdesk/internal/api/generated"
	"ppmdesk.io/ppmdesk/internal/service"
	"ppmdesk.io/ppmdesk/internal/usecase"
)

// ListAssets handles GET /assets?archived=. The archived flag is an exact
// match: archived=true returns only archived assets.
func (s *Server) ListAssets(c *gin.Context, params generated.ListAssetsParams) {
	archived := valueOf(params.Archived)
	rows, err := latest(c, s, "assets", func(ctx context.Context) ([]service.AssetRow, error) {
		return s.assets.Overview(ctx, archived)
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// CreateAsset handles POST /assets.
func (s *Server) CreateAsset(c *gin.Context) {
	ctx := c.Request.Context()
	var req service.CreateAssetInput
	if !bindJSON(c, &req) {
		return
	}
	id, err := s.assets.Create(ctx, req, actorFromCtx(ctx))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, generated.CreatedId{Id: id})
}

// GetAsset handles GET /assets/{as_id}.
func (s *Server) GetAsset(c *gin.Context, asId generated.AsID) {
	detail, err := s.assets.Detail(c.Request.Context(), asId)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UpdateAsset handles PATCH /assets/{as_id}.
func (s *Server) UpdateAsset(c *gin.Context, asId generated.AsID) {
	var req service.AssetPatch
	if !bindJSON(c, &req) {
		return
	}
	if err := s.assets.Update(c.Request.Context(), asId, req); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetAssetArchived handles PUT /assets/{as_id}/archived.
func (s *Server) SetAssetArchived(c *gin.Context, asId generated.AsID) {
	ctx := c.Request.Context()
	var req generated.SetAssetArchivedJSONRequestBody
	if !bindJSON(c, &req) {
		return
	}
	if err := s.assets.SetArchived(ctx, asId, req.AsArchived, actorFromCtx(ctx)); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// VerifyAsset handles POST /assets/{as_id}/verify.
func (s *Server) VerifyAsset(c *gin.Context, asId generated.AsID) {
	ctx := c.Request.Context()
	if err := s.assets.Verify(ctx, asId, actorFromCtx(ctx)); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetAssetDisciplines handles GET /assets/{as_id}/disciplines.
func (s *Server) GetAssetDisciplines(c *gin.Context, asId generated.AsID) {
	out, err := s.reassignUC.Current(c.Request.Context(), asId)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, assignmentOf(out))
}

// ReassignAssetDisciplines handles PUT /assets/{as_id}/disciplines. A PPM
// discipline change without "confirm": true answers 409
// CONFIRMATION_REQUIRED and changes nothing.
func (s *Server) ReassignAssetDisciplines(c *gin.Context, asId generated.AsID) {
	ctx := c.Request.Context()
	var req usecase.ReassignDisciplineInput
	if !bindJSON(c, &req) {
		return
	}
	req.AssetID = asId
	req.RequestedBy = actorFromCtx(ctx)

	out, err := s.reassignUC.Execute(ctx, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, assignmentOf(out))
}

func assignmentOf(out *usecase.ReassignDisciplineOutput) generated.DisciplineAssignment {
	return generated.DisciplineAssignment{
		AsId:         out.AssetID,
		State:        generated.DisciplineAssignmentState(out.State),
		FkDiscId:     out.PPMDisciplineID,
		FkRDiscId:    out.ReactiveDisciplineID,
		LinksRemoved: out.LinksRemoved,
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ppmdesk.io/ppmdesk/internal/api/generated"
)

// ListPPMDisciplines handles GET /disciplines/ppm.
func (s *Server) ListPPMDisciplines(c *gin.Context) {
	discs, err := s.reference.PPMDisciplines(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, discs)
}

// ListReactiveDisciplines handles GET /disciplines/reactive.
func (s *Server) ListReactiveDisciplines(c *gin.Context) {
	discs, err := s.reference.ReactiveDisciplines(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, discs)
}

// ListSuppliers handles GET /suppliers.
func (s *Server) ListSuppliers(c *gin.Context) {
	sups, err := s.reference.Suppliers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sups)
}

// ListAssetGroups handles GET /asset-groups.
func (s *Server) ListAssetGroups(c *gin.Context) {
	groups, err := s.reference.AssetGroups(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// ListAssetTypes handles GET /asset-groups/{group_id}/types.
func (s *Server) ListAssetTypes(c *gin.Context, groupId generated.GroupID) {
	types, err := s.reference.AssetTypes(c.Request.Context(), groupId)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// ListAssetCategories handles GET /asset-types/{type_id}/categories.
func (s *Server) ListAssetCategories(c *gin.Context, typeId generated.TypeID) {
	cats, err := s.reference.AssetCategories(c.Request.Context(), typeId)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

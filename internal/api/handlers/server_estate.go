package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ppmdesk.io/ppmdesk/internal/api/generated"
	"ppmdesk.io/ppmdesk/internal/service"
)

// ListOrganizations handles GET /organizations.
func (s *Server) ListOrganizations(c *gin.Context) {
	orgs, err := s.estate.Organizations(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orgs)
}

// CreateOrganization handles POST /organizations.
func (s *Server) CreateOrganization(c *gin.Context) {
	var req service.OrganizationInput
	if !bindJSON(c, &req) {
		return
	}
	org, err := s.estate.CreateOrganization(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, org)
}

// DeleteOrganization handles DELETE /organizations/{org_id}.
func (s *Server) DeleteOrganization(c *gin.Context, orgId generated.OrgID) {
	if err := s.estate.DeleteOrganization(c.Request.Context(), orgId); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListOrganizationBuildings handles GET /organizations/{org_id}/buildings.
func (s *Server) ListOrganizationBuildings(c *gin.Context, orgId generated.OrgID) {
	blds, err := s.estate.BuildingsByOrg(c.Request.Context(), orgId)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, blds)
}

// CreateBuilding handles POST /organizations/{org_id}/buildings.
func (s *Server) CreateBuilding(c *gin.Context, orgId generated.OrgID) {
	var req service.BuildingInput
	if !bindJSON(c, &req) {
		return
	}
	bld, err := s.estate.CreateBuilding(c.Request.Context(), orgId, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, bld)
}

// ListBuildings handles GET /buildings.
func (s *Server) ListBuildings(c *gin.Context) {
	blds, err := s.estate.Buildings(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, blds)
}

// DeleteBuilding handles DELETE /buildings/{bld_id}.
func (s *Server) DeleteBuilding(c *gin.Context, bldId generated.BldID) {
	if err := s.estate.DeleteBuilding(c.Request.Context(), bldId); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListBuildingLocations handles GET /buildings/{bld_id}/locations.
func (s *Server) ListBuildingLocations(c *gin.Context, bldId generated.BldID) {
	locs, err := s.estate.LocationsByBuilding(c.Request.Context(), bldId)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, locs)
}

// CreateLocation handles POST /buildings/{bld_id}/locations.
func (s *Server) CreateLocation(c *gin.Context, bldId generated.BldID) {
	var req service.LocationInput
	if !bindJSON(c, &req) {
		return
	}
	loc, err := s.estate.CreateLocation(c.Request.Context(), bldId, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, loc)
}

// ListLocations handles GET /locations.
func (s *Server) ListLocations(c *gin.Context) {
	locs, err := s.estate.Locations(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, locs)
}

// DeleteLocation handles DELETE /locations/{loc_id}.
func (s *Server) DeleteLocation(c *gin.Context, locId generated.LocID) {
	if err := s.estate.DeleteLocation(c.Request.Context(), locId); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

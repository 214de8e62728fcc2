package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"ppmdesk.io/ppmdesk/internal/domain"
	"ppmdesk.io/ppmdesk/internal/pkg/logger"
	"ppmdesk.io/ppmdesk/internal/provider"
)

// EstateService manages the organization, building and location hierarchy.
type EstateService struct {
	estate provider.EstateProvider
}

// NewEstateService creates a new EstateService.
func NewEstateService(estate provider.EstateProvider) *EstateService {
	return &EstateService{estate: estate}
}

// OrganizationInput is the new-organization form.
type OrganizationInput struct {
	Name        string `json:"org_name" validate:"required"`
	Type        string `json:"org_type"`
	Description string `json:"org_description"`
	Address     string `json:"org_address"`
	Contact     string `json:"org_contact"`
	Email       string `json:"org_email" validate:"omitempty,email"`
	Phone       string `json:"org_phone"`
}

// BuildingInput is the new-building form. The organization comes from the
// route.
type BuildingInput struct {
	Name        string      `json:"bld_name" validate:"required"`
	Address     string      `json:"bld_address"`
	Contact     string      `json:"bld_contact"`
	Email       string      `json:"bld_email" validate:"omitempty,email"`
	Phone       string      `json:"bld_phone"`
	Floors      int         `json:"bld_floors" validate:"gte=0"`
	OpeningDate domain.Date `json:"bld_opening_date"`
}

// LocationInput is the new-location form. The building comes from the route.
type LocationInput struct {
	Name        string `json:"loc_name" validate:"required"`
	Description string `json:"loc_description"`
}

func (s *EstateService) Organizations(ctx context.Context) ([]domain.Organization, error) {
	orgs, err := s.estate.ListOrganizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	return orNonNil(orgs), nil
}

func (s *EstateService) CreateOrganization(ctx context.Context, in OrganizationInput) (domain.Organization, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := Validate(in); err != nil {
		return domain.Organization{}, err
	}
	org, err := s.estate.CreateOrganization(ctx, domain.Organization{
		Name:        in.Name,
		Type:        in.Type,
		Description: in.Description,
		Address:     in.Address,
		Contact:     in.Contact,
		Email:       in.Email,
		Phone:       in.Phone,
	})
	if err != nil {
		return domain.Organization{}, fmt.Errorf("create organization: %w", err)
	}
	logger.FromContext(ctx).Info("Organization created", zap.Int("pk_org_id", org.ID), zap.String("org_name", org.Name))
	return org, nil
}

// DeleteOrganization hard-deletes by pk. Hasura rejects the delete while
// buildings still reference the organization.
func (s *EstateService) DeleteOrganization(ctx context.Context, orgID int) error {
	if err := s.estate.DeleteOrganization(ctx, orgID); err != nil {
		return fmt.Errorf("delete organization: %w", err)
	}
	logger.FromContext(ctx).Info("Organization deleted", zap.Int("pk_org_id", orgID))
	return nil
}

func (s *EstateService) BuildingsByOrg(ctx context.Context, orgID int) ([]domain.Building, error) {
	blds, err := s.estate.ListBuildingsByOrg(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list buildings: %w", err)
	}
	return orNonNil(blds), nil
}

func (s *EstateService) Buildings(ctx context.Context) ([]domain.Building, error) {
	blds, err := s.estate.ListBuildings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list buildings: %w", err)
	}
	return orNonNil(blds), nil
}

func (s *EstateService) CreateBuilding(ctx context.Context, orgID int, in BuildingInput) (domain.Building, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := Validate(in); err != nil {
		return domain.Building{}, err
	}
	bld, err := s.estate.CreateBuilding(ctx, domain.Building{
		Name:        in.Name,
		Address:     in.Address,
		Contact:     in.Contact,
		Email:       in.Email,
		Phone:       in.Phone,
		Floors:      in.Floors,
		OpeningDate: in.OpeningDate,
		OrgID:       orgID,
	})
	if err != nil {
		return domain.Building{}, fmt.Errorf("create building: %w", err)
	}
	logger.FromContext(ctx).Info("Building created",
		zap.Int("pk_bld_id", bld.ID),
		zap.Int("fk_org_id", orgID),
	)
	return bld, nil
}

func (s *EstateService) DeleteBuilding(ctx context.Context, bldID int) error {
	if err := s.estate.DeleteBuilding(ctx, bldID); err != nil {
		return fmt.Errorf("delete building: %w", err)
	}
	logger.FromContext(ctx).Info("Building deleted", zap.Int("pk_bld_id", bldID))
	return nil
}

func (s *EstateService) LocationsByBuilding(ctx context.Context, bldID int) ([]domain.Location, error) {
	locs, err := s.estate.ListLocationsByBuilding(ctx, bldID)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return orNonNil(locs), nil
}

func (s *EstateService) Locations(ctx context.Context) ([]domain.Location, error) {
	locs, err := s.estate.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return orNonNil(locs), nil
}

func (s *EstateService) CreateLocation(ctx context.Context, bldID int, in LocationInput) (domain.Location, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := Validate(in); err != nil {
		return domain.Location{}, err
	}
	loc, err := s.estate.CreateLocation(ctx, domain.Location{
		Name:        in.Name,
		Description: in.Description,
		BuildingID:  bldID,
	})
	if err != nil {
		return domain.Location{}, fmt.Errorf("create location: %w", err)
	}
	logger.FromContext(ctx).Info("Location created",
		zap.Int("pk_loc_id", loc.ID),
		zap.Int("fk_bld_id", bldID),
	)
	return loc, nil
}

func (s *EstateService) DeleteLocation(ctx context.Context, locID int) error {
	if err := s.estate.DeleteLocation(ctx, locID); err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	logger.FromContext(ctx).Info("Location deleted", zap.Int("pk_loc_id", locID))
	return nil
}

// orNonNil keeps empty lists rendering as [] rather than null.
func orNonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

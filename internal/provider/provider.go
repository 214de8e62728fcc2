// Package provider is the typed data-access layer over the GraphQL API.
//
// Anti-Corruption Layer: callers see domain types and application errors,
// never Hasura response envelopes.
package provider

import (
	"context"

	"ppmdesk.io/ppmdesk/internal/domain"
)

// Columns is a column-name keyed object used for inserts and _set patches.
type Columns map[string]any

// BuildingPlanUpdate patches one building service plan row.
type BuildingPlanUpdate struct {
	Key int
	Set Columns
}

// CalendarData is everything the calendar screen loads in one query.
type CalendarData struct {
	Plans       []domain.ServicePlan `json:"ppm_service_plan"`
	Disciplines []domain.Discipline  `json:"ppm_discipline"`
	Buildings   []domain.Building    `json:"buildings"`
}

// EstateProvider manages organizations, buildings and locations.
type EstateProvider interface {
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
	CreateOrganization(ctx context.Context, org domain.Organization) (domain.Organization, error)
	DeleteOrganization(ctx context.Context, orgID int) error

	ListBuildingsByOrg(ctx context.Context, orgID int) ([]domain.Building, error)
	ListBuildings(ctx context.Context) ([]domain.Building, error)
	CreateBuilding(ctx context.Context, bld domain.Building) (domain.Building, error)
	DeleteBuilding(ctx context.Context, bldID int) error

	ListLocationsByBuilding(ctx context.Context, bldID int) ([]domain.Location, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
	CreateLocation(ctx context.Context, loc domain.Location) (domain.Location, error)
	DeleteLocation(ctx context.Context, locID int) error

	LocationContext(ctx context.Context, locID int) (domain.LocationContext, error)
}

// ReferenceProvider serves pick lists.
type ReferenceProvider interface {
	PPMDisciplines(ctx context.Context) ([]domain.Discipline, error)
	ReactiveDisciplines(ctx context.Context) ([]domain.Discipline, error)
	Suppliers(ctx context.Context) ([]domain.Supplier, error)
	AssetGroups(ctx context.Context) ([]domain.AssetGroup, error)
	AssetTypes(ctx context.Context, groupID int) ([]domain.AssetType, error)
	AssetCategories(ctx context.Context, typeID int) ([]domain.AssetCategory, error)
}

// AssetProvider reads and mutates assets and their discipline assignment.
type AssetProvider interface {
	AssetOverview(ctx context.Context) ([]domain.AssetOverview, error)
	AssetDetails(ctx context.Context) ([]domain.Asset, error)
	CategoryHierarchy(ctx context.Context) ([]domain.AssetCategory, error)
	GetAsset(ctx context.Context, asID int) (domain.Asset, error)
	CreateAsset(ctx context.Context, object Columns) (int, error)
	UpdateAsset(ctx context.Context, asID int, set Columns) error
	SetAssetArchived(ctx context.Context, asID int, archived bool, by string, date domain.Date) error
	VerifyAsset(ctx context.Context, asID int, by string, date domain.Date) error

	AssetDisciplines(ctx context.Context, asID int) (domain.AssetDisciplines, error)
	ServicePlansByAsset(ctx context.Context, asID int) ([]domain.AssetServicePlan, error)
	// DeleteAssetServicePlanLinks removes every plan link of the asset and
	// returns the number removed.
	DeleteAssetServicePlanLinks(ctx context.Context, asID int) (int, error)
	UpdateAssetPPMDiscipline(ctx context.Context, asID int, discID *int) error
	UpdateAssetReactiveDiscipline(ctx context.Context, asID int, discID *int) error
}

// ServicePlanProvider manages service plans, their building and asset
// links, instructions, the calendar and bulk revisions.
type ServicePlanProvider interface {
	ServicePlanRows(ctx context.Context) ([]domain.ServicePlan, error)
	GetServicePlan(ctx context.Context, ppmID int) (domain.ServicePlan, error)
	CreateServicePlan(ctx context.Context, object Columns) (int, error)
	UpdateServicePlan(ctx context.Context, ppmID int, set Columns) error
	LinkServicePlanToBuilding(ctx context.Context, object Columns) (int, error)

	CandidateAssets(ctx context.Context, discID, bldID int) ([]domain.AssetOverview, error)
	LinkedAssets(ctx context.Context, ppmID int) ([]domain.AssetServicePlan, error)
	AddAssetToServicePlan(ctx context.Context, asID, ppmID int) (domain.AssetServicePlan, error)
	RemoveAssetFromServicePlan(ctx context.Context, asID, ppmID int) (int, error)

	Instructions(ctx context.Context, ppmID int) ([]domain.Instruction, error)
	InsertInstruction(ctx context.Context, ppmID int, detail, pass string) (int, error)
	UpdateInstruction(ctx context.Context, inst domain.Instruction) error
	SoftDeleteInstruction(ctx context.Context, instID int) error

	CalendarPlans(ctx context.Context) (CalendarData, error)
	RescheduleBuildingServicePlan(ctx context.Context, bspKey int, date domain.Date) error

	BulkUpdateBuildingServicePlans(ctx context.Context, updates []BuildingPlanUpdate) (int, error)
	BulkInsertBulkChanges(ctx context.Context, changes []domain.BulkChange) (int, error)
	// BulkReviseAtomic sends updates and audit entries in one mutation
	// document, which Hasura runs as one transaction.
	BulkReviseAtomic(ctx context.Context, updates []BuildingPlanUpdate, changes []domain.BulkChange) (updated, inserted int, err error)
}

// Provider is the full data-access surface.
type Provider interface {
	EstateProvider
	ReferenceProvider
	AssetProvider
	ServicePlanProvider
}

package provider

import "ppmdesk.io/ppmdesk/internal/domain"

// Dataset is a flat snapshot of the estate used to seed MockProvider.
// Building plans nested under a service plan are flattened on seed.
type Dataset struct {
	Organizations       []domain.Organization        `json:"organizations"`
	Buildings           []domain.Building            `json:"buildings"`
	Locations           []domain.Location            `json:"locations"`
	AssetGroups         []domain.AssetGroup          `json:"asset_groups"`
	AssetTypes          []domain.AssetType           `json:"asset_types"`
	AssetCategories     []domain.AssetCategory       `json:"asset_categories"`
	PPMDisciplines      []domain.Discipline          `json:"ppm_disciplines"`
	ReactiveDisciplines []domain.Discipline          `json:"reactive_disciplines"`
	Suppliers           []domain.Supplier            `json:"suppliers"`
	Assets              []domain.Asset               `json:"assets"`
	ServicePlans        []domain.ServicePlan         `json:"service_plans"`
	BuildingPlans       []domain.BuildingServicePlan `json:"building_plans"`
	AssetPlans          []domain.AssetServicePlan    `json:"asset_plans"`
	Instructions        []domain.Instruction         `json:"instructions"`
}

package hasura

// Operation names of the embedded documents.

// Estate.
const (
	OpGetOrganizations       = "GetOrganizations"
	OpAddOrganization        = "AddOrganization"
	OpDeleteOrganization     = "DeleteOrganization"
	OpGetBuildingsByOrg      = "GetBuildingsByOrg"
	OpGetBuildings           = "GetBuildings"
	OpAddBuilding            = "AddBuilding"
	OpDeleteBuilding         = "DeleteBuilding"
	OpGetLocationsByBuilding = "GetLocationsByBuilding"
	OpGetLocations           = "GetLocations"
	OpAddLocation            = "AddLocation"
	OpDeleteLocation         = "DeleteLocation"
	OpGetLocationContext     = "GetLocationContext"
)

// Reference data.
const (
	OpGetPPMDisciplines      = "GetPPMDisciplines"
	OpGetReactiveDisciplines = "GetReactiveDisciplines"
	OpGetSuppliers           = "GetSuppliers"
	OpGetAssetGroups         = "GetAssetGroups"
	OpGetTypesByGroup        = "GetTypesByGroup"
	OpGetCategoriesByType    = "GetCategoriesByType"
)

// Assets.
const (
	OpGetAssetOverview              = "GetAssetOverview"
	OpGetAssetDetails               = "GetAssetDetails"
	OpGetCategoryHierarchy          = "GetCategoryHierarchy"
	OpGetAssetByPK                  = "GetAssetByPK"
	OpCreateAsset                   = "CreateAsset"
	OpUpdateAsset                   = "UpdateAsset"
	OpSetAssetArchived              = "SetAssetArchived"
	OpVerifyAsset                   = "VerifyAsset"
	OpGetAssetDisciplines           = "GetAssetDisciplines"
	OpGetServicePlansByAsset        = "GetServicePlansByAsset"
	OpDeleteAssetServicePlanLinks   = "DeleteAssetServicePlanLinks"
	OpUpdateAssetPPMDiscipline      = "UpdateAssetPPMDiscipline"
	OpUpdateAssetReactiveDiscipline = "UpdateAssetReactiveDiscipline"
)

// Service plans.
const (
	OpGetServicePlanRows         = "GetServicePlanRows"
	OpGetServicePlanByPK         = "GetServicePlanByPK"
	OpCreateServicePlan          = "CreateServicePlan"
	OpUpdateServicePlan          = "UpdateServicePlan"
	OpLinkServicePlanToBuilding  = "LinkServicePlanToBuilding"
	OpGetCandidateAssets         = "GetCandidateAssets"
	OpGetLinkedAssets            = "GetLinkedAssets"
	OpAddAssetToServicePlan      = "AddAssetToServicePlan"
	OpRemoveAssetFromServicePlan = "RemoveAssetFromServicePlan"
	OpGetInstructions            = "GetInstructions"
	OpInsertInstruction          = "InsertInstruction"
	OpUpdateInstruction          = "UpdateInstruction"
	OpSoftDeleteInstruction      = "SoftDeleteInstruction"
)

// Calendar.
const (
	OpGetCalendarPlans              = "GetCalendarPlans"
	OpRescheduleBuildingServicePlan = "RescheduleBuildingServicePlan"
)

// Bulk revision.
const (
	OpBulkUpdateBuildingServicePlans = "BulkUpdateBuildingServicePlans"
	OpBulkInsertBulkChanges          = "BulkInsertBulkChanges"
	OpBulkReviseAtomic               = "BulkReviseAtomic"
)

// Health.
const (
	OpHealthCheck = "HealthCheck"
)

// KnownOperations lists every operation the application issues.
// NewClient refuses a catalog that lacks any of them.
var KnownOperations = []string{
	OpGetOrganizations,
	OpAddOrganization,
	OpDeleteOrganization,
	OpGetBuildingsByOrg,
	OpGetBuildings,
	OpAddBuilding,
	OpDeleteBuilding,
	OpGetLocationsByBuilding,
	OpGetLocations,
	OpAddLocation,
	OpDeleteLocation,
	OpGetLocationContext,
	OpGetPPMDisciplines,
	OpGetReactiveDisciplines,
	OpGetSuppliers,
	OpGetAssetGroups,
	OpGetTypesByGroup,
	OpGetCategoriesByType,
	OpGetAssetOverview,
	OpGetAssetDetails,
	OpGetCategoryHierarchy,
	OpGetAssetByPK,
	OpCreateAsset,
	OpUpdateAsset,
	OpSetAssetArchived,
	OpVerifyAsset,
	OpGetAssetDisciplines,
	OpGetServicePlansByAsset,
	OpDeleteAssetServicePlanLinks,
	OpUpdateAssetPPMDiscipline,
	OpUpdateAssetReactiveDiscipline,
	OpGetServicePlanRows,
	OpGetServicePlanByPK,
	OpCreateServicePlan,
	OpUpdateServicePlan,
	OpLinkServicePlanToBuilding,
	OpGetCandidateAssets,
	OpGetLinkedAssets,
	OpAddAssetToServicePlan,
	OpRemoveAssetFromServicePlan,
	OpGetInstructions,
	OpInsertInstruction,
	OpUpdateInstruction,
	OpSoftDeleteInstruction,
	OpGetCalendarPlans,
	OpRescheduleBuildingServicePlan,
	OpBulkUpdateBuildingServicePlans,
	OpBulkInsertBulkChanges,
	OpBulkReviseAtomic,
	OpHealthCheck,
}

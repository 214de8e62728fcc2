package provider

import (
	"context"
	"net/http"

	"ppmdesk.io/ppmdesk/internal/domain"
	"ppmdesk.io/ppmdesk/internal/hasura"
	apperrors "ppmdesk.io/ppmdesk/internal/pkg/errors"
)

// HasuraProvider implements Provider with one static operation per method.
type HasuraProvider struct {
	exec hasura.Executor
}

var _ Provider = (*HasuraProvider)(nil)

// NewHasuraProvider creates a provider over exec.
func NewHasuraProvider(exec hasura.Executor) *HasuraProvider {
	return &HasuraProvider{exec: exec}
}

func (p *HasuraProvider) run(ctx context.Context, op string, vars hasura.Vars, out any) error {
	if err := p.exec.Execute(ctx, op, vars, out); err != nil {
		return hasura.AsAppError(err)
	}
	return nil
}

type affected struct {
	AffectedRows int `json:"affected_rows"`
}

func notFound(code, entity string, id int) error {
	return apperrors.New(code, entity+" not found", http.StatusNotFound).
		WithParams(map[string]interface{}{"id": id})
}

// --- Estate ---

func (p *HasuraProvider) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	var out struct {
		Organizations []domain.Organization `json:"organizations"`
	}
	if err := p.run(ctx, hasura.OpGetOrganizations, nil, &out); err != nil {
		return nil, err
	}
	return out.Organizations, nil
}

func (p *HasuraProvider) CreateOrganization(ctx context.Context, org domain.Organization) (domain.Organization, error) {
	var out struct {
		Insert *domain.Organization `json:"insert_organizations_one"`
	}
	if err := p.run(ctx, hasura.OpAddOrganization, hasura.Vars{"object": organizationColumns(org)}, &out); err != nil {
		return domain.Organization{}, err
	}
	if out.Insert == nil {
		return domain.Organization{}, apperrors.Unprocessable(apperrors.CodeUpstreamRejected, "organization was not created")
	}
	return *out.Insert, nil
}

func (p *HasuraProvider) DeleteOrganization(ctx context.Context, orgID int) error {
	var out struct {
		Deleted *struct{} `json:"delete_organizations_by_pk"`
	}
	if err := p.run(ctx, hasura.OpDeleteOrganization, hasura.Vars{"org_id": orgID}, &out); err != nil {
		return err
	}
	if out.Deleted == nil {
		return notFound(apperrors.CodeOrganizationNotFound, "organization", orgID)
	}
	return nil
}

func (p *HasuraProvider) ListBuildingsByOrg(ctx context.Context, orgID int) ([]domain.Building, error) {
	var out struct {
		Buildings []domain.Building `json:"buildings"`
	}
	if err := p.run(ctx, hasura.OpGetBuildingsByOrg, hasura.Vars{"org_id": orgID}, &out); err != nil {
		return nil, err
	}
	return out.Buildings, nil
}

func (p *HasuraProvider) ListBuildings(ctx context.Context) ([]domain.Building, error) {
	var out struct {
		Buildings []domain.Building `json:"buildings"`
	}
	if err := p.run(ctx, hasura.OpGetBuildings, nil, &out); err != nil {
		return nil, err
	}
	return out.Buildings, nil
}

func (p *HasuraProvider) CreateBuilding(ctx context.Context, bld domain.Building) (domain.Building, error) {
	var out struct {
		Insert *domain.Building `json:"insert_buildings_one"`
	}
	if err := p.run(ctx, hasura.OpAddBuilding, hasura.Vars{"object": buildingColumns(bld)}, &out); err != nil {
		return domain.Building{}, err
	}
	if out.Insert == nil {
		return domain.Building{}, apperrors.Unprocessable(apperrors.CodeUpstreamRejected, "building was not created")
	}
	return *out.Insert, nil
}

func (p *HasuraProvider) DeleteBuilding(ctx context.Context, bldID int) error {
	var out struct {
		Deleted *struct{} `json:"delete_buildings_by_pk"`
	}
	if err := p.run(ctx, hasura.OpDeleteBuilding, hasura.Vars{"bld_id": bldID}, &out); err != nil {
		return err
	}
	if out.Deleted == nil {
		return notFound(apperrors.CodeBuildingNotFound, "building", bldID)
	}
	return nil
}

func (p *HasuraProvider) ListLocationsByBuilding(ctx context.Context, bldID int) ([]domain.Location, error) {
	var out struct {
		Locations []domain.Location `json:"locations"`
	}
	if err := p.run(ctx, hasura.OpGetLocationsByBuilding, hasura.Vars{"bld_id": bldID}, &out); err != nil {
		return nil, err
	}
	return out.Locations, nil
}

func (p *HasuraProvider) ListLocations(ctx context.Context) ([]domain.Location, error) {
	var out struct {
		Locations []domain.Location `json:"locations"`
	}
	if err := p.run(ctx, hasura.OpGetLocations, nil, &out); err != nil {
		return nil, err
	}
	return out.Locations, nil
}

func (p *HasuraProvider) CreateLocation(ctx context.Context, loc domain.Location) (domain.Location, error) {
	var out struct {
		Insert *domain.Location `json:"insert_locations_one"`
	}
	if err := p.run(ctx, hasura.OpAddLocation, hasura.Vars{"object": locationColumns(loc)}, &out); err != nil {
		return domain.Location{}, err
	}
	if out.Insert == nil {
		return domain.Location{}, apperrors.Unprocessable(apperrors.CodeUpstreamRejected, "location was not created")
	}
	return *out.Insert, nil
}

func (p *HasuraProvider) DeleteLocation(ctx context.Context, locID int) error {
	var out struct {
		Deleted *struct{} `json:"delete_locations_by_pk"`
	}
	if err := p.run(ctx, hasura.OpDeleteLocation, hasura.Vars{"loc_id": locID}, &out); err != nil {
		return err
	}
	if out.Deleted == nil {
		return notFound(apperrors.CodeLocationNotFound, "location", locID)
	}
	return nil
}

func (p *HasuraProvider) LocationContext(ctx context.Context, locID int) (domain.LocationContext, error) {
	var out struct {
		Location *domain.Location `json:"locations_by_pk"`
	}
	if err := p.run(ctx, hasura.OpGetLocationContext, hasura.Vars{"loc_id": locID}, &out); err != nil {
		return domain.LocationContext{}, err
	}
	if out.Location == nil {
		return domain.LocationContext{}, notFound(apperrors.CodeLocationNotFound, "location", locID)
	}
	return locationContextOf(*out.Location), nil
}

// locationContextOf flattens a location with its nested building and
// organization. Missing parents leave their fields empty.
func locationContextOf(loc domain.Location) domain.LocationContext {
	lc := domain.LocationContext{
		LocationID:   loc.ID,
		LocationName: loc.Name,
		BuildingID:   loc.BuildingID,
	}
	if b := loc.Building; b != nil {
		lc.BuildingName = b.Name
		lc.OrgID = b.OrgID
		if o := b.Organization; o != nil {
			lc.OrgName = o.Name
		}
	}
	return lc
}

// --- Reference data ---

func (p *HasuraProvider) PPMDisciplines(ctx context.Context) ([]domain.Discipline, error) {
	var out struct {
		Disciplines []domain.Discipline `json:"ppm_discipline"`
	}
	if err := p.run(ctx, hasura.OpGetPPMDisciplines, nil, &out); err != nil {
		return nil, err
	}
	return out.Disciplines, nil
}

func (p *HasuraProvider) ReactiveDisciplines(ctx context.Context) ([]domain.Discipline, error) {
	var out struct {
		Disciplines []domain.Discipline `json:"react_discipline"`
	}
	if err := p.run(ctx, hasura.OpGetReactiveDisciplines, nil, &out); err != nil {
		return nil, err
	}
	return out.Disciplines, nil
}

func (p *HasuraProvider) Suppliers(ctx context.Context) ([]domain.Supplier, error) {
	var out struct {
		Suppliers []domain.Supplier `json:"suppliers"`
	}
	if err := p.run(ctx, hasura.OpGetSuppliers, nil, &out); err != nil {
		return nil, err
	}
	return out.Suppliers, nil
}

func (p *HasuraProvider) AssetGroups(ctx context.Context) ([]domain.AssetGroup, error) {
	var out struct {
		Groups []domain.AssetGroup `json:"as_group"`
	}
	if err := p.run(ctx, hasura.OpGetAssetGroups, nil, &out); err != nil {
		return nil, err
	}
	return out.Groups, nil
}

func (p *HasuraProvider) AssetTypes(ctx context.Context, groupID int) ([]domain.AssetType, error) {
	var out struct {
		Types []domain.AssetType `json:"as_type"`
	}
	if err := p.run(ctx, hasura.OpGetTypesByGroup, hasura.Vars{"group_id": groupID}, &out); err != nil {
		return nil, err
	}
	return out.Types, nil
}

func (p *HasuraProvider) AssetCategories(ctx context.Context, typeID int) ([]domain.AssetCategory, error) {
	var out struct {
		Categories []domain.AssetCategory `json:"as_category"`
	}
	if err := p.run(ctx, hasura.OpGetCategoriesByType, hasura.Vars{"type_id": typeID}, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// --- Assets ---

func (p *HasuraProvider) AssetOverview(ctx context.Context) ([]domain.AssetOverview, error) {
	var out struct {
		Rows []domain.AssetOverview `json:"vw_asset_bld_org"`
	}
	if err := p.run(ctx, hasura.OpGetAssetOverview, nil, &out); err != nil {
		return nil, err
	}
	return out.Rows, nil
}

func (p *HasuraProvider) AssetDetails(ctx context.Context) ([]domain.Asset, error) {
	var out struct {
		Assets []domain.Asset `json:"asset"`
	}
	if err := p.run(ctx, hasura.OpGetAssetDetails, nil, &out); err != nil {
		return nil, err
	}
	return out.Assets, nil
}

func (p *HasuraProvider) CategoryHierarchy(ctx context.Context) ([]domain.AssetCategory, error) {
	var out struct {
		Categories []domain.AssetCategory `json:"as_category"`
	}
	if err := p.run(ctx, hasura.OpGetCategoryHierarchy, nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

func (p *HasuraProvider) GetAsset(ctx context.Context, asID int) (domain.Asset, error) {
	var out struct {
		Asset *domain.Asset `json:"asset_by_pk"`
	}
	if err := p.run(ctx, hasura.OpGetAssetByPK, hasura.Vars{"as_id": asID}, &out); err != nil {
		return domain.Asset{}, err
	}
	if out.Asset == nil {
		return domain.Asset{}, notFound(apperrors.CodeAssetNotFound, "asset", asID)
	}
	return *out.Asset, nil
}

func (p *HasuraProvider) CreateAsset(ctx context.Context, object Columns) (int, error) {
	var out struct {
		Insert *struct {
			ID int `json:"as_id"`
		} `json:"insert_asset_one"`
	}
	if err := p.run(ctx, hasura.OpCreateAsset, hasura.Vars{"object": object}, &out); err != nil {
		return 0, err
	}
	if out.Insert == nil {
		return 0, apperrors.New(apperrors.CodeAssetCreateFail, "asset was not created", http.StatusUnprocessableEntity)
	}
	return out.Insert.ID, nil
}

// assetByPKResult decodes any update_asset_by_pk mutation.
type assetByPKResult struct {
	Updated *struct {
		ID int `json:"as_id"`
	} `json:"update_asset_by_pk"`
}

func (p *HasuraProvider) updateAsset(ctx context.Context, op string, asID int, vars hasura.Vars) error {
	var out assetByPKResult
	if err := p.run(ctx, op, vars, &out); err != nil {
		return err
	}
	if out.Updated == nil {
		return notFound(apperrors.CodeAssetNotFound, "asset", asID)
	}
	return nil
}

func (p *HasuraProvider) UpdateAsset(ctx context.Context, asID int, set Columns) error {
	return p.updateAsset(ctx, hasura.OpUpdateAsset, asID, hasura.Vars{"as_id": asID, "set": set})
}

func (p *HasuraProvider) SetAssetArchived(ctx context.Context, asID int, archived bool, by string, date domain.Date) error {
	vars := hasura.Vars{"as_id": asID, "archived": archived}
	if archived {
		vars["archived_by"] = by
		vars["archived_date"] = date
	}
	return p.updateAsset(ctx, hasura.OpSetAssetArchived, asID, vars)
}

func (p *HasuraProvider) VerifyAsset(ctx context.Context, asID int, by string, date domain.Date) error {
	return p.updateAsset(ctx, hasura.OpVerifyAsset, asID, hasura.Vars{
		"as_id":         asID,
		"verified_by":   by,
		"verified_date": date,
	})
}

func (p *HasuraProvider) AssetDisciplines(ctx context.Context, asID int) (domain.AssetDisciplines, error) {
	var out struct {
		Asset *domain.AssetDisciplines `json:"asset_by_pk"`
	}
	if err := p.run(ctx, hasura.OpGetAssetDisciplines, hasura.Vars{"as_id": asID}, &out); err != nil {
		return domain.AssetDisciplines{}, err
	}
	if out.Asset == nil {
		return domain.AssetDisciplines{}, notFound(apperrors.CodeAssetNotFound, "asset", asID)
	}
	return *out.Asset, nil
}

func (p *HasuraProvider) ServicePlansByAsset(ctx context.Context, asID int) ([]domain.AssetServicePlan, error) {
	var out struct {
		Links []domain.AssetServicePlan `json:"ppm_asset_service_plan"`
	}
	if err := p.run(ctx, hasura.OpGetServicePlansByAsset, hasura.Vars{"as_id": asID}, &out); err != nil {
		return nil, err
	}
	return out.Links, nil
}

func (p *HasuraProvider) DeleteAssetServicePlanLinks(ctx context.Context, asID int) (int, error) {
	var out struct {
		Delete affected `json:"delete_ppm_asset_service_plan"`
	}
	if err := p.run(ctx, hasura.OpDeleteAssetServicePlanLinks, hasura.Vars{"as_id": asID}, &out); err != nil {
		return 0, err
	}
	return out.Delete.AffectedRows, nil
}

func (p *HasuraProvider) UpdateAssetPPMDiscipline(ctx context.Context, asID int, discID *int) error {
	return p.updateAsset(ctx, hasura.OpUpdateAssetPPMDiscipline, asID, hasura.Vars{"as_id": asID, "disc_id": discID})
}

func (p *HasuraProvider) UpdateAssetReactiveDiscipline(ctx context.Context, asID int, discID *int) error {
	return p.updateAsset(ctx, hasura.OpUpdateAssetReactiveDiscipline, asID, hasura.Vars{"as_id": asID, "disc_id": discID})
}

// --- Service plans ---

func (p *HasuraProvider) ServicePlanRows(ctx context.Context) ([]domain.ServicePlan, error) {
	var out struct {
		Plans []domain.ServicePlan `json:"ppm_service_plan"`
	}
	if err := p.run(ctx, hasura.OpGetServicePlanRows, nil, &out); err != nil {
		return nil, err
	}
	return out.Plans, nil
}

func (p *HasuraProvider) GetServicePlan(ctx context.Context, ppmID int) (domain.ServicePlan, error) {
	var out struct {
		Plan *domain.ServicePlan `json:"ppm_service_plan_by_pk"`
	}
	if err := p.run(ctx, hasura.OpGetServicePlanByPK, hasura.Vars{"ppm_id": ppmID}, &out); err != nil {
		return domain.ServicePlan{}, err
	}
	if out.Plan == nil {
		return domain.ServicePlan{}, notFound(apperrors.CodeServicePlanNotFound, "service plan", ppmID)
	}
	return *out.Plan, nil
}

func (p *HasuraProvider) CreateServicePlan(ctx context.Context, object Columns) (int, error) {
	var out struct {
		Insert *struct {
			ID int `json:"ppm_id"`
		} `json:"insert_ppm_service_plan_one"`
	}
	if err := p.run(ctx, hasura.OpCreateServicePlan, hasura.Vars{"object": object}, &out); err != nil {
		return 0, err
	}
	if out.Insert == nil {
		return 0, apperrors.New(apperrors.CodeServicePlanCreateFail, "service plan was not created", http.StatusUnprocessableEntity)
	}
	return out.Insert.ID, nil
}

func (p *HasuraProvider) UpdateServicePlan(ctx context.Context, ppmID int, set Columns) error {
	var out struct {
		Updated *struct {
			ID int `json:"ppm_id"`
		} `json:"update_ppm_service_plan_by_pk"`
	}
	if err := p.run(ctx, hasura.OpUpdateServicePlan, hasura.Vars{"ppm_id": ppmID, "set": set}, &out); err != nil {
		return err
	}
	if out.Updated == nil {
		return notFound(apperrors.CodeServicePlanNotFound, "service plan", ppmID)
	}
	return nil
}

func (p *HasuraProvider) LinkServicePlanToBuilding(ctx context.Context, object Columns) (int, error) {
	var out struct {
		Insert *struct {
			Key int `json:"ppm_bsp_key"`
		} `json:"insert_ppm_building_service_plan_one"`
	}
	if err := p.run(ctx, hasura.OpLinkServicePlanToBuilding, hasura.Vars{"object": object}, &out); err != nil {
		return 0, err
	}
	if out.Insert == nil {
		return 0, apperrors.Unprocessable(apperrors.CodeServicePlanCreateFail, "building link was not created")
	}
	return out.Insert.Key, nil
}

func (p *HasuraProvider) CandidateAssets(ctx context.Context, discID, bldID int) ([]domain.AssetOverview, error) {
	var out struct {
		Rows []domain.AssetOverview `json:"vw_asset_bld_org"`
	}
	if err := p.run(ctx, hasura.OpGetCandidateAssets, hasura.Vars{"disc_id": discID, "bld_id": bldID}, &out); err != nil {
		return nil, err
	}
	return out.Rows, nil
}

func (p *HasuraProvider) LinkedAssets(ctx context.Context, ppmID int) ([]domain.AssetServicePlan, error) {
	var out struct {
		Links []domain.AssetServicePlan `json:"ppm_asset_service_plan"`
	}
	if err := p.run(ctx, hasura.OpGetLinkedAssets, hasura.Vars{"ppm_id": ppmID}, &out); err != nil {
		return nil, err
	}
	return out.Links, nil
}

func (p *HasuraProvider) AddAssetToServicePlan(ctx context.Context, asID, ppmID int) (domain.AssetServicePlan, error) {
	var out struct {
		Insert *domain.AssetServicePlan `json:"insert_ppm_asset_service_plan_one"`
	}
	if err := p.run(ctx, hasura.OpAddAssetToServicePlan, hasura.Vars{"as_id": asID, "ppm_id": ppmID}, &out); err != nil {
		return domain.AssetServicePlan{}, err
	}
	if out.Insert == nil {
		return domain.AssetServicePlan{}, apperrors.Unprocessable(apperrors.CodeUpstreamRejected, "asset link was not created")
	}
	return *out.Insert, nil
}

func (p *HasuraProvider) RemoveAssetFromServicePlan(ctx context.Context, asID, ppmID int) (int, error) {
	var out struct {
		Delete affected `json:"delete_ppm_asset_service_plan"`
	}
	if err := p.run(ctx, hasura.OpRemoveAssetFromServicePlan, hasura.Vars{"as_id": asID, "ppm_id": ppmID}, &out); err != nil {
		return 0, err
	}
	return out.Delete.AffectedRows, nil
}

func (p *HasuraProvider) Instructions(ctx context.Context, ppmID int) ([]domain.Instruction, error) {
	var out struct {
		Instructions []domain.Instruction `json:"instruction_set"`
	}
	if err := p.run(ctx, hasura.OpGetInstructions, hasura.Vars{"ppm_id": ppmID}, &out); err != nil {
		return nil, err
	}
	return out.Instructions, nil
}

func (p *HasuraProvider) InsertInstruction(ctx context.Context, ppmID int, detail, pass string) (int, error) {
	var out struct {
		Insert *struct {
			ID int `json:"pk_inst_set_id"`
		} `json:"insert_instruction_set_one"`
	}
	vars := hasura.Vars{"ppm_id": ppmID, "detail": detail, "pass": pass}
	if err := p.run(ctx, hasura.OpInsertInstruction, vars, &out); err != nil {
		return 0, err
	}
	if out.Insert == nil {
		return 0, apperrors.Unprocessable(apperrors.CodeUpstreamRejected, "instruction was not created")
	}
	return out.Insert.ID, nil
}

type instructionByPKResult struct {
	Updated *struct {
		ID int `json:"pk_inst_set_id"`
	} `json:"update_instruction_set_by_pk"`
}

// UpdateInstruction only touches a live instruction of inst.PlanID. An id
// that belongs to another plan matches no row and reports not found.
func (p *HasuraProvider) UpdateInstruction(ctx context.Context, inst domain.Instruction) error {
	var out struct {
		Update struct {
			AffectedRows int `json:"affected_rows"`
		} `json:"update_instruction_set"`
	}
	vars := hasura.Vars{
		"inst_id":  inst.ID,
		"ppm_id":   inst.PlanID,
		"detail":   inst.Detail,
		"pass":     inst.Pass,
		"archived": inst.Archived,
	}
	if err := p.run(ctx, hasura.OpUpdateInstruction, vars, &out); err != nil {
		return err
	}
	if out.Update.AffectedRows == 0 {
		return notFound(apperrors.CodeInstructionNotFound, "instruction", inst.ID)
	}
	return nil
}

func (p *HasuraProvider) SoftDeleteInstruction(ctx context.Context, instID int) error {
	var out instructionByPKResult
	if err := p.run(ctx, hasura.OpSoftDeleteInstruction, hasura.Vars{"inst_id": instID}, &out); err != nil {
		return err
	}
	if out.Updated == nil {
		return notFound(apperrors.CodeInstructionNotFound, "instruction", instID)
	}
	return nil
}

// --- Calendar ---

func (p *HasuraProvider) CalendarPlans(ctx context.Context) (CalendarData, error) {
	var out CalendarData
	if err := p.run(ctx, hasura.OpGetCalendarPlans, nil, &out); err != nil {
		return CalendarData{}, err
	}
	return out, nil
}

func (p *HasuraProvider) RescheduleBuildingServicePlan(ctx context.Context, bspKey int, date domain.Date) error {
	var out struct {
		Updated *struct {
			Key int `json:"ppm_bsp_key"`
		} `json:"update_ppm_building_service_plan_by_pk"`
	}
	if err := p.run(ctx, hasura.OpRescheduleBuildingServicePlan, hasura.Vars{"bsp_key": bspKey, "date": date}, &out); err != nil {
		return err
	}
	if out.Updated == nil {
		return notFound(apperrors.CodeBuildingPlanNotFound, "building service plan", bspKey)
	}
	return nil
}

// --- Bulk revision ---

type bulkResult struct {
	Updates []affected `json:"update_ppm_building_service_plan_many"`
	Insert  affected   `json:"insert_ppm_bulk_change"`
}

func (r bulkResult) updated() int {
	n := 0
	for _, u := range r.Updates {
		n += u.AffectedRows
	}
	return n
}

func (p *HasuraProvider) BulkUpdateBuildingServicePlans(ctx context.Context, updates []BuildingPlanUpdate) (int, error) {
	var out bulkResult
	if err := p.run(ctx, hasura.OpBulkUpdateBuildingServicePlans, hasura.Vars{"updates": updateObjects(updates)}, &out); err != nil {
		return 0, err
	}
	return out.updated(), nil
}

func (p *HasuraProvider) BulkInsertBulkChanges(ctx context.Context, changes []domain.BulkChange) (int, error) {
	var out bulkResult
	if err := p.run(ctx, hasura.OpBulkInsertBulkChanges, hasura.Vars{"objects": changes}, &out); err != nil {
		return 0, err
	}
	return out.Insert.AffectedRows, nil
}

func (p *HasuraProvider) BulkReviseAtomic(ctx context.Context, updates []BuildingPlanUpdate, changes []domain.BulkChange) (int, int, error) {
	var out bulkResult
	vars := hasura.Vars{"updates": updateObjects(updates), "objects": changes}
	if err := p.run(ctx, hasura.OpBulkReviseAtomic, vars, &out); err != nil {
		return 0, 0, err
	}
	return out.updated(), out.Insert.AffectedRows, nil
}

// updateObjects renders ppm_building_service_plan_updates entries.
func updateObjects(updates []BuildingPlanUpdate) []map[string]any {
	objs := make([]map[string]any, 0, len(updates))
	for _, u := range updates {
		objs = append(objs, map[string]any{
			"where": map[string]any{"ppm_bsp_key": map[string]any{"_eq": u.Key}},
			"_set":  u.Set,
		})
	}
	return objs
}

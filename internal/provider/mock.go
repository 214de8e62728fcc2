package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"ppmdesk.io/ppmdesk/internal/domain"
	apperrors "ppmdesk.io/ppmdesk/internal/pkg/errors"
)

// MockProvider implements Provider in memory for tests without Hasura.
// It mimics the joins and ordering of the real queries.
type MockProvider struct {
	mu sync.Mutex

	orgs       map[int]domain.Organization
	buildings  map[int]domain.Building
	locations  map[int]domain.Location
	groups     map[int]domain.AssetGroup
	types      map[int]domain.AssetType
	categories map[int]domain.AssetCategory
	ppmDisc    map[int]domain.Discipline
	reactDisc  map[int]domain.Discipline
	suppliers  map[int]domain.Supplier
	assets     map[int]domain.Asset
	plans      map[int]domain.ServicePlan
	bsps       map[int]domain.BuildingServicePlan
	asps       map[int]domain.AssetServicePlan
	insts      map[int]domain.Instruction
	changes    []domain.BulkChange

	seq      int
	calls    []string
	failures map[string]error
}

var _ Provider = (*MockProvider)(nil)

// NewMockProvider creates an empty MockProvider.
func NewMockProvider() *MockProvider {
	p := &MockProvider{}
	p.reset()
	return p
}

// Seed populates the mock provider with test data.
func (p *MockProvider) Seed(ds Dataset) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, v := range ds.Organizations {
		p.orgs[v.ID] = v
		p.bump(v.ID)
	}
	for _, v := range ds.Buildings {
		v.Organization = nil
		p.buildings[v.ID] = v
		p.bump(v.ID)
	}
	for _, v := range ds.Locations {
		v.Building = nil
		p.locations[v.ID] = v
		p.bump(v.ID)
	}
	for _, v := range ds.AssetGroups {
		p.groups[v.ID] = v
	}
	for _, v := range ds.AssetTypes {
		p.types[v.ID] = v
	}
	for _, v := range ds.AssetCategories {
		p.categories[v.ID] = v
	}
	for _, v := range ds.PPMDisciplines {
		v.PPM = true
		p.ppmDisc[v.ID] = v
	}
	for _, v := range ds.ReactiveDisciplines {
		v.PPM = false
		p.reactDisc[v.ID] = v
	}
	for _, v := range ds.Suppliers {
		p.suppliers[v.ID] = v
	}
	for _, v := range ds.Assets {
		p.assets[v.ID] = v
		p.bump(v.ID)
	}
	for _, v := range ds.ServicePlans {
		for _, b := range v.BuildingPlans {
			b.PlanID = v.ID
			p.putBSP(b)
		}
		for _, a := range v.AssetPlans {
			a.PlanID = v.ID
			p.putASP(a)
		}
		v.BuildingPlans, v.AssetPlans = nil, nil
		v.Discipline, v.Supplier = nil, nil
		p.plans[v.ID] = v
		p.bump(v.ID)
	}
	for _, v := range ds.BuildingPlans {
		p.putBSP(v)
	}
	for _, v := range ds.AssetPlans {
		p.putASP(v)
	}
	for _, v := range ds.Instructions {
		p.insts[v.ID] = v
		p.bump(v.ID)
	}
}

func (p *MockProvider) putBSP(b domain.BuildingServicePlan) {
	b.Building, b.Supplier = nil, nil
	p.bsps[b.Key] = b
	p.bump(b.Key)
}

func (p *MockProvider) putASP(a domain.AssetServicePlan) {
	if a.Key == 0 {
		p.seq++
		a.Key = p.seq
	}
	a.Asset, a.ServicePlan = nil, nil
	p.asps[a.Key] = a
	p.bump(a.Key)
}

// bump keeps generated ids above every seeded id.
func (p *MockProvider) bump(id int) {
	if id > p.seq {
		p.seq = id
	}
}

func (p *MockProvider) next() int {
	p.seq++
	return p.seq
}

// Reset clears all mock data, recorded calls and injected failures.
func (p *MockProvider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
}

func (p *MockProvider) reset() {
	p.orgs = make(map[int]domain.Organization)
	p.buildings = make(map[int]domain.Building)
	p.locations = make(map[int]domain.Location)
	p.groups = make(map[int]domain.AssetGroup)
	p.types = make(map[int]domain.AssetType)
	p.categories = make(map[int]domain.AssetCategory)
	p.ppmDisc = make(map[int]domain.Discipline)
	p.reactDisc = make(map[int]domain.Discipline)
	p.suppliers = make(map[int]domain.Supplier)
	p.assets = make(map[int]domain.Asset)
	p.plans = make(map[int]domain.ServicePlan)
	p.bsps = make(map[int]domain.BuildingServicePlan)
	p.asps = make(map[int]domain.AssetServicePlan)
	p.insts = make(map[int]domain.Instruction)
	p.changes = nil
	p.seq = 0
	p.calls = nil
	p.failures = make(map[string]error)
}

// FailOn makes every later call to method return err. A nil err clears it.
func (p *MockProvider) FailOn(method string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err == nil {
		delete(p.failures, method)
		return
	}
	p.failures[method] = err
}

// Calls returns the names of the methods called, in order.
func (p *MockProvider) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

// BulkChanges returns every audit entry written.
func (p *MockProvider) BulkChanges() []domain.BulkChange {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.BulkChange(nil), p.changes...)
}

// BuildingPlan returns the stored join row.
func (p *MockProvider) BuildingPlan(key int) (domain.BuildingServicePlan, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	b, ok := p.bsps[key]
	return b, ok
}

// enter records the call and returns any injected failure. Caller holds mu.
func (p *MockProvider) enter(method string) error {
	p.calls = append(p.calls, method)
	return p.failures[method]
}

func sortedValues[T any](m map[int]T, keep func(T) bool) []T {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		if keep == nil || keep(m[k]) {
			out = append(out, m[k])
		}
	}
	return out
}

// overlay applies column values onto v through its JSON representation.
func overlay[T any](v T, cols Columns) (T, error) {
	base, err := json.Marshal(v)
	if err != nil {
		return v, err
	}
	merged := map[string]any{}
	if err := json.Unmarshal(base, &merged); err != nil {
		return v, err
	}
	for k, val := range cols {
		merged[k] = val
	}
	raw, err := json.Marshal(merged)
	if err != nil {
		return v, err
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return v, apperrors.Unprocessable(apperrors.CodeUpstreamRejected, fmt.Sprintf("invalid column value: %v", err))
	}
	return out, nil
}

func constraintViolation(msg string) error {
	return apperrors.Conflict(apperrors.CodeUpstreamConflict, msg)
}

// --- Estate ---

func (p *MockProvider) ListOrganizations(_ context.Context) ([]domain.Organization, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("ListOrganizations"); err != nil {
		return nil, err
	}
	return sortedValues(p.orgs, nil), nil
}

func (p *MockProvider) CreateOrganization(_ context.Context, org domain.Organization) (domain.Organization, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("CreateOrganization"); err != nil {
		return domain.Organization{}, err
	}
	org.ID = p.next()
	p.orgs[org.ID] = org
	return org, nil
}

func (p *MockProvider) DeleteOrganization(_ context.Context, orgID int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("DeleteOrganization"); err != nil {
		return err
	}
	if _, ok := p.orgs[orgID]; !ok {
		return notFound(apperrors.CodeOrganizationNotFound, "organization", orgID)
	}
	for _, b := range p.buildings {
		if b.OrgID == orgID {
			return constraintViolation("organization still has buildings")
		}
	}
	delete(p.orgs, orgID)
	return nil
}

func (p *MockProvider) ListBuildingsByOrg(_ context.Context, orgID int) ([]domain.Building, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("ListBuildingsByOrg"); err != nil {
		return nil, err
	}
	return sortedValues(p.buildings, func(b domain.Building) bool { return b.OrgID == orgID }), nil
}

func (p *MockProvider) ListBuildings(_ context.Context) ([]domain.Building, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("ListBuildings"); err != nil {
		return nil, err
	}
	out := sortedValues(p.buildings, nil)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (p *MockProvider) CreateBuilding(_ context.Context, bld domain.Building) (domain.Building, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("CreateBuilding"); err != nil {
		return domain.Building{}, err
	}
	if _, ok := p.orgs[bld.OrgID]; !ok {
		return domain.Building{}, constraintViolation("foreign key violation on fk_org_id")
	}
	bld.ID = p.next()
	bld.Organization = nil
	p.buildings[bld.ID] = bld
	return bld, nil
}

func (p *MockProvider) DeleteBuilding(_ context.Context, bldID int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("DeleteBuilding"); err != nil {
		return err
	}
	if _, ok := p.buildings[bldID]; !ok {
		return notFound(apperrors.CodeBuildingNotFound, "building", bldID)
	}
	for _, l := range p.locations {
		if l.BuildingID == bldID {
			return constraintViolation("building still has locations")
		}
	}
	delete(p.buildings, bldID)
	return nil
}

func (p *MockProvider) ListLocationsByBuilding(_ context.Context, bldID int) ([]domain.Location, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("ListLocationsByBuilding"); err != nil {
		return nil, err
	}
	return sortedValues(p.locations, func(l domain.Location) bool { return l.BuildingID == bldID }), nil
}

func (p *MockProvider) ListLocations(_ context.Context) ([]domain.Location, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("ListLocations"); err != nil {
		return nil, err
	}
	out := sortedValues(p.locations, nil)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (p *MockProvider) CreateLocation(_ context.Context, loc domain.Location) (domain.Location, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("CreateLocation"); err != nil {
		return domain.Location{}, err
	}
	if _, ok := p.buildings[loc.BuildingID]; !ok {
		return domain.Location{}, constraintViolation("foreign key violation on fk_bld_id")
	}
	loc.ID = p.next()
	loc.Building = nil
	p.locations[loc.ID] = loc
	return loc, nil
}

func (p *MockProvider) DeleteLocation(_ context.Context, locID int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("DeleteLocation"); err != nil {
		return err
	}
	if _, ok := p.locations[locID]; !ok {
		return notFound(apperrors.CodeLocationNotFound, "location", locID)
	}
	for _, a := range p.assets {
		if a.LocationID == locID {
			return constraintViolation("location still has assets")
		}
	}
	delete(p.locations, locID)
	return nil
}

func (p *MockProvider) LocationContext(_ context.Context, locID int) (domain.LocationContext, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("LocationContext"); err != nil {
		return domain.LocationContext{}, err
	}
	loc, ok := p.locations[locID]
	if !ok {
		return domain.LocationContext{}, notFound(apperrors.CodeLocationNotFound, "location", locID)
	}
	if b, ok := p.buildings[loc.BuildingID]; ok {
		if o, ok := p.orgs[b.OrgID]; ok {
			b.Organization = &o
		}
		loc.Building = &b
	}
	return locationContextOf(loc), nil
}

// --- Reference data ---

func (p *MockProvider) PPMDisciplines(_ context.Context) ([]domain.Discipline, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("PPMDisciplines"); err != nil {
		return nil, err
	}
	return sortedValues(p.ppmDisc, nil), nil
}

func (p *MockProvider) ReactiveDisciplines(_ context.Context) ([]domain.Discipline, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("ReactiveDisciplines"); err != nil {
		return nil, err
	}
	return sortedValues(p.reactDisc, nil), nil
}

func (p *MockProvider) Suppliers(_ context.Context) ([]domain.Supplier, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("Suppliers"); err != nil {
		return nil, err
	}
	return sortedValues(p.suppliers, nil), nil
}

func (p *MockProvider) AssetGroups(_ context.Context) ([]domain.AssetGroup, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("AssetGroups"); err != nil {
		return nil, err
	}
	return sortedValues(p.groups, nil), nil
}

func (p *MockProvider) AssetTypes(_ context.Context, groupID int) ([]domain.AssetType, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("AssetTypes"); err != nil {
		return nil, err
	}
	return sortedValues(p.types, func(t domain.AssetType) bool { return t.GroupID == groupID }), nil
}

func (p *MockProvider) AssetCategories(_ context.Context, typeID int) ([]domain.AssetCategory, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("AssetCategories"); err != nil {
		return nil, err
	}
	return sortedValues(p.categories, func(c domain.AssetCategory) bool { return c.TypeID == typeID }), nil
}

// --- Assets ---

func (p *MockProvider) overviewOf(a domain.Asset) domain.AssetOverview {
	row := domain.AssetOverview{AssetID: a.ID, AssetName: a.Name, DisciplineID: a.PPMDisciplineID}
	loc, ok := p.locations[a.LocationID]
	if !ok {
		return row
	}
	row.LocationName = loc.Name
	if b, ok := p.buildings[loc.BuildingID]; ok {
		id := b.ID
		row.BuildingID = &id
		row.BuildingName = b.Name
		if o, ok := p.orgs[b.OrgID]; ok {
			row.OrgName = o.Name
		}
	}
	return row
}

func (p *MockProvider) AssetOverview(_ context.Context) ([]domain.AssetOverview, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("AssetOverview"); err != nil {
		return nil, err
	}
	assets := sortedValues(p.assets, nil)
	rows := make([]domain.AssetOverview, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, p.overviewOf(a))
	}
	return rows, nil
}

func (p *MockProvider) AssetDetails(_ context.Context) ([]domain.Asset, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("AssetDetails"); err != nil {
		return nil, err
	}
	return sortedValues(p.assets, nil), nil
}

func (p *MockProvider) CategoryHierarchy(_ context.Context) ([]domain.AssetCategory, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("CategoryHierarchy"); err != nil {
		return nil, err
	}
	cats := sortedValues(p.categories, nil)
	for i, c := range cats {
		t, ok := p.types[c.TypeID]
		if !ok {
			continue
		}
		if g, ok := p.groups[t.GroupID]; ok {
			t.Group = &g
		}
		cats[i].Type = &t
	}
	return cats, nil
}

func (p *MockProvider) GetAsset(_ context.Context, asID int) (domain.Asset, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("GetAsset"); err != nil {
		return domain.Asset{}, err
	}
	a, ok := p.assets[asID]
	if !ok {
		return domain.Asset{}, notFound(apperrors.CodeAssetNotFound, "asset", asID)
	}
	return a, nil
}

func (p *MockProvider) CreateAsset(_ context.Context, object Columns) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("CreateAsset"); err != nil {
		return 0, err
	}
	a, err := overlay(domain.Asset{}, object)
	if err != nil {
		return 0, err
	}
	if _, ok := p.locations[a.LocationID]; !ok {
		return 0, constraintViolation("foreign key violation on fk_loc_id")
	}
	a.ID = p.next()
	p.assets[a.ID] = a
	return a.ID, nil
}

func (p *MockProvider) patchAsset(method string, asID int, set Columns) error {
	if err := p.enter(method); err != nil {
		return err
	}
	a, ok := p.assets[asID]
	if !ok {
		return notFound(apperrors.CodeAssetNotFound, "asset", asID)
	}
	patched, err := overlay(a, set)
	if err != nil {
		return err
	}
	patched.ID = asID
	p.assets[asID] = patched
	return nil
}

func (p *MockProvider) UpdateAsset(_ context.Context, asID int, set Columns) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.patchAsset("UpdateAsset", asID, set)
}

func (p *MockProvider) SetAssetArchived(_ context.Context, asID int, archived bool, by string, date domain.Date) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	set := Columns{"as_archived": archived}
	if archived {
		set["as_archived_by"] = by
		set["as_archived_date"] = date
	} else {
		set["as_archived_by"] = nil
		set["as_archived_date"] = nil
	}
	return p.patchAsset("SetAssetArchived", asID, set)
}

func (p *MockProvider) VerifyAsset(_ context.Context, asID int, by string, date domain.Date) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.patchAsset("VerifyAsset", asID, Columns{
		"as_verified_status": true,
		"as_verified_by":     by,
		"as_verified_date":   date,
	})
}

func (p *MockProvider) AssetDisciplines(_ context.Context, asID int) (domain.AssetDisciplines, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("AssetDisciplines"); err != nil {
		return domain.AssetDisciplines{}, err
	}
	a, ok := p.assets[asID]
	if !ok {
		return domain.AssetDisciplines{}, notFound(apperrors.CodeAssetNotFound, "asset", asID)
	}
	return domain.AssetDisciplines{
		AssetID:              a.ID,
		LocationID:           a.LocationID,
		PPMDisciplineID:      a.PPMDisciplineID,
		ReactiveDisciplineID: a.ReactiveDisciplineID,
	}, nil
}

func (p *MockProvider) ServicePlansByAsset(_ context.Context, asID int) ([]domain.AssetServicePlan, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("ServicePlansByAsset"); err != nil {
		return nil, err
	}
	links := sortedValues(p.asps, func(l domain.AssetServicePlan) bool { return l.AssetID == asID })
	sort.SliceStable(links, func(i, j int) bool { return links[i].PlanID < links[j].PlanID })
	for i, l := range links {
		if sp, ok := p.plans[l.PlanID]; ok {
			links[i].ServicePlan = &domain.ServicePlan{ID: sp.ID, ServiceName: sp.ServiceName}
		}
	}
	return links, nil
}

func (p *MockProvider) DeleteAssetServicePlanLinks(_ context.Context, asID int) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("DeleteAssetServicePlanLinks"); err != nil {
		return 0, err
	}
	n := 0
	for k, l := range p.asps {
		if l.AssetID == asID {
			delete(p.asps, k)
			n++
		}
	}
	return n, nil
}

func (p *MockProvider) UpdateAssetPPMDiscipline(_ context.Context, asID int, discID *int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.patchAsset("UpdateAssetPPMDiscipline", asID, Columns{"fk_disc_id": discID})
}

func (p *MockProvider) UpdateAssetReactiveDiscipline(_ context.Context, asID int, discID *int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.patchAsset("UpdateAssetReactiveDiscipline", asID, Columns{"fk_r_disc_id": discID})
}

// --- Service plans ---

func (p *MockProvider) supplierRef(id *int) *domain.Supplier {
	if id == nil {
		return nil
	}
	s, ok := p.suppliers[*id]
	if !ok {
		return nil
	}
	return &domain.Supplier{ID: s.ID, Name: s.Name}
}

// planView attaches the nested objects the GraphQL documents select.
func (p *MockProvider) planView(sp domain.ServicePlan, withAssets bool) domain.ServicePlan {
	if sp.DisciplineID != nil {
		if d, ok := p.ppmDisc[*sp.DisciplineID]; ok {
			sp.Discipline = &domain.Discipline{ID: d.ID, Name: d.Name}
		}
	}
	sp.Supplier = p.supplierRef(sp.SupplierID)

	sp.BuildingPlans = sortedValues(p.bsps, func(b domain.BuildingServicePlan) bool { return b.PlanID == sp.ID })
	for i, b := range sp.BuildingPlans {
		if bld, ok := p.buildings[b.BuildingID]; ok {
			if o, ok := p.orgs[bld.OrgID]; ok {
				bld.Organization = &domain.Organization{ID: o.ID, Name: o.Name}
			}
			sp.BuildingPlans[i].Building = &bld
		}
		sp.BuildingPlans[i].Supplier = p.supplierRef(b.SupplierID)
	}

	if withAssets {
		sp.AssetPlans = sortedValues(p.asps, func(l domain.AssetServicePlan) bool { return l.PlanID == sp.ID })
		sort.SliceStable(sp.AssetPlans, func(i, j int) bool { return sp.AssetPlans[i].AssetID < sp.AssetPlans[j].AssetID })
		for i, l := range sp.AssetPlans {
			if a, ok := p.assets[l.AssetID]; ok {
				sp.AssetPlans[i].Asset = &domain.Asset{ID: a.ID, Name: a.Name}
			}
		}
	}
	return sp
}

func (p *MockProvider) ServicePlanRows(_ context.Context) ([]domain.ServicePlan, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("ServicePlanRows"); err != nil {
		return nil, err
	}
	plans := sortedValues(p.plans, nil)
	for i := range plans {
		plans[i] = p.planView(plans[i], false)
	}
	return plans, nil
}

func (p *MockProvider) GetServicePlan(_ context.Context, ppmID int) (domain.ServicePlan, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("GetServicePlan"); err != nil {
		return domain.ServicePlan{}, err
	}
	sp, ok := p.plans[ppmID]
	if !ok {
		return domain.ServicePlan{}, notFound(apperrors.CodeServicePlanNotFound, "service plan", ppmID)
	}
	return p.planView(sp, false), nil
}

func (p *MockProvider) CreateServicePlan(_ context.Context, object Columns) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("CreateServicePlan"); err != nil {
		return 0, err
	}
	sp, err := overlay(domain.ServicePlan{}, object)
	if err != nil {
		return 0, err
	}
	sp.ID = p.next()
	p.plans[sp.ID] = sp
	return sp.ID, nil
}

func (p *MockProvider) UpdateServicePlan(_ context.Context, ppmID int, set Columns) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("UpdateServicePlan"); err != nil {
		return err
	}
	sp, ok := p.plans[ppmID]
	if !ok {
		return notFound(apperrors.CodeServicePlanNotFound, "service plan", ppmID)
	}
	patched, err := overlay(sp, set)
	if err != nil {
		return err
	}
	patched.ID = ppmID
	p.plans[ppmID] = patched
	return nil
}

func (p *MockProvider) LinkServicePlanToBuilding(_ context.Context, object Columns) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("LinkServicePlanToBuilding"); err != nil {
		return 0, err
	}
	b, err := overlay(domain.BuildingServicePlan{}, object)
	if err != nil {
		return 0, err
	}
	if _, ok := p.plans[b.PlanID]; !ok {
		return 0, constraintViolation("foreign key violation on ppm_fk_ppm_id")
	}
	if _, ok := p.buildings[b.BuildingID]; !ok {
		return 0, constraintViolation("foreign key violation on fk_bld_id")
	}
	b.Key = p.next()
	p.bsps[b.Key] = b
	return b.Key, nil
}

func (p *MockProvider) CandidateAssets(_ context.Context, discID, bldID int) ([]domain.AssetOverview, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("CandidateAssets"); err != nil {
		return nil, err
	}
	var rows []domain.AssetOverview
	for _, a := range sortedValues(p.assets, nil) {
		row := p.overviewOf(a)
		if row.DisciplineID != nil && *row.DisciplineID == discID && row.BuildingID != nil && *row.BuildingID == bldID {
			rows = append(rows, row)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].AssetName < rows[j].AssetName })
	return rows, nil
}

func (p *MockProvider) LinkedAssets(_ context.Context, ppmID int) ([]domain.AssetServicePlan, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("LinkedAssets"); err != nil {
		return nil, err
	}
	links := sortedValues(p.asps, func(l domain.AssetServicePlan) bool { return l.PlanID == ppmID })
	sort.SliceStable(links, func(i, j int) bool { return links[i].AssetID < links[j].AssetID })
	for i, l := range links {
		if a, ok := p.assets[l.AssetID]; ok {
			links[i].Asset = &domain.Asset{ID: a.ID, Name: a.Name}
		}
	}
	return links, nil
}

func (p *MockProvider) AddAssetToServicePlan(_ context.Context, asID, ppmID int) (domain.AssetServicePlan, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("AddAssetToServicePlan"); err != nil {
		return domain.AssetServicePlan{}, err
	}
	if _, ok := p.assets[asID]; !ok {
		return domain.AssetServicePlan{}, constraintViolation("foreign key violation on fk_as_id")
	}
	if _, ok := p.plans[ppmID]; !ok {
		return domain.AssetServicePlan{}, constraintViolation("foreign key violation on ppm_fk_ppm_id")
	}
	for _, l := range p.asps {
		if l.AssetID == asID && l.PlanID == ppmID {
			return domain.AssetServicePlan{}, constraintViolation("asset already linked to service plan")
		}
	}
	link := domain.AssetServicePlan{Key: p.next(), AssetID: asID, PlanID: ppmID}
	p.asps[link.Key] = link
	return link, nil
}

func (p *MockProvider) RemoveAssetFromServicePlan(_ context.Context, asID, ppmID int) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("RemoveAssetFromServicePlan"); err != nil {
		return 0, err
	}
	n := 0
	for k, l := range p.asps {
		if l.AssetID == asID && l.PlanID == ppmID {
			delete(p.asps, k)
			n++
		}
	}
	return n, nil
}

func (p *MockProvider) Instructions(_ context.Context, ppmID int) ([]domain.Instruction, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("Instructions"); err != nil {
		return nil, err
	}
	return sortedValues(p.insts, func(i domain.Instruction) bool { return i.PlanID == ppmID && !i.Deleted }), nil
}

func (p *MockProvider) InsertInstruction(_ context.Context, ppmID int, detail, pass string) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("InsertInstruction"); err != nil {
		return 0, err
	}
	if _, ok := p.plans[ppmID]; !ok {
		return 0, constraintViolation("foreign key violation on fk_ppm_id")
	}
	inst := domain.Instruction{ID: p.next(), PlanID: ppmID, Detail: detail, Pass: pass}
	p.insts[inst.ID] = inst
	return inst.ID, nil
}

func (p *MockProvider) UpdateInstruction(_ context.Context, inst domain.Instruction) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("UpdateInstruction"); err != nil {
		return err
	}
	cur, ok := p.insts[inst.ID]
	if !ok || cur.PlanID != inst.PlanID || cur.Deleted {
		return notFound(apperrors.CodeInstructionNotFound, "instruction", inst.ID)
	}
	cur.Detail, cur.Pass, cur.Archived = inst.Detail, inst.Pass, inst.Archived
	p.insts[inst.ID] = cur
	return nil
}

func (p *MockProvider) SoftDeleteInstruction(_ context.Context, instID int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("SoftDeleteInstruction"); err != nil {
		return err
	}
	cur, ok := p.insts[instID]
	if !ok {
		return notFound(apperrors.CodeInstructionNotFound, "instruction", instID)
	}
	cur.Deleted = true
	p.insts[instID] = cur
	return nil
}

// --- Calendar ---

func (p *MockProvider) CalendarPlans(_ context.Context) (CalendarData, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("CalendarPlans"); err != nil {
		return CalendarData{}, err
	}
	var data CalendarData
	for _, sp := range sortedValues(p.plans, nil) {
		data.Plans = append(data.Plans, p.planView(sp, true))
	}
	data.Disciplines = sortedValues(p.ppmDisc, nil)
	sort.SliceStable(data.Disciplines, func(i, j int) bool { return data.Disciplines[i].Name < data.Disciplines[j].Name })
	for _, b := range sortedValues(p.buildings, nil) {
		data.Buildings = append(data.Buildings, domain.Building{ID: b.ID, Name: b.Name})
	}
	sort.SliceStable(data.Buildings, func(i, j int) bool { return data.Buildings[i].Name < data.Buildings[j].Name })
	return data, nil
}

func (p *MockProvider) RescheduleBuildingServicePlan(_ context.Context, bspKey int, date domain.Date) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("RescheduleBuildingServicePlan"); err != nil {
		return err
	}
	b, ok := p.bsps[bspKey]
	if !ok {
		return notFound(apperrors.CodeBuildingPlanNotFound, "building service plan", bspKey)
	}
	b.ScheduleDate = date
	p.bsps[bspKey] = b
	return nil
}

// --- Bulk revision ---

// patchBSPs applies updates to copies; nothing is stored on error.
func (p *MockProvider) patchBSPs(updates []BuildingPlanUpdate) (map[int]domain.BuildingServicePlan, error) {
	patched := make(map[int]domain.BuildingServicePlan, len(updates))
	for _, u := range updates {
		b, ok := patched[u.Key]
		if !ok {
			if b, ok = p.bsps[u.Key]; !ok {
				continue
			}
		}
		nb, err := overlay(b, u.Set)
		if err != nil {
			return nil, err
		}
		nb.Key = u.Key
		patched[u.Key] = nb
	}
	return patched, nil
}

func (p *MockProvider) BulkUpdateBuildingServicePlans(_ context.Context, updates []BuildingPlanUpdate) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("BulkUpdateBuildingServicePlans"); err != nil {
		return 0, err
	}
	patched, err := p.patchBSPs(updates)
	if err != nil {
		return 0, err
	}
	for k, b := range patched {
		p.bsps[k] = b
	}
	return len(patched), nil
}

func (p *MockProvider) BulkInsertBulkChanges(_ context.Context, changes []domain.BulkChange) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("BulkInsertBulkChanges"); err != nil {
		return 0, err
	}
	p.changes = append(p.changes, changes...)
	return len(changes), nil
}

func (p *MockProvider) BulkReviseAtomic(_ context.Context, updates []BuildingPlanUpdate, changes []domain.BulkChange) (int, int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.enter("BulkReviseAtomic"); err != nil {
		return 0, 0, err
	}
	patched, err := p.patchBSPs(updates)
	if err != nil {
		return 0, 0, err
	}
	for k, b := range patched {
		p.bsps[k] = b
	}
	p.changes = append(p.changes, changes...)
	return len(patched), len(changes), nil
}

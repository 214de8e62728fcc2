package domain

// ServicePlan is a PPM definition: what is serviced and how often.
type ServicePlan struct {
	ID               int      `json:"ppm_id"`
	ServiceName      string   `json:"ppm_service_name"`
	Description      string   `json:"ppm_description,omitempty"`
	Schedule         Date     `json:"ppm_schedule,omitzero"`
	Frequency        string   `json:"ppm_frequency,omitempty"`
	Standard         string   `json:"ppm_standard,omitempty"`
	Status           string   `json:"ppm_status,omitempty"`
	Type             string   `json:"ppm_type,omitempty"`
	Cost             *float64 `json:"ppm_cost,omitempty"`
	CompliancePPM    bool     `json:"compliance_ppm"`
	ComplianceExpiry Date     `json:"compliance_ppm_expiry,omitzero"`
	Notes            string   `json:"notes,omitempty"`
	LastServiceDate  Date     `json:"last_service_date,omitzero"`
	NextServiceDate  Date     `json:"next_service_date,omitzero"`
	SupplierID       *int     `json:"fk_sup_id,omitempty"`
	DisciplineID     *int     `json:"fk_disc_id,omitempty"`

	Discipline    *Discipline           `json:"ppm_discipline,omitempty"`
	Supplier      *Supplier             `json:"supplier,omitempty"`
	BuildingPlans []BuildingServicePlan `json:"ppm_building_service_plans,omitempty"`
	AssetPlans    []AssetServicePlan    `json:"ppm_asset_service_plans,omitempty"`
}

// DisciplineName returns the nested discipline name or "".
func (p ServicePlan) DisciplineName() string {
	if p.Discipline == nil {
		return ""
	}
	return p.Discipline.Name
}

// SupplierName returns the nested supplier name or "".
func (p ServicePlan) SupplierName() string {
	if p.Supplier == nil {
		return ""
	}
	return p.Supplier.Name
}

// BuildingServicePlan is the building-specific instance of a ServicePlan,
// carrying its own cost and schedule override.
type BuildingServicePlan struct {
	Key             int      `json:"ppm_bsp_key"`
	PlanID          int      `json:"ppm_fk_ppm_id"`
	BuildingID      int      `json:"fk_bld_id"`
	SupplierID      *int     `json:"fk_sup_id,omitempty"`
	Cost            *float64 `json:"ppm_cost,omitempty"`
	Frequency       string   `json:"ppm_frequency,omitempty"`
	ScheduleDate    Date     `json:"ppm_b_schedule_date,omitzero"`
	LastServiceDate Date     `json:"ppm_b_last_service_date,omitzero"`
	NextServiceDate Date     `json:"ppm_b_next_service_date,omitzero"`

	Building *Building `json:"building,omitempty"`
	Supplier *Supplier `json:"supplier,omitempty"`
}

// AssetServicePlan links an asset to a service plan.
type AssetServicePlan struct {
	Key     int    `json:"ppm_asp_key,omitempty"`
	AssetID int    `json:"fk_as_id"`
	PlanID  int    `json:"ppm_fk_ppm_id"`
	Asset   *Asset `json:"asset,omitempty"`

	ServicePlan *ServicePlan `json:"ppm_service_plan,omitempty"`
}

// Supplier carries contractor identity and registration data.
type Supplier struct {
	ID             int      `json:"sup_id"`
	Name           string   `json:"sup_name"`
	Address        string   `json:"sup_add,omitempty"`
	BillingAddress string   `json:"sup_bill_add,omitempty"`
	CompanyNumber  string   `json:"sup_company_num,omitempty"`
	VATNumber      string   `json:"sup_vat_num,omitempty"`
	CISRegistered  bool     `json:"sup_cis_reg"`
	CreditScore    *float64 `json:"sup_credit_score,omitempty"`
	PPM            bool     `json:"sup_ppm"`
}

// Instruction is one work instruction attached to a ServicePlan.
// Instructions are soft-deleted through Deleted.
type Instruction struct {
	ID       int    `json:"pk_inst_set_id"`
	PlanID   int    `json:"fk_ppm_id"`
	Detail   string `json:"inst_set_detail"`
	Pass     string `json:"inst_set_pass"`
	Archived bool   `json:"inst_set_archived"`
	Deleted  bool   `json:"inst_set_deleted"`
}

// BulkChange is one audit entry written for each row touched by a bulk
// revision.
type BulkChange struct {
	ChangeType    string `json:"change_type"`
	ChangeReason  string `json:"change_reason"`
	RequestedBy   string `json:"change_request_by"`
	ServicePlanID int    `json:"ppm_service_plan_id"`
	BuildingID    int    `json:"building_id"`
}

package domain

// Asset is a physical, maintainable item installed at a Location.
// Optional scalar columns are pointers so an absent value stays distinct
// from zero when patched.
type Asset struct {
	ID              int    `json:"as_id"`
	Name            string `json:"as_name"`
	Manufacturer    string `json:"as_manufacturer"`
	ModelName       string `json:"as_model_name"`
	SerialNum       string `json:"as_serial_num"`
	ManufactureYear *int   `json:"as_manufacture_year,omitempty"`
	ExpectedLife    *int   `json:"as_expected_life,omitempty"`

	Warranty         bool `json:"as_warranty"`
	WarrantyLength   *int `json:"as_warranty_length,omitempty"`
	WarrantyExpiry   Date `json:"as_warranty_expiry,omitzero"`
	BusinessCritical bool `json:"as_business_critical"`
	// Status is the operational flag; true means in service.
	Status   bool   `json:"as_status"`
	Standard string `json:"as_standard,omitempty"`

	Archived     bool   `json:"as_archived"`
	ArchivedBy   string `json:"as_archived_by,omitempty"`
	ArchivedDate Date   `json:"as_archived_date,omitzero"`
	Deleted      bool   `json:"as_deleted"`

	VerifiedStatus bool   `json:"as_verified_status"`
	VerifiedBy     string `json:"as_verified_by,omitempty"`
	VerifiedDate   Date   `json:"as_verified_date,omitzero"`

	LastServiceDate Date `json:"as_last_service_date,omitzero"`
	NextServiceDate Date `json:"as_next_service_date,omitzero"`

	ExtraInfo          string `json:"as_extra_info,omitempty"`
	AccessRestrictions string `json:"as_access_restrictions,omitempty"`

	CreatedBy string `json:"as_created_by,omitempty"`

	ParentID             *int `json:"as_parent_id,omitempty"`
	LocationID           int  `json:"fk_loc_id"`
	CategoryID           *int `json:"fk_as_cat_id,omitempty"`
	PPMDisciplineID      *int `json:"fk_disc_id,omitempty"`
	ReactiveDisciplineID *int `json:"fk_r_disc_id,omitempty"`
}

// AssetOverview is one row of the denormalized asset/location/building/
// organization view.
type AssetOverview struct {
	AssetID      int    `json:"as_id"`
	AssetName    string `json:"as_name"`
	LocationName string `json:"loc_name"`
	BuildingName string `json:"bld_name"`
	OrgName      string `json:"org_name"`
	DisciplineID *int   `json:"disc_id,omitempty"`
	BuildingID   *int   `json:"bld_id,omitempty"`
}

// AssetGroup is the top level of the classification hierarchy.
type AssetGroup struct {
	ID   int    `json:"as_group_id"`
	Name string `json:"as_group_name"`
}

// AssetType sits between a group and its categories.
type AssetType struct {
	ID      int         `json:"as_type_id"`
	Name    string      `json:"as_type_name"`
	GroupID int         `json:"fk_as_group_id,omitempty"`
	Group   *AssetGroup `json:"as_group,omitempty"`
}

// AssetCategory is the leaf classification an asset references.
type AssetCategory struct {
	ID     int        `json:"as_cat_id"`
	Name   string     `json:"as_cat_name"`
	TypeID int        `json:"fk_type_id,omitempty"`
	Type   *AssetType `json:"as_type,omitempty"`
}

// Discipline is a trade classification. PPM and reactive disciplines live
// in separate tables partitioned by the disc_ppm flag.
type Discipline struct {
	ID   int    `json:"disc_id"`
	Name string `json:"disc_name"`
	PPM  bool   `json:"disc_ppm"`
}

// LocationContext resolves the names above an asset's location.
type LocationContext struct {
	LocationID   int    `json:"loc_id"`
	LocationName string `json:"loc_name"`
	BuildingID   int    `json:"bld_id"`
	BuildingName string `json:"bld_name"`
	OrgID        int    `json:"org_id"`
	OrgName      string `json:"org_name"`
}

// AssetDisciplines is the persisted discipline assignment of an asset.
type AssetDisciplines struct {
	AssetID              int  `json:"as_id"`
	LocationID           int  `json:"fk_loc_id"`
	PPMDisciplineID      *int `json:"fk_disc_id"`
	ReactiveDisciplineID *int `json:"fk_r_disc_id"`
}

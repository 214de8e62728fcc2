package domain

// Organization is the top of the estate hierarchy.
type Organization struct {
	ID          int    `json:"pk_org_id"`
	Name        string `json:"org_name"`
	Type        string `json:"org_type,omitempty"`
	Description string `json:"org_description,omitempty"`
	Address     string `json:"org_address,omitempty"`
	Contact     string `json:"org_contact,omitempty"`
	Email       string `json:"org_email,omitempty"`
	Phone       string `json:"org_phone,omitempty"`
}

// Building belongs to one Organization.
type Building struct {
	ID          int    `json:"pk_bld_id"`
	Name        string `json:"bld_name"`
	Address     string `json:"bld_address,omitempty"`
	Contact     string `json:"bld_contact,omitempty"`
	Email       string `json:"bld_email,omitempty"`
	Phone       string `json:"bld_phone,omitempty"`
	Floors      int    `json:"bld_floors,omitempty"`
	OpeningDate Date   `json:"bld_opening_date,omitzero"`
	OrgID       int    `json:"fk_org_id"`

	Organization *Organization `json:"organization,omitempty"`
}

// Location belongs to one Building and holds assets.
type Location struct {
	ID          int    `json:"pk_loc_id"`
	Name        string `json:"loc_name"`
	Description string `json:"loc_description,omitempty"`
	BuildingID  int    `json:"fk_bld_id"`

	Building *Building `json:"building,omitempty"`
}

package provider

import "ppmdesk.io/ppmdesk/internal/domain"

// Insert objects omit the primary key and empty optional columns so Hasura
// applies its column defaults.

func organizationColumns(o domain.Organization) Columns {
	cols := Columns{"org_name": o.Name}
	putString(cols, "org_type", o.Type)
	putString(cols, "org_description", o.Description)
	putString(cols, "org_address", o.Address)
	putString(cols, "org_contact", o.Contact)
	putString(cols, "org_email", o.Email)
	putString(cols, "org_phone", o.Phone)
	return cols
}

func buildingColumns(b domain.Building) Columns {
	cols := Columns{"bld_name": b.Name, "fk_org_id": b.OrgID}
	putString(cols, "bld_address", b.Address)
	putString(cols, "bld_contact", b.Contact)
	putString(cols, "bld_email", b.Email)
	putString(cols, "bld_phone", b.Phone)
	if b.Floors > 0 {
		cols["bld_floors"] = b.Floors
	}
	if !b.OpeningDate.IsZero() {
		cols["bld_opening_date"] = b.OpeningDate
	}
	return cols
}

func locationColumns(l domain.Location) Columns {
	cols := Columns{"loc_name": l.Name, "fk_bld_id": l.BuildingID}
	putString(cols, "loc_description", l.Description)
	return cols
}

func putString(cols Columns, key, v string) {
	if v != "" {
		cols[key] = v
	}
}

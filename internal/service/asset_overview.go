package service

import (
	"sort"

	"ppmdesk.io/ppmdesk/internal/domain"
)

// AssetRow is one row of the asset management grid: the overview view
// joined with the asset detail and its classification names.
type AssetRow struct {
	AssetID      int    `json:"as_id"`
	AssetName    string `json:"as_name"`
	LocationName string `json:"loc_name"`
	BuildingName string `json:"bld_name"`
	OrgName      string `json:"org_name"`

	Manufacturer     string      `json:"as_manufacturer,omitempty"`
	ModelName        string      `json:"as_model_name,omitempty"`
	SerialNum        string      `json:"as_serial_num,omitempty"`
	BusinessCritical bool        `json:"as_business_critical"`
	Status           bool        `json:"as_status"`
	Archived         bool        `json:"as_archived"`
	VerifiedStatus   bool        `json:"as_verified_status"`
	LastServiceDate  domain.Date `json:"as_last_service_date,omitzero"`
	NextServiceDate  domain.Date `json:"as_next_service_date,omitzero"`

	CategoryID   *int   `json:"fk_as_cat_id,omitempty"`
	CategoryName string `json:"as_cat_name,omitempty"`
	TypeName     string `json:"as_type_name,omitempty"`
	GroupName    string `json:"as_group_name,omitempty"`
}

type classification struct {
	category, typ, group string
}

// ProjectAssetOverview left-joins overview rows with details and the
// category hierarchy. Rows whose detail is marked deleted are dropped. A
// missing detail or category leaves those fields empty; a row without a
// detail counts as neither deleted nor archived.
func ProjectAssetOverview(overview []domain.AssetOverview, details []domain.Asset, categories []domain.AssetCategory) []AssetRow {
	byID := make(map[int]*domain.Asset, len(details))
	for i := range details {
		byID[details[i].ID] = &details[i]
	}

	classes := make(map[int]classification, len(categories))
	for _, c := range categories {
		cl := classification{category: c.Name}
		if c.Type != nil {
			cl.typ = c.Type.Name
			if c.Type.Group != nil {
				cl.group = c.Type.Group.Name
			}
		}
		classes[c.ID] = cl
	}

	rows := make([]AssetRow, 0, len(overview))
	for _, ov := range overview {
		row := AssetRow{
			AssetID:      ov.AssetID,
			AssetName:    ov.AssetName,
			LocationName: ov.LocationName,
			BuildingName: ov.BuildingName,
			OrgName:      ov.OrgName,
		}

		if d, ok := byID[ov.AssetID]; ok {
			if d.Deleted {
				continue
			}
			row.Manufacturer = d.Manufacturer
			row.ModelName = d.ModelName
			row.SerialNum = d.SerialNum
			row.BusinessCritical = d.BusinessCritical
			row.Status = d.Status
			row.Archived = d.Archived
			row.VerifiedStatus = d.VerifiedStatus
			row.LastServiceDate = d.LastServiceDate
			row.NextServiceDate = d.NextServiceDate

			if d.CategoryID != nil {
				id := *d.CategoryID
				row.CategoryID = &id
				if cl, ok := classes[id]; ok {
					row.CategoryName = cl.category
					row.TypeName = cl.typ
					row.GroupName = cl.group
				}
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// FilterArchived returns exactly the rows whose archived flag equals archived.
func FilterArchived(rows []AssetRow, archived bool) []AssetRow {
	out := make([]AssetRow, 0, len(rows))
	for _, r := range rows {
		if r.Archived == archived {
			out = append(out, r)
		}
	}
	return out
}

func sortAssetRows(rows []AssetRow) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].AssetID < rows[j].AssetID })
}

package service

import (
	"context"
	"fmt"
	"sort"

	"ppmdesk.io/ppmdesk/internal/domain"
)

// NotAvailable is shown for a missing discipline or supplier.
const NotAvailable = "N/A"

// ServicePlanRow is one row of the PPM data grid: a service plan at one
// building.
type ServicePlanRow struct {
	Key         int         `json:"ppm_bsp_key"`
	PlanID      int         `json:"ppm_id"`
	ServiceName string      `json:"ppm_service_name"`
	Description string      `json:"ppm_description,omitempty"`
	Standard    string      `json:"ppm_standard,omitempty"`
	Status      string      `json:"ppm_status,omitempty"`
	Type        string      `json:"ppm_type,omitempty"`
	Compliance  bool        `json:"compliance_ppm"`
	Cost        *float64    `json:"ppm_cost"`
	Frequency   string      `json:"ppm_frequency"`
	Schedule    domain.Date `json:"ppm_b_schedule_date"`

	DisciplineID   *int   `json:"fk_disc_id,omitempty"`
	DisciplineName string `json:"disc_name"`
	SupplierID     *int   `json:"fk_sup_id,omitempty"`
	SupplierName   string `json:"sup_name"`

	BuildingID   int    `json:"bld_id"`
	BuildingName string `json:"bld_name"`
	OrgName      string `json:"org_name"`
}

// ProjectServicePlanRows flat-maps plans into one row per building link,
// sorted by link key. Cost, frequency, supplier and schedule come from the
// link and fall back to the plan when the link leaves them unset.
func ProjectServicePlanRows(plans []domain.ServicePlan) []ServicePlanRow {
	var rows []ServicePlanRow
	for _, p := range plans {
		for _, b := range p.BuildingPlans {
			row := ServicePlanRow{
				Key:          b.Key,
				PlanID:       p.ID,
				ServiceName:  p.ServiceName,
				Description:  p.Description,
				Standard:     p.Standard,
				Status:       p.Status,
				Type:         p.Type,
				Compliance:   p.CompliancePPM,
				Cost:         b.Cost,
				Frequency:    b.Frequency,
				Schedule:     b.ScheduleDate,
				DisciplineID: p.DisciplineID,
				SupplierID:   b.SupplierID,
				BuildingID:   b.BuildingID,
			}
			if row.Cost == nil {
				row.Cost = p.Cost
			}
			if row.Frequency == "" {
				row.Frequency = p.Frequency
			}
			if row.Schedule.IsZero() {
				row.Schedule = p.Schedule
			}

			row.DisciplineName = orNA(p.DisciplineName())
			supplier := b.Supplier
			if supplier == nil && b.SupplierID == nil {
				supplier = p.Supplier
				row.SupplierID = p.SupplierID
			}
			if supplier != nil {
				row.SupplierName = orNA(supplier.Name)
			} else {
				row.SupplierName = NotAvailable
			}

			if bld := b.Building; bld != nil {
				row.BuildingName = bld.Name
				if bld.Organization != nil {
					row.OrgName = bld.Organization.Name
				}
			}
			rows = append(rows, row)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
	if rows == nil {
		rows = []ServicePlanRow{}
	}
	return rows
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

// Rows loads and projects the PPM data grid.
func (s *ServicePlanService) Rows(ctx context.Context) ([]ServicePlanRow, error) {
	plans, err := s.plans.ServicePlanRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("load service plan rows: %w", err)
	}
	return ProjectServicePlanRows(plans), nil
}

// RowIndex resolves grid rows by link key.
type RowIndex map[int]ServicePlanRow

// IndexRows indexes rows by ppm_bsp_key.
func IndexRows(rows []ServicePlanRow) RowIndex {
	idx := make(RowIndex, len(rows))
	for _, r := range rows {
		idx[r.Key] = r
	}
	return idx
}

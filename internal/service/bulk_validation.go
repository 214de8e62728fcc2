package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"ppmdesk.io/ppmdesk/internal/domain"
	apperrors "ppmdesk.io/ppmdesk/internal/pkg/errors"
)

// BulkField is a field a bulk revision may change.
type BulkField string

const (
	BulkFieldCost      BulkField = "cost"
	BulkFieldSchedule  BulkField = "schedule"
	BulkFieldFrequency BulkField = "frequency"
	BulkFieldSupplier  BulkField = "supplier"
)

// FrequencyUnits are the accepted frequency units.
var FrequencyUnits = []string{"days", "weeks", "months", "years"}

var (
	costPattern     = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	schedulePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	amountPattern   = regexp.MustCompile(`^\d+$`)
)

// BulkValue is a validated revision: the building service plan column to
// set and the value to persist.
type BulkValue struct {
	Column string
	Value  any
}

// ResolveBulkValue validates value for field. unit is only read for
// frequency. Supplier names resolve by exact match against suppliers.
func ResolveBulkValue(field BulkField, value, unit string, suppliers []domain.Supplier) (BulkValue, error) {
	switch field {
	case BulkFieldCost:
		if !costPattern.MatchString(value) {
			return BulkValue{}, fieldError("value", "cost", "cost must be a number with at most two decimal places")
		}
		// json.Number keeps the decimal text exact on the wire to the
		// numeric column.
		return BulkValue{Column: "ppm_cost", Value: json.Number(value)}, nil

	case BulkFieldSchedule:
		if !schedulePattern.MatchString(value) {
			return BulkValue{}, fieldError("value", "datetime", "schedule must be a YYYY-MM-DD date")
		}
		d, err := domain.ParseDate(value)
		if err != nil {
			return BulkValue{}, fieldError("value", "datetime", "schedule is not a calendar date")
		}
		return BulkValue{Column: "ppm_b_schedule_date", Value: d}, nil

	case BulkFieldFrequency:
		if !amountPattern.MatchString(value) {
			return BulkValue{}, fieldError("value", "numeric", "frequency amount must be a whole number")
		}
		amount, err := strconv.Atoi(value)
		if err != nil || amount <= 0 {
			return BulkValue{}, fieldError("value", "gt", "frequency amount must be greater than 0")
		}
		if !isFrequencyUnit(unit) {
			return BulkValue{}, fieldError("frequency_unit", "oneof",
				"frequency_unit must be one of ["+strings.Join(FrequencyUnits, " ")+"]")
		}
		return BulkValue{Column: "ppm_frequency", Value: fmt.Sprintf("%d %s", amount, unit)}, nil

	case BulkFieldSupplier:
		if strings.TrimSpace(value) == "" {
			return BulkValue{}, fieldError("value", "required", "supplier name is required")
		}
		for _, s := range suppliers {
			if s.Name == value {
				return BulkValue{Column: "fk_sup_id", Value: s.ID}, nil
			}
		}
		return BulkValue{}, apperrors.Unprocessable(apperrors.CodeSupplierNotFound, "no supplier named "+strconv.Quote(value)).
			WithParams(map[string]interface{}{"sup_name": value})

	default:
		return BulkValue{}, fieldError("field", "oneof", "field must be one of [cost schedule frequency supplier]")
	}
}

func isFrequencyUnit(unit string) bool {
	for _, u := range FrequencyUnits {
		if u == unit {
			return true
		}
	}
	return false
}

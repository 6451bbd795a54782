package http

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// evaluateSchema checks request shape and types; business ranges are left
// to service.ValidateInput so all range errors share one message catalogue.
const evaluateSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["salary", "assets", "commuteDistanceOneWay", "commuteDaysPerWeek", "carPrice", "financing"],
  "properties": {
    "salary":                 {"type": "number"},
    "assets":                 {"type": "number"},
    "monthlyFixedExpense":    {"type": "number"},
    "commuteDistanceOneWay":  {"type": "number"},
    "commuteDaysPerWeek":     {"type": "integer"},
    "weekendTripsPerMonth":   {"type": "integer"},
    "weekendTripRoundTripKm": {"type": "number"},
    "carPrice":               {"type": "number"},
    "financing":              {"type": "string", "enum": ["cash", "installment"]},
    "fuelPricePerLiter":      {"type": ["number", "null"]},
    "installment": {
      "type": ["object", "null"],
      "additionalProperties": false,
      "required": ["downPaymentPercent", "termMonths", "annualRatePercent"],
      "properties": {
        "downPaymentPercent": {"type": "number"},
        "termMonths":         {"type": "integer"},
        "annualRatePercent":  {"type": "number"}
      }
    },
    "overrides": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "fuelEfficiencyKmPerLiter": {"type": ["number", "null"]},
        "insuranceYearly":          {"type": ["number", "null"]},
        "taxYearly":                {"type": ["number", "null"]},
        "maintenanceYearly":        {"type": ["number", "null"]},
        "parkingMonthly":           {"type": ["number", "null"]},
        "miscMonthly":              {"type": ["number", "null"]}
      }
    }
  }
}`

const loanSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["principal", "termMonths", "annualRatePercent"],
  "properties": {
    "principal":         {"type": "number"},
    "termMonths":        {"type": "integer"},
    "annualRatePercent": {"type": "number"}
  }
}`

// requestSchema is a compiled JSON schema for one request body.
type requestSchema struct {
	schema *gojsonschema.Schema
}

func mustSchema(src string) *requestSchema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("compile request schema: %v", err))
	}
	return &requestSchema{schema: s}
}

var (
	evaluateRequestSchema = mustSchema(evaluateSchema)
	loanRequestSchema     = mustSchema(loanSchema)
)

// check returns nil when body conforms, else a field to message map. A body
// that is not JSON at all is reported under "body".
func (s *requestSchema) check(body []byte) map[string]string {
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return map[string]string{"body": "요청 본문이 올바른 JSON이 아닙니다"}
	}
	if result.Valid() {
		return nil
	}

	fields := make(map[string]string, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		switch desc.Type() {
		case "required", "additional_property_not_allowed":
			if prop, ok := desc.Details()["property"].(string); ok {
				if field == gojsonschema.STRING_CONTEXT_ROOT {
					field = prop
				} else {
					field = field + "." + prop
				}
			}
		}
		if _, exists := fields[field]; !exists {
			fields[field] = desc.Description()
		}
	}
	return fields
}

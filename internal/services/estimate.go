package services

import (
	"math"
	"strings"
)

// Repair estimates are display-only: they are quoted to the customer on the
// booking page but never validated against when an appointment is created.
// The workshop prices the job in person.

var repairBaseRates = map[string]float64{
	"screen":    89,
	"battery":   59,
	"back":      99,
	"connector": 69,
	"camera":    79,
}

const repairDefaultRate = 49

// EstimateRepair returns a rounded quote: base rate per issue type times a
// device-generation multiplier. Newer generations cost more to source parts
// for; the cascade intentionally lets "iPhone 13 Pro" match "13".
func EstimateRepair(device, issue string) float64 {
	base, ok := repairBaseRates[strings.ToLower(strings.TrimSpace(issue))]
	if !ok {
		base = repairDefaultRate
	}

	multiplier := 1.0
	if strings.Contains(device, "12") {
		multiplier = 1.1
	}
	if strings.Contains(device, "13") {
		multiplier = 1.2
	}
	if strings.Contains(device, "14") {
		multiplier = 1.4
	}
	if strings.Contains(device, "15") {
		multiplier = 1.6
	}

	return math.Round(base * multiplier)
}

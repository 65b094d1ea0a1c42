package rules

import (
	"time"

	"github.com/mamynavalonar-dev/FLEETPROJECT/internal/model"
)

// Violation messages. These are stable strings: they are persisted as alerts
// and matched by the dashboards.
const (
	MsgNegativeDistance   = "negative distance since last refill"
	MsgDailyDistanceLimit = "daily distance exceeds limit"
	MsgConsumptionLow     = "consumption below expected range"
	MsgConsumptionHigh    = "consumption above expected range"
)

// Thresholds are the numeric business policy knobs. Defaults mirror the
// fleet's operating rules: a purchase of 200000 Ar or more is a full refill,
// 120 km is the daily ceiling, and expected consumption sits in [15, 16)
// L/100km.
type Thresholds struct {
	RefillAmount   float64
	DailyKmLimit   float64
	ConsumptionMin float64
	ConsumptionMax float64
}

// DefaultThresholds returns the fleet's standard policy values.
func DefaultThresholds() Thresholds {
	return Thresholds{
		RefillAmount:   200000,
		DailyKmLimit:   120,
		ConsumptionMin: 15,
		ConsumptionMax: 16,
	}
}

// Engine derives computed fields and evaluates business rules against a
// canonical record. It never fails: every call enriches the record
// best-effort and returns the violation list, possibly empty.
type Engine struct {
	th  Thresholds
	now func() time.Time
}

// NewEngine creates an engine with the given thresholds.
func NewEngine(th Thresholds) *Engine {
	return &Engine{th: th, now: time.Now}
}

// NewEngineWithClock creates an engine with an injectable clock, used by the
// date-defaulting fallback.
func NewEngineWithClock(th Thresholds, now func() time.Time) *Engine {
	return &Engine{th: th, now: now}
}

// Evaluate enriches rec in place and returns the rule violations. Each
// derivation runs only when its inputs are present and the target is still
// absent, so values supplied by the workbook win over computed ones.
func (e *Engine) Evaluate(rec *model.FuelRecord) []string {
	var violations []string

	if rec.KmSinceRefill == nil && rec.OdometerCurrent != nil && rec.OdometerPrevious != nil {
		d := *rec.OdometerCurrent - *rec.OdometerPrevious
		rec.KmSinceRefill = &d
	}
	if rec.KmSinceRefill != nil && *rec.KmSinceRefill < 0 {
		violations = append(violations, MsgNegativeDistance)
	}

	if rec.KmEnd == nil && rec.KmStart != nil && rec.KmDaily != nil {
		end := *rec.KmStart + *rec.KmDaily
		rec.KmEnd = &end
	}

	if rec.ConsumptionPer100 == nil && rec.Liters != nil &&
		rec.KmSinceRefill != nil && *rec.KmSinceRefill > 0 {
		c := *rec.Liters / *rec.KmSinceRefill * 100
		rec.ConsumptionPer100 = &c
	}

	if rec.Amount != nil {
		refill := *rec.Amount >= e.th.RefillAmount
		rec.IsRefill = &refill
	}

	if rec.KmDaily != nil && *rec.KmDaily >= e.th.DailyKmLimit {
		violations = append(violations, MsgDailyDistanceLimit)
	}
	if rec.ConsumptionPer100 != nil {
		if *rec.ConsumptionPer100 < e.th.ConsumptionMin {
			violations = append(violations, MsgConsumptionLow)
		}
		if *rec.ConsumptionPer100 >= e.th.ConsumptionMax {
			violations = append(violations, MsgConsumptionHigh)
		}
	}

	// Deliberate fallback, not a skip: rows without a resolvable date are
	// stamped with the processing date.
	if rec.OperationDate == nil {
		now := e.now()
		rec.OperationDate = &now
	}

	return violations
}

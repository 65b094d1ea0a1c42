package rules

import (
	"math"
	"testing"
	"time"

	"github.com/mamynavalonar-dev/FLEETPROJECT/internal/model"
)

func fp(v float64) *float64 { return &v }

func hasViolation(violations []string, msg string) bool {
	for _, v := range violations {
		if v == msg {
			return true
		}
	}
	return false
}

func TestEvaluate_DistanceAndConsumption(t *testing.T) {
	t.Parallel()

	e := NewEngine(DefaultThresholds())
	rec := &model.FuelRecord{
		OdometerPrevious: fp(10000),
		OdometerCurrent:  fp(10450),
		Liters:           fp(40),
	}

	violations := e.Evaluate(rec)

	if rec.KmSinceRefill == nil || *rec.KmSinceRefill != 450 {
		t.Fatalf("unexpected distance: %v", rec.KmSinceRefill)
	}
	if rec.ConsumptionPer100 == nil || math.Abs(*rec.ConsumptionPer100-40.0/450.0*100) > 1e-9 {
		t.Fatalf("unexpected consumption: %v", rec.ConsumptionPer100)
	}
	if !hasViolation(violations, MsgConsumptionLow) {
		t.Fatalf("expected %q, got %v", MsgConsumptionLow, violations)
	}
	if hasViolation(violations, MsgConsumptionHigh) {
		t.Fatalf("unexpected %q", MsgConsumptionHigh)
	}
}

func TestEvaluate_DailyDistanceAndKmEnd(t *testing.T) {
	t.Parallel()

	e := NewEngine(DefaultThresholds())
	rec := &model.FuelRecord{
		KmStart: fp(100),
		KmDaily: fp(130),
		Liters:  fp(20),
	}

	violations := e.Evaluate(rec)

	if rec.KmEnd == nil || *rec.KmEnd != 230 {
		t.Fatalf("unexpected km end: %v", rec.KmEnd)
	}
	if !hasViolation(violations, MsgDailyDistanceLimit) {
		t.Fatalf("expected %q, got %v", MsgDailyDistanceLimit, violations)
	}
}

func TestEvaluate_KmEndNotOverwritten(t *testing.T) {
	t.Parallel()

	e := NewEngine(DefaultThresholds())
	rec := &model.FuelRecord{
		KmStart: fp(100),
		KmDaily: fp(30),
		KmEnd:   fp(140),
	}

	e.Evaluate(rec)

	if *rec.KmEnd != 140 {
		t.Fatalf("workbook value should win: %v", *rec.KmEnd)
	}
}

func TestEvaluate_RefillFlag(t *testing.T) {
	t.Parallel()

	e := NewEngine(DefaultThresholds())

	rec := &model.FuelRecord{Amount: fp(250000)}
	e.Evaluate(rec)
	if rec.IsRefill == nil || !*rec.IsRefill {
		t.Fatalf("250000 should be a refill: %v", rec.IsRefill)
	}

	rec = &model.FuelRecord{Amount: fp(150000)}
	e.Evaluate(rec)
	if rec.IsRefill == nil || *rec.IsRefill {
		t.Fatalf("150000 should not be a refill: %v", rec.IsRefill)
	}

	rec = &model.FuelRecord{}
	e.Evaluate(rec)
	if rec.IsRefill != nil {
		t.Fatalf("no amount, no flag: %v", rec.IsRefill)
	}
}

func TestEvaluate_NegativeDistance(t *testing.T) {
	t.Parallel()

	e := NewEngine(DefaultThresholds())
	rec := &model.FuelRecord{
		OdometerPrevious: fp(500),
		OdometerCurrent:  fp(400),
		Liters:           fp(30),
	}

	violations := e.Evaluate(rec)

	if rec.KmSinceRefill == nil || *rec.KmSinceRefill != -100 {
		t.Fatalf("unexpected distance: %v", rec.KmSinceRefill)
	}
	if !hasViolation(violations, MsgNegativeDistance) {
		t.Fatalf("expected %q, got %v", MsgNegativeDistance, violations)
	}
	if rec.ConsumptionPer100 != nil {
		t.Fatalf("no consumption from a negative distance: %v", rec.ConsumptionPer100)
	}
}

func TestEvaluate_ConsumptionHigh(t *testing.T) {
	t.Parallel()

	e := NewEngine(DefaultThresholds())
	rec := &model.FuelRecord{ConsumptionPer100: fp(17)}

	violations := e.Evaluate(rec)
	if !hasViolation(violations, MsgConsumptionHigh) {
		t.Fatalf("expected %q, got %v", MsgConsumptionHigh, violations)
	}
}

func TestEvaluate_DateDefaultsToProcessingDate(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	e := NewEngineWithClock(DefaultThresholds(), func() time.Time { return fixed })

	rec := &model.FuelRecord{Liters: fp(10)}
	e.Evaluate(rec)

	if rec.OperationDate == nil || !rec.OperationDate.Equal(fixed) {
		t.Fatalf("date should default to the processing date: %v", rec.OperationDate)
	}

	// A supplied date is kept.
	supplied := time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)
	rec = &model.FuelRecord{OperationDate: &supplied}
	e.Evaluate(rec)
	if !rec.OperationDate.Equal(supplied) {
		t.Fatalf("supplied date should be kept: %v", rec.OperationDate)
	}
}

func TestEvaluate_NeverFails(t *testing.T) {
	t.Parallel()

	e := NewEngine(DefaultThresholds())
	violations := e.Evaluate(&model.FuelRecord{})
	if len(violations) != 0 {
		t.Fatalf("empty record should have no violations: %v", violations)
	}
}

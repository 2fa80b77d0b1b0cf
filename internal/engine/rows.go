package engine

import (
	"time"

	"github.com/rshade/wellco2/internal/emissions"
)

// BaselineCO2Row is the baseline CO2 of one step on one day.
type BaselineCO2Row struct {
	StepID   int       `json:"step_id"`
	Datetime time.Time `json:"datetime"`
	emissions.BaselineCO2Data
}

// BaselineNOXRow is the baseline NOX of one step on one day.
type BaselineNOXRow struct {
	StepID   int       `json:"step_id"`
	Datetime time.Time `json:"datetime"`
	emissions.BaselineNOXData
}

// TargetCO2Row is the target CO2 of one step on one day.
type TargetCO2Row struct {
	StepID   int       `json:"step_id"`
	Datetime time.Time `json:"datetime"`
	emissions.TargetCO2Data
}

// TargetNOXRow is the target NOX of one step on one day.
type TargetNOXRow struct {
	StepID   int       `json:"step_id"`
	Datetime time.Time `json:"datetime"`
	emissions.TargetNOXData
}

// CO2Totals is a CO2 breakdown without initiative detail.
type CO2Totals struct {
	Asset                float64 `json:"asset"`
	Boilers              float64 `json:"boilers"`
	Vessels              float64 `json:"vessels"`
	Helicopters          float64 `json:"helicopters"`
	Materials            float64 `json:"materials"`
	ExternalEnergySupply float64 `json:"external_energy_supply"`
}

// Total sums all components.
func (c CO2Totals) Total() float64 {
	return c.Asset + c.Boilers + c.Vessels + c.Helicopters + c.Materials + c.ExternalEnergySupply
}

func (c CO2Totals) add(o CO2Totals) CO2Totals {
	return CO2Totals{
		Asset:                c.Asset + o.Asset,
		Boilers:              c.Boilers + o.Boilers,
		Vessels:              c.Vessels + o.Vessels,
		Helicopters:          c.Helicopters + o.Helicopters,
		Materials:            c.Materials + o.Materials,
		ExternalEnergySupply: c.ExternalEnergySupply + o.ExternalEnergySupply,
	}
}

// NOXTotals is a NOX breakdown without initiative detail.
type NOXTotals struct {
	Asset                float64 `json:"asset"`
	Boilers              float64 `json:"boilers"`
	Vessels              float64 `json:"vessels"`
	Helicopters          float64 `json:"helicopters"`
	ExternalEnergySupply float64 `json:"external_energy_supply"`
}

// Total sums all components.
func (n NOXTotals) Total() float64 {
	return n.Asset + n.Boilers + n.Vessels + n.Helicopters + n.ExternalEnergySupply
}

func (n NOXTotals) add(o NOXTotals) NOXTotals {
	return NOXTotals{
		Asset:                n.Asset + o.Asset,
		Boilers:              n.Boilers + o.Boilers,
		Vessels:              n.Vessels + o.Vessels,
		Helicopters:          n.Helicopters + o.Helicopters,
		ExternalEnergySupply: n.ExternalEnergySupply + o.ExternalEnergySupply,
	}
}

// CO2Row is implemented by the baseline and target CO2 rows.
type CO2Row interface {
	When() time.Time
	CO2() CO2Totals
}

// NOXRow is implemented by the baseline and target NOX rows.
type NOXRow interface {
	When() time.Time
	NOX() NOXTotals
}

// When returns the row's datetime.
func (r BaselineCO2Row) When() time.Time { return r.Datetime }

// When returns the row's datetime.
func (r BaselineNOXRow) When() time.Time { return r.Datetime }

// When returns the row's datetime.
func (r TargetCO2Row) When() time.Time { return r.Datetime }

// When returns the row's datetime.
func (r TargetNOXRow) When() time.Time { return r.Datetime }

// CO2 returns the row's breakdown.
func (r BaselineCO2Row) CO2() CO2Totals {
	return CO2Totals{
		Asset:                r.Asset,
		Boilers:              r.Boilers,
		Vessels:              r.Vessels,
		Helicopters:          r.Helicopters,
		Materials:            r.Materials,
		ExternalEnergySupply: r.ExternalEnergySupply,
	}
}

// CO2 returns the row's breakdown.
func (r TargetCO2Row) CO2() CO2Totals {
	return CO2Totals{
		Asset:                r.Asset,
		Boilers:              r.Boilers,
		Vessels:              r.Vessels,
		Helicopters:          r.Helicopters,
		Materials:            r.Materials,
		ExternalEnergySupply: r.ExternalEnergySupply,
	}
}

// NOX returns the row's breakdown.
func (r BaselineNOXRow) NOX() NOXTotals {
	return NOXTotals{
		Asset:                r.Asset,
		Boilers:              r.Boilers,
		Vessels:              r.Vessels,
		Helicopters:          r.Helicopters,
		ExternalEnergySupply: r.ExternalEnergySupply,
	}
}

// NOX returns the row's breakdown.
func (r TargetNOXRow) NOX() NOXTotals {
	return NOXTotals{
		Asset:                r.Asset,
		Boilers:              r.Boilers,
		Vessels:              r.Vessels,
		Helicopters:          r.Helicopters,
		ExternalEnergySupply: r.ExternalEnergySupply,
	}
}

package measure

import (
	"encoding/json"
	"fmt"
	"math"
)

// Unit constrains a measurement to one quantity's closed unit set. Units are
// definitional: no conversion happens anywhere in the catalog, and a value is
// only ever read back with the unit tag it was stored with.
type Unit interface {
	~string
	IsValid() bool
}

type VolumeUnit string

const (
	Liters  VolumeUnit = "liters"
	Gallons VolumeUnit = "gallons"
)

func (u VolumeUnit) IsValid() bool {
	switch u {
	case Liters, Gallons:
		return true
	}
	return false
}

type PowerUnit string

const (
	Horsepower PowerUnit = "horsepower"
	Kilowatts  PowerUnit = "kilowatts"
)

func (u PowerUnit) IsValid() bool {
	switch u {
	case Horsepower, Kilowatts:
		return true
	}
	return false
}

type TorqueUnit string

const (
	NewtonMeters   TorqueUnit = "newtonMeters"
	PoundForceFeet TorqueUnit = "poundForceFeet"
)

func (u TorqueUnit) IsValid() bool {
	switch u {
	case NewtonMeters, PoundForceFeet:
		return true
	}
	return false
}

type DurationUnit string

const Seconds DurationUnit = "seconds"

func (u DurationUnit) IsValid() bool {
	return u == Seconds
}

type SpeedUnit string

const (
	KilometersPerHour SpeedUnit = "kilometersPerHour"
	MilesPerHour      SpeedUnit = "milesPerHour"
)

func (u SpeedUnit) IsValid() bool {
	switch u {
	case KilometersPerHour, MilesPerHour:
		return true
	}
	return false
}

type LengthUnit string

const (
	Millimeters LengthUnit = "millimeters"
	Centimeters LengthUnit = "centimeters"
	Inches      LengthUnit = "inches"
	Meters      LengthUnit = "meters"
)

func (u LengthUnit) IsValid() bool {
	switch u {
	case Millimeters, Centimeters, Inches, Meters:
		return true
	}
	return false
}

type MassUnit string

const (
	Kilograms MassUnit = "kilograms"
	Pounds    MassUnit = "pounds"
)

func (u MassUnit) IsValid() bool {
	switch u {
	case Kilograms, Pounds:
		return true
	}
	return false
}

type FuelEfficiencyUnit string

const (
	MilesPerGallon FuelEfficiencyUnit = "milesPerGallon"
	LitersPer100km FuelEfficiencyUnit = "litersPer100km"
)

func (u FuelEfficiencyUnit) IsValid() bool {
	switch u {
	case MilesPerGallon, LitersPer100km:
		return true
	}
	return false
}

// Measurement pairs a finite magnitude with a unit tag from the quantity's
// closed set. Equality is value-based.
type Measurement[U Unit] struct {
	Value float64 `json:"value"`
	Unit  U       `json:"unit"`
}

// Aliases matching the catalog's quantity names.
type (
	Volume         = Measurement[VolumeUnit]
	Power          = Measurement[PowerUnit]
	Torque         = Measurement[TorqueUnit]
	Duration       = Measurement[DurationUnit]
	Speed          = Measurement[SpeedUnit]
	Length         = Measurement[LengthUnit]
	Mass           = Measurement[MassUnit]
	FuelEfficiency = Measurement[FuelEfficiencyUnit]
)

// New validates the value and unit before constructing the measurement.
func New[U Unit](value float64, unit U) (Measurement[U], error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Measurement[U]{}, fmt.Errorf("measurement value must be finite, got %v", value)
	}
	if !unit.IsValid() {
		return Measurement[U]{}, fmt.Errorf("unknown unit %q", string(unit))
	}
	return Measurement[U]{Value: value, Unit: unit}, nil
}

// UnmarshalJSON rejects unknown unit tags and non-finite values instead of
// coercing them.
func (m *Measurement[U]) UnmarshalJSON(data []byte) error {
	var raw struct {
		Value *float64 `json:"value"`
		Unit  string   `json:"unit"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Value == nil {
		return fmt.Errorf("measurement value is required")
	}
	parsed, err := New(*raw.Value, U(raw.Unit))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

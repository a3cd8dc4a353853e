package domain

import (
	"fmt"
	"math"

	"github.com/carinspectinator/car-service/internal/measure"
)

// DocData flattens the car into the stored document shape: camelCase keys,
// enums as their string tag, measurements as value/unit pairs. The identifier
// is excluded (it lives in the document key) and the transient modelUrl is
// never written.
func (c *Car) DocData() map[string]any {
	data := map[string]any{
		"make":  c.Make,
		"model": c.Model,
	}
	putString(data, "blurb", c.Blurb)
	putString(data, "iconAssetName", c.IconAssetName)
	if c.Year != nil {
		data["year"] = *c.Year
	}
	if c.BodyStyle != nil {
		data["bodyStyle"] = string(*c.BodyStyle)
	}
	putString(data, "exteriorColor", c.ExteriorColor)
	putString(data, "interiorColor", c.InteriorColor)
	putString(data, "interiorPanoramaAssetName", c.InteriorPanoramaAssetName)
	putString(data, "volumeId", c.VolumeID)
	if c.Engine != nil {
		data["engine"] = c.Engine.docData()
	}
	if c.Performance != nil {
		data["performance"] = c.Performance.docData()
	}
	if c.Dimensions != nil {
		data["dimensions"] = c.Dimensions.docData()
	}
	if c.Drivetrain != nil {
		data["drivetrain"] = c.Drivetrain.docData()
	}
	if len(c.OtherSpecs) > 0 {
		specs := make(map[string]any, len(c.OtherSpecs))
		for k, v := range c.OtherSpecs {
			specs[k] = v
		}
		data["otherSpecs"] = specs
	}
	return data
}

func (e *Engine) docData() map[string]any {
	data := map[string]any{}
	putMeasurement(data, "displacement", e.Displacement)
	if e.Cylinders != nil {
		data["cylinders"] = *e.Cylinders
	}
	putString(data, "configuration", e.Configuration)
	if e.Fuel != nil {
		data["fuel"] = string(*e.Fuel)
	}
	if e.Induction != nil {
		data["induction"] = string(*e.Induction)
	}
	putString(data, "code", e.Code)
	return data
}

func (p *Performance) docData() map[string]any {
	data := map[string]any{}
	putMeasurement(data, "horsepower", p.Horsepower)
	putMeasurement(data, "torque", p.Torque)
	putMeasurement(data, "zeroToSixty", p.ZeroToSixty)
	putMeasurement(data, "topSpeed", p.TopSpeed)
	putMeasurement(data, "epaCity", p.EPACity)
	putMeasurement(data, "epaHighway", p.EPAHighway)
	return data
}

func (d *Dimensions) docData() map[string]any {
	data := map[string]any{}
	putMeasurement(data, "wheelbase", d.Wheelbase)
	putMeasurement(data, "length", d.Length)
	putMeasurement(data, "width", d.Width)
	putMeasurement(data, "height", d.Height)
	putMeasurement(data, "curbWeight", d.CurbWeight)
	putMeasurement(data, "cargoRearSeatsUp", d.CargoRearSeatsUp)
	putMeasurement(data, "fuelTank", d.FuelTank)
	return data
}

func (d *Drivetrain) docData() map[string]any {
	data := map[string]any{}
	if d.Layout != nil {
		data["layout"] = string(*d.Layout)
	}
	putString(data, "differential", d.Differential)
	if d.Transmission != nil {
		data["transmission"] = string(*d.Transmission)
	}
	if d.Gears != nil {
		data["gears"] = *d.Gears
	}
	return data
}

func putString(data map[string]any, key, value string) {
	if value != "" {
		data[key] = value
	}
}

func putMeasurement[U measure.Unit](data map[string]any, key string, m *measure.Measurement[U]) {
	if m != nil {
		data[key] = map[string]any{
			"value": m.Value,
			"unit":  string(m.Unit),
		}
	}
}

// CarFromDoc reconstructs a car from a stored document. The identifier comes
// from the document key, never the payload. Every field is type-checked and
// enum tags outside the declared sets are rejected, so a malformed document
// fails decoding instead of leaking through.
func CarFromDoc(id string, data map[string]any) (Car, error) {
	c := Car{ID: id}

	var err error
	if c.Make, err = getString(data, "make"); err != nil {
		return Car{}, err
	}
	if c.Model, err = getString(data, "model"); err != nil {
		return Car{}, err
	}
	if c.Blurb, err = getString(data, "blurb"); err != nil {
		return Car{}, err
	}
	if c.IconAssetName, err = getString(data, "iconAssetName"); err != nil {
		return Car{}, err
	}
	if c.Year, err = getInt(data, "year"); err != nil {
		return Car{}, err
	}
	if c.BodyStyle, err = getEnum[BodyStyle](data, "bodyStyle"); err != nil {
		return Car{}, err
	}
	if c.ExteriorColor, err = getString(data, "exteriorColor"); err != nil {
		return Car{}, err
	}
	if c.InteriorColor, err = getString(data, "interiorColor"); err != nil {
		return Car{}, err
	}
	if c.InteriorPanoramaAssetName, err = getString(data, "interiorPanoramaAssetName"); err != nil {
		return Car{}, err
	}
	if c.VolumeID, err = getString(data, "volumeId"); err != nil {
		return Car{}, err
	}
	if c.Engine, err = engineFromDoc(data["engine"]); err != nil {
		return Car{}, err
	}
	if c.Performance, err = performanceFromDoc(data["performance"]); err != nil {
		return Car{}, err
	}
	if c.Dimensions, err = dimensionsFromDoc(data["dimensions"]); err != nil {
		return Car{}, err
	}
	if c.Drivetrain, err = drivetrainFromDoc(data["drivetrain"]); err != nil {
		return Car{}, err
	}
	if c.OtherSpecs, err = getStringMap(data, "otherSpecs"); err != nil {
		return Car{}, err
	}

	if err := c.Validate(); err != nil {
		return Car{}, err
	}
	return c, nil
}

func engineFromDoc(raw any) (*Engine, error) {
	data, err := nestedMap(raw, "engine")
	if data == nil || err != nil {
		return nil, err
	}
	e := &Engine{}
	if e.Displacement, err = getMeasurement[measure.VolumeUnit](data, "engine.displacement", "displacement"); err != nil {
		return nil, err
	}
	if e.Cylinders, err = getIntField(data, "engine.cylinders", "cylinders"); err != nil {
		return nil, err
	}
	if e.Configuration, err = getStringField(data, "engine.configuration", "configuration"); err != nil {
		return nil, err
	}
	if e.Fuel, err = getEnumField[FuelType](data, "engine.fuel", "fuel"); err != nil {
		return nil, err
	}
	if e.Induction, err = getEnumField[Induction](data, "engine.induction", "induction"); err != nil {
		return nil, err
	}
	if e.Code, err = getStringField(data, "engine.code", "code"); err != nil {
		return nil, err
	}
	return e, nil
}

func performanceFromDoc(raw any) (*Performance, error) {
	data, err := nestedMap(raw, "performance")
	if data == nil || err != nil {
		return nil, err
	}
	p := &Performance{}
	if p.Horsepower, err = getMeasurement[measure.PowerUnit](data, "performance.horsepower", "horsepower"); err != nil {
		return nil, err
	}
	if p.Torque, err = getMeasurement[measure.TorqueUnit](data, "performance.torque", "torque"); err != nil {
		return nil, err
	}
	if p.ZeroToSixty, err = getMeasurement[measure.DurationUnit](data, "performance.zeroToSixty", "zeroToSixty"); err != nil {
		return nil, err
	}
	if p.TopSpeed, err = getMeasurement[measure.SpeedUnit](data, "performance.topSpeed", "topSpeed"); err != nil {
		return nil, err
	}
	if p.EPACity, err = getMeasurement[measure.FuelEfficiencyUnit](data, "performance.epaCity", "epaCity"); err != nil {
		return nil, err
	}
	if p.EPAHighway, err = getMeasurement[measure.FuelEfficiencyUnit](data, "performance.epaHighway", "epaHighway"); err != nil {
		return nil, err
	}
	return p, nil
}

func dimensionsFromDoc(raw any) (*Dimensions, error) {
	data, err := nestedMap(raw, "dimensions")
	if data == nil || err != nil {
		return nil, err
	}
	d := &Dimensions{}
	if d.Wheelbase, err = getMeasurement[measure.LengthUnit](data, "dimensions.wheelbase", "wheelbase"); err != nil {
		return nil, err
	}
	if d.Length, err = getMeasurement[measure.LengthUnit](data, "dimensions.length", "length"); err != nil {
		return nil, err
	}
	if d.Width, err = getMeasurement[measure.LengthUnit](data, "dimensions.width", "width"); err != nil {
		return nil, err
	}
	if d.Height, err = getMeasurement[measure.LengthUnit](data, "dimensions.height", "height"); err != nil {
		return nil, err
	}
	if d.CurbWeight, err = getMeasurement[measure.MassUnit](data, "dimensions.curbWeight", "curbWeight"); err != nil {
		return nil, err
	}
	if d.CargoRearSeatsUp, err = getMeasurement[measure.VolumeUnit](data, "dimensions.cargoRearSeatsUp", "cargoRearSeatsUp"); err != nil {
		return nil, err
	}
	if d.FuelTank, err = getMeasurement[measure.VolumeUnit](data, "dimensions.fuelTank", "fuelTank"); err != nil {
		return nil, err
	}
	return d, nil
}

func drivetrainFromDoc(raw any) (*Drivetrain, error) {
	data, err := nestedMap(raw, "drivetrain")
	if data == nil || err != nil {
		return nil, err
	}
	d := &Drivetrain{}
	if d.Layout, err = getEnumField[DriveLayout](data, "drivetrain.layout", "layout"); err != nil {
		return nil, err
	}
	if d.Differential, err = getStringField(data, "drivetrain.differential", "differential"); err != nil {
		return nil, err
	}
	if d.Transmission, err = getEnumField[Transmission](data, "drivetrain.transmission", "transmission"); err != nil {
		return nil, err
	}
	if d.Gears, err = getIntField(data, "drivetrain.gears", "gears"); err != nil {
		return nil, err
	}
	return d, nil
}

func nestedMap(raw any, field string) (map[string]any, error) {
	if raw == nil {
		return nil, nil
	}
	data, ok := raw.(map[string]any)
	if !ok {
		return nil, &FieldError{Field: field, Message: "must be a nested document"}
	}
	return data, nil
}

func getString(data map[string]any, key string) (string, error) {
	return getStringField(data, key, key)
}

func getStringField(data map[string]any, field, key string) (string, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", &FieldError{Field: field, Message: "must be a string"}
	}
	return s, nil
}

func getInt(data map[string]any, key string) (*int, error) {
	return getIntField(data, key, key)
}

// getIntField accepts the integer representations the store and JSON decoding
// produce: int, int64, and whole float64.
func getIntField(data map[string]any, field, key string) (*int, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return nil, nil
	}
	var n int
	switch v := raw.(type) {
	case int:
		n = v
	case int64:
		n = int(v)
	case float64:
		if v != math.Trunc(v) {
			return nil, &FieldError{Field: field, Message: "must be an integer"}
		}
		n = int(v)
	default:
		return nil, &FieldError{Field: field, Message: "must be an integer"}
	}
	return &n, nil
}

func getFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func getEnum[E enum](data map[string]any, key string) (*E, error) {
	return getEnumField[E](data, key, key)
}

func getEnumField[E enum](data map[string]any, field, key string) (*E, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, &FieldError{Field: field, Message: "must be a string"}
	}
	v := E(s)
	if !v.IsValid() {
		return nil, &FieldError{Field: field, Message: fmt.Sprintf("unknown value %q", s)}
	}
	return &v, nil
}

func getMeasurement[U measure.Unit](data map[string]any, field, key string) (*measure.Measurement[U], error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return nil, nil
	}
	pair, ok := raw.(map[string]any)
	if !ok {
		return nil, &FieldError{Field: field, Message: "must be a value/unit pair"}
	}
	value, ok := getFloat(pair["value"])
	if !ok {
		return nil, &FieldError{Field: field, Message: "value must be a number"}
	}
	unit, ok := pair["unit"].(string)
	if !ok {
		return nil, &FieldError{Field: field, Message: "unit must be a string"}
	}
	m, err := measure.New(value, U(unit))
	if err != nil {
		return nil, &FieldError{Field: field, Message: err.Error()}
	}
	return &m, nil
}

func getStringMap(data map[string]any, key string) (map[string]string, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return nil, nil
	}
	var out map[string]string
	switch m := raw.(type) {
	case map[string]string:
		out = make(map[string]string, len(m))
		for k, v := range m {
			out[k] = v
		}
	case map[string]any:
		out = make(map[string]string, len(m))
		for k, v := range m {
			s, ok := v.(string)
			if !ok {
				return nil, &FieldError{Field: key + "." + k, Message: "must be a string"}
			}
			out[k] = s
		}
	default:
		return nil, &FieldError{Field: key, Message: "must be a string map"}
	}
	return out, nil
}

package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/carinspectinator/car-service/internal/measure"
	"github.com/google/uuid"
)

const (
	// MinYear is the domain floor: the year of the earliest automobile.
	MinYear = 1886
	MaxYear = 3000

	MinGears = 1
	MaxGears = 12
)

// FieldError names the field that failed validation. It is raised at
// construction and at the storage/wire decode boundary.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

type BodyStyle string

const (
	BodyStyleCoupe        BodyStyle = "Coupe"
	BodyStyleHatchback    BodyStyle = "Hatchback"
	BodyStyleSedan        BodyStyle = "Sedan"
	BodyStyleSUV          BodyStyle = "SUV"
	BodyStyleWagon        BodyStyle = "Wagon"
	BodyStyleTruck        BodyStyle = "Truck"
	BodyStyleMinivan      BodyStyle = "Minivan"
	BodyStyleOther        BodyStyle = "Other"
	BodyStyleNotSpecified BodyStyle = "Not Specified"
)

func (b BodyStyle) IsValid() bool {
	switch b {
	case BodyStyleCoupe, BodyStyleHatchback, BodyStyleSedan, BodyStyleSUV,
		BodyStyleWagon, BodyStyleTruck, BodyStyleMinivan, BodyStyleOther,
		BodyStyleNotSpecified:
		return true
	}
	return false
}

func (b *BodyStyle) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, b, "bodyStyle")
}

type FuelType string

const (
	FuelGasoline     FuelType = "gasoline"
	FuelDiesel       FuelType = "diesel"
	FuelHybrid       FuelType = "hybrid"
	FuelPlugInHybrid FuelType = "plugInHybrid"
	FuelElectric     FuelType = "electric"
	FuelHydrogen     FuelType = "hydrogen"
	FuelOther        FuelType = "other"
)

func (f FuelType) IsValid() bool {
	switch f {
	case FuelGasoline, FuelDiesel, FuelHybrid, FuelPlugInHybrid,
		FuelElectric, FuelHydrogen, FuelOther:
		return true
	}
	return false
}

func (f *FuelType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, f, "fuel")
}

type Induction string

const (
	InductionNaturallyAspirated Induction = "naturallyAspirated"
	InductionTurbocharged       Induction = "turbocharged"
	InductionSupercharged       Induction = "supercharged"
	InductionTwinCharged        Induction = "twinCharged"
	InductionOther              Induction = "other"
)

func (i Induction) IsValid() bool {
	switch i {
	case InductionNaturallyAspirated, InductionTurbocharged,
		InductionSupercharged, InductionTwinCharged, InductionOther:
		return true
	}
	return false
}

func (i *Induction) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, i, "induction")
}

type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
	TransmissionDCT       Transmission = "dct"
	TransmissionCVT       Transmission = "cvt"
	TransmissionOther     Transmission = "other"
)

func (t Transmission) IsValid() bool {
	switch t {
	case TransmissionManual, TransmissionAutomatic, TransmissionDCT,
		TransmissionCVT, TransmissionOther:
		return true
	}
	return false
}

func (t *Transmission) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, t, "transmission")
}

type DriveLayout string

const (
	LayoutFWD    DriveLayout = "fwd"
	LayoutRWD    DriveLayout = "rwd"
	LayoutAWD    DriveLayout = "awd"
	LayoutFourWD DriveLayout = "fourwd"
	LayoutOther  DriveLayout = "other"
)

func (l DriveLayout) IsValid() bool {
	switch l {
	case LayoutFWD, LayoutRWD, LayoutAWD, LayoutFourWD, LayoutOther:
		return true
	}
	return false
}

func (l *DriveLayout) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, l, "layout")
}

type enum interface {
	~string
	IsValid() bool
}

// unmarshalEnum rejects unknown tags instead of coercing them. Decoding is a
// validation boundary, not a best-effort parse.
func unmarshalEnum[E enum](data []byte, dst *E, field string) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v := E(s)
	if !v.IsValid() {
		return &FieldError{Field: field, Message: fmt.Sprintf("unknown value %q", s)}
	}
	*dst = v
	return nil
}

// Engine describes the powerplant. Every field is independently optional.
type Engine struct {
	Displacement  *measure.Volume `json:"displacement,omitempty"`
	Cylinders     *int            `json:"cylinders,omitempty"`
	Configuration string          `json:"configuration,omitempty"`
	Fuel          *FuelType       `json:"fuel,omitempty"`
	Induction     *Induction      `json:"induction,omitempty"`
	Code          string          `json:"code,omitempty"`
}

type Performance struct {
	Horsepower  *measure.Power          `json:"horsepower,omitempty"`
	Torque      *measure.Torque         `json:"torque,omitempty"`
	ZeroToSixty *measure.Duration       `json:"zeroToSixty,omitempty"`
	TopSpeed    *measure.Speed          `json:"topSpeed,omitempty"`
	EPACity     *measure.FuelEfficiency `json:"epaCity,omitempty"`
	EPAHighway  *measure.FuelEfficiency `json:"epaHighway,omitempty"`
}

type Dimensions struct {
	Wheelbase        *measure.Length `json:"wheelbase,omitempty"`
	Length           *measure.Length `json:"length,omitempty"`
	Width            *measure.Length `json:"width,omitempty"`
	Height           *measure.Length `json:"height,omitempty"`
	CurbWeight       *measure.Mass   `json:"curbWeight,omitempty"`
	CargoRearSeatsUp *measure.Volume `json:"cargoRearSeatsUp,omitempty"`
	FuelTank         *measure.Volume `json:"fuelTank,omitempty"`
}

type Drivetrain struct {
	Layout       *DriveLayout  `json:"layout,omitempty"`
	Differential string        `json:"differential,omitempty"`
	Transmission *Transmission `json:"transmission,omitempty"`
	Gears        *int          `json:"gears,omitempty"`
}

// Car is the catalog's aggregate. Field names match the stored document and
// the wire payload exactly. ModelURL is transient: computed on read from
// VolumeID, never persisted.
type Car struct {
	ID    string `json:"id"`
	Make  string `json:"make"`
	Model string `json:"model"`

	Blurb                     string     `json:"blurb,omitempty"`
	IconAssetName             string     `json:"iconAssetName,omitempty"`
	Year                      *int       `json:"year,omitempty"`
	BodyStyle                 *BodyStyle `json:"bodyStyle,omitempty"`
	ExteriorColor             string     `json:"exteriorColor,omitempty"`
	InteriorColor             string     `json:"interiorColor,omitempty"`
	InteriorPanoramaAssetName string     `json:"interiorPanoramaAssetName,omitempty"`

	// VolumeID is the opaque, stable key for 3D-model asset lookup. It is
	// not validated against any format.
	VolumeID string `json:"volumeId,omitempty"`

	Engine      *Engine      `json:"engine,omitempty"`
	Performance *Performance `json:"performance,omitempty"`
	Dimensions  *Dimensions  `json:"dimensions,omitempty"`
	Drivetrain  *Drivetrain  `json:"drivetrain,omitempty"`

	// OtherSpecs is an open string-to-string escape hatch for attributes
	// not otherwise modeled.
	OtherSpecs map[string]string `json:"otherSpecs,omitempty"`

	ModelURL string `json:"modelUrl,omitempty"`
}

// NewCar assigns an identifier when none is supplied and validates every
// domain constraint.
func NewCar(c Car) (Car, error) {
	if strings.TrimSpace(c.ID) == "" {
		c.ID = uuid.NewString()
	}
	if err := c.Validate(); err != nil {
		return Car{}, err
	}
	return c, nil
}

// Validate checks every field's domain constraints and reports the first
// offending field.
func (c *Car) Validate() error {
	if c.ID != "" {
		if _, err := uuid.Parse(c.ID); err != nil {
			return &FieldError{Field: "id", Message: "must be a UUID"}
		}
	}
	if strings.TrimSpace(c.Make) == "" {
		return &FieldError{Field: "make", Message: "is required"}
	}
	if strings.TrimSpace(c.Model) == "" {
		return &FieldError{Field: "model", Message: "is required"}
	}
	if c.Year != nil && (*c.Year < MinYear || *c.Year > MaxYear) {
		return &FieldError{Field: "year", Message: fmt.Sprintf("must be between %d and %d", MinYear, MaxYear)}
	}
	if c.BodyStyle != nil && !c.BodyStyle.IsValid() {
		return &FieldError{Field: "bodyStyle", Message: fmt.Sprintf("unknown value %q", string(*c.BodyStyle))}
	}
	if err := c.Engine.validate(); err != nil {
		return err
	}
	if err := c.Performance.validate(); err != nil {
		return err
	}
	if err := c.Dimensions.validate(); err != nil {
		return err
	}
	if err := c.Drivetrain.validate(); err != nil {
		return err
	}
	return nil
}

func (e *Engine) validate() error {
	if e == nil {
		return nil
	}
	if err := checkMeasurement("engine.displacement", e.Displacement); err != nil {
		return err
	}
	if e.Cylinders != nil && *e.Cylinders < 1 {
		return &FieldError{Field: "engine.cylinders", Message: "must be at least 1"}
	}
	if e.Fuel != nil && !e.Fuel.IsValid() {
		return &FieldError{Field: "engine.fuel", Message: fmt.Sprintf("unknown value %q", string(*e.Fuel))}
	}
	if e.Induction != nil && !e.Induction.IsValid() {
		return &FieldError{Field: "engine.induction", Message: fmt.Sprintf("unknown value %q", string(*e.Induction))}
	}
	return nil
}

func (p *Performance) validate() error {
	if p == nil {
		return nil
	}
	if err := checkMeasurement("performance.horsepower", p.Horsepower); err != nil {
		return err
	}
	if err := checkMeasurement("performance.torque", p.Torque); err != nil {
		return err
	}
	if err := checkMeasurement("performance.zeroToSixty", p.ZeroToSixty); err != nil {
		return err
	}
	if err := checkMeasurement("performance.topSpeed", p.TopSpeed); err != nil {
		return err
	}
	if err := checkMeasurement("performance.epaCity", p.EPACity); err != nil {
		return err
	}
	return checkMeasurement("performance.epaHighway", p.EPAHighway)
}

func (d *Dimensions) validate() error {
	if d == nil {
		return nil
	}
	if err := checkMeasurement("dimensions.wheelbase", d.Wheelbase); err != nil {
		return err
	}
	if err := checkMeasurement("dimensions.length", d.Length); err != nil {
		return err
	}
	if err := checkMeasurement("dimensions.width", d.Width); err != nil {
		return err
	}
	if err := checkMeasurement("dimensions.height", d.Height); err != nil {
		return err
	}
	if err := checkMeasurement("dimensions.curbWeight", d.CurbWeight); err != nil {
		return err
	}
	if err := checkMeasurement("dimensions.cargoRearSeatsUp", d.CargoRearSeatsUp); err != nil {
		return err
	}
	return checkMeasurement("dimensions.fuelTank", d.FuelTank)
}

func (d *Drivetrain) validate() error {
	if d == nil {
		return nil
	}
	if d.Layout != nil && !d.Layout.IsValid() {
		return &FieldError{Field: "drivetrain.layout", Message: fmt.Sprintf("unknown value %q", string(*d.Layout))}
	}
	if d.Transmission != nil && !d.Transmission.IsValid() {
		return &FieldError{Field: "drivetrain.transmission", Message: fmt.Sprintf("unknown value %q", string(*d.Transmission))}
	}
	if d.Gears != nil && (*d.Gears < MinGears || *d.Gears > MaxGears) {
		return &FieldError{Field: "drivetrain.gears", Message: fmt.Sprintf("must be between %d and %d", MinGears, MaxGears)}
	}
	return nil
}

func checkMeasurement[U measure.Unit](field string, m *measure.Measurement[U]) error {
	if m == nil {
		return nil
	}
	if _, err := measure.New(m.Value, m.Unit); err != nil {
		return &FieldError{Field: field, Message: err.Error()}
	}
	return nil
}

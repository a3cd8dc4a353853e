package domain

import (
	"testing"

	"github.com/carinspectinator/car-service/internal/measure"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullCar(t *testing.T) Car {
	t.Helper()

	style := BodyStyleSedan
	fuel := FuelGasoline
	induction := InductionTurbocharged
	layout := LayoutRWD
	transmission := TransmissionManual

	return Car{
		ID:            uuid.NewString(),
		Make:          "BMW",
		Model:         "M3",
		IconAssetName: "bmw_m3",
		Year:          intPtr(2020),
		BodyStyle:     &style,
		VolumeID:      "BMW_M4_f82",
		Engine: &Engine{
			Displacement:  &measure.Volume{Value: 3.0, Unit: measure.Liters},
			Cylinders:     intPtr(6),
			Configuration: "I6",
			Fuel:          &fuel,
			Induction:     &induction,
			Code:          "S58",
		},
		Performance: &Performance{
			Horsepower:  &measure.Power{Value: 473, Unit: measure.Horsepower},
			Torque:      &measure.Torque{Value: 406, Unit: measure.PoundForceFeet},
			ZeroToSixty: &measure.Duration{Value: 4.1, Unit: measure.Seconds},
			TopSpeed:    &measure.Speed{Value: 155, Unit: measure.MilesPerHour},
		},
		Dimensions: &Dimensions{
			Wheelbase:  &measure.Length{Value: 112.8, Unit: measure.Inches},
			CurbWeight: &measure.Mass{Value: 3830, Unit: measure.Pounds},
			FuelTank:   &measure.Volume{Value: 15.6, Unit: measure.Gallons},
		},
		Drivetrain: &Drivetrain{
			Layout:       &layout,
			Differential: "M Differential",
			Transmission: &transmission,
			Gears:        intPtr(6),
		},
		OtherSpecs: map[string]string{"features": "M Sport exhaust"},
	}
}

func TestDocDataExcludesIdentifierAndModelURL(t *testing.T) {
	car := fullCar(t)
	car.ModelURL = "https://signed.example/models/BMW_M4_f82.usdz"

	data := car.DocData()
	assert.NotContains(t, data, "id")
	assert.NotContains(t, data, "modelUrl")
}

func TestDocDataOmitsUnsetFields(t *testing.T) {
	car := Car{ID: uuid.NewString(), Make: "Toyota", Model: "Supra"}

	data := car.DocData()
	assert.Equal(t, map[string]any{"make": "Toyota", "model": "Supra"}, data)
}

func TestDocRoundTrip(t *testing.T) {
	car := fullCar(t)

	decoded, err := CarFromDoc(car.ID, car.DocData())
	require.NoError(t, err)
	assert.Equal(t, car, decoded)
}

func TestCarFromDocTakesIdentifierFromKey(t *testing.T) {
	car := fullCar(t)
	data := car.DocData()
	// A stray id in the payload is ignored: the key is authoritative.
	data["id"] = uuid.NewString()

	decoded, err := CarFromDoc(car.ID, data)
	require.NoError(t, err)
	assert.Equal(t, car.ID, decoded.ID)
}

func TestCarFromDocRejectsWrongTypes(t *testing.T) {
	cases := []struct {
		name  string
		data  map[string]any
		field string
	}{
		{
			name:  "make not a string",
			data:  map[string]any{"make": 42, "model": "M3"},
			field: "make",
		},
		{
			name:  "year not an integer",
			data:  map[string]any{"make": "BMW", "model": "M3", "year": "2020"},
			field: "year",
		},
		{
			name:  "year fractional",
			data:  map[string]any{"make": "BMW", "model": "M3", "year": 2020.5},
			field: "year",
		},
		{
			name:  "engine not nested",
			data:  map[string]any{"make": "BMW", "model": "M3", "engine": "V8"},
			field: "engine",
		},
		{
			name: "measurement missing value",
			data: map[string]any{
				"make": "BMW", "model": "M3",
				"performance": map[string]any{"horsepower": map[string]any{"unit": "horsepower"}},
			},
			field: "performance.horsepower",
		},
		{
			name: "unknown unit tag",
			data: map[string]any{
				"make": "BMW", "model": "M3",
				"engine": map[string]any{"displacement": map[string]any{"value": 3.0, "unit": "cc"}},
			},
			field: "engine.displacement",
		},
		{
			name:  "unknown enum tag",
			data:  map[string]any{"make": "BMW", "model": "M3", "bodyStyle": "Roadster"},
			field: "bodyStyle",
		},
		{
			name: "other specs not strings",
			data: map[string]any{
				"make": "BMW", "model": "M3",
				"otherSpecs": map[string]any{"doors": 4},
			},
			field: "otherSpecs.doors",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CarFromDoc(uuid.NewString(), tc.data)
			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tc.field, fieldErr.Field)
		})
	}
}

func TestCarFromDocAcceptsStoreIntegerTypes(t *testing.T) {
	// Firestore hands back int64, JSON decoding float64. Both must decode.
	data := map[string]any{
		"make": "BMW", "model": "M3",
		"year":   int64(2020),
		"engine": map[string]any{"cylinders": float64(6)},
	}

	decoded, err := CarFromDoc(uuid.NewString(), data)
	require.NoError(t, err)
	require.NotNil(t, decoded.Year)
	assert.Equal(t, 2020, *decoded.Year)
	require.NotNil(t, decoded.Engine.Cylinders)
	assert.Equal(t, 6, *decoded.Engine.Cylinders)
}

func TestCarFromDocValidatesDomainRules(t *testing.T) {
	data := map[string]any{"make": "BMW", "model": "M3", "year": 1700}

	_, err := CarFromDoc(uuid.NewString(), data)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "year", fieldErr.Field)
}

// Package seed loads the initial catalog through the repository so every
// write passes the same validation and encoding as API traffic.
package seed

import (
	"context"

	"github.com/carinspectinator/car-service/internal/car/domain"
	"github.com/carinspectinator/car-service/internal/measure"
	"go.uber.org/zap"
)

func ptr[T any](v T) *T { return &v }

func m[U measure.Unit](value float64, unit U) *measure.Measurement[U] {
	return &measure.Measurement[U]{Value: value, Unit: unit}
}

// Cars returns the five catalog cars without identifiers; Run assigns them
// on insert.
func Cars() []domain.Car {
	return []domain.Car{
		{
			Make:          "Volkswagen",
			Model:         "Golf GTI",
			IconAssetName: "vw_gti",
			Year:          ptr(2020),
			BodyStyle:     ptr(domain.BodyStyleHatchback),
			VolumeID:      "vw_golf_5_gti",
			Engine: &domain.Engine{
				Displacement:  m(1.8, measure.Liters),
				Cylinders:     ptr(4),
				Configuration: "I4",
				Fuel:          ptr(domain.FuelDiesel),
				Induction:     ptr(domain.InductionTurbocharged),
			},
			Performance: &domain.Performance{
				Horsepower: m(330, measure.Horsepower),
				Torque:     m(258, measure.PoundForceFeet),
			},
			Dimensions: &domain.Dimensions{
				Wheelbase:        m(103.6, measure.Inches),
				Length:           m(168.0, measure.Inches),
				CurbWeight:       m(3128, measure.Pounds),
				CargoRearSeatsUp: m(22.8, measure.Gallons),
			},
			Drivetrain: &domain.Drivetrain{
				Layout:       ptr(domain.LayoutFWD),
				Differential: "Front limited-slip (VAQ)",
				Transmission: ptr(domain.TransmissionManual),
				Gears:        ptr(6),
			},
			OtherSpecs: map[string]string{
				"epaMPG":          "24 city / 32 highway",
				"altTransmission": "7-speed DSG",
			},
		},
		{
			Make:          "BMW",
			Model:         "M3",
			IconAssetName: "bmw_m3",
			Year:          ptr(2020),
			BodyStyle:     ptr(domain.BodyStyleSedan),
			VolumeID:      "BMW_M4_f82",
			Engine: &domain.Engine{
				Displacement:  m(3.0, measure.Liters),
				Cylinders:     ptr(6),
				Configuration: "I6",
				Fuel:          ptr(domain.FuelGasoline),
				Induction:     ptr(domain.InductionTurbocharged),
				Code:          "S58",
			},
			Performance: &domain.Performance{
				Horsepower:  m(473, measure.Horsepower),
				Torque:      m(406, measure.PoundForceFeet),
				ZeroToSixty: m(4.1, measure.Seconds),
				TopSpeed:    m(155, measure.MilesPerHour),
				EPACity:     m(16, measure.MilesPerGallon),
				EPAHighway:  m(23, measure.MilesPerGallon),
			},
			Dimensions: &domain.Dimensions{
				Wheelbase:  m(112.8, measure.Inches),
				Length:     m(189.1, measure.Inches),
				Width:      m(74.3, measure.Inches),
				Height:     m(56.9, measure.Inches),
				CurbWeight: m(3830, measure.Pounds),
				FuelTank:   m(15.6, measure.Gallons),
			},
			Drivetrain: &domain.Drivetrain{
				Layout:       ptr(domain.LayoutRWD),
				Differential: "Electronically controlled limited-slip (M Differential)",
				Transmission: ptr(domain.TransmissionManual),
				Gears:        ptr(6),
			},
			OtherSpecs: map[string]string{
				"altTransmission": "8-speed M Steptronic automatic",
				"features":        "M Sport exhaust, Adaptive M suspension",
			},
		},
		{
			Make:          "Audi",
			Model:         "RS7",
			IconAssetName: "audi_rs7",
			Year:          ptr(2020),
			BodyStyle:     ptr(domain.BodyStyleSedan),
			VolumeID:      "2020_Audi_RS7_Sportback",
			Engine: &domain.Engine{
				Displacement:  m(4.0, measure.Liters),
				Cylinders:     ptr(8),
				Configuration: "V8",
				Fuel:          ptr(domain.FuelGasoline),
				Induction:     ptr(domain.InductionTurbocharged),
			},
			Performance: &domain.Performance{
				Horsepower:  m(591, measure.Horsepower),
				Torque:      m(590, measure.PoundForceFeet),
				ZeroToSixty: m(3.5, measure.Seconds),
				TopSpeed:    m(190, measure.MilesPerHour),
				EPACity:     m(15, measure.MilesPerGallon),
				EPAHighway:  m(22, measure.MilesPerGallon),
			},
			Dimensions: &domain.Dimensions{
				Wheelbase:        m(116.7, measure.Inches),
				Length:           m(196.5, measure.Inches),
				Width:            m(77.0, measure.Inches),
				Height:           m(55.7, measure.Inches),
				CurbWeight:       m(4575, measure.Pounds),
				CargoRearSeatsUp: m(24.9, measure.Gallons),
				FuelTank:         m(21.9, measure.Gallons),
			},
			Drivetrain: &domain.Drivetrain{
				Layout:       ptr(domain.LayoutAWD),
				Differential: "Sport differential with torque vectoring (Quattro)",
				Transmission: ptr(domain.TransmissionAutomatic),
				Gears:        ptr(8),
			},
			OtherSpecs: map[string]string{
				"features":            "48-volt mild hybrid system, Dynamic all-wheel steering",
				"carbonCeramicBrakes": "Optional",
			},
		},
		{
			Make:          "Mercedes",
			Model:         "G63",
			IconAssetName: "mercedes_g63",
			Year:          ptr(2020),
			BodyStyle:     ptr(domain.BodyStyleSUV),
			VolumeID:      "2020_Mercedes-Benz_G-Class_AMG_G63",
			Engine: &domain.Engine{
				Displacement:  m(4.0, measure.Liters),
				Cylinders:     ptr(8),
				Configuration: "V8",
				Fuel:          ptr(domain.FuelGasoline),
				Induction:     ptr(domain.InductionTurbocharged),
				Code:          "M177",
			},
			Performance: &domain.Performance{
				Horsepower:  m(577, measure.Horsepower),
				Torque:      m(627, measure.PoundForceFeet),
				ZeroToSixty: m(4.5, measure.Seconds),
				TopSpeed:    m(137, measure.MilesPerHour),
				EPACity:     m(13, measure.MilesPerGallon),
				EPAHighway:  m(15, measure.MilesPerGallon),
			},
			Dimensions: &domain.Dimensions{
				Wheelbase:        m(113.0, measure.Inches),
				Length:           m(189.6, measure.Inches),
				Width:            m(83.1, measure.Inches),
				Height:           m(78.1, measure.Inches),
				CurbWeight:       m(5842, measure.Pounds),
				CargoRearSeatsUp: m(38.0, measure.Gallons),
				FuelTank:         m(26.4, measure.Gallons),
			},
			Drivetrain: &domain.Drivetrain{
				Layout:       ptr(domain.LayoutFourWD),
				Differential: "Three locking differentials (front, center, rear)",
				Transmission: ptr(domain.TransmissionAutomatic),
				Gears:        ptr(9),
			},
			OtherSpecs: map[string]string{
				"features": "AMG Performance exhaust, AMG Ride Control suspension",
				"offRoad":  "Ground clearance: 9.5 inches",
			},
		},
		{
			Make:          "Toyota",
			Model:         "Supra",
			IconAssetName: "toyota_supra",
			Year:          ptr(2020),
			BodyStyle:     ptr(domain.BodyStyleCoupe),
			VolumeID:      "Toyota_Supra",
			Engine: &domain.Engine{
				Displacement:  m(3.0, measure.Liters),
				Cylinders:     ptr(6),
				Configuration: "I6",
				Fuel:          ptr(domain.FuelGasoline),
				Induction:     ptr(domain.InductionTurbocharged),
				Code:          "B58",
			},
			Performance: &domain.Performance{
				Horsepower:  m(335, measure.Horsepower),
				Torque:      m(365, measure.PoundForceFeet),
				ZeroToSixty: m(4.1, measure.Seconds),
				TopSpeed:    m(155, measure.MilesPerHour),
				EPACity:     m(24, measure.MilesPerGallon),
				EPAHighway:  m(31, measure.MilesPerGallon),
			},
			Dimensions: &domain.Dimensions{
				Wheelbase:        m(97.2, measure.Inches),
				Length:           m(172.5, measure.Inches),
				Width:            m(73.0, measure.Inches),
				Height:           m(50.9, measure.Inches),
				CurbWeight:       m(3397, measure.Pounds),
				CargoRearSeatsUp: m(10.2, measure.Gallons),
				FuelTank:         m(13.7, measure.Gallons),
			},
			Drivetrain: &domain.Drivetrain{
				Layout:       ptr(domain.LayoutRWD),
				Differential: "Active differential",
				Transmission: ptr(domain.TransmissionAutomatic),
				Gears:        ptr(8),
			},
			OtherSpecs: map[string]string{
				"features":      "Adaptive suspension, Launch control",
				"collaboration": "Co-developed with BMW",
			},
		},
	}
}

// Run inserts the catalog cars, assigning a fresh identifier to each. It
// reports how many writes succeeded; a failed write is logged and skipped.
func Run(ctx context.Context, repo domain.Repository, log *zap.Logger) int {
	cars := Cars()
	ok := 0
	for i := range cars {
		car, err := domain.NewCar(cars[i])
		if err != nil {
			log.Error("seed car failed validation",
				zap.String("make", cars[i].Make),
				zap.String("model", cars[i].Model),
				zap.Error(err))
			continue
		}
		if !repo.Create(ctx, &car) {
			log.Error("seed car write failed",
				zap.String("make", car.Make),
				zap.String("model", car.Model))
			continue
		}
		log.Info("seeded car",
			zap.String("id", car.ID),
			zap.String("make", car.Make),
			zap.String("model", car.Model))
		ok++
	}
	return ok
}

package services

import (
	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/pkg/config"
)

// fallbackChargePlan computes a closed-form charging plan when the model
// service is unavailable: energy to cover the remaining distance with a
// safety margin, target SoC from that energy on top of the arrival charge,
// duration at the station's power rating and cost at the configured unit
// price.
func fallbackChargePlan(cfg config.PlannerConfig, remainingKM, arrivalSoC float64, vehicle *entities.Vehicle, stationPowerKW float64) *entities.ChargingPlan {
	energy := remainingKM / vehicle.EfficiencyKmPerKWh * cfg.EnergyMargin

	target := arrivalSoC + energy/vehicle.BatteryCapacityKWh*100
	if target > 100 {
		target = 100
	}

	power := stationPowerKW
	if power <= 0 {
		power = cfg.DefaultChargerKW
	}

	return &entities.ChargingPlan{
		TargetSoC:           target,
		ChargingTimeMinutes: energy / power * 60,
		EstimatedCostINR:    energy * cfg.UnitPriceINRPerKWh,
		EnergyKWh:           energy,
	}
}

// arrivalSoCAtStop approximates the state of charge on reaching the stop as
// a flat decrement from the current charge, floored at zero.
// TODO: derive this from the actual leg distance once product confirms the
// intended formula; the flat constant matches the shipped behavior.
func arrivalSoCAtStop(currentSoC, dropPct float64) float64 {
	soc := currentSoC - dropPct
	if soc < 0 {
		soc = 0
	}
	return soc
}

// fallbackRangeKM estimates remaining range from nameplate figures with a
// fixed real-world derate.
func fallbackRangeKM(cfg config.PlannerConfig, soc float64, vehicle *entities.Vehicle) float64 {
	return (soc / 100 * vehicle.BatteryCapacityKWh) * vehicle.EfficiencyKmPerKWh * cfg.RangeDerate
}

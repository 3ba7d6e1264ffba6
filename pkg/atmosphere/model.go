package atmosphere

import (
	"math"

	"github.com/lintang-b-s/Airwayx/pkg/datastructure"
	"github.com/lintang-b-s/Airwayx/pkg/util"
)

const (
	// standard lapse rate, 6.5 celcius colder per 1000m: https://en.wikipedia.org/wiki/Lapse_rate
	lapseRateCelciusPerMeter = 0.0065

	gravity        = 9.80665   // m/s^2
	molarMassAir   = 0.0289644 // kg/mol
	gasConstantAir = 287.05    // J/(kg*K)

	humidityDropPerKm   = 5.0
	windSpeedGainPerKm  = 2.0
	cloudCoverDropPerKm = 10.0

	kelvinOffset = 273.15
	paPerHpa     = 100.0
)

// Extrapolate estimate the weather at altitudeMeters (>= 0) above the surface
// observation. pure & total, no I/O: callers filter out absent observations
// before calling.
//
// temperature follows the fixed lapse rate; pressure follows the barometric
// formula https://en.wikipedia.org/wiki/Barometric_formula with the mean of the
// surface and target celcius temperatures as the reference temperature in the
// exponent denominator; humidity/wind/cloud/visibility follow linear laws.
func Extrapolate(surface datastructure.SurfaceWeather, altitudeMeters float64) datastructure.EnvironmentalState {
	surfaceTempC := surface.GetTemperature() - kelvinOffset
	tempAtAltitudeC := surfaceTempC - lapseRateCelciusPerMeter*altitudeMeters

	// reference temperature is the mean of the surface and target celcius
	// temperatures, in Kelvin so the exponent stays negative for any altitude > 0.
	meanTempK := (surfaceTempC+tempAtAltitudeC)/2.0 + kelvinOffset

	// surface pressure in Pa, reported back in hPa
	pressurePa := surface.GetPressure() *
		math.Exp(-gravity*molarMassAir*altitudeMeters/(gasConstantAir*meanTempK))

	altitudeKm := altitudeMeters / 1000.0

	humidity := util.Clamp(surface.GetHumidity()-humidityDropPerKm*altitudeKm, 0, 100)
	windSpeed := surface.GetWindSpeed() + windSpeedGainPerKm*altitudeKm
	cloudCover := util.Clamp(surface.GetClouds()-cloudCoverDropPerKm*altitudeKm, 0, 100)

	// visibility improves 1 meter per meter of climb
	visibility := surface.GetVisibility() + altitudeMeters

	return datastructure.NewEnvironmentalState(
		tempAtAltitudeC+kelvinOffset,
		pressurePa/paPerHpa,
		humidity,
		windSpeed,
		surface.GetWindDirection(),
		cloudCover,
		visibility,
	)
}

package datastructure

// SurfaceWeather is the raw ground-level observation from the weather provider,
// units passed through unchanged: temperature in Kelvin, pressure in Pa,
// humidity & clouds in %, wind speed in m/s, wind direction in degree, visibility in meter.
type SurfaceWeather struct {
	temperature   float64
	pressure      float64
	humidity      float64
	windSpeed     float64
	windDirection float64
	clouds        float64
	visibility    float64
}

func NewSurfaceWeather(temperature, pressure, humidity, windSpeed, windDirection,
	clouds, visibility float64) SurfaceWeather {
	return SurfaceWeather{
		temperature:   temperature,
		pressure:      pressure,
		humidity:      humidity,
		windSpeed:     windSpeed,
		windDirection: windDirection,
		clouds:        clouds,
		visibility:    visibility,
	}
}

func (sw SurfaceWeather) GetTemperature() float64 {
	return sw.temperature
}

func (sw SurfaceWeather) GetPressure() float64 {
	return sw.pressure
}

func (sw SurfaceWeather) GetHumidity() float64 {
	return sw.humidity
}

func (sw SurfaceWeather) GetWindSpeed() float64 {
	return sw.windSpeed
}

func (sw SurfaceWeather) GetWindDirection() float64 {
	return sw.windDirection
}

func (sw SurfaceWeather) GetClouds() float64 {
	return sw.clouds
}

func (sw SurfaceWeather) GetVisibility() float64 {
	return sw.visibility
}

// EnvironmentalState is the weather estimate extrapolated to a node altitude.
// temperature in Kelvin, pressure in hPa, humidity & cloud cover clamped to [0,100],
// visibility in meter.
type EnvironmentalState struct {
	temperature   float64
	pressure      float64
	humidity      float64
	windSpeed     float64
	windDirection float64
	cloudCover    float64
	visibility    float64
}

func NewEnvironmentalState(temperature, pressure, humidity, windSpeed, windDirection,
	cloudCover, visibility float64) EnvironmentalState {
	return EnvironmentalState{
		temperature:   temperature,
		pressure:      pressure,
		humidity:      humidity,
		windSpeed:     windSpeed,
		windDirection: windDirection,
		cloudCover:    cloudCover,
		visibility:    visibility,
	}
}

func (es EnvironmentalState) GetTemperature() float64 {
	return es.temperature
}

func (es EnvironmentalState) GetPressure() float64 {
	return es.pressure
}

func (es EnvironmentalState) GetHumidity() float64 {
	return es.humidity
}

func (es EnvironmentalState) GetWindSpeed() float64 {
	return es.windSpeed
}

func (es EnvironmentalState) GetWindDirection() float64 {
	return es.windDirection
}

func (es EnvironmentalState) GetCloudCover() float64 {
	return es.cloudCover
}

func (es EnvironmentalState) GetVisibility() float64 {
	return es.visibility
}

// AircraftState single state vector from the traffic provider.
type AircraftState struct {
	icao24       string
	callsign     string
	longitude    float64
	latitude     float64
	baroAltitude float64
	velocity     float64
	heading      float64
}

type AircraftStateInput struct {
	Icao24       string
	Callsign     string
	Longitude    float64
	Latitude     float64
	BaroAltitude float64
	Velocity     float64
	Heading      float64
}

func NewAircraftState(in AircraftStateInput) AircraftState {
	return AircraftState{
		icao24:       in.Icao24,
		callsign:     in.Callsign,
		longitude:    in.Longitude,
		latitude:     in.Latitude,
		baroAltitude: in.BaroAltitude,
		velocity:     in.Velocity,
		heading:      in.Heading,
	}
}

func (as AircraftState) GetIcao24() string {
	return as.icao24
}

func (as AircraftState) GetCallsign() string {
	return as.callsign
}

func (as AircraftState) GetLongitude() float64 {
	return as.longitude
}

func (as AircraftState) GetLatitude() float64 {
	return as.latitude
}

func (as AircraftState) GetBaroAltitude() float64 {
	return as.baroAltitude
}

func (as AircraftState) GetVelocity() float64 {
	return as.velocity
}

func (as AircraftState) GetHeading() float64 {
	return as.heading
}

// TrafficSnapshot opaque occupancy payload attached to a node.
// the core only reads presence and the state count.
type TrafficSnapshot struct {
	states []AircraftState
}

func NewTrafficSnapshot(states []AircraftState) *TrafficSnapshot {
	return &TrafficSnapshot{states: states}
}

func (ts *TrafficSnapshot) GetStates() []AircraftState {
	return ts.states
}

func (ts *TrafficSnapshot) Count() int {
	if ts == nil {
		return 0
	}
	return len(ts.states)
}

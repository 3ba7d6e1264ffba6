package atmosphere

import (
	"math"
	"testing"

	"github.com/lintang-b-s/Airwayx/pkg/datastructure"
)

// 288.15K (15C), 101325 Pa, 60% humidity, 5 m/s wind from 270, 40% clouds, 10km visibility
func stdSurface() datastructure.SurfaceWeather {
	return datastructure.NewSurfaceWeather(288.15, 101325, 60, 5, 270, 40, 10000)
}

func TestExtrapolateLapseRate(t *testing.T) {
	testCases := []struct {
		name     string
		altitude float64
		wantTemp float64
	}{
		{name: "surface", altitude: 0, wantTemp: 288.15},
		{name: "1000m", altitude: 1000, wantTemp: 281.65},
		{name: "5000m", altitude: 5000, wantTemp: 255.65},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := Extrapolate(stdSurface(), tt.altitude)
			if math.Abs(got.GetTemperature()-tt.wantTemp) > 1e-9 {
				t.Errorf("temperature at %vm = %v, want %v", tt.altitude, got.GetTemperature(), tt.wantTemp)
			}
		})
	}
}

func TestExtrapolateTemperatureMonotone(t *testing.T) {
	prev := math.Inf(1)
	for alt := 0.0; alt <= 10000; alt += 500 {
		got := Extrapolate(stdSurface(), alt)
		if got.GetTemperature() >= prev {
			t.Fatalf("temperature at %vm = %v, not lower than %v", alt, got.GetTemperature(), prev)
		}
		prev = got.GetTemperature()
	}
}

func TestExtrapolatePressureDecreases(t *testing.T) {
	surface := stdSurface()
	surfaceHpa := surface.GetPressure() / 100.0

	atSurface := Extrapolate(surface, 0)
	if math.Abs(atSurface.GetPressure()-surfaceHpa) > 1e-9 {
		t.Errorf("pressure at surface = %v hPa, want %v hPa", atSurface.GetPressure(), surfaceHpa)
	}

	for alt := 500.0; alt <= 10000; alt += 500 {
		got := Extrapolate(surface, alt)
		if got.GetPressure() >= surfaceHpa {
			t.Fatalf("pressure at %vm = %v hPa, want < %v hPa", alt, got.GetPressure(), surfaceHpa)
		}
	}
}

func TestExtrapolateClampsAndLinearLaws(t *testing.T) {
	testCases := []struct {
		name           string
		altitude       float64
		wantHumidity   float64
		wantCloudCover float64
		wantWindSpeed  float64
		wantVisibility float64
	}{
		{name: "2000m", altitude: 2000, wantHumidity: 50, wantCloudCover: 20, wantWindSpeed: 9, wantVisibility: 12000},
		{name: "clamped at 15000m", altitude: 15000, wantHumidity: 0, wantCloudCover: 0, wantWindSpeed: 35, wantVisibility: 25000},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := Extrapolate(stdSurface(), tt.altitude)
			if math.Abs(got.GetHumidity()-tt.wantHumidity) > 1e-9 {
				t.Errorf("humidity = %v, want %v", got.GetHumidity(), tt.wantHumidity)
			}
			if math.Abs(got.GetCloudCover()-tt.wantCloudCover) > 1e-9 {
				t.Errorf("cloud cover = %v, want %v", got.GetCloudCover(), tt.wantCloudCover)
			}
			if math.Abs(got.GetWindSpeed()-tt.wantWindSpeed) > 1e-9 {
				t.Errorf("wind speed = %v, want %v", got.GetWindSpeed(), tt.wantWindSpeed)
			}
			if math.Abs(got.GetVisibility()-tt.wantVisibility) > 1e-9 {
				t.Errorf("visibility = %v, want %v", got.GetVisibility(), tt.wantVisibility)
			}
			if got.GetHumidity() < 0 || got.GetHumidity() > 100 {
				t.Errorf("humidity %v out of [0,100]", got.GetHumidity())
			}
			if got.GetCloudCover() < 0 || got.GetCloudCover() > 100 {
				t.Errorf("cloud cover %v out of [0,100]", got.GetCloudCover())
			}
			if got.GetWindDirection() != 270 {
				t.Errorf("wind direction = %v, want passthrough 270", got.GetWindDirection())
			}
		})
	}
}

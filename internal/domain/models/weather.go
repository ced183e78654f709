package model

type Coordinates struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

type WeatherReport struct {
	Code        int     `json:"code"`
	Temp        float64 `json:"temp"`
	Description string  `json:"description"`
}

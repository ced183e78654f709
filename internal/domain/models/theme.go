package model

type ThemeName string

const (
	ThemeClear        ThemeName = "clear"
	ThemeClouds       ThemeName = "clouds"
	ThemeRain         ThemeName = "rain"
	ThemeSnow         ThemeName = "snow"
	ThemeThunderstorm ThemeName = "thunderstorm"
	ThemeDefault      ThemeName = "default"
)

type Theme struct {
	Color string    `json:"color"`
	Name  ThemeName `json:"name"`
	Label string    `json:"label"`
}

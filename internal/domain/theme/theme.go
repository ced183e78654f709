// Package theme maps weather condition codes to the blog's accent theme.
//
// Codes follow the WMO interpretation used by Open-Meteo. The mapping is total:
// any code outside the known ranges yields the default theme.
package theme

import (
	model "blog-service/internal/domain/models"
)

type Locale string

const (
	LocaleKorean  Locale = "ko"
	LocaleEnglish Locale = "en"
)

const (
	colorTeal  = "#00C6BD"
	colorGray  = "#8E8E93"
	colorBlue  = "#4A90E2"
	colorFrost = "#B8C5D6"
)

var colors = map[model.ThemeName]string{
	model.ThemeClear:        colorTeal,
	model.ThemeClouds:       colorGray,
	model.ThemeRain:         colorBlue,
	model.ThemeSnow:         colorFrost,
	model.ThemeThunderstorm: colorBlue,
	model.ThemeDefault:      colorTeal,
}

var labels = map[Locale]map[model.ThemeName]string{
	LocaleKorean: {
		model.ThemeClear:        "맑음",
		model.ThemeClouds:       "흐림",
		model.ThemeRain:         "비",
		model.ThemeSnow:         "눈",
		model.ThemeThunderstorm: "천둥번개",
		model.ThemeDefault:      "기본",
	},
	LocaleEnglish: {
		model.ThemeClear:        "Clear",
		model.ThemeClouds:       "Cloudy",
		model.ThemeRain:         "Rain",
		model.ThemeSnow:         "Snow",
		model.ThemeThunderstorm: "Thunderstorm",
		model.ThemeDefault:      "Default",
	},
}

// ParseLocale returns the matching locale, falling back to Korean.
func ParseLocale(s string) Locale {
	if l := Locale(s); l == LocaleEnglish {
		return l
	}
	return LocaleKorean
}

// ForCode maps a weather code to a theme with Korean labels.
func ForCode(code int) model.Theme {
	return ForCodeLocalized(code, LocaleKorean)
}

func ForCodeLocalized(code int, locale Locale) model.Theme {
	return build(NameForCode(code), locale)
}

// Default is the theme used whenever the weather is unknown.
func Default(locale Locale) model.Theme {
	return build(model.ThemeDefault, locale)
}

func NameForCode(code int) model.ThemeName {
	switch {
	case code == 0:
		return model.ThemeClear
	case code == 1, code == 2, code == 3, code == 45, code == 48:
		return model.ThemeClouds
	case code >= 51 && code <= 67, code >= 80 && code <= 82:
		return model.ThemeRain
	case code >= 71 && code <= 77, code == 85, code == 86:
		return model.ThemeSnow
	case code >= 95 && code <= 99:
		return model.ThemeThunderstorm
	default:
		return model.ThemeDefault
	}
}

func build(name model.ThemeName, locale Locale) model.Theme {
	byName, ok := labels[locale]
	if !ok {
		byName = labels[LocaleKorean]
	}
	return model.Theme{
		Color: colors[name],
		Name:  name,
		Label: byName[name],
	}
}

package display

import (
	"github.com/kristevi/ourweather/internal/locale"
	"github.com/kristevi/ourweather/internal/models"
)

// UVLevelOf buckets a UV index value. Each boundary belongs to the upper
// bucket: 3.0 is moderate, 11.0 is extreme.
func UVLevelOf(value float64) models.UVLevel {
	switch {
	case value < 3:
		return models.UVLow
	case value < 6:
		return models.UVModerate
	case value < 8:
		return models.UVHigh
	case value < 11:
		return models.UVVeryHigh
	default:
		return models.UVExtreme
	}
}

var uvColors = map[models.UVLevel]string{
	models.UVLow:      "#4CAF50",
	models.UVModerate: "#FFC107",
	models.UVHigh:     "#FF9800",
	models.UVVeryHigh: "#F44336",
	models.UVExtreme:  "#9C27B0",
}

// NewUVIndex builds the display data for a UV index value.
func NewUVIndex(value float64, lang locale.Language) models.UVIndexData {
	msgs := locale.For(lang)
	level := UVLevelOf(value)

	data := models.UVIndexData{
		Value: value,
		Level: level,
		Color: uvColors[level],
	}
	switch level {
	case models.UVLow:
		data.Description, data.RiskLevel = msgs.UVLow, msgs.RiskLow
	case models.UVModerate:
		data.Description, data.RiskLevel = msgs.UVModerate, msgs.RiskModerate
	case models.UVHigh:
		data.Description, data.RiskLevel = msgs.UVHigh, msgs.RiskHigh
	case models.UVVeryHigh:
		data.Description, data.RiskLevel = msgs.UVVeryHigh, msgs.RiskVeryHigh
	default:
		data.Description, data.RiskLevel = msgs.UVExtreme, msgs.RiskExtreme
	}
	return data
}

package astro

import "AstroServe/internal/domain/models"

// SignDegree splits an absolute ecliptic longitude into its zodiac sign and
// the degree within that sign, [0,30).
func SignDegree(longitude float64) (models.Sign, float64) {
	lon := Normalize(longitude)
	sign := int(lon / 30)
	return models.Sign(sign), lon - float64(sign)*30
}

package pricing

import "fmt"

// Material identifies the print substrate used by a digital print job.
type Material string

const (
	MaterialFlex         Material = "FLEX"
	MaterialMatteSticker Material = "MATTE_STICKER"
	MaterialGlossSticker Material = "GLOSS_STICKER"
	MaterialFabric       Material = "FABRIC"
	MaterialLuminous     Material = "LUMINOUS"
	MaterialBacklit      Material = "BACKLIT"
	MaterialOther        Material = "OTHER"
)

// Materials lists every material in presentation order.
func Materials() []Material {
	return []Material{
		MaterialFlex,
		MaterialMatteSticker,
		MaterialGlossSticker,
		MaterialFabric,
		MaterialLuminous,
		MaterialBacklit,
		MaterialOther,
	}
}

// Valid reports whether m is one of the known materials.
func (m Material) Valid() bool {
	switch m {
	case MaterialFlex, MaterialMatteSticker, MaterialGlossSticker,
		MaterialFabric, MaterialLuminous, MaterialBacklit, MaterialOther:
		return true
	}
	return false
}

// Quality identifies the print-pass tier, not the print resolution.
type Quality string

const (
	QualityPass4 Quality = "PASS_4"
	QualityPass6 Quality = "PASS_6"
	QualityPass8 Quality = "PASS_8"
)

// Qualities lists every quality tier in presentation order.
func Qualities() []Quality {
	return []Quality{QualityPass4, QualityPass6, QualityPass8}
}

// Valid reports whether q is one of the known quality tiers.
func (q Quality) Valid() bool {
	switch q {
	case QualityPass4, QualityPass6, QualityPass8:
		return true
	}
	return false
}

// UnitCost returns the cost per square foot for a material and quality tier.
// The table is total over the closed enums; an unmapped combination is a
// configuration defect and panics instead of silently pricing at zero.
// Callers validate user input with Material.Valid and Quality.Valid first.
func UnitCost(m Material, q Quality) float64 {
	switch m {
	case MaterialFlex:
		return byQuality(q, 100, 140, 280)
	case MaterialMatteSticker:
		return byQuality(q, 150, 200, 280)
	case MaterialGlossSticker:
		return byQuality(q, 150, 200, 280)
	case MaterialFabric:
		return byQuality(q, 100, 140, 450)
	case MaterialLuminous:
		return byQuality(q, 100, 140, 350)
	case MaterialBacklit:
		return byQuality(q, 100, 140, 350)
	case MaterialOther:
		return byQuality(q, 100, 140, 280)
	}
	panic(fmt.Sprintf("pricing: no unit cost for material %q", m))
}

func byQuality(q Quality, pass4, pass6, pass8 float64) float64 {
	switch q {
	case QualityPass4:
		return pass4
	case QualityPass6:
		return pass6
	case QualityPass8:
		return pass8
	}
	panic(fmt.Sprintf("pricing: no unit cost for quality %q", q))
}

// MaterialCost returns the total material cost for the printed area.
// squareFeet must be positive for a submittable job; that is validated by
// the caller before the job is sent, not here.
func MaterialCost(m Material, q Quality, squareFeet float64) float64 {
	return UnitCost(m, q) * squareFeet
}

package units

import "math"

// Physical constants, SI unless noted.
const (
	G         = 6.674e-11  // m^3 kg^-1 s^-2
	SolarMass = 1.989e30   // kg
	Parsec    = 3.0857e16  // m
	Kpc       = 3.0857e19  // m
	AU        = 1.496e11   // m
	SolarRad  = 6.957e8    // m
	Year      = 3.1557e7   // s
	Myr       = 3.1557e13  // s
	LightKms  = 299792.458 // speed of light, km/s
)

func DegToRad(deg float64) float64 { return deg * math.Pi / 180.0 }

func RadToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }

func KpcToM(kpc float64) float64 { return kpc * Kpc }

func MToKpc(m float64) float64 { return m / Kpc }

func KmsToMs(kms float64) float64 { return kms * 1000.0 }

func MsToKms(ms float64) float64 { return ms / 1000.0 }

func KgToSolar(kg float64) float64 { return kg / SolarMass }

func SolarToKg(msun float64) float64 { return msun * SolarMass }

func SecToMyr(s float64) float64 { return s / Myr }

func MyrToSec(myr float64) float64 { return myr * Myr }

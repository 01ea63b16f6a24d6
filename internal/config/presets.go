package config

func intPtr(v int) *int { return &v }

// builtinPresets are always available. A user preset with the same name
// replaces the built-in one.
var builtinPresets = map[string]*Preset{
	"default": {
		Description: "One section from 0 to 99.99",
		Sections:    []SectionSpec{{Minimum: 0, Maximum: 99.99}},
	},
	"hsv": {
		Description: "Hue, saturation and value",
		Sections: []SectionSpec{
			{Format: "%1°  ", Minimum: 0, Maximum: 360, Decimals: intPtr(0), Wrapping: true},
			{Format: "%1  ", Minimum: 0, Maximum: 255, Decimals: intPtr(0)},
			{Format: "%1", Minimum: 0, Maximum: 255, Decimals: intPtr(0)},
		},
	},
	"lch": {
		Description: "Lightness, chroma and hue",
		Sections: []SectionSpec{
			{Format: "%1%  ", Minimum: 0, Maximum: 100, Decimals: intPtr(0)},
			{Format: "%1  ", Minimum: 0, Maximum: 255, Decimals: intPtr(0)},
			{Format: "%1°", Minimum: 0, Maximum: 360, Decimals: intPtr(0), Wrapping: true},
		},
	},
	"rgb": {
		Description: "Red, green and blue channels",
		Sections: []SectionSpec{
			{Format: "%1  ", Minimum: 0, Maximum: 255, Decimals: intPtr(0)},
			{Format: "%1  ", Minimum: 0, Maximum: 255, Decimals: intPtr(0)},
			{Format: "%1", Minimum: 0, Maximum: 255, Decimals: intPtr(0)},
		},
	},
	"time": {
		Description: "Hours, minutes and seconds",
		Sections: []SectionSpec{
			{Format: "%1:", Minimum: 0, Maximum: 24, Decimals: intPtr(0), Wrapping: true},
			{Format: "%1:", Minimum: 0, Maximum: 60, Decimals: intPtr(0), Wrapping: true},
			{Format: "%1", Minimum: 0, Maximum: 60, Decimals: intPtr(0), Wrapping: true},
		},
	},
	"coordinates": {
		Description: "Latitude and longitude in degrees",
		Sections: []SectionSpec{
			{Format: "%1° N  ", Minimum: -90, Maximum: 90, Decimals: intPtr(4)},
			{Format: "%1° E", Minimum: -180, Maximum: 180, Decimals: intPtr(4)},
		},
	},
}

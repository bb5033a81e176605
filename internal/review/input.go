// Package review holds the review record a user fills in and the template
// engine that turns it into the three shareable text variants.
package review

import "strings"

// ServiceType is the kind of place being reviewed.
// Values are the display labels used verbatim in the generated text.
type ServiceType string

const (
	ServiceCafe          ServiceType = "مقهى"
	ServiceRestaurant    ServiceType = "مطعم"
	ServiceHotel         ServiceType = "فندق"
	ServiceEntertainment ServiceType = "مكان ترفيهي"
	ServiceGeneral       ServiceType = "خدمة عامة"
)

// DefaultServiceType is selected when a session starts.
const DefaultServiceType = ServiceCafe

// ServiceOption describes one entry of the service-type picker.
type ServiceOption struct {
	Type  ServiceType
	Icon  string
	Label string
}

// ServiceOptions lists the closed set of service types in picker order.
var ServiceOptions = []ServiceOption{
	{Type: ServiceCafe, Icon: "☕", Label: "مقهى"},
	{Type: ServiceRestaurant, Icon: "🍽️", Label: "مطعم"},
	{Type: ServiceHotel, Icon: "🏨", Label: "فندق"},
	{Type: ServiceEntertainment, Icon: "🎡", Label: "ترفيه"},
	{Type: ServiceGeneral, Icon: "🛠️", Label: "خدمة"},
}

// Valid reports whether t is one of the known service types.
func (t ServiceType) Valid() bool {
	for _, opt := range ServiceOptions {
		if opt.Type == t {
			return true
		}
	}
	return false
}

// ParseServiceType accepts either the Arabic label or an English alias
// (cafe, restaurant, hotel, entertainment, service).
func ParseServiceType(s string) (ServiceType, bool) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "cafe", "café", "coffee":
		return ServiceCafe, true
	case "restaurant":
		return ServiceRestaurant, true
	case "hotel":
		return ServiceHotel, true
	case "entertainment", "venue":
		return ServiceEntertainment, true
	case "service", "general":
		return ServiceGeneral, true
	}
	if t := ServiceType(s); t.Valid() {
		return t, true
	}
	return "", false
}

// MaxRating is the top of the star scale.
const MaxRating = 5

// Input is the record collected on the entry form.
// Rating 0 means not yet rated.
type Input struct {
	PlaceName   string      `json:"place_name" yaml:"place_name"`
	ServiceType ServiceType `json:"service_type" yaml:"service_type"`
	Rating      int         `json:"rating" yaml:"rating"`
	Pros        string      `json:"pros,omitempty" yaml:"pros,omitempty"`
	Cons        string      `json:"cons,omitempty" yaml:"cons,omitempty"`
}

// NewInput returns the record a fresh session starts with.
func NewInput() Input {
	return Input{ServiceType: DefaultServiceType}
}

// Field names one editable text field of Input.
type Field string

const (
	FieldPlaceName   Field = "placeName"
	FieldServiceType Field = "serviceType"
	FieldPros        Field = "pros"
	FieldCons        Field = "cons"
)

// Set assigns value to the named field. Unknown fields and service types
// outside the closed set are ignored and reported as false.
func (in *Input) Set(field Field, value string) bool {
	switch field {
	case FieldPlaceName:
		in.PlaceName = value
	case FieldPros:
		in.Pros = value
	case FieldCons:
		in.Cons = value
	case FieldServiceType:
		t, ok := ParseServiceType(value)
		if !ok {
			return false
		}
		in.ServiceType = t
	default:
		return false
	}
	return true
}

// Generated holds the three rendered variants. The zero value is the
// "nothing generated yet" state and renders as empty text.
type Generated struct {
	Short     string `json:"short"`
	Medium    string `json:"medium"`
	Cinematic string `json:"cinematic"`
}

// Variant names one of the generated text styles.
type Variant string

const (
	VariantShort     Variant = "short"
	VariantMedium    Variant = "medium"
	VariantCinematic Variant = "cinematic"
)

// Variants lists the styles in display order.
var Variants = []Variant{VariantShort, VariantMedium, VariantCinematic}

// Text returns the variant's text, or "" for an unknown variant.
func (g Generated) Text(v Variant) string {
	switch v {
	case VariantShort:
		return g.Short
	case VariantMedium:
		return g.Medium
	case VariantCinematic:
		return g.Cinematic
	}
	return ""
}

// IsEmpty reports whether nothing has been generated.
func (g Generated) IsEmpty() bool {
	return g == Generated{}
}

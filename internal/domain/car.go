package domain

// Car form field identifiers, in wire order.
const (
	FieldCarNumber = "carNumber"
	FieldCity      = "city"
	FieldHighway   = "highway"
	FieldDistrict  = "district"
	FieldIdle      = "idle"
)

// CarFields lists the car form fields in the order they are encoded.
var CarFields = []string{FieldCarNumber, FieldCity, FieldHighway, FieldDistrict, FieldIdle}

// CarRecord is a vehicle registration captured from the car form.
// Values are free-form text; only presence is checked.
type CarRecord struct {
	RegistrationNumber string `field:"carNumber" validate:"required"`
	City               string `field:"city" validate:"required"`
	HighwayShare       string `field:"highway" validate:"required"`
	District           string `field:"district" validate:"required"`
	IdleShare          string `field:"idle" validate:"required"`
}

// Values returns the record values in CarFields order.
func (r CarRecord) Values() []string {
	return []string{r.RegistrationNumber, r.City, r.HighwayShare, r.District, r.IdleShare}
}

package domain

// Trip form field identifiers, in wire order.
const (
	FieldStartOdometer    = "startOdometer"
	FieldDistance         = "km"
	FieldCityDistance     = "cityKm"
	FieldHighwayDistance  = "highwayKm"
	FieldDistrictDistance = "districtKm"
	FieldIdleTime         = "idleTime"
	FieldFuelStart        = "fuelStart"
	FieldRefuel           = "refuel"
)

// TripFields lists the trip form fields in the order they are encoded.
var TripFields = []string{
	FieldStartOdometer,
	FieldDistance,
	FieldCityDistance,
	FieldHighwayDistance,
	FieldDistrictDistance,
	FieldIdleTime,
	FieldFuelStart,
	FieldRefuel,
}

// TripRecord is a daily trip log captured from the trip form.
type TripRecord struct {
	StartOdometer    string `field:"startOdometer" validate:"required"`
	Distance         string `field:"km" validate:"required"`
	CityDistance     string `field:"cityKm" validate:"required"`
	HighwayDistance  string `field:"highwayKm" validate:"required"`
	DistrictDistance string `field:"districtKm" validate:"required"`
	IdleTime         string `field:"idleTime" validate:"required"`
	FuelStart        string `field:"fuelStart" validate:"required"`
	RefuelAmount     string `field:"refuel" validate:"required"`
}

// Values returns the record values in TripFields order.
func (r TripRecord) Values() []string {
	return []string{
		r.StartOdometer,
		r.Distance,
		r.CityDistance,
		r.HighwayDistance,
		r.DistrictDistance,
		r.IdleTime,
		r.FuelStart,
		r.RefuelAmount,
	}
}

package form

import (
	"fuelform/internal/domain"
	"fuelform/internal/webapp"
)

// TripForm is the bound trip log form.
type TripForm struct {
	startOdometer    webapp.Field
	distance         webapp.Field
	cityDistance     webapp.Field
	highwayDistance  webapp.Field
	districtDistance webapp.Field
	idleTime         webapp.Field
	fuelStart        webapp.Field
	refuel           webapp.Field
}

// BindTrip binds the trip form fields of doc.
func BindTrip(doc webapp.Document) (*TripForm, error) {
	f, err := bind(doc, domain.TripFields)
	if err != nil {
		return nil, err
	}
	return &TripForm{
		startOdometer:    f[domain.FieldStartOdometer],
		distance:         f[domain.FieldDistance],
		cityDistance:     f[domain.FieldCityDistance],
		highwayDistance:  f[domain.FieldHighwayDistance],
		districtDistance: f[domain.FieldDistrictDistance],
		idleTime:         f[domain.FieldIdleTime],
		fuelStart:        f[domain.FieldFuelStart],
		refuel:           f[domain.FieldRefuel],
	}, nil
}

// Record reads the current field values.
func (f *TripForm) Record() domain.TripRecord {
	return domain.TripRecord{
		StartOdometer:    f.startOdometer.Value(),
		Distance:         f.distance.Value(),
		CityDistance:     f.cityDistance.Value(),
		HighwayDistance:  f.highwayDistance.Value(),
		DistrictDistance: f.districtDistance.Value(),
		IdleTime:         f.idleTime.Value(),
		FuelStart:        f.fuelStart.Value(),
		RefuelAmount:     f.refuel.Value(),
	}
}

package form

import (
	"fuelform/internal/domain"
	"fuelform/internal/webapp"
)

// CarForm is the bound vehicle registration form.
type CarForm struct {
	carNumber webapp.Field
	city      webapp.Field
	highway   webapp.Field
	district  webapp.Field
	idle      webapp.Field
}

// BindCar binds the car form fields of doc.
func BindCar(doc webapp.Document) (*CarForm, error) {
	f, err := bind(doc, domain.CarFields)
	if err != nil {
		return nil, err
	}
	return &CarForm{
		carNumber: f[domain.FieldCarNumber],
		city:      f[domain.FieldCity],
		highway:   f[domain.FieldHighway],
		district:  f[domain.FieldDistrict],
		idle:      f[domain.FieldIdle],
	}, nil
}

// Record reads the current field values.
func (f *CarForm) Record() domain.CarRecord {
	return domain.CarRecord{
		RegistrationNumber: f.carNumber.Value(),
		City:               f.city.Value(),
		HighwayShare:       f.highway.Value(),
		District:           f.district.Value(),
		IdleShare:          f.idle.Value(),
	}
}

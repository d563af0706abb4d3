package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuelform/internal/domain"
	"fuelform/internal/webapp"
)

// inputField is a Field whose value can change after binding.
type inputField struct{ value string }

func (f *inputField) Value() string { return f.value }

type inputDocument map[string]*inputField

func (d inputDocument) Field(id string) (webapp.Field, bool) {
	f, ok := d[id]
	if !ok {
		return nil, false
	}
	return f, true
}

func TestBindCar_MissingFieldFailsAtBind(t *testing.T) {
	doc := webapp.MapDocument{"carNumber": "А001АА", "city": "10", "highway": "20"}

	f, err := BindCar(doc)

	assert.Nil(t, f)
	require.ErrorIs(t, err, ErrFieldNotBound)
	var berr *BindError
	require.True(t, errors.As(err, &berr))
	assert.Equal(t, []string{"district", "idle"}, berr.Fields)
	assert.Equal(t, "form field not bound: district, idle", err.Error())
}

func TestBindTrip_MissingFieldFailsAtBind(t *testing.T) {
	_, err := BindTrip(webapp.MapDocument{})

	var berr *BindError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, domain.TripFields, berr.Fields)
}

func TestBindCar_EmptyValueIsBound(t *testing.T) {
	doc := webapp.MapDocument{}
	for _, id := range domain.CarFields {
		doc[id] = ""
	}

	f, err := BindCar(doc)

	require.NoError(t, err)
	assert.Equal(t, domain.CarRecord{}, f.Record())
}

func TestCarForm_RecordReadsCurrentValues(t *testing.T) {
	doc := inputDocument{}
	for _, id := range domain.CarFields {
		doc[id] = &inputField{}
	}
	f, err := BindCar(doc)
	require.NoError(t, err)

	doc["carNumber"].value = "А001АА"
	doc["idle"].value = "3"

	rec := f.Record()
	assert.Equal(t, "А001АА", rec.RegistrationNumber)
	assert.Equal(t, "3", rec.IdleShare)
	assert.Equal(t, []string{"А001АА", "", "", "", "3"}, rec.Values())
}

func TestTripForm_RecordMapsFieldsInOrder(t *testing.T) {
	doc := webapp.MapDocument{}
	for i, id := range domain.TripFields {
		doc[id] = string(rune('a' + i))
	}

	f, err := BindTrip(doc)
	require.NoError(t, err)

	rec := f.Record()
	assert.Equal(t, domain.TripRecord{
		StartOdometer:    "a",
		Distance:         "b",
		CityDistance:     "c",
		HighwayDistance:  "d",
		DistrictDistance: "e",
		IdleTime:         "f",
		FuelStart:        "g",
		RefuelAmount:     "h",
	}, rec)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h"}, rec.Values())
}

func TestTripForm_RecordReadsFieldsByID(t *testing.T) {
	doc := webapp.MapDocument{
		domain.FieldRefuel:           "25",
		domain.FieldFuelStart:        "40",
		domain.FieldIdleTime:         "1.5",
		domain.FieldDistrictDistance: "20",
		domain.FieldHighwayDistance:  "80",
		domain.FieldCityDistance:     "50",
		domain.FieldDistance:         "150",
		domain.FieldStartOdometer:    "12000",
	}

	f, err := BindTrip(doc)
	require.NoError(t, err)

	assert.Equal(t, domain.TripRecord{
		StartOdometer:    "12000",
		Distance:         "150",
		CityDistance:     "50",
		HighwayDistance:  "80",
		DistrictDistance: "20",
		IdleTime:         "1.5",
		FuelStart:        "40",
		RefuelAmount:     "25",
	}, f.Record())
}

func TestTripForm_RecordReadsCurrentValues(t *testing.T) {
	doc := inputDocument{}
	for _, id := range domain.TripFields {
		doc[id] = &inputField{}
	}

	f, err := BindTrip(doc)
	require.NoError(t, err)
	assert.Empty(t, f.Record().RefuelAmount)

	doc[domain.FieldRefuel].value = "25"
	assert.Equal(t, "25", f.Record().RefuelAmount)
}

func TestMissing(t *testing.T) {
	tests := []struct {
		name   string
		record any
		want   []string
	}{
		{
			name:   "complete car",
			record: domain.CarRecord{RegistrationNumber: "x", City: "1", HighwayShare: "2", District: "3", IdleShare: "4"},
			want:   nil,
		},
		{
			name:   "car missing two",
			record: domain.CarRecord{RegistrationNumber: "x", HighwayShare: "2", District: "3"},
			want:   []string{"city", "idle"},
		},
		{
			name:   "empty trip",
			record: domain.TripRecord{},
			want:   domain.TripFields,
		},
		{
			name:   "pointer to trip",
			record: &domain.TripRecord{StartOdometer: "1", Distance: "1", CityDistance: "1", HighwayDistance: "1", DistrictDistance: "1", IdleTime: "1", FuelStart: "1"},
			want:   []string{"refuel"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Missing(tt.record)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMissing_RejectsNonStruct(t *testing.T) {
	_, err := Missing("not a record")
	assert.Error(t, err)
}

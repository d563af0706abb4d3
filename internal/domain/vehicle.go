package domain

// Command tags identify the message type on the wire.
const (
	TagAddCar  = "add_car"
	TagAddTrip = "add_trip"
)

// ContainerCarsList is the element the vehicle list is rendered into.
const ContainerCarsList = "carsList"

// Vehicle is one entry of the vehicle registry.
type Vehicle struct {
	RegistrationNumber string
}

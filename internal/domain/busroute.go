package domain

type BusType string

const (
	BusExpressLuxury BusType = "Express Luxury"
	BusPremiumCoach  BusType = "Premium Coach"
	BusSleeper       BusType = "Sleeper Bus"
	BusStandardCoach BusType = "Standard Coach"
	BusBusinessClass BusType = "Business Class"
)

// BusRoute is fetched from the backend and never mutated locally;
// a stale copy is replaced only by a re-fetch.
type BusRoute struct {
	ID             string  `json:"_id"`
	RouteName      string  `json:"routeName"`
	TravelDate     string  `json:"travelDate"`
	PickupTime     string  `json:"pickupTime"`
	DropOffTime    string  `json:"dropOffTime"`
	StartingPoint  string  `json:"startingPoint"`
	Destination    string  `json:"destination"`
	Price          float64 `json:"price"`
	SeatsAvailable int     `json:"seatsAvailable"`
	BusType        string  `json:"busType"`
}

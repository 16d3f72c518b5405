package directory

import "busline/internal/domain"

// SampleRoutes seeds demo environments and powers the popular-routes
// section when the backend is unreachable.
var SampleRoutes = []domain.BusRoute{
	{
		ID:             "1",
		RouteName:      "Express Morning Route",
		TravelDate:     "2024-03-25",
		PickupTime:     "07:00 AM",
		DropOffTime:    "11:30 AM",
		StartingPoint:  "Harare",
		Destination:    "Bulawayo",
		Price:          45,
		SeatsAvailable: 32,
		BusType:        string(domain.BusExpressLuxury),
	},
	{
		ID:             "2",
		RouteName:      "Afternoon Comfort",
		TravelDate:     "2024-03-25",
		PickupTime:     "02:00 PM",
		DropOffTime:    "06:30 PM",
		StartingPoint:  "Mutare",
		Destination:    "Masvingo",
		Price:          55,
		SeatsAvailable: 28,
		BusType:        string(domain.BusPremiumCoach),
	},
	{
		ID:             "3",
		RouteName:      "Night Liner",
		TravelDate:     "2024-03-25",
		PickupTime:     "10:00 PM",
		DropOffTime:    "06:00 AM",
		StartingPoint:  "Victoria Falls",
		Destination:    "Gweru",
		Price:          35,
		SeatsAvailable: 45,
		BusType:        string(domain.BusSleeper),
	},
	{
		ID:             "4",
		RouteName:      "City Hopper",
		TravelDate:     "2024-03-25",
		PickupTime:     "09:30 AM",
		DropOffTime:    "12:30 PM",
		StartingPoint:  "Mutare",
		Destination:    "Harare",
		Price:          25,
		SeatsAvailable: 15,
		BusType:        string(domain.BusStandardCoach),
	},
	{
		ID:             "5",
		RouteName:      "Business Express",
		TravelDate:     "2024-03-25",
		PickupTime:     "08:00 AM",
		DropOffTime:    "11:00 AM",
		StartingPoint:  "Bulawayo",
		Destination:    "Victoria Falls",
		Price:          40,
		SeatsAvailable: 38,
		BusType:        string(domain.BusBusinessClass),
	},
}

package core_test

import (
	"fmt"

	"github.com/BayronJDv/funcional-final/core"
)

// ExampleNewNetwork builds a tiny network and lists the departures of one airport.
func ExampleNewNetwork() {
	airports := []core.Airport{
		{Code: "BOG", GMT: -500},
		{Code: "MDE", GMT: -500},
		{Code: "MAD", GMT: 100},
	}
	flights := []core.Flight{
		{Airline: "AV", Number: 10, Origin: "BOG", Destination: "MDE", DepHour: 6, ArrHour: 7},
		{Airline: "IB", Number: 6584, Origin: "BOG", Destination: "MAD", DepHour: 18, ArrHour: 11, ArrMinute: 30},
		{Airline: "AV", Number: 11, Origin: "MDE", Destination: "BOG", DepHour: 8, ArrHour: 9},
	}

	net, err := core.NewNetwork(airports, flights)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, f := range net.Departures("BOG") {
		fmt.Println(f)
	}
	fmt.Println(net.GMT("MAD"), net.GMT("unknown"))

	// Output:
	// AV10 BOG 06:00 -> MDE 07:00
	// IB6584 BOG 18:00 -> MAD 11:30
	// 100 0
}

package types

import (
	"fmt"
	"strings"
)

// Area is a Swedish electricity bidding zone.
type Area string

const (
	SE1 Area = "SE1" // Luleå
	SE2 Area = "SE2" // Sundsvall
	SE3 Area = "SE3" // Stockholm
	SE4 Area = "SE4" // Malmö
)

const DefaultArea = SE3

var Areas = []Area{SE1, SE2, SE3, SE4}

func ParseArea(str string) (Area, error) {
	a := Area(strings.ToUpper(strings.TrimSpace(str)))
	if !a.Valid() {
		return "", fmt.Errorf("unknown price area %q, expected one of SE1, SE2, SE3, SE4", str)
	}
	return a, nil
}

func (a Area) Valid() bool {
	switch a {
	case SE1, SE2, SE3, SE4:
		return true
	}
	return false
}

// Index returns the position of the area in Areas, or -1.
func (a Area) Index() int {
	for i, area := range Areas {
		if area == a {
			return i
		}
	}
	return -1
}

// Next cycles through the areas, wrapping around in both directions.
func (a Area) Next(step int) Area {
	i := a.Index()
	if i < 0 {
		return DefaultArea
	}
	n := len(Areas)
	return Areas[((i+step)%n+n)%n]
}

func (a Area) String() string {
	return string(a)
}

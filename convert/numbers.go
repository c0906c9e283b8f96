package convert

import (
	"fmt"
	"math"
)

func TwoDecimals(number float64) float64 {
	return RoundFloat64(number, 2)
}

func RoundFloat64(number float64, decimals int) float64 {
	return math.Round(number*math.Pow10(decimals)) / math.Pow10(decimals)
}

// MWhToKWh converts a price per MWh to a price per kWh with four decimals.
func MWhToKWh(pricePerMWh float64) float64 {
	return RoundFloat64(pricePerMWh/1e3, 4)
}

// Price formats a unit price with two decimals, "-0.00" is shown as "0.00".
func Price(number float64) string {
	rounded := TwoDecimals(number)
	if rounded == 0 {
		rounded = 0
	}
	return fmt.Sprintf("%.2f", rounded)
}

// SignedPrice is like Price but always carries a sign, "+0.50" or "-0.30".
func SignedPrice(number float64) string {
	rounded := TwoDecimals(number)
	if rounded == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%+.2f", rounded)
}

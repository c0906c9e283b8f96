// Package priceapi picks the spot price provider named in the config.
package priceapi

import (
	"fmt"

	"github.com/angas/elpris-go/config"
	"github.com/angas/elpris-go/elprisetjustnu"
	"github.com/angas/elpris-go/nordpool"
	"github.com/angas/elpris-go/types"
)

func New(cnfg config.AppConfigPriceApi) (types.PriceProvider, error) {
	switch cnfg.Provider {
	case config.ProviderElPrisetJustNu, "":
		return elprisetjustnu.New(cnfg.BaseUrl, cnfg.GetTimeout()), nil
	case config.ProviderNordpool:
		return nordpool.New(cnfg.BaseUrl, cnfg.GetTimeout()), nil
	default:
		return nil, fmt.Errorf("unknown price provider %q", cnfg.Provider)
	}
}

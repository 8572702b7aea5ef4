package enum

import "encoding/json"

// SaleState represents where the register is in the sale lifecycle
type SaleState int

const (
	SaleStateNoSale SaleState = 0
	SaleStateOpen   SaleState = 1
	SaleStateEnded  SaleState = 2
	SaleStatePaid   SaleState = 3
)

func (s SaleState) String() string {
	names := [...]string{"NoSale", "SaleOpen", "SaleEnded", "SalePaid"}
	if int(s) < 0 || int(s) >= len(names) {
		return "NoSale"
	}
	return names[s]
}

func (s SaleState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

package flipp

import (
	"encoding/json"
	"fmt"
)

type FlyersResponse struct {
	Flyers []Flyer `json:"flyers"`
}

// FlyerResponse holds a single flyer's items. Some flyers carry them
// under "items", others under "spread_items".
type FlyerResponse struct {
	Items       []Item `json:"items"`
	SpreadItems []Item `json:"spread_items"`
}

type Flyer struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Merchant  string `json:"merchant"`
	ValidFrom string `json:"valid_from"`
	ValidTo   string `json:"valid_to"`
}

type Item struct {
	Name          string    `json:"name"`
	Price         FlexValue `json:"price"`
	CurrentPrice  FlexValue `json:"current_price"`
	PriceText     FlexValue `json:"price_text"`
	SalePrice     FlexValue `json:"sale_price"`
	OriginalPrice FlexValue `json:"original_price"`
	ValidTo       string    `json:"valid_to"`
	Description   string    `json:"description"`
}

// RawPrice returns the first populated price field, in the same precedence
// order the flyer backend populates them.
func (i Item) RawPrice() string {
	for _, v := range []FlexValue{i.Price, i.CurrentPrice, i.PriceText, i.SalePrice, i.OriginalPrice} {
		if v != "" {
			return string(v)
		}
	}
	return ""
}

// FlexValue decodes JSON fields that arrive as either a string or a number.
type FlexValue string

func (f *FlexValue) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexValue(n.String())
		return nil
	}
	return fmt.Errorf("flipp: cannot decode %q as string or number", b)
}

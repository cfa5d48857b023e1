// Package catalog normalizes the loosely-shaped product and store payloads
// the shopping backends return into the canonical records the rest of the app
// renders. The backends disagree on field names (price vs pricing, rating vs
// ratings, id vs _id); everything downstream of this package sees one shape.
//
// Normalization never fails loudly: a record that cannot be salvaged comes
// back nil and an array drops its bad entries, so one malformed product from
// an endpoint degrades to a shorter list instead of a crashed screen. Only a
// missing id, name, or price rejects a record; a misshapen optional field
// falls back to its zero value.
package catalog

import (
	"bytes"
	"encoding/json"

	"github.com/samber/lo"
)

const unknownBrand = "Unknown Brand"

// Product is the canonical product record.
type Product struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Price              Price      `json:"price"`
	Rating             Rating     `json:"rating"`
	Brand              string     `json:"brand"`
	Category           string     `json:"category"`
	Cashback           *Cashback  `json:"cashback,omitempty"`
	AvailabilityStatus string     `json:"availabilityStatus,omitempty"`
	Inventory          *Inventory `json:"inventory,omitempty"`
	Tags               []string   `json:"tags"`
	Description        string     `json:"description"`
	IsNewArrival       bool       `json:"isNewArrival"`
}

type Price struct {
	Current  float64  `json:"current"`
	Original *float64 `json:"original,omitempty"`
}

type Rating struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

type Cashback struct {
	Percentage float64  `json:"percentage"`
	MaxAmount  *float64 `json:"maxAmount,omitempty"`
}

type Inventory struct {
	Stock             int  `json:"stock"`
	LowStockThreshold *int `json:"lowStockThreshold,omitempty"`
}

// rawPrice accepts {"current": .., "original": ..} or a bare number; any
// other shape reads as unset.
type rawPrice struct {
	Current  flexFloat
	Original flexFloat
}

func (p *rawPrice) UnmarshalJSON(data []byte) error {
	*p = rawPrice{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '{' {
		var obj struct {
			Current  flexFloat `json:"current"`
			Original flexFloat `json:"original"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil
		}
		*p = rawPrice{Current: obj.Current, Original: obj.Original}
		return nil
	}
	var v flexFloat
	_ = v.UnmarshalJSON(data)
	*p = rawPrice{Current: v}
	return nil
}

// rawRating accepts {"value": .., "count": ..} or a bare numeric rating.
// Anything else leaves ok false so resolution falls through to the ratings
// variant or the zero rating.
type rawRating struct {
	Value flexFloat
	Count flexInt
	ok    bool
}

func (r *rawRating) UnmarshalJSON(data []byte) error {
	*r = rawRating{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '{' {
		var obj struct {
			Value flexFloat `json:"value"`
			Count flexInt   `json:"count"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil
		}
		*r = rawRating{Value: obj.Value, Count: obj.Count, ok: true}
		return nil
	}
	var v flexFloat
	_ = v.UnmarshalJSON(data)
	if v.Set {
		*r = rawRating{Value: v, ok: true}
	}
	return nil
}

type rawRatings struct {
	Average flexFloat
	Total   flexInt
	ok      bool
}

func (r *rawRatings) UnmarshalJSON(data []byte) error {
	*r = rawRatings{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '{' {
		var obj struct {
			Average flexFloat `json:"average"`
			Total   flexInt   `json:"total"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil
		}
		*r = rawRatings{Average: obj.Average, Total: obj.Total, ok: true}
		return nil
	}
	var v flexFloat
	_ = v.UnmarshalJSON(data)
	if v.Set {
		*r = rawRatings{Average: v, ok: true}
	}
	return nil
}

type rawProduct struct {
	ID                 flexString    `json:"id"`
	AltID              flexString    `json:"_id"`
	Name               flexString    `json:"name"`
	Price              *rawPrice     `json:"price"`
	Pricing            *rawPricing   `json:"pricing"`
	Rating             *rawRating    `json:"rating"`
	Ratings            *rawRatings   `json:"ratings"`
	Brand              flexString    `json:"brand"`
	Store              *rawStoreRef  `json:"store"`
	Category           categoryName  `json:"category"`
	Cashback           *rawCashback  `json:"cashback"`
	AvailabilityStatus flexString    `json:"availabilityStatus"`
	Inventory          *rawInventory `json:"inventory"`
	Tags               stringList    `json:"tags"`
	Description        flexString    `json:"description"`
	IsNewArrival       flexBool      `json:"isNewArrival"`
}

type rawPricing struct {
	SalePrice flexFloat
	BasePrice flexFloat
}

func (p *rawPricing) UnmarshalJSON(data []byte) error {
	*p = rawPricing{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	var obj struct {
		SalePrice flexFloat `json:"salePrice"`
		BasePrice flexFloat `json:"basePrice"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	*p = rawPricing{SalePrice: obj.SalePrice, BasePrice: obj.BasePrice}
	return nil
}

type rawStoreRef struct {
	Name string
}

func (s *rawStoreRef) UnmarshalJSON(data []byte) error {
	*s = rawStoreRef{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	var obj struct {
		Name flexString `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	s.Name = string(obj.Name)
	return nil
}

type rawCashback struct {
	Percentage flexFloat
	MaxAmount  flexFloat
	ok         bool
}

func (c *rawCashback) UnmarshalJSON(data []byte) error {
	*c = rawCashback{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	var obj struct {
		Percentage flexFloat `json:"percentage"`
		MaxAmount  flexFloat `json:"maxAmount"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	*c = rawCashback{Percentage: obj.Percentage, MaxAmount: obj.MaxAmount, ok: true}
	return nil
}

type rawInventory struct {
	Quantity          flexInt
	LowStockThreshold flexInt
	ok                bool
}

func (i *rawInventory) UnmarshalJSON(data []byte) error {
	*i = rawInventory{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	var obj struct {
		Quantity          flexInt `json:"quantity"`
		LowStockThreshold flexInt `json:"lowStockThreshold"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	*i = rawInventory{Quantity: obj.Quantity, LowStockThreshold: obj.LowStockThreshold, ok: true}
	return nil
}

// NormalizeID resolves a record's identifier from id or _id, id winning when
// both are present. The second return is false for non-object input and for
// records with neither field.
func NormalizeID(data []byte) (string, bool) {
	var raw struct {
		ID    flexString `json:"id"`
		AltID flexString `json:"_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", false
	}
	return resolveID(raw.ID, raw.AltID)
}

func resolveID(id, altID flexString) (string, bool) {
	if id != "" {
		return string(id), true
	}
	if altID != "" {
		return string(altID), true
	}
	return "", false
}

// NormalizeProduct builds a canonical Product from a raw backend record.
// It returns nil when the record is not a JSON object or lacks a resolvable
// id, name, or current price; it never returns a partially-populated record.
// Optional fields that arrive in an unreadable shape degrade to their zero
// values instead of rejecting the record.
func NormalizeProduct(data []byte) *Product {
	var raw rawProduct
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	id, ok := resolveID(raw.ID, raw.AltID)
	if !ok {
		return nil
	}
	if raw.Name == "" {
		return nil
	}
	price, ok := resolvePrice(raw.Price, raw.Pricing)
	if !ok {
		return nil
	}

	p := &Product{
		ID:                 id,
		Name:               string(raw.Name),
		Price:              price,
		Rating:             resolveRating(raw.Rating, raw.Ratings),
		Brand:              resolveBrand(string(raw.Brand), raw.Store),
		Category:           string(raw.Category),
		AvailabilityStatus: string(raw.AvailabilityStatus),
		Tags:               raw.Tags,
		Description:        string(raw.Description),
		IsNewArrival:       bool(raw.IsNewArrival),
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if raw.Cashback != nil && raw.Cashback.ok {
		cb := &Cashback{Percentage: raw.Cashback.Percentage.Value}
		if raw.Cashback.MaxAmount.Set {
			cb.MaxAmount = &raw.Cashback.MaxAmount.Value
		}
		p.Cashback = cb
	}
	if raw.Inventory != nil && raw.Inventory.ok {
		inv := &Inventory{Stock: raw.Inventory.Quantity.Value}
		if raw.Inventory.LowStockThreshold.Set {
			v := raw.Inventory.LowStockThreshold.Value
			inv.LowStockThreshold = &v
		}
		p.Inventory = inv
	}
	return p
}

// resolvePrice prefers the price block over the pricing variant
// (salePrice maps to current, basePrice to original).
func resolvePrice(price *rawPrice, pricing *rawPricing) (Price, bool) {
	if price != nil && price.Current.Set {
		p := Price{Current: price.Current.Value}
		if price.Original.Set {
			p.Original = &price.Original.Value
		}
		return p, true
	}
	if pricing != nil && pricing.SalePrice.Set {
		p := Price{Current: pricing.SalePrice.Value}
		if pricing.BasePrice.Set {
			p.Original = &pricing.BasePrice.Value
		}
		return p, true
	}
	return Price{}, false
}

// resolveRating never rejects; absent or unreadable blocks default to {0,0}.
func resolveRating(rating *rawRating, ratings *rawRatings) Rating {
	if rating != nil && rating.ok {
		return Rating{Value: rating.Value.Value, Count: rating.Count.Value}
	}
	if ratings != nil && ratings.ok {
		return Rating{Value: ratings.Average.Value, Count: ratings.Total.Value}
	}
	return Rating{}
}

func resolveBrand(brand string, store *rawStoreRef) string {
	if brand != "" {
		return brand
	}
	if store != nil && store.Name != "" {
		return store.Name
	}
	return unknownBrand
}

// NormalizeProducts maps a raw backend array through NormalizeProduct,
// dropping entries that do not validate and keeping the relative order of the
// ones that do. Non-array input yields an empty slice.
func NormalizeProducts(data []byte) []Product {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return []Product{}
	}
	return lo.FilterMap(items, func(item json.RawMessage, _ int) (Product, bool) {
		p := NormalizeProduct(item)
		if p == nil {
			return Product{}, false
		}
		return *p, true
	})
}

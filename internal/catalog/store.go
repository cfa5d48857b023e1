package catalog

import (
	"bytes"
	"encoding/json"

	"github.com/samber/lo"
)

// topRatedThreshold is exclusive: a 4.5 store is not top rated, a 4.51 is.
const topRatedThreshold = 4.5

// Store is the canonical store record.
type Store struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Rating       Rating    `json:"rating"`
	IsTopRated   bool      `json:"isTopRated"`
	IsTrending   bool      `json:"isTrending"`
	Location     *Location `json:"location,omitempty"`
	DeliveryTime string    `json:"deliveryTime,omitempty"`
	MinimumOrder *float64  `json:"minimumOrder,omitempty"`
}

// Location keeps Distance as a pointer without omitempty: the backends treat
// "present but unknown distance" as meaningful, so an absent distance still
// marshals as an explicit null.
type Location struct {
	Address  string   `json:"address,omitempty"`
	City     string   `json:"city,omitempty"`
	Distance *float64 `json:"distance"`
}

type rawStore struct {
	ID           flexString   `json:"id"`
	AltID        flexString   `json:"_id"`
	Name         flexString   `json:"name"`
	Rating       *rawRating   `json:"rating"`
	Ratings      *rawRatings  `json:"ratings"`
	Featured     flexBool     `json:"featured"`
	Location     *rawLocation `json:"location"`
	DeliveryTime flexString   `json:"deliveryTime"`
	MinimumOrder flexFloat    `json:"minimumOrder"`
}

type rawLocation struct {
	Address  flexString
	City     flexString
	Distance flexFloat
	ok       bool
}

func (l *rawLocation) UnmarshalJSON(data []byte) error {
	*l = rawLocation{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	var obj struct {
		Address  flexString `json:"address"`
		City     flexString `json:"city"`
		Distance flexFloat  `json:"distance"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	*l = rawLocation{Address: obj.Address, City: obj.City, Distance: obj.Distance, ok: true}
	return nil
}

// NormalizeStore builds a canonical Store from a raw backend record. Like
// NormalizeProduct it returns nil for non-object input or a record missing a
// resolvable id or name; misshapen optional fields degrade to zero values.
func NormalizeStore(data []byte) *Store {
	var raw rawStore
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

	rating := resolveRating(raw.Rating, raw.Ratings)
	s := &Store{
		ID:           id,
		Name:         string(raw.Name),
		Rating:       rating,
		IsTopRated:   rating.Value > topRatedThreshold,
		IsTrending:   bool(raw.Featured),
		DeliveryTime: string(raw.DeliveryTime),
	}
	if raw.MinimumOrder.Set {
		s.MinimumOrder = &raw.MinimumOrder.Value
	}
	if raw.Location != nil && raw.Location.ok {
		loc := &Location{Address: string(raw.Location.Address), City: string(raw.Location.City)}
		if raw.Location.Distance.Set {
			loc.Distance = &raw.Location.Distance.Value
		}
		s.Location = loc
	}
	return s
}

// NormalizeStores is the array form of NormalizeStore: non-array input yields
// an empty slice, invalid entries are dropped, order of valid entries is kept.
func NormalizeStores(data []byte) []Store {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return []Store{}
	}
	return lo.FilterMap(items, func(item json.RawMessage, _ int) (Store, bool) {
		s := NormalizeStore(item)
		if s == nil {
			return Store{}, false
		}
		return *s, true
	})
}

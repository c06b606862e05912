package domain

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Load is the freight document stored in the loads collection. The five
// required fields are typed; anything else the caller sends rides along in
// Extra and is persisted untouched.
type Load struct {
	ID          bson.ObjectID  `bson:"_id,omitempty"`
	Origin      string         `bson:"origin"`
	Destination string         `bson:"destination"`
	Product     string         `bson:"product"`
	Weight      float64        `bson:"weight"`
	Type        string         `bson:"type"`
	DateAdded   int64          `bson:"dateAdded"`
	Extra       map[string]any `bson:",inline"`
}

// MarshalJSON flattens Extra so responses look like the stored document.
func (l Load) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(l.Extra)+7)
	for k, v := range l.Extra {
		doc[k] = v
	}
	doc["id"] = l.ID.Hex()
	doc["origin"] = l.Origin
	doc["destination"] = l.Destination
	doc["product"] = l.Product
	doc["weight"] = l.Weight
	doc["type"] = l.Type
	doc["dateAdded"] = l.DateAdded
	return json.Marshal(doc)
}

// UnmarshalJSON is the inverse of MarshalJSON; unknown keys land in Extra.
func (l *Load) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	l.Extra = nil
	for k, v := range raw {
		switch k {
		case "id":
			if hex, ok := v.(string); ok {
				if oid, err := bson.ObjectIDFromHex(hex); err == nil {
					l.ID = oid
				}
			}
		case "origin":
			l.Origin, _ = v.(string)
		case "destination":
			l.Destination, _ = v.(string)
		case "product":
			l.Product, _ = v.(string)
		case "weight":
			l.Weight, _ = v.(float64)
		case "type":
			l.Type, _ = v.(string)
		case "dateAdded":
			if f, ok := v.(float64); ok {
				l.DateAdded = int64(f)
			}
		default:
			if l.Extra == nil {
				l.Extra = make(map[string]any)
			}
			l.Extra[k] = v
		}
	}
	return nil
}

package dto

import "encoding/json"

// LoadRequest is the create/update payload for a load. The five required
// fields are typed; every other key the caller sends is kept in Extra and
// passed through to storage. Server-managed keys are dropped.
type LoadRequest struct {
	Origin      string
	Destination string
	Product     string
	Weight      float64
	Type        string
	Extra       map[string]any
}

// UnmarshalJSON splits the known fields from the pass-through extras.
func (r *LoadRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = LoadRequest{}
	for k, v := range raw {
		switch k {
		case "origin":
			r.Origin, _ = v.(string)
		case "destination":
			r.Destination, _ = v.(string)
		case "product":
			r.Product, _ = v.(string)
		case "weight":
			r.Weight, _ = v.(float64)
		case "type":
			r.Type, _ = v.(string)
		case "id", "_id", "dateAdded":
			// server-managed, never taken from the caller
		default:
			if r.Extra == nil {
				r.Extra = make(map[string]any)
			}
			r.Extra[k] = v
		}
	}
	return nil
}

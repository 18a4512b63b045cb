package luis

import "encoding/json"

// Score returns the confidence of intent, or 0 when LUIS did not score it.
func (p Prediction) Score(intent string) float64 {
	if s, ok := p.Intents[intent]; ok {
		return s.Score
	}
	return 0
}

// Instances decodes entities.$instance keyed by entity type.
// A missing or malformed $instance block yields an empty map.
func (p Prediction) Instances() map[string][]Instance {
	out := make(map[string][]Instance)
	raw, ok := p.Entities[instanceKey]
	if !ok {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return make(map[string][]Instance)
	}
	return out
}

package assistant

import "dentistry-assistant/internal/model"

// RouteName labels which branch produced a reply.
type RouteName string

const (
	RouteSchedule     RouteName = "schedule"
	RouteAvailability RouteName = "availability"
	RouteQnA          RouteName = "qna"
	RouteFallback     RouteName = "fallback"
	RouteWelcome      RouteName = "welcome"
)

// RouteInput is the user's message.
type RouteInput struct {
	Text string
}

// GreetInput describes a membership change.
type GreetInput struct {
	Recipient    model.ChannelAccount   // the bot's own identity on the channel
	MembersAdded []model.ChannelAccount // participants that just joined
}

// Reply is one outbound message.
type Reply struct {
	Text      string
	Route     RouteName
	Recipient *model.ChannelAccount // nil means reply to whoever spoke
}

// Answer is a knowledge-base candidate. Slices of Answer are in rank order.
type Answer struct {
	ID        int
	Text      string
	Score     float64 // 0-1
	Questions []string
}

// EntityInstance is one occurrence of an entity in the utterance.
type EntityInstance struct {
	Type       string
	Text       string
	StartIndex int
	Length     int
	Score      float64
}

// IntentPrediction is the intent service's reading of an utterance.
type IntentPrediction struct {
	Query     string
	TopIntent string
	Intents   map[string]float64
	Entities  map[string][]EntityInstance
}

// Score returns the confidence for intent, or 0 when the intent was not scored.
func (p IntentPrediction) Score(intent string) float64 {
	return p.Intents[intent]
}

// TopScore is the confidence of the top intent.
func (p IntentPrediction) TopScore() float64 {
	return p.Score(p.TopIntent)
}

// FirstEntity returns the first instance of entity type name, if any.
func (p IntentPrediction) FirstEntity(name string) (EntityInstance, bool) {
	instances := p.Entities[name]
	if len(instances) == 0 {
		return EntityInstance{}, false
	}
	return instances[0], true
}

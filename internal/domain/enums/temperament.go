package enums

type Temperament string

const (
	TemperamentVeryShy      Temperament = "very-shy"
	TemperamentSomewhatShy  Temperament = "somewhat-shy"
	TemperamentBalanced     Temperament = "balanced"
	TemperamentOutgoing     Temperament = "outgoing"
	TemperamentVeryOutgoing Temperament = "very-outgoing"
)

var temperaments = map[Temperament]struct{}{
	TemperamentVeryShy:      {},
	TemperamentSomewhatShy:  {},
	TemperamentBalanced:     {},
	TemperamentOutgoing:     {},
	TemperamentVeryOutgoing: {},
}

func (t Temperament) IsValid() bool {
	_, ok := temperaments[t]
	return ok
}

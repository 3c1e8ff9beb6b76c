package enums

type AgeRange string

const (
	Age18To24 AgeRange = "18-24"
	Age25To34 AgeRange = "25-34"
	Age35To44 AgeRange = "35-44"
	Age45To54 AgeRange = "45-54"
	Age55Plus AgeRange = "55+"
)

func (a AgeRange) IsValid() bool {
	switch a {
	case Age18To24, Age25To34, Age35To44, Age45To54, Age55Plus:
		return true
	}
	return false
}

type Gender string

const (
	GenderFemale         Gender = "female"
	GenderMale           Gender = "male"
	GenderNonBinary      Gender = "non-binary"
	GenderPreferNotToSay Gender = "prefer-not-to-say"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderFemale, GenderMale, GenderNonBinary, GenderPreferNotToSay:
		return true
	}
	return false
}

type Environment string

const (
	EnvSmallGroups  Environment = "small-groups"
	EnvMediumGroups Environment = "medium-groups"
	EnvLargeGroups  Environment = "large-groups"
	EnvOneOnOne     Environment = "one-on-one"
	EnvProfessional Environment = "professional"
)

func (e Environment) IsValid() bool {
	switch e {
	case EnvSmallGroups, EnvMediumGroups, EnvLargeGroups, EnvOneOnOne, EnvProfessional:
		return true
	}
	return false
}

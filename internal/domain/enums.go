package domain

type SkinType string

const (
	SkinNormal      SkinType = "normal"
	SkinDry         SkinType = "dry"
	SkinOily        SkinType = "oily"
	SkinCombination SkinType = "combination"
	SkinSensitive   SkinType = "sensitive"
)

type Concern string

const (
	ConcernAcne         Concern = "acne"
	ConcernAging        Concern = "aging"
	ConcernPigmentation Concern = "pigmentation"
	ConcernSensitivity  Concern = "sensitivity"
)

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

type Climate string

const (
	ClimateHumid     Climate = "humid"
	ClimateDry       Climate = "dry"
	ClimateTemperate Climate = "temperate"
	ClimateTropical  Climate = "tropical"
)

// Canonical orderings. Catalog completeness checks and CLI option lists
// iterate these so output is stable.
var (
	AllSkinTypes = []SkinType{SkinNormal, SkinDry, SkinOily, SkinCombination, SkinSensitive}
	AllConcerns  = []Concern{ConcernAcne, ConcernAging, ConcernPigmentation, ConcernSensitivity}
	AllSeasons   = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}
	AllClimates  = []Climate{ClimateHumid, ClimateDry, ClimateTemperate, ClimateTropical}
)

// ValidSkinTypes is the canonical set of accepted skin type strings.
var ValidSkinTypes = map[string]bool{
	"normal": true, "dry": true, "oily": true, "combination": true, "sensitive": true,
}

// ValidConcerns is the canonical set of accepted concern strings.
var ValidConcerns = map[string]bool{
	"acne": true, "aging": true, "pigmentation": true, "sensitivity": true,
}

// ValidSeasons is the canonical set of accepted season strings.
var ValidSeasons = map[string]bool{
	"spring": true, "summer": true, "fall": true, "winter": true,
}

// ValidClimates is the canonical set of accepted climate strings.
var ValidClimates = map[string]bool{
	"humid": true, "dry": true, "temperate": true, "tropical": true,
}

func (s SkinType) Valid() bool { return ValidSkinTypes[string(s)] }
func (c Concern) Valid() bool  { return ValidConcerns[string(c)] }
func (s Season) Valid() bool   { return ValidSeasons[string(s)] }
func (c Climate) Valid() bool  { return ValidClimates[string(c)] }

// RequestType names the part of a recommendation the caller asked about.
type RequestType string

const (
	RequestRoutine     RequestType = "routine"
	RequestIngredients RequestType = "ingredients"
	RequestConcerns    RequestType = "concerns"
)

var AllRequestTypes = []RequestType{RequestRoutine, RequestIngredients, RequestConcerns}

// ValidRequestTypes is the canonical set of accepted request type strings.
var ValidRequestTypes = map[string]bool{
	"routine": true, "ingredients": true, "concerns": true,
}

func (r RequestType) Valid() bool { return ValidRequestTypes[string(r)] }

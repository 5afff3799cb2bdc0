package models

// BetTypeKey identifies one of the six wager categories
type BetTypeKey string

const (
	BetTypeTwoUp    BetTypeKey = "2up"
	BetTypeTwoDown  BetTypeKey = "2down"
	BetTypeThreeTop BetTypeKey = "3top"
	BetTypeThreeTod BetTypeKey = "3tod"
	BetTypeRunUp    BetTypeKey = "run_up"
	BetTypeRunDown  BetTypeKey = "run_down"
)

// BetTypeSpec describes one wager category: its key, the number of digits
// a number for this category must have, and a display label
type BetTypeSpec struct {
	Key         BetTypeKey `bson:"key" json:"key"`
	DigitLength int        `bson:"digitLength" json:"digitLength"`
	Label       string     `bson:"label" json:"label"`
}

// BetTypeCatalog is the fixed catalog of bet types. Order matters: batch
// commits flatten pending numbers in this order.
var BetTypeCatalog = []BetTypeSpec{
	{Key: BetTypeTwoUp, DigitLength: 2, Label: "2 Up"},
	{Key: BetTypeTwoDown, DigitLength: 2, Label: "2 Down"},
	{Key: BetTypeThreeTop, DigitLength: 3, Label: "3 Top"},
	{Key: BetTypeThreeTod, DigitLength: 3, Label: "3 Tod"},
	{Key: BetTypeRunUp, DigitLength: 1, Label: "Run Up"},
	{Key: BetTypeRunDown, DigitLength: 1, Label: "Run Down"},
}

// GetBetTypeSpec finds a catalog entry by key
func GetBetTypeSpec(key BetTypeKey) (BetTypeSpec, bool) {
	for _, spec := range BetTypeCatalog {
		if spec.Key == key {
			return spec, true
		}
	}
	return BetTypeSpec{}, false
}

// BetTypesByDigitLength returns every catalog entry whose digit length matches,
// in catalog order. A 2-digit number maps to both 2up and 2down.
func BetTypesByDigitLength(length int) []BetTypeSpec {
	var specs []BetTypeSpec
	for _, spec := range BetTypeCatalog {
		if spec.DigitLength == length {
			specs = append(specs, spec)
		}
	}
	return specs
}

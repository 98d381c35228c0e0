package strength

// Tier is the overall strength classification of a checked password.
type Tier string

const (
	VeryWeak Tier = "VERY_WEAK"
	Weak     Tier = "WEAK"
	Medium   Tier = "MEDIUM"
	Strong   Tier = "STRONG"
)

// Criterion names one of the eight pass/fail checks surfaced to callers.
type Criterion string

const (
	CriterionLength             Criterion = "length"
	CriterionUppercase          Criterion = "uppercase"
	CriterionLowercase          Criterion = "lowercase"
	CriterionNumbers            Criterion = "numbers"
	CriterionSpecialChars       Criterion = "special_chars"
	CriterionNoDictionaryWords  Criterion = "no_dictionary_words"
	CriterionNoKeyboardPatterns Criterion = "no_keyboard_patterns"
	CriterionNoSequentialChars  Criterion = "no_sequential_chars"
)

// CriterionOrder is the fixed display order callers rely on.
var CriterionOrder = []Criterion{
	CriterionLength,
	CriterionUppercase,
	CriterionLowercase,
	CriterionNumbers,
	CriterionSpecialChars,
	CriterionNoDictionaryWords,
	CriterionNoKeyboardPatterns,
	CriterionNoSequentialChars,
}

type Criteria struct {
	Length             bool `json:"length"`
	Uppercase          bool `json:"uppercase"`
	Lowercase          bool `json:"lowercase"`
	Numbers            bool `json:"numbers"`
	SpecialChars       bool `json:"special_chars"`
	NoDictionaryWords  bool `json:"no_dictionary_words"`
	NoKeyboardPatterns bool `json:"no_keyboard_patterns"`
	NoSequentialChars  bool `json:"no_sequential_chars"`
}

// CriterionResult pairs a criterion name with its outcome.
type CriterionResult struct {
	Name Criterion
	Pass bool
}

// Ordered returns the criteria in the fixed order of CriterionOrder.
func (c Criteria) Ordered() []CriterionResult {
	return []CriterionResult{
		{CriterionLength, c.Length},
		{CriterionUppercase, c.Uppercase},
		{CriterionLowercase, c.Lowercase},
		{CriterionNumbers, c.Numbers},
		{CriterionSpecialChars, c.SpecialChars},
		{CriterionNoDictionaryWords, c.NoDictionaryWords},
		{CriterionNoKeyboardPatterns, c.NoKeyboardPatterns},
		{CriterionNoSequentialChars, c.NoSequentialChars},
	}
}

type Feedback struct {
	Positive    []string `json:"positive"`
	Negative    []string `json:"negative"`
	Suggestions []string `json:"suggestions"`
}

// Verdict is the immutable result of a single Check call.
type Verdict struct {
	OverallStrength Tier     `json:"overall_strength"`
	Score           int      `json:"score"`
	EntropyBits     float64  `json:"entropy_bits"`
	TimeToCrack     string   `json:"time_to_crack"`
	Feedback        Feedback `json:"feedback"`
	Criteria        Criteria `json:"criteria"`
}

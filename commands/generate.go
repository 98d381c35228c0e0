package commands

import (
	"fmt"

	"github.com/pwdtools/passguard/generator"
)

type GenerateCommand struct {
	Length         int    `short:"l" long:"length" description:"password length (default: recommended length for the strength level)" value-name:"N"`
	Strength       string `short:"s" long:"strength" description:"strength level: WEAK, MEDIUM, STRONG or VERY_STRONG" default:"STRONG" value-name:"LEVEL"`
	Count          int    `short:"n" long:"count" description:"number of passwords to generate" default:"1" value-name:"N"`
	Readable       bool   `long:"readable" description:"generate pronounceable passwords (overrides the strength level)"`
	NoSpecial      bool   `long:"no-special" description:"omit special characters"`
	AllowAmbiguous bool   `long:"allow-ambiguous" description:"keep easily confused characters like 0/O and 1/l"`
	Verbose        bool   `short:"v" long:"verbose" description:"print the strength level description and charset entropy"`
}

func (command *GenerateCommand) Execute(args []string) error {
	level, err := generator.ParseStrength(command.Strength)
	if err != nil {
		return err
	}

	policy := generator.Policy{
		Length:           command.Length,
		Strength:         level,
		IncludeSpecial:   !command.NoSpecial,
		ExcludeAmbiguous: !command.AllowAmbiguous,
		Readable:         command.Readable,
	}
	if policy.Length == 0 {
		policy.Length = generator.RecommendedLength(level)
	}

	passwords, err := generator.GenerateMultiple(command.Count, policy)
	if err != nil {
		return err
	}

	if command.Verbose {
		title, description := generator.Describe(level)
		fmt.Printf("%s: %s\n", title, description)
		fmt.Printf("Charset entropy: %.1f bits\n\n", policyEntropy(policy))
	}

	for _, password := range passwords {
		fmt.Println(password)
	}

	return nil
}

// policyEntropy reports the search-space entropy of the fill charset the
// policy permits.
func policyEntropy(policy generator.Policy) float64 {
	size := generator.CharsetSize(generator.CharsetOptions{
		Uppercase:        true,
		Lowercase:        true,
		Digits:           true,
		Special:          policy.Strength != generator.Weak && policy.IncludeSpecial,
		ExcludeAmbiguous: policy.Strength != generator.Weak && policy.ExcludeAmbiguous,
	})
	return generator.CalculateEntropy(policy.Length, size)
}

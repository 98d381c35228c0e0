package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/pwdtools/passguard/entropy"
	"github.com/pwdtools/passguard/mimetype"
	"github.com/pwdtools/passguard/scanners/linescanner"
	"github.com/pwdtools/passguard/strength"
	"github.com/pwdtools/passguard/wordlist"
)

const defaultWordlistPath = "data/common_passwords.txt"

// Candidates rating below MEDIUM make the command exit with this status,
// so the command can gate commit hooks and provisioning scripts.
const weakExitStatus = 3

type CheckCommand struct {
	File          string `short:"f" long:"file" description:"newline-delimited file of passwords to rate" value-name:"FILE"`
	Wordlist      string `short:"w" long:"wordlist" description:"path to a common-password wordlist" value-name:"PATH"`
	JSON          bool   `long:"json" description:"emit verdicts as JSON"`
	ShowPasswords bool   `long:"show-passwords" description:"allow passwords to be shown in output"`
	Debug         bool   `long:"debug" description:"enables debug logging"`
	Args          struct {
		Password string `positional-arg-name:"PASSWORD"`
	} `positional-args:"yes"`
}

func (command *CheckCommand) Execute(args []string) error {
	logger := lager.NewLogger("check")

	if command.Debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
	} else {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.INFO))
	}

	engine := strength.New(logger, wordlist.Load(logger, command.wordlistPath()))

	switch {
	case command.Args.Password != "":
		verdict := engine.Check(command.Args.Password)

		if err := command.render(command.Args.Password, verdict); err != nil {
			return err
		}
		if ratesWeak(verdict) {
			os.Exit(weakExitStatus)
		}
		return nil
	case command.File != "":
		file, err := os.Open(command.File)
		if err != nil {
			return err
		}
		defer file.Close()

		br := bufio.NewReader(file)
		peek, _ := br.Peek(512)
		if !mimetype.IsText(peek) {
			return fmt.Errorf("refusing to rate binary input: %s", command.File)
		}

		return command.rateBatch(logger, engine, br, command.File)
	default:
		return command.rateBatch(logger, engine, os.Stdin, "STDIN")
	}
}

func (command *CheckCommand) wordlistPath() string {
	if command.Wordlist != "" {
		return command.Wordlist
	}
	if path := os.Getenv("PASSGUARD_WORDLIST"); path != "" {
		return path
	}
	return defaultWordlistPath
}

// rateBatch rates every non-empty line of r independently and summarizes
// one candidate per output line.
func (command *CheckCommand) rateBatch(logger lager.Logger, engine *strength.Engine, r io.Reader, source string) error {
	logger = logger.Session("rate-batch", lager.Data{"source": source})
	logger.Debug("starting")

	var result error
	var verdicts []strength.Verdict
	weakCount := 0

	scanner := linescanner.New(r, source)
	for scanner.Scan(logger) {
		candidate := scanner.Candidate()
		if candidate.Value == "" {
			continue
		}

		verdict := engine.Check(candidate.Value)
		if ratesWeak(verdict) {
			weakCount++
		}

		if command.JSON {
			verdicts = append(verdicts, verdict)
			continue
		}

		shown := "***"
		if command.ShowPasswords {
			shown = candidate.Value
		}
		fmt.Printf("%s %s:%d score=%d %s\n",
			tierTag(verdict.OverallStrength), candidate.Source, candidate.LineNumber, verdict.Score, shown)
	}
	if err := scanner.Err(); err != nil {
		result = multierror.Append(result, err)
	}

	if command.JSON {
		if err := json.NewEncoder(os.Stdout).Encode(verdicts); err != nil {
			result = multierror.Append(result, err)
		}
	}

	logger.Debug("done", lager.Data{"weak": weakCount})

	if result != nil {
		return result
	}
	if weakCount > 0 {
		os.Exit(weakExitStatus)
	}
	return nil
}

func (command *CheckCommand) render(password string, verdict strength.Verdict) error {
	if command.JSON {
		out, err := json.MarshalIndent(verdict, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	shown := "***"
	if command.ShowPasswords {
		shown = password
	}

	fmt.Println("Password:", shown)
	fmt.Printf("Strength: %s (score %d/100)\n", tierTag(verdict.OverallStrength), verdict.Score)
	fmt.Printf("Entropy:  %.2f bits\n", verdict.EntropyBits)
	fmt.Println("Estimated time to crack:", verdict.TimeToCrack)
	fmt.Printf("Secondary estimate (zxcvbn): %.1f bits\n", entropy.Estimate(password))

	fmt.Println()
	fmt.Println("Criteria:")
	for _, criterion := range verdict.Criteria.Ordered() {
		status := red("FAIL")
		if criterion.Pass {
			status = green("PASS")
		}
		fmt.Printf("  [%s] %s\n", status, criterion.Name)
	}

	printList(green("Positive:"), verdict.Feedback.Positive)
	printList(yellow("Needs work:"), verdict.Feedback.Negative)
	printList(cyan("Suggestions:"), verdict.Feedback.Suggestions)

	return nil
}

func printList(header string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(header)
	for _, item := range items {
		fmt.Println("  -", item)
	}
}

func ratesWeak(verdict strength.Verdict) bool {
	return verdict.OverallStrength == strength.Weak || verdict.OverallStrength == strength.VeryWeak
}

func tierTag(tier strength.Tier) string {
	switch tier {
	case strength.Strong:
		return green(string(tier))
	case strength.Medium:
		return cyan(string(tier))
	case strength.Weak:
		return yellow(string(tier))
	default:
		return red(string(tier))
	}
}

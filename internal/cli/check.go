package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seedshard/seedshard/internal/output"
	"github.com/seedshard/seedshard/internal/seedshard"
	sserr "github.com/seedshard/seedshard/pkg/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	checkMnemonic       string
	checkDictionaryPath string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether a mnemonic is a valid, self-consistent 24-word mnemonic",
	Long: `Check parses a mnemonic and validates its checksum against the
loaded dictionary, without splitting or reconstructing anything.

Example:
  seedshard check --mnemonic "abandon abandon ... about"`,
	RunE: runCheck,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkMnemonic, "mnemonic", "", "the 24-word mnemonic to check (required)")
	checkCmd.Flags().StringVar(&checkDictionaryPath, "dictionary-path", "", "path to a 2048-word BIP-39 wordlist (default: the bundled English list)")

	_ = checkCmd.MarkFlagRequired("mnemonic")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cmdCtx := GetCmdContext(cmd)

	dictPath := checkDictionaryPath
	if dictPath == "" && cmdCtx != nil {
		dictPath = cmdCtx.Cfg.GetDictionaryPath()
	}

	dict, err := loadDictionary(dictPath)
	if err != nil {
		return sserr.Wrap(sserr.ErrInvalidDictionary, "loading dictionary: %v", err)
	}

	checkErr := seedshard.Check(checkMnemonic, dict)
	if checkErr != nil && cmdCtx != nil {
		cmdCtx.Log.Error("check failed: %v", checkErr)
	}

	w := cmd.OutOrStdout()
	format := output.FormatText
	if cmdCtx != nil {
		format = cmdCtx.Fmt.Format()
	}

	if format == output.FormatJSON {
		valid := checkErr == nil
		reason := ""
		if checkErr != nil {
			reason = checkErr.Error()
		}
		return writeJSON(w, struct {
			Valid  bool   `json:"valid"`
			Reason string `json:"reason,omitempty"`
		}{Valid: valid, Reason: reason})
	}

	if checkErr != nil {
		return checkErr
	}
	fmt.Fprintln(w, "valid")
	return nil
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seedshard/seedshard/internal/output"
	"github.com/seedshard/seedshard/internal/seedshard"
	sserr "github.com/seedshard/seedshard/pkg/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	reconstructShares         string
	reconstructDictionaryPath string
)

var reconstructCmd = &cobra.Command{
	Use:   "reconstruct",
	Short: "Reconstruct a mnemonic from t or more of its shares",
	Long: `Reconstruct takes a comma-separated list of labeled shares, each
starting with its decimal id followed by 24 words, and recovers the
original mnemonic.

Example:
  seedshard reconstruct --shares "1 ...,3 ...,4 ..."`,
	RunE: runReconstruct,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(reconstructCmd)

	reconstructCmd.Flags().StringVar(&reconstructShares, "shares", "", `comma-separated shares, each "<id> <24 words>" (required)`)
	reconstructCmd.Flags().StringVar(&reconstructDictionaryPath, "dictionary-path", "", "path to a 2048-word BIP-39 wordlist (default: the bundled English list)")

	_ = reconstructCmd.MarkFlagRequired("shares")
}

func runReconstruct(cmd *cobra.Command, _ []string) error {
	cmdCtx := GetCmdContext(cmd)

	dictPath := reconstructDictionaryPath
	if dictPath == "" && cmdCtx != nil {
		dictPath = cmdCtx.Cfg.GetDictionaryPath()
	}

	dict, err := loadDictionary(dictPath)
	if err != nil {
		return sserr.Wrap(sserr.ErrInvalidDictionary, "loading dictionary: %v", err)
	}

	shares, err := parseShares(reconstructShares)
	if err != nil {
		return err
	}

	if cmdCtx != nil {
		cmdCtx.Log.Debug("reconstruction attempted with %d shares", len(shares))
	}

	mnemonic, err := seedshard.Reconstruct(shares, dict)
	if err != nil {
		if cmdCtx != nil {
			cmdCtx.Log.Error("reconstruction failed: %v", err)
		}
		return err
	}

	w := cmd.OutOrStdout()
	format := output.FormatText
	if cmdCtx != nil {
		format = cmdCtx.Fmt.Format()
	}

	if format == output.FormatJSON {
		return writeJSON(w, struct {
			Mnemonic string `json:"mnemonic"`
		}{Mnemonic: mnemonic})
	}

	fmt.Fprintln(w, mnemonic)
	return nil
}

// parseShares parses a comma-separated "<id> <24 words>" list into
// LabeledShares.
func parseShares(raw string) ([]seedshard.LabeledShare, error) {
	parts := strings.Split(raw, ",")
	shares := make([]seedshard.LabeledShare, 0, len(parts))

	for _, part := range parts {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}

		id, err := strconv.ParseUint(fields[0], 10, 8)
		if err != nil {
			return nil, sserr.Wrap(sserr.ErrDegenerateShares, "invalid share id %q: %v", fields[0], err)
		}

		shares = append(shares, seedshard.LabeledShare{
			ID:       byte(id),
			Mnemonic: strings.Join(fields[1:], " "),
		})
	}

	return shares, nil
}

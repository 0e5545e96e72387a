package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/seedshard/seedshard/internal/output"
	"github.com/seedshard/seedshard/internal/secure"
	"github.com/seedshard/seedshard/internal/seedshard"
	sserr "github.com/seedshard/seedshard/pkg/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	splitSecret         string
	splitShareCount     int
	splitThreshold      int
	splitDictionaryPath string
	splitShowQR         bool
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split a 24-word mnemonic into n shares, t of which reconstruct it",
	Long: `Split takes a 24-word BIP-39 mnemonic and produces n labeled shares
such that any t of them reconstruct the original secret, and any t-1
reveal nothing about it.

Example:
  seedshard split --secret "abandon abandon ... about" -n 5 -t 3`,
	RunE: runSplit,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().StringVar(&splitSecret, "secret", "", "the 24-word mnemonic to split (required)")
	splitCmd.Flags().IntVarP(&splitShareCount, "n", "n", 0, "number of shares to produce (required)")
	splitCmd.Flags().IntVarP(&splitThreshold, "t", "t", 0, "number of shares required to reconstruct (required)")
	splitCmd.Flags().StringVar(&splitDictionaryPath, "dictionary-path", "", "path to a 2048-word BIP-39 wordlist (default: the bundled English list)")
	splitCmd.Flags().BoolVar(&splitShowQR, "qr", false, "render each share as a terminal QR code")

	_ = splitCmd.MarkFlagRequired("secret")
	_ = splitCmd.MarkFlagRequired("n")
	_ = splitCmd.MarkFlagRequired("t")
}

func runSplit(cmd *cobra.Command, _ []string) error {
	cmdCtx := GetCmdContext(cmd)

	dictPath := splitDictionaryPath
	if dictPath == "" && cmdCtx != nil {
		dictPath = cmdCtx.Cfg.GetDictionaryPath()
	}

	dict, err := loadDictionary(dictPath)
	if err != nil {
		return sserr.Wrap(sserr.ErrInvalidDictionary, "loading dictionary: %v", err)
	}

	if cmdCtx != nil {
		cmdCtx.Log.Debug("split requested: n=%d t=%d", splitShareCount, splitThreshold)
	}

	shares, err := seedshard.Split(splitSecret, splitShareCount, splitThreshold, dict, secure.Reader)
	if err != nil {
		if cmdCtx != nil {
			cmdCtx.Log.Error("split failed: %v", err)
		}
		return err
	}

	w := cmd.OutOrStdout()
	format := output.FormatText
	if cmdCtx != nil {
		format = cmdCtx.Fmt.Format()
	}

	if format == output.FormatJSON {
		return writeSplitJSON(w, shares)
	}
	writeSplitText(w, shares)
	return nil
}

func writeSplitText(w io.Writer, shares []seedshard.LabeledShare) {
	fmt.Fprintln(w)
	for _, s := range shares {
		fmt.Fprintf(w, "Share %d/%d: %s\n", s.ID, len(shares), s.Mnemonic)
		if splitShowQR && output.CanRenderQR(w) {
			cfg := output.DefaultQRConfig()
			_ = output.RenderQR(w, s.Mnemonic, cfg)
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The secret can be reconstructed from any t out of n shares.")
}

func writeSplitJSON(w io.Writer, shares []seedshard.LabeledShare) error {
	type shareJSON struct {
		ID       byte   `json:"id"`
		Mnemonic string `json:"mnemonic"`
	}

	payload := struct {
		Shares []shareJSON `json:"shares"`
		Note   string      `json:"note"`
	}{
		Shares: make([]shareJSON, len(shares)),
		Note:   "The secret can be reconstructed from any t out of n shares.",
	}
	for i, s := range shares {
		payload.Shares[i] = shareJSON{ID: s.ID, Mnemonic: s.Mnemonic}
	}

	return writeJSON(w, payload)
}

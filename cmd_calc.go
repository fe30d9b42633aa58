package main

import (
	"encoding/json"
	"io"
	"strings"

	"fin-calc/domain"
	"fin-calc/service"
	"github.com/spf13/cobra"
)

var jsonBody string

var mortgageCmd = &cobra.Command{
	Use:   "mortgage",
	Short: "Compute a monthly mortgage breakdown",
	Example: `  fincalc mortgage --json '{"homePrice":300000,"downPayment":60000,"interest":6,` +
		`"years":30,"taxRate":1.2,"insurance":1200,"hoa":50}'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		input, err := domain.DecodeMortgageInput(calcInput(cmd))
		if err != nil {
			return err
		}
		result, err := service.CalculateMortgage(input)
		if err != nil {
			return err
		}
		return printJSON(cmd, result)
	},
}

var incomeTaxCmd = &cobra.Command{
	Use:   "income-tax",
	Short: "Estimate federal income tax",
	Example: `  fincalc income-tax --json '{"filingStatus":"single","income":60000,` +
		`"otherIncome":0,"deductions":12000,"taxCredits":0}'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		input, err := domain.DecodeIncomeTaxInput(calcInput(cmd))
		if err != nil {
			return err
		}
		result, err := service.CalculateIncomeTax(input)
		if err != nil {
			return err
		}
		return printJSON(cmd, result)
	},
}

var retirementCmd = &cobra.Command{
	Use:     "401k",
	Aliases: []string{"retirement"},
	Short:   "Project a 401(k) balance",
	Example: `  fincalc 401k --json '{"currentBalance":10000,"contribution":500,"years":30,` +
		`"returnRate":7,"salary":60000,"matchPercent":50,"maxMatchPercent":6}'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		input, err := domain.DecodeRetirementInput(calcInput(cmd))
		if err != nil {
			return err
		}
		result, err := service.CalculateRetirement(input)
		if err != nil {
			return err
		}
		return printJSON(cmd, result)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{mortgageCmd, incomeTaxCmd, retirementCmd} {
		cmd.Flags().StringVar(&jsonBody, "json", "", "request body; read from stdin when empty")
	}
}

// calcInput returns the --json flag value, or stdin when it is not set.
func calcInput(cmd *cobra.Command) io.Reader {
	if jsonBody != "" {
		return strings.NewReader(jsonBody)
	}
	return cmd.InOrStdin()
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

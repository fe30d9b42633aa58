package domain

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their wire names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type mortgagePayload struct {
	HomePrice   *Amount `json:"homePrice" validate:"required"`
	DownPayment *Amount `json:"downPayment" validate:"required"`
	Interest    *Amount `json:"interest" validate:"required"`
	Years       *Years  `json:"years" validate:"required"`
	TaxRate     *Amount `json:"taxRate" validate:"required"`
	Insurance   *Amount `json:"insurance" validate:"required"`
	HOA         *Amount `json:"hoa" validate:"required"`
}

type incomeTaxPayload struct {
	FilingStatus *string `json:"filingStatus" validate:"required"`
	Income       *Amount `json:"income" validate:"required"`
	OtherIncome  *Amount `json:"otherIncome" validate:"required"`
	Deductions   *Amount `json:"deductions" validate:"required"`
	TaxCredits   *Amount `json:"taxCredits" validate:"required"`
}

type retirementPayload struct {
	CurrentBalance  *Amount `json:"currentBalance" validate:"required"`
	Contribution    *Amount `json:"contribution" validate:"required"`
	Years           *Years  `json:"years" validate:"required"`
	ReturnRate      *Amount `json:"returnRate" validate:"required"`
	Salary          *Amount `json:"salary" validate:"required"`
	MatchPercent    *Amount `json:"matchPercent" validate:"required"`
	MaxMatchPercent *Amount `json:"maxMatchPercent" validate:"required"`
}

// DecodeMortgageInput reads a mortgage request body. Every field is
// required; unknown fields are rejected.
func DecodeMortgageInput(r io.Reader) (MortgageInput, error) {
	var p mortgagePayload
	if err := decodePayload(r, &p); err != nil {
		return MortgageInput{}, err
	}
	return MortgageInput{
		HomePrice:   float64(*p.HomePrice),
		DownPayment: float64(*p.DownPayment),
		Interest:    float64(*p.Interest),
		Years:       int(*p.Years),
		TaxRate:     float64(*p.TaxRate),
		Insurance:   float64(*p.Insurance),
		HOA:         float64(*p.HOA),
	}, nil
}

func DecodeIncomeTaxInput(r io.Reader) (IncomeTaxInput, error) {
	var p incomeTaxPayload
	if err := decodePayload(r, &p); err != nil {
		return IncomeTaxInput{}, err
	}
	return IncomeTaxInput{
		FilingStatus: ParseFilingStatus(*p.FilingStatus),
		Income:       float64(*p.Income),
		OtherIncome:  float64(*p.OtherIncome),
		Deductions:   float64(*p.Deductions),
		TaxCredits:   float64(*p.TaxCredits),
	}, nil
}

func DecodeRetirementInput(r io.Reader) (RetirementInput, error) {
	var p retirementPayload
	if err := decodePayload(r, &p); err != nil {
		return RetirementInput{}, err
	}
	return RetirementInput{
		CurrentBalance:  float64(*p.CurrentBalance),
		Contribution:    float64(*p.Contribution),
		Years:           int(*p.Years),
		ReturnRate:      float64(*p.ReturnRate),
		Salary:          float64(*p.Salary),
		MatchPercent:    float64(*p.MatchPercent),
		MaxMatchPercent: float64(*p.MaxMatchPercent),
	}, nil
}

func decodePayload(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return InvalidInput("invalid request body: %s", describeDecodeError(err))
	}
	if dec.More() {
		return InvalidInput("invalid request body: unexpected data after JSON object")
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return InvalidInput("invalid request body: %v", err)
		}
		missing := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			missing = append(missing, fe.Field())
		}
		if len(missing) == 1 {
			return InvalidInput("missing required field: %s", missing[0])
		}
		return InvalidInput("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

func describeDecodeError(err error) string {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.Is(err, io.EOF):
		return "body is empty"
	case errors.Is(err, io.ErrUnexpectedEOF), errors.As(err, &syntaxErr):
		return "malformed JSON"
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return "expected a JSON object"
		}
		return "field " + typeErr.Field + " has the wrong type"
	default:
		return strings.TrimPrefix(err.Error(), "json: ")
	}
}

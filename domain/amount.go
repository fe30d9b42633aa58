package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a float that also accepts numeric strings, since form-backed
// clients post raw input values such as "300000".
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*a = Amount(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%s is not a number", data)
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return fmt.Errorf("%q is not a number", s)
	}
	*a = Amount(n)
	return nil
}

// Years is a whole count of years, accepted as a JSON number or string.
type Years int

var errFractionalYears = errors.New("years must be a whole number")

func (y *Years) UnmarshalJSON(data []byte) error {
	var a Amount
	if err := a.UnmarshalJSON(data); err != nil {
		return err
	}
	n := float64(a)
	if n != math.Trunc(n) {
		return errFractionalYears
	}
	if math.Abs(n) > math.MaxInt32 {
		return fmt.Errorf("years %v is out of range", n)
	}
	*y = Years(n)
	return nil
}

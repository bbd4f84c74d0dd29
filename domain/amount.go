package domain

import (
	"encoding/json"

	"github.com/holiman/uint256"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
	"golang.org/x/xerrors"
)

// Amount is an unsigned fixed-point integer in the smallest unit of the
// payment currency. It travels as a decimal string on the wire and in mongo.
type Amount struct {
	i uint256.Int
}

var ZeroAmount = Amount{}

func NewAmount(v uint64) Amount {
	return Amount{i: *uint256.NewInt(v)}
}

// ParseAmount accepts plain decimal digits only: no sign, no fraction, no
// exponent.
func ParseAmount(s string) (Amount, error) {
	if len(s) == 0 {
		return ZeroAmount, xerrors.Errorf("empty amount: %w", ErrInvalidNumberFormat)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return ZeroAmount, xerrors.Errorf("amount %q: %w", s, ErrInvalidNumberFormat)
		}
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return ZeroAmount, xerrors.Errorf("amount %q: %v: %w", s, err, ErrInvalidNumberFormat)
	}
	return Amount{i: *v}, nil
}

// MustParseAmount panics on invalid input. Use it for constants and tests.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) String() string {
	return a.i.Dec()
}

func (a Amount) IsZero() bool {
	return a.i.IsZero()
}

func (a Amount) Cmp(b Amount) int {
	return a.i.Cmp(&b.i)
}

func (a Amount) Lt(b Amount) bool {
	return a.Cmp(b) < 0
}

func (a Amount) Gt(b Amount) bool {
	return a.Cmp(b) > 0
}

// Add returns a+b and whether the sum overflowed.
func (a Amount) Add(b Amount) (Amount, bool) {
	var res Amount
	_, overflow := res.i.AddOverflow(&a.i, &b.i)
	return res, overflow
}

// Sub returns a-b and whether the subtraction underflowed.
func (a Amount) Sub(b Amount) (Amount, bool) {
	var res Amount
	_, underflow := res.i.SubOverflow(&a.i, &b.i)
	return res, underflow
}

// MulDiv returns floor(a*m/d). The intermediate product is 512 bits wide so
// it cannot overflow; the bool reports a result wider than 256 bits or d == 0.
func (a Amount) MulDiv(m, d uint64) (Amount, bool) {
	if d == 0 {
		return ZeroAmount, true
	}
	var res Amount
	_, overflow := res.i.MulDivOverflow(&a.i, uint256.NewInt(m), uint256.NewInt(d))
	return res, overflow
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return xerrors.Errorf("amount must be a decimal string: %w", ErrInvalidNumberFormat)
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a Amount) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bsontype.String, bsoncore.AppendString(nil, a.String()), nil
}

func (a *Amount) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	s, ok := bson.RawValue{Type: t, Value: data}.StringValueOK()
	if !ok {
		return xerrors.Errorf("amount stored as %s: %w", t, ErrInvalidNumberFormat)
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

package num

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestNaturalFromString(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		out Natural
	}{
		{"0", n64(0)},
		{"000", n64(0)},
		{"7", n64(7)},
		{"007", n64(7)},
		{"100", n64(100)},
		{"18446744073709551615", n64(maxUint64)},
		{"18446744073709551616", NaturalFromRaw(1, 0)},
		{"100000000000000000000", NaturalFromRaw(5, 0x6BC75E2D63100000)},
		{"1000000000000000000900", nats("1000000000000000000900")},
		{"9345623510000000000234500000000900", nats("9345623510000000000234500000000900")},
		{"340282366920938463463374607431768211455", NaturalFromRaw(maxUint64, maxUint64)},
		{"340282366920938463463374607431768211456", n64(1).Lsh(n64(128))},

		// Lengths that are an exact multiple of the chunk size:
		{"1000000000000000000", nats("1000000000000000000")},
		{"10000000000000000000000000000000000000", nats("10000000000000000000000000000000000000")},
		{strings.Repeat("9", 57), nats(strings.Repeat("9", 57))},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			n, err := NaturalFromString(tc.in)
			tt.MustOK(err)
			tt.MustAssert(tc.out.Equal(n), "%s != %s", tc.out, n)
			tt.MustOK(checkCanonical(n))
		})
	}
}

func TestNaturalFromStringLimbs(t *testing.T) {
	skipUnless64(t)
	tt := assert.WrapTB(t)
	tt.MustEqual([]uint{maxWord, maxWord}, MustNaturalFromString("340282366920938463463374607431768211455").Limbs())
	tt.MustEqual([]uint{0, 0, 1}, MustNaturalFromString("340282366920938463463374607431768211456").Limbs())
	tt.MustEqual([]uint{100}, MustNaturalFromString("100").Limbs())
}

func TestNaturalFromStringInvalid(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		err error
	}{
		{"", ErrEmpty},
		{"-1", ErrSyntax},
		{"+1", ErrSyntax},
		{" 1", ErrSyntax},
		{"1 ", ErrSyntax},
		{"1_000", ErrSyntax},
		{"1,000", ErrSyntax},
		{"0x10", ErrSyntax},
		{"12a", ErrSyntax},
		{"1.5", ErrSyntax},
		{"１", ErrSyntax}, // fullwidth digit
	} {
		t.Run(fmt.Sprintf("%d/%q", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			n, err := NaturalFromString(tc.in)
			tt.MustAssert(err != nil)
			tt.MustAssert(n.IsZero())
			tt.MustAssert(errors.Is(err, tc.err), "unexpected error %v", err)

			var perr *ParseError
			tt.MustAssert(errors.As(err, &perr))
			tt.MustEqual(tc.in, perr.Text)
		})
	}
}

func TestParseErrorTruncates(t *testing.T) {
	tt := assert.WrapTB(t)
	in := strings.Repeat("1", 100) + "x"
	_, err := NaturalFromString(in)
	msg := err.Error()
	tt.MustAssert(strings.Contains(msg, "..."), msg)
	tt.MustAssert(!strings.Contains(msg, in), msg)
	tt.MustAssert(strings.HasSuffix(msg, ErrSyntax.Error()), msg)
}

func TestMustNaturalFromStringPanics(t *testing.T) {
	tt := assert.WrapTB(t)
	defer func() {
		tt.MustAssert(recover() != nil)
	}()
	MustNaturalFromString("nope")
}

func TestNaturalString(t *testing.T) {
	for idx, tc := range []struct {
		in  Natural
		out string
	}{
		{Natural{}, "0"},
		{n64(1), "1"},
		{MaxCompact, MaxCompact.AsBigInt().String()},
		{NaturalFromLimbs(0, 1), new(big.Int).Lsh(big1, wordBits).String()},
		{NaturalFromRaw(5, 0x6BC75E2D63100000), "100000000000000000000"},
		{n64(10).Pow(n64(57)), "1" + strings.Repeat("0", 57)}, // chunk boundary zeroes
		{n64(10).Pow(n64(38)).Add(n64(1)), "1" + strings.Repeat("0", 37) + "1"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.in.String())
		})
	}
}

func TestNaturalStringRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 2000; i++ {
		b := randomBigNatural(globalRNG, 1000)
		n := accNaturalFromBigInt(b)
		s := n.String()
		tt.MustEqual(b.String(), s)

		back, err := NaturalFromString(s)
		tt.MustOK(err)
		tt.MustAssert(back.Equal(n))
	}
}

func TestNaturalFormat(t *testing.T) {
	for idx, tc := range []struct {
		in  Natural
		f   string
		out string
	}{
		{n64(255), "%d", "255"},
		{n64(255), "%v", "255"},
		{n64(255), "%s", "255"},
		{n64(255), "%x", "ff"},
		{n64(255), "%#x", "0xff"},
		{n64(255), "%b", "11111111"},
		{n64(255), "%08d", "00000255"},
		{NaturalFromLimbs(0, 1), "%x", "1" + strings.Repeat("0", wordBits/4)},
		{NaturalFromRaw(5, 0x6BC75E2D63100000), "%d", "100000000000000000000"},
	} {
		t.Run(fmt.Sprintf("%d/%s/%s", idx, tc.f, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, fmt.Sprintf(tc.f, tc.in))
		})
	}
}

func TestNaturalJSON(t *testing.T) {
	tt := assert.WrapTB(t)

	type wrapper struct {
		N Natural `json:"n"`
	}

	v := wrapper{N: MustNaturalFromString("9345623510000000000234500000000900")}
	bts, err := json.Marshal(v)
	tt.MustOK(err)
	tt.MustEqual(`{"n":"9345623510000000000234500000000900"}`, string(bts))

	var out wrapper
	tt.MustOK(json.Unmarshal(bts, &out))
	tt.MustAssert(v.N.Equal(out.N))

	// Bare numbers are accepted too:
	tt.MustOK(json.Unmarshal([]byte(`{"n":18446744073709551616}`), &out))
	tt.MustAssert(NaturalFromRaw(1, 0).Equal(out.N))

	tt.MustAssert(json.Unmarshal([]byte(`{"n":"-1"}`), &out) != nil)
	tt.MustAssert(json.Unmarshal([]byte(`{"n":1.5}`), &out) != nil)

	var n Natural
	tt.MustAssert(n.UnmarshalJSON([]byte(`"12`)) != nil)
}

func TestNaturalText(t *testing.T) {
	tt := assert.WrapTB(t)

	in := n64(2).Pow(n64(100))
	bts, err := in.MarshalText()
	tt.MustOK(err)
	tt.MustEqual("1267650600228229401496703205376", string(bts))

	var out Natural
	tt.MustOK(out.UnmarshalText(bts))
	tt.MustAssert(in.Equal(out))

	err = out.UnmarshalText([]byte("x"))
	tt.MustAssert(errors.Is(err, ErrSyntax))
	tt.MustAssert(in.Equal(out), "failed unmarshal must not modify the receiver")
}

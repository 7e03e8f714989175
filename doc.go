/*
Package num provides an arbitrary-precision unsigned integer type (Natural),
implementing the natural-number subset of the big.Int API.

Natural is a value type; all operations return new values.

Simple example:

	n := NaturalFrom64(2).Pow(NaturalFrom64(100))
	fmt.Println(n)
	// Output: 1267650600228229401496703205376

A Natural is stored compactly in a single machine word when it fits, and as a
normalised vector of words ("limbs"), least significant first, when it does
not. Arithmetic uses schoolbook algorithms throughout; there is no Karatsuba
or FFT multiplication and nothing is constant-time.

Naturals can be created from a variety of sources:

	NaturalFrom[T constraints.Unsigned](v T) Natural
	NaturalFromSigned[T constraints.Signed](v T) (out Natural, err error)
	NaturalFrom64(v uint64) Natural
	NaturalFrom32(v uint32) Natural
	NaturalFrom16(v uint16) Natural
	NaturalFrom8(v uint8) Natural
	NaturalFromRaw(hi, lo uint64) Natural
	NaturalFromLimbs(limbs ...uint) Natural
	NaturalFromString(s string) (out Natural, err error)
	NaturalFromBigInt(v *big.Int) (out Natural, accurate bool)

Subtraction cannot produce a negative Natural, so Sub reports underflow with a
second return value rather than wrapping. Division by zero and shifts that
would produce an unindexable number of limbs panic.

Natural supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package num

package kernel

import (
	"fmt"
	"strings"
	"unicode"

	"parceltracking/internal/pkg/errs"
)

const (
	barcodePrefix        = "RMARS"
	barcodeNumericLength = 19
	barcodeLength        = len(barcodePrefix) + barcodeNumericLength + 1
)

// ErrBarcodeIsNotConstructed is returned when validating a zero-value Barcode.
var ErrBarcodeIsNotConstructed = errs.NewValueIsRequiredError("Barcode must be created via NewBarcode")

// Barcode is the parcel's public identifier.
//
// Format:
//
//	RMARS 1234567890123456789 M
//	│     │                   └ uppercase check letter
//	│     └ 19 digits
//	└ prefix
//
// e.g. "RMARS1234567890123456789M". Comparison is exact; barcodes are
// case-sensitive.
type Barcode struct {
	value string
}

// NewBarcode validates s and wraps it.
//
// Returns:
//   - ValueIsRequiredError when s is empty
//   - ValueIsInvalidError when s does not follow the RMARS format
func NewBarcode(s string) (Barcode, error) {
	if s == "" {
		return Barcode{}, errs.NewValueIsRequiredError("barcode")
	}
	if !IsValidBarcode(s) {
		return Barcode{}, errs.NewValueIsInvalidErrorWithCause(
			"barcode",
			fmt.Errorf("'%s' is in an invalid format", s),
		)
	}
	return Barcode{value: s}, nil
}

// IsValidBarcode reports whether s follows the RMARS barcode format.
func IsValidBarcode(s string) bool {
	if len(s) != barcodeLength || !strings.HasPrefix(s, barcodePrefix) {
		return false
	}
	for _, r := range s[len(barcodePrefix) : barcodeLength-1] {
		if r < '0' || r > '9' {
			return false
		}
	}
	check := rune(s[barcodeLength-1])
	return unicode.IsLetter(check) && unicode.IsUpper(check)
}

// String returns the raw barcode.
func (b Barcode) String() string {
	return b.value
}

// IsEqual reports whether both barcodes are identical.
func (b Barcode) IsEqual(other Barcode) bool {
	return b.value == other.value
}

// Validate returns ErrBarcodeIsNotConstructed for the zero value.
func (b Barcode) Validate() error {
	if b.value == "" {
		return ErrBarcodeIsNotConstructed
	}
	return nil
}

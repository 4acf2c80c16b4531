// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bid

import (
	"math"
	"strconv"
	"strings"

	"github.com/bitmark-inc/bidtree/fault"
)

// Amount - a decimal currency value stored as a number of cents
type Amount int64

const (
	centsPerUnit = 100
	fractionSize = 2
)

// characters removed from currency text before parsing
var currencyNoise = strings.NewReplacer("$", "", ",", "")

// ParseAmount - convert currency text such as "$1,234.56" to an Amount
//
// blank text is zero; more than two fraction digits are rounded half up
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(currencyNoise.Replace(strings.TrimSpace(s)))
	if "" == s {
		return 0, nil
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole, fraction := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, fraction = s[:i], s[i+1:]
	}
	if "" == whole && "" == fraction {
		return 0, fault.ErrInvalidAmount
	}
	if !allDigits(whole) || !allDigits(fraction) {
		return 0, fault.ErrInvalidAmount
	}

	units := int64(0)
	if "" != whole {
		n, err := strconv.ParseInt(whole, 10, 64)
		if nil != err || n > (math.MaxInt64-centsPerUnit)/centsPerUnit {
			return 0, fault.ErrInvalidAmount
		}
		units = n
	}

	cents := int64(0)
	for i := 0; i < fractionSize; i += 1 {
		cents *= 10
		if i < len(fraction) {
			cents += int64(fraction[i] - '0')
		}
	}
	if len(fraction) > fractionSize && fraction[fractionSize] >= '5' {
		cents += 1
	}

	total := units*centsPerUnit + cents
	if negative {
		total = -total
	}
	return Amount(total), nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i += 1 {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// split into sign and absolute whole and fractional parts
func (a Amount) parts() (string, uint64, uint64) {
	sign := ""
	u := uint64(a)
	if a < 0 {
		sign = "-"
		u = uint64(-(a + 1)) + 1
	}
	return sign, u / centsPerUnit, u % centsPerUnit
}

// String - plain decimal form e.g. "1234.50"
func (a Amount) String() string {
	sign, whole, cents := a.parts()
	return sign + strconv.FormatUint(whole, 10) + "." + twoDigits(cents)
}

// Dollars - grouped currency form e.g. "$1,234.50"
func (a Amount) Dollars() string {
	sign, whole, cents := a.parts()

	digits := strconv.FormatUint(whole, 10)
	var b strings.Builder
	b.WriteString(sign)
	b.WriteByte('$')
	lead := len(digits) % 3
	if 0 == lead {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	b.WriteByte('.')
	b.WriteString(twoDigits(cents))
	return b.String()
}

// MarshalText - JSON encodes the plain decimal string
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func twoDigits(n uint64) string {
	if n < 10 {
		return "0" + strconv.FormatUint(n, 10)
	}
	return strconv.FormatUint(n, 10)
}

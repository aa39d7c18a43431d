package entity

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidRating = errors.New("invalid rating format")

// Rating holds a movie rating in tenths (9.5 is stored as 95), so the
// one-fractional-digit wire format survives round trips without float drift.
type Rating int32

const (
	RatingMin Rating = 0
	RatingMax Rating = 100 // 10.0
)

func NewRating(whole, tenth int) Rating {
	return Rating(whole*10 + tenth)
}

func (r Rating) InRange() bool {
	return r >= RatingMin && r <= RatingMax
}

// String renders the rating with exactly one fractional digit, e.g. "9.0".
func (r Rating) String() string {
	v := int32(r)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%d", sign, v/10, v%10)
}

// MarshalJSON emits the rating as a quoted decimal string, matching the
// stored NUMERIC(3,1) representation.
func (r Rating) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(r.String())), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string with
// at most one fractional digit.
func (r *Rating) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	parsed, err := ParseRating(s)
	if err != nil {
		return err
	}

	*r = parsed
	return nil
}

// ParseRating parses a decimal string such as "9", "9.5" or "-0.1".
// More than one fractional digit is rejected rather than rounded.
func ParseRating(s string) (Rating, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidRating
	}

	sign := int32(1)
	switch s[0] {
	case '-':
		sign = -1
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}

	if whole == "" && frac == "" {
		return 0, ErrInvalidRating
	}
	if len(frac) > 1 {
		return 0, ErrInvalidRating
	}

	// Scale in int64 so a large whole part overflows the range check
	// instead of wrapping int32.
	tenths := int64(0)
	if whole != "" {
		w, err := strconv.ParseInt(whole, 10, 32)
		if err != nil {
			return 0, ErrInvalidRating
		}
		tenths = w * 10
	}
	if frac != "" {
		f, err := strconv.ParseInt(frac, 10, 32)
		if err != nil {
			return 0, ErrInvalidRating
		}
		tenths += f
	}
	tenths *= int64(sign)

	if tenths > math.MaxInt32 || tenths < math.MinInt32 {
		return 0, ErrInvalidRating
	}

	return Rating(tenths), nil
}

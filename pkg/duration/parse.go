// Package duration parses configuration durations.
package duration

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

const (
	Day  = 24 * time.Hour
	Week = 7 * Day
)

var durationType = reflect.TypeOf(time.Duration(0))

// Parse accepts Go duration syntax with optional leading day and week
// components, e.g. "1w2d", "1d12h" or "90s". A bare "0" is zero.
func Parse(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0, errors.New("empty duration")
	case "0":
		return 0, nil
	}

	var total time.Duration
	rest := s
	for {
		n := leadingDigits(rest)
		if n == 0 || n == len(rest) {
			break
		}

		var unit time.Duration
		switch rest[n] {
		case 'w':
			unit = Week
		case 'd':
			unit = Day
		}
		if unit == 0 {
			break
		}

		value, err := strconv.Atoi(rest[:n])
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		total += time.Duration(value) * unit
		rest = rest[n+1:]
	}

	if rest == "" {
		return total, nil
	}

	d, err := time.ParseDuration(rest)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q (units: ms, s, m, h, d, w): %w", s, err)
	}
	return total + d, nil
}

func leadingDigits(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

// DecodeHook converts string config values into time.Duration using Parse.
func DecodeHook() mapstructure.DecodeHookFunc {
	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		if to != durationType {
			return data, nil
		}
		s, ok := data.(string)
		if !ok {
			return data, nil
		}
		return Parse(s)
	}
}

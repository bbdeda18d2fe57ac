package main

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"castor/internal/kind"
	"castor/internal/operand"
)

// parseOperand turns a CLI argument into an operand:
//
//	300           weak integer literal (arbitrary precision)
//	3e100         weak float literal
//	uint8         typed scalar of that kind, value 1
//	uint8:100     typed scalar with an explicit value
//	int32[1,2,3]  one-dimensional typed array
func parseOperand(arg string) (operand.Operand, error) {
	if open := strings.IndexByte(arg, '['); open >= 0 && strings.HasSuffix(arg, "]") {
		return parseArray(arg[:open], arg[open+1:len(arg)-1])
	}
	if sep := strings.IndexByte(arg, ':'); sep >= 0 {
		k, ok := kind.FromName(arg[:sep])
		if !ok {
			return nil, fmt.Errorf("unknown kind %q", arg[:sep])
		}
		return parseScalar(k, arg[sep+1:])
	}
	if k, ok := kind.FromName(arg); ok {
		return parseScalar(k, "1")
	}
	if v, ok := new(big.Int).SetString(arg, 10); ok {
		return operand.WeakBig(v), nil
	}
	if f, err := strconv.ParseFloat(arg, 64); err == nil {
		return operand.WeakFloat(f), nil
	}
	return nil, fmt.Errorf("unrecognized operand %q (kind name, kind:value, kind[v,...], or literal)", arg)
}

func parseScalar(k kind.Kind, text string) (operand.Scalar, error) {
	switch {
	case k == kind.Bool:
		v, err := strconv.ParseBool(text)
		if err != nil {
			return operand.Scalar{}, fmt.Errorf("invalid bool value %q", text)
		}
		return operand.ScalarBool(v), nil
	case k.Integral():
		v, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return operand.Scalar{}, fmt.Errorf("invalid integer value %q for %s", text, k)
		}
		d, _, err := operand.WeakToDatum(operand.WeakBig(v), k)
		if err != nil {
			return operand.Scalar{}, err
		}
		return operand.Scalar{Kind: k, Datum: d}, nil
	case k.Complex():
		v, err := strconv.ParseComplex(text, 128)
		if err != nil {
			f, ferr := strconv.ParseFloat(text, 64)
			if ferr != nil {
				return operand.Scalar{}, fmt.Errorf("invalid complex value %q for %s", text, k)
			}
			v = complex(f, 0)
		}
		return operand.ScalarComplex(k, v), nil
	default:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return operand.Scalar{}, fmt.Errorf("invalid float value %q for %s", text, k)
		}
		return operand.ScalarFloat(k, v), nil
	}
}

func parseArray(kindName, body string) (operand.Operand, error) {
	k, ok := kind.FromName(kindName)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", kindName)
	}
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("empty array literal for %s", k)
	}
	parts := strings.Split(body, ",")
	data := make([]operand.Datum, len(parts))
	for i, part := range parts {
		s, err := parseScalar(k, strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		data[i] = s.Datum
	}
	return operand.NewArray(k, []int{len(data)}, data), nil
}

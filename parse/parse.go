package parse

import (
	"fmt"
	"strconv"

	"github.com/signadot/jsontree/ir"
	"github.com/signadot/jsontree/token"
)

// Parse reads exactly one JSON value from d and returns its tree.
// Leading and trailing whitespace is allowed; any other content after
// the value is an error. Parsing fails fast: the first error aborts and
// no partial tree is returned. Every failure satisfies
// errors.Is(err, ErrParse) and exposes its byte offset via *Error.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	z := token.NewTokenizer(d)
	t, err := z.Next()
	if err != nil {
		return nil, asError(err)
	}
	res, err := parseValue(z, &t, pOpts)
	if err != nil {
		return nil, err
	}
	end, err := z.Next()
	if err != nil {
		return nil, asError(err)
	}
	if end.Type != token.TEOF {
		return nil, newError(ErrTrailingContent, end.Pos)
	}
	return res, nil
}

func trackPos(node *ir.Node, pos *token.Pos, opts *parseOpts) {
	if opts.positions != nil && pos != nil {
		opts.positions[node] = pos
	}
}

// parseValue consumes the value starting at t, pulling further tokens
// from z for containers. One function per production, no backtracking.
func parseValue(z *token.Tokenizer, t *token.Token, opts *parseOpts) (*ir.Node, error) {
	switch t.Type {
	case token.TNull:
		res := ir.Null()
		trackPos(res, t.Pos, opts)
		return res, nil
	case token.TTrue:
		res := ir.FromBool(true)
		trackPos(res, t.Pos, opts)
		return res, nil
	case token.TFalse:
		res := ir.FromBool(false)
		trackPos(res, t.Pos, opts)
		return res, nil
	case token.TNumber:
		f, err := strconv.ParseFloat(string(t.Bytes), 64)
		if err != nil {
			return nil, newError(fmt.Errorf("%w: %q", token.ErrNumber, t.Bytes), t.Pos)
		}
		res := ir.FromFloat(f)
		trackPos(res, t.Pos, opts)
		return res, nil
	case token.TString:
		res := ir.FromString(t.String())
		trackPos(res, t.Pos, opts)
		return res, nil
	case token.TLSquare:
		return parseArr(z, t.Pos, opts)
	case token.TLCurl:
		return parseObj(z, t.Pos, opts)
	case token.TEOF:
		return nil, newError(ErrUnexpectedEnd, t.Pos)
	default:
		return nil, newError(fmt.Errorf("unexpected token %q", t.Bytes), t.Pos)
	}
}

func parseArr(z *token.Tokenizer, pos *token.Pos, opts *parseOpts) (*ir.Node, error) {
	res := &ir.Node{Type: ir.ArrayType}
	trackPos(res, pos, opts)
	t, err := z.Next()
	if err != nil {
		return nil, asError(err)
	}
	if t.Type == token.TRSquare {
		return res, nil
	}
	for {
		elt, err := parseValue(z, &t, opts)
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, elt)
		t, err = z.Next()
		if err != nil {
			return nil, asError(err)
		}
		switch t.Type {
		case token.TRSquare:
			return res, nil
		case token.TComma:
			// a comma must be followed by another value; parseValue
			// rejects ']' here, so trailing commas fail
			t, err = z.Next()
			if err != nil {
				return nil, asError(err)
			}
		case token.TEOF:
			return nil, newError(ErrUnexpectedEnd, t.Pos)
		default:
			return nil, newError(fmt.Errorf("expected ',' or ']', got %s", t.Type), t.Pos)
		}
	}
}

func parseObj(z *token.Tokenizer, pos *token.Pos, opts *parseOpts) (*ir.Node, error) {
	res := &ir.Node{Type: ir.ObjectType}
	trackPos(res, pos, opts)
	t, err := z.Next()
	if err != nil {
		return nil, asError(err)
	}
	if t.Type == token.TRCurl {
		return res, nil
	}
	for {
		if t.Type != token.TString {
			if t.Type == token.TEOF {
				return nil, newError(ErrUnexpectedEnd, t.Pos)
			}
			return nil, newError(fmt.Errorf("expected string key, got %s", t.Type), t.Pos)
		}
		key := t.String()
		col, err := z.Next()
		if err != nil {
			return nil, asError(err)
		}
		if col.Type != token.TColon {
			if col.Type == token.TEOF {
				return nil, newError(ErrUnexpectedEnd, col.Pos)
			}
			return nil, newError(fmt.Errorf("expected ':', got %s", col.Type), col.Pos)
		}
		t, err = z.Next()
		if err != nil {
			return nil, asError(err)
		}
		val, err := parseValue(z, &t, opts)
		if err != nil {
			return nil, err
		}
		// duplicate keys are permitted, last occurrence wins
		res.SetField(key, val)
		t, err = z.Next()
		if err != nil {
			return nil, asError(err)
		}
		switch t.Type {
		case token.TRCurl:
			return res, nil
		case token.TComma:
			t, err = z.Next()
			if err != nil {
				return nil, asError(err)
			}
		case token.TEOF:
			return nil, newError(ErrUnexpectedEnd, t.Pos)
		default:
			return nil, newError(fmt.Errorf("expected ',' or '}', got %s", t.Type), t.Pos)
		}
	}
}

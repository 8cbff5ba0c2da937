package token

import "bytes"

// Tokenizer scans JSON tokens from a byte slice, one at a time. It
// keeps a single cursor; after an error the tokenizer should not be
// reused.
type Tokenizer struct {
	d   []byte
	doc *PosDoc
	off int
}

func NewTokenizer(d []byte) *Tokenizer {
	return &Tokenizer{
		d:   d,
		doc: NewPosDoc(d),
	}
}

// Pos returns the position of the cursor.
func (z *Tokenizer) Pos() *Pos {
	return z.doc.Pos(z.off)
}

// Next returns the next token, skipping whitespace (space, tab, CR,
// LF). At end of input it returns a TEOF token positioned one past the
// last byte. Errors are *Error values carrying the byte offset of the
// offending input.
func (z *Tokenizer) Next() (Token, error) {
	z.ws()
	start := z.off
	pos := z.doc.Pos(start)
	if z.off == len(z.d) {
		return Token{Type: TEOF, Pos: pos}, nil
	}
	switch c := z.d[z.off]; c {
	case '{':
		return z.one(TLCurl, pos), nil
	case '}':
		return z.one(TRCurl, pos), nil
	case '[':
		return z.one(TLSquare, pos), nil
	case ']':
		return z.one(TRSquare, pos), nil
	case ',':
		return z.one(TComma, pos), nil
	case ':':
		return z.one(TColon, pos), nil
	case '"':
		n, err := scanQuoted(z.d[z.off:])
		if err != nil {
			return Token{}, NewError(err, z.doc.Pos(start+n))
		}
		z.off += n
		return Token{Type: TString, Bytes: z.d[start:z.off], Pos: pos}, nil
	case 'n':
		return z.literal(TNull, []byte("null"), pos)
	case 't':
		return z.literal(TTrue, []byte("true"), pos)
	case 'f':
		return z.literal(TFalse, []byte("false"), pos)
	default:
		if c == '-' || asciiDigit(c) {
			n, err := number(z.d[z.off:])
			if err != nil {
				return Token{}, NewError(err, z.doc.Pos(start+n))
			}
			z.off += n
			return Token{Type: TNumber, Bytes: z.d[start:z.off], Pos: pos}, nil
		}
		return Token{}, NewError(ErrUnexpected, pos)
	}
}

func (z *Tokenizer) one(t Type, pos *Pos) Token {
	z.off++
	return Token{Type: t, Bytes: z.d[pos.I:z.off], Pos: pos}
}

func (z *Tokenizer) literal(t Type, lit []byte, pos *Pos) (Token, error) {
	if !bytes.HasPrefix(z.d[z.off:], lit) {
		return Token{}, NewError(ErrLiteral, pos)
	}
	z.off += len(lit)
	return Token{Type: t, Bytes: z.d[pos.I:z.off], Pos: pos}, nil
}

func (z *Tokenizer) ws() {
	for z.off < len(z.d) {
		switch z.d[z.off] {
		case ' ', '\t', '\r', '\n':
			z.off++
		default:
			return
		}
	}
}

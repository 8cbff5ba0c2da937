package token

type Type int

const (
	TEOF Type = iota
	TNull
	TTrue
	TFalse
	TNumber
	TString
	TLSquare
	TRSquare
	TLCurl
	TRCurl
	TComma
	TColon
)

func (t Type) String() string {
	switch t {
	case TEOF:
		return "eof"
	case TNull:
		return "null"
	case TTrue:
		return "true"
	case TFalse:
		return "false"
	case TNumber:
		return "number"
	case TString:
		return "string"
	case TLSquare:
		return "'['"
	case TRSquare:
		return "']'"
	case TLCurl:
		return "'{'"
	case TRCurl:
		return "'}'"
	case TComma:
		return "','"
	case TColon:
		return "':'"
	default:
		return "<unknown token>"
	}
}

// Token is one lexical element of the input. Bytes is the raw matched
// text, including quotes for TString; Pos is the offset of its first
// byte.
type Token struct {
	Type  Type
	Bytes []byte
	Pos   *Pos
}

// String returns the decoded value of a TString token.
func (t *Token) String() string {
	if t.Type != TString {
		return string(t.Bytes)
	}
	return Unquote(t.Bytes)
}

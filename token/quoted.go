package token

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// scanQuoted validates a quoted string at the start of d, d[0] being the
// opening '"'. It returns the total byte length including both quotes,
// or the index at which validation failed together with the error.
//
// Escapes are the RFC 8259 set: \" \\ \/ \b \f \n \r \t and \uXXXX with
// exactly four hex digits. Escapes for UTF-16 surrogate halves
// (U+D800..U+DFFF) are rejected rather than mis-encoded. Raw bytes other
// than '"' and '\', including control and multi-byte UTF-8 sequences,
// pass through unvalidated.
func scanQuoted(d []byte) (int, error) {
	i := 1
	n := len(d)
	for i < n {
		switch d[i] {
		case '"':
			return i + 1, nil
		case '\\':
			if i+1 >= n {
				return n, ErrUnterminated
			}
			switch d[i+1] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i += 2
			case 'u':
				if i+6 > n {
					return n, ErrUnterminated
				}
				if !allHex(d[i+2 : i+6]) {
					return i, ErrBadUnicode
				}
				if cp := hexVal(d[i+2 : i+6]); cp >= 0xD800 && cp <= 0xDFFF {
					return i, ErrSurrogate
				}
				i += 6
			default:
				return i, ErrBadEscape
			}
		default:
			i++
		}
	}
	return n, ErrUnterminated
}

// Unquote decodes a quoted string token previously validated by the
// tokenizer. \uXXXX escapes decode to the code point's 1-3 byte UTF-8
// encoding.
func Unquote(d []byte) string {
	b := &strings.Builder{}
	i := 1
	for i < len(d) {
		c := d[i]
		switch c {
		case '"':
			return b.String()
		case '\\':
			switch d[i+1] {
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			case '/':
				b.WriteByte('/')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'u':
				var buf [utf8.UTFMax]byte
				n := utf8.EncodeRune(buf[:], rune(hexVal(d[i+2:i+6])))
				b.Write(buf[:n])
				i += 6
				continue
			default:
				panic(fmt.Sprintf("internal string %q", string(d)))
			}
			i += 2
		default:
			b.WriteByte(c)
			i++
		}
	}
	panic(fmt.Sprintf("internal string %q", string(d)))
}

// Quote encodes v as a quoted JSON string using the minimal escape set:
// '"', '\', newline, carriage return and tab. All other bytes, including
// multi-byte UTF-8 sequences, pass through unescaped.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			d = append(d, c)
		}
	}
	d = append(d, '"')
	return string(d)
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

func hexVal(d []byte) int {
	v := 0
	for _, c := range d {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= int(c - '0')
		case c >= 'a' && c <= 'f':
			v |= int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= int(c-'A') + 10
		}
	}
	return v
}

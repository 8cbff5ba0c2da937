package encode

type EncodeOption func(*EncState)

// Indent selects pretty output with n spaces per nesting level when
// n >= 0, compact output when n < 0.
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		if n < 0 {
			es.compact = true
			return
		}
		es.compact = false
		es.indent = n
	}
}

// Compact selects output with no inserted whitespace anywhere.
func Compact() EncodeOption {
	return func(es *EncState) { es.compact = true }
}

// Depth sets the starting nesting level, for embedding output inside
// already-indented text.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

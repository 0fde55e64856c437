package chess

import "strings"

// String renders the board ranks 7 down to 0, top to bottom, each cell as
// "{w,b}{Pa,Ro,Kn,Bi,Qu,Ki}" or three blanks, '|'-separated. Exact
// formatting is non-normative except as regression-test input (§6).
func (b Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if file > 0 {
				sb.WriteByte('|')
			}
			if p, ok := b.pieceAt(squareAt(file, rank)); ok {
				var side = "w"
				if p.Color == Black {
					side = "b"
				}
				sb.WriteString(side)
				sb.WriteString(p.Kind.String())
			} else {
				sb.WriteString("   ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

package renderer

import (
	"bytes"
	"io"

	md "github.com/nao1215/markdown"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// alignRight returns a table alignment with the first column on the left and
// the 'n'-1 others on the right.
func alignRight(n int) []md.TableAlignment {
	a := make([]md.TableAlignment, n)
	a[0] = md.AlignLeft
	for i := 1; i < n; i++ {
		a[i] = md.AlignRight
	}
	return a
}

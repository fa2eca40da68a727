package export

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/casskell/outline_viewer/pkg/outline"
)

const (
	svgBoxWidth   = 720
	svgInset      = 28
	svgLabelSize  = 14
	svgLabelPad   = 20
	svgFootHeight = 36
)

// categoryFill maps hierarchy levels to fill colors, outermost lightest.
var categoryFill = []string{"#f4f1fa", "#e8e2f5", "#dcd3f0", "#d0c4eb", "#c4b5e6"}

// WriteOutlineSVG draws the chain as nested rounded boxes, the furthest
// ancestor outermost, each level inset inside the previous, with the
// item's display name labelling each box.
func WriteOutlineSVG(w io.Writer, outermost *outline.Node) error {
	if outermost == nil {
		return fmt.Errorf("nil outline node")
	}

	nodes := outline.ChainNodes(outermost)
	depth := len(nodes)

	// Innermost box still needs room for its label.
	height := 2*depth*svgInset + svgFootHeight

	canvas := svg.New(w)
	canvas.Start(svgBoxWidth, height)

	for i, n := range nodes {
		x := i * svgInset
		y := i * svgInset
		bw := svgBoxWidth - 2*i*svgInset
		bh := height - 2*i*svgInset
		if bw < svgInset || bh < svgLabelPad {
			break
		}

		fill := categoryFill[i%len(categoryFill)]
		canvas.Roundrect(x, y, bw, bh, 6, 6,
			fmt.Sprintf("fill:%s;stroke:#6c5b9e;stroke-width:1", fill))

		label := n.Item().DisplayName
		if label == "" {
			label = n.Item().ID
		}
		canvas.Text(x+10, y+svgLabelPad,
			fmt.Sprintf("%s (%s)", label, n.Item().Category),
			fmt.Sprintf("font-family:sans-serif;font-size:%dpx;fill:#2a2040", svgLabelSize))
	}

	canvas.End()
	return nil
}

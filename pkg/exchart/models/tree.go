package models

import (
	"math"
	"strconv"
)

// Attr is a node attribute other than the primary value.
type Attr struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Node is one element of the ordered chart document tree. Child order is fixed
// per node type and is part of the document contract: serializers emit
// children in slice order.
type Node struct {
	Name     string `json:"name"`
	Value    string `json:"val,omitempty"`
	Attrs    []Attr `json:"attrs,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// Child returns the first direct child with the given name.
func (n Node) Child(name string) (Node, bool) {
	if i := n.Index(name); i >= 0 {
		return n.Children[i], true
	}
	return Node{}, false
}

// Index returns the position of the first direct child with the given name, or -1.
func (n Node) Index(name string) int {
	for i, c := range n.Children {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// ChildNames returns the names of the direct children in order.
func (n Node) ChildNames() []string {
	names := make([]string, len(n.Children))
	for i, c := range n.Children {
		names[i] = c.Name
	}
	return names
}

// Find returns every descendant (depth first) with the given name.
func (n Node) Find(name string) []Node {
	var out []Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
		out = append(out, c.Find(name)...)
	}
	return out
}

func leaf(name, val string) Node {
	return Node{Name: name, Value: val}
}

func elem(name string, children ...Node) Node {
	return Node{Name: name, Children: children}
}

func boolLeaf(name string, b bool) Node {
	if b {
		return leaf(name, "1")
	}
	return leaf(name, "0")
}

func intLeaf(name string, v int) Node {
	return leaf(name, strconv.Itoa(v))
}

func floatString(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Tree returns the color element.
func (c ColorSpec) Tree() Node {
	if c.Kind == ColorLiteral {
		return leaf("srgbClr", c.Hex)
	}
	return leaf("schemeClr", c.SchemeName())
}

func fillNode(c *ColorSpec, none bool) (Node, bool) {
	switch {
	case none:
		return elem("noFill"), true
	case c != nil:
		return elem("solidFill", c.Tree()), true
	}
	return Node{}, false
}

func shapeProperties(fill *ColorSpec, noFill bool, outline *ColorSpec, noOutline bool) Node {
	sp := elem("spPr")
	if n, ok := fillNode(fill, noFill); ok {
		sp.Children = append(sp.Children, n)
	}
	if n, ok := fillNode(outline, noOutline); ok {
		sp.Children = append(sp.Children, elem("ln", n))
	}
	return sp
}

func (t TextStyle) runProperties(name string) Node {
	rp := Node{Name: name, Attrs: []Attr{
		{Key: "sz", Value: strconv.Itoa(int(math.Round(t.Size * 100)))},
		{Key: "b", Value: boolString(t.Bold)},
		{Key: "i", Value: boolString(t.Italic)},
		{Key: "u", Value: underlineValue(t.Underline)},
		{Key: "strike", Value: strikeValue(t.Strike)},
	}}
	if t.Language != "" {
		rp.Attrs = append(rp.Attrs, Attr{Key: "lang", Value: t.Language})
	}
	if t.Color != "" {
		rp.Children = append(rp.Children, elem("solidFill", LiteralColor(t.Color).Tree()))
	}
	return rp
}

// Tree returns the text properties element for the style.
func (t TextStyle) Tree() Node {
	return elem("txPr",
		elem("bodyPr"),
		elem("lstStyle"),
		elem("p",
			elem("pPr", t.runProperties("defRPr")),
			Node{Name: "endParaRPr", Attrs: []Attr{{Key: "lang", Value: t.Language}}},
		),
	)
}

func boolString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func underlineValue(u bool) string {
	if u {
		return "sng"
	}
	return "none"
}

func strikeValue(s bool) string {
	if s {
		return "sngStrike"
	}
	return "noStrike"
}

func cacheNode(name string, r Ref, format string) Node {
	cache := elem(name)
	if name == "numCache" {
		if format == "" {
			format = "General"
		}
		cache.Children = append(cache.Children, leaf("formatCode", format))
	}
	cache.Children = append(cache.Children, intLeaf("ptCount", len(r.Cache)))
	for i, v := range r.Cache {
		if v == "" {
			continue
		}
		cache.Children = append(cache.Children, Node{
			Name:     "pt",
			Attrs:    []Attr{{Key: "idx", Value: strconv.Itoa(i)}},
			Children: []Node{leaf("v", v)},
		})
	}
	return cache
}

// StringRefTree returns a strRef element for the reference.
func (r Ref) StringRefTree() Node {
	return elem("strRef", leaf("f", r.Formula), cacheNode("strCache", r, ""))
}

// NumberRefTree returns a numRef element for the reference.
func (r Ref) NumberRefTree(format string) Node {
	return elem("numRef", leaf("f", r.Formula), cacheNode("numCache", r, format))
}

func (r Ref) dataTree(name, format string) Node {
	if r.Numeric {
		return elem(name, r.NumberRefTree(format))
	}
	return elem(name, r.StringRefTree())
}

// Tree returns the dLbls element. The position comes first, followed by the
// shape and text properties and the show flags.
func (d DataLabels) Tree() Node {
	n := elem("dLbls")
	if d.Deleted {
		n.Children = append(n.Children, boolLeaf("delete", true))
		return n
	}
	if d.Position != "" && d.Position != LabelShow {
		n.Children = append(n.Children, leaf("dLblPos", positionValue(d.Position)))
	}
	n.Children = append(n.Children,
		shapeProperties(nil, true, nil, true),
		d.Text.Tree(),
		boolLeaf("showLegendKey", d.ShowLegendKey),
		boolLeaf("showVal", d.ShowValue),
		boolLeaf("showCatName", d.ShowCategoryName),
		boolLeaf("showSerName", d.ShowSeriesName),
		boolLeaf("showPercent", d.ShowPercent),
		boolLeaf("showBubbleSize", d.ShowBubbleSize),
	)
	if d.Separator != "" {
		n.Children = append(n.Children, leaf("separator", d.Separator))
	}
	if d.Range != nil {
		n.Children = append(n.Children, elem("extLst",
			elem("ext", boolLeaf("showDataLabelsRange", true))))
	}
	return n
}

func positionValue(p LabelPosition) string {
	switch p {
	case LabelCenter:
		return "ctr"
	case LabelInsideEnd:
		return "inEnd"
	case LabelInsideBase:
		return "inBase"
	case LabelOutsideEnd:
		return "outEnd"
	case LabelBestFit:
		return "bestFit"
	case LabelLeft:
		return "l"
	case LabelRight:
		return "r"
	case LabelAbove:
		return "t"
	case LabelBelow:
		return "b"
	}
	return string(p)
}

// Tree returns the marker element.
func (m Marker) Tree() Node {
	n := elem("marker", leaf("symbol", string(m.Symbol)))
	if m.Symbol == MarkerNone {
		return n
	}
	if m.Size > 0 {
		n.Children = append(n.Children, intLeaf("size", m.Size))
	}
	if m.Fill != nil || m.Outline != nil {
		n.Children = append(n.Children, shapeProperties(m.Fill, false, m.Outline, false))
	}
	return n
}

func (p DataPoint) tree(kind GroupKind) Node {
	n := elem("dPt", intLeaf("idx", p.Index))
	if kind == GroupBar || kind == GroupBar3D || kind == GroupBubble {
		n.Children = append(n.Children, boolLeaf("invertIfNegative", false))
	}
	if kind == GroupBubble {
		n.Children = append(n.Children, boolLeaf("bubble3D", false))
	}
	n.Children = append(n.Children, shapeProperties(p.Fill, false, p.Outline, false))
	return n
}

// Tree returns the ser element for a series inside a group of the given kind.
func (s Series) Tree(kind GroupKind) Node {
	b := s.Binding
	n := elem("ser",
		intLeaf("idx", b.ID),
		intLeaf("order", b.ID),
		elem("tx", b.Header.StringRefTree()),
		shapeProperties(s.Fill, s.NoFill, s.Outline, s.NoOutline),
	)
	if s.InvertIfNegative != nil {
		n.Children = append(n.Children, boolLeaf("invertIfNegative", *s.InvertIfNegative))
	}
	if s.Marker != nil {
		n.Children = append(n.Children, s.Marker.Tree())
	}
	if s.Explosion != nil {
		n.Children = append(n.Children, intLeaf("explosion", *s.Explosion))
	}
	for _, p := range s.Points {
		n.Children = append(n.Children, p.tree(kind))
	}
	if s.DataLabels != nil {
		n.Children = append(n.Children, s.DataLabels.Tree())
	}
	if kind == GroupScatter || kind == GroupBubble {
		n.Children = append(n.Children,
			b.Categories.dataTree("xVal", ""),
			b.Values.dataTree("yVal", s.NumberFormat))
	} else {
		n.Children = append(n.Children,
			b.Categories.dataTree("cat", ""),
			b.Values.dataTree("val", s.NumberFormat))
	}
	if kind == GroupBubble && b.Sizes != nil {
		n.Children = append(n.Children, b.Sizes.dataTree("bubbleSize", ""))
	}
	if s.Bubble3D != nil {
		n.Children = append(n.Children, boolLeaf("bubble3D", *s.Bubble3D))
	}
	if s.Smooth != nil {
		n.Children = append(n.Children, boolLeaf("smooth", *s.Smooth))
	}
	if b.Labels != nil {
		n.Children = append(n.Children, elem("extLst",
			elem("ext", elem("datalabelsRange", leaf("f", b.Labels.Formula), cacheNode("dlblRangeCache", *b.Labels, "")))))
	}
	return n
}

// Tree returns the chart group element.
func (g ChartGroup) Tree() Node {
	n := elem(string(g.Kind))
	add := func(c ...Node) { n.Children = append(n.Children, c...) }

	switch g.Kind {
	case GroupBar, GroupBar3D:
		add(leaf("barDir", g.BarDirection), leaf("grouping", g.Grouping))
	case GroupLine, GroupArea:
		add(leaf("grouping", g.Grouping))
	case GroupScatter:
		add(leaf("scatterStyle", g.ScatterStyle))
	}
	add(boolLeaf("varyColors", g.VaryColors))
	for _, s := range g.Series {
		add(s.Tree(g.Kind))
	}
	if g.DataLabels != nil {
		add(g.DataLabels.Tree())
	}
	if g.GapWidth != nil {
		add(intLeaf("gapWidth", *g.GapWidth))
	}
	if g.Overlap != nil {
		add(intLeaf("overlap", *g.Overlap))
	}
	if g.Shape != "" {
		add(leaf("shape", string(g.Shape)))
	}
	if g.ShowMarker != nil {
		add(boolLeaf("marker", *g.ShowMarker))
	}
	if g.FirstSliceAngle != nil {
		add(intLeaf("firstSliceAng", *g.FirstSliceAngle))
	}
	if g.HoleSize != nil {
		add(intLeaf("holeSize", *g.HoleSize))
	}
	if g.BubbleScale != nil {
		add(intLeaf("bubbleScale", *g.BubbleScale))
	}
	if g.ShowNegativeBubbles != nil {
		add(boolLeaf("showNegBubbles", *g.ShowNegativeBubbles))
	}
	for _, id := range g.AxisIDs {
		add(leaf("axId", strconv.FormatUint(uint64(id), 10)))
	}
	return n
}

// Tree returns the axis element.
func (a Axis) Tree() Node {
	orientation := "minMax"
	if a.Reversed {
		orientation = "maxMin"
	}
	scaling := elem("scaling", leaf("orientation", orientation))
	if a.Max != nil {
		scaling.Children = append(scaling.Children, leaf("max", floatString(*a.Max)))
	}
	if a.Min != nil {
		scaling.Children = append(scaling.Children, leaf("min", floatString(*a.Min)))
	}

	n := elem(string(a.Kind),
		leaf("axId", strconv.FormatUint(uint64(a.ID), 10)),
		scaling,
		boolLeaf("delete", !a.Visible),
		leaf("axPos", string(a.Position)),
	)
	if a.MajorGridlines {
		n.Children = append(n.Children, elem("majorGridlines"))
	}
	if a.MinorGridlines {
		n.Children = append(n.Children, elem("minorGridlines"))
	}
	if a.Title != "" {
		n.Children = append(n.Children, titleTree(a.Title, a.Font, false))
	}
	if a.NumberFormat != "" {
		n.Children = append(n.Children, Node{Name: "numFmt", Attrs: []Attr{
			{Key: "formatCode", Value: a.NumberFormat},
			{Key: "sourceLinked", Value: "0"},
		}})
	}
	n.Children = append(n.Children,
		leaf("majorTickMark", string(a.MajorTickMark)),
		leaf("minorTickMark", string(a.MinorTickMark)),
		leaf("tickLblPos", string(a.TickLabelPosition)),
		shapeProperties(nil, true, nil, false),
	)
	txPr := a.Font.Tree()
	if a.LabelRotation != 0 {
		txPr.Children[0].Attrs = append(txPr.Children[0].Attrs,
			Attr{Key: "rot", Value: strconv.Itoa(a.LabelRotation * 60000)})
	}
	n.Children = append(n.Children,
		txPr,
		leaf("crossAx", strconv.FormatUint(uint64(a.CrossAxisID), 10)),
		leaf("crosses", string(a.Crosses)),
	)
	switch a.Kind {
	case AxisCategory:
		n.Children = append(n.Children,
			boolLeaf("auto", true),
			leaf("lblAlgn", "ctr"),
			intLeaf("lblOffset", 100),
			boolLeaf("noMultiLvlLbl", false))
	case AxisValue:
		n.Children = append(n.Children, leaf("crossBetween", "between"))
	}
	return n
}

func titleTree(text string, font TextStyle, overlay bool) Node {
	return elem("title",
		elem("tx", elem("rich",
			elem("bodyPr"),
			elem("lstStyle"),
			elem("p", elem("pPr", font.runProperties("defRPr")), elem("r", font.runProperties("rPr"), leaf("t", text))),
		)),
		boolLeaf("overlay", overlay),
	)
}

// layoutTree returns the layout element; an empty layout means automatic placement.
func layoutTree(l *Layout) Node {
	if l == nil {
		return elem("layout")
	}
	return elem("layout", elem("manualLayout",
		leaf("layoutTarget", "inner"),
		leaf("xMode", "edge"),
		leaf("yMode", "edge"),
		leaf("x", floatString(l.X)),
		leaf("y", floatString(l.Y)),
		leaf("w", floatString(l.Width)),
		leaf("h", floatString(l.Height)),
	))
}

// Tree returns the plotArea element: layout, groups, axes, shape properties.
func (p PlotArea) Tree() Node {
	n := elem("plotArea", layoutTree(p.Layout))
	for _, g := range p.Groups {
		n.Children = append(n.Children, g.Tree())
	}
	for _, a := range p.Axes {
		if a.Sentinel {
			continue
		}
		n.Children = append(n.Children, a.Tree())
	}
	n.Children = append(n.Children, shapeProperties(nil, true, nil, true))
	return n
}

// Tree returns the legend element.
func (l Legend) Tree() Node {
	n := elem("legend", leaf("legendPos", legendPositionValue(l.Position)))
	if l.Layout != nil {
		n.Children = append(n.Children, layoutTree(l.Layout))
	}
	n.Children = append(n.Children,
		boolLeaf("overlay", l.Overlay),
		shapeProperties(nil, true, nil, true),
		l.Font.Tree(),
	)
	return n
}

func legendPositionValue(p LegendPosition) string {
	switch p {
	case LegendTop:
		return "t"
	case LegendLeft:
		return "l"
	case LegendRight:
		return "r"
	case LegendTopRight:
		return "tr"
	}
	return "b"
}

// Tree returns the chartSpace element of the document.
func (d *ChartDocument) Tree() Node {
	chart := elem("chart")
	if d.Title != nil {
		chart.Children = append(chart.Children, titleTree(d.Title.Text, d.Title.Font, false))
	}
	chart.Children = append(chart.Children, boolLeaf("autoTitleDeleted", d.AutoTitleDeleted))
	if d.View3D != nil {
		chart.Children = append(chart.Children, elem("view3D",
			intLeaf("rotX", d.View3D.RotX),
			intLeaf("rotY", d.View3D.RotY),
			boolLeaf("rAngAx", d.View3D.RightAngleAx)))
	}
	chart.Children = append(chart.Children, d.PlotArea.Tree())
	if d.Legend != nil {
		chart.Children = append(chart.Children, d.Legend.Tree())
	}
	chart.Children = append(chart.Children,
		boolLeaf("plotVisOnly", d.PlotVisibleOnly),
		leaf("dispBlanksAs", d.DisplayBlanksAs))

	return elem("chartSpace",
		boolLeaf("date1904", false),
		boolLeaf("roundedCorners", false),
		chart,
	)
}

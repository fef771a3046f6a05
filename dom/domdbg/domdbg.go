/*
Package domdbg implements helpers to debug a render tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/rendertree/dom/rendertree"
	"github.com/npillmayer/rendertree/dom/style"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	Styles   []string
	NodeTmpl *template.Template
	TextTmpl *template.Template
	EdgeTmpl *template.Template
}

// Style fields available for diagrams.
var styleFields = map[string]func(*style.Declaration) string{
	"display":          func(d *style.Declaration) string { return d.Display.String() },
	"position":         func(d *style.Declaration) string { return d.Position.String() },
	"z-index":          func(d *style.Declaration) string { return d.ZIndex.String() },
	"opacity":          func(d *style.Declaration) string { return fmt.Sprintf("%g", d.Opacity) },
	"color":            func(d *style.Declaration) string { return style.ColorString(d.Color) },
	"background-color": func(d *style.Declaration) string { return style.ColorString(d.BackgroundColor) },
	"background-image": func(d *style.Declaration) string { return images(d) },
	"text-transform":   func(d *style.Declaration) string { return d.TextTransform.String() },
	"visibility":       func(d *style.Declaration) string { return d.Visibility.String() },
}

var defaultStyles = []string{
	"display",
	"position",
	"color",
	"background-image",
}

// ToGraphViz outputs a diagram for a render tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the render tree, a Writer, and an optional list of style properties.
// Every render node shows its bounds, its flags and the values of the
// style properties. Unknown properties are ignored.
//
// If the client does not provide a list of properties, the following
// default will be used:
//
//     - display
//     - position
//     - color
//     - background-image
//
func ToGraphViz(root *rendertree.Node, w io.Writer, styles []string) error {
	tmpl, err := template.New("rendertree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica", Styles: styles}
	if styles == nil {
		gparams.Styles = defaultStyles
	}
	gparams.NodeTmpl = template.Must(template.New("rnode").Funcs(
		template.FuncMap{
			"styles": func(n *rendertree.Node) []kv { return nodeStyles(n, gparams.Styles) },
			"fill":   fillColor,
		}).Parse(renderNodeTmpl))
	gparams.TextTmpl = template.Must(template.New("text").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(textTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*rendertree.Node]string, 1024)
	if err = nodes(root, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a render node and a testing.T, it will
// create a Graphiviz image of the render tree under `root` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(root *rendertree.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "rendertree.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing render tree digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(root, tmpfile, nil); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing render tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    *rendertree.Node
	Name string
}

type text struct {
	Text string
	Name string
}

type edge struct {
	Name1, Name2 string
}

type kv struct {
	Key, Value string
}

func nodes(n *rendertree.Node, w io.Writer, dict map[*rendertree.Node]string, gparams *graphParamsType) error {
	name := nodeName(n, dict)
	if err := gparams.NodeTmpl.Execute(w, &node{n, name}); err != nil {
		return err
	}
	for i, run := range n.TextRuns {
		tname := fmt.Sprintf("%s_t%d", name, i)
		if err := gparams.TextTmpl.Execute(w, text{run.Text, tname}); err != nil {
			return err
		}
		if err := gparams.EdgeTmpl.Execute(w, edge{name, tname}); err != nil {
			return err
		}
	}
	for _, ch := range n.Children() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		if err := gparams.EdgeTmpl.Execute(w, edge{name, dict[ch]}); err != nil {
			return err
		}
	}
	return nil
}

func nodeName(n *rendertree.Node, dict map[*rendertree.Node]string) string {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	return name
}

func nodeStyles(n *rendertree.Node, keys []string) []kv {
	if n.Styles == nil {
		return nil
	}
	var styles []kv
	for _, key := range keys {
		if f, ok := styleFields[key]; ok {
			styles = append(styles, kv{key, f(n.Styles)})
		}
	}
	return styles
}

// Block-level nodes are blue, inline-level nodes yellow.
func fillColor(n *rendertree.Node) string {
	if n.Styles != nil && n.Styles.IsInlineLevel() {
		return "lightgoldenrod1"
	}
	return "lightblue3"
}

func images(d *style.Declaration) string {
	if len(d.BackgroundImage) == 0 {
		return "none"
	}
	imgs := make([]string, len(d.BackgroundImage))
	for i, img := range d.BackgroundImage {
		imgs[i] = img.String()
	}
	return strings.Join(imgs, ", ")
}

func shortText(s string) string {
	if r := []rune(s); len(r) > 10 {
		s = string(r[:10]) + "..."
	}
	s = fmt.Sprintf("%q", s)
	s = strings.ReplaceAll(s, " ", "␣")
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const renderNodeTmpl = `{{ .Name }} [ style="filled" penwidth=1 fillcolor="{{ fill .N }}" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .N.Tag }}</font></td></tr>
      <tr><td align="right">bounds:</td><td>{{ .N.Bounds }}</td></tr>
      <tr><td align="right">flags:</td><td>{{ .N.Flags }}</td></tr>
      {{- range styles .N }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value | html }}</td></tr>
      {{- end }}
    </table>> ] ;
`

const textTmpl = `{{ .Name }} [ label={{ shortstring .Text }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
`

const edgeTmpl = `{{ .Name1 }} -> {{ .Name2 }} [weight=1] ;
`

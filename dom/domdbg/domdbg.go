/*
Package domdbg implements helpers to debug a styled tree.

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

	"github.com/npillmayer/boxpaint/dom"
	"github.com/npillmayer/boxpaint/dom/style"
	"github.com/npillmayer/boxpaint/dom/styledtree"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	DeclsTmpl *template.Template
	DeclEdge  *template.Template
}

// ToGraphViz outputs a diagram for a styled tree. The diagram is in
// GraphViz (DOT) format. Every element is connected to a table listing
// the declarations the cascade has selected for it.
func ToGraphViz(root *styledtree.Node, w io.Writer) error {
	tmpl, err := template.New("styled").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.DeclsTmpl = template.Must(template.New("decls").Parse(declsTmpl))
	gparams.DeclEdge = template.Must(template.New("decledge").Parse(declEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	if root != nil {
		dict := make(map[*styledtree.Node]string, 64)
		if err = nodes(root, w, dict, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a styled node and a testing.T, it will
// create a Graphiviz image of the tree under `root` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If the `dot` binary is not installed, the test is skipped. If an error
// occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(root *styledtree.Node, t *testing.T) {
	dot, err := exec.LookPath("dot")
	if err != nil {
		t.Skip("GraphViz dot not found")
	}
	tmpfile, err := os.CreateTemp(".", "styled.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing styled digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(root, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command(dot, "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing styled tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    *styledtree.Node
	Name string
}

// NodeName is the DOM node name, used by the templates.
func (n node) NodeName() string {
	return dom.NodeName(n.N.HTMLNode())
}

func nodes(sn *styledtree.Node, w io.Writer, dict map[*styledtree.Node]string, gparams *graphParamsType) error {
	if err := domNode(sn, w, dict, gparams); err != nil {
		return err
	}
	for _, ch := range sn.Children() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		e := edge{node{sn, dict[sn]}, node{ch, dict[ch]}}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func domNode(sn *styledtree.Node, w io.Writer, dict map[*styledtree.Node]string, gparams *graphParamsType) error {
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[sn] = name
	n := node{sn, name}
	if err := gparams.NodeTmpl.Execute(w, n); err != nil {
		return err
	}
	if !sn.IsElement() {
		return nil
	}
	d := decls{Name: name, Declarations: sn.Declarations()}
	if err := gparams.DeclsTmpl.Execute(w, d); err != nil {
		return err
	}
	return gparams.DeclEdge.Execute(w, d)
}

type edge struct {
	N1, N2 node
}

type decls struct {
	Name         string
	Declarations []style.Declaration
}

func shortText(n node) string {
	h := n.N.HTMLNode()
	s := "\"\\\""
	if len(h.Data) > 10 {
		s += h.Data[:10] + "...\\\"\""
	} else {
		s += h.Data + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .NodeName "#text" }}
{{ .Name }}	[ label={{ shortstring . }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .NodeName }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const declsTmpl = `{{ .Name }}_decls [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">declarations</font></td></tr>
      {{ range .Declarations }}
      <tr><td align="right">{{ .Name | html }}:</td><td>{{ .Value.String | html }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const declEdgeTmpl = `{{ .Name }} -> {{ .Name }}_decls [dir=none weight=1 style="dashed"] ;
`

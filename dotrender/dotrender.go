package dotrender

import (
	"fmt"
	"os/exec"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/dpseq/dafsa-privacy/dafsa"
	"github.com/dpseq/dafsa-privacy/event"
)

// DOT renders the automaton as Graphviz DOT source. Every state is a
// circle node named by its integer id, and the root is filled. Final
// states are drawn the same as every other state.
func DOT(a *dafsa.Automaton) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("dafsa"); err != nil {
		return "", wrapf("DOT", event.ErrSchemaError, "setting graph name: %v", err)
	}
	if err := g.SetDir(true); err != nil {
		return "", wrapf("DOT", event.ErrSchemaError, "setting directed flag: %v", err)
	}

	for state := 0; state < a.NumStates(); state++ {
		name := strconv.Itoa(state)
		attrs := map[string]string{"shape": "circle"}
		if state == a.Root() {
			attrs["style"] = "filled"
			attrs["fillcolor"] = "lightgray"
		}
		if err := g.AddNode("dafsa", name, attrs); err != nil {
			return "", wrapf("DOT", event.ErrSchemaError, "adding node %s: %v", name, err)
		}
	}

	for _, e := range a.Edges() {
		src, tgt := strconv.Itoa(e.Src), strconv.Itoa(e.Tgt)
		attrs := map[string]string{"label": fmt.Sprintf("%q", e.Activity)}
		if err := g.AddEdge(src, tgt, true, attrs); err != nil {
			return "", wrapf("DOT", event.ErrSchemaError, "adding edge %s->%s: %v", src, tgt, err)
		}
	}

	return g.String(), nil
}

// RenderPNG writes dot's DOT source to a PNG file at pngPath by
// shelling out to the system "dot" binary (part of Graphviz). It is
// the one place in the module that touches an external process; every
// other stage is pure, in-memory computation.
func RenderPNG(dot, pngPath string) error {
	cmd := exec.Command("dot", "-Tpng", "-o", pngPath)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return wrapf("RenderPNG", event.ErrIOError, "opening dot stdin: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		_, werr := stdin.Write([]byte(dot))
		stdin.Close()
		errCh <- werr
	}()

	if out, err := cmd.CombinedOutput(); err != nil {
		return wrapf("RenderPNG", event.ErrIOError, "running dot: %v (%s)", err, out)
	}
	if werr := <-errCh; werr != nil {
		return wrapf("RenderPNG", event.ErrIOError, "writing dot source: %v", werr)
	}
	return nil
}

// SPDX-License-Identifier: MIT

package pajek

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/hypernet/network"
)

// Sentinel errors.
var (
	// ErrNilNetwork indicates a nil *network.Network.
	ErrNilNetwork = errors.New("pajek: network is nil")

	// ErrBadWeight indicates a NaN or infinite arc weight.
	ErrBadWeight = errors.New("pajek: weight is not finite")

	// ErrUnknownKind indicates a network kind without a link section.
	ErrUnknownKind = errors.New("pajek: unsupported network kind")
)

const (
	headerVertices   = "*Vertices"
	headerStates     = "*States"
	headerLinks      = "*Links"
	headerBipartite  = "*Bipartite"
	headerMultilayer = "*Multilayer"
)

// Write serializes n to w.
func Write(w io.Writer, n *network.Network) error {
	if n == nil {
		return ErrNilNetwork
	}
	bw := bufio.NewWriter(w)
	ew := &errWriter{w: bw}

	ew.line(headerVertices)
	for _, v := range n.Vertices {
		ew.printf("%d \"%s\"\n", v.ID, quoteSafe(v.Name))
	}

	if len(n.States) > 0 {
		ew.line(headerStates)
		for _, s := range n.States {
			ew.printf("%d %d\n", s.StateID, s.NodeID)
		}
	}

	switch n.Kind {
	case network.KindLinks, network.KindStates:
		ew.line(headerLinks)
		writeLinks(ew, n.Links)
	case network.KindBipartite:
		ew.printf("%s %d\n", headerBipartite, n.BipartiteStart)
		writeLinks(ew, n.Links)
	case network.KindMultilayer:
		ew.line(headerMultilayer)
		for _, l := range n.MultilayerLinks {
			ew.printf("%d %d %d %d %s\n", l.Layer1, l.Source, l.Layer2, l.Target, ew.weight(l.Weight))
		}
	default:
		return fmt.Errorf("pajek: %s: %w", n.Kind, ErrUnknownKind)
	}

	if ew.err != nil {
		return fmt.Errorf("pajek: write %s: %w", n.Name, ew.err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("pajek: flush %s: %w", n.Name, err)
	}
	return nil
}

// WriteFile writes n to path atomically: a temporary sibling file is written,
// synced and renamed over path. On any error the temporary file is removed.
func WriteFile(path string, n *network.Network) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("pajek: create temp in %s: %w", dir, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, n); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("pajek: sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("pajek: close %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("pajek: rename to %s: %w", path, err)
	}
	return nil
}

// FormatWeight renders w the way Write does.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

func writeLinks(ew *errWriter, links []network.Link) {
	for _, l := range links {
		ew.printf("%d %d %s\n", l.Source, l.Target, ew.weight(l.Weight))
	}
}

// quoteSafe keeps a label inside its double quotes.
func quoteSafe(name string) string {
	return strings.ReplaceAll(name, `"`, `'`)
}

// errWriter latches the first error; later calls are no-ops.
type errWriter struct {
	w   *bufio.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *errWriter) line(s string) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.WriteString(s + "\n")
}

// weight formats w, latching ErrBadWeight for NaN/Inf.
func (e *errWriter) weight(w float64) string {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		if e.err == nil {
			e.err = fmt.Errorf("weight %g: %w", w, ErrBadWeight)
		}
		return ""
	}
	return FormatWeight(w)
}

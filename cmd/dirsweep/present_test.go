package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nrjones-dev/dirsweep/internal/dirstats"
	"github.com/nrjones-dev/dirsweep/internal/lang"
	"github.com/nrjones-dev/dirsweep/internal/match"
)

func TestRendererFallsBackToShortAbbreviationWithoutColor(t *testing.T) {
	var out bytes.Buffer
	r := newRenderer(&out, false) // not an *os.File, so color stays off

	rustLang := &lang.Lang{Name: "Rust", Short: "rs", Icon: ""}
	m := match.Data{
		Path: "/proj/target",
		Params: match.MatchParameters{
			Weight:    1000,
			Languages: []lang.CommentedLang{{Lang: rustLang, Comment: "Cargo.toml found alongside this directory."}},
		},
	}

	r.printTable([]match.Data{m}, []dirstats.DirStats{{}})

	require.Contains(t, out.String(), "[rs]")
	require.Contains(t, out.String(), "/proj/target")
	require.NotContains(t, out.String(), "\x1b[")
}

func TestRendererMarksDangerousMatches(t *testing.T) {
	var out bytes.Buffer
	r := newRenderer(&out, true)

	sysLang := &lang.Lang{Name: "System", Short: "sys"}
	m := match.Data{
		Path:      "/opt/foo",
		Dangerous: true,
		Params: match.MatchParameters{
			Weight:    1000,
			Languages: []lang.CommentedLang{{Lang: sysLang, Comment: "under a system path"}},
		},
	}

	r.printTable([]match.Data{m}, []dirstats.DirStats{{}})

	require.Contains(t, out.String(), "(dangerous)")
}

func TestRendererSizeUnknownWhenUnset(t *testing.T) {
	r := &renderer{}
	require.Equal(t, "?", r.size(dirstats.DirStats{}))

	size := uint64(2048)
	require.Equal(t, "2.0 KiB", r.size(dirstats.DirStats{Size: &size}))
}

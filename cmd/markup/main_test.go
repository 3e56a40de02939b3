package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/markup"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cli := &CLI{}
	parser, err := newParser(cli, &stdio{In: strings.NewReader(stdin), Out: out, Err: errOut})
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	if err != nil {
		return out.String(), errOut.String(), err
	}
	err = kctx.Run()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestParseTree(t *testing.T) {
	path := writeFile(t, "doc.xml", `<top label="Top"><middle><bottom a="1" b="2"/></middle><leaf/></top>`)
	out, _, err := runCLI(t, "", "parse", path)
	require.NoError(t, err)
	require.Equal(t, `top label="Top"
  middle
    bottom a="1" b="2"
  leaf
`, out)
}

func TestParseStdinMarkupLower(t *testing.T) {
	out, _, err := runCLI(t, "  <A X=\"1\">\n  <B/>\n</A>\n", "parse", "--format=markup", "--lower")
	require.NoError(t, err)
	require.Equal(t, "<a x=\"1\"><b/></a>\n", out)
}

func TestParseRepr(t *testing.T) {
	out, _, err := runCLI(t, `<a b="c"/>`, "parse", "-f", "repr")
	require.NoError(t, err)
	require.Contains(t, out, `Name: "a"`)
	require.Contains(t, out, `Value: "c"`)
}

func TestParseError(t *testing.T) {
	path := writeFile(t, "bad.xml", "<top>\n  <bottom/>\n</middle>")
	_, _, err := runCLI(t, "", "parse", path)
	require.EqualError(t, err, path+`:3:1: unexpected input "</middle>"`)
}

func TestParseMaxDepth(t *testing.T) {
	_, _, err := runCLI(t, "<a><b></b></a>", "parse", "--max-depth=1")
	require.EqualError(t, err, "<stdin>:1:4: element <b> exceeds maximum nesting depth of 1")

	_, _, err = runCLI(t, "<a><b></b></a>", "parse", "--max-depth=-1")
	require.EqualError(t, err, "invalid maximum depth -1")
}

func TestParseTrace(t *testing.T) {
	_, trace, err := runCLI(t, "<a/>", "parse", "--trace")
	require.NoError(t, err)
	require.Equal(t, "\"<a/>\" Element\n\"<a/>\" SingleElement\n", trace)
}

func TestGrammar(t *testing.T) {
	out, _, err := runCLI(t, "", "grammar")
	require.NoError(t, err)
	require.Equal(t, markup.MustNew().String()+"\n", out)
}

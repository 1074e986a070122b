package syntax

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestForFilename_ResolvesBuiltins(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{filename: "main.rs", want: "Rust"},
		{filename: "src/lib/row.rs", want: "Rust"},
		{filename: "main.go", want: "Go"},
		{filename: "hello.c", want: "C"},
		{filename: "hello.cpp", want: "C++"},
		{filename: "notes.txt", want: defaultName},
		{filename: "Makefile", want: defaultName},
		{filename: "", want: defaultName},
	}
	for _, tc := range cases {
		got := ForFilename(tc.filename).Name()
		if got != tc.want {
			t.Fatalf("ForFilename(%q): got %q, want %q", tc.filename, got, tc.want)
		}
	}
}

func TestDefault_HasEverythingOff(t *testing.T) {
	lex := Default()
	if lex.Options() != (Options{}) {
		t.Fatalf("default options: got %+v, want all off", lex.Options())
	}
	if len(lex.PrimaryKeywords()) != 0 || len(lex.SecondaryKeywords()) != 0 {
		t.Fatalf("default lexicon must have no keywords")
	}
}

func TestLexicon_SharedInstances(t *testing.T) {
	if Default() != Default() {
		t.Fatalf("Default must return one shared lexicon")
	}
	if ForFilename("a.rs") != ForFilename("b.rs") {
		t.Fatalf("equal file types must resolve to the same lexicon")
	}
	if ForFilename("notes") != Default() {
		t.Fatalf("unknown file type must resolve to Default")
	}
}

func TestLexicon_AccessorsReturnCopies(t *testing.T) {
	lex := NewLexicon("x", Options{}, []string{"if"}, []string{"int"})
	kw := lex.PrimaryKeywords()
	kw[0] = "mutated"
	if got := lex.PrimaryKeywords()[0]; got != "if" {
		t.Fatalf("primary keyword mutated through accessor: %q", got)
	}
	open, closer := lex.BlockComment()
	if open != "/*" || closer != "*/" || lex.LineComment() != "//" {
		t.Fatalf("unexpected delimiters %q %q %q", open, closer, lex.LineComment())
	}
}

func TestRustLexicon_ExtendedSecondaryKeywords(t *testing.T) {
	lex := ForFilename("a.rs")
	found := false
	for _, kw := range lex.SecondaryKeywords() {
		if kw == "&str" {
			found = true
		}
	}
	if !found {
		t.Fatalf("rust secondary keywords should include &str")
	}
}

func TestTag_StringAndColor(t *testing.T) {
	if got := MultilineComment.String(); got != "multiline-comment" {
		t.Fatalf("tag name: got %q", got)
	}
	if got := Tag(200).String(); got != "unknown" {
		t.Fatalf("out of range tag name: got %q", got)
	}
	if Comment.Color() != MultilineComment.Color() {
		t.Fatalf("comment kinds should share a colour")
	}
	if got := Number.Color(); got != "#dca3a3" {
		t.Fatalf("number colour: got %q", got)
	}
	if len(Tags()) != int(tagCount) {
		t.Fatalf("tags: got %d, want %d", len(Tags()), tagCount)
	}
}

func testRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)
	return r
}

func TestDefaultTheme_UsesTagColors(t *testing.T) {
	th := DefaultThemeWith(testRenderer())
	if got := th.Style(String).GetForeground(); got != lipgloss.Color(String.Color()) {
		t.Fatalf("string foreground: got %v", got)
	}
	if _, ok := th.Style(None).GetForeground().(lipgloss.NoColor); !ok {
		t.Fatalf("none should keep the terminal foreground")
	}
	if got := th.Style(Tag(99)).GetForeground(); got != th.Style(None).GetForeground() {
		t.Fatalf("out of range tag should fall back to none")
	}
}

func TestThemeNamed(t *testing.T) {
	r := testRenderer()

	th, ok := ThemeNamed(r, "")
	if !ok || th.Name != DefaultThemeName {
		t.Fatalf("empty theme name: got %q ok=%v", th.Name, ok)
	}

	th, ok = ThemeNamed(r, "monokai")
	if !ok || th.Name != "monokai" {
		t.Fatalf("monokai theme: got %q ok=%v", th.Name, ok)
	}
	if got := th.Style(Match).GetForeground(); got != lipgloss.Color(Match.Color()) {
		t.Fatalf("match colour must not be themed: got %v", got)
	}
	if _, isNo := th.Style(PrimaryKeyword).GetForeground().(lipgloss.NoColor); isNo {
		t.Fatalf("keyword should be coloured by chroma style")
	}

	th, ok = ThemeNamed(r, "no-such-style")
	if ok || th.Name != DefaultThemeName {
		t.Fatalf("unknown theme: got %q ok=%v", th.Name, ok)
	}
}

func TestIsTheme(t *testing.T) {
	for _, name := range []string{"", DefaultThemeName, "monokai", "dracula"} {
		if !IsTheme(name) {
			t.Fatalf("IsTheme(%q) = false", name)
		}
	}
	if IsTheme("no-such-style") {
		t.Fatalf("unknown style accepted")
	}
	if names := ThemeNames(); len(names) < 2 || names[0] != DefaultThemeName {
		t.Fatalf("ThemeNames: %v", names)
	}
}

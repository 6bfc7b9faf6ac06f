package hydration

import (
	"testing"

	"github.com/vango-dev/hydrate/pkg/vdom"
)

func TestRenderMismatchDiffReplacement(t *testing.T) {
	container := mustFragment(t, `<section id="s"><p>one</p><h1>server</h1><p>two</p></section>`)
	section := CanMatchElement(FirstHydratableChild(container), "section")
	if section == nil {
		t.Fatal("fragment did not parse to a section element")
	}

	got := renderMismatchDiff(section, 1, 1, vdom.H2(vdom.Text("client")))
	want := "\n" +
		"    <section id=\"s\">\n" +
		"      <p>one</p>\n" +
		"-     <h1>server</h1>\n" +
		"+     <h2>client</h2>\n" +
		"      <p>two</p>\n" +
		"    </section>\n"
	if got != want {
		t.Errorf("diff:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderMismatchDiffDisplacedInsertion(t *testing.T) {
	container := mustFragment(t, `<div>a</div><span>b</span><div>c</div><div>d</div>`)

	got := renderMismatchDiff(container, 1, 3, vdom.Span(vdom.Text("x")))
	want := "\n" +
		"      <div>a</div>\n" +
		"-     <span>b</span>\n" +
		"      <div>c</div>\n" +
		"+     <span>x</span>\n" +
		"      <div>d</div>\n"
	if got != want {
		t.Errorf("diff:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderMismatchDiffTrailingAdd(t *testing.T) {
	container := mustFragment(t, `<div>a</div>`)

	got := renderMismatchDiff(container, noIndex, 1, vdom.Text("tail"))
	want := "\n" +
		"      <div>a</div>\n" +
		"+     tail\n"
	if got != want {
		t.Errorf("diff:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderMismatchDiffPureDeletion(t *testing.T) {
	container := mustFragment(t, `gone<div>a</div>`)

	got := renderMismatchDiff(container, 0, noIndex, nil)
	want := "\n" +
		"-     gone\n" +
		"      <div>a</div>\n"
	if got != want {
		t.Errorf("diff:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderMismatchDiffCommentsVisibleNotCounted(t *testing.T) {
	container := mustFragment(t, `<!--marker--><div>a</div><div>b</div>`)

	// The comment prints but does not shift the removed index.
	got := renderMismatchDiff(container, 1, 1, vdom.Span())
	want := "\n" +
		"      <!--marker-->\n" +
		"      <div>a</div>\n" +
		"-     <div>b</div>\n" +
		"+     <span />\n"
	if got != want {
		t.Errorf("diff:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderMismatchDiffEmptyTextNeverAdds(t *testing.T) {
	container := mustFragment(t, `<div>a</div>`)

	got := renderMismatchDiff(container, 0, 0, vdom.Text(""))
	want := "\n" +
		"-     <div>a</div>\n"
	if got != want {
		t.Errorf("diff:\n%q\nwant:\n%q", got, want)
	}
}

func TestMismatchDiffNilParent(t *testing.T) {
	if got := mismatchDiff(nil, 0, 0, vdom.Div()); got != nil {
		t.Errorf("mismatchDiff(nil) = %v, want nil", got)
	}
}

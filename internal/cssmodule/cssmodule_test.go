package cssmodule_test

import (
	"errors"
	"regexp"
	"slices"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/openvinotoolkit/genai-site/internal/cssmodule"
)

var scopedPattern = regexp.MustCompile(`^[A-Za-z_-][A-Za-z0-9_-]*_[0-9a-z]{5}$`)

func TestCompileScopesClassSelectors(t *testing.T) {
	t.Parallel()

	mod := cssmodule.Compile("index", `.banner { padding: 4rem 0; }
.titleContainer .title, .banner > .genAITitle:hover { display: flex; }`)

	for _, class := range []string{"banner", "titleContainer", "title", "genAITitle"} {
		scoped, err := mod.Class(class)
		if err != nil {
			t.Fatalf("unexpected error looking up %q: %v", class, err)
		}
		if !strings.HasPrefix(scoped, class+"_") || !scopedPattern.MatchString(scoped) {
			t.Errorf("expected %q to be scoped, got %q", class, scoped)
		}
		if !strings.Contains(mod.CSS(), "."+scoped) {
			t.Errorf("expected compiled CSS to use %q, got %q", scoped, mod.CSS())
		}
	}
	if want := []string{"banner", "genAITitle", "title", "titleContainer"}; !slices.Equal(mod.ClassNames(), want) {
		t.Errorf("expected class names %v, got %v", want, mod.ClassNames())
	}
}

func TestCompileLeavesDeclarationsAlone(t *testing.T) {
	t.Parallel()

	src := `/* .commented { } */
@import url("theme.css");
.hero {
	background: url(img/hero.png) no-repeat;
	content: ".quoted";
	width: 0.5rem;
}
@media (max-width: 996px) {
	.hero { padding: 2rem; }
}
@font-face {
	font-family: "Intel One";
	src: url(fonts/intel.woff2);
}
@keyframes fade {
	0% { opacity: 0; }
	12.5% { opacity: 0.1; }
}`
	mod := cssmodule.Compile("hero", src)
	hero, err := mod.Class("hero")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := strings.ReplaceAll(src, ".hero {", "."+hero+" {")
	if got := mod.CSS(); got != want {
		t.Errorf("unexpected compiled CSS\nwant: %s\ngot:  %s", want, got)
	}
	if want := []string{"hero"}; !slices.Equal(mod.ClassNames(), want) {
		t.Errorf("expected class names %v, got %v", want, mod.ClassNames())
	}
}

func scoped(t *testing.T, mod *cssmodule.Module, class string) string {
	t.Helper()
	name, err := mod.Class(class)
	if err != nil {
		t.Fatalf("unexpected error looking up %q: %v", class, err)
	}
	return name
}

func TestCompileLeavesGlobalClassesAlone(t *testing.T) {
	t.Parallel()

	mod := cssmodule.Compile("nav", `:global(.navbar) .title { color: red; }
.item:global(.active), :local(.link) { color: blue; }`)

	title := scoped(t, mod, "title")
	item := scoped(t, mod, "item")
	link := scoped(t, mod, "link")
	want := `.navbar .` + title + ` { color: red; }
.` + item + `.active, .` + link + ` { color: blue; }`
	if got := mod.CSS(); got != want {
		t.Errorf("unexpected compiled CSS\nwant: %s\ngot:  %s", want, got)
	}
	if want := []string{"item", "link", "title"}; !slices.Equal(mod.ClassNames(), want) {
		t.Errorf("expected class names %v, got %v", want, mod.ClassNames())
	}
}

func TestCompileEscapedClassNames(t *testing.T) {
	t.Parallel()

	mod := cssmodule.Compile("grid", `.sm\:hidden { display: none; }
.\31 0col { width: 10%; }`)

	hidden := scoped(t, mod, "sm:hidden")
	if !strings.HasPrefix(hidden, "sm:hidden_") {
		t.Errorf("expected the whole escaped name to be scoped, got %q", hidden)
	}
	tenCol := scoped(t, mod, "10col")
	want := `.` + strings.Replace(hidden, ":", `\:`, 1) + ` { display: none; }
.\31 ` + strings.TrimPrefix(tenCol, "1") + ` { width: 10%; }`
	if got := mod.CSS(); got != want {
		t.Errorf("unexpected compiled CSS\nwant: %s\ngot:  %s", want, got)
	}
	if want := []string{"10col", "sm:hidden"}; !slices.Equal(mod.ClassNames(), want) {
		t.Errorf("expected class names %v, got %v", want, mod.ClassNames())
	}
}

func TestCompileScopesNestedRules(t *testing.T) {
	t.Parallel()

	src := `.card {
	padding: 1rem;
	&.active { color: red; }
	.inner { margin: .5rem; }
	&:hover { opacity: 0.9 }
}
@media (max-width: 996px) {
	.card { .inner { margin: 0; } }
}`
	mod := cssmodule.Compile("card", src)

	want := src
	for _, class := range []string{"card", "active", "inner"} {
		want = strings.ReplaceAll(want, "."+class+" ", "."+scoped(t, mod, class)+" ")
	}
	if got := mod.CSS(); got != want {
		t.Errorf("unexpected compiled CSS\nwant: %s\ngot:  %s", want, got)
	}
	if want := []string{"active", "card", "inner"}; !slices.Equal(mod.ClassNames(), want) {
		t.Errorf("expected class names %v, got %v", want, mod.ClassNames())
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	t.Parallel()

	src := `.a { color: red; } .b { color: blue; }`
	first := cssmodule.Compile("mod", src)
	second := cssmodule.Compile("mod", src)
	if first.CSS() != second.CSS() || first.FileName() != second.FileName() {
		t.Errorf("expected identical output, got %q/%q and %q/%q", first.CSS(), first.FileName(), second.CSS(), second.FileName())
	}

	other := cssmodule.Compile("other", src)
	a1, _ := first.Class("a")
	a2, _ := other.Class("a")
	if a1 == a2 {
		t.Errorf("expected modules to scope %q differently, both got %q", "a", a1)
	}

	changed := cssmodule.Compile("mod", src+" .c { color: green; }")
	if changed.FileName() == first.FileName() {
		t.Errorf("expected file name to change with contents, got %q twice", first.FileName())
	}
	if !strings.HasPrefix(first.FileName(), "mod.") || !strings.HasSuffix(first.FileName(), ".css") {
		t.Errorf("unexpected file name %q", first.FileName())
	}
}

func TestModuleUnknownClass(t *testing.T) {
	t.Parallel()

	mod := cssmodule.Compile("index", `.banner {}`)
	_, err := mod.Class("footer")
	if !errors.Is(err, cssmodule.ErrUnknownClass) {
		t.Errorf("expected %v, got %v", cssmodule.ErrUnknownClass, err)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"index.module.css":   {Data: []byte(`.banner { color: red; }`)},
		"section.module.css": {Data: []byte(`.section { margin: 0; }`)},
		"global.css":         {Data: []byte(`.ignored { margin: 0; }`)},
	}
	reg, err := cssmodule.Load(fsys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var names []string
	for _, mod := range reg.Modules() {
		names = append(names, mod.Name())
		found, ok := reg.ByFileName(mod.FileName())
		if !ok || found != mod {
			t.Errorf("expected to find %q by file name %q", mod.Name(), mod.FileName())
		}
	}
	if want := []string{"index", "section"}; !slices.Equal(names, want) {
		t.Errorf("expected modules %v, got %v", want, names)
	}

	if _, err := reg.Class("index", "banner"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := reg.Class("global", "ignored"); !errors.Is(err, cssmodule.ErrUnknownModule) {
		t.Errorf("expected %v, got %v", cssmodule.ErrUnknownModule, err)
	}
	if _, ok := reg.ByFileName("global.css"); ok {
		t.Error("expected global.css not to be a module")
	}
}

func TestLoadNoModules(t *testing.T) {
	t.Parallel()

	_, err := cssmodule.Load(fstest.MapFS{"global.css": {Data: []byte(`body {}`)}})
	if !errors.Is(err, cssmodule.ErrNoModules) {
		t.Errorf("expected %v, got %v", cssmodule.ErrNoModules, err)
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		in   []string
		want string
	}{
		{in: nil, want: ""},
		{in: []string{"hero"}, want: "hero"},
		{in: []string{"hero", "banner_x1y2z"}, want: "hero banner_x1y2z"},
		{in: []string{"", " col ", "", "col--4"}, want: "col col--4"},
	} {
		if got := cssmodule.Join(tc.in...); got != tc.want {
			t.Errorf("Join(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

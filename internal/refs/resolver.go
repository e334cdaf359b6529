package refs

import (
	"regexp"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// DefaultCloudPrefixes are the resource-type naming prefixes recognized as
// shorthand resource references out of the box.
var DefaultCloudPrefixes = []string{"aws", "azurerm", "google"}

// pattern pairs a reference regular expression with a builder that turns its
// submatches into a canonical entity identifier.
type pattern struct {
	re    *regexp.Regexp
	canon func(m []string) string
}

// Resolver scans rendered configuration values for entity references and
// returns canonical identifiers. It is stateless and safe for concurrent use.
type Resolver struct {
	patterns []pattern
}

// NewResolver builds a resolver recognizing the given cloud shorthand
// prefixes in addition to the fixed reference classes. With no prefixes it
// falls back to DefaultCloudPrefixes.
func NewResolver(cloudPrefixes ...string) *Resolver {
	if len(cloudPrefixes) == 0 {
		cloudPrefixes = DefaultCloudPrefixes
	}

	var patterns []pattern
	for _, prefix := range cloudPrefixes {
		re := regexp.MustCompile(`(` + regexp.QuoteMeta(prefix) + `_\w+)\.(\w+)`)
		patterns = append(patterns, pattern{re, func(m []string) string {
			return "resource." + m[1] + "." + m[2]
		}})
	}

	two := func(prefix string) func(m []string) string {
		return func(m []string) string { return prefix + "." + m[1] + "." + m[2] }
	}
	one := func(prefix string) func(m []string) string {
		return func(m []string) string { return prefix + "." + m[1] }
	}

	patterns = append(patterns,
		pattern{regexp.MustCompile(`resource\.(\w+)\.(\w+)`), two("resource")},
		pattern{regexp.MustCompile(`data\.(\w+)\.(\w+)`), two("data")},
		pattern{regexp.MustCompile(`module\.(\w+)`), one("module")},
		pattern{regexp.MustCompile(`var\.(\w+)`), one("var")},
		pattern{regexp.MustCompile(`local\.(\w+)`), one("local")},
		pattern{regexp.MustCompile(`output\.(\w+)`), one("output")},
	)

	return &Resolver{patterns: patterns}
}

// Resolve walks a rendered value of any nesting and returns the set of
// canonical identifiers referenced by its string leaves. It never fails:
// malformed or non-string content simply contributes nothing.
func (r *Resolver) Resolve(val cty.Value) map[string]struct{} {
	found := make(map[string]struct{})
	r.walk(val, found)
	return found
}

func (r *Resolver) walk(val cty.Value, found map[string]struct{}) {
	if val == cty.NilVal || val.IsNull() || !val.IsKnown() {
		return
	}
	if val.Type() == cty.String {
		r.scan(val.AsString(), found)
		return
	}
	if val.CanIterateElements() {
		for it := val.ElementIterator(); it.Next(); {
			_, element := it.Element()
			r.walk(element, found)
		}
	}
}

// scan matches every pattern class against one string. Interpolation
// delimiters are stripped first so "${aws_vpc.main.id}" and "aws_vpc.main.id"
// resolve identically.
func (r *Resolver) scan(text string, found map[string]struct{}) {
	text = strings.ReplaceAll(text, "${", "")
	text = strings.ReplaceAll(text, "}", "")

	for _, p := range r.patterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			found[p.canon(m)] = struct{}{}
		}
	}
}

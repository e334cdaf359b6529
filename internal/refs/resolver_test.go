package refs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func resolveString(t *testing.T, r *Resolver, s string) map[string]struct{} {
	t.Helper()
	return r.Resolve(cty.StringVal(s))
}

func TestResolvePatternClasses(t *testing.T) {
	r := NewResolver()

	// One minimal string per pattern class, chosen so exactly one class matches.
	cases := []struct {
		name string
		text string
		want string
	}{
		{"cloud shorthand", "aws_vpc.main", "resource.aws_vpc.main"},
		{"explicit resource", "resource.mytype.web", "resource.mytype.web"},
		{"data source", "data.external.lookup", "data.external.lookup"},
		{"module", "module.security", "module.security"},
		{"variable", "var.instance_type", "var.instance_type"},
		{"local value", "local.common_tags", "local.common_tags"},
		{"output", "output.endpoint", "output.endpoint"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveString(t, r, tc.text)
			require.Len(t, got, 1)
			assert.Contains(t, got, tc.want)
		})
	}
}

func TestResolveStripsInterpolationDelimiters(t *testing.T) {
	r := NewResolver()

	got := resolveString(t, r, "${aws_vpc.main.id}")
	assert.Contains(t, got, "resource.aws_vpc.main")

	got = resolveString(t, r, "prefix-${var.env}-suffix")
	assert.Contains(t, got, "var.env")
}

func TestResolveUnionsOverlappingClasses(t *testing.T) {
	r := NewResolver()

	// The data pattern and the aws_ shorthand both match; both results are kept.
	got := resolveString(t, r, "data.aws_ami.ubuntu.id")
	assert.Contains(t, got, "data.aws_ami.ubuntu")
	assert.Contains(t, got, "resource.aws_ami.ubuntu")
}

func TestResolveMultipleReferencesInOneString(t *testing.T) {
	r := NewResolver()

	got := resolveString(t, r, "${aws_subnet.public.id}-${var.name}")
	assert.Contains(t, got, "resource.aws_subnet.public")
	assert.Contains(t, got, "var.name")
}

func TestResolveNestedValues(t *testing.T) {
	r := NewResolver()

	val := cty.ObjectVal(map[string]cty.Value{
		"tags": cty.ObjectVal(map[string]cty.Value{
			"Name": cty.StringVal("${module.network}"),
		}),
		"ids":   cty.TupleVal([]cty.Value{cty.StringVal("aws_vpc.main.id"), cty.NumberIntVal(3)}),
		"count": cty.NumberIntVal(2),
		"flag":  cty.True,
	})

	got := r.Resolve(val)
	assert.Contains(t, got, "module.network")
	assert.Contains(t, got, "resource.aws_vpc.main")
	assert.Len(t, got, 2)
}

func TestResolveNonReferenceLeaves(t *testing.T) {
	r := NewResolver()

	assert.Empty(t, r.Resolve(cty.NumberIntVal(42)))
	assert.Empty(t, r.Resolve(cty.False))
	assert.Empty(t, r.Resolve(cty.NullVal(cty.String)))
	assert.Empty(t, r.Resolve(cty.NilVal))
	assert.Empty(t, resolveString(t, r, "just a plain sentence"))
	assert.Empty(t, resolveString(t, r, "10.0.0.0/16"))
}

func TestResolveDeduplicates(t *testing.T) {
	r := NewResolver()

	got := resolveString(t, r, "var.x var.x var.x")
	assert.Len(t, got, 1)
}

func TestResolveCustomCloudPrefixes(t *testing.T) {
	r := NewResolver("aws", "oci")

	got := resolveString(t, r, "oci_core_vcn.main.id")
	assert.Contains(t, got, "resource.oci_core_vcn.main")

	// google is not configured on this resolver.
	got = resolveString(t, r, "google_compute_instance.vm")
	assert.Empty(t, got)
}

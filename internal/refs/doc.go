// Package refs discovers Terraform entity references inside rendered
// configuration values.
//
// The resolver is a table of pattern classes, each pairing a regular
// expression with a canonical-identifier builder. Every class is evaluated
// independently against each string leaf and the results are unioned, so a
// string that matches several classes contributes several identifiers. That
// overlap is deliberate: a cloud-prefixed shorthand such as "aws_ami.x"
// embedded in "data.aws_ami.x" yields both the data identifier and the
// shorthand resource identifier, matching the tool's long-observed behavior.
package refs

package policies

import "strings"

// nameSuffix is the fixed third segment of every managed remote name.
const nameSuffix = "policy"

// EncodeName maps the two-level local hierarchy onto the flat remote
// namespace: (category, name) becomes "category_name_policy".
func EncodeName(category, name string) string {
	return category + "_" + name + "_" + nameSuffix
}

// DecodeName is the inverse of EncodeName, restricted to well-formed
// names: exactly three underscore-delimited segments, the last being
// "policy". Any other remote name is foreign: it has no local
// representation and must never be mutated by this tool.
func DecodeName(remote string) (category, name string, ok bool) {
	parts := strings.Split(remote, "_")
	if len(parts) != 3 || parts[2] != nameSuffix {
		return "", "", false
	}
	return parts[0], parts[1], true
}

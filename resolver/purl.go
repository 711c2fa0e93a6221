package resolver

import packageurl "github.com/package-url/packageurl-go"

// ParseComponentRef attempts to decode id as a package URL. Component ids
// are not required to be purls; callers (diagnostics, logging) use this to
// render a friendlier identity when the id happens to be one, without
// changing graph semantics, which operate on the raw id string throughout.
func ParseComponentRef(id string) (purl packageurl.PackageURL, ok bool) {
	p, err := packageurl.FromString(id)
	if err != nil {
		return packageurl.PackageURL{}, false
	}
	return p, true
}

// describeComponent renders id for log/error messages, preferring the
// decoded purl form when available.
func describeComponent(id string) string {
	if p, ok := ParseComponentRef(id); ok {
		return p.Type + "/" + p.Namespace + "/" + p.Name + "@" + p.Version
	}
	return id
}

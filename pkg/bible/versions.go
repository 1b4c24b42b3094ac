package bible

// Version is a named translation from the compiled catalog.
type Version struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Language Language `json:"language"`
}

// BaseVersion marks text taken from a verse's base column rather than from
// one of its translated versions.
const BaseVersion = "base"

// Versions is the fixed translation catalog. It is compiled in, not queried.
var Versions = []Version{
	{Code: "nbv", Name: "Nova Bíblia Viva", Language: Portuguese},
	{Code: "web", Name: "World English Bible", Language: English},
	{Code: "kjv", Name: "King James Version", Language: English},
	{Code: "bsb", Name: "Berean Study Bible", Language: English},
}

// VersionsFor returns the versions selectable from a page in lang.
func VersionsFor(lang Language) []Version {
	out := make([]Version, 0, len(Versions))
	for _, v := range Versions {
		if v.Language == lang {
			out = append(out, v)
		}
	}
	return out
}

// LookupVersion finds a catalog entry by code.
func LookupVersion(code string) (Version, bool) {
	for _, v := range Versions {
		if v.Code == code {
			return v, true
		}
	}
	return Version{}, false
}

// VersionName returns the display name for code, or code itself when the
// catalog has no such entry.
func VersionName(code string) string {
	if v, ok := LookupVersion(code); ok {
		return v.Name
	}
	return code
}

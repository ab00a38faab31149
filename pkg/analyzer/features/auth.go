package features

// Auth describes the detected authentication provider.
type Auth struct {
	Provider string `json:"provider"`
	Package  string `json:"package"`
}

var authKeywords = []keywordEntry{
	{"NextAuth.js", []string{"next-auth"}},
	{"Auth0", []string{"auth0"}},
	{"Firebase Auth", []string{"firebase"}},
	{"Clerk", []string{"@clerk/"}},
	{"Supabase Auth", []string{"@supabase/"}},
	{"Passport", []string{"passport"}},
	{"JWT", []string{"jsonwebtoken", "jwt"}},
	{"Convex Auth", []string{"@convex-dev/auth"}},
	{"Stack Auth", []string{"@stackframe/"}},
}

// DetectAuth returns the first auth table entry with a matching
// dependency, or nil when none match.
func DetectAuth(deps map[string]string) *Auth {
	names := sortedNames(deps)
	for _, entry := range authKeywords {
		if pkg, ok := firstMatch(names, entry.keywords); ok {
			return &Auth{Provider: entry.label, Package: pkg}
		}
	}
	return nil
}

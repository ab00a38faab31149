package features

// hostingMarkers maps platforms to the files or directories whose mere
// presence indicates them. Entry order is the priority order.
var hostingMarkers = []keywordEntry{
	{"Netlify", []string{"netlify.toml", "netlify"}},
	{"Vercel", []string{"vercel.json", ".vercel"}},
	{"AWS", []string{".aws", "serverless.yml"}},
	{"Heroku", []string{"Procfile"}},
	{"Docker", []string{"Dockerfile", "docker-compose.yml"}},
}

// DetectHosting checks for platform marker files in the project root,
// first match in table order wins. Dependencies play no part here.
func DetectHosting(fs FSReader) string {
	for _, entry := range hostingMarkers {
		for _, marker := range entry.keywords {
			if fs.Has(marker) {
				return entry.label
			}
		}
	}
	return ""
}

package ecosystems

import "encoding/json"

// detectPHP marks PHP projects by composer.json. Language and package
// manager are set before the manifest parse, so a malformed composer.json
// still yields a PHP project with no framework.
func detectPHP(fs FSReader, info *ProjectInfo) {
	if !fs.Has("composer.json") {
		return
	}

	info.Language = "PHP"
	info.PackageManager = "composer"

	var composer struct {
		Require    map[string]string `json:"require"`
		RequireDev map[string]string `json:"require-dev"`
	}
	if err := json.Unmarshal([]byte(fs.Read("composer.json")), &composer); err != nil {
		return
	}

	deps := make(map[string]string, len(composer.Require)+len(composer.RequireDev))
	for name, version := range composer.Require {
		deps[name] = version
	}
	for name, version := range composer.RequireDev {
		deps[name] = version
	}

	if _, ok := deps["laravel/framework"]; ok {
		info.Type, info.Framework = TypeBackend, "Laravel"
	} else if _, ok := deps["symfony/symfony"]; ok {
		info.Type, info.Framework = TypeBackend, "Symfony"
	}
}

package ecosystems

// detectJava marks JVM projects. Maven takes priority over Gradle when
// both build files are present.
func detectJava(fs FSReader, info *ProjectInfo) {
	switch {
	case fs.Has("pom.xml"):
		info.Language = "Java"
		info.PackageManager = "maven"
		info.Type = TypeBackend
	case fs.Has("build.gradle") || fs.Has("build.gradle.kts"):
		info.Language = "Java/Kotlin"
		info.PackageManager = "gradle"
		info.Type = TypeBackend
	}
}
